package domain

import "errors"

var (
	// ErrSessionNotFound indicates the session id is unknown in memory and in durable storage
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionCompleted indicates a conversational turn was attempted on a finalized session
	ErrSessionCompleted = errors.New("session already completed")

	// ErrInvalidRequest indicates a request with missing or empty required fields
	ErrInvalidRequest = errors.New("invalid request")

	// ErrModelUnavailable indicates the model provider call failed or returned unusable content
	ErrModelUnavailable = errors.New("model provider unavailable")

	// ErrStoreUnavailable indicates a durable store read or write failure
	ErrStoreUnavailable = errors.New("session store unavailable")
)
