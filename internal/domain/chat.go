package domain

// ChatRole type - wire-level role accepted by the model provider
type ChatRole string

const (
	// ChatRoleSystem const
	ChatRoleSystem ChatRole = "system"
	// ChatRoleAssistant const - the interviewer persona on the wire
	ChatRoleAssistant ChatRole = "assistant"
	// ChatRoleUser const - the candidate on the wire
	ChatRoleUser ChatRole = "user"
)

// ChatMessage struct - one role-tagged message in a model call
type ChatMessage struct {
	Role    ChatRole
	Content string
}

// ChatCompletionRequest struct - parameters for one chat completion call
type ChatCompletionRequest struct {
	Messages    []ChatMessage
	Model       *string
	Temperature *float64
	MaxTokens   *int
	Stop        []string
}

// ChatCompletionResponse struct - result of one chat completion call
type ChatCompletionResponse struct {
	Content          string
	Model            string
	PromptTokens     int
	CompletionTokens int
	TotalTokens      int
}

// ToChatMessage maps a transcript message onto the wire role set.
// The interviewer maps to assistant and the candidate to user; any other
// role record yields ok=false and must be dropped by the caller.
func (m Message) ToChatMessage() (ChatMessage, bool) {
	switch m.Role {
	case MessageRoleSystem:
		return ChatMessage{Role: ChatRoleSystem, Content: m.Content}, true
	case MessageRoleInterviewer:
		return ChatMessage{Role: ChatRoleAssistant, Content: m.Content}, true
	case MessageRoleCandidate:
		return ChatMessage{Role: ChatRoleUser, Content: m.Content}, true
	default:
		return ChatMessage{}, false
	}
}

// FromChatRole normalizes a stored role tag back into a transcript role.
// Wire roles (assistant/user) and transcript roles are both accepted so a
// document written by an older deployment hydrates to the same logical
// state. Anything else is kept verbatim; unknown roles are dropped later
// at the model boundary, never rewritten in the transcript.
func FromChatRole(role string) MessageRole {
	switch role {
	case string(ChatRoleSystem):
		return MessageRoleSystem
	case string(ChatRoleAssistant), string(MessageRoleInterviewer):
		return MessageRoleInterviewer
	case string(ChatRoleUser), string(MessageRoleCandidate):
		return MessageRoleCandidate
	default:
		return MessageRole(role)
	}
}
