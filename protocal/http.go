package protocal

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"time"

	"booleana-backend/configs"
	httpAdapter "booleana-backend/internal/adapters/input/http"
	"booleana-backend/internal/adapters/output/memory"
	"booleana-backend/internal/adapters/output/openai"
	"booleana-backend/internal/adapters/output/postgres"
	"booleana-backend/internal/application"
	"booleana-backend/pkg/database_driver/gorm"

	swagger "github.com/arsmn/fiber-swagger/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/sirupsen/logrus"
)

type config struct {
	ENV string `mapstructure:"env"`
}

// ServeHTTP func
func ServeHTTP() error {
	app := fiber.New()
	var cfg config
	flag.StringVar(&cfg.ENV, "env", "", "the environment to use")
	flag.Parse()
	configs.InitViper("./configs", cfg.ENV)
	logrus.Info(configs.GetViper().Env)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept,Authorization",
	}))
	app.Use(func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logrus.Infof("%s %s - %d (%v)", c.Method(), c.Path(), c.Response().StatusCode(), time.Since(start))
		return err
	})

	dbConGorm, err := gorm.ConnectToPostgreSQL(
		configs.GetViper().Postgres.Host,
		configs.GetViper().Postgres.Port,
		configs.GetViper().Postgres.Username,
		configs.GetViper().Postgres.Password,
		configs.GetViper().Postgres.DbName,
		configs.GetViper().Postgres.SSLMode,
	)
	if err != nil {
		return err
	}
	postgres.MigrateDatabase(dbConGorm.Postgres)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt)
	go func() {
		for range c {
			log.Println("Graceful shut down ...")
			gorm.DisconnectPostgres(dbConGorm.Postgres)
			err := app.Shutdown()
			if err != nil {
				log.Println("Error when shutdown server: ", err)
			}
		}
	}()

	// Wire up the hexagonal architecture layers
	// Output adapters
	modelClient, err := openai.NewOpenAIClientAdapter(configs.GetViper().OpenAI)
	if err != nil {
		logrus.Fatalf("Failed to create OpenAI client: %v", err)
	}
	sessionCache := memory.NewSessionCache()
	sessionRepo := postgres.NewSessionRepository(dbConGorm.Postgres)

	// Application services (use cases)
	gateway := application.NewModelGateway(modelClient)
	engine := application.NewEvaluationEngine(gateway)
	srv := application.NewInterviewService(gateway, engine, sessionCache, sessionRepo)

	// Input adapter (HTTP handler)
	hdl := httpAdapter.New(srv, dbConGorm.Postgres)

	app.Get("/swagger/*", swagger.HandlerDefault) // default
	app.Get("/health", hdl.HealthCheck)
	app.Get("/status", hdl.Status)

	// Interview session lifecycle, paths preserved for client compatibility
	app.Post("/session", hdl.StartSession)
	app.Post("/interview", hdl.HandleMessage)
	app.Post("/session/:id/end", hdl.EndSession)
	app.Get("/session/:id", hdl.GetSession)

	err = app.Listen(":" + configs.GetViper().App.Port)
	if err != nil {
		return err
	}

	logrus.Println("Listening on port: ", configs.GetViper().App.Port)
	return nil
}
