package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"

	"ratcalc/modules/api"
	"ratcalc/modules/calc"
	"ratcalc/modules/history"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration from environment
	httpPort := getEnvInt("HTTP_PORT", 8080)
	natsPort := getEnvInt("NATS_PORT", 4222)
	dbPath := getEnv("DB_PATH", "ratcalc.db")

	log.Println("=== ratcalc service ===")
	log.Printf("HTTP Port: %d", httpPort)
	log.Printf("NATS Port: %d", natsPort)
	log.Printf("DB Path: %s", dbPath)

	// Create mono application with embedded NATS
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
		mono.WithNATSPort(natsPort),
	)
	if err != nil {
		log.Fatalf("Failed to create mono application: %v", err)
	}

	// Wire modules: history persists evaluations, calc evaluates, api
	// serves HTTP. The evaluation service reads the history repository
	// lazily, so registration order only matters for startup logging.
	historyModule := history.NewModule(dbPath)
	calcService := calc.NewService(historyModule)

	app.Register(historyModule)
	app.Register(calc.NewModule(calcService))
	app.Register(api.NewModule(httpPort, calcService, historyModule))

	// Start the application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start app: %v", err)
	}

	log.Println("=== Application Started ===")
	log.Printf("HTTP API at http://localhost:%d/api/v1", httpPort)
	log.Println("Services:")
	log.Println("  services.calc.eval       - RequestReplyService: evaluate an expression")
	log.Println("  services.history.get     - RequestReplyService: fetch one evaluation")
	log.Println("  services.history.recent  - RequestReplyService: fetch recent evaluations")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown")

	// Setup graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

// getEnv returns environment variable value or default.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt returns environment variable as int or default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
		log.Printf("Warning: invalid int value for %s: %s, using default: %d", key, value, defaultValue)
	}
	return defaultValue
}
