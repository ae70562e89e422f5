package api

import (
	"context"
	"fmt"
	"log"

	"github.com/go-monolith/mono"
	"github.com/gofiber/fiber/v2"

	"ratcalc/modules/calc"
	"ratcalc/modules/history"
)

// Module provides the REST API as a mono module.
type Module struct {
	app     *fiber.App
	handler *Handler
	service *calc.Service
	history *history.Module
	port    int
}

// Compile-time interface check.
var _ mono.Module = (*Module)(nil)

// NewModule creates a new API module.
func NewModule(port int, service *calc.Service, hist *history.Module) *Module {
	return &Module{
		port:    port,
		service: service,
		history: hist,
	}
}

// Name returns the module name.
func (m *Module) Name() string {
	return "api"
}

// Start builds the Fiber app and starts the HTTP server.
func (m *Module) Start(_ context.Context) error {
	m.app = fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error":   "internal_error",
				"message": "An unexpected error occurred",
			})
		},
	})

	m.handler = NewHandler(m.service, m.history)
	m.handler.RegisterRoutes(m.app)

	m.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"service": "ratcalc",
		})
	})

	go func() {
		addr := fmt.Sprintf(":%d", m.port)
		log.Printf("[api] Starting HTTP server on %s", addr)
		if err := m.app.Listen(addr); err != nil {
			log.Printf("[api] HTTP server error: %v", err)
		}
	}()
	return nil
}

// Stop shuts down the HTTP server gracefully.
func (m *Module) Stop(_ context.Context) error {
	if m.app != nil {
		if err := m.app.Shutdown(); err != nil {
			return err
		}
	}
	log.Println("[api] Module stopped")
	return nil
}
