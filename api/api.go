// Package api exposes dataset generation over HTTP.
package api

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/driftdata/driftgen/pkg/core"
	"github.com/driftdata/driftgen/pkg/pipeline"
	"github.com/driftdata/driftgen/report"
	"github.com/driftdata/driftgen/version"
)

// GenerateRequest is the JSON body for POST /generate.
type GenerateRequest struct {
	Columns    []core.ColumnSpec     `json:"columns"`
	Generation core.GenerationConfig `json:"generation"`
}

// GenerateResponse carries both delimited tables and the run report.
type GenerateResponse struct {
	Source string                  `json:"source"`
	Target string                  `json:"target"`
	Report report.GenerationReport `json:"report"`
}

// Server holds the Fiber app instance
type Server struct {
	app *fiber.App
}

// NewServer initializes a new Fiber instance with best practices
func NewServer() *Server {
	app := fiber.New(fiber.Config{
		IdleTimeout:  10 * time.Second,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Middleware
	app.Use(recover.New())     // Auto-recovers from panics
	app.Use(fiberlogger.New()) // Logs all requests

	// Routes
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})

	app.Get("/version", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"service": "Driftgen API",
			"version": version.Version,
			"build":   version.BuildDate,
			"time":    time.Now().UTC().Format(time.RFC3339),
		})
	})

	app.Post("/generate", handleGenerate)

	return &Server{app: app}
}

func handleGenerate(c *fiber.Ctx) error {
	var req GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	result, err := pipeline.Run(req.Columns, req.Generation, pipeline.Options{})
	if err != nil {
		var cfgErr *core.ConfigError
		var lookupErr *core.LookupError
		if errors.As(err, &cfgErr) || errors.As(err, &lookupErr) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(GenerateResponse{
		Source: result.SourceText,
		Target: result.TargetText,
		Report: report.GenerationReport{
			GeneratedAt:     time.Now().UTC(),
			Columns:         result.Source.Header(),
			SourceHeader:    result.Source.Header(),
			TargetHeader:    result.Target.Header(),
			Metrics:         result.Metrics,
			PerturbedTarget: len(result.Metrics.Stages) > 0,
		},
	})
}

// Start runs the Fiber server and handles graceful shutdown
func (s *Server) Start(port string) error {
	if port == "" {
		port = "3000" // Default port
	}

	// Channel to listen for OS termination signals (graceful shutdown)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)

	// Start server in a goroutine
	go func() {
		log.Printf("Driftgen API is running on port %s\n", port)
		if err := s.app.Listen(":" + port); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}()

	// Wait for shutdown signal
	<-quit
	log.Println("Received shutdown signal, stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.app.ShutdownWithContext(ctx); err != nil {
		log.Fatalf("Error shutting down: %v", err)
	}

	log.Println("Server shutdown successfully")
	return nil
}

// App exposes the underlying Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Shutdown stops the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
