package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type ServerOptions struct {
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
	AccessLog    bool
}

// NewApp builds the fiber application with the middleware chain and routes.
func NewApp(handler *Handler, options ServerOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Blushy",
		DisableStartupMessage: true,
		ReadTimeout:           options.ReadTimeout,
		WriteTimeout:          options.WriteTimeout,
		IdleTimeout:           options.IdleTimeout,
		ErrorHandler:          handler.errorHandler,
	})

	app.Use(recover.New())
	if options.AccessLog {
		app.Use(logger.New())
	}
	app.Use(compress.New())

	RegisterRoutes(app, handler)
	return app
}
