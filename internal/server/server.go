package server

import (
	"Shelf/cmd"
	"Shelf/internal/handlers"
	"Shelf/internal/middleware"
	"Shelf/internal/routers"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const accessLogFormat = "${time} ${locals:request_id} ${status} - ${latency} ${method} ${path}\n"

// NewApp builds the fiber application with middleware and routes. It does
// not start listening.
func NewApp(server *cmd.Server) (*fiber.App, error) {
	cfg := server.Configuration
	app := fiber.New(fiber.Config{
		BodyLimit:    cfg.Server.RequestConfig.SizeLimit * 1024 * 1024,
		Concurrency:  cfg.Server.Concurrency * 1024,
		AppName:      "Shelf",
		ErrorHandler: handlers.ErrorHandler(server.LogService),
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	promMiddleware, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		return nil, err
	}

	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format: accessLogFormat,
		Output: server.LogService.Log.Out,
	}))
	app.Use(promMiddleware.Handler())

	app.Get(middleware.MetricsPath, adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	app.Get("/health", healthHandler(server))
	if cfg.Storage.Driver == "local" {
		app.Static("/storage", cfg.Storage.Path)
	}

	routers.SetupRoutes(app, server)
	return app, nil
}

func healthHandler(server *cmd.Server) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sqlDB, err := server.DB.DB()
		if err == nil {
			err = sqlDB.PingContext(c.UserContext())
		}
		if err != nil {
			server.LogService.Log.WithError(err).Warn("health check failed")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	}
}
