package main

import (
	"Shelf/database"
	"Shelf/internal/server"
	"Shelf/internal/tracing"
	"context"
	"fmt"
	"log"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	srv, err := InitializeServer()
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}
	logger := srv.LogService.Log
	defer database.CloseDatabase(srv.DB, srv.LogService)

	shutdownTracing, err := tracing.Init(context.Background(), srv.Configuration.Tracing, logger)
	if err != nil {
		logger.Fatalf("Failed to initialize tracing: %v", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			logger.Errorf("Failed to flush traces: %v", err)
		}
	}()

	app, err := server.NewApp(srv)
	if err != nil {
		logger.Fatalf("Failed to build app: %v", err)
	}

	err = app.Listen(fmt.Sprintf(":%d", srv.Configuration.Server.Port))
	if err != nil {
		logger.Errorf("Failed to start server: %v", err)
	}
}
