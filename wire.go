//go:build wireinject
// +build wireinject

package main

import (
	"Shelf/cmd"
	"Shelf/database"
	"Shelf/internal/config"
	"Shelf/internal/handlers"
	"Shelf/internal/repository"
	"Shelf/internal/services"
	"Shelf/internal/storage"

	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration(config.ConfigPath())
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		services.NewBoxService,
		handlers.NewBoxHandler,
		repository.NewBoxRepository,
		services.NewItemService,
		handlers.NewItemHandler,
		repository.NewItemRepository,
		services.NewSearchService,
		handlers.NewSearchHandler,
		services.NewPhotoService,
		storage.NewStorage,
		database.SetupDatabase,
		services.NewLogService,
		Provider,
	)
	return nil, nil
}
