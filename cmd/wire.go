package cmd

import (
	"Shelf/internal/config"
	"Shelf/internal/handlers"
	"Shelf/internal/services"

	"gorm.io/gorm"
)

type Server struct {
	Configuration *config.Configuration
	DB            *gorm.DB
	LogService    services.LogService
	BoxService    services.BoxService
	BoxHandler    *handlers.BoxHandler
	ItemService   services.ItemService
	ItemHandler   *handlers.ItemHandler
	SearchService services.SearchService
	SearchHandler *handlers.SearchHandler
}

func NewServer(
	configuration *config.Configuration,
	db *gorm.DB,
	logService services.LogService,
	boxService services.BoxService,
	boxHandler *handlers.BoxHandler,
	itemService services.ItemService,
	itemHandler *handlers.ItemHandler,
	searchService services.SearchService,
	searchHandler *handlers.SearchHandler,
) *Server {
	return &Server{
		Configuration: configuration,
		DB:            db,
		LogService:    logService,
		BoxService:    boxService,
		BoxHandler:    boxHandler,
		ItemService:   itemService,
		ItemHandler:   itemHandler,
		SearchService: searchService,
		SearchHandler: searchHandler,
	}
}
