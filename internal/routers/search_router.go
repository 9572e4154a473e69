package routers

import (
	"Shelf/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupSearchRouter(app *fiber.App, server *cmd.Server) {
	app.Get("/search", server.SearchHandler.Search)
}
