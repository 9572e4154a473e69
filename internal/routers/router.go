package routers

import (
	"Shelf/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	SetupBoxRouter(app, server)
	SetupItemRouter(app, server)
	SetupSearchRouter(app, server)
}
