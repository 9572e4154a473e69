package routers

import (
	"Shelf/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupBoxRouter(app *fiber.App, server *cmd.Server) {
	boxHandler := server.BoxHandler
	boxes := app.Group("/boxes")
	boxes.Get("", boxHandler.ListBoxes)
	boxes.Post("", boxHandler.CreateBox)
	boxes.Get("/:id", boxHandler.GetBoxByID)
	boxes.Put("/:id", boxHandler.UpdateBox)
	boxes.Delete("/:id", boxHandler.DeleteBox)
}
