package routers

import (
	"Shelf/cmd"

	"github.com/gofiber/fiber/v2"
)

func SetupItemRouter(app *fiber.App, server *cmd.Server) {
	itemHandler := server.ItemHandler
	items := app.Group("/boxes/:box_id/items")
	items.Get("", itemHandler.ListItems)
	items.Post("", itemHandler.CreateItem)
	items.Get("/:id", itemHandler.GetItemByID)
	items.Put("/:id", itemHandler.UpdateItem)
	items.Delete("/:id", itemHandler.DeleteItem)
}
