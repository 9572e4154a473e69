package handlers

import (
	"Shelf/internal/mapper"
	"Shelf/internal/services"

	"github.com/gofiber/fiber/v2"
)

type ItemHandler struct {
	service    services.ItemService
	logService services.LogService
}

func NewItemHandler(service services.ItemService, logService services.LogService) *ItemHandler {
	return &ItemHandler{service: service, logService: logService}
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	boxID, err := parseID(c, "box_id")
	if err != nil {
		return respondError(c, h.logService, err)
	}

	items, err := h.service.GetItems(boxID)
	if err != nil {
		return respondError(c, h.logService, err)
	}
	return c.JSON(fiber.Map{"data": mapper.ToItemDTOs(items)})
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	boxID, err := parseID(c, "box_id")
	if err != nil {
		return respondError(c, h.logService, err)
	}
	input, photo, err := parseRequest(c)
	if err != nil {
		return err
	}

	item, err := h.service.CreateItem(c.UserContext(), boxID, input, photo)
	if err != nil {
		return respondError(c, h.logService, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": mapper.ToItemDTO(item)})
}

func (h *ItemHandler) GetItemByID(c *fiber.Ctx) error {
	boxID, id, err := itemRoute(c)
	if err != nil {
		return respondError(c, h.logService, err)
	}

	item, err := h.service.GetItem(boxID, id)
	if err != nil {
		return respondError(c, h.logService, err)
	}
	return c.JSON(fiber.Map{"data": mapper.ToItemDTO(item)})
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	boxID, id, err := itemRoute(c)
	if err != nil {
		return respondError(c, h.logService, err)
	}
	input, photo, err := parseRequest(c)
	if err != nil {
		return err
	}

	item, err := h.service.UpdateItem(c.UserContext(), boxID, id, input, photo)
	if err != nil {
		return respondError(c, h.logService, err)
	}
	return c.JSON(fiber.Map{"data": mapper.ToItemDTO(item)})
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	boxID, id, err := itemRoute(c)
	if err != nil {
		return respondError(c, h.logService, err)
	}

	if err := h.service.DeleteItem(c.UserContext(), boxID, id); err != nil {
		return respondError(c, h.logService, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func itemRoute(c *fiber.Ctx) (uint, uint, error) {
	boxID, err := parseID(c, "box_id")
	if err != nil {
		return 0, 0, err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return 0, 0, err
	}
	return boxID, id, nil
}
