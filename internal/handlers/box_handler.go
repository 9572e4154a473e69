package handlers

import (
	"Shelf/internal/mapper"
	"Shelf/internal/services"

	"github.com/gofiber/fiber/v2"
)

type BoxHandler struct {
	service    services.BoxService
	logService services.LogService
}

func NewBoxHandler(service services.BoxService, logService services.LogService) *BoxHandler {
	return &BoxHandler{service: service, logService: logService}
}

func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	boxes, err := h.service.GetBoxes()
	if err != nil {
		return respondError(c, h.logService, err)
	}
	return c.JSON(fiber.Map{"data": mapper.ToBoxDTOs(boxes)})
}

func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	input, photo, err := parseRequest(c)
	if err != nil {
		return err
	}

	box, err := h.service.CreateBox(c.UserContext(), input, photo)
	if err != nil {
		return respondError(c, h.logService, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"data": mapper.ToBoxDTO(box)})
}

func (h *BoxHandler) GetBoxByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.logService, err)
	}

	box, items, err := h.service.GetBoxByID(id)
	if err != nil {
		return respondError(c, h.logService, err)
	}
	return c.JSON(fiber.Map{"data": mapper.ToBoxDTOWithItems(box, items)})
}

func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.logService, err)
	}
	input, _, err := parseRequest(c)
	if err != nil {
		return err
	}

	box, err := h.service.UpdateBox(id, input)
	if err != nil {
		return respondError(c, h.logService, err)
	}
	return c.JSON(fiber.Map{"data": mapper.ToBoxDTO(box)})
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return respondError(c, h.logService, err)
	}

	if err := h.service.DeleteBox(c.UserContext(), id); err != nil {
		return respondError(c, h.logService, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
