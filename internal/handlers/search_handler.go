package handlers

import (
	"Shelf/internal/mapper"
	"Shelf/internal/services"
	"strings"

	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	service    services.SearchService
	logService services.LogService
}

func NewSearchHandler(service services.SearchService, logService services.LogService) *SearchHandler {
	return &SearchHandler{service: service, logService: logService}
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	results, err := h.service.Search(strings.Clone(c.Query("q")))
	if err != nil {
		return respondError(c, h.logService, err)
	}
	return c.JSON(fiber.Map{"data": mapper.ToSearchDTOs(results)})
}
