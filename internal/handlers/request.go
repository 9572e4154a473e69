package handlers

import (
	"Shelf/internal/services"
	"Shelf/internal/validation"
	"encoding/json"
	"mime/multipart"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

const photoField = "photo"

// parseRequest reads the payload of a create or update request. JSON bodies
// keep their value types so non-strings can be rejected; form bodies yield
// strings only. The photo is only present on multipart requests.
func parseRequest(c *fiber.Ctx) (validation.Input, *multipart.FileHeader, error) {
	contentType := strings.ToLower(string(c.Request().Header.ContentType()))
	switch {
	case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
		form, err := c.MultipartForm()
		if err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Malformed multipart body.")
		}
		input := validation.Input{}
		for key, values := range form.Value {
			if len(values) > 0 {
				input[key] = values[0]
			}
		}
		var photo *multipart.FileHeader
		if files := form.File[photoField]; len(files) > 0 {
			photo = files[0]
		}
		return input, photo, nil
	case strings.HasPrefix(contentType, fiber.MIMEApplicationForm):
		input := validation.Input{}
		c.Request().PostArgs().VisitAll(func(key, value []byte) {
			input[string(key)] = string(value)
		})
		return input, nil, nil
	default:
		input := validation.Input{}
		body := c.Body()
		if len(strings.TrimSpace(string(body))) == 0 {
			return input, nil, nil
		}
		if err := json.Unmarshal(body, &input); err != nil {
			return nil, nil, fiber.NewError(fiber.StatusBadRequest, "Malformed JSON body.")
		}
		return input, nil, nil
	}
}

// parseID reads a numeric route parameter. Anything else names no resource.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil || id == 0 {
		return 0, services.ErrNotFound
	}
	return uint(id), nil
}
