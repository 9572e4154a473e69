package mapper

import (
	"Shelf/internal/dto"
	"Shelf/internal/models"
	"Shelf/internal/services"
	"time"
)

// TimestampLayout is the wire format of created_at and updated_at.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

func ToBoxDTO(box *models.Box) dto.BoxDTO {
	return dto.BoxDTO{
		ID:          box.ID,
		Name:        box.Name,
		Description: box.Description,
		Location:    box.Location,
		PhotoPath:   box.PhotoPath,
		CreatedAt:   formatTime(box.CreatedAt),
		UpdatedAt:   formatTime(box.UpdatedAt),
	}
}

func ToBoxDTOWithItems(box *models.Box, items []models.Item) dto.BoxDTO {
	boxDTO := ToBoxDTO(box)
	itemDTOs := ToItemDTOs(items)
	boxDTO.Items = &itemDTOs
	return boxDTO
}

func ToBoxDTOs(boxes []models.Box) []dto.BoxDTO {
	boxDTOs := make([]dto.BoxDTO, 0, len(boxes))
	for i := range boxes {
		boxDTOs = append(boxDTOs, ToBoxDTO(&boxes[i]))
	}
	return boxDTOs
}

func ToSearchDTOs(results []services.SearchResult) []dto.BoxDTO {
	boxDTOs := make([]dto.BoxDTO, 0, len(results))
	for i := range results {
		boxDTOs = append(boxDTOs, ToBoxDTOWithItems(&results[i].Box, results[i].Items))
	}
	return boxDTOs
}
