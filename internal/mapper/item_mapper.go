package mapper

import (
	"Shelf/internal/dto"
	"Shelf/internal/models"
)

func ToItemDTO(item *models.Item) dto.ItemDTO {
	return dto.ItemDTO{
		ID:          item.ID,
		Name:        item.Name,
		Description: item.Description,
		PhotoPath:   item.PhotoPath,
		BoxID:       item.BoxID,
		CreatedAt:   formatTime(item.CreatedAt),
		UpdatedAt:   formatTime(item.UpdatedAt),
	}
}

func ToItemDTOs(items []models.Item) []dto.ItemDTO {
	itemDTOs := make([]dto.ItemDTO, 0, len(items))
	for i := range items {
		itemDTOs = append(itemDTOs, ToItemDTO(&items[i]))
	}
	return itemDTOs
}
