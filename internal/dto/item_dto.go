package dto

type ItemDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	PhotoPath   *string `json:"photo_path"`
	BoxID       uint    `json:"box_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
