package dto

type BoxDTO struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Location    string  `json:"location"`
	PhotoPath   *string `json:"photo_path"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
	// Items is only set on single-box and search responses.
	Items *[]ItemDTO `json:"items,omitempty"`
}
