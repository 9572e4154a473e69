package models

type Item struct {
	BaseModel
	BoxID       uint    `gorm:"index;not null" json:"box_id"`
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	PhotoPath   *string `gorm:"type:varchar(255)" json:"photo_path"`

	// Box is only declared so the migration emits the foreign key.
	Box *Box `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
