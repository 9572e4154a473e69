package models

type Box struct {
	BaseModel
	Name        string  `gorm:"type:varchar(255);not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	Location    string  `gorm:"type:varchar(255);not null" json:"location"`
	PhotoPath   *string `gorm:"type:varchar(255)" json:"photo_path"`
}
