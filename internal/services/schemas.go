package services

import "Shelf/internal/validation"

var boxSchema = validation.Schema{
	{Field: "name", Required: true, MaxLength: 255},
	{Field: "description"},
	{Field: "location", Required: true, MaxLength: 255},
}

var itemSchema = validation.Schema{
	{Field: "name", Required: true, MaxLength: 255},
	{Field: "description"},
	{Field: "photo_path", MaxLength: 255},
}

var (
	boxColumns  = []string{"name", "description", "location"}
	itemColumns = []string{"name", "description", "photo_path"}
)
