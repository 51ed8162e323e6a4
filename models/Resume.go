package models

import (
	"gorm.io/gorm"

	"folioforge/internal/content"
)

// Resume stores one uploaded resume file together with the structured
// content extracted from it.
type Resume struct {
	gorm.Model
	UserID           uint               `gorm:"index;not null" json:"userId"`
	OriginalFileName string             `json:"originalFileName"`
	StoredPath       string             `json:"-"`
	FileType         string             `json:"fileType"`
	ParsedData       content.ResumeData `gorm:"type:jsonb" json:"parsedData"`
	UsedInPortfolio  bool               `gorm:"not null;default:false" json:"isUsedInPortfolio"`
}
