package models

import (
	"gorm.io/gorm"

	"folioforge/internal/content"
)

// Portfolio is the published personal site record, keyed by the owner's
// username. It is created the first time a portfolio is generated from a
// resume; the username slug never changes afterwards.
type Portfolio struct {
	gorm.Model
	UserID   uint             `gorm:"uniqueIndex;not null" json:"-"`
	Username string           `gorm:"uniqueIndex;not null" json:"username"`
	IsPublic bool             `gorm:"not null;default:false" json:"isPublic"`
	Version  int              `gorm:"not null;default:1" json:"version"`
	Content  content.Document `gorm:"type:jsonb" json:"content"`
}
