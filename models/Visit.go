package models

import "gorm.io/gorm"

// Visit records one view of a public portfolio for the analytics summary.
type Visit struct {
	gorm.Model
	PortfolioID uint   `gorm:"index;not null"`
	VisitorIP   string `gorm:"type:varchar(64)"`
	UserAgent   string
	Referer     string
}
