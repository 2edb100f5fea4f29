package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Product is a catalogue entry. Price is a decimal column so money never
// goes through binary floats.
type Product struct {
	gorm.Model
	Name        string          `gorm:"size:255;not null;index" json:"name"`
	Description string          `gorm:"type:text"               json:"description"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Image       string          `gorm:"size:512"                json:"image"`
	Category    string          `gorm:"size:100;not null;index" json:"category"`
	Stock       int             `gorm:"not null;default:10"     json:"stock"`
}
