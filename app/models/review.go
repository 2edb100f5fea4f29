package models

import "gorm.io/gorm"

// Review is a user's rating of a product. Rating is 1 to 5; a user may
// leave more than one review per product.
type Review struct {
	gorm.Model
	UserID    uint   `gorm:"not null;index" json:"userId"`
	ProductID uint   `gorm:"not null;index" json:"productId"`
	Rating    int    `gorm:"not null" json:"rating"`
	Title     string `gorm:"size:255" json:"title"`
	Comment   string `gorm:"type:text" json:"comment"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
