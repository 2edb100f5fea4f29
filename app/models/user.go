package models

import "gorm.io/gorm"

// User is an account that can shop and, with the admin role, manage the
// catalogue.
type User struct {
	gorm.Model
	Username string `gorm:"uniqueIndex;size:255;not null" json:"username"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never serialised
	Role     string `gorm:"size:50;not null;default:user" json:"role"`
}
