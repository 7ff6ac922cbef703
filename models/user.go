package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	UserID   string `gorm:"uniqueIndex;not null"` // identity used with the plan service
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string
	Goal     string // e.g. "cut", "recomp"
	Disabled bool
}
