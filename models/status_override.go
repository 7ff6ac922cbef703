package models

import (
	"gorm.io/gorm"
)

// StatusOverride is one persisted key→value entry of the supplement status
// cache. Key is scoped to a single plan id, value is a JSON-encoded
// map[supplementId]bool.
type StatusOverride struct {
	gorm.Model
	Key   string `gorm:"uniqueIndex;not null"`
	Value string `gorm:"type:text;not null"`
}
