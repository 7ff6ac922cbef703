package models

import (
	"gorm.io/gorm"
)

// TrainingDay is one recurring entry of a user's training profile.
type TrainingDay struct {
	gorm.Model
	UserID   string `gorm:"index;not null" json:"-"`
	Weekday  int    `gorm:"not null" json:"weekday"` // time.Weekday numbering (0 = Sunday)
	Label    string `json:"label"`                   // e.g. "Push day"
	TimeSlot string `json:"timeSlot,omitempty"`      // e.g. "18:30"
	Focus    string `json:"focus,omitempty"`         // e.g. "Chest / triceps"
}

// WeeklyTrainingSession is one day of the derived 7-day overview.
type WeeklyTrainingSession struct {
	Date          string       `json:"date"` // YYYY-MM-DD
	DayOfWeek     string       `json:"dayOfWeek"`
	Label         string       `json:"label"`
	IsTrainingDay bool         `json:"isTrainingDay"`
	Training      *TrainingDay `json:"training,omitempty"`
	IsToday       bool         `json:"isToday"`
}
