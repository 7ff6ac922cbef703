package models

import (
	"time"
)

type DayType string

const (
	DayTypeTraining DayType = "training"
	DayTypeRest     DayType = "rest"
	DayTypeCheat    DayType = "cheat"
)

// SlotKey identifies a supplement timing slot within a daily plan.
type SlotKey string

const (
	SlotMorning     SlotKey = "morning"
	SlotPreWorkout  SlotKey = "preWorkout"
	SlotPostWorkout SlotKey = "postWorkout"
	SlotEvening     SlotKey = "evening"
)

// SlotOrder is the display order of the timing slots.
var SlotOrder = []SlotKey{SlotMorning, SlotPreWorkout, SlotPostWorkout, SlotEvening}

// ValidSlot reports whether k is one of the known timing slots.
func ValidSlot(k SlotKey) bool {
	for _, s := range SlotOrder {
		if s == k {
			return true
		}
	}
	return false
}

type Macros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// One planned meal (breakfast/lunch/…) inside the nutrition plan.
type PlannedMeal struct {
	Name     string  `json:"name"`
	Time     string  `json:"time,omitempty"` // e.g. "08:00"
	Calories float64 `json:"calories"`
	Macros   Macros  `json:"macros"`
}

type NutritionPlan struct {
	TotalCalories float64       `json:"totalCalories"`
	Macros        Macros        `json:"macros"`
	Meals         []PlannedMeal `json:"meals"`
}

// SupplementIntake is one scheduled supplement dose. SupplementID is stable
// and unique within a plan (a supplement appears in at most one slot).
type SupplementIntake struct {
	SupplementID string `json:"supplementId"`
	Name         string `json:"name"`
	Dosage       string `json:"dosage"` // e.g. "5 g"
	Time         string `json:"time,omitempty"`
	Taken        bool   `json:"taken"`
}

type SupplementPlan map[SlotKey][]SupplementIntake

// DailyPlan is the server-authoritative plan document for one user and one
// calendar day. It is superseded, never mutated in place, whenever a new
// document is fetched or generated.
type DailyPlan struct {
	ID             string         `json:"id"` // derived from userId+date server-side
	UserID         string         `json:"userId"`
	Date           time.Time      `json:"date"`
	DayType        DayType        `json:"dayType"`
	NutritionPlan  NutritionPlan  `json:"nutritionPlan"`
	SupplementPlan SupplementPlan `json:"supplementPlan"`
	DailyTip       string         `json:"dailyTip,omitempty"`
	Completed      bool           `json:"completed"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// Clone returns a deep copy of the plan.
func (p *DailyPlan) Clone() *DailyPlan {
	if p == nil {
		return nil
	}
	out := *p
	out.NutritionPlan.Meals = append([]PlannedMeal(nil), p.NutritionPlan.Meals...)
	out.SupplementPlan = make(SupplementPlan, len(p.SupplementPlan))
	for slot, intakes := range p.SupplementPlan {
		out.SupplementPlan[slot] = append([]SupplementIntake(nil), intakes...)
	}
	return &out
}

// HasSupplement reports whether the plan schedules the given supplement id.
func (p *DailyPlan) HasSupplement(supplementID string) bool {
	for _, intakes := range p.SupplementPlan {
		for _, it := range intakes {
			if it.SupplementID == supplementID {
				return true
			}
		}
	}
	return false
}

// ProgressSnapshot summarizes supplement completion for the current plan.
type ProgressSnapshot struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Percentage int `json:"percentage"`
}
