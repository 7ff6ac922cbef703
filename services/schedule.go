package services

import (
	"time"

	"github.com/Hicham77500/BerserkerCut-sub001/models"
	"github.com/Hicham77500/BerserkerCut-sub001/utils"
)

// BuildWeeklySchedule derives the 7-day training/rest overview for the week
// containing "now", Monday first. Pure function of the profile and the
// injected clock.
func BuildWeeklySchedule(profile []models.TrainingDay, clock utils.Clock) []models.WeeklyTrainingSession {
	now := clock.Now()
	start := utils.WeekStart(now)
	today := utils.DayStart(now)

	byWeekday := make(map[time.Weekday]*models.TrainingDay, len(profile))
	for i := range profile {
		byWeekday[time.Weekday(profile[i].Weekday)] = &profile[i]
	}

	out := make([]models.WeeklyTrainingSession, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		td := byWeekday[day.Weekday()]

		label := "Rest"
		if td != nil {
			label = td.Label
			if label == "" {
				label = "Training"
			}
		}

		out = append(out, models.WeeklyTrainingSession{
			Date:          day.Format("2006-01-02"),
			DayOfWeek:     day.Weekday().String(),
			Label:         label,
			IsTrainingDay: td != nil,
			Training:      td,
			IsToday:       day.Equal(today),
		})
	}
	return out
}
