package services

import (
	"testing"
	"time"

	"github.com/Hicham77500/BerserkerCut-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func testProfile() []models.TrainingDay {
	return []models.TrainingDay{
		{UserID: "u1", Weekday: int(time.Monday), Label: "Push day", TimeSlot: "18:30", Focus: "Chest / triceps"},
		{UserID: "u1", Weekday: int(time.Thursday), Label: "Pull day", TimeSlot: "18:30", Focus: "Back / biceps"},
		{UserID: "u1", Weekday: int(time.Saturday), Label: "Legs", TimeSlot: "10:00"},
	}
}

func TestBuildWeeklyScheduleStartsMonday(t *testing.T) {
	// Wednesday 2025-06-04
	clock := fixedClock{now: time.Date(2025, 6, 4, 15, 30, 0, 0, time.Local)}

	week := BuildWeeklySchedule(testProfile(), clock)

	require.Len(t, week, 7)
	assert.Equal(t, "2025-06-02", week[0].Date)
	assert.Equal(t, "Monday", week[0].DayOfWeek)
	assert.Equal(t, "2025-06-08", week[6].Date)
	assert.Equal(t, "Sunday", week[6].DayOfWeek)
}

func TestBuildWeeklyScheduleMatchesTrainingDays(t *testing.T) {
	clock := fixedClock{now: time.Date(2025, 6, 4, 15, 30, 0, 0, time.Local)}

	week := BuildWeeklySchedule(testProfile(), clock)

	assert.True(t, week[0].IsTrainingDay)
	assert.Equal(t, "Push day", week[0].Label)
	require.NotNil(t, week[0].Training)
	assert.Equal(t, "18:30", week[0].Training.TimeSlot)

	assert.False(t, week[1].IsTrainingDay) // Tuesday
	assert.Equal(t, "Rest", week[1].Label)
	assert.Nil(t, week[1].Training)

	assert.True(t, week[3].IsTrainingDay) // Thursday
	assert.True(t, week[5].IsTrainingDay) // Saturday
}

func TestBuildWeeklyScheduleMarksToday(t *testing.T) {
	clock := fixedClock{now: time.Date(2025, 6, 4, 15, 30, 0, 0, time.Local)}

	week := BuildWeeklySchedule(testProfile(), clock)

	for i, day := range week {
		assert.Equal(t, i == 2, day.IsToday, "only Wednesday is today (index %d)", i)
	}
}

func TestBuildWeeklyScheduleOnSunday(t *testing.T) {
	// Sunday belongs to the week that started the previous Monday
	clock := fixedClock{now: time.Date(2025, 6, 8, 9, 0, 0, 0, time.Local)}

	week := BuildWeeklySchedule(testProfile(), clock)

	assert.Equal(t, "2025-06-02", week[0].Date)
	assert.True(t, week[6].IsToday)
}

func TestBuildWeeklyScheduleEmptyProfile(t *testing.T) {
	clock := fixedClock{now: time.Date(2025, 6, 4, 15, 30, 0, 0, time.Local)}

	week := BuildWeeklySchedule(nil, clock)

	require.Len(t, week, 7)
	for _, day := range week {
		assert.False(t, day.IsTrainingDay)
		assert.Equal(t, "Rest", day.Label)
	}
}

func TestBuildWeeklyScheduleDefaultLabel(t *testing.T) {
	clock := fixedClock{now: time.Date(2025, 6, 4, 15, 30, 0, 0, time.Local)}
	profile := []models.TrainingDay{{UserID: "u1", Weekday: int(time.Friday)}}

	week := BuildWeeklySchedule(profile, clock)

	assert.Equal(t, "Training", week[4].Label)
}
