package services

import (
	"testing"
	"time"

	"github.com/Hicham77500/BerserkerCut-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPlan() *models.DailyPlan {
	return &models.DailyPlan{
		ID:      "u1_2025-06-02",
		UserID:  "u1",
		Date:    time.Date(2025, 6, 2, 0, 0, 0, 0, time.Local),
		DayType: models.DayTypeTraining,
		NutritionPlan: models.NutritionPlan{
			TotalCalories: 2200,
			Macros:        models.Macros{Protein: 180, Carbs: 200, Fat: 60},
			Meals: []models.PlannedMeal{
				{Name: "Breakfast", Time: "08:00", Calories: 600},
				{Name: "Dinner", Time: "20:00", Calories: 700},
			},
		},
		SupplementPlan: models.SupplementPlan{
			models.SlotMorning: {
				{SupplementID: "s1", Name: "Creatine", Dosage: "5 g"},
			},
			models.SlotEvening: {
				{SupplementID: "s2", Name: "ZMA", Dosage: "1 cap"},
			},
		},
	}
}

func effectiveOf(plan *models.DailyPlan, id string) bool {
	for _, intakes := range plan.SupplementPlan {
		for _, it := range intakes {
			if it.SupplementID == id {
				return it.Taken
			}
		}
	}
	return false
}

func TestReconcileOverrideWins(t *testing.T) {
	plan := testPlan()

	out, effective := Reconcile(plan, map[string]bool{"s1": true})

	assert.True(t, effective["s1"])
	assert.False(t, effective["s2"])
	assert.True(t, effectiveOf(out, "s1"))
	assert.False(t, effectiveOf(out, "s2"))
}

func TestReconcileFallsBackToPlanBits(t *testing.T) {
	plan := testPlan()
	plan.SupplementPlan[models.SlotEvening][0].Taken = true

	_, effective := Reconcile(plan, map[string]bool{})

	assert.False(t, effective["s1"])
	assert.True(t, effective["s2"])
}

func TestReconcileOverrideCanUntake(t *testing.T) {
	plan := testPlan()
	plan.SupplementPlan[models.SlotMorning][0].Taken = true

	out, effective := Reconcile(plan, map[string]bool{"s1": false})

	assert.False(t, effective["s1"])
	assert.False(t, effectiveOf(out, "s1"))
}

func TestReconcileDropsUnknownIds(t *testing.T) {
	plan := testPlan()

	_, effective := Reconcile(plan, map[string]bool{"ghost": true, "s1": true})

	_, ok := effective["ghost"]
	assert.False(t, ok, "effective map must only hold ids present in the plan")
	assert.Len(t, effective, 2)
}

func TestReconcileDoesNotMutateInput(t *testing.T) {
	plan := testPlan()

	out, _ := Reconcile(plan, map[string]bool{"s1": true})

	require.NotSame(t, plan, out)
	assert.False(t, plan.SupplementPlan[models.SlotMorning][0].Taken,
		"input plan must stay untouched")
}
