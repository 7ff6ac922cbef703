package services

import (
	"github.com/Hicham77500/BerserkerCut-sub001/models"
)

// PlanUpdate is a partial plan edit. Nil fields are left untouched;
// supplement slots are merged per slot, never wholesale.
type PlanUpdate struct {
	DayType        *models.DayType                              `json:"dayType,omitempty"`
	NutritionPlan  *NutritionPlanUpdate                         `json:"nutritionPlan,omitempty"`
	SupplementPlan map[models.SlotKey][]models.SupplementIntake `json:"supplementPlan,omitempty"`
	DailyTip       *string                                      `json:"dailyTip,omitempty"`
	Completed      *bool                                        `json:"completed,omitempty"`
}

type NutritionPlanUpdate struct {
	TotalCalories *float64              `json:"totalCalories,omitempty"`
	Macros        *MacrosUpdate         `json:"macros,omitempty"`
	Meals         *[]models.PlannedMeal `json:"meals,omitempty"`
}

type MacrosUpdate struct {
	Protein *float64 `json:"protein,omitempty"`
	Carbs   *float64 `json:"carbs,omitempty"`
	Fat     *float64 `json:"fat,omitempty"`
}

// mergePlanUpdate applies a partial update onto a copy of base. Substructures
// are deep-merged field by field so an update touching only macros.protein
// does not clobber the rest of the nutrition plan.
func mergePlanUpdate(base *models.DailyPlan, u PlanUpdate) *models.DailyPlan {
	out := base.Clone()

	if u.DayType != nil {
		out.DayType = *u.DayType
	}
	if u.DailyTip != nil {
		out.DailyTip = *u.DailyTip
	}
	if u.Completed != nil {
		out.Completed = *u.Completed
	}

	if np := u.NutritionPlan; np != nil {
		if np.TotalCalories != nil {
			out.NutritionPlan.TotalCalories = *np.TotalCalories
		}
		if np.Macros != nil {
			if np.Macros.Protein != nil {
				out.NutritionPlan.Macros.Protein = *np.Macros.Protein
			}
			if np.Macros.Carbs != nil {
				out.NutritionPlan.Macros.Carbs = *np.Macros.Carbs
			}
			if np.Macros.Fat != nil {
				out.NutritionPlan.Macros.Fat = *np.Macros.Fat
			}
		}
		if np.Meals != nil {
			out.NutritionPlan.Meals = append([]models.PlannedMeal(nil), *np.Meals...)
		}
	}

	for slot, intakes := range u.SupplementPlan {
		out.SupplementPlan[slot] = append([]models.SupplementIntake(nil), intakes...)
	}
	return out
}
