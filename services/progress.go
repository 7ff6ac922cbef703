package services

import (
	"math"

	"github.com/Hicham77500/BerserkerCut-sub001/models"
)

// ComputeProgress counts supplement completion over the ids present in the
// plan. Ids that only exist in the effective map are ignored. An empty plan
// yields the zero snapshot.
func ComputeProgress(plan *models.DailyPlan, effective map[string]bool) models.ProgressSnapshot {
	total, completed := 0, 0
	for _, intakes := range plan.SupplementPlan {
		for _, it := range intakes {
			total++
			if effective[it.SupplementID] {
				completed++
			}
		}
	}
	if total == 0 {
		return models.ProgressSnapshot{}
	}
	pct := int(math.Round(100 * float64(completed) / float64(total)))
	return models.ProgressSnapshot{Total: total, Completed: completed, Percentage: pct}
}
