package services

import (
	"github.com/Hicham77500/BerserkerCut-sub001/models"
)

// Reconcile merges a plan document with a status override map and returns the
// effective plan (a deep copy with every intake's Taken bit resolved) plus the
// effective status map. Pure: no I/O, inputs are never mutated.
//
// Override entries win over the plan's own taken bits. Entries for supplement
// ids absent from the plan are dropped, so the effective map never references
// a supplement the current plan does not schedule.
func Reconcile(plan *models.DailyPlan, overrides map[string]bool) (*models.DailyPlan, map[string]bool) {
	out := plan.Clone()
	effective := make(map[string]bool)

	for _, intakes := range out.SupplementPlan {
		for i := range intakes {
			id := intakes[i].SupplementID
			taken := intakes[i].Taken
			if v, ok := overrides[id]; ok {
				taken = v
			}
			intakes[i].Taken = taken
			effective[id] = taken
		}
	}
	return out, effective
}
