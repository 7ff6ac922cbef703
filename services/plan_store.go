package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"

	"github.com/Hicham77500/BerserkerCut-sub001/models"
)

// ToggleState tracks one in-flight supplement toggle through the optimistic
// commit protocol: apply tentative value, attempt remote commit, revert on
// failure.
type ToggleState int

const (
	ToggleIdle ToggleState = iota
	TogglePending
	ToggleCommitted
	ToggleRolledBack
)

func (s ToggleState) String() string {
	switch s {
	case TogglePending:
		return "pending"
	case ToggleCommitted:
		return "committed"
	case ToggleRolledBack:
		return "rolled_back"
	default:
		return "idle"
	}
}

// PlanStore owns the plan currently shown to one authenticated user, its
// effective supplement status and the derived progress. One instance per
// session; all mutations are serialized by the store's mutex, so at most one
// remote round-trip is in flight per user at a time.
//
// Three state layers are kept mutually consistent across every operation,
// whether it returns or fails: the in-memory effective plan, the progress
// snapshot, and the override map persisted in the local store under a key
// scoped to the current plan id.
type PlanStore struct {
	mu     sync.Mutex
	userID string
	remote RemotePlanService
	store  OverrideStore
	hub    *SyncHub // optional; nil disables realtime push

	basePlan  *models.DailyPlan // last authoritative document, overrides not applied
	plan      *models.DailyPlan // effective plan the UI renders
	overrides map[string]bool
	effective map[string]bool
	progress  models.ProgressSnapshot
	scope     string // plan id the override map was read under

	lastToggle ToggleState
}

func NewPlanStore(userID string, remote RemotePlanService, store OverrideStore, hub *SyncHub) *PlanStore {
	return &PlanStore{
		userID:    userID,
		remote:    remote,
		store:     store,
		hub:       hub,
		overrides: make(map[string]bool),
		effective: make(map[string]bool),
	}
}

// Plan returns a copy of the effective plan, or nil before the first load.
func (s *PlanStore) Plan() *models.DailyPlan {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.plan.Clone()
}

func (s *PlanStore) Progress() models.ProgressSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.progress
}

// EffectiveStatus returns a copy of the per-supplement effective taken map.
func (s *PlanStore) EffectiveStatus() map[string]bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneStatusMap(s.effective)
}

// LastToggleState reports how the most recent toggle ended.
func (s *PlanStore) LastToggleState() ToggleState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastToggle
}

// LoadTodaysPlan fetches today's plan, asks the service to generate one when
// none exists yet, and hydrates. On failure the prior state is left untouched.
func (s *PlanStore) LoadTodaysPlan() (*models.DailyPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.remote.GetTodaysPlan(s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load today's plan: %w", err)
	}
	if doc == nil {
		doc, err = s.remote.GenerateDailyPlan(s.userID)
		if err != nil {
			return nil, fmt.Errorf("failed to generate daily plan: %w", err)
		}
	}
	s.hydrate(doc)
	return s.plan.Clone(), nil
}

// GenerateDailyPlan forces regeneration, superseding the current plan.
func (s *PlanStore) GenerateDailyPlan() (*models.DailyPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.remote.GenerateDailyPlan(s.userID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate daily plan: %w", err)
	}
	s.hydrate(doc)
	return s.plan.Clone(), nil
}

// UpdatePlan applies a partial update optimistically, confirms it remotely,
// and re-hydrates from the authoritative response. On remote failure the
// pre-update plan and progress are restored before the error is returned.
func (s *PlanStore) UpdatePlan(planID string, update PlanUpdate) (*models.DailyPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if planID == "" {
		return nil, fmt.Errorf("%w: missing plan id", ErrValidation)
	}
	if s.basePlan == nil || s.basePlan.ID != planID {
		return nil, fmt.Errorf("%w: plan %s is not the active plan", ErrValidation, planID)
	}
	for slot := range update.SupplementPlan {
		if !models.ValidSlot(slot) {
			return nil, fmt.Errorf("%w: unknown supplement slot %q", ErrValidation, slot)
		}
	}

	prevBase := s.basePlan
	s.basePlan = mergePlanUpdate(s.basePlan, update) // optimistic guess
	s.rebuild()

	doc, err := s.remote.UpdateDailyPlan(planID, update)
	if err != nil {
		s.basePlan = prevBase
		s.rebuild()
		return nil, fmt.Errorf("failed to update plan: %w", err)
	}
	s.hydrate(doc)
	return s.plan.Clone(), nil
}

// ToggleSupplement flips a supplement between taken and untaken with
// optimistic feedback. The remote contract only knows "mark taken", so
// untaking stays local: the override map carries the untaken bit instead.
func (s *PlanStore) ToggleSupplement(planID, supplementID string) (*models.DailyPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.toggleLocked(planID, supplementID)
}

// MarkSupplementTaken toggles only when the supplement is not already taken,
// so repeated calls issue at most one remote round-trip.
func (s *PlanStore) MarkSupplementTaken(planID, supplementID string) (*models.DailyPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.plan != nil && s.effective[supplementID] {
		return s.plan.Clone(), nil
	}
	return s.toggleLocked(planID, supplementID)
}

func (s *PlanStore) toggleLocked(planID, supplementID string) (*models.DailyPlan, error) {
	if planID == "" || supplementID == "" {
		return nil, fmt.Errorf("%w: plan id and supplement id are required", ErrValidation)
	}
	if s.basePlan == nil {
		return nil, fmt.Errorf("%w: no plan loaded", ErrValidation)
	}
	if planID != s.scope {
		return nil, fmt.Errorf("%w: plan %s is not the active plan", ErrValidation, planID)
	}
	if !s.basePlan.HasSupplement(supplementID) {
		return nil, fmt.Errorf("%w: supplement %s is not in today's plan", ErrNotFound, supplementID)
	}

	prev := s.effective[supplementID]
	next := !prev

	// optimistic flip: memory + durable override move before any remote call
	snapshot := cloneStatusMap(s.overrides)
	s.overrides[supplementID] = next
	s.rebuild()
	s.persistOverrides()
	s.lastToggle = TogglePending

	if !next {
		// untake: local only, the service has no un-mark operation
		s.lastToggle = ToggleCommitted
		return s.plan.Clone(), nil
	}

	doc, err := s.remote.MarkSupplementTaken(planID, supplementID)
	if err != nil {
		s.overrides = snapshot
		s.rebuild()
		s.persistOverrides()
		s.lastToggle = ToggleRolledBack
		return nil, fmt.Errorf("failed to mark supplement taken: %w", err)
	}
	s.hydrate(doc)
	s.lastToggle = ToggleCommitted
	return s.plan.Clone(), nil
}

// hydrate installs a freshly obtained plan document: dates are already
// normalized by the client decode, the override map is re-read under the new
// plan's own id, and the effective plan and progress are rebuilt. A map
// persisted under any other plan id is never merged.
func (s *PlanStore) hydrate(doc *models.DailyPlan) {
	s.basePlan = doc.Clone()
	s.scope = doc.ID
	s.overrides = s.readOverrides(doc.ID)
	s.rebuild()
}

// rebuild recomputes the effective plan and progress from the base plan and
// override map, then pushes the new snapshot to the user's live clients.
func (s *PlanStore) rebuild() {
	s.plan, s.effective = Reconcile(s.basePlan, s.overrides)
	s.progress = ComputeProgress(s.plan, s.effective)

	if s.hub != nil {
		s.hub.BroadcastPlan(s.userID, map[string]any{
			"kind":     "plan.updated",
			"plan":     s.plan,
			"progress": s.progress,
		})
	}
}

func (s *PlanStore) readOverrides(planID string) map[string]bool {
	raw, err := s.store.GetItem(OverrideKey(planID))
	if err != nil {
		log.Printf("override store read failed for plan %s: %v", planID, err)
		return make(map[string]bool)
	}
	if raw == "" {
		return make(map[string]bool)
	}
	m := make(map[string]bool)
	if err := json.Unmarshal([]byte(raw), &m); err != nil {
		log.Printf("discarding malformed override map for plan %s: %v", planID, err)
		return make(map[string]bool)
	}
	return m
}

// persistOverrides writes the override map under the active scope. A write
// failure degrades to in-memory-only status and never blocks the caller.
func (s *PlanStore) persistOverrides() {
	b, err := json.Marshal(s.overrides)
	if err != nil {
		log.Printf("failed to encode override map for plan %s: %v", s.scope, err)
		return
	}
	if err := s.store.SetItem(OverrideKey(s.scope), string(b)); err != nil {
		log.Printf("override store write failed for plan %s: %v", s.scope, err)
	}
}

func cloneStatusMap(m map[string]bool) map[string]bool {
	out := make(map[string]bool, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
