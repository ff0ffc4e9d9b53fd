package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/catalog"
	apperrors "github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/errors"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/logger"
)

// AllocationStore owns the in-memory allocation state for the currently
// selected date. It is the single writer of team/mission/group/plan-load
// state; the move and group services are the only permitted mutators, and
// they reconcile via Refresh after every accepted mutation instead of
// patching counts locally.
type AllocationStore struct {
	gateway catalog.Gateway
	log     *logger.Logger

	mu         sync.RWMutex
	snapshot   *Snapshot
	activeDate string

	// opMu serializes engine mutations so each one evaluates constraints
	// against a stable snapshot and reconciles before the next begins.
	opMu sync.Mutex
}

// NewAllocationStore creates an allocation store backed by the catalog gateway.
func NewAllocationStore(gateway catalog.Gateway) *AllocationStore {
	return &AllocationStore{
		gateway: gateway,
		log:     logger.New().WithField("component", "allocation_store"),
	}
}

// LoadForDate fetches teams, missions, groups and plan load for the date and
// replaces the in-memory snapshot atomically. On any gateway error the
// previous snapshot is retained and the error surfaced; consumers never see
// a half-merged state. Selecting a new date abandons interest in loads still
// in flight for the previous date.
func (s *AllocationStore) LoadForDate(ctx context.Context, date string) (*Snapshot, error) {
	s.mu.Lock()
	s.activeDate = date
	s.mu.Unlock()

	return s.fetchAndSwap(ctx, date)
}

// Refresh re-executes LoadForDate for the active date. Called after every
// accepted mutation; the refreshed state is ground truth.
func (s *AllocationStore) Refresh(ctx context.Context) (*Snapshot, error) {
	s.mu.RLock()
	date := s.activeDate
	s.mu.RUnlock()

	if date == "" {
		return nil, apperrors.ErrNoActiveSession
	}
	return s.fetchAndSwap(ctx, date)
}

// RefreshFor re-fetches state for the date a mutation was issued against.
// If the session has moved to another date in the meantime, nothing is
// fetched and ErrStaleSnapshot is returned: a mutation must never confirm
// itself against another date's rosters.
func (s *AllocationStore) RefreshFor(ctx context.Context, date string) (*Snapshot, error) {
	s.mu.RLock()
	active := s.activeDate
	s.mu.RUnlock()

	if active == "" {
		return nil, apperrors.ErrNoActiveSession
	}
	if active != date {
		s.log.WithDate(date).Warn("skipping refresh for superseded date")
		return nil, apperrors.ErrStaleSnapshot
	}
	return s.fetchAndSwap(ctx, date)
}

func (s *AllocationStore) fetchAndSwap(ctx context.Context, date string) (*Snapshot, error) {
	teams, err := s.gateway.GetTeams(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load teams: %w", err)
	}
	missions, err := s.gateway.GetMissions(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load missions: %w", err)
	}
	groups, err := s.gateway.GetMissionGroups(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load mission groups: %w", err)
	}
	planLoad, err := s.gateway.GetPlanLoad(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan load: %w", err)
	}

	snap := &Snapshot{
		Date:     date,
		Teams:    teams,
		Missions: missions,
		Groups:   groups,
		PlanLoad: planLoad,
		LoadedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.activeDate != date {
		// The session moved to another date while this load was in
		// flight; the response must not leak into the new date's view.
		s.log.WithDate(date).Warn("discarding snapshot for superseded date")
		return nil, apperrors.ErrStaleSnapshot
	}
	s.snapshot = snap
	return snap, nil
}

// Current returns the active snapshot.
func (s *AllocationStore) Current() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, apperrors.ErrNoActiveSession
	}
	return s.snapshot, nil
}

// ActiveDate returns the currently selected date, or "".
func (s *AllocationStore) ActiveDate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeDate
}

// BeginMutation acquires the mutation lock and returns the stable snapshot
// the mutation's constraints must be evaluated against. The release func must
// be called once the mutation, including its reconciling refresh, completes.
func (s *AllocationStore) BeginMutation() (*Snapshot, func(), error) {
	s.opMu.Lock()
	snap, err := s.Current()
	if err != nil {
		s.opMu.Unlock()
		return nil, nil, err
	}
	return snap, func() { s.opMu.Unlock() }, nil
}

// MarkMissionsAssigned applies the optimistic assignment patch after a
// confirmed group mutation. It swaps in a copied snapshot; the authoritative
// plan-load counts still come from the follow-up refresh. The patch is
// dropped when the current snapshot is no longer for the date the mutation
// was issued against.
func (s *AllocationStore) MarkMissionsAssigned(date string, missionIDs []int, assigned bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil || s.snapshot.Date != date {
		return
	}
	s.snapshot = s.snapshot.withMissionsAssigned(missionIDs, assigned)
}
