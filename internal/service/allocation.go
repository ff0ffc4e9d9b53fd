package service

import (
	"context"
	"fmt"
	"time"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/catalog"
	apperrors "github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/errors"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/logger"
)

const dateLayout = "2006-01-02"

// TeamView is a team enriched with derived validity flags for presentation.
// Validity is recomputed from the snapshot on every read, never cached.
type TeamView struct {
	catalog.Team
	Reserved bool `json:"reserved"`
	Valid    bool `json:"valid"`
}

// SessionResponse summarizes the snapshot loaded for a date.
type SessionResponse struct {
	Date         string    `json:"date"`
	TeamCount    int       `json:"team_count"`
	MissionCount int       `json:"mission_count"`
	GroupCount   int       `json:"group_count"`
	LoadedAt     time.Time `json:"loaded_at"`
}

// AllocationService owns the date-scoped session: it selects dates, exposes
// read views of the snapshot, and holds the selection sets. All mutation
// goes through the move and group services, which share its store.
type AllocationService struct {
	store      *AllocationStore
	limits     Limits
	selections *MissionSelections
	log        *logger.Logger
}

// NewAllocationService creates the session-scoped allocation service.
func NewAllocationService(store *AllocationStore, limits Limits, selections *MissionSelections) *AllocationService {
	return &AllocationService{
		store:      store,
		limits:     limits,
		selections: selections,
		log:        logger.New().WithField("component", "allocation_service"),
	}
}

func validateDate(date string) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return apperrors.NewValidationError("date", "must be in YYYY-MM-DD format")
	}
	return nil
}

// SelectDate switches the active session to a date, loads its snapshot, and
// resets both mission selection sets. The previous date's snapshot and any
// of its in-flight refreshes are abandoned.
func (s *AllocationService) SelectDate(ctx context.Context, date string) (*SessionResponse, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}

	snap, err := s.store.LoadForDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load allocation state: %w", err)
	}

	s.selections.Reset()
	s.log.WithDate(date).Infof("session loaded: %d teams, %d missions, %d groups",
		len(snap.Teams), len(snap.Missions), len(snap.Groups))

	return sessionResponse(snap), nil
}

// Refresh re-queries the catalog for the active date.
func (s *AllocationService) Refresh(ctx context.Context) (*SessionResponse, error) {
	snap, err := s.store.Refresh(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to refresh allocation state: %w", err)
	}
	return sessionResponse(snap), nil
}

// Teams returns the active snapshot's teams with derived validity flags.
func (s *AllocationService) Teams() ([]TeamView, error) {
	snap, err := s.store.Current()
	if err != nil {
		return nil, err
	}

	views := make([]TeamView, len(snap.Teams))
	for i := range snap.Teams {
		views[i] = TeamView{
			Team:     snap.Teams[i],
			Reserved: s.limits.IsReservedTeam(snap.Teams[i].ID),
			Valid:    IsTeamValid(s.limits, &snap.Teams[i]),
		}
	}
	return views, nil
}

// Missions returns the active snapshot's missions.
func (s *AllocationService) Missions() ([]catalog.Mission, error) {
	snap, err := s.store.Current()
	if err != nil {
		return nil, err
	}
	return snap.Missions, nil
}

// Groups returns the active snapshot's mission groups.
func (s *AllocationService) Groups() ([]catalog.MissionGroup, error) {
	snap, err := s.store.Current()
	if err != nil {
		return nil, err
	}
	return snap.Groups, nil
}

// PlanLoad returns the active snapshot's per-resource plan load.
func (s *AllocationService) PlanLoad() (*catalog.PlanLoad, error) {
	snap, err := s.store.Current()
	if err != nil {
		return nil, err
	}
	return snap.PlanLoad, nil
}

// UpdateSelection adds or removes mission ids in one selection set. Ids must
// refer to missions present in the active snapshot.
func (s *AllocationService) UpdateSelection(kind SelectionKind, missionIDs []int, selected bool) ([]int, error) {
	snap, err := s.store.Current()
	if err != nil {
		return nil, err
	}
	for _, id := range missionIDs {
		if snap.Mission(id) == nil {
			return nil, apperrors.NewValidationError("mission_ids", fmt.Sprintf("mission %d is not on the active date", id))
		}
	}

	if selected {
		err = s.selections.Select(kind, missionIDs...)
	} else {
		err = s.selections.Deselect(kind, missionIDs...)
	}
	if err != nil {
		return nil, err
	}
	return s.selections.Selected(kind)
}

// ClearSelection empties one selection set.
func (s *AllocationService) ClearSelection(kind SelectionKind) error {
	return s.selections.Clear(kind)
}

// Selection returns the current contents of one selection set.
func (s *AllocationService) Selection(kind SelectionKind) ([]int, error) {
	return s.selections.Selected(kind)
}

func sessionResponse(snap *Snapshot) *SessionResponse {
	return &SessionResponse{
		Date:         snap.Date,
		TeamCount:    len(snap.Teams),
		MissionCount: len(snap.Missions),
		GroupCount:   len(snap.Groups),
		LoadedAt:     snap.LoadedAt,
	}
}
