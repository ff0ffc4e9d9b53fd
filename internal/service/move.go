package service

import (
	"context"
	"fmt"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/catalog"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/database/models"
	apperrors "github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/errors"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/logger"

	"github.com/go-playground/validator/v10"
)

// OperationResult is the structured outcome every engine operation returns
// to its caller. Engines never panic past their own boundary and every
// failure path produces a message.
type OperationResult struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
	NoOp    bool   `json:"no_op,omitempty"`
}

// MoveRequest asks for exactly one pilot or drone to be relocated. Both the
// drag gesture and the explicit "move to..." menu funnel into this request;
// drag highlight state is UI plumbing and never reaches the engine.
type MoveRequest struct {
	ResourceKind string `json:"resource_kind" validate:"required,oneof=pilot drone"`
	ResourceID   int    `json:"resource_id" validate:"required,gt=0"`
	ResourceName string `json:"resource_name"`
	FromTeamID   int    `json:"from_team_id" validate:"required,gt=0"`
	ToTeamID     int    `json:"to_team_id" validate:"required,gt=0"`
}

// PoolRequest returns a batch of resources to the pool team.
type PoolRequest struct {
	PilotIDs []int `json:"pilot_ids"`
	DroneIDs []int `json:"drone_ids"`
}

// PoolResponse reports the confirmed pool return.
type PoolResponse struct {
	OperationResult
	PilotsAdded int `json:"pilots_added"`
	DronesAdded int `json:"drones_added"`
}

// MoveService relocates pilots and drones between teams against the catalog
// gateway, reconciling through the allocation store after every accepted or
// ambiguous mutation.
type MoveService struct {
	store      *AllocationStore
	gateway    catalog.Gateway
	limits     Limits
	poolTeamID int
	audit      AuditRecorder
	validator  *validator.Validate
	log        *logger.Logger
}

// NewMoveService creates a new move service.
func NewMoveService(store *AllocationStore, gateway catalog.Gateway, limits Limits, poolTeamID int, audit AuditRecorder, validator *validator.Validate) *MoveService {
	return &MoveService{
		store:      store,
		gateway:    gateway,
		limits:     limits,
		poolTeamID: poolTeamID,
		audit:      audit,
		validator:  validator,
		log:        logger.New().WithField("component", "move_service"),
	}
}

// MoveResource relocates one pilot or drone from one team to another.
//
// A move onto the originating team succeeds immediately without contacting
// the catalog. Constraint violations are returned before any network call.
// After the catalog call, the store is refreshed and the refreshed state is
// ground truth: a lost acknowledgment still counts as success if the refresh
// shows the resource on the destination team.
func (s *MoveService) MoveResource(ctx context.Context, req *MoveRequest) (*OperationResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	kind := ResourceKind(req.ResourceKind)

	if SameTeam(req.FromTeamID, req.ToTeamID) {
		return &OperationResult{
			OK:      true,
			NoOp:    true,
			Message: fmt.Sprintf("%s is already on team %d", kind, req.ToTeamID),
		}, nil
	}

	snap, release, err := s.store.BeginMutation()
	if err != nil {
		return nil, err
	}
	defer release()

	from := snap.Team(req.FromTeamID)
	if from == nil {
		return nil, apperrors.NewValidationError("from_team_id", fmt.Sprintf("team %d is not on the active date", req.FromTeamID))
	}
	to := snap.Team(req.ToTeamID)
	if to == nil {
		return nil, apperrors.NewValidationError("to_team_id", fmt.Sprintf("team %d is not on the active date", req.ToTeamID))
	}

	name, err := resourceNameOnTeam(from, kind, req.ResourceID)
	if err != nil {
		return nil, err
	}
	if req.ResourceName != "" {
		name = req.ResourceName
	}

	if ok, reason := CanAcceptMove(s.limits, from, to, kind); !ok {
		return nil, apperrors.NewValidationError("to_team_id", reason)
	}

	switch kind {
	case ResourcePilot:
		err = s.gateway.MovePilot(ctx, req.ResourceID, name, from.ID, to.ID)
	case ResourceDrone:
		err = s.gateway.MoveDrone(ctx, req.ResourceID, name, from.ID, to.ID)
	}

	if err != nil && apperrors.IsGatewayRejected(err) {
		// Explicit refusal: nothing changed server-side, nothing to reconcile.
		return nil, err
	}

	// Refresh for the date the move was issued against. A date switch that
	// landed mid-call makes the refresh fail with ErrStaleSnapshot instead
	// of confirming the move against the new date's rosters.
	refreshed, refreshErr := s.store.RefreshFor(ctx, snap.Date)

	if err != nil {
		// Ambiguous transport outcome. Trust the refreshed state over the
		// error: the catalog may have applied the move before the
		// acknowledgment was lost.
		if refreshErr == nil && resourceOnTeam(refreshed, kind, req.ResourceID, to.ID) {
			s.recordMove(snap.Date, kind, req, models.AuditOutcomeReconciled)
			return &OperationResult{
				OK:      true,
				Message: fmt.Sprintf("%s %q moved to team %s (confirmed after refresh)", kind, name, to.Name),
			}, nil
		}
		return nil, err
	}
	if refreshErr != nil {
		return nil, fmt.Errorf("move applied but refresh failed: %w", refreshErr)
	}

	s.recordMove(snap.Date, kind, req, models.AuditOutcomeConfirmed)
	return &OperationResult{
		OK:      true,
		Message: fmt.Sprintf("%s %q moved from team %s to team %s", kind, name, from.Name, to.Name),
	}, nil
}

// ReturnToPool sends a batch of pilots and drones back to the pool team.
func (s *MoveService) ReturnToPool(ctx context.Context, req *PoolRequest) (*PoolResponse, error) {
	if len(req.PilotIDs) == 0 && len(req.DroneIDs) == 0 {
		return nil, apperrors.NewValidationError("", "no resources selected for pool return")
	}

	snap, release, err := s.store.BeginMutation()
	if err != nil {
		return nil, err
	}
	defer release()

	for _, id := range req.PilotIDs {
		if snap.PilotTeam(id) == nil {
			return nil, apperrors.NewValidationError("pilot_ids", fmt.Sprintf("pilot %d is not on the active date", id))
		}
	}
	for _, id := range req.DroneIDs {
		if snap.DroneTeam(id) == nil {
			return nil, apperrors.NewValidationError("drone_ids", fmt.Sprintf("drone %d is not on the active date", id))
		}
	}

	result, err := s.gateway.AddToPool(ctx, req.PilotIDs, req.DroneIDs, s.poolTeamID)
	if err != nil && apperrors.IsGatewayRejected(err) {
		return nil, err
	}

	refreshed, refreshErr := s.store.RefreshFor(ctx, snap.Date)

	if err != nil {
		if refreshErr == nil && allOnTeam(refreshed, req.PilotIDs, req.DroneIDs, s.poolTeamID) {
			s.recordPoolReturn(snap.Date, req, models.AuditOutcomeReconciled)
			return &PoolResponse{
				OperationResult: OperationResult{OK: true, Message: "resources returned to pool (confirmed after refresh)"},
				PilotsAdded:     len(req.PilotIDs),
				DronesAdded:     len(req.DroneIDs),
			}, nil
		}
		return nil, err
	}
	if refreshErr != nil {
		return nil, fmt.Errorf("pool return applied but refresh failed: %w", refreshErr)
	}

	s.recordPoolReturn(snap.Date, req, models.AuditOutcomeConfirmed)
	return &PoolResponse{
		OperationResult: OperationResult{OK: true, Message: fmt.Sprintf("returned %d pilots and %d drones to the pool", result.PilotsAdded, result.DronesAdded)},
		PilotsAdded:     result.PilotsAdded,
		DronesAdded:     result.DronesAdded,
	}, nil
}

func resourceNameOnTeam(team *catalog.Team, kind ResourceKind, resourceID int) (string, error) {
	switch kind {
	case ResourcePilot:
		for _, p := range team.Pilots {
			if p.ID == resourceID {
				return p.Name, nil
			}
		}
	case ResourceDrone:
		for _, d := range team.Drones {
			if d.ID == resourceID {
				return d.Tag, nil
			}
		}
	}
	return "", apperrors.NewValidationError("resource_id", fmt.Sprintf("%s %d is not on team %s", kind, resourceID, team.Name))
}

func resourceOnTeam(snap *Snapshot, kind ResourceKind, resourceID, teamID int) bool {
	var team *catalog.Team
	switch kind {
	case ResourcePilot:
		team = snap.PilotTeam(resourceID)
	case ResourceDrone:
		team = snap.DroneTeam(resourceID)
	}
	return team != nil && team.ID == teamID
}

func allOnTeam(snap *Snapshot, pilotIDs, droneIDs []int, teamID int) bool {
	for _, id := range pilotIDs {
		if team := snap.PilotTeam(id); team == nil || team.ID != teamID {
			return false
		}
	}
	for _, id := range droneIDs {
		if team := snap.DroneTeam(id); team == nil || team.ID != teamID {
			return false
		}
	}
	return true
}

func (s *MoveService) recordMove(date string, kind ResourceKind, req *MoveRequest, outcome models.AuditOutcome) {
	if s.audit == nil {
		return
	}
	action := models.AuditActionMovePilot
	if kind == ResourceDrone {
		action = models.AuditActionMoveDrone
	}
	s.audit.Record(&models.AllocationAudit{
		Action:       action,
		Date:         date,
		ResourceKind: string(kind),
		ResourceID:   intPtr(req.ResourceID),
		FromTeamID:   intPtr(req.FromTeamID),
		ToTeamID:     intPtr(req.ToTeamID),
		Outcome:      outcome,
		Message:      fmt.Sprintf("%s %d: team %d -> team %d", kind, req.ResourceID, req.FromTeamID, req.ToTeamID),
	})
}

func (s *MoveService) recordPoolReturn(date string, req *PoolRequest, outcome models.AuditOutcome) {
	if s.audit == nil {
		return
	}
	s.audit.Record(&models.AllocationAudit{
		Action:   models.AuditActionPoolReturn,
		Date:     date,
		ToTeamID: intPtr(s.poolTeamID),
		Outcome:  outcome,
		Message:  fmt.Sprintf("returned %d pilots, %d drones to pool", len(req.PilotIDs), len(req.DroneIDs)),
	})
}

func intPtr(v int) *int {
	return &v
}
