package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/catalog"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/database/models"
	apperrors "github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/errors"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/logger"

	"github.com/go-playground/validator/v10"
)

// DeployGroupRequest creates a mission group binding missions to one
// team/pilot/drone triple for the active date. When MissionIDs is empty the
// deploy selection set is used.
type DeployGroupRequest struct {
	MissionIDs []int  `json:"mission_ids"`
	TeamID     int    `json:"team_id" validate:"required,gt=0"`
	PilotID    int    `json:"pilot_id" validate:"required,gt=0"`
	DroneID    int    `json:"drone_id" validate:"required,gt=0"`
	Date       string `json:"date" validate:"required"`
}

// ExtendGroupRequest adds missions to an existing group. When MissionIDs is
// empty the group selection set is used.
type ExtendGroupRequest struct {
	MissionIDs []int `json:"mission_ids"`
}

// ShrinkGroupRequest removes missions from whichever group holds them. No
// group id is needed: a mission belongs to at most one group per date.
type ShrinkGroupRequest struct {
	MissionIDs []int `json:"mission_ids"`
}

// GroupResult is the outcome of a group mutation.
type GroupResult struct {
	OperationResult
	GroupID int `json:"group_id,omitempty"`
}

// GroupService creates, extends, and shrinks mission groups against the
// catalog gateway, reconciling through the allocation store.
type GroupService struct {
	store      *AllocationStore
	gateway    catalog.Gateway
	selections *MissionSelections
	audit      AuditRecorder
	validator  *validator.Validate
	log        *logger.Logger
}

// NewGroupService creates a new group service.
func NewGroupService(store *AllocationStore, gateway catalog.Gateway, selections *MissionSelections, audit AuditRecorder, validator *validator.Validate) *GroupService {
	return &GroupService{
		store:      store,
		gateway:    gateway,
		selections: selections,
		audit:      audit,
		validator:  validator,
		log:        logger.New().WithField("component", "group_service"),
	}
}

// DeployGroup creates a new mission group. All listed missions must be
// unassigned and the pilot and drone must belong to the named team. On
// success the missions are optimistically marked assigned, then a full
// refresh reconciles plan-load counts.
func (s *GroupService) DeployGroup(ctx context.Context, req *DeployGroupRequest) (*GroupResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	missionIDs, err := s.resolveSelection(req.MissionIDs, SelectionDeploy)
	if err != nil {
		return nil, err
	}

	snap, release, err := s.store.BeginMutation()
	if err != nil {
		return nil, err
	}
	defer release()

	if req.Date != snap.Date {
		return nil, apperrors.NewValidationError("date", fmt.Sprintf("requested date %s does not match the active session date %s", req.Date, snap.Date))
	}

	team := snap.Team(req.TeamID)
	if team == nil {
		return nil, apperrors.NewValidationError("team_id", fmt.Sprintf("team %d is not on the active date", req.TeamID))
	}
	if _, err := resourceNameOnTeam(team, ResourcePilot, req.PilotID); err != nil {
		return nil, apperrors.NewValidationError("pilot_id", fmt.Sprintf("pilot %d does not belong to team %s", req.PilotID, team.Name))
	}
	if _, err := resourceNameOnTeam(team, ResourceDrone, req.DroneID); err != nil {
		return nil, apperrors.NewValidationError("drone_id", fmt.Sprintf("drone %d does not belong to team %s", req.DroneID, team.Name))
	}

	if err := s.requireUnassigned(snap, missionIDs); err != nil {
		return nil, err
	}

	groupID, err := s.gateway.CreateGroup(ctx, catalog.CreateGroupRequest{
		MissionIDs: missionIDs,
		TeamID:     req.TeamID,
		PilotID:    req.PilotID,
		DroneID:    req.DroneID,
		Date:       req.Date,
	})
	if err != nil && apperrors.IsGatewayRejected(err) {
		return nil, err
	}

	if err != nil {
		// Ambiguous outcome: refresh for the issuing date and look for the
		// group. A mid-call date switch fails the refresh rather than
		// confirming against the new date's groups.
		refreshed, refreshErr := s.store.RefreshFor(ctx, snap.Date)
		if refreshErr == nil {
			if g := refreshed.GroupForMission(missionIDs[0]); g != nil && groupContainsAll(g, missionIDs) {
				s.selections.Clear(SelectionDeploy)
				s.recordGroup(snap.Date, models.AuditActionGroupDeploy, g.ID, missionIDs, models.AuditOutcomeReconciled)
				return &GroupResult{
					OperationResult: OperationResult{OK: true, Message: fmt.Sprintf("group %d deployed (confirmed after refresh)", g.ID)},
					GroupID:         g.ID,
				}, nil
			}
		}
		return nil, err
	}

	s.store.MarkMissionsAssigned(snap.Date, missionIDs, true)
	if _, refreshErr := s.store.RefreshFor(ctx, snap.Date); refreshErr != nil {
		return nil, fmt.Errorf("group deployed but refresh failed: %w", refreshErr)
	}

	s.selections.Clear(SelectionDeploy)
	s.recordGroup(snap.Date, models.AuditActionGroupDeploy, groupID, missionIDs, models.AuditOutcomeConfirmed)
	return &GroupResult{
		OperationResult: OperationResult{OK: true, Message: fmt.Sprintf("group %d deployed with %d missions to team %s", groupID, len(missionIDs), team.Name)},
		GroupID:         groupID,
	}, nil
}

// AddMissionsToGroup extends an existing group with unassigned missions.
func (s *GroupService) AddMissionsToGroup(ctx context.Context, groupID int, req *ExtendGroupRequest) (*GroupResult, error) {
	missionIDs, err := s.resolveSelection(req.MissionIDs, SelectionGroup)
	if err != nil {
		return nil, err
	}

	snap, release, err := s.store.BeginMutation()
	if err != nil {
		return nil, err
	}
	defer release()

	group := snap.Group(groupID)
	if group == nil {
		return nil, apperrors.ErrGroupNotFound
	}
	if err := s.requireUnassigned(snap, missionIDs); err != nil {
		return nil, err
	}

	err = s.gateway.ExtendGroup(ctx, groupID, missionIDs)
	if err != nil && apperrors.IsGatewayRejected(err) {
		return nil, err
	}

	if err != nil {
		refreshed, refreshErr := s.store.RefreshFor(ctx, snap.Date)
		if refreshErr == nil {
			if g := refreshed.Group(groupID); g != nil && groupContainsAll(g, missionIDs) {
				s.selections.Clear(SelectionGroup)
				s.recordGroup(snap.Date, models.AuditActionGroupExtend, groupID, missionIDs, models.AuditOutcomeReconciled)
				return &GroupResult{
					OperationResult: OperationResult{OK: true, Message: fmt.Sprintf("group %d extended (confirmed after refresh)", groupID)},
					GroupID:         groupID,
				}, nil
			}
		}
		return nil, err
	}

	s.store.MarkMissionsAssigned(snap.Date, missionIDs, true)
	if _, refreshErr := s.store.RefreshFor(ctx, snap.Date); refreshErr != nil {
		return nil, fmt.Errorf("group extended but refresh failed: %w", refreshErr)
	}

	s.selections.Clear(SelectionGroup)
	s.recordGroup(snap.Date, models.AuditActionGroupExtend, groupID, missionIDs, models.AuditOutcomeConfirmed)
	return &GroupResult{
		OperationResult: OperationResult{OK: true, Message: fmt.Sprintf("added %d missions to group %d", len(missionIDs), groupID)},
		GroupID:         groupID,
	}, nil
}

// RemoveMissionsFromGroup removes missions from their groups by mission id
// alone. A group emptied by the removal is deleted by the catalog, not by
// us; locally we only re-query.
func (s *GroupService) RemoveMissionsFromGroup(ctx context.Context, req *ShrinkGroupRequest) (*GroupResult, error) {
	missionIDs, err := s.resolveSelection(req.MissionIDs, SelectionGroup)
	if err != nil {
		return nil, err
	}

	snap, release, err := s.store.BeginMutation()
	if err != nil {
		return nil, err
	}
	defer release()

	for _, id := range missionIDs {
		if snap.Mission(id) == nil {
			return nil, apperrors.NewValidationError("mission_ids", fmt.Sprintf("mission %d is not on the active date", id))
		}
		if snap.GroupForMission(id) == nil {
			return nil, apperrors.NewValidationError("mission_ids", fmt.Sprintf("mission %d does not belong to any group", id))
		}
	}

	err = s.gateway.ShrinkGroup(ctx, missionIDs)
	if err != nil && apperrors.IsGatewayRejected(err) {
		return nil, err
	}

	if err != nil {
		refreshed, refreshErr := s.store.RefreshFor(ctx, snap.Date)
		if refreshErr == nil && noneGrouped(refreshed, missionIDs) {
			s.selections.Clear(SelectionGroup)
			s.recordGroup(snap.Date, models.AuditActionGroupShrink, 0, missionIDs, models.AuditOutcomeReconciled)
			return &GroupResult{
				OperationResult: OperationResult{OK: true, Message: "missions removed from group (confirmed after refresh)"},
			}, nil
		}
		return nil, err
	}

	s.store.MarkMissionsAssigned(snap.Date, missionIDs, false)
	if _, refreshErr := s.store.RefreshFor(ctx, snap.Date); refreshErr != nil {
		return nil, fmt.Errorf("missions removed but refresh failed: %w", refreshErr)
	}

	s.selections.Clear(SelectionGroup)
	s.recordGroup(snap.Date, models.AuditActionGroupShrink, 0, missionIDs, models.AuditOutcomeConfirmed)
	return &GroupResult{
		OperationResult: OperationResult{OK: true, Message: fmt.Sprintf("removed %d missions from their group", len(missionIDs))},
	}, nil
}

// resolveSelection uses the explicit ids when given, otherwise falls back to
// the named selection set.
func (s *GroupService) resolveSelection(explicit []int, kind SelectionKind) ([]int, error) {
	if len(explicit) > 0 {
		return explicit, nil
	}
	ids, err := s.selections.Selected(kind)
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, apperrors.NewValidationError("mission_ids", "no missions selected")
	}
	return ids, nil
}

// requireUnassigned checks every mission exists on the active date and is
// not yet in a group. The catalog enforces single membership server-side;
// this check keeps us from even asking for a duplicate.
func (s *GroupService) requireUnassigned(snap *Snapshot, missionIDs []int) error {
	for _, id := range missionIDs {
		mission := snap.Mission(id)
		if mission == nil {
			return apperrors.NewValidationError("mission_ids", fmt.Sprintf("mission %d is not on the active date", id))
		}
		if mission.IsAssigned || snap.GroupForMission(id) != nil {
			return apperrors.NewValidationError("mission_ids", fmt.Sprintf("mission %d already belongs to a group", id))
		}
	}
	return nil
}

func groupContainsAll(group *catalog.MissionGroup, missionIDs []int) bool {
	members := make(map[int]bool, len(group.MissionIDs))
	for _, id := range group.MissionIDs {
		members[id] = true
	}
	for _, id := range missionIDs {
		if !members[id] {
			return false
		}
	}
	return true
}

func noneGrouped(snap *Snapshot, missionIDs []int) bool {
	for _, id := range missionIDs {
		if snap.GroupForMission(id) != nil {
			return false
		}
	}
	return true
}

func (s *GroupService) recordGroup(date string, action models.AuditAction, groupID int, missionIDs []int, outcome models.AuditOutcome) {
	if s.audit == nil {
		return
	}
	ids, _ := json.Marshal(missionIDs)
	entry := &models.AllocationAudit{
		Action:     action,
		Date:       date,
		MissionIDs: ids,
		Outcome:    outcome,
		Message:    fmt.Sprintf("%s: %d missions", action, len(missionIDs)),
	}
	if groupID > 0 {
		entry.GroupID = intPtr(groupID)
	}
	s.audit.Record(entry)
}
