package models

import (
	"encoding/json"
)

// AuditAction enumerates the allocation mutations recorded in the audit trail.
type AuditAction string

const (
	AuditActionMovePilot   AuditAction = "move_pilot"
	AuditActionMoveDrone   AuditAction = "move_drone"
	AuditActionPoolReturn  AuditAction = "pool_return"
	AuditActionGroupDeploy AuditAction = "group_deploy"
	AuditActionGroupExtend AuditAction = "group_extend"
	AuditActionGroupShrink AuditAction = "group_shrink"
)

// AuditOutcome describes how the mutation resolved against the catalog.
type AuditOutcome string

const (
	// AuditOutcomeConfirmed means the catalog acknowledged the mutation.
	AuditOutcomeConfirmed AuditOutcome = "confirmed"
	// AuditOutcomeReconciled means the acknowledgment was lost but the
	// post-mutation refresh showed the catalog had applied it.
	AuditOutcomeReconciled AuditOutcome = "reconciled"
)

// AllocationAudit is one applied allocation mutation. The catalog service
// stays the source of truth for allocation state; this table is append-only
// history for the dashboard.
type AllocationAudit struct {
	BaseModel
	Action       AuditAction     `json:"action" gorm:"size:20;not null;index" validate:"required"`
	Date         string          `json:"date" gorm:"size:10;not null;index" validate:"required"`
	ResourceKind string          `json:"resource_kind,omitempty" gorm:"size:10"`
	ResourceID   *int            `json:"resource_id,omitempty"`
	FromTeamID   *int            `json:"from_team_id,omitempty"`
	ToTeamID     *int            `json:"to_team_id,omitempty"`
	GroupID      *int            `json:"group_id,omitempty" gorm:"index"`
	MissionIDs   json.RawMessage `json:"mission_ids,omitempty" gorm:"type:jsonb"`
	Outcome      AuditOutcome    `json:"outcome" gorm:"size:12;not null" validate:"required"`
	Message      string          `json:"message" gorm:"size:500"`
}

// TableName returns the table name for AllocationAudit
func (AllocationAudit) TableName() string {
	return "allocation_audits"
}
