package service

import (
	"context"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/catalog"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// AllocationServiceInterface defines the interface for the date session and
// snapshot read views
type AllocationServiceInterface interface {
	SelectDate(ctx context.Context, date string) (*SessionResponse, error)
	Refresh(ctx context.Context) (*SessionResponse, error)
	Teams() ([]TeamView, error)
	Missions() ([]catalog.Mission, error)
	Groups() ([]catalog.MissionGroup, error)
	PlanLoad() (*catalog.PlanLoad, error)
	UpdateSelection(kind SelectionKind, missionIDs []int, selected bool) ([]int, error)
	ClearSelection(kind SelectionKind) error
	Selection(kind SelectionKind) ([]int, error)
}

// MoveServiceInterface defines the interface for resource relocation
type MoveServiceInterface interface {
	MoveResource(ctx context.Context, req *MoveRequest) (*OperationResult, error)
	ReturnToPool(ctx context.Context, req *PoolRequest) (*PoolResponse, error)
}

// GroupServiceInterface defines the interface for mission group mutations
type GroupServiceInterface interface {
	DeployGroup(ctx context.Context, req *DeployGroupRequest) (*GroupResult, error)
	AddMissionsToGroup(ctx context.Context, groupID int, req *ExtendGroupRequest) (*GroupResult, error)
	RemoveMissionsFromGroup(ctx context.Context, req *ShrinkGroupRequest) (*GroupResult, error)
}

// AuditServiceInterface defines the interface for reading the audit trail
type AuditServiceInterface interface {
	GetByDate(date string, page, pageSize int) (*AuditListResponse, error)
	GetByGroup(groupID, page, pageSize int) (*AuditListResponse, error)
	GetRecent(limit int) ([]models.AllocationAudit, error)
}

// AuditRecorder is the write-side of the audit trail used by the engines.
// Recording is best-effort and must never fail the mutation it describes.
type AuditRecorder interface {
	Record(entry *models.AllocationAudit)
}
