package repository

import (
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/database/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// AuditRepositoryInterface defines the interface for allocation audit operations
type AuditRepositoryInterface interface {
	Create(entry *models.AllocationAudit) error
	GetByDate(date string, limit, offset int) ([]models.AllocationAudit, int64, error)
	GetByGroupID(groupID int, limit, offset int) ([]models.AllocationAudit, int64, error)
	GetRecent(limit int) ([]models.AllocationAudit, error)
}
