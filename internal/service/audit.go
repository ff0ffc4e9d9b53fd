package service

import (
	"fmt"

	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/database/models"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/logger"
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/repository"
)

// AuditListResponse is a paginated slice of the allocation audit trail.
type AuditListResponse struct {
	Entries  []models.AllocationAudit `json:"entries"`
	Total    int64                    `json:"total"`
	Page     int                      `json:"page"`
	PageSize int                      `json:"page_size"`
}

// AuditService records applied allocation mutations and serves the audit
// trail. Recording is best-effort: a failed insert is logged, never allowed
// to fail the mutation it describes.
type AuditService struct {
	repo repository.AuditRepositoryInterface
	log  *logger.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditRepositoryInterface) *AuditService {
	return &AuditService{
		repo: repo,
		log:  logger.New().WithField("component", "audit_service"),
	}
}

// Record appends one audit entry, logging on failure.
func (s *AuditService) Record(entry *models.AllocationAudit) {
	if err := s.repo.Create(entry); err != nil {
		s.log.WithField("action", entry.Action).Errorf("failed to record audit entry: %v", err)
	}
}

// GetByDate returns the audit entries for one allocation date.
func (s *AuditService) GetByDate(date string, page, pageSize int) (*AuditListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	entries, total, err := s.repo.GetByDate(date, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit entries: %w", err)
	}

	return &AuditListResponse{
		Entries:  entries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetByGroup returns the audit entries touching one mission group.
func (s *AuditService) GetByGroup(groupID, page, pageSize int) (*AuditListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	offset := (page - 1) * pageSize
	entries, total, err := s.repo.GetByGroupID(groupID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get audit entries for group %d: %w", groupID, err)
	}

	return &AuditListResponse{
		Entries:  entries,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetRecent returns the newest audit entries across all dates.
func (s *AuditService) GetRecent(limit int) ([]models.AllocationAudit, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	entries, err := s.repo.GetRecent(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent audit entries: %w", err)
	}
	return entries, nil
}
