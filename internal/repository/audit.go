package repository

import (
	"github.com/kenilworthinternational/drone-operation-web-app-sub004/internal/database/models"

	"gorm.io/gorm"
)

// AuditRepository handles database operations for the allocation audit trail
type AuditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) *AuditRepository {
	return &AuditRepository{db: db}
}

// Create appends an audit entry
func (r *AuditRepository) Create(entry *models.AllocationAudit) error {
	return r.db.Create(entry).Error
}

// GetByDate retrieves audit entries for one allocation date, newest first
func (r *AuditRepository) GetByDate(date string, limit, offset int) ([]models.AllocationAudit, int64, error) {
	var entries []models.AllocationAudit
	var total int64

	query := r.db.Model(&models.AllocationAudit{}).Where("date = ?", date)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// GetByGroupID retrieves audit entries touching one mission group, newest first
func (r *AuditRepository) GetByGroupID(groupID int, limit, offset int) ([]models.AllocationAudit, int64, error) {
	var entries []models.AllocationAudit
	var total int64

	query := r.db.Model(&models.AllocationAudit{}).Where("group_id = ?", groupID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, 0, err
	}
	return entries, total, nil
}

// GetRecent retrieves the newest audit entries across all dates
func (r *AuditRepository) GetRecent(limit int) ([]models.AllocationAudit, error) {
	var entries []models.AllocationAudit
	err := r.db.Order("created_at DESC").Limit(limit).Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}
