package repository

import (
	"context"

	"gorm.io/gorm"

	"saccoreg/internal/model"
)

// SearchLogRepository defines search log persistence operations.
// Logs are append-only audit records.
type SearchLogRepository interface {
	Create(ctx context.Context, log *model.SearchLog) error
	Recent(ctx context.Context, limit int) ([]model.SearchLog, error)
}

type searchLogRepository struct {
	db *gorm.DB
}

// NewSearchLogRepository creates a new search log repository.
func NewSearchLogRepository(db *gorm.DB) SearchLogRepository {
	return &searchLogRepository{db: db}
}

// Create records a search attempt.
func (r *searchLogRepository) Create(ctx context.Context, log *model.SearchLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// Recent returns the newest search logs up to limit.
func (r *searchLogRepository) Recent(ctx context.Context, limit int) ([]model.SearchLog, error) {
	if limit <= 0 {
		limit = 100
	}
	var logs []model.SearchLog
	if err := r.db.WithContext(ctx).
		Order("searched_at DESC").
		Limit(limit).
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}
