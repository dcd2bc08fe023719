package repository

import (
	"context"

	"gorm.io/gorm"

	"saccoreg/internal/model"
)

// CorrectionRepository defines correction request persistence operations.
type CorrectionRepository interface {
	Create(ctx context.Context, correction *model.CorrectionRequest) error
	Update(ctx context.Context, correction *model.CorrectionRequest) error
	FindByID(ctx context.Context, id uint) (*model.CorrectionRequest, error)
	List(ctx context.Context) ([]model.CorrectionRequest, error)
	ListByStatus(ctx context.Context, status model.CorrectionStatus) ([]model.CorrectionRequest, error)
}

type correctionRepository struct {
	db *gorm.DB
}

// NewCorrectionRepository creates a new correction repository.
func NewCorrectionRepository(db *gorm.DB) CorrectionRepository {
	return &correctionRepository{db: db}
}

// Create creates a new correction request.
func (r *correctionRepository) Create(ctx context.Context, correction *model.CorrectionRequest) error {
	return r.db.WithContext(ctx).Create(correction).Error
}

// Update updates an existing correction request.
func (r *correctionRepository) Update(ctx context.Context, correction *model.CorrectionRequest) error {
	return r.db.WithContext(ctx).Save(correction).Error
}

// FindByID finds a correction request by ID.
func (r *correctionRepository) FindByID(ctx context.Context, id uint) (*model.CorrectionRequest, error) {
	var correction model.CorrectionRequest
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&correction).Error; err != nil {
		return nil, err
	}
	return &correction, nil
}

// List lists all correction requests, newest first.
func (r *correctionRepository) List(ctx context.Context) ([]model.CorrectionRequest, error) {
	var corrections []model.CorrectionRequest
	if err := r.db.WithContext(ctx).Order("submitted_at DESC").Find(&corrections).Error; err != nil {
		return nil, err
	}
	return corrections, nil
}

// ListByStatus lists correction requests with the given status, newest first.
func (r *correctionRepository) ListByStatus(ctx context.Context, status model.CorrectionStatus) ([]model.CorrectionRequest, error) {
	var corrections []model.CorrectionRequest
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("submitted_at DESC").
		Find(&corrections).Error; err != nil {
		return nil, err
	}
	return corrections, nil
}
