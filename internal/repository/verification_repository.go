package repository

import (
	"context"

	"gorm.io/gorm"

	"saccoreg/internal/model"
)

// VerificationRepository defines verification persistence operations.
// Verifications are append-only snapshots; there is no update path.
type VerificationRepository interface {
	Create(ctx context.Context, verification *model.Verification) error
	List(ctx context.Context) ([]model.Verification, error)
	ListByMember(ctx context.Context, memberID uint) ([]model.Verification, error)
}

type verificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository.
func NewVerificationRepository(db *gorm.DB) VerificationRepository {
	return &verificationRepository{db: db}
}

// Create records a verification snapshot.
func (r *verificationRepository) Create(ctx context.Context, verification *model.Verification) error {
	return r.db.WithContext(ctx).Create(verification).Error
}

// List lists all verifications, newest first.
func (r *verificationRepository) List(ctx context.Context) ([]model.Verification, error) {
	var verifications []model.Verification
	if err := r.db.WithContext(ctx).Order("verified_at DESC").Find(&verifications).Error; err != nil {
		return nil, err
	}
	return verifications, nil
}

// ListByMember lists verifications for one member, newest first.
func (r *verificationRepository) ListByMember(ctx context.Context, memberID uint) ([]model.Verification, error) {
	var verifications []model.Verification
	if err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("verified_at DESC").
		Find(&verifications).Error; err != nil {
		return nil, err
	}
	return verifications, nil
}
