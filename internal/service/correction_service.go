package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	apperrors "saccoreg/internal/errors"
	"saccoreg/internal/model"
	"saccoreg/internal/repository"
)

// CorrectionService handles the administrative side of the correction
// workflow: listing and the one-way resolve transition.
type CorrectionService interface {
	List(ctx context.Context, status string) ([]model.CorrectionRequest, error)
	Resolve(ctx context.Context, id uint, resolverID uint) (*model.CorrectionRequest, error)
}

type correctionService struct {
	correctionRepo repository.CorrectionRepository
}

// NewCorrectionService creates a new correction service.
func NewCorrectionService(correctionRepo repository.CorrectionRepository) CorrectionService {
	return &correctionService{correctionRepo: correctionRepo}
}

// List returns correction requests, optionally filtered by status.
func (s *correctionService) List(ctx context.Context, status string) ([]model.CorrectionRequest, error) {
	if status != "" {
		return s.correctionRepo.ListByStatus(ctx, model.CorrectionStatus(status))
	}
	return s.correctionRepo.List(ctx)
}

// Resolve marks a pending correction resolved, stamping the resolver and
// time. Resolving twice is rejected; the transition is one-way.
func (s *correctionService) Resolve(ctx context.Context, id uint, resolverID uint) (*model.CorrectionRequest, error) {
	correction, err := s.correctionRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCorrectionNotFound
		}
		return nil, fmt.Errorf("find correction: %w", err)
	}

	if correction.Status == model.CorrectionStatusResolved {
		return nil, apperrors.ErrCorrectionResolved
	}

	now := time.Now()
	correction.Status = model.CorrectionStatusResolved
	correction.ResolvedAt = &now
	correction.ResolvedBy = &resolverID

	if err := s.correctionRepo.Update(ctx, correction); err != nil {
		return nil, fmt.Errorf("resolve correction: %w", err)
	}
	return correction, nil
}
