package service

import (
	"context"

	"saccoreg/internal/model"
	"saccoreg/internal/repository"
)

// AuditService exposes the read-only audit trails: verification history
// and public search activity.
type AuditService interface {
	ListVerifications(ctx context.Context) ([]model.Verification, error)
	ListVerificationsByMember(ctx context.Context, memberID uint) ([]model.Verification, error)
	RecentSearchLogs(ctx context.Context, limit int) ([]model.SearchLog, error)
}

type auditService struct {
	verificationRepo repository.VerificationRepository
	searchLogRepo    repository.SearchLogRepository
}

// NewAuditService creates a new audit service.
func NewAuditService(verificationRepo repository.VerificationRepository, searchLogRepo repository.SearchLogRepository) AuditService {
	return &auditService{
		verificationRepo: verificationRepo,
		searchLogRepo:    searchLogRepo,
	}
}

func (s *auditService) ListVerifications(ctx context.Context) ([]model.Verification, error) {
	return s.verificationRepo.List(ctx)
}

func (s *auditService) ListVerificationsByMember(ctx context.Context, memberID uint) ([]model.Verification, error) {
	return s.verificationRepo.ListByMember(ctx, memberID)
}

func (s *auditService) RecentSearchLogs(ctx context.Context, limit int) ([]model.SearchLog, error) {
	return s.searchLogRepo.Recent(ctx, limit)
}
