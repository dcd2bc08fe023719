package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	apperrors "saccoreg/internal/errors"
	"saccoreg/internal/model"
	"saccoreg/internal/repository"
)

// MemberInput carries the fields accepted for single-record member writes.
// On update, empty fields leave the stored value untouched.
type MemberInput struct {
	Name         string
	MemberNumber string
	IDNumber     string
	Zone         string
	Status       string
}

// MemberService handles single-record roster operations.
type MemberService interface {
	List(ctx context.Context) ([]model.Member, error)
	Get(ctx context.Context, id uint) (*model.Member, error)
	Create(ctx context.Context, input MemberInput) (*model.Member, error)
	Update(ctx context.Context, id uint, input MemberInput) (*model.Member, error)
	Delete(ctx context.Context, id uint) error
	DeleteBatch(ctx context.Context, ids []uint) (int64, error)
}

type memberService struct {
	memberRepo repository.MemberRepository
	cache      SearchCache
}

// NewMemberService creates a new member service.
func NewMemberService(memberRepo repository.MemberRepository, cache SearchCache) MemberService {
	return &memberService{memberRepo: memberRepo, cache: cache}
}

// List returns the full roster.
func (s *memberService) List(ctx context.Context) ([]model.Member, error) {
	return s.memberRepo.List(ctx)
}

// Get returns one member by ID.
func (s *memberService) Get(ctx context.Context, id uint) (*model.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	return member, nil
}

// Create registers a new member, rejecting duplicate member numbers.
func (s *memberService) Create(ctx context.Context, input MemberInput) (*model.Member, error) {
	memberNumber := strings.TrimSpace(input.MemberNumber)

	existing, err := s.memberRepo.FindByMemberNumber(ctx, memberNumber)
	if err == nil && existing != nil {
		return nil, apperrors.ErrMemberExists
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check member existence: %w", err)
	}

	status := model.MemberStatus(strings.TrimSpace(input.Status))
	if status == "" {
		status = model.MemberStatusActive
	}
	if !model.ValidMemberStatus(status) {
		return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, input.Status)
	}

	member := &model.Member{
		Name:         strings.TrimSpace(input.Name),
		MemberNumber: memberNumber,
		IDNumber:     strings.TrimSpace(input.IDNumber),
		Zone:         strings.TrimSpace(input.Zone),
		Status:       status,
	}
	if err := s.memberRepo.Create(ctx, member); err != nil {
		return nil, fmt.Errorf("create member: %w", err)
	}
	return member, nil
}

// Update applies the non-empty fields of input to an existing member.
func (s *memberService) Update(ctx context.Context, id uint, input MemberInput) (*model.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}

	// evict the search cache entry for the pre-update identity
	s.invalidateSearchCache(ctx, member)

	if name := strings.TrimSpace(input.Name); name != "" {
		member.Name = name
	}
	if memberNumber := strings.TrimSpace(input.MemberNumber); memberNumber != "" && memberNumber != member.MemberNumber {
		existing, err := s.memberRepo.FindByMemberNumber(ctx, memberNumber)
		if err == nil && existing != nil {
			return nil, apperrors.ErrMemberExists
		}
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("check member existence: %w", err)
		}
		member.MemberNumber = memberNumber
	}
	if idNumber := strings.TrimSpace(input.IDNumber); idNumber != "" {
		member.IDNumber = idNumber
	}
	if zone := strings.TrimSpace(input.Zone); zone != "" {
		member.Zone = zone
	}
	if status := model.MemberStatus(strings.TrimSpace(input.Status)); status != "" {
		if !model.ValidMemberStatus(status) {
			return nil, fmt.Errorf("%w: %q", apperrors.ErrInvalidStatus, input.Status)
		}
		member.Status = status
	}

	if err := s.memberRepo.Update(ctx, member); err != nil {
		return nil, fmt.Errorf("update member: %w", err)
	}
	return member, nil
}

// Delete removes one member; dependent audit rows cascade.
func (s *memberService) Delete(ctx context.Context, id uint) error {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err == nil {
		s.invalidateSearchCache(ctx, member)
	}

	if err := s.memberRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrMemberNotFound
		}
		return fmt.Errorf("delete member: %w", err)
	}
	return nil
}

// DeleteBatch removes members by ID and returns how many were deleted.
// Search cache entries for the affected members are evicted first;
// unknown IDs are skipped silently, matching the repository semantics.
func (s *memberService) DeleteBatch(ctx context.Context, ids []uint) (int64, error) {
	for _, id := range ids {
		member, err := s.memberRepo.FindByID(ctx, id)
		if err != nil {
			continue
		}
		s.invalidateSearchCache(ctx, member)
	}
	return s.memberRepo.DeleteBatch(ctx, ids)
}

func (s *memberService) invalidateSearchCache(ctx context.Context, member *model.Member) {
	if s.cache == nil {
		return
	}
	_ = s.cache.Delete(ctx, searchCacheKey(member.MemberNumber, member.IDNumber))
}
