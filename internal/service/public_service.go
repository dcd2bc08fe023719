package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "saccoreg/internal/errors"
	"saccoreg/internal/model"
	"saccoreg/internal/repository"
)

// searchCacheTTL bounds how long a positive public search lookup is reused.
const searchCacheTTL = 5 * time.Minute

func searchCacheKey(memberNumber, idNumber string) string {
	return fmt.Sprintf("member_search:%s:%s", memberNumber, idNumber)
}

// SearchCache is the slice of the cache client the services use for
// public search lookups. Every member mutation path must evict through
// it so a search never serves a stale roster entry.
type SearchCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// CorrectionNotifier delivers the fire-and-forget notification for a newly
// submitted correction request.
type CorrectionNotifier interface {
	NotifyCorrectionAsync(correction *model.CorrectionRequest)
}

// SearchClient identifies the caller of a public search for the audit log.
type SearchClient struct {
	IP        string
	UserAgent string
}

// CorrectionSubmission carries a public correction request.
type CorrectionSubmission struct {
	MemberID        uint
	MemberNumber    string
	CorrectName     string
	CorrectZone     string
	Email           string
	Phone           string
	AdditionalNotes string
}

// PublicService handles the unauthenticated self-service workflows:
// search, verify-details, and correction submission.
type PublicService interface {
	// Search looks up a member by the (member_number, id_number) pair and
	// always writes exactly one search log row before returning.
	Search(ctx context.Context, memberNumber, idNumber string, client SearchClient) (*model.Member, bool, error)
	VerifyDetails(ctx context.Context, memberID uint, memberNumber string) (*model.Verification, error)
	SubmitCorrection(ctx context.Context, submission CorrectionSubmission) (*model.CorrectionRequest, error)
}

type publicService struct {
	memberRepo       repository.MemberRepository
	verificationRepo repository.VerificationRepository
	correctionRepo   repository.CorrectionRepository
	searchLogRepo    repository.SearchLogRepository
	cache            SearchCache
	notifier         CorrectionNotifier
}

// NewPublicService creates a new public service.
func NewPublicService(
	memberRepo repository.MemberRepository,
	verificationRepo repository.VerificationRepository,
	correctionRepo repository.CorrectionRepository,
	searchLogRepo repository.SearchLogRepository,
	cache SearchCache,
	notifier CorrectionNotifier,
) PublicService {
	return &publicService{
		memberRepo:       memberRepo,
		verificationRepo: verificationRepo,
		correctionRepo:   correctionRepo,
		searchLogRepo:    searchLogRepo,
		cache:            cache,
		notifier:         notifier,
	}
}

// Search resolves the pair against the store (through a short-lived cache)
// and records the attempt, matched or not.
func (s *publicService) Search(ctx context.Context, memberNumber, idNumber string, client SearchClient) (*model.Member, bool, error) {
	memberNumber = strings.TrimSpace(memberNumber)
	idNumber = strings.TrimSpace(idNumber)

	member, err := s.lookup(ctx, memberNumber, idNumber)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("search member: %w", err)
	}
	found := member != nil

	logEntry := &model.SearchLog{
		MemberNumber:     memberNumber,
		IDNumber:         idNumber,
		SearchSuccessful: found,
		IPAddress:        client.IP,
		UserAgent:        model.TruncateUserAgent(client.UserAgent),
	}
	if found {
		logEntry.MemberID = &member.ID
	}
	if err := s.searchLogRepo.Create(ctx, logEntry); err != nil {
		return nil, false, fmt.Errorf("record search attempt: %w", err)
	}

	return member, found, nil
}

// lookup checks the cache before the composite-index query and caches
// positive results only.
func (s *publicService) lookup(ctx context.Context, memberNumber, idNumber string) (*model.Member, error) {
	key := searchCacheKey(memberNumber, idNumber)
	if s.cache != nil {
		if data, _ := s.cache.Get(ctx, key); data != nil {
			var cached model.Member
			if err := json.Unmarshal(data, &cached); err == nil {
				return &cached, nil
			}
		}
	}

	member, err := s.memberRepo.FindByNumberAndID(ctx, memberNumber, idNumber)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if payload, err := json.Marshal(member); err == nil {
			_ = s.cache.Set(ctx, key, payload, searchCacheTTL)
		}
	}
	return member, nil
}

// VerifyDetails records an immutable snapshot confirming the member's
// stored details. The supplied member ID and number must both match.
func (s *publicService) VerifyDetails(ctx context.Context, memberID uint, memberNumber string) (*model.Verification, error) {
	member, err := s.matchMember(ctx, memberID, memberNumber)
	if err != nil {
		return nil, err
	}

	verification := &model.Verification{
		MemberID:     member.ID,
		MemberNumber: member.MemberNumber,
		Name:         member.Name,
		Zone:         member.Zone,
		IDNumber:     member.IDNumber,
	}
	if err := s.verificationRepo.Create(ctx, verification); err != nil {
		return nil, fmt.Errorf("record verification: %w", err)
	}
	return verification, nil
}

// SubmitCorrection validates and stores a correction request, then fires
// the notification. Notification failure never affects the stored request.
func (s *publicService) SubmitCorrection(ctx context.Context, submission CorrectionSubmission) (*model.CorrectionRequest, error) {
	email := strings.TrimSpace(submission.Email)
	phone := strings.TrimSpace(submission.Phone)
	if email == "" && phone == "" {
		return nil, apperrors.ErrContactRequired
	}

	member, err := s.matchMember(ctx, submission.MemberID, submission.MemberNumber)
	if err != nil {
		return nil, err
	}

	correction := &model.CorrectionRequest{
		MemberID:        member.ID,
		MemberNumber:    member.MemberNumber,
		IDNumber:        member.IDNumber,
		CurrentName:     member.Name,
		CurrentZone:     member.Zone,
		CorrectName:     strings.TrimSpace(submission.CorrectName),
		CorrectZone:     strings.TrimSpace(submission.CorrectZone),
		Email:           email,
		Phone:           phone,
		AdditionalNotes: strings.TrimSpace(submission.AdditionalNotes),
		Status:          model.CorrectionStatusPending,
	}
	if err := s.correctionRepo.Create(ctx, correction); err != nil {
		return nil, fmt.Errorf("create correction request: %w", err)
	}

	if s.notifier != nil {
		s.notifier.NotifyCorrectionAsync(correction)
	}
	return correction, nil
}

// matchMember resolves a member by ID and requires the member number to
// agree, so a caller cannot act on someone else's record by guessing IDs.
func (s *publicService) matchMember(ctx context.Context, memberID uint, memberNumber string) (*model.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, memberID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrMemberNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	if member.MemberNumber != strings.TrimSpace(memberNumber) {
		return nil, apperrors.ErrMemberNotFound
	}
	return member, nil
}
