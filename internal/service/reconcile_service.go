package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"saccoreg/internal/model"
	"saccoreg/internal/repository"
)

// maxBatchErrors caps the per-row messages returned for one batch; counts
// keep accumulating past the cap.
const maxBatchErrors = 20

// SheetRow is one candidate member row from an upload or a JSON bulk
// request. Row is the 1-based source position used in messages.
type SheetRow struct {
	Row          int
	Name         string
	MemberNumber string
	IDNumber     string
	Zone         string
	Status       string
}

// ImportResult summarizes a bulk import.
type ImportResult struct {
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

func (r *ImportResult) appendError(msg string) {
	if len(r.Errors) < maxBatchErrors {
		r.Errors = append(r.Errors, msg)
	}
}

// UpdateResult summarizes a bulk update.
type UpdateResult struct {
	Updated      int      `json:"updated"`
	NotFound     int      `json:"not_found"`
	Errors       int      `json:"errors"`
	ErrorDetails []string `json:"error_details"`
}

func (r *UpdateResult) appendDetail(msg string) {
	if len(r.ErrorDetails) < maxBatchErrors {
		r.ErrorDetails = append(r.ErrorDetails, msg)
	}
}

// ReconcileService matches batches of candidate rows against the stored
// roster, deciding per row whether to insert, update, or skip, without
// violating member number uniqueness. It is stateless between calls; the
// known-set lives only for the duration of one batch.
type ReconcileService interface {
	ImportMembers(ctx context.Context, rows []SheetRow) (*ImportResult, error)
	UpdateMembers(ctx context.Context, rows []SheetRow) (*UpdateResult, error)
}

type reconcileService struct {
	memberRepo repository.MemberRepository
	cache      SearchCache
}

// NewReconcileService creates a new reconcile service.
func NewReconcileService(memberRepo repository.MemberRepository, cache SearchCache) ReconcileService {
	return &reconcileService{memberRepo: memberRepo, cache: cache}
}

// ImportMembers processes rows for insertion. Each row is validated and
// checked against the known-set (numbers already in the store plus numbers
// staged earlier in this batch); survivors are inserted in one transaction.
// A failing row never aborts the batch; a failing final insert aborts and
// rolls back the whole batch.
func (s *reconcileService) ImportMembers(ctx context.Context, rows []SheetRow) (*ImportResult, error) {
	known, err := s.memberRepo.ListMemberNumbers(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch member numbers: %w", err)
	}

	result := &ImportResult{Errors: []string{}}
	staged := make([]model.Member, 0, len(rows))
	for _, row := range rows {
		s.reconcileImportRow(row, known, &staged, result)
	}

	if len(staged) > 0 {
		err := s.memberRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.MemberRepository) error {
			return txRepo.CreateBatch(ctx, staged)
		})
		if err != nil {
			// nothing partially committed; the unique index is the final
			// guard against a concurrent batch racing the known-set snapshot
			return nil, fmt.Errorf("insert members: %w", err)
		}
	}
	result.Added = len(staged)
	return result, nil
}

// reconcileImportRow decides the fate of a single import row. A panic while
// processing one row is recovered and reported for that row only.
func (s *reconcileService) reconcileImportRow(row SheetRow, known map[string]struct{}, staged *[]model.Member, result *ImportResult) {
	defer func() {
		if rec := recover(); rec != nil {
			result.Skipped++
			result.appendError(fmt.Sprintf("row %d: %v", row.Row, rec))
		}
	}()

	name := strings.TrimSpace(row.Name)
	memberNumber := strings.TrimSpace(row.MemberNumber)
	idNumber := strings.TrimSpace(row.IDNumber)
	zone := strings.TrimSpace(row.Zone)

	if name == "" || memberNumber == "" || idNumber == "" || zone == "" {
		result.Skipped++
		result.appendError(fmt.Sprintf("row %d: missing required data", row.Row))
		return
	}

	status := model.MemberStatus(strings.TrimSpace(row.Status))
	if status == "" {
		status = model.MemberStatusActive
	}
	if !model.ValidMemberStatus(status) {
		result.Skipped++
		result.appendError(fmt.Sprintf("row %d: invalid status %q", row.Row, row.Status))
		return
	}

	if _, exists := known[memberNumber]; exists {
		result.Skipped++
		result.appendError(fmt.Sprintf("row %d: member number %s already exists", row.Row, memberNumber))
		return
	}

	*staged = append(*staged, model.Member{
		Name:         name,
		MemberNumber: memberNumber,
		IDNumber:     idNumber,
		Zone:         zone,
		Status:       status,
	})
	// Reserve the number immediately so later duplicates in this batch are
	// caught. Rows rejected above do not reserve theirs.
	known[memberNumber] = struct{}{}
}

// UpdateMembers processes rows keyed by member number, applying only the
// fields present and non-empty in each row. Matched updates are committed
// together; no transaction is opened when nothing matched.
func (s *reconcileService) UpdateMembers(ctx context.Context, rows []SheetRow) (*UpdateResult, error) {
	result := &UpdateResult{ErrorDetails: []string{}}
	pending := make([]*model.Member, 0, len(rows))
	staleKeys := make([]string, 0, len(rows))
	for _, row := range rows {
		s.reconcileUpdateRow(ctx, row, &pending, &staleKeys, result)
	}

	if len(pending) > 0 {
		err := s.memberRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.MemberRepository) error {
			for _, member := range pending {
				if err := txRepo.Update(ctx, member); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("update members: %w", err)
		}
		if s.cache != nil {
			for _, key := range staleKeys {
				_ = s.cache.Delete(ctx, key)
			}
		}
	}
	result.Updated = len(pending)
	return result, nil
}

// reconcileUpdateRow resolves one update row against the store. Not-found
// is an expected outcome counted apart from errors.
func (s *reconcileService) reconcileUpdateRow(ctx context.Context, row SheetRow, pending *[]*model.Member, staleKeys *[]string, result *UpdateResult) {
	defer func() {
		if rec := recover(); rec != nil {
			result.Errors++
			result.appendDetail(fmt.Sprintf("row %d: %v", row.Row, rec))
		}
	}()

	memberNumber := strings.TrimSpace(row.MemberNumber)
	if memberNumber == "" {
		result.Errors++
		result.appendDetail(fmt.Sprintf("row %d: missing member number", row.Row))
		return
	}

	member, err := s.memberRepo.FindByMemberNumber(ctx, memberNumber)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			result.NotFound++
			result.appendDetail(fmt.Sprintf("row %d: member number %s not found", row.Row, memberNumber))
			return
		}
		result.Errors++
		result.appendDetail(fmt.Sprintf("row %d: %v", row.Row, err))
		return
	}

	// Stale-entry key for the identity as it was cached, captured before
	// the sparse fields below can change the ID number.
	staleKey := searchCacheKey(member.MemberNumber, member.IDNumber)

	// Sparse semantics: absent fields never reset stored values.
	if name := strings.TrimSpace(row.Name); name != "" {
		member.Name = name
	}
	if idNumber := strings.TrimSpace(row.IDNumber); idNumber != "" {
		member.IDNumber = idNumber
	}
	if zone := strings.TrimSpace(row.Zone); zone != "" {
		member.Zone = zone
	}
	if status := model.MemberStatus(strings.TrimSpace(row.Status)); status != "" {
		if !model.ValidMemberStatus(status) {
			result.Errors++
			result.appendDetail(fmt.Sprintf("row %d: invalid status %q", row.Row, row.Status))
			return
		}
		member.Status = status
	}

	*pending = append(*pending, member)
	*staleKeys = append(*staleKeys, staleKey)
}
