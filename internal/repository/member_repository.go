package repository

import (
	"context"

	"gorm.io/gorm"

	"saccoreg/internal/model"
)

// MemberRepository defines member persistence operations.
type MemberRepository interface {
	Create(ctx context.Context, member *model.Member) error
	CreateBatch(ctx context.Context, members []model.Member) error
	Update(ctx context.Context, member *model.Member) error
	FindByID(ctx context.Context, id uint) (*model.Member, error)
	FindByMemberNumber(ctx context.Context, memberNumber string) (*model.Member, error)
	FindByNumberAndID(ctx context.Context, memberNumber, idNumber string) (*model.Member, error)
	List(ctx context.Context) ([]model.Member, error)
	ListMemberNumbers(ctx context.Context) (map[string]struct{}, error)
	Delete(ctx context.Context, id uint) error
	DeleteBatch(ctx context.Context, ids []uint) (int64, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MemberRepository) error) error
}

type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository.
func NewMemberRepository(db *gorm.DB) MemberRepository {
	return &memberRepository{db: db}
}

// Create creates a new member.
func (r *memberRepository) Create(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Create(member).Error
}

// CreateBatch inserts members in a single bulk operation.
func (r *memberRepository) CreateBatch(ctx context.Context, members []model.Member) error {
	if len(members) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&members).Error
}

// Update updates an existing member.
func (r *memberRepository) Update(ctx context.Context, member *model.Member) error {
	return r.db.WithContext(ctx).Save(member).Error
}

// FindByID finds a member by ID.
func (r *memberRepository) FindByID(ctx context.Context, id uint) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByMemberNumber finds a member by its unique member number.
func (r *memberRepository) FindByMemberNumber(ctx context.Context, memberNumber string) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).Where("member_number = ?", memberNumber).First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// FindByNumberAndID finds a member by the (member_number, id_number) pair
// used on the public search path.
func (r *memberRepository) FindByNumberAndID(ctx context.Context, memberNumber, idNumber string) (*model.Member, error) {
	var member model.Member
	if err := r.db.WithContext(ctx).
		Where("member_number = ? AND id_number = ?", memberNumber, idNumber).
		First(&member).Error; err != nil {
		return nil, err
	}
	return &member, nil
}

// List lists all members ordered by member number.
func (r *memberRepository) List(ctx context.Context) ([]model.Member, error) {
	var members []model.Member
	if err := r.db.WithContext(ctx).Order("member_number").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// ListMemberNumbers fetches the set of all member numbers currently stored.
func (r *memberRepository) ListMemberNumbers(ctx context.Context) (map[string]struct{}, error) {
	var numbers []string
	if err := r.db.WithContext(ctx).Model(&model.Member{}).Pluck("member_number", &numbers).Error; err != nil {
		return nil, err
	}
	set := make(map[string]struct{}, len(numbers))
	for _, n := range numbers {
		set[n] = struct{}{}
	}
	return set, nil
}

// Delete removes a member by ID. Dependent verification, correction and
// search log rows are removed by the database cascade.
func (r *memberRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Member{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteBatch removes members by ID and returns the number deleted.
func (r *memberRepository) DeleteBatch(ctx context.Context, ids []uint) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.db.WithContext(ctx).Delete(&model.Member{}, ids)
	return res.RowsAffected, res.Error
}

// WithTransaction executes a function within a database transaction.
func (r *memberRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo MemberRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &memberRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
