package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"saccoreg/internal/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Member{},
		&model.Verification{},
		&model.CorrectionRequest{},
		&model.SearchLog{},
	))
	return db
}

func seedMember(t *testing.T, repo MemberRepository, memberNumber string) *model.Member {
	t.Helper()
	member := &model.Member{
		Name:         "Member " + memberNumber,
		MemberNumber: memberNumber,
		IDNumber:     "ID-" + memberNumber,
		Zone:         "North",
		Status:       model.MemberStatusActive,
	}
	require.NoError(t, repo.Create(context.Background(), member))
	return member
}

func TestMemberRepository_UniqueMemberNumber(t *testing.T) {
	repo := NewMemberRepository(newTestDB(t))
	ctx := context.Background()

	seedMember(t, repo, "M001")

	err := repo.Create(ctx, &model.Member{
		Name:         "Imposter",
		MemberNumber: "M001",
		IDNumber:     "99999999",
		Zone:         "South",
		Status:       model.MemberStatusActive,
	})
	assert.Error(t, err)
}

func TestMemberRepository_CreateBatchRollsBackOnConflict(t *testing.T) {
	repo := NewMemberRepository(newTestDB(t))
	ctx := context.Background()

	seedMember(t, repo, "M001")

	// Second row collides with the stored member; the transaction must
	// leave the first row uncommitted too.
	err := repo.WithTransaction(ctx, func(ctx context.Context, txRepo MemberRepository) error {
		return txRepo.CreateBatch(ctx, []model.Member{
			{Name: "New A", MemberNumber: "M100", IDNumber: "100", Zone: "North", Status: model.MemberStatusActive},
			{Name: "Dup", MemberNumber: "M001", IDNumber: "001", Zone: "North", Status: model.MemberStatusActive},
		})
	})
	assert.Error(t, err)

	_, err = repo.FindByMemberNumber(ctx, "M100")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMemberRepository_ListMemberNumbers(t *testing.T) {
	repo := NewMemberRepository(newTestDB(t))
	ctx := context.Background()

	seedMember(t, repo, "M001")
	seedMember(t, repo, "M002")

	numbers, err := repo.ListMemberNumbers(ctx)
	assert.NoError(t, err)
	assert.Len(t, numbers, 2)
	_, ok := numbers["M001"]
	assert.True(t, ok)
	_, ok = numbers["M002"]
	assert.True(t, ok)
}

func TestMemberRepository_FindByNumberAndID(t *testing.T) {
	repo := NewMemberRepository(newTestDB(t))
	ctx := context.Background()

	stored := seedMember(t, repo, "M001")

	found, err := repo.FindByNumberAndID(ctx, "M001", stored.IDNumber)
	assert.NoError(t, err)
	assert.Equal(t, stored.ID, found.ID)

	_, err = repo.FindByNumberAndID(ctx, "M001", "wrong-id")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMemberRepository_DeleteCascadesAuditRows(t *testing.T) {
	db := newTestDB(t)
	repo := NewMemberRepository(db)
	ctx := context.Background()

	member := seedMember(t, repo, "M001")

	require.NoError(t, db.Create(&model.Verification{
		MemberID:     member.ID,
		MemberNumber: member.MemberNumber,
		Name:         member.Name,
		Zone:         member.Zone,
		IDNumber:     member.IDNumber,
	}).Error)
	require.NoError(t, db.Create(&model.SearchLog{
		MemberID:     &member.ID,
		MemberNumber: member.MemberNumber,
		IDNumber:     member.IDNumber,
	}).Error)

	assert.NoError(t, repo.Delete(ctx, member.ID))

	var verifications int64
	assert.NoError(t, db.Model(&model.Verification{}).Where("member_id = ?", member.ID).Count(&verifications).Error)
	assert.Zero(t, verifications)

	var logs int64
	assert.NoError(t, db.Model(&model.SearchLog{}).Where("member_id = ?", member.ID).Count(&logs).Error)
	assert.Zero(t, logs)
}

func TestMemberRepository_DeleteUnknownID(t *testing.T) {
	repo := NewMemberRepository(newTestDB(t))

	err := repo.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestMemberRepository_DeleteBatchReportsCount(t *testing.T) {
	repo := NewMemberRepository(newTestDB(t))
	ctx := context.Background()

	a := seedMember(t, repo, "M001")
	b := seedMember(t, repo, "M002")

	deleted, err := repo.DeleteBatch(ctx, []uint{a.ID, b.ID, 999})
	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
}

func TestMemberRepository_ListOrderedByMemberNumber(t *testing.T) {
	repo := NewMemberRepository(newTestDB(t))
	ctx := context.Background()

	seedMember(t, repo, "M002")
	seedMember(t, repo, "M001")

	members, err := repo.List(ctx)
	assert.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "M001", members[0].MemberNumber)
	assert.Equal(t, "M002", members[1].MemberNumber)
}
