package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "saccoreg/internal/errors"
	"saccoreg/internal/model"
)

func TestMemberService_Create(t *testing.T) {
	tests := []struct {
		name          string
		input         MemberInput
		setupMock     func(*MockMemberRepository)
		expectedError error
	}{
		{
			name:  "new member created with defaulted status",
			input: MemberInput{Name: "Alice Wanjiku", MemberNumber: "M001", IDNumber: "11111111", Zone: "North"},
			setupMock: func(m *MockMemberRepository) {
				m.On("FindByMemberNumber", mock.Anything, "M001").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.MatchedBy(func(member *model.Member) bool {
					return member.Status == model.MemberStatusActive && member.MemberNumber == "M001"
				})).Return(nil)
			},
		},
		{
			name:  "duplicate member number rejected",
			input: MemberInput{Name: "Imposter", MemberNumber: "M001", IDNumber: "99999999", Zone: "South"},
			setupMock: func(m *MockMemberRepository) {
				m.On("FindByMemberNumber", mock.Anything, "M001").Return(storedMember(), nil)
			},
			expectedError: apperrors.ErrMemberExists,
		},
		{
			name:  "unrecognized status rejected",
			input: MemberInput{Name: "Alice Wanjiku", MemberNumber: "M001", IDNumber: "11111111", Zone: "North", Status: "retired"},
			setupMock: func(m *MockMemberRepository) {
				m.On("FindByMemberNumber", mock.Anything, "M001").Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrInvalidStatus,
		},
		{
			name:  "input trimmed before persisting",
			input: MemberInput{Name: "  Alice Wanjiku ", MemberNumber: " M001 ", IDNumber: " 11111111 ", Zone: " North "},
			setupMock: func(m *MockMemberRepository) {
				m.On("FindByMemberNumber", mock.Anything, "M001").Return(nil, gorm.ErrRecordNotFound)
				m.On("Create", mock.Anything, mock.MatchedBy(func(member *model.Member) bool {
					return member.Name == "Alice Wanjiku" && member.MemberNumber == "M001" &&
						member.IDNumber == "11111111" && member.Zone == "North"
				})).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMemberRepository)
			tt.setupMock(mockRepo)

			service := NewMemberService(mockRepo, nil)
			member, err := service.Create(context.Background(), tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, member)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, member)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMemberService_Update(t *testing.T) {
	tests := []struct {
		name          string
		input         MemberInput
		setupMock     func(*MockMemberRepository)
		expectedError error
		check         func(*testing.T, *model.Member)
	}{
		{
			name:  "sparse update changes only supplied fields",
			input: MemberInput{Zone: "West"},
			setupMock: func(m *MockMemberRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(storedMember(), nil)
				m.On("Update", mock.Anything, mock.AnythingOfType("*model.Member")).Return(nil)
			},
			check: func(t *testing.T, member *model.Member) {
				assert.Equal(t, "West", member.Zone)
				assert.Equal(t, "Alice Wanjiku", member.Name)
				assert.Equal(t, "M001", member.MemberNumber)
			},
		},
		{
			name:  "member number change re-checks uniqueness",
			input: MemberInput{MemberNumber: "M002"},
			setupMock: func(m *MockMemberRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(storedMember(), nil)
				m.On("FindByMemberNumber", mock.Anything, "M002").Return(&model.Member{ID: 8, MemberNumber: "M002"}, nil)
			},
			expectedError: apperrors.ErrMemberExists,
		},
		{
			name:  "unknown member",
			input: MemberInput{Zone: "West"},
			setupMock: func(m *MockMemberRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: apperrors.ErrMemberNotFound,
		},
		{
			name:  "unrecognized status rejected",
			input: MemberInput{Status: "retired"},
			setupMock: func(m *MockMemberRepository) {
				m.On("FindByID", mock.Anything, uint(7)).Return(storedMember(), nil)
			},
			expectedError: apperrors.ErrInvalidStatus,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockMemberRepository)
			tt.setupMock(mockRepo)

			service := NewMemberService(mockRepo, nil)
			member, err := service.Update(context.Background(), 7, tt.input)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, member)
			} else {
				assert.NoError(t, err)
				if tt.check != nil {
					tt.check(t, member)
				}
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestMemberService_Delete(t *testing.T) {
	t.Run("existing member deleted", func(t *testing.T) {
		mockRepo := new(MockMemberRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(storedMember(), nil)
		mockRepo.On("Delete", mock.Anything, uint(7)).Return(nil)

		service := NewMemberService(mockRepo, nil)
		assert.NoError(t, service.Delete(context.Background(), 7))
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown member", func(t *testing.T) {
		mockRepo := new(MockMemberRepository)
		mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
		mockRepo.On("Delete", mock.Anything, uint(99)).Return(gorm.ErrRecordNotFound)

		service := NewMemberService(mockRepo, nil)
		assert.ErrorIs(t, service.Delete(context.Background(), 99), apperrors.ErrMemberNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestMemberService_DeleteBatch(t *testing.T) {
	mockRepo := new(MockMemberRepository)
	mockRepo.On("FindByID", mock.Anything, uint(1)).Return(&model.Member{ID: 1, MemberNumber: "M001", IDNumber: "11111111"}, nil)
	mockRepo.On("FindByID", mock.Anything, uint(2)).Return(&model.Member{ID: 2, MemberNumber: "M002", IDNumber: "22222222"}, nil)
	mockRepo.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
	mockRepo.On("DeleteBatch", mock.Anything, []uint{1, 2, 99}).Return(int64(2), nil)

	fakeCache := newFakeSearchCache()
	service := NewMemberService(mockRepo, fakeCache)
	deleted, err := service.DeleteBatch(context.Background(), []uint{1, 2, 99})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), deleted)
	assert.ElementsMatch(t, []string{
		searchCacheKey("M001", "11111111"),
		searchCacheKey("M002", "22222222"),
	}, fakeCache.deletions())
	mockRepo.AssertExpectations(t)
}
