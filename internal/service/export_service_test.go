package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"saccoreg/internal/model"
)

func TestExportService_MembersXLSX_RoundTripsAsImport(t *testing.T) {
	mockRepo := new(MockMemberRepository)
	mockRepo.On("List", mock.Anything).Return([]model.Member{
		{
			Name:         "Alice Wanjiku",
			MemberNumber: "M001",
			IDNumber:     "11111111",
			Zone:         "North",
			Status:       model.MemberStatusActive,
			CreatedAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
		},
		{
			Name:         "Brian Otieno",
			MemberNumber: "M002",
			IDNumber:     "22222222",
			Zone:         "South",
			Status:       model.MemberStatusInactive,
			CreatedAt:    time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
		},
	}, nil)

	service := NewExportService(mockRepo, new(MockCorrectionRepository))
	buf, filename, err := service.MembersXLSX(context.Background())

	assert.NoError(t, err)
	assert.Contains(t, filename, "members_")
	assert.Contains(t, filename, ".xlsx")

	// The export uses the importer's column names, so it must parse back.
	rows, err := ParseMemberSheet(buf, ImportColumns)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "M001", rows[0].MemberNumber)
	assert.Equal(t, "Alice Wanjiku", rows[0].Name)
	assert.Equal(t, "inactive", rows[1].Status)

	mockRepo.AssertExpectations(t)
}

func TestExportService_CorrectionsPDF(t *testing.T) {
	resolvedAt := time.Date(2026, 3, 5, 14, 30, 0, 0, time.UTC)

	tests := []struct {
		name        string
		corrections []model.CorrectionRequest
	}{
		{
			name:        "empty list still renders",
			corrections: []model.CorrectionRequest{},
		},
		{
			name: "pending and resolved requests",
			corrections: []model.CorrectionRequest{
				{
					ID:           1,
					MemberNumber: "M001",
					CurrentName:  "Alice Wanjiku",
					CorrectName:  "Alice W. Kamau",
					Email:        "alice@example.com",
					Status:       model.CorrectionStatusPending,
					SubmittedAt:  time.Date(2026, 3, 4, 10, 0, 0, 0, time.UTC),
				},
				{
					ID:              2,
					MemberNumber:    "M002",
					CurrentZone:     "South",
					CorrectZone:     "East",
					Phone:           "+254700000000",
					AdditionalNotes: "Moved last year",
					Status:          model.CorrectionStatusResolved,
					SubmittedAt:     time.Date(2026, 3, 3, 10, 0, 0, 0, time.UTC),
					ResolvedAt:      &resolvedAt,
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockCorrectionRepository)
			mockRepo.On("List", mock.Anything).Return(tt.corrections, nil)

			service := NewExportService(new(MockMemberRepository), mockRepo)
			buf, filename, err := service.CorrectionsPDF(context.Background())

			assert.NoError(t, err)
			assert.Contains(t, filename, ".pdf")
			assert.True(t, buf.Len() > 0)
			// PDF magic bytes
			assert.Equal(t, "%PDF", buf.String()[:4])

			mockRepo.AssertExpectations(t)
		})
	}
}
