package service

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"

	apperrors "saccoreg/internal/errors"
)

// buildSheet writes rows into an in-memory workbook, first row included.
func buildSheet(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			assert.NoError(t, err)
			assert.NoError(t, f.SetCellValue(sheet, cell, value))
		}
	}

	buf, err := f.WriteToBuffer()
	assert.NoError(t, err)
	return buf
}

func TestParseMemberSheet(t *testing.T) {
	tests := []struct {
		name     string
		sheet    [][]string
		required []string
		expected []SheetRow
		wantErr  error
	}{
		{
			name: "well formed import sheet",
			sheet: [][]string{
				{"name", "member_number", "id_number", "zone", "status"},
				{"Alice Wanjiku", "M001", "11111111", "North", "active"},
				{"Brian Otieno", "M002", "22222222", "South", ""},
			},
			required: ImportColumns,
			expected: []SheetRow{
				{Row: 2, Name: "Alice Wanjiku", MemberNumber: "M001", IDNumber: "11111111", Zone: "North", Status: "active"},
				{Row: 3, Name: "Brian Otieno", MemberNumber: "M002", IDNumber: "22222222", Zone: "South"},
			},
		},
		{
			name: "headers matched case-insensitively in any order",
			sheet: [][]string{
				{"Zone", "ID Number", "Member Number", "NAME"},
				{"North", "11111111", "M001", "Alice Wanjiku"},
			},
			required: ImportColumns,
			expected: []SheetRow{
				{Row: 2, Name: "Alice Wanjiku", MemberNumber: "M001", IDNumber: "11111111", Zone: "North"},
			},
		},
		{
			name: "blank rows skipped but numbering preserved",
			sheet: [][]string{
				{"name", "member_number", "id_number", "zone"},
				{"Alice Wanjiku", "M001", "11111111", "North"},
				{"", "", "", ""},
				{"Brian Otieno", "M002", "22222222", "South"},
			},
			required: ImportColumns,
			expected: []SheetRow{
				{Row: 2, Name: "Alice Wanjiku", MemberNumber: "M001", IDNumber: "11111111", Zone: "North"},
				{Row: 4, Name: "Brian Otieno", MemberNumber: "M002", IDNumber: "22222222", Zone: "South"},
			},
		},
		{
			name: "update sheet only needs member_number",
			sheet: [][]string{
				{"member_number", "zone"},
				{"M001", "West"},
			},
			required: UpdateColumns,
			expected: []SheetRow{
				{Row: 2, MemberNumber: "M001", Zone: "West"},
			},
		},
		{
			name: "missing required column",
			sheet: [][]string{
				{"name", "member_number", "zone"},
				{"Alice Wanjiku", "M001", "North"},
			},
			required: ImportColumns,
			wantErr:  apperrors.ErrSheetMissingColumns,
		},
		{
			name: "header only",
			sheet: [][]string{
				{"name", "member_number", "id_number", "zone"},
			},
			required: ImportColumns,
			wantErr:  apperrors.ErrSheetNoData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := buildSheet(t, tt.sheet)

			rows, err := ParseMemberSheet(buf, tt.required)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, rows)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, rows)
			}
		})
	}
}

func TestParseMemberSheet_TooManyRows(t *testing.T) {
	sheet := make([][]string, 0, maxSheetRows+2)
	sheet = append(sheet, []string{"name", "member_number", "id_number", "zone"})
	for i := 0; i < maxSheetRows+1; i++ {
		sheet = append(sheet, []string{"Member", fmt.Sprintf("M%05d", i), "11111111", "North"})
	}

	buf := buildSheet(t, sheet)
	rows, err := ParseMemberSheet(buf, ImportColumns)

	assert.ErrorIs(t, err, apperrors.ErrSheetTooLarge)
	assert.Nil(t, rows)
}

func TestParseMemberSheet_NotASpreadsheet(t *testing.T) {
	rows, err := ParseMemberSheet(bytes.NewBufferString("definitely not xlsx"), ImportColumns)
	assert.Error(t, err)
	assert.Nil(t, rows)
}
