package service

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "saccoreg/internal/errors"
)

// maxSheetRows caps how many data rows one upload may carry.
const maxSheetRows = 5000

// ImportColumns are the header columns a bulk import sheet must carry.
var ImportColumns = []string{"name", "member_number", "id_number", "zone"}

// UpdateColumns are the header columns a bulk update sheet must carry.
var UpdateColumns = []string{"member_number"}

// ParseMemberSheet reads the first worksheet of an uploaded .xlsx/.xls
// file into SheetRows. The first row is the header; columns are matched by
// name in any order. Blank rows are skipped. required lists the header
// columns that must be present for this operation.
func ParseMemberSheet(r io.Reader, required []string) ([]SheetRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse spreadsheet: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	excelRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("read worksheet: %w", err)
	}

	if len(excelRows) < 2 {
		return nil, apperrors.ErrSheetNoData
	}

	colIndex := headerIndex(excelRows[0])
	for _, col := range required {
		if colIndex[col] < 0 {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrSheetMissingColumns, col)
		}
	}

	cell := func(row []string, col string) string {
		if idx := colIndex[col]; idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var rows []SheetRow
	for i := 1; i < len(excelRows); i++ {
		row := excelRows[i]
		item := SheetRow{
			Row:          i + 1, // spreadsheet row number, header is row 1
			Name:         cell(row, "name"),
			MemberNumber: cell(row, "member_number"),
			IDNumber:     cell(row, "id_number"),
			Zone:         cell(row, "zone"),
			Status:       cell(row, "status"),
		}

		if item.Name == "" && item.MemberNumber == "" && item.IDNumber == "" && item.Zone == "" && item.Status == "" {
			continue
		}
		rows = append(rows, item)
	}

	if len(rows) == 0 {
		return nil, apperrors.ErrSheetNoData
	}
	if len(rows) > maxSheetRows {
		return nil, apperrors.ErrSheetTooLarge
	}
	return rows, nil
}

// headerIndex maps known column names to their position in the header row.
// Header matching is case-insensitive and tolerates surrounding spaces.
func headerIndex(header []string) map[string]int {
	idx := map[string]int{
		"name":          -1,
		"member_number": -1,
		"id_number":     -1,
		"zone":          -1,
		"status":        -1,
	}
	for i, raw := range header {
		name := strings.ToLower(strings.TrimSpace(raw))
		name = strings.ReplaceAll(name, " ", "_")
		if _, known := idx[name]; known && idx[name] < 0 {
			idx[name] = i
		}
	}
	return idx
}
