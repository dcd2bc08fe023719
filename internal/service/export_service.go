package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"saccoreg/internal/repository"
)

// ExportService renders stored records to downloadable documents. Exports
// are pure functions of already-committed data.
type ExportService interface {
	// MembersXLSX renders the full roster as a spreadsheet, returning the
	// file content and a suggested filename.
	MembersXLSX(ctx context.Context) (*bytes.Buffer, string, error)
	// CorrectionsPDF renders the correction request list as a PDF report.
	CorrectionsPDF(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	memberRepo     repository.MemberRepository
	correctionRepo repository.CorrectionRepository
}

// NewExportService creates a new export service.
func NewExportService(memberRepo repository.MemberRepository, correctionRepo repository.CorrectionRepository) ExportService {
	return &exportService{
		memberRepo:     memberRepo,
		correctionRepo: correctionRepo,
	}
}

var memberSheetHeader = []string{"name", "member_number", "id_number", "zone", "status", "created_at"}

// MembersXLSX writes the roster using the same column names the bulk
// importer accepts, so an export round-trips as an import.
func (s *exportService) MembersXLSX(ctx context.Context) (*bytes.Buffer, string, error) {
	members, err := s.memberRepo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("list members: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for col, title := range memberSheetHeader {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(sheet, cell, title); err != nil {
			return nil, "", fmt.Errorf("write header: %w", err)
		}
	}

	for i, member := range members {
		values := []interface{}{
			member.Name,
			member.MemberNumber,
			member.IDNumber,
			member.Zone,
			string(member.Status),
			member.CreatedAt.Format(time.RFC3339),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, "", fmt.Errorf("write row %d: %w", i+2, err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("render spreadsheet: %w", err)
	}

	filename := fmt.Sprintf("members_%s.xlsx", time.Now().Format("2006-01-02"))
	return buf, filename, nil
}

// CorrectionsPDF renders one block per correction request, newest first.
func (s *exportService) CorrectionsPDF(ctx context.Context) (*bytes.Buffer, string, error) {
	corrections, err := s.correctionRepo.List(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("list corrections: %w", err)
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Correction Requests", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Correction Requests")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	if len(corrections) == 0 {
		pdf.Cell(0, 8, "No correction requests recorded.")
	}

	for _, c := range corrections {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 7, fmt.Sprintf("Request #%d - member %s (%s)", c.ID, c.MemberNumber, c.Status))
		pdf.Ln(7)

		pdf.SetFont("Helvetica", "", 10)
		lines := []string{
			fmt.Sprintf("Submitted: %s", c.SubmittedAt.Format("2006-01-02 15:04")),
			fmt.Sprintf("Name: %s -> %s", c.CurrentName, orDash(c.CorrectName)),
			fmt.Sprintf("Zone: %s -> %s", c.CurrentZone, orDash(c.CorrectZone)),
			fmt.Sprintf("Contact: %s %s", orDash(c.Email), orDash(c.Phone)),
		}
		if c.AdditionalNotes != "" {
			lines = append(lines, fmt.Sprintf("Notes: %s", c.AdditionalNotes))
		}
		if c.ResolvedAt != nil {
			lines = append(lines, fmt.Sprintf("Resolved: %s", c.ResolvedAt.Format("2006-01-02 15:04")))
		}
		for _, line := range lines {
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
		}
		pdf.Ln(4)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render pdf: %w", err)
	}

	filename := fmt.Sprintf("corrections_%s.pdf", time.Now().Format("2006-01-02"))
	return &buf, filename, nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
