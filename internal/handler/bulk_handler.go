package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"

	"saccoreg/internal/errors"
	"saccoreg/internal/service"
)

// BulkHandler handles the spreadsheet and JSON batch endpoints backed by
// the reconcile service.
type BulkHandler struct {
	reconcileService service.ReconcileService
}

// NewBulkHandler creates a new bulk handler.
func NewBulkHandler(reconcileService service.ReconcileService) *BulkHandler {
	return &BulkHandler{reconcileService: reconcileService}
}

// BulkUploadResponse summarizes a bulk import.
type BulkUploadResponse struct {
	Success bool     `json:"success"`
	Added   int      `json:"added"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors"`
}

// BulkUpdateResponse summarizes a bulk update.
type BulkUpdateResponse struct {
	Success      bool     `json:"success"`
	Updated      int      `json:"updated"`
	NotFound     int      `json:"not_found"`
	Errors       int      `json:"errors"`
	ErrorDetails []string `json:"error_details"`
}

// MemberUpdateEntry is one JSON bulk update row.
type MemberUpdateEntry struct {
	MemberNumber string `json:"member_number" validate:"required"`
	Name         string `json:"name"`
	IDNumber     string `json:"id_number"`
	Zone         string `json:"zone"`
	Status       string `json:"status"`
}

// BulkUpdateJSONRequest represents a JSON bulk update request.
type BulkUpdateJSONRequest struct {
	Updates []MemberUpdateEntry `json:"updates" validate:"required,min=1,dive"`
}

// openUploadedSheet pulls the multipart "file" part and checks the extension.
func openUploadedSheet(c echo.Context, required []string) ([]service.SheetRow, *echo.HTTPError) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "file is required",
			Code:  "FILE_REQUIRED",
		})
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if ext != ".xlsx" && ext != ".xls" {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "file must be .xlsx or .xls",
			Code:  "INVALID_FILE_TYPE",
		})
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, errors.ErrorResponse{
			Error: "unable to read uploaded file",
			Code:  "FILE_READ_FAILED",
		})
	}
	defer src.Close()

	rows, err := service.ParseMemberSheet(src, required)
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return nil, echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}
	return rows, nil
}

// BulkUpload godoc
// @Summary Import members from a spreadsheet
// @Tags members
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Spreadsheet (.xlsx/.xls) with columns name, member_number, id_number, zone, status"
// @Success 200 {object} BulkUploadResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/members/bulk-upload [post]
func (h *BulkHandler) BulkUpload(c echo.Context) error {
	rows, httpErr := openUploadedSheet(c, service.ImportColumns)
	if httpErr != nil {
		return httpErr
	}

	result, err := h.reconcileService.ImportMembers(c.Request().Context(), rows)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, BulkUploadResponse{
		Success: true,
		Added:   result.Added,
		Skipped: result.Skipped,
		Errors:  result.Errors,
	})
}

// BulkUpdate godoc
// @Summary Update members from a spreadsheet
// @Tags members
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Spreadsheet (.xlsx/.xls) keyed by member_number"
// @Success 200 {object} BulkUpdateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/members/bulk-update [post]
func (h *BulkHandler) BulkUpdate(c echo.Context) error {
	rows, httpErr := openUploadedSheet(c, service.UpdateColumns)
	if httpErr != nil {
		return httpErr
	}

	result, err := h.reconcileService.UpdateMembers(c.Request().Context(), rows)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, BulkUpdateResponse{
		Success:      true,
		Updated:      result.Updated,
		NotFound:     result.NotFound,
		Errors:       result.Errors,
		ErrorDetails: result.ErrorDetails,
	})
}

// BulkUpdateJSON godoc
// @Summary Update members from a JSON list
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkUpdateJSONRequest true "Updates keyed by member_number"
// @Success 200 {object} BulkUpdateResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /admin/members/bulk-update-json [post]
func (h *BulkHandler) BulkUpdateJSON(c echo.Context) error {
	var req BulkUpdateJSONRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	rows := make([]service.SheetRow, 0, len(req.Updates))
	for i, u := range req.Updates {
		rows = append(rows, service.SheetRow{
			Row:          i + 1,
			Name:         u.Name,
			MemberNumber: u.MemberNumber,
			IDNumber:     u.IDNumber,
			Zone:         u.Zone,
			Status:       u.Status,
		})
	}

	result, err := h.reconcileService.UpdateMembers(c.Request().Context(), rows)
	if err != nil {
		return serviceError(err)
	}

	return c.JSON(http.StatusOK, BulkUpdateResponse{
		Success:      true,
		Updated:      result.Updated,
		NotFound:     result.NotFound,
		Errors:       result.Errors,
		ErrorDetails: result.ErrorDetails,
	})
}
