package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"saccoreg/internal/auth"
	"saccoreg/internal/service"
)

// CorrectionHandler handles administrative correction endpoints.
type CorrectionHandler struct {
	correctionService service.CorrectionService
	exportService     service.ExportService
}

// NewCorrectionHandler creates a new correction handler.
func NewCorrectionHandler(correctionService service.CorrectionService, exportService service.ExportService) *CorrectionHandler {
	return &CorrectionHandler{correctionService: correctionService, exportService: exportService}
}

// List godoc
// @Summary List correction requests
// @Tags corrections
// @Produce json
// @Security BearerAuth
// @Param status query string false "Filter by status (pending/resolved)"
// @Success 200 {array} model.CorrectionRequest
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/corrections [get]
func (h *CorrectionHandler) List(c echo.Context) error {
	corrections, err := h.correctionService.List(c.Request().Context(), c.QueryParam("status"))
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, corrections)
}

// Resolve godoc
// @Summary Resolve a pending correction request
// @Tags corrections
// @Produce json
// @Security BearerAuth
// @Param id path int true "Correction request ID"
// @Success 200 {object} model.CorrectionRequest
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/corrections/{id}/resolve [put]
func (h *CorrectionHandler) Resolve(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	claims, err := auth.CurrentClaims(c)
	if err != nil {
		return err
	}

	correction, err := h.correctionService.Resolve(c.Request().Context(), id, claims.UserID)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, correction)
}

// ExportPDF godoc
// @Summary Export correction requests as a PDF report
// @Tags corrections
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/corrections/export.pdf [get]
func (h *CorrectionHandler) ExportPDF(c echo.Context) error {
	buf, filename, err := h.exportService.CorrectionsPDF(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK, "application/pdf", buf.Bytes())
}
