package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"saccoreg/internal/service"
)

// AuditHandler serves the read-only verification and search-log trails.
type AuditHandler struct {
	auditService service.AuditService
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// ListVerifications godoc
// @Summary List verification history
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param member_id query int false "Filter by member ID"
// @Success 200 {array} model.Verification
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/verifications [get]
func (h *AuditHandler) ListVerifications(c echo.Context) error {
	ctx := c.Request().Context()

	if raw := c.QueryParam("member_id"); raw != "" {
		memberID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid member_id")
		}
		verifications, err := h.auditService.ListVerificationsByMember(ctx, uint(memberID))
		if err != nil {
			return serviceError(err)
		}
		return c.JSON(http.StatusOK, verifications)
	}

	verifications, err := h.auditService.ListVerifications(ctx)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, verifications)
}

// ListSearchLogs godoc
// @Summary List recent public search activity
// @Tags audit
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Maximum rows to return (default 100)"
// @Success 200 {array} model.SearchLog
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/search-logs [get]
func (h *AuditHandler) ListSearchLogs(c echo.Context) error {
	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = parsed
	}

	logs, err := h.auditService.RecentSearchLogs(c.Request().Context(), limit)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, logs)
}
