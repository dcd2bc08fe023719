package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"saccoreg/internal/service"
)

// MemberHandler handles single-record roster endpoints.
type MemberHandler struct {
	memberService service.MemberService
	exportService service.ExportService
}

// NewMemberHandler creates a new member handler.
func NewMemberHandler(memberService service.MemberService, exportService service.ExportService) *MemberHandler {
	return &MemberHandler{memberService: memberService, exportService: exportService}
}

// CreateMemberRequest represents a member creation request.
type CreateMemberRequest struct {
	Name         string `json:"name" validate:"required"`
	MemberNumber string `json:"member_number" validate:"required"`
	IDNumber     string `json:"id_number" validate:"required"`
	Zone         string `json:"zone" validate:"required"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive pending suspended"`
}

// UpdateMemberRequest represents a sparse member update; empty fields are
// left untouched.
type UpdateMemberRequest struct {
	Name         string `json:"name"`
	MemberNumber string `json:"member_number"`
	IDNumber     string `json:"id_number"`
	Zone         string `json:"zone"`
	Status       string `json:"status" validate:"omitempty,oneof=active inactive pending suspended"`
}

// BulkDeleteRequest represents a bulk delete request.
type BulkDeleteRequest struct {
	IDs []uint `json:"ids" validate:"required,min=1"`
}

// List godoc
// @Summary List all members
// @Tags members
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Member
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /admin/members [get]
func (h *MemberHandler) List(c echo.Context) error {
	members, err := h.memberService.List(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, members)
}

// Get godoc
// @Summary Get a member by ID
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} model.Member
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/members/{id} [get]
func (h *MemberHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	member, err := h.memberService.Get(c.Request().Context(), id)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, member)
}

// Create godoc
// @Summary Register a new member
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateMemberRequest true "Member data"
// @Success 201 {object} model.Member
// @Failure 400 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/members [post]
func (h *MemberHandler) Create(c echo.Context) error {
	var req CreateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.memberService.Create(c.Request().Context(), service.MemberInput{
		Name:         req.Name,
		MemberNumber: req.MemberNumber,
		IDNumber:     req.IDNumber,
		Zone:         req.Zone,
		Status:       req.Status,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, member)
}

// Update godoc
// @Summary Update a member
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param request body UpdateMemberRequest true "Fields to update"
// @Success 200 {object} model.Member
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorResponse
// @Router /admin/members/{id} [put]
func (h *MemberHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	var req UpdateMemberRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	member, err := h.memberService.Update(c.Request().Context(), id, service.MemberInput{
		Name:         req.Name,
		MemberNumber: req.MemberNumber,
		IDNumber:     req.IDNumber,
		Zone:         req.Zone,
		Status:       req.Status,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, member)
}

// Delete godoc
// @Summary Delete a member
// @Tags members
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} errors.ErrorResponse
// @Router /admin/members/{id} [delete]
func (h *MemberHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return err
	}

	if err := h.memberService.Delete(c.Request().Context(), id); err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message": "member deleted successfully",
	})
}

// BulkDelete godoc
// @Summary Delete members by ID list
// @Tags members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BulkDeleteRequest true "Member IDs"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Router /admin/members/bulk-delete [post]
func (h *MemberHandler) BulkDelete(c echo.Context) error {
	var req BulkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	deleted, err := h.memberService.DeleteBatch(c.Request().Context(), req.IDs)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"success": true,
		"deleted": deleted,
	})
}

// Export godoc
// @Summary Export the roster as a spreadsheet
// @Tags members
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Success 200 {file} binary
// @Failure 401 {object} errors.ErrorResponse
// @Router /admin/members/export [get]
func (h *MemberHandler) Export(c echo.Context) error {
	buf, filename, err := h.exportService.MembersXLSX(c.Request().Context())
	if err != nil {
		return serviceError(err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes())
}
