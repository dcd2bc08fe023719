package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"saccoreg/internal/model"
	"saccoreg/internal/service"
)

// PublicHandler handles the unauthenticated self-service endpoints.
type PublicHandler struct {
	publicService service.PublicService
}

// NewPublicHandler creates a new public handler.
func NewPublicHandler(publicService service.PublicService) *PublicHandler {
	return &PublicHandler{publicService: publicService}
}

// SearchRequest represents a public member search.
type SearchRequest struct {
	MemberNumber string `json:"member_number" validate:"required"`
	IDNumber     string `json:"id_number" validate:"required"`
}

// SearchResponse represents a public member search result.
type SearchResponse struct {
	Found   bool          `json:"found"`
	Member  *model.Member `json:"member,omitempty"`
	Message string        `json:"message,omitempty"`
}

// VerifyDetailsRequest represents a self-verification request.
type VerifyDetailsRequest struct {
	MemberID     uint   `json:"member_id" validate:"required"`
	MemberNumber string `json:"member_number" validate:"required"`
}

// SubmitCorrectionRequest represents a public correction submission.
type SubmitCorrectionRequest struct {
	MemberID        uint   `json:"member_id" validate:"required"`
	MemberNumber    string `json:"member_number" validate:"required"`
	CorrectName     string `json:"correct_name"`
	CorrectZone     string `json:"correct_zone"`
	Email           string `json:"email" validate:"omitempty,email"`
	Phone           string `json:"phone"`
	AdditionalNotes string `json:"additional_notes"`
}

// Search godoc
// @Summary Search for a member by number and ID
// @Tags public
// @Accept json
// @Produce json
// @Param request body SearchRequest true "Search keys"
// @Success 200 {object} SearchResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /search [post]
func (h *PublicHandler) Search(c echo.Context) error {
	var req SearchRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client := service.SearchClient{
		IP:        c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	}

	member, found, err := h.publicService.Search(c.Request().Context(), req.MemberNumber, req.IDNumber, client)
	if err != nil {
		return serviceError(err)
	}

	resp := SearchResponse{Found: found, Member: member}
	if !found {
		resp.Message = "No member found with the provided details"
	}
	return c.JSON(http.StatusOK, resp)
}

// VerifyDetails godoc
// @Summary Confirm stored member details are correct
// @Tags public
// @Accept json
// @Produce json
// @Param request body VerifyDetailsRequest true "Member identity"
// @Success 201 {object} model.Verification
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /verify-details [post]
func (h *PublicHandler) VerifyDetails(c echo.Context) error {
	var req VerifyDetailsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	verification, err := h.publicService.VerifyDetails(c.Request().Context(), req.MemberID, req.MemberNumber)
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, verification)
}

// SubmitCorrection godoc
// @Summary Submit a correction request for a member record
// @Tags public
// @Accept json
// @Produce json
// @Param request body SubmitCorrectionRequest true "Correction details"
// @Success 201 {object} model.CorrectionRequest
// @Failure 400 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /submit-correction [post]
func (h *PublicHandler) SubmitCorrection(c echo.Context) error {
	var req SubmitCorrectionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	correction, err := h.publicService.SubmitCorrection(c.Request().Context(), service.CorrectionSubmission{
		MemberID:        req.MemberID,
		MemberNumber:    req.MemberNumber,
		CorrectName:     req.CorrectName,
		CorrectZone:     req.CorrectZone,
		Email:           req.Email,
		Phone:           req.Phone,
		AdditionalNotes: req.AdditionalNotes,
	})
	if err != nil {
		return serviceError(err)
	}
	return c.JSON(http.StatusCreated, correction)
}
