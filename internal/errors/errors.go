package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrMemberNotFound is returned when a member is not found.
	ErrMemberNotFound = errors.New("member not found")
	// ErrMemberExists is returned when a member number is already registered.
	ErrMemberExists = errors.New("member number already exists")
	// ErrContactRequired is returned when a correction request carries neither email nor phone.
	ErrContactRequired = errors.New("at least one contact method (email or phone) is required")
	// ErrCorrectionNotFound is returned when a correction request is not found.
	ErrCorrectionNotFound = errors.New("correction request not found")
	// ErrCorrectionResolved is returned when resolving an already-resolved correction request.
	ErrCorrectionResolved = errors.New("correction request already resolved")
	// ErrInvalidStatus is returned when a member status is not one of the recognized values.
	ErrInvalidStatus = errors.New("invalid member status")
	// ErrUserNotFound is returned when an admin user is not found.
	ErrUserNotFound = errors.New("user not found")
	// ErrUnknownRole is returned when a role is not one of the recognized values.
	ErrUnknownRole = errors.New("unknown role")
	// ErrSheetMissingColumns is returned when an uploaded sheet lacks required header columns.
	ErrSheetMissingColumns = errors.New("spreadsheet is missing required columns")
	// ErrSheetNoData is returned when an uploaded sheet has no data rows.
	ErrSheetNoData = errors.New("spreadsheet has no data rows")
	// ErrSheetTooLarge is returned when an uploaded sheet exceeds the row cap.
	ErrSheetTooLarge = errors.New("spreadsheet exceeds the maximum number of rows")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// HTTPError represents an HTTP error with status code.
type HTTPError struct {
	StatusCode int
	Message    string
	Code       string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTP error.
func NewHTTPError(statusCode int, message, code string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Message:    message,
		Code:       code,
	}
}

// ToErrorResponse converts an HTTPError to ErrorResponse.
func (e *HTTPError) ToErrorResponse() ErrorResponse {
	return ErrorResponse{
		Error: e.Message,
		Code:  e.Code,
	}
}

// MapErrorToHTTP maps domain errors to HTTP errors.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrMemberNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "MEMBER_NOT_FOUND")
	case errors.Is(err, ErrMemberExists):
		return NewHTTPError(http.StatusConflict, err.Error(), "MEMBER_EXISTS")
	case errors.Is(err, ErrContactRequired):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "CONTACT_REQUIRED")
	case errors.Is(err, ErrCorrectionNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "CORRECTION_NOT_FOUND")
	case errors.Is(err, ErrCorrectionResolved):
		return NewHTTPError(http.StatusConflict, err.Error(), "CORRECTION_RESOLVED")
	case errors.Is(err, ErrInvalidStatus):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "INVALID_STATUS")
	case errors.Is(err, ErrUserNotFound):
		return NewHTTPError(http.StatusNotFound, err.Error(), "USER_NOT_FOUND")
	case errors.Is(err, ErrUnknownRole):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "UNKNOWN_ROLE")
	case errors.Is(err, ErrSheetMissingColumns):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SHEET_MISSING_COLUMNS")
	case errors.Is(err, ErrSheetNoData):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SHEET_NO_DATA")
	case errors.Is(err, ErrSheetTooLarge):
		return NewHTTPError(http.StatusBadRequest, err.Error(), "SHEET_TOO_LARGE")
	default:
		return NewHTTPError(http.StatusInternalServerError, "internal server error", "INTERNAL_ERROR")
	}
}
