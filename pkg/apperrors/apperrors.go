// Package apperrors defines sentinel errors shared across services,
// middlewares and handlers, plus the mapping to HTTP status codes.
// Handlers translate these into response bodies; anything not in this
// taxonomy is reported as a generic internal error so database or
// library error text never crosses the API boundary.
package apperrors

import (
	"errors"
	"net/http"
)

var (
	// Authentication
	ErrMissingToken       = errors.New("access token is required")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthenticated    = errors.New("user not authenticated")

	// Account state
	ErrUserNotFound       = errors.New("user not found")
	ErrAccountDeactivated = errors.New("account is deactivated")

	// Authorization
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrNotAuthorized           = errors.New("not authorized to act on this resource")
	ErrPasswordChangeRequired  = errors.New("password change required")

	// Request workflow
	ErrRequestNotFound    = errors.New("request not found")
	ErrManagerNotAssigned = errors.New("no manager assigned to this employee")
	ErrRequestFinalized   = errors.New("request has already been responded to")

	// Password rotation
	ErrOldPasswordIncorrect = errors.New("old password is incorrect")
	ErrPasswordUnchanged    = errors.New("new password must be different from the old password")

	// Records
	ErrInvalidRole             = errors.New("invalid role: must be employee, manager, admin, or super_admin")
	ErrInvalidDocumentCategory = errors.New("invalid document category")
	ErrEmailExists             = errors.New("email already exists")
	ErrDetailsExist            = errors.New("personal details already exist for this employee")
	ErrRecordMissing           = errors.New("record not found")

	ErrInternal = errors.New("internal server error")
)

// StatusCode maps a taxonomy error to the HTTP status handlers should return.
// Unknown errors map to 500.
func StatusCode(err error) int {
	switch {
	case errors.Is(err, ErrMissingToken),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrInvalidCredentials),
		errors.Is(err, ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, ErrAccountDeactivated),
		errors.Is(err, ErrInsufficientPermissions),
		errors.Is(err, ErrNotAuthorized),
		errors.Is(err, ErrPasswordChangeRequired):
		return http.StatusForbidden
	case errors.Is(err, ErrUserNotFound),
		errors.Is(err, ErrRequestNotFound),
		errors.Is(err, ErrRecordMissing):
		return http.StatusNotFound
	case errors.Is(err, ErrManagerNotAssigned),
		errors.Is(err, ErrEmailExists),
		errors.Is(err, ErrInvalidRole),
		errors.Is(err, ErrInvalidDocumentCategory),
		errors.Is(err, ErrOldPasswordIncorrect),
		errors.Is(err, ErrPasswordUnchanged):
		return http.StatusBadRequest
	case errors.Is(err, ErrRequestFinalized),
		errors.Is(err, ErrDetailsExist):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Message returns the client-facing message for an error. Errors outside the
// taxonomy collapse to the generic internal message.
func Message(err error) string {
	if StatusCode(err) == http.StatusInternalServerError {
		return ErrInternal.Error()
	}
	return err.Error()
}
