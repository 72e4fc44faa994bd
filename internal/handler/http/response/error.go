package response

import (
	"errors"
	"net/http"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/auth"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/checklog"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/employee"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/officepoint"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/organization"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/registrationqr"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/scan"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/user"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Organization domain errors
	case errors.Is(err, organization.ErrOrganizationNotFound):
		NotFound(w, "Organization not found")
	case errors.Is(err, organization.ErrOrganizationExists):
		Conflict(w, "Account already owns an organization")
	case errors.Is(err, organization.ErrBINExists):
		Conflict(w, "Organization with this BIN already exists")
	case errors.Is(err, organization.ErrSlugExists):
		Conflict(w, "Organization slug already exists")
	case errors.Is(err, organization.ErrNotOwner),
		errors.Is(err, officepoint.ErrNotOwner),
		errors.Is(err, registrationqr.ErrNotOwner),
		errors.Is(err, employee.ErrNotOwner),
		errors.Is(err, checklog.ErrNotOwner):
		Forbidden(w, "Resource does not belong to this account")

	// Office point domain errors
	case errors.Is(err, officepoint.ErrOfficePointNotFound):
		NotFound(w, "Office point not found")
	case errors.Is(err, officepoint.ErrCannotDeleteMain):
		Conflict(w, "Main office point cannot be deleted")

	// Registration QR domain errors
	case errors.Is(err, registrationqr.ErrRegistrationQRNotFound):
		NotFound(w, "Registration QR not found")
	case errors.Is(err, registrationqr.ErrRegistrationQRExpired):
		BadRequest(w, "Registration QR is expired or deactivated", nil)

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeNotActive):
		Forbidden(w, "Employee is not active")
	case errors.Is(err, employee.ErrInvalidStatus):
		BadRequest(w, "Invalid employee status", nil)
	case errors.Is(err, employee.ErrInvalidStatusChange):
		Conflict(w, "Employee status change is not allowed")

	// Check log domain errors
	case errors.Is(err, checklog.ErrCheckLogNotFound):
		NotFound(w, "Check log not found")
	case errors.Is(err, checklog.ErrInvalidCheckType):
		BadRequest(w, "Invalid check type", nil)

	// Scan domain errors
	case errors.Is(err, scan.ErrInvalidQRToken):
		NotFound(w, "QR token is invalid or inactive")
	case errors.Is(err, scan.ErrGeolocationRequired):
		BadRequest(w, "Geolocation is required by organization settings", nil)
	case errors.Is(err, scan.ErrOutsideGeofence):
		Forbidden(w, "Location is outside the allowed radius")
	case errors.Is(err, scan.ErrEmployeeOrganization):
		Forbidden(w, "Employee does not belong to this organization")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
