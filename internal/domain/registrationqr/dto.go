package registrationqr

import (
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/pkg/validator"
)

type RegistrationQRResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	Token          string    `json:"token"`
	ExpiresAt      time.Time `json:"expires_at"`
	IsActive       bool      `json:"is_active"`
	IsValid        bool      `json:"is_valid"`
	CreatedAt      time.Time `json:"created_at"`
}

func ToResponse(qr RegistrationQR) RegistrationQRResponse {
	return RegistrationQRResponse{
		ID:             qr.ID,
		OrganizationID: qr.OrganizationID,
		Token:          qr.Token,
		ExpiresAt:      qr.ExpiresAt,
		IsActive:       qr.IsActive,
		IsValid:        qr.IsValid(),
		CreatedAt:      qr.CreatedAt,
	}
}

func ToResponses(qrs []RegistrationQR) []RegistrationQRResponse {
	responses := make([]RegistrationQRResponse, 0, len(qrs))
	for _, qr := range qrs {
		responses = append(responses, ToResponse(qr))
	}
	return responses
}

type IssueRegistrationQRRequest struct {
	TTLHours int `json:"ttl_hours"`
}

func (r *IssueRegistrationQRRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.TTLHours < 1 || r.TTLHours > 168 {
		errs = append(errs, validator.ValidationError{
			Field:   "ttl_hours",
			Message: "ttl_hours must be between 1 and 168",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type IssueRegistrationQRResponse struct {
	RegistrationQRResponse
	Payload string `json:"payload"`
}
