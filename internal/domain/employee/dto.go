package employee

import (
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/pkg/validator"
)

type EmployeeResponse struct {
	ID             string    `json:"id"`
	OrganizationID string    `json:"organization_id"`
	UserID         *string   `json:"user_id,omitempty"`
	FullName       string    `json:"full_name"`
	Position       *string   `json:"position,omitempty"`
	Phone          *string   `json:"phone,omitempty"`
	Email          *string   `json:"email,omitempty"`
	Status         Status    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		UserID:         e.UserID,
		FullName:       e.FullName,
		Position:       e.Position,
		Phone:          e.Phone,
		Email:          e.Email,
		Status:         e.Status,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
}

func ToResponses(employees []Employee) []EmployeeResponse {
	responses := make([]EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		responses = append(responses, ToResponse(e))
	}
	return responses
}

type UpdateEmployeeRequest struct {
	FullName *string `json:"full_name,omitempty"`
	Position *string `json:"position,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
}

func (r *UpdateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName != nil {
		if validator.IsEmpty(*r.FullName) {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name cannot be empty",
			})
		} else if len([]rune(*r.FullName)) < 2 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must be at least 2 characters long",
			})
		} else if len([]rune(*r.FullName)) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not exceed 100 characters",
			})
		}
	}

	if r.Position != nil && len([]rune(*r.Position)) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "position",
			Message: "position must not exceed 100 characters",
		})
	}

	if r.Phone != nil && !validator.IsEmpty(*r.Phone) && !validator.IsValidPhoneNumber(*r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "phone must be a valid phone number",
		})
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email must be a valid email address",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SetEmployeeStatusRequest struct {
	Status Status `json:"status"`
}

func (r *SetEmployeeStatusRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Status != StatusActive && r.Status != StatusInactive {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be either active or inactive",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type EmployeeCountResponse struct {
	Total   int `json:"total"`
	Pending int `json:"pending"`
	Active  int `json:"active"`
}
