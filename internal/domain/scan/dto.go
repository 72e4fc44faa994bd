package scan

import (
	"github.com/ba-mirza/qr-attend-backend/internal/domain/checklog"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/employee"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/geo"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/validator"
)

type CheckRequest struct {
	Token       string             `json:"token"`
	EmployeeID  string             `json:"employee_id"`
	CheckType   checklog.CheckType `json:"check_type"`
	GeoLocation *geo.Point         `json:"geo_location,omitempty"`
	DeviceInfo  *string            `json:"device_info,omitempty"`
}

func (r *CheckRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	}
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if !r.CheckType.IsValid() {
		errs = append(errs, validator.ValidationError{
			Field:   "check_type",
			Message: "check_type must be either check_in or check_out",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type RegisterRequest struct {
	Token    string  `json:"token"`
	FullName string  `json:"full_name"`
	Position *string `json:"position,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Email    *string `json:"email,omitempty"`
}

func (r *RegisterRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Token) {
		errs = append(errs, validator.ValidationError{
			Field:   "token",
			Message: "token is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name is required",
		})
	} else if len([]rune(r.FullName)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must be at least 2 characters long",
		})
	} else if len([]rune(r.FullName)) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name must not exceed 100 characters",
		})
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

type CheckResponse struct {
	Log checklog.CheckLogResponse `json:"log"`
}

type RegisterResponse struct {
	Employee     employee.EmployeeResponse `json:"employee"`
	Organization string                    `json:"organization"`
}
