package organization

import (
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/pkg/validator"
)

type OrganizationResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	BIN       string    `json:"bin"`
	Address   string    `json:"address"`
	Slug      string    `json:"slug"`
	Settings  Settings  `json:"settings"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ToResponse(org Organization) OrganizationResponse {
	return OrganizationResponse{
		ID:        org.ID,
		Name:      org.Name,
		BIN:       org.BIN,
		Address:   org.Address,
		Slug:      org.Slug,
		Settings:  org.Settings,
		CreatedAt: org.CreatedAt,
		UpdatedAt: org.UpdatedAt,
	}
}

type CreateOrganizationRequest struct {
	Name    string `json:"name"`
	BIN     string `json:"bin"`
	Address string `json:"address"`
}

func (r *CreateOrganizationRequest) Validate() error {
	var errs validator.ValidationErrors

	// Name
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	} else if len([]rune(r.Name)) < 2 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must be at least 2 characters long",
		})
	} else if len([]rune(r.Name)) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	// BIN
	if validator.IsEmpty(r.BIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "bin",
			Message: "bin is required",
		})
	} else if !validator.IsValidBIN(r.BIN) {
		errs = append(errs, validator.ValidationError{
			Field:   "bin",
			Message: "bin must be exactly 12 digits",
		})
	}

	// Address
	if validator.IsEmpty(r.Address) {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address is required",
		})
	} else if len([]rune(r.Address)) < 5 {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address must be at least 5 characters long",
		})
	} else if len([]rune(r.Address)) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address must not exceed 200 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateSettingsRequest struct {
	GeolocationRequired *bool `json:"geolocation_required,omitempty"`
	GeolocationRadius   *int  `json:"geolocation_radius,omitempty"`
	AutoCloseDay        *bool `json:"auto_close_day,omitempty"`
}

func (r *UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.GeolocationRadius != nil {
		if *r.GeolocationRadius < 10 || *r.GeolocationRadius > 1000 {
			errs = append(errs, validator.ValidationError{
				Field:   "geolocation_radius",
				Message: "geolocation_radius must be between 10 and 1000 meters",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// Apply merges the request into existing settings, leaving absent fields untouched.
func (r *UpdateSettingsRequest) Apply(s Settings) Settings {
	if r.GeolocationRequired != nil {
		s.GeolocationRequired = *r.GeolocationRequired
	}
	if r.GeolocationRadius != nil {
		s.GeolocationRadius = *r.GeolocationRadius
	}
	if r.AutoCloseDay != nil {
		s.AutoCloseDay = *r.AutoCloseDay
	}
	return s
}
