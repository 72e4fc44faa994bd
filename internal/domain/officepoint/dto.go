package officepoint

import (
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/pkg/geo"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/validator"
)

type OfficePointResponse struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	Name           string     `json:"name"`
	Address        *string    `json:"address,omitempty"`
	QRToken        string     `json:"qr_token"`
	IsMain         bool       `json:"is_main"`
	IsActive       bool       `json:"is_active"`
	Location       *geo.Point `json:"location,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

func ToResponse(p OfficePoint) OfficePointResponse {
	return OfficePointResponse{
		ID:             p.ID,
		OrganizationID: p.OrganizationID,
		Name:           p.Name,
		Address:        p.Address,
		QRToken:        p.QRToken,
		IsMain:         p.IsMain,
		IsActive:       p.IsActive,
		Location:       p.Location,
		CreatedAt:      p.CreatedAt,
	}
}

func ToResponses(points []OfficePoint) []OfficePointResponse {
	responses := make([]OfficePointResponse, 0, len(points))
	for _, p := range points {
		responses = append(responses, ToResponse(p))
	}
	return responses
}

type CreateOfficePointRequest struct {
	Name     string     `json:"name"`
	Address  *string    `json:"address,omitempty"`
	Location *geo.Point `json:"location,omitempty"`
}

func (r *CreateOfficePointRequest) Validate() error {
	var errs validator.ValidationErrors

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

	if r.Address != nil && len([]rune(*r.Address)) > 200 {
		errs = append(errs, validator.ValidationError{
			Field:   "address",
			Message: "address must not exceed 200 characters",
		})
	}

	if r.Location != nil {
		if r.Location.Lat < -90 || r.Location.Lat > 90 {
			errs = append(errs, validator.ValidationError{
				Field:   "location.lat",
				Message: "lat must be between -90 and 90",
			})
		}
		if r.Location.Lng < -180 || r.Location.Lng > 180 {
			errs = append(errs, validator.ValidationError{
				Field:   "location.lng",
				Message: "lng must be between -180 and 180",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type QRPayloadResponse struct {
	Payload string `json:"payload"`
}
