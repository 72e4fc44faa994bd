package organization

import (
	"context"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/officepoint"
)

type OrganizationDetailResponse struct {
	OrganizationResponse
	OfficePoints []officepoint.OfficePointResponse `json:"office_points"`
}

type OrganizationService interface {
	GetOwn(ctx context.Context, userID string) (OrganizationResponse, error)
	Create(ctx context.Context, userID string, req CreateOrganizationRequest) (OrganizationResponse, error)
	GetBySlug(ctx context.Context, userID, slug string) (OrganizationDetailResponse, error)
	UpdateSettings(ctx context.Context, userID, organizationID string, req UpdateSettingsRequest) (Settings, error)
}
