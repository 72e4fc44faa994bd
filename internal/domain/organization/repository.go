package organization

import "context"

type OrganizationRepository interface {
	GetByID(ctx context.Context, id string) (Organization, error)
	GetByUserID(ctx context.Context, userID string) (Organization, error)
	GetBySlug(ctx context.Context, slug string) (Organization, error)
	Create(ctx context.Context, newOrganization Organization) (Organization, error)
	ExistsByUserID(ctx context.Context, userID string) (bool, error)
	UpdateSettings(ctx context.Context, id string, settings Settings) error
}
