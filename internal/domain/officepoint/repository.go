package officepoint

import "context"

type OfficePointRepository interface {
	GetByID(ctx context.Context, id string) (OfficePoint, error)
	GetByQRToken(ctx context.Context, token string) (OfficePoint, error)
	ListByOrganizationID(ctx context.Context, organizationID string) ([]OfficePoint, error)
	Create(ctx context.Context, newPoint OfficePoint) (OfficePoint, error)
	UpdateQRToken(ctx context.Context, id string, token string) (OfficePoint, error)
	Delete(ctx context.Context, id string) error
}
