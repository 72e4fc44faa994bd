package registrationqr

import "context"

type RegistrationQRRepository interface {
	GetByID(ctx context.Context, id string) (RegistrationQR, error)
	GetByToken(ctx context.Context, token string) (RegistrationQR, error)
	ListByOrganizationID(ctx context.Context, organizationID string) ([]RegistrationQR, error)
	Create(ctx context.Context, newQR RegistrationQR) (RegistrationQR, error)
	Deactivate(ctx context.Context, id string) error
}
