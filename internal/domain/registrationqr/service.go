package registrationqr

import "context"

type RegistrationQRService interface {
	Issue(ctx context.Context, userID, organizationID string, req IssueRegistrationQRRequest) (IssueRegistrationQRResponse, error)
	List(ctx context.Context, userID, organizationID string) ([]RegistrationQRResponse, error)
	Deactivate(ctx context.Context, userID, qrID string) error
}
