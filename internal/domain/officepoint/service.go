package officepoint

import "context"

type OfficePointService interface {
	List(ctx context.Context, userID, organizationID string) ([]OfficePointResponse, error)
	Create(ctx context.Context, userID, organizationID string, req CreateOfficePointRequest) (OfficePointResponse, error)
	Delete(ctx context.Context, userID, pointID string) error
	RegenerateToken(ctx context.Context, userID, pointID string) (OfficePointResponse, error)
	QRPayload(ctx context.Context, userID, pointID string) (QRPayloadResponse, error)
}
