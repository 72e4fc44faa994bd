package officepoint

import (
	"context"
	"fmt"
	"strings"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/officepoint"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/organization"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/qr"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/token"
	"github.com/jackc/pgx/v5"
)

type OfficePointServiceImpl struct {
	officepoint.OfficePointRepository
	organization.OrganizationRepository
}

func NewOfficePointService(officePointRepository officepoint.OfficePointRepository, organizationRepository organization.OrganizationRepository) officepoint.OfficePointService {
	return &OfficePointServiceImpl{
		OfficePointRepository:  officePointRepository,
		OrganizationRepository: organizationRepository,
	}
}

// guardOrganization loads the organization and verifies ownership.
func (o *OfficePointServiceImpl) guardOrganization(ctx context.Context, userID, organizationID string) (organization.Organization, error) {
	org, err := o.OrganizationRepository.GetByID(ctx, organizationID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}
	if !org.IsOwnedBy(userID) {
		return organization.Organization{}, officepoint.ErrNotOwner
	}
	return org, nil
}

// guardPoint loads an office point and verifies the caller owns its organization.
func (o *OfficePointServiceImpl) guardPoint(ctx context.Context, userID, pointID string) (officepoint.OfficePoint, organization.Organization, error) {
	point, err := o.OfficePointRepository.GetByID(ctx, pointID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return officepoint.OfficePoint{}, organization.Organization{}, officepoint.ErrOfficePointNotFound
		}
		return officepoint.OfficePoint{}, organization.Organization{}, fmt.Errorf("failed to get office point: %w", err)
	}

	org, err := o.guardOrganization(ctx, userID, point.OrganizationID)
	if err != nil {
		return officepoint.OfficePoint{}, organization.Organization{}, err
	}
	return point, org, nil
}

// List implements officepoint.OfficePointService.
func (o *OfficePointServiceImpl) List(ctx context.Context, userID, organizationID string) ([]officepoint.OfficePointResponse, error) {
	if _, err := o.guardOrganization(ctx, userID, organizationID); err != nil {
		return nil, err
	}

	points, err := o.OfficePointRepository.ListByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list office points: %w", err)
	}

	return officepoint.ToResponses(points), nil
}

// Create implements officepoint.OfficePointService.
func (o *OfficePointServiceImpl) Create(ctx context.Context, userID, organizationID string, req officepoint.CreateOfficePointRequest) (officepoint.OfficePointResponse, error) {
	if err := req.Validate(); err != nil {
		return officepoint.OfficePointResponse{}, err
	}

	if _, err := o.guardOrganization(ctx, userID, organizationID); err != nil {
		return officepoint.OfficePointResponse{}, err
	}

	created, err := o.OfficePointRepository.Create(ctx, officepoint.OfficePoint{
		OrganizationID: organizationID,
		Name:           strings.TrimSpace(req.Name),
		Address:        req.Address,
		QRToken:        token.Generate(),
		IsMain:         false,
		IsActive:       true,
		Location:       req.Location,
	})
	if err != nil {
		return officepoint.OfficePointResponse{}, fmt.Errorf("failed to create office point: %w", err)
	}

	return officepoint.ToResponse(created), nil
}

// Delete implements officepoint.OfficePointService. The main office point
// lives and dies with its organization and cannot be deleted on its own.
func (o *OfficePointServiceImpl) Delete(ctx context.Context, userID, pointID string) error {
	point, _, err := o.guardPoint(ctx, userID, pointID)
	if err != nil {
		return err
	}
	if point.IsMain {
		return officepoint.ErrCannotDeleteMain
	}

	if err := o.OfficePointRepository.Delete(ctx, point.ID); err != nil {
		if err == pgx.ErrNoRows {
			return officepoint.ErrOfficePointNotFound
		}
		return fmt.Errorf("failed to delete office point: %w", err)
	}
	return nil
}

// RegenerateToken implements officepoint.OfficePointService. The old token
// stops resolving immediately; printed QR codes must be reissued.
func (o *OfficePointServiceImpl) RegenerateToken(ctx context.Context, userID, pointID string) (officepoint.OfficePointResponse, error) {
	point, _, err := o.guardPoint(ctx, userID, pointID)
	if err != nil {
		return officepoint.OfficePointResponse{}, err
	}

	updated, err := o.OfficePointRepository.UpdateQRToken(ctx, point.ID, token.Generate())
	if err != nil {
		return officepoint.OfficePointResponse{}, fmt.Errorf("failed to regenerate qr token: %w", err)
	}

	return officepoint.ToResponse(updated), nil
}

// QRPayload implements officepoint.OfficePointService.
func (o *OfficePointServiceImpl) QRPayload(ctx context.Context, userID, pointID string) (officepoint.QRPayloadResponse, error) {
	point, org, err := o.guardPoint(ctx, userID, pointID)
	if err != nil {
		return officepoint.QRPayloadResponse{}, err
	}

	payload := qr.NewOfficeCheckPayload(point.QRToken, point.Name, point.Address, org.Name)
	encoded, err := payload.Encode()
	if err != nil {
		return officepoint.QRPayloadResponse{}, fmt.Errorf("failed to encode qr payload: %w", err)
	}

	return officepoint.QRPayloadResponse{Payload: encoded}, nil
}
