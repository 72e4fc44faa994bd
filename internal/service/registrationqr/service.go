package registrationqr

import (
	"context"
	"fmt"
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/organization"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/registrationqr"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/qr"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/token"
	"github.com/jackc/pgx/v5"
)

type RegistrationQRServiceImpl struct {
	registrationqr.RegistrationQRRepository
	organization.OrganizationRepository
}

func NewRegistrationQRService(registrationQRRepository registrationqr.RegistrationQRRepository, organizationRepository organization.OrganizationRepository) registrationqr.RegistrationQRService {
	return &RegistrationQRServiceImpl{
		RegistrationQRRepository: registrationQRRepository,
		OrganizationRepository:   organizationRepository,
	}
}

func (r *RegistrationQRServiceImpl) guardOrganization(ctx context.Context, userID, organizationID string) (organization.Organization, error) {
	org, err := r.OrganizationRepository.GetByID(ctx, organizationID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Organization{}, organization.ErrOrganizationNotFound
		}
		return organization.Organization{}, fmt.Errorf("failed to get organization: %w", err)
	}
	if !org.IsOwnedBy(userID) {
		return organization.Organization{}, registrationqr.ErrNotOwner
	}
	return org, nil
}

// Issue implements registrationqr.RegistrationQRService.
func (r *RegistrationQRServiceImpl) Issue(ctx context.Context, userID, organizationID string, req registrationqr.IssueRegistrationQRRequest) (registrationqr.IssueRegistrationQRResponse, error) {
	if err := req.Validate(); err != nil {
		return registrationqr.IssueRegistrationQRResponse{}, err
	}

	org, err := r.guardOrganization(ctx, userID, organizationID)
	if err != nil {
		return registrationqr.IssueRegistrationQRResponse{}, err
	}

	created, err := r.RegistrationQRRepository.Create(ctx, registrationqr.RegistrationQR{
		OrganizationID: org.ID,
		Token:          token.Generate(),
		ExpiresAt:      time.Now().UTC().Add(time.Duration(req.TTLHours) * time.Hour),
		IsActive:       true,
	})
	if err != nil {
		return registrationqr.IssueRegistrationQRResponse{}, fmt.Errorf("failed to create registration qr: %w", err)
	}

	payload := qr.NewEmployeeRegistrationPayload(created.Token, org.Name, created.ExpiresAt)
	encoded, err := payload.Encode()
	if err != nil {
		return registrationqr.IssueRegistrationQRResponse{}, fmt.Errorf("failed to encode qr payload: %w", err)
	}

	return registrationqr.IssueRegistrationQRResponse{
		RegistrationQRResponse: registrationqr.ToResponse(created),
		Payload:                encoded,
	}, nil
}

// List implements registrationqr.RegistrationQRService.
func (r *RegistrationQRServiceImpl) List(ctx context.Context, userID, organizationID string) ([]registrationqr.RegistrationQRResponse, error) {
	if _, err := r.guardOrganization(ctx, userID, organizationID); err != nil {
		return nil, err
	}

	qrs, err := r.RegistrationQRRepository.ListByOrganizationID(ctx, organizationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list registration qrs: %w", err)
	}

	return registrationqr.ToResponses(qrs), nil
}

// Deactivate implements registrationqr.RegistrationQRService. Deactivating
// an already inactive QR is a no-op, not an error.
func (r *RegistrationQRServiceImpl) Deactivate(ctx context.Context, userID, qrID string) error {
	found, err := r.RegistrationQRRepository.GetByID(ctx, qrID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return registrationqr.ErrRegistrationQRNotFound
		}
		return fmt.Errorf("failed to get registration qr: %w", err)
	}

	if _, err := r.guardOrganization(ctx, userID, found.OrganizationID); err != nil {
		return err
	}

	if !found.IsActive {
		return nil
	}

	if err := r.RegistrationQRRepository.Deactivate(ctx, found.ID); err != nil {
		return fmt.Errorf("failed to deactivate registration qr: %w", err)
	}
	return nil
}
