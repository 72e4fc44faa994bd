package organization

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/officepoint"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/organization"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/token"
	"github.com/ba-mirza/qr-attend-backend/internal/repository/postgresql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type OrganizationServiceImpl struct {
	db *database.DB
	organization.OrganizationRepository
	officepoint.OfficePointRepository
}

func NewOrganizationService(db *database.DB, organizationRepository organization.OrganizationRepository, officePointRepository officepoint.OfficePointRepository) organization.OrganizationService {
	return &OrganizationServiceImpl{
		db:                     db,
		OrganizationRepository: organizationRepository,
		OfficePointRepository:  officePointRepository,
	}
}

// GetOwn implements organization.OrganizationService.
func (o *OrganizationServiceImpl) GetOwn(ctx context.Context, userID string) (organization.OrganizationResponse, error) {
	org, err := o.OrganizationRepository.GetByUserID(ctx, userID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.OrganizationResponse{}, organization.ErrOrganizationNotFound
		}
		return organization.OrganizationResponse{}, fmt.Errorf("failed to get organization by user id: %w", err)
	}

	return organization.ToResponse(org), nil
}

// Create implements organization.OrganizationService. The organization and
// its main office point are inserted in one transaction, so a failed office
// insert leaves no orphan organization behind.
func (o *OrganizationServiceImpl) Create(ctx context.Context, userID string, req organization.CreateOrganizationRequest) (organization.OrganizationResponse, error) {
	if err := req.Validate(); err != nil {
		return organization.OrganizationResponse{}, err
	}

	// Pre-check for a friendlier error; the unique index on user_id is
	// still the authority under concurrency.
	exists, err := o.OrganizationRepository.ExistsByUserID(ctx, userID)
	if err != nil {
		return organization.OrganizationResponse{}, fmt.Errorf("failed to check existing organization: %w", err)
	}
	if exists {
		return organization.OrganizationResponse{}, organization.ErrOrganizationExists
	}

	var created organization.Organization
	address := strings.TrimSpace(req.Address)

	insert := func(slug string) error {
		return postgresql.WithTransaction(ctx, o.db, func(tx pgx.Tx) error {
			txCtx := context.WithValue(ctx, "tx", tx)

			created, err = o.OrganizationRepository.Create(txCtx, organization.Organization{
				UserID:   userID,
				Name:     strings.TrimSpace(req.Name),
				BIN:      req.BIN,
				Address:  address,
				Slug:     slug,
				Settings: organization.DefaultSettings(),
			})
			if err != nil {
				return err
			}

			// The main office inherits the address supplied at registration.
			_, err = o.OfficePointRepository.Create(txCtx, officepoint.OfficePoint{
				OrganizationID: created.ID,
				Name:           officepoint.MainOfficeName,
				Address:        &address,
				QRToken:        token.Generate(),
				IsMain:         true,
				IsActive:       true,
			})
			if err != nil {
				return fmt.Errorf("failed to create main office point: %w", err)
			}
			return nil
		})
	}

	err = insert(token.Slugify(req.Name))
	if isUniqueViolation(err, "slug") {
		// The random suffix makes collisions rare; retry once with a
		// fresh suffix before giving up.
		err = insert(token.Slugify(req.Name))
		if isUniqueViolation(err, "slug") {
			return organization.OrganizationResponse{}, organization.ErrSlugExists
		}
	}
	if err != nil {
		switch {
		case isUniqueViolation(err, "bin"):
			return organization.OrganizationResponse{}, organization.ErrBINExists
		case isUniqueViolation(err, "user_id"):
			return organization.OrganizationResponse{}, organization.ErrOrganizationExists
		}
		return organization.OrganizationResponse{}, fmt.Errorf("failed to create organization: %w", err)
	}

	return organization.ToResponse(created), nil
}

// GetBySlug implements organization.OrganizationService. The slug is not a
// secret, so the owner check keeps other accounts' organizations invisible.
func (o *OrganizationServiceImpl) GetBySlug(ctx context.Context, userID, slug string) (organization.OrganizationDetailResponse, error) {
	org, err := o.OrganizationRepository.GetBySlug(ctx, slug)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.OrganizationDetailResponse{}, organization.ErrOrganizationNotFound
		}
		return organization.OrganizationDetailResponse{}, fmt.Errorf("failed to get organization by slug: %w", err)
	}

	if !org.IsOwnedBy(userID) {
		return organization.OrganizationDetailResponse{}, organization.ErrOrganizationNotFound
	}

	points, err := o.OfficePointRepository.ListByOrganizationID(ctx, org.ID)
	if err != nil {
		return organization.OrganizationDetailResponse{}, fmt.Errorf("failed to list office points: %w", err)
	}

	return organization.OrganizationDetailResponse{
		OrganizationResponse: organization.ToResponse(org),
		OfficePoints:         officepoint.ToResponses(points),
	}, nil
}

// UpdateSettings implements organization.OrganizationService.
func (o *OrganizationServiceImpl) UpdateSettings(ctx context.Context, userID, organizationID string, req organization.UpdateSettingsRequest) (organization.Settings, error) {
	if err := req.Validate(); err != nil {
		return organization.Settings{}, err
	}

	org, err := o.OrganizationRepository.GetByID(ctx, organizationID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return organization.Settings{}, organization.ErrOrganizationNotFound
		}
		return organization.Settings{}, fmt.Errorf("failed to get organization: %w", err)
	}
	if !org.IsOwnedBy(userID) {
		return organization.Settings{}, organization.ErrNotOwner
	}

	settings := req.Apply(org.Settings)
	if err := o.OrganizationRepository.UpdateSettings(ctx, org.ID, settings); err != nil {
		return organization.Settings{}, fmt.Errorf("failed to update settings: %w", err)
	}

	return settings, nil
}

// isUniqueViolation reports whether err is a Postgres unique violation on a
// constraint whose name contains the given column.
func isUniqueViolation(err error, column string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return strings.Contains(pgErr.ConstraintName, column)
	}
	return false
}
