package postgresql

import (
	"context"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/organization"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
)

type organizationRepositoryImpl struct {
	db *database.DB
}

func NewOrganizationRepository(db *database.DB) organization.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

// GetByID implements organization.OrganizationRepository.
func (o *organizationRepositoryImpl) GetByID(ctx context.Context, id string) (organization.Organization, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, user_id, name, bin, address, slug, settings, created_at, updated_at
		FROM organizations
		WHERE id = $1
	`

	var found organization.Organization
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.UserID, &found.Name, &found.BIN, &found.Address, &found.Slug, &found.Settings, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return organization.Organization{}, err
	}

	return found, nil
}

// GetByUserID implements organization.OrganizationRepository.
func (o *organizationRepositoryImpl) GetByUserID(ctx context.Context, userID string) (organization.Organization, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, user_id, name, bin, address, slug, settings, created_at, updated_at
		FROM organizations
		WHERE user_id = $1
	`

	var found organization.Organization
	err := q.QueryRow(ctx, query, userID).
		Scan(&found.ID, &found.UserID, &found.Name, &found.BIN, &found.Address, &found.Slug, &found.Settings, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return organization.Organization{}, err
	}

	return found, nil
}

// GetBySlug implements organization.OrganizationRepository.
func (o *organizationRepositoryImpl) GetBySlug(ctx context.Context, slug string) (organization.Organization, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, user_id, name, bin, address, slug, settings, created_at, updated_at
		FROM organizations
		WHERE slug = $1
	`

	var found organization.Organization
	err := q.QueryRow(ctx, query, slug).
		Scan(&found.ID, &found.UserID, &found.Name, &found.BIN, &found.Address, &found.Slug, &found.Settings, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return organization.Organization{}, err
	}

	return found, nil
}

// Create implements organization.OrganizationRepository.
func (o *organizationRepositoryImpl) Create(ctx context.Context, newOrganization organization.Organization) (organization.Organization, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		INSERT INTO organizations (user_id, name, bin, address, slug, settings)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, user_id, name, bin, address, slug, settings, created_at, updated_at
	`

	var created organization.Organization
	err := q.QueryRow(ctx, query,
		newOrganization.UserID, newOrganization.Name, newOrganization.BIN,
		newOrganization.Address, newOrganization.Slug, newOrganization.Settings,
	).Scan(&created.ID, &created.UserID, &created.Name, &created.BIN, &created.Address, &created.Slug, &created.Settings, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return organization.Organization{}, err
	}
	return created, nil
}

// ExistsByUserID implements organization.OrganizationRepository.
func (o *organizationRepositoryImpl) ExistsByUserID(ctx context.Context, userID string) (bool, error) {
	q := GetQuerier(ctx, o.db)

	var exists bool
	err := q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM organizations WHERE user_id = $1)`, userID).Scan(&exists)
	if err != nil {
		return false, err
	}

	return exists, nil
}

// UpdateSettings implements organization.OrganizationRepository.
func (o *organizationRepositoryImpl) UpdateSettings(ctx context.Context, id string, settings organization.Settings) error {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE organizations
		SET settings = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, settings, id).Scan(&updatedID); err != nil {
		return err
	}
	return nil
}
