package postgresql

import (
	"context"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/registrationqr"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
)

type registrationQRRepositoryImpl struct {
	db *database.DB
}

func NewRegistrationQRRepository(db *database.DB) registrationqr.RegistrationQRRepository {
	return &registrationQRRepositoryImpl{db: db}
}

// GetByID implements registrationqr.RegistrationQRRepository.
func (r *registrationQRRepositoryImpl) GetByID(ctx context.Context, id string) (registrationqr.RegistrationQR, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, token, expires_at, is_active, created_at
		FROM registration_qrs
		WHERE id = $1
	`

	var found registrationqr.RegistrationQR
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.OrganizationID, &found.Token, &found.ExpiresAt, &found.IsActive, &found.CreatedAt)
	if err != nil {
		return registrationqr.RegistrationQR{}, err
	}

	return found, nil
}

// GetByToken implements registrationqr.RegistrationQRRepository.
func (r *registrationQRRepositoryImpl) GetByToken(ctx context.Context, token string) (registrationqr.RegistrationQR, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, token, expires_at, is_active, created_at
		FROM registration_qrs
		WHERE token = $1
	`

	var found registrationqr.RegistrationQR
	err := q.QueryRow(ctx, query, token).
		Scan(&found.ID, &found.OrganizationID, &found.Token, &found.ExpiresAt, &found.IsActive, &found.CreatedAt)
	if err != nil {
		return registrationqr.RegistrationQR{}, err
	}

	return found, nil
}

// ListByOrganizationID implements registrationqr.RegistrationQRRepository.
func (r *registrationQRRepositoryImpl) ListByOrganizationID(ctx context.Context, organizationID string) ([]registrationqr.RegistrationQR, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, organization_id, token, expires_at, is_active, created_at
		FROM registration_qrs
		WHERE organization_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var qrs []registrationqr.RegistrationQR
	for rows.Next() {
		var qr registrationqr.RegistrationQR
		err := rows.Scan(&qr.ID, &qr.OrganizationID, &qr.Token, &qr.ExpiresAt, &qr.IsActive, &qr.CreatedAt)
		if err != nil {
			return nil, err
		}
		qrs = append(qrs, qr)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return qrs, nil
}

// Create implements registrationqr.RegistrationQRRepository.
func (r *registrationQRRepositoryImpl) Create(ctx context.Context, newQR registrationqr.RegistrationQR) (registrationqr.RegistrationQR, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO registration_qrs (organization_id, token, expires_at, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, organization_id, token, expires_at, is_active, created_at
	`

	var created registrationqr.RegistrationQR
	err := q.QueryRow(ctx, query, newQR.OrganizationID, newQR.Token, newQR.ExpiresAt, newQR.IsActive).
		Scan(&created.ID, &created.OrganizationID, &created.Token, &created.ExpiresAt, &created.IsActive, &created.CreatedAt)
	if err != nil {
		return registrationqr.RegistrationQR{}, err
	}
	return created, nil
}

// Deactivate implements registrationqr.RegistrationQRRepository.
// The flip is one way; rows are never deleted.
func (r *registrationQRRepositoryImpl) Deactivate(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE registration_qrs
		SET is_active = FALSE
		WHERE id = $1
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, id).Scan(&updatedID); err != nil {
		return err
	}
	return nil
}
