package postgresql

import (
	"context"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/officepoint"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
)

type officePointRepositoryImpl struct {
	db *database.DB
}

func NewOfficePointRepository(db *database.DB) officepoint.OfficePointRepository {
	return &officePointRepositoryImpl{db: db}
}

// GetByID implements officepoint.OfficePointRepository.
func (o *officePointRepositoryImpl) GetByID(ctx context.Context, id string) (officepoint.OfficePoint, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, organization_id, name, address, qr_token, is_main, is_active, location, created_at, updated_at
		FROM office_points
		WHERE id = $1
	`

	var found officepoint.OfficePoint
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.OrganizationID, &found.Name, &found.Address, &found.QRToken, &found.IsMain, &found.IsActive, &found.Location, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return officepoint.OfficePoint{}, err
	}

	return found, nil
}

// GetByQRToken implements officepoint.OfficePointRepository.
func (o *officePointRepositoryImpl) GetByQRToken(ctx context.Context, token string) (officepoint.OfficePoint, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, organization_id, name, address, qr_token, is_main, is_active, location, created_at, updated_at
		FROM office_points
		WHERE qr_token = $1
	`

	var found officepoint.OfficePoint
	err := q.QueryRow(ctx, query, token).
		Scan(&found.ID, &found.OrganizationID, &found.Name, &found.Address, &found.QRToken, &found.IsMain, &found.IsActive, &found.Location, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return officepoint.OfficePoint{}, err
	}

	return found, nil
}

// ListByOrganizationID implements officepoint.OfficePointRepository.
func (o *officePointRepositoryImpl) ListByOrganizationID(ctx context.Context, organizationID string) ([]officepoint.OfficePoint, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		SELECT id, organization_id, name, address, qr_token, is_main, is_active, location, created_at, updated_at
		FROM office_points
		WHERE organization_id = $1
		ORDER BY is_main DESC, created_at ASC
	`

	rows, err := q.Query(ctx, query, organizationID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var points []officepoint.OfficePoint
	for rows.Next() {
		var p officepoint.OfficePoint
		err := rows.Scan(&p.ID, &p.OrganizationID, &p.Name, &p.Address, &p.QRToken, &p.IsMain, &p.IsActive, &p.Location, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return points, nil
}

// Create implements officepoint.OfficePointRepository.
func (o *officePointRepositoryImpl) Create(ctx context.Context, newPoint officepoint.OfficePoint) (officepoint.OfficePoint, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		INSERT INTO office_points (organization_id, name, address, qr_token, is_main, is_active, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, organization_id, name, address, qr_token, is_main, is_active, location, created_at, updated_at
	`

	var created officepoint.OfficePoint
	err := q.QueryRow(ctx, query,
		newPoint.OrganizationID, newPoint.Name, newPoint.Address,
		newPoint.QRToken, newPoint.IsMain, newPoint.IsActive, newPoint.Location,
	).Scan(&created.ID, &created.OrganizationID, &created.Name, &created.Address, &created.QRToken, &created.IsMain, &created.IsActive, &created.Location, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return officepoint.OfficePoint{}, err
	}
	return created, nil
}

// UpdateQRToken implements officepoint.OfficePointRepository.
func (o *officePointRepositoryImpl) UpdateQRToken(ctx context.Context, id string, token string) (officepoint.OfficePoint, error) {
	q := GetQuerier(ctx, o.db)

	query := `
		UPDATE office_points
		SET qr_token = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, organization_id, name, address, qr_token, is_main, is_active, location, created_at, updated_at
	`

	var updated officepoint.OfficePoint
	err := q.QueryRow(ctx, query, token, id).
		Scan(&updated.ID, &updated.OrganizationID, &updated.Name, &updated.Address, &updated.QRToken, &updated.IsMain, &updated.IsActive, &updated.Location, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		return officepoint.OfficePoint{}, err
	}
	return updated, nil
}

// Delete implements officepoint.OfficePointRepository.
func (o *officePointRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, o.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM office_points WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		return err
	}
	return nil
}
