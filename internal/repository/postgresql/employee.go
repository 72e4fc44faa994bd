package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/employee"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, organization_id, user_id, full_name, position, phone, email, status, created_at, updated_at
		FROM employees
		WHERE id = $1
	`

	var found employee.Employee
	err := q.QueryRow(ctx, query, id).
		Scan(&found.ID, &found.OrganizationID, &found.UserID, &found.FullName, &found.Position, &found.Phone, &found.Email, &found.Status, &found.CreatedAt, &found.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}

	return found, nil
}

// ListByOrganizationID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListByOrganizationID(ctx context.Context, organizationID string, status *employee.Status) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT id, organization_id, user_id, full_name, position, phone, email, status, created_at, updated_at
		FROM employees
		WHERE organization_id = $1
	`
	args := []interface{}{organizationID}

	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		err := rows.Scan(&emp.ID, &emp.OrganizationID, &emp.UserID, &emp.FullName, &emp.Position, &emp.Phone, &emp.Email, &emp.Status, &emp.CreatedAt, &emp.UpdatedAt)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		INSERT INTO employees (organization_id, user_id, full_name, position, phone, email, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, organization_id, user_id, full_name, position, phone, email, status, created_at, updated_at
	`

	var created employee.Employee
	err := q.QueryRow(ctx, query,
		newEmployee.OrganizationID, newEmployee.UserID, newEmployee.FullName, newEmployee.Position,
		newEmployee.Phone, newEmployee.Email, newEmployee.Status,
	).Scan(&created.ID, &created.OrganizationID, &created.UserID, &created.FullName, &created.Position, &created.Phone, &created.Email, &created.Status, &created.CreatedAt, &created.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}
	return created, nil
}

// Update implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Update(ctx context.Context, id string, req employee.UpdateEmployeeRequest) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	updates := make(map[string]interface{})

	if req.FullName != nil {
		updates["full_name"] = *req.FullName
	}
	if req.Position != nil {
		updates["position"] = *req.Position
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}

	if len(updates) == 0 {
		return employee.Employee{}, fmt.Errorf("no updatable fields provided for employee update")
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := "UPDATE employees SET " + strings.Join(setClauses, ", ") + fmt.Sprintf(" WHERE id = $%d", i)
	args = append(args, id)
	sql += ` RETURNING id, organization_id, user_id, full_name, position, phone, email, status, created_at, updated_at`

	var updated employee.Employee
	err := q.QueryRow(ctx, sql, args...).
		Scan(&updated.ID, &updated.OrganizationID, &updated.UserID, &updated.FullName, &updated.Position, &updated.Phone, &updated.Email, &updated.Status, &updated.CreatedAt, &updated.UpdatedAt)
	if err != nil {
		return employee.Employee{}, err
	}
	return updated, nil
}

// UpdateStatus implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) UpdateStatus(ctx context.Context, id string, status employee.Status) error {
	q := GetQuerier(ctx, e.db)

	query := `
		UPDATE employees
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, status, id).Scan(&updatedID); err != nil {
		return err
	}
	return nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, e.db)

	var deletedID string
	err := q.QueryRow(ctx, `DELETE FROM employees WHERE id = $1 RETURNING id`, id).Scan(&deletedID)
	if err != nil {
		return err
	}
	return nil
}

// CountByOrganizationID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CountByOrganizationID(ctx context.Context, organizationID string) (employee.EmployeeCountResponse, error) {
	q := GetQuerier(ctx, e.db)

	query := `
		SELECT
			COUNT(*) AS total,
			COALESCE(SUM(CASE WHEN status = 'pending' THEN 1 ELSE 0 END), 0) AS pending,
			COALESCE(SUM(CASE WHEN status = 'active' THEN 1 ELSE 0 END), 0) AS active
		FROM employees
		WHERE organization_id = $1
	`

	var counts employee.EmployeeCountResponse
	err := q.QueryRow(ctx, query, organizationID).Scan(&counts.Total, &counts.Pending, &counts.Active)
	if err != nil {
		return employee.EmployeeCountResponse{}, err
	}

	return counts, nil
}
