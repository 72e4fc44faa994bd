package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/checklog"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
)

type checkLogRepositoryImpl struct {
	db *database.DB
}

func NewCheckLogRepository(db *database.DB) checklog.CheckLogRepository {
	return &checkLogRepositoryImpl{db: db}
}

const checkLogColumns = `
	cl.id, cl.employee_id, e.full_name, cl.office_point_id, op.name,
	cl.check_type, cl.checked_at, cl.created_at, cl.geo_location, cl.device_info
`

// List implements checklog.CheckLogRepository. Tenant isolation happens in
// the employees join, so a log is only visible through its own organization.
func (c *checkLogRepositoryImpl) List(ctx context.Context, organizationID string, filter checklog.ListFilter) ([]checklog.CheckLog, int, error) {
	q := GetQuerier(ctx, c.db)

	conditions := []string{"e.organization_id = $1"}
	args := []interface{}{organizationID}
	argIdx := 2

	if filter.Date != nil {
		from, to, err := checklog.DateRange(*filter.Date)
		if err != nil {
			return nil, 0, fmt.Errorf("invalid date filter: %w", err)
		}
		conditions = append(conditions, fmt.Sprintf("cl.checked_at >= $%d AND cl.checked_at < $%d", argIdx, argIdx+1))
		args = append(args, from, to)
		argIdx += 2
	}
	if filter.EmployeeID != nil {
		conditions = append(conditions, fmt.Sprintf("cl.employee_id = $%d", argIdx))
		args = append(args, *filter.EmployeeID)
		argIdx++
	}
	if filter.OfficePointID != nil {
		conditions = append(conditions, fmt.Sprintf("cl.office_point_id = $%d", argIdx))
		args = append(args, *filter.OfficePointID)
		argIdx++
	}
	if filter.CheckType != nil {
		conditions = append(conditions, fmt.Sprintf("cl.check_type = $%d", argIdx))
		args = append(args, *filter.CheckType)
		argIdx++
	}

	whereClause := strings.Join(conditions, " AND ")

	countQuery := `
		SELECT COUNT(*)
		FROM check_logs cl
		JOIN employees e ON e.id = cl.employee_id
		WHERE ` + whereClause

	var total int
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listQuery := `
		SELECT ` + checkLogColumns + `
		FROM check_logs cl
		JOIN employees e ON e.id = cl.employee_id
		JOIN office_points op ON op.id = cl.office_point_id
		WHERE ` + whereClause + fmt.Sprintf(`
		ORDER BY cl.checked_at DESC
		LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, filter.Limit, filter.Offset)

	rows, err := q.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var logs []checklog.CheckLog
	for rows.Next() {
		var log checklog.CheckLog
		err := rows.Scan(
			&log.ID, &log.EmployeeID, &log.EmployeeName, &log.OfficePointID, &log.OfficePointName,
			&log.CheckType, &log.CheckedAt, &log.CreatedAt, &log.GeoLocation, &log.DeviceInfo,
		)
		if err != nil {
			return nil, 0, err
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

// Create implements checklog.CheckLogRepository. The returned row carries
// the joined employee and office point names for the SSE feed.
func (c *checkLogRepositoryImpl) Create(ctx context.Context, newLog checklog.CheckLog) (checklog.CheckLog, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		WITH inserted AS (
			INSERT INTO check_logs (employee_id, office_point_id, check_type, checked_at, geo_location, device_info)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id, employee_id, office_point_id, check_type, checked_at, created_at, geo_location, device_info
		)
		SELECT i.id, i.employee_id, e.full_name, i.office_point_id, op.name,
			i.check_type, i.checked_at, i.created_at, i.geo_location, i.device_info
		FROM inserted i
		JOIN employees e ON e.id = i.employee_id
		JOIN office_points op ON op.id = i.office_point_id
	`

	var created checklog.CheckLog
	err := q.QueryRow(ctx, query,
		newLog.EmployeeID, newLog.OfficePointID, newLog.CheckType,
		newLog.CheckedAt, newLog.GeoLocation, newLog.DeviceInfo,
	).Scan(
		&created.ID, &created.EmployeeID, &created.EmployeeName, &created.OfficePointID, &created.OfficePointName,
		&created.CheckType, &created.CheckedAt, &created.CreatedAt, &created.GeoLocation, &created.DeviceInfo,
	)
	if err != nil {
		return checklog.CheckLog{}, err
	}
	return created, nil
}

// TodayStats implements checklog.CheckLogRepository.
func (c *checkLogRepositoryImpl) TodayStats(ctx context.Context, organizationID string) (checklog.TodayStatsResponse, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT
			COALESCE(SUM(CASE WHEN cl.check_type = 'check_in' THEN 1 ELSE 0 END), 0) AS total_check_ins,
			COALESCE(SUM(CASE WHEN cl.check_type = 'check_out' THEN 1 ELSE 0 END), 0) AS total_check_outs,
			COUNT(DISTINCT cl.employee_id) AS unique_employees
		FROM check_logs cl
		JOIN employees e ON e.id = cl.employee_id
		WHERE e.organization_id = $1
			AND cl.checked_at >= date_trunc('day', NOW() AT TIME ZONE 'UTC')
			AND cl.checked_at < date_trunc('day', NOW() AT TIME ZONE 'UTC') + INTERVAL '1 day'
	`

	var stats checklog.TodayStatsResponse
	err := q.QueryRow(ctx, query, organizationID).
		Scan(&stats.TotalCheckIns, &stats.TotalCheckOuts, &stats.UniqueEmployees)
	if err != nil {
		return checklog.TodayStatsResponse{}, err
	}

	return stats, nil
}

// LastLogPerEmployeeForDay implements checklog.CheckLogRepository.
func (c *checkLogRepositoryImpl) LastLogPerEmployeeForDay(ctx context.Context, organizationID string, date string) ([]checklog.CheckLog, error) {
	q := GetQuerier(ctx, c.db)

	from, to, err := checklog.DateRange(date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	query := `
		SELECT DISTINCT ON (cl.employee_id) ` + checkLogColumns + `
		FROM check_logs cl
		JOIN employees e ON e.id = cl.employee_id
		JOIN office_points op ON op.id = cl.office_point_id
		WHERE e.organization_id = $1
			AND e.status = 'active'
			AND cl.checked_at >= $2 AND cl.checked_at < $3
		ORDER BY cl.employee_id, cl.checked_at DESC
	`

	rows, err := q.Query(ctx, query, organizationID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []checklog.CheckLog
	for rows.Next() {
		var log checklog.CheckLog
		err := rows.Scan(
			&log.ID, &log.EmployeeID, &log.EmployeeName, &log.OfficePointID, &log.OfficePointName,
			&log.CheckType, &log.CheckedAt, &log.CreatedAt, &log.GeoLocation, &log.DeviceInfo,
		)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return logs, nil
}
