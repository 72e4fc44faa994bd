package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/checklog"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
)

type CheckLogJobs struct {
	checkLogRepo    checklog.CheckLogRepository
	checkLogService checklog.CheckLogService
	db              *database.DB
}

func NewCheckLogJobs(checkLogRepo checklog.CheckLogRepository, checkLogService checklog.CheckLogService, db *database.DB) *CheckLogJobs {
	return &CheckLogJobs{
		checkLogRepo:    checkLogRepo,
		checkLogService: checkLogService,
		db:              db,
	}
}

func (j *CheckLogJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("auto_close_open_days", 1*time.Hour, j.AutoCloseOpenDays)
}

// AutoCloseOpenDays appends a closing check_out for every active employee
// whose last log of the previous day is an unmatched check_in, for
// organizations that opted into auto close.
func (j *CheckLogJobs) AutoCloseOpenDays(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting auto-close open days job")

	yesterday := time.Now().UTC().AddDate(0, 0, -1)
	totalClosed, err := j.closeOpenDays(ctx, yesterday)
	if err != nil {
		return err
	}

	slog.Info("Cron: Auto-closed open days", "count", totalClosed)
	return nil
}

// closeOpenDays closes unmatched check_ins for the given day. The closing
// check_out is backdated to 23:59:59 of that day; the row's created_at
// keeps the actual insertion time.
func (j *CheckLogJobs) closeOpenDays(ctx context.Context, day time.Time) (int, error) {
	rows, err := j.db.Pool.Query(ctx, `
		SELECT id FROM organizations
		WHERE (settings->>'auto_close_day')::boolean = TRUE
	`)
	if err != nil {
		return 0, fmt.Errorf("failed to get organizations with auto close: %w", err)
	}
	defer rows.Close()

	var organizationIDs []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			slog.Error("Cron: Failed to scan organization row", "error", err)
			continue
		}
		organizationIDs = append(organizationIDs, id)
	}
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("failed to read organizations with auto close: %w", err)
	}

	dayStr := day.Format("2006-01-02")
	closingTime := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.UTC)

	totalClosed := 0

	for _, orgID := range organizationIDs {
		lastLogs, err := j.checkLogRepo.LastLogPerEmployeeForDay(ctx, orgID, dayStr)
		if err != nil {
			slog.Error("Cron: Failed to get last logs", "organization_id", orgID, "error", err)
			continue
		}

		for _, last := range lastLogs {
			if last.CheckType != checklog.CheckTypeIn {
				continue
			}

			_, err := j.checkLogService.Record(ctx, orgID, checklog.CheckLog{
				EmployeeID:    last.EmployeeID,
				OfficePointID: last.OfficePointID,
				CheckType:     checklog.CheckTypeOut,
				CheckedAt:     closingTime,
			})
			if err != nil {
				slog.Error("Cron: Failed to auto-close day",
					"employee_id", last.EmployeeID,
					"organization_id", orgID,
					"error", err)
				continue
			}
			totalClosed++
		}
	}

	return totalClosed, nil
}
