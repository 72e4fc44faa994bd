package cron

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/sse"
	"github.com/ba-mirza/qr-attend-backend/internal/repository/postgresql"
	checkLogService "github.com/ba-mirza/qr-attend-backend/internal/service/checklog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testCronDB *database.DB
)

func cronTestInit(t *testing.T) {
	t.Helper()
	if testCronDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testCronDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateCronTables(t *testing.T, ctx context.Context) {
	tables := []string{"check_logs", "employees", "office_points", "organizations", "users"}

	for _, table := range tables {
		_, err := testCronDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

type cronFixture struct {
	organizationID string
	officePointID  string
	employeeID     string
}

func setupCronFixture(t *testing.T, ctx context.Context, autoClose bool) cronFixture {
	var userID string
	email := fmt.Sprintf("owner-%d@example.com", time.Now().UnixNano())
	err := testCronDB.QueryRow(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, 'hash')
		RETURNING id
	`, email).Scan(&userID)
	require.NoError(t, err)

	var f cronFixture
	slug := fmt.Sprintf("cron-org-%d", time.Now().UnixNano())
	bin := fmt.Sprintf("%012d", time.Now().UnixNano()%1000000000000)
	settings := fmt.Sprintf(`{"geolocation_required":false,"geolocation_radius":100,"auto_close_day":%t}`, autoClose)
	err = testCronDB.QueryRow(ctx, `
		INSERT INTO organizations (user_id, name, bin, address, slug, settings)
		VALUES ($1, 'Cron Org', $2, 'Main Street 1, Almaty', $3, $4)
		RETURNING id
	`, userID, bin, slug, settings).Scan(&f.organizationID)
	require.NoError(t, err)

	qrToken := fmt.Sprintf("token-%d", time.Now().UnixNano())
	err = testCronDB.QueryRow(ctx, `
		INSERT INTO office_points (organization_id, name, qr_token, is_main, is_active)
		VALUES ($1, 'Main Office', $2, TRUE, TRUE)
		RETURNING id
	`, f.organizationID, qrToken).Scan(&f.officePointID)
	require.NoError(t, err)

	err = testCronDB.QueryRow(ctx, `
		INSERT INTO employees (organization_id, full_name, status)
		VALUES ($1, 'Jane Doe', 'active')
		RETURNING id
	`, f.organizationID).Scan(&f.employeeID)
	require.NoError(t, err)

	return f
}

func newTestCheckLogJobs() *CheckLogJobs {
	checkLogRepo := postgresql.NewCheckLogRepository(testCronDB)
	orgRepo := postgresql.NewOrganizationRepository(testCronDB)
	hub := sse.NewHub()
	checkLogSvc := checkLogService.NewCheckLogService(checkLogRepo, orgRepo, hub)
	return NewCheckLogJobs(checkLogRepo, checkLogSvc, testCronDB)
}

func TestCheckLogJobs_CloseOpenDays(t *testing.T) {
	ctx := context.Background()
	cronTestInit(t)
	truncateCronTables(t, ctx)

	f := setupCronFixture(t, ctx, true)
	day := time.Now().UTC().AddDate(0, 0, -1)
	morning := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, time.UTC)

	_, err := testCronDB.Exec(ctx, `
		INSERT INTO check_logs (employee_id, office_point_id, check_type, checked_at)
		VALUES ($1, $2, 'check_in', $3)
	`, f.employeeID, f.officePointID, morning)
	require.NoError(t, err)

	jobs := newTestCheckLogJobs()
	closed, err := jobs.closeOpenDays(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 1, closed)

	// The closing check_out is backdated to the end of the open day while
	// created_at records when the job actually wrote it
	var checkedAt, createdAt time.Time
	err = testCronDB.QueryRow(ctx, `
		SELECT checked_at, created_at
		FROM check_logs
		WHERE employee_id = $1 AND check_type = 'check_out'
	`, f.employeeID).Scan(&checkedAt, &createdAt)
	require.NoError(t, err)

	wantCheckedAt := time.Date(day.Year(), day.Month(), day.Day(), 23, 59, 59, 0, time.UTC)
	assert.Equal(t, wantCheckedAt, checkedAt.UTC())
	assert.WithinDuration(t, time.Now(), createdAt, time.Minute)

	// The day is closed now, so a second run finds nothing to do
	closed, err = jobs.closeOpenDays(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}

func TestCheckLogJobs_CloseOpenDays_OptOut(t *testing.T) {
	ctx := context.Background()
	cronTestInit(t)
	truncateCronTables(t, ctx)

	f := setupCronFixture(t, ctx, false)
	day := time.Now().UTC().AddDate(0, 0, -1)
	morning := time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, time.UTC)

	_, err := testCronDB.Exec(ctx, `
		INSERT INTO check_logs (employee_id, office_point_id, check_type, checked_at)
		VALUES ($1, $2, 'check_in', $3)
	`, f.employeeID, f.officePointID, morning)
	require.NoError(t, err)

	jobs := newTestCheckLogJobs()
	closed, err := jobs.closeOpenDays(ctx, day)
	require.NoError(t, err)
	assert.Equal(t, 0, closed)
}
