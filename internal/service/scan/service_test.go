package scan

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/checklog"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/employee"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/scan"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/geo"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/sse"
	"github.com/ba-mirza/qr-attend-backend/internal/repository/postgresql"
	checkLogService "github.com/ba-mirza/qr-attend-backend/internal/service/checklog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testScanDB *database.DB
)

func scanTestInit(t *testing.T) {
	t.Helper()
	if testScanDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testScanDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateScanTables(t *testing.T, ctx context.Context) {
	tables := []string{"check_logs", "registration_qrs", "employees", "office_points", "organizations", "users"}

	for _, table := range tables {
		_, err := testScanDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			continue
		}
	}
}

type scanFixture struct {
	organizationID string
	officePointID  string
	qrToken        string
	employeeID     string
}

func setupScanFixture(t *testing.T, ctx context.Context, geolocationRequired bool) scanFixture {
	var userID string
	email := fmt.Sprintf("owner-%d@example.com", time.Now().UnixNano())
	err := testScanDB.QueryRow(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, 'hash')
		RETURNING id
	`, email).Scan(&userID)
	require.NoError(t, err)

	var f scanFixture
	slug := fmt.Sprintf("scan-org-%d", time.Now().UnixNano())
	bin := fmt.Sprintf("%012d", time.Now().UnixNano()%1000000000000)
	settings := fmt.Sprintf(`{"geolocation_required":%t,"geolocation_radius":100,"auto_close_day":false}`, geolocationRequired)
	err = testScanDB.QueryRow(ctx, `
		INSERT INTO organizations (user_id, name, bin, address, slug, settings)
		VALUES ($1, 'Scan Org', $2, 'Main Street 1, Almaty', $3, $4)
		RETURNING id
	`, userID, bin, slug, settings).Scan(&f.organizationID)
	require.NoError(t, err)

	f.qrToken = fmt.Sprintf("token-%d", time.Now().UnixNano())
	err = testScanDB.QueryRow(ctx, `
		INSERT INTO office_points (organization_id, name, qr_token, is_main, is_active, location)
		VALUES ($1, 'Main Office', $2, TRUE, TRUE, '{"lat":43.238949,"lng":76.889709}')
		RETURNING id
	`, f.organizationID, f.qrToken).Scan(&f.officePointID)
	require.NoError(t, err)

	err = testScanDB.QueryRow(ctx, `
		INSERT INTO employees (organization_id, full_name, status)
		VALUES ($1, 'Jane Doe', 'active')
		RETURNING id
	`, f.organizationID).Scan(&f.employeeID)
	require.NoError(t, err)

	return f
}

func newTestScanService() (scan.ScanService, *sse.Hub) {
	officePointRepo := postgresql.NewOfficePointRepository(testScanDB)
	orgRepo := postgresql.NewOrganizationRepository(testScanDB)
	employeeRepo := postgresql.NewEmployeeRepository(testScanDB)
	registrationQRRepo := postgresql.NewRegistrationQRRepository(testScanDB)
	checkLogRepo := postgresql.NewCheckLogRepository(testScanDB)
	hub := sse.NewHub()
	checkLogSvc := checkLogService.NewCheckLogService(checkLogRepo, orgRepo, hub)
	return NewScanService(officePointRepo, orgRepo, employeeRepo, registrationQRRepo, checkLogSvc), hub
}

func TestScanService_Check_Success(t *testing.T) {
	ctx := context.Background()
	scanTestInit(t)
	truncateScanTables(t, ctx)

	f := setupScanFixture(t, ctx, false)
	svc, hub := newTestScanService()

	events, cleanup := hub.Subscribe(f.organizationID)
	defer cleanup()

	resp, err := svc.Check(ctx, scan.CheckRequest{
		Token:      f.qrToken,
		EmployeeID: f.employeeID,
		CheckType:  checklog.CheckTypeIn,
	})
	require.NoError(t, err)
	assert.Equal(t, f.employeeID, resp.Log.EmployeeID)
	assert.Equal(t, checklog.CheckTypeIn, resp.Log.CheckType)
	assert.Equal(t, "Jane Doe", resp.Log.EmployeeName)
	assert.Equal(t, "Main Office", resp.Log.OfficePointName)
	assert.False(t, resp.Log.CheckedAt.IsZero())
	assert.False(t, resp.Log.CreatedAt.IsZero())

	// The check is published to the organization's SSE subscribers
	select {
	case event := <-events:
		assert.Equal(t, "check_log.created", event.Event)
	case <-time.After(time.Second):
		t.Fatal("expected SSE event for check log")
	}
}

func TestScanService_Check_InvalidToken(t *testing.T) {
	ctx := context.Background()
	scanTestInit(t)
	truncateScanTables(t, ctx)

	f := setupScanFixture(t, ctx, false)
	svc, _ := newTestScanService()

	_, err := svc.Check(ctx, scan.CheckRequest{
		Token:      "no-such-token",
		EmployeeID: f.employeeID,
		CheckType:  checklog.CheckTypeIn,
	})
	assert.ErrorIs(t, err, scan.ErrInvalidQRToken)
}

func TestScanService_Check_InactivePoint(t *testing.T) {
	ctx := context.Background()
	scanTestInit(t)
	truncateScanTables(t, ctx)

	f := setupScanFixture(t, ctx, false)
	_, err := testScanDB.Exec(ctx, `UPDATE office_points SET is_active = FALSE WHERE id = $1`, f.officePointID)
	require.NoError(t, err)

	svc, _ := newTestScanService()
	_, err = svc.Check(ctx, scan.CheckRequest{
		Token:      f.qrToken,
		EmployeeID: f.employeeID,
		CheckType:  checklog.CheckTypeIn,
	})
	assert.ErrorIs(t, err, scan.ErrInvalidQRToken)
}

func TestScanService_Check_InactiveEmployee(t *testing.T) {
	ctx := context.Background()
	scanTestInit(t)
	truncateScanTables(t, ctx)

	f := setupScanFixture(t, ctx, false)
	_, err := testScanDB.Exec(ctx, `UPDATE employees SET status = 'inactive' WHERE id = $1`, f.employeeID)
	require.NoError(t, err)

	svc, _ := newTestScanService()
	_, err = svc.Check(ctx, scan.CheckRequest{
		Token:      f.qrToken,
		EmployeeID: f.employeeID,
		CheckType:  checklog.CheckTypeIn,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotActive)
}

func TestScanService_Check_GeolocationRequired(t *testing.T) {
	ctx := context.Background()
	scanTestInit(t)
	truncateScanTables(t, ctx)

	f := setupScanFixture(t, ctx, true)
	svc, _ := newTestScanService()

	_, err := svc.Check(ctx, scan.CheckRequest{
		Token:      f.qrToken,
		EmployeeID: f.employeeID,
		CheckType:  checklog.CheckTypeIn,
	})
	assert.ErrorIs(t, err, scan.ErrGeolocationRequired)
}

func TestScanService_Check_OutsideGeofence(t *testing.T) {
	ctx := context.Background()
	scanTestInit(t)
	truncateScanTables(t, ctx)

	f := setupScanFixture(t, ctx, true)
	svc, _ := newTestScanService()

	// Roughly 2 km away from the office point
	_, err := svc.Check(ctx, scan.CheckRequest{
		Token:       f.qrToken,
		EmployeeID:  f.employeeID,
		CheckType:   checklog.CheckTypeIn,
		GeoLocation: &geo.Point{Lat: 43.257, Lng: 76.89},
	})
	assert.ErrorIs(t, err, scan.ErrOutsideGeofence)
}

func TestScanService_Check_WithinGeofence(t *testing.T) {
	ctx := context.Background()
	scanTestInit(t)
	truncateScanTables(t, ctx)

	f := setupScanFixture(t, ctx, true)
	svc, _ := newTestScanService()

	resp, err := svc.Check(ctx, scan.CheckRequest{
		Token:       f.qrToken,
		EmployeeID:  f.employeeID,
		CheckType:   checklog.CheckTypeOut,
		GeoLocation: &geo.Point{Lat: 43.238950, Lng: 76.889710},
	})
	require.NoError(t, err)
	assert.Equal(t, checklog.CheckTypeOut, resp.Log.CheckType)
}

func TestScanService_Register_Success(t *testing.T) {
	ctx := context.Background()
	scanTestInit(t)
	truncateScanTables(t, ctx)

	f := setupScanFixture(t, ctx, false)
	svc, _ := newTestScanService()

	regToken := fmt.Sprintf("reg-%d", time.Now().UnixNano())
	_, err := testScanDB.Exec(ctx, `
		INSERT INTO registration_qrs (organization_id, token, expires_at, is_active)
		VALUES ($1, $2, NOW() + INTERVAL '1 hour', TRUE)
	`, f.organizationID, regToken)
	require.NoError(t, err)

	position := "Engineer"
	resp, err := svc.Register(ctx, scan.RegisterRequest{
		Token:    regToken,
		FullName: "New Hire",
		Position: &position,
	})
	require.NoError(t, err)
	assert.Equal(t, "New Hire", resp.Employee.FullName)
	assert.Equal(t, employee.StatusPending, resp.Employee.Status)
	assert.Equal(t, "Scan Org", resp.Organization)
}

func TestScanService_Register_ExpiredQR(t *testing.T) {
	ctx := context.Background()
	scanTestInit(t)
	truncateScanTables(t, ctx)

	f := setupScanFixture(t, ctx, false)
	svc, _ := newTestScanService()

	regToken := fmt.Sprintf("reg-%d", time.Now().UnixNano())
	_, err := testScanDB.Exec(ctx, `
		INSERT INTO registration_qrs (organization_id, token, expires_at, is_active)
		VALUES ($1, $2, NOW() - INTERVAL '1 hour', TRUE)
	`, f.organizationID, regToken)
	require.NoError(t, err)

	_, err = svc.Register(ctx, scan.RegisterRequest{
		Token:    regToken,
		FullName: "Late Hire",
	})
	assert.Error(t, err)
}
