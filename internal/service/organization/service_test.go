package organization

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/officepoint"
	"github.com/ba-mirza/qr-attend-backend/internal/domain/organization"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
	"github.com/ba-mirza/qr-attend-backend/internal/repository/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testOrgDB *database.DB
)

func orgTestInit(t *testing.T) {
	t.Helper()
	if testOrgDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testOrgDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateOrgTables(t *testing.T, ctx context.Context) {
	tables := []string{"check_logs", "registration_qrs", "employees", "office_points", "organizations", "users"}

	for _, table := range tables {
		_, err := testOrgDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			// Some tables might not exist, skip
			continue
		}
	}
}

func createOrgTestUser(t *testing.T, ctx context.Context) string {
	var userID string
	email := fmt.Sprintf("owner-%d@example.com", time.Now().UnixNano())
	err := testOrgDB.QueryRow(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, 'hash')
		RETURNING id
	`, email).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func newTestOrganizationService() (organization.OrganizationService, organization.OrganizationRepository, officepoint.OfficePointRepository) {
	orgRepo := postgresql.NewOrganizationRepository(testOrgDB)
	pointRepo := postgresql.NewOfficePointRepository(testOrgDB)
	return NewOrganizationService(testOrgDB, orgRepo, pointRepo), orgRepo, pointRepo
}

func TestOrganizationService_Create_Success(t *testing.T) {
	ctx := context.Background()
	orgTestInit(t)
	truncateOrgTables(t, ctx)

	userID := createOrgTestUser(t, ctx)
	svc, _, pointRepo := newTestOrganizationService()

	req := organization.CreateOrganizationRequest{
		Name:    "Acme Corp",
		BIN:     "123456789012",
		Address: "Main Street 1, Almaty",
	}
	resp, err := svc.Create(ctx, userID, req)
	require.NoError(t, err)

	assert.Equal(t, "Acme Corp", resp.Name)
	assert.Equal(t, "123456789012", resp.BIN)
	assert.Regexp(t, `^acme-corp-[a-z0-9]{6}$`, resp.Slug)
	assert.False(t, resp.Settings.GeolocationRequired)
	assert.Equal(t, 100, resp.Settings.GeolocationRadius)

	// Main office is created in the same transaction and inherits the
	// registration address
	points, err := pointRepo.ListByOrganizationID(ctx, resp.ID)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.True(t, points[0].IsMain)
	assert.True(t, points[0].IsActive)
	assert.Equal(t, officepoint.MainOfficeName, points[0].Name)
	assert.NotEmpty(t, points[0].QRToken)
	require.NotNil(t, points[0].Address)
	assert.Equal(t, "Main Street 1, Almaty", *points[0].Address)
}

func TestOrganizationService_Create_SecondOrganization(t *testing.T) {
	ctx := context.Background()
	orgTestInit(t)
	truncateOrgTables(t, ctx)

	userID := createOrgTestUser(t, ctx)
	svc, _, _ := newTestOrganizationService()

	req := organization.CreateOrganizationRequest{
		Name:    "First Org",
		BIN:     "111111111111",
		Address: "Main Street 1, Almaty",
	}
	_, err := svc.Create(ctx, userID, req)
	require.NoError(t, err)

	req.Name = "Second Org"
	req.BIN = "222222222222"
	_, err = svc.Create(ctx, userID, req)
	assert.ErrorIs(t, err, organization.ErrOrganizationExists)
}

func TestOrganizationService_Create_DuplicateBIN(t *testing.T) {
	ctx := context.Background()
	orgTestInit(t)
	truncateOrgTables(t, ctx)

	svc, _, _ := newTestOrganizationService()

	firstOwner := createOrgTestUser(t, ctx)
	req := organization.CreateOrganizationRequest{
		Name:    "First Org",
		BIN:     "333333333333",
		Address: "Main Street 1, Almaty",
	}
	_, err := svc.Create(ctx, firstOwner, req)
	require.NoError(t, err)

	secondOwner := createOrgTestUser(t, ctx)
	req.Name = "Other Org"
	_, err = svc.Create(ctx, secondOwner, req)
	assert.ErrorIs(t, err, organization.ErrBINExists)
}

func TestOrganizationService_Create_InvalidBIN(t *testing.T) {
	ctx := context.Background()
	orgTestInit(t)
	truncateOrgTables(t, ctx)

	userID := createOrgTestUser(t, ctx)
	svc, _, _ := newTestOrganizationService()

	req := organization.CreateOrganizationRequest{
		Name:    "Acme Corp",
		BIN:     "12345",
		Address: "Main Street 1, Almaty",
	}
	_, err := svc.Create(ctx, userID, req)
	assert.Error(t, err)
}

func TestOrganizationService_GetOwn(t *testing.T) {
	ctx := context.Background()
	orgTestInit(t)
	truncateOrgTables(t, ctx)

	userID := createOrgTestUser(t, ctx)
	svc, _, _ := newTestOrganizationService()

	_, err := svc.GetOwn(ctx, userID)
	assert.ErrorIs(t, err, organization.ErrOrganizationNotFound)

	created, err := svc.Create(ctx, userID, organization.CreateOrganizationRequest{
		Name:    "Acme Corp",
		BIN:     "444444444444",
		Address: "Main Street 1, Almaty",
	})
	require.NoError(t, err)

	own, err := svc.GetOwn(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, own.ID)
}

func TestOrganizationService_GetBySlug_WrongOwner(t *testing.T) {
	ctx := context.Background()
	orgTestInit(t)
	truncateOrgTables(t, ctx)

	svc, _, _ := newTestOrganizationService()

	owner := createOrgTestUser(t, ctx)
	created, err := svc.Create(ctx, owner, organization.CreateOrganizationRequest{
		Name:    "Acme Corp",
		BIN:     "555555555555",
		Address: "Main Street 1, Almaty",
	})
	require.NoError(t, err)

	// Another account must not see the organization, even with the slug
	stranger := createOrgTestUser(t, ctx)
	_, err = svc.GetBySlug(ctx, stranger, created.Slug)
	assert.ErrorIs(t, err, organization.ErrOrganizationNotFound)

	detail, err := svc.GetBySlug(ctx, owner, created.Slug)
	require.NoError(t, err)
	assert.Equal(t, created.ID, detail.ID)
	assert.Len(t, detail.OfficePoints, 1)
}

func TestOrganizationService_UpdateSettings(t *testing.T) {
	ctx := context.Background()
	orgTestInit(t)
	truncateOrgTables(t, ctx)

	svc, _, _ := newTestOrganizationService()

	owner := createOrgTestUser(t, ctx)
	created, err := svc.Create(ctx, owner, organization.CreateOrganizationRequest{
		Name:    "Acme Corp",
		BIN:     "666666666666",
		Address: "Main Street 1, Almaty",
	})
	require.NoError(t, err)

	enabled := true
	radius := 250
	settings, err := svc.UpdateSettings(ctx, owner, created.ID, organization.UpdateSettingsRequest{
		GeolocationRequired: &enabled,
		GeolocationRadius:   &radius,
	})
	require.NoError(t, err)
	assert.True(t, settings.GeolocationRequired)
	assert.Equal(t, 250, settings.GeolocationRadius)
	// Untouched fields keep their values
	assert.False(t, settings.AutoCloseDay)

	// Out of range radius is rejected
	badRadius := 5
	_, err = svc.UpdateSettings(ctx, owner, created.ID, organization.UpdateSettingsRequest{
		GeolocationRadius: &badRadius,
	})
	assert.Error(t, err)

	// Strangers cannot touch settings
	stranger := createOrgTestUser(t, ctx)
	_, err = svc.UpdateSettings(ctx, stranger, created.ID, organization.UpdateSettingsRequest{
		GeolocationRequired: &enabled,
	})
	assert.ErrorIs(t, err, organization.ErrNotOwner)
}
