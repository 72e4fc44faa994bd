package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/ba-mirza/qr-attend-backend/internal/domain/auth"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/database"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/jwt"
	"github.com/ba-mirza/qr-attend-backend/internal/pkg/oauth"
	"github.com/ba-mirza/qr-attend-backend/internal/repository/postgresql"
	authService "github.com/ba-mirza/qr-attend-backend/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var (
	testHandlerDB *database.DB
)

const (
	handlerTestAccessExp  = "1h"
	handlerTestRefreshExp = "24h"
	handlerTestSecret     = "test-secret-key-for-jwt"
)

func handlerTestInit(t *testing.T) {
	t.Helper()
	if testHandlerDB != nil {
		return
	}
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	var err error
	testHandlerDB, err = database.NewPostgreSQLDB(dsn)
	if err != nil {
		t.Fatal("Failed to connect to test database: " + err.Error())
	}
}

func truncateHandlerTables(t *testing.T, ctx context.Context) {
	tables := []string{"refresh_tokens", "organizations", "users"}

	for _, table := range tables {
		_, err := testHandlerDB.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table))
		if err != nil {
			// Some tables might not exist, skip
			continue
		}
	}
}

func createHandlerTestUser(t *testing.T, ctx context.Context, email string) string {
	var userID string
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	hashedStr := string(hashedPassword)

	err := testHandlerDB.QueryRow(ctx, `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING id
	`, email, hashedStr).Scan(&userID)
	require.NoError(t, err)
	return userID
}

func createAuthTestHandler() AuthHandler {
	userRepo := postgresql.NewUserRepository(testHandlerDB)
	orgRepo := postgresql.NewOrganizationRepository(testHandlerDB)
	jwtSvc := jwt.NewJWTService(handlerTestSecret, handlerTestAccessExp, handlerTestRefreshExp)
	jwtRepo := postgresql.NewJWTRepository(testHandlerDB)
	authSvc := authService.NewAuthService(testHandlerDB, userRepo, orgRepo, jwtSvc, jwtRepo)

	// Real GoogleService; OAuth endpoints will fail but that's fine here
	googleSvc := oauth.NewGoogleService("test-client-id", "test-client-secret", "http://localhost:3000/callback", []string{"email"})

	return NewAuthHandler(jwtSvc, authSvc, googleSvc, "http://localhost:3000")
}

func TestAuthHandler_Register_Success(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)

	handler := createAuthTestHandler()

	testEmail := fmt.Sprintf("register-%d@example.com", time.Now().UnixNano())
	registerReq := auth.RegisterRequest{
		Email:           testEmail,
		Password:        "SecurePass123!",
		ConfirmPassword: "SecurePass123!",
	}
	body, _ := json.Marshal(registerReq)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.True(t, resp["success"].(bool))
	require.NotNil(t, resp["data"])

	data := resp["data"].(map[string]interface{})
	assert.NotEmpty(t, data["access_token"])
	assert.NotEmpty(t, data["refresh_token"])

	// Refresh token also lands in a cookie
	cookies := w.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "refresh_token" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestAuthHandler_Register_PasswordMismatch(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)

	handler := createAuthTestHandler()

	testEmail := fmt.Sprintf("register-mismatch-%d@example.com", time.Now().UnixNano())
	registerReq := auth.RegisterRequest{
		Email:           testEmail,
		Password:        "SecurePass123!",
		ConfirmPassword: "DifferentPass123!",
	}
	body, _ := json.Marshal(registerReq)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.False(t, resp["success"].(bool))
}

func TestAuthHandler_Register_InvalidJSON(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)

	handler := createAuthTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", bytes.NewReader([]byte("invalid json")))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)

	testEmail := fmt.Sprintf("login-%d@example.com", time.Now().UnixNano())
	createHandlerTestUser(t, ctx, testEmail)

	handler := createAuthTestHandler()

	loginReq := auth.LoginRequest{
		Email:    testEmail,
		Password: "password123",
	}
	body, _ := json.Marshal(loginReq)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	err := json.NewDecoder(w.Body).Decode(&resp)
	assert.NoError(t, err)
	assert.True(t, resp["success"].(bool))
}

func TestAuthHandler_Login_WrongPassword(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)
	truncateHandlerTables(t, ctx)

	testEmail := fmt.Sprintf("wrongpass-%d@example.com", time.Now().UnixNano())
	createHandlerTestUser(t, ctx, testEmail)

	handler := createAuthTestHandler()

	loginReq := auth.LoginRequest{
		Email:    testEmail,
		Password: "not-the-password",
	}
	body, _ := json.Marshal(loginReq)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body))
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Login(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Logout_MissingCookie(t *testing.T) {
	ctx := context.Background()
	handlerTestInit(t)

	handler := createAuthTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	req = req.WithContext(ctx)
	w := httptest.NewRecorder()

	handler.Logout(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
