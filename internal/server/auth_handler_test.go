package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/job-matcher/internal/types"
)

func testAuthHandler() (*AuthHandler, *UserService) {
	userService := testUserService(newMockDB())
	return NewAuthHandler(userService, testJWTService()), userService
}

func decodeLoginResponse(t *testing.T, body io.Reader) types.LoginResponse {
	t.Helper()
	var resp types.LoginResponse
	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	return resp
}

func TestAuthHandler_Register(t *testing.T) {
	handler, _ := testAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","password":"password123"}`))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeLoginResponse(t, rec.Body)
	require.NotNil(t, resp.User)
	assert.Equal(t, "ada@example.com", resp.User.Email)
	assert.NotEmpty(t, resp.Token)

	claims, err := testJWTService().ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestAuthHandler_RegisterInvalidBody(t *testing.T) {
	handler, _ := testAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestAuthHandler_RegisterShortPassword(t *testing.T) {
	handler, _ := testAuthHandler()

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","password":"short"}`))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password")
}

func TestAuthHandler_RegisterDuplicateEmail(t *testing.T) {
	handler, service := testAuthHandler()
	registerTestUser(t, service, "ada@example.com", "password123")

	req := httptest.NewRequest(http.MethodPost, "/auth/register",
		strings.NewReader(`{"name":"Ada","email":"ada@example.com","password":"password123"}`))
	rec := httptest.NewRecorder()

	handler.Register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAuthHandler_Login(t *testing.T) {
	handler, service := testAuthHandler()
	created := registerTestUser(t, service, "ada@example.com", "password123")

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ada@example.com","password":"password123"}`))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeLoginResponse(t, rec.Body)
	require.NotNil(t, resp.User)
	assert.Equal(t, created.ID, resp.User.ID)
	assert.NotEmpty(t, resp.Token)
}

func TestAuthHandler_LoginWrongPassword(t *testing.T) {
	handler, service := testAuthHandler()
	registerTestUser(t, service, "ada@example.com", "password123")

	req := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"email":"ada@example.com","password":"wrong-password"}`))
	rec := httptest.NewRecorder()

	handler.Login(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid email or password")
}

func TestAuthHandler_UpdatePassword(t *testing.T) {
	handler, service := testAuthHandler()
	user := registerTestUser(t, service, "ada@example.com", "password123")

	req := httptest.NewRequest(http.MethodPut, "/auth/password",
		strings.NewReader(`{"current_password":"password123","new_password":"new-password-456"}`))
	rec := httptest.NewRecorder()

	handler.UpdatePasswordWithUserID(rec, req, user.ID)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Password updated successfully")
}

func TestAuthHandler_UpdatePasswordWrongCurrent(t *testing.T) {
	handler, service := testAuthHandler()
	user := registerTestUser(t, service, "ada@example.com", "password123")

	req := httptest.NewRequest(http.MethodPut, "/auth/password",
		strings.NewReader(`{"current_password":"wrong","new_password":"new-password-456"}`))
	rec := httptest.NewRecorder()

	handler.UpdatePasswordWithUserID(rec, req, user.ID)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
