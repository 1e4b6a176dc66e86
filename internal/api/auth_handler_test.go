package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taskline/taskline/internal/domain"
	"github.com/taskline/taskline/internal/mocks"
	"github.com/taskline/taskline/internal/service/auth"
)

func newAuthFixture() (*AuthHandler, *mocks.MockUserStore, *mocks.MockJWTService) {
	userStore := mocks.NewMockUserStore()
	jwtService := &mocks.MockJWTService{Token: "access-token", RefreshToken: "refresh-token"}
	handler := NewAuthHandler(userStore, jwtService, &mocks.MockPasswordVerifier{})
	return handler, userStore, jwtService
}

func postJSON(t *testing.T, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(body))
	return httptest.NewRequest(http.MethodPost, target, &buf)
}

func registeredUser(t *testing.T, userStore *mocks.MockUserStore) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Dana", "dana@example.com", "correct-horse-battery")
	require.NoError(t, err)
	require.NoError(t, userStore.Create(context.Background(), user))
	return user
}

func TestRegister(t *testing.T) {
	t.Parallel()

	handler, userStore, _ := newAuthFixture()
	rec := httptest.NewRecorder()
	handler.Register(rec, postJSON(t, "/api/auth/register", map[string]string{
		"name":     "Dana",
		"email":    "dana@example.com",
		"password": "correct-horse-battery",
	}))

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.Equal(t, "refresh-token", resp.RefreshToken)
	assert.NotEqual(t, uuid.Nil, resp.UserID)

	stored, ok := userStore.Users["dana@example.com"]
	require.True(t, ok)
	assert.Empty(t, stored.Password, "plaintext must not survive registration")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	handler, userStore, _ := newAuthFixture()
	registeredUser(t, userStore)

	rec := httptest.NewRecorder()
	handler.Register(rec, postJSON(t, "/api/auth/register", map[string]string{
		"name":     "Dana",
		"email":    "dana@example.com",
		"password": "correct-horse-battery",
	}))

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRegisterValidation(t *testing.T) {
	t.Parallel()

	handler, _, _ := newAuthFixture()
	rec := httptest.NewRecorder()
	handler.Register(rec, postJSON(t, "/api/auth/register", map[string]string{
		"name":     "Dana",
		"email":    "not-an-email",
		"password": "short",
	}))

	require.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeError(t, rec)
	assert.Contains(t, resp.Info, "email")
	assert.Contains(t, resp.Info, "password")
}

func TestLogin(t *testing.T) {
	t.Parallel()

	handler, userStore, _ := newAuthFixture()
	user := registeredUser(t, userStore)

	rec := httptest.NewRecorder()
	handler.Login(rec, postJSON(t, "/api/auth/login", map[string]string{
		"email":    "dana@example.com",
		"password": "correct-horse-battery",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp AuthResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, user.ID, resp.UserID)
	assert.Equal(t, "access-token", resp.AccessToken)
}

func TestLoginWrongPassword(t *testing.T) {
	t.Parallel()

	handler, userStore, _ := newAuthFixture()
	registeredUser(t, userStore)

	rec := httptest.NewRecorder()
	handler.Login(rec, postJSON(t, "/api/auth/login", map[string]string{
		"email":    "dana@example.com",
		"password": "wrong-password",
	}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginUnknownEmail(t *testing.T) {
	t.Parallel()

	handler, _, _ := newAuthFixture()
	rec := httptest.NewRecorder()
	handler.Login(rec, postJSON(t, "/api/auth/login", map[string]string{
		"email":    "nobody@example.com",
		"password": "whatever-password",
	}))

	// Unknown email and wrong password are indistinguishable to clients.
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRefreshToken(t *testing.T) {
	t.Parallel()

	handler, _, jwtService := newAuthFixture()
	jwtService.Claims = &auth.Claims{UserID: uuid.New(), TokenType: "refresh"}

	rec := httptest.NewRecorder()
	handler.RefreshToken(rec, postJSON(t, "/api/auth/refresh", map[string]string{
		"refresh_token": "some-valid-refresh-token",
	}))

	require.Equal(t, http.StatusOK, rec.Code)
	var resp RefreshTokenResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "access-token", resp.AccessToken)
	assert.Equal(t, "refresh-token", resp.RefreshToken)
}

func TestRefreshTokenInvalid(t *testing.T) {
	t.Parallel()

	handler, _, jwtService := newAuthFixture()
	jwtService.ValidateErr = auth.ErrInvalidRefreshToken

	rec := httptest.NewRecorder()
	handler.RefreshToken(rec, postJSON(t, "/api/auth/refresh", map[string]string{
		"refresh_token": "garbage",
	}))

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Invalid refresh token", decodeError(t, rec).Message)
}

func TestRefreshTokenWrongType(t *testing.T) {
	t.Parallel()

	handler, _, jwtService := newAuthFixture()
	jwtService.ValidateErr = auth.ErrWrongTokenType

	rec := httptest.NewRecorder()
	handler.RefreshToken(rec, postJSON(t, "/api/auth/refresh", map[string]string{
		"refresh_token": "an-access-token",
	}))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
