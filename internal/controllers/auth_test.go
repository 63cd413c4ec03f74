package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taller-system/internal/entities"
	"taller-system/internal/repositories"
	"taller-system/internal/services"
	apperrors "taller-system/pkg/errors"
	"taller-system/pkg/service"
	"taller-system/pkg/utils"
)

type fakeUserRepository struct {
	repositories.UserRepositoryInterface
	users map[string]entities.User
}

func (f *fakeUserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &u, nil
}

const testCookieName = "taller_session"

func newAuthTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	hash, err := utils.HashPassword("secreto1")
	require.NoError(t, err)

	repo := &fakeUserRepository{users: map[string]entities.User{
		"tecnico@taller.local": {
			ID:           7,
			Nombre:       "Técnico Demo",
			Email:        "tecnico@taller.local",
			PasswordHash: hash,
			Rol:          entities.RoleTechnician,
			SucursalID:   1,
			Activo:       true,
		},
		"baja@taller.local": {
			ID:           8,
			Email:        "baja@taller.local",
			PasswordHash: hash,
			Rol:          entities.RoleSales,
			SucursalID:   1,
			Activo:       false,
		},
	}}

	logger := zap.NewNop()
	jwtSvc := service.NewJWTService("test-secret", time.Hour, logger)
	authService := services.NewAuthService(repo, jwtSvc, logger)
	ctrl := NewAuthController(authService, testCookieName, time.Hour, logger)

	e := echo.New()
	e.Validator = utils.NewValidator(validator.New())
	e.POST("/api/usuarios/login", ctrl.Login)
	e.POST("/api/usuarios/logout", ctrl.Logout)
	return e
}

func doLogin(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/usuarios/login", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sessionCookieFrom(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	e := newAuthTestServer(t)

	rec := doLogin(e, `{"email":"tecnico@taller.local","password":"secreto1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		Status bool `json:"status"`
		Body   struct {
			User struct {
				ID  uint64 `json:"id"`
				Rol string `json:"rol"`
			} `json:"user"`
		} `json:"body"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.True(t, res.Status)
	assert.Equal(t, uint64(7), res.Body.User.ID)
	assert.Equal(t, entities.RoleTechnician, res.Body.User.Rol)
	assert.Equal(t, "Sesión iniciada", res.Message)

	cookie := sessionCookieFrom(rec)
	require.NotNil(t, cookie)
	assert.NotEmpty(t, cookie.Value)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	e := newAuthTestServer(t)

	rec := doLogin(e, `{"email":"tecnico@taller.local","password":"incorrecta"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, sessionCookieFrom(rec))
}

func TestLoginRejectsUnknownEmailIdentically(t *testing.T) {
	e := newAuthTestServer(t)

	wrongPass := doLogin(e, `{"email":"tecnico@taller.local","password":"incorrecta"}`)
	unknown := doLogin(e, `{"email":"nadie@taller.local","password":"secreto1"}`)

	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.JSONEq(t, wrongPass.Body.String(), unknown.Body.String())
}

func TestLoginRejectsInactiveUser(t *testing.T) {
	e := newAuthTestServer(t)

	rec := doLogin(e, `{"email":"baja@taller.local","password":"secreto1"}`)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginValidatesPayload(t *testing.T) {
	e := newAuthTestServer(t)

	rec := doLogin(e, `{"email":"no-es-un-email","password":"secreto1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutExpiresCookie(t *testing.T) {
	e := newAuthTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/usuarios/logout", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookieFrom(rec)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.Expires.Before(time.Now()))
}
