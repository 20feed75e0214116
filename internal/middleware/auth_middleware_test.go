package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"trackforce/internal/models"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, role string, expiry time.Duration) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "64f000000000000000000001",
		"email":   "e@x.com",
		"role":    role,
		"exp":     time.Now().Add(expiry).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func newGuardedApp(handlers ...fiber.Handler) *fiber.App {
	app := fiber.New()
	chain := append(handlers, func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"email": c.Locals("email"),
			"role":  c.Locals("role"),
		})
	})
	app.Get("/guarded", chain...)
	return app
}

func TestRequireAuthMissingHeaderIs401(t *testing.T) {
	app := newGuardedApp(RequireAuth(testSecret))
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/guarded", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestRequireAuthBadSignatureIs403(t *testing.T) {
	app := newGuardedApp(RequireAuth(testSecret))
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret", models.RoleEmployee, time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestRequireAuthExpiredTokenIs403(t *testing.T) {
	app := newGuardedApp(RequireAuth(testSecret))
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, models.RoleEmployee, -time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestRequireAuthValidTokenPassesClaims(t *testing.T) {
	app := newGuardedApp(RequireAuth(testSecret))
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, models.RoleEmployee, time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestRequireHRRejectsEmployees(t *testing.T) {
	app := newGuardedApp(RequireAuth(testSecret), RequireHR())
	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, models.RoleEmployee, time.Hour))
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestRequireHRAllowsHRAndAdmin(t *testing.T) {
	for _, role := range []string{models.RoleHR, models.RoleAdmin} {
		app := newGuardedApp(RequireAuth(testSecret), RequireHR())
		req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, role, time.Hour))
		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, resp.StatusCode, "role %s", role)
		resp.Body.Close()
	}
}
