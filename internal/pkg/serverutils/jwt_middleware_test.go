package serverutils

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "middleware-secret"

func signToken(t *testing.T, secret string, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func newProtectedApp() (*fiber.App, *Identity) {
	var captured Identity
	app := fiber.New()
	app.Get("/protected", NewJwtMiddleware(testSecret), func(ctx *fiber.Ctx) error {
		captured = IdentityFromCtx(ctx)
		return ctx.SendStatus(fiber.StatusOK)
	})
	return app, &captured
}

func TestJwtMiddlewareAcceptsValidToken(t *testing.T) {
	app, captured := newProtectedApp()

	userId := uuid.New()
	token := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"user":    "maria@example.com",
		"user_id": userId.String(),
		"name":    "Maria Silva",
		"exp":     time.Now().Add(30 * time.Minute).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	res, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	assert.Equal(t, userId, captured.UserId)
	assert.Equal(t, "maria@example.com", captured.Email)
	assert.Equal(t, "Maria Silva", captured.Name)
}

func TestJwtMiddlewareRejections(t *testing.T) {
	app, _ := newProtectedApp()

	expired := signToken(t, testSecret, jwt.SigningMethodHS256, jwt.MapClaims{
		"user":    "maria@example.com",
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(-time.Minute).Unix(),
	})
	wrongSecret := signToken(t, "some-other-secret", jwt.SigningMethodHS256, jwt.MapClaims{
		"user": "maria@example.com",
		"exp":  time.Now().Add(30 * time.Minute).Unix(),
	})

	tests := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"not a bearer scheme", "Basic abc123"},
		{"garbage token", "Bearer not.a.jwt"},
		{"expired token", "Bearer " + expired},
		{"wrong signing secret", "Bearer " + wrongSecret},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			res, err := app.Test(req)
			require.NoError(t, err)
			// Every rejection is a uniform 401.
			assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
		})
	}
}
