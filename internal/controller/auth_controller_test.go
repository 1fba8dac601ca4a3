package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"chatai-be/internal/dto"
	"chatai-be/internal/pkg/serverutils"
	"chatai-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubAuthService struct {
	res *dto.LoginResponse
	err error
}

func (s *stubAuthService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	return s.res, s.err
}

func newAuthApp(svc service.IAuthService) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	api := app.Group("/api")
	NewAuthController(svc).RegisterRoutes(api, serverutils.NewJwtMiddleware(testSecret))
	return app
}

func TestLoginSuccessShape(t *testing.T) {
	app := newAuthApp(&stubAuthService{
		res: &dto.LoginResponse{
			Token: "signed-token",
			User: dto.UserDTO{
				Id:       "abc",
				Name:     "Maria Silva",
				Email:    "maria@example.com",
				Sector:   "Engineering",
				Position: "Analyst",
			},
		},
	})

	res := doRequest(t, app, http.MethodPost, "/api/login", `{"username":"maria@example.com","password":"s3cret"}`, false)
	assert.Equal(t, http.StatusOK, res.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	assert.Equal(t, "signed-token", payload["token"])

	user := payload["user"].(map[string]interface{})
	// Legacy field names on the wire.
	assert.Equal(t, "Engineering", user["setor"])
	assert.Equal(t, "Analyst", user["cargo"])
}

func TestLoginUniform401(t *testing.T) {
	app := newAuthApp(&stubAuthService{err: service.ErrInvalidCredentials})

	tests := []struct {
		name string
		body string
	}{
		{"rejected credentials", `{"username":"maria@example.com","password":"wrong"}`},
		{"missing password", `{"username":"maria@example.com"}`},
		{"empty body", `{}`},
		{"malformed json", `{not json`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := doRequest(t, app, http.MethodPost, "/api/login", tt.body, false)
			assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

			var payload map[string]interface{}
			require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
			assert.Equal(t, "Could not verify", payload["message"])
		})
	}
}

func TestMeEchoesTokenIdentity(t *testing.T) {
	app := newAuthApp(&stubAuthService{})

	req := doRequest(t, app, http.MethodGet, "/api/me", "", true)
	assert.Equal(t, http.StatusOK, req.StatusCode)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
	assert.Equal(t, "maria@example.com", payload["user"])
	assert.Equal(t, "Maria Silva", payload["name"])
	assert.NotEmpty(t, payload["user_id"])
}
