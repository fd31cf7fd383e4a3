package handler

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"go-inventory-genie/internal/middleware"
	"go-inventory-genie/internal/model"
	"go-inventory-genie/internal/service"
	"go-inventory-genie/pkg/jwt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubAuthService returns canned results so handler status mapping can
// be tested without a store.
type stubAuthService struct {
	registerErr error
	loginErr    error
}

func (s *stubAuthService) Register(username, email, password string) (*service.AuthResponse, error) {
	if s.registerErr != nil {
		return nil, s.registerErr
	}
	return &service.AuthResponse{Token: "tok", User: model.UserResponse{Username: username}}, nil
}

func (s *stubAuthService) Login(email, password string) (*service.AuthResponse, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return &service.AuthResponse{Token: "tok"}, nil
}

type stubSalesService struct {
	sellErr error
}

func (s *stubSalesService) Sell(userID uuid.UUID, req *service.SellRequest) (*model.Sale, error) {
	if s.sellErr != nil {
		return nil, s.sellErr
	}
	return &model.Sale{UserID: userID, Quantity: req.Quantity}, nil
}

func (s *stubSalesService) ListSales(userID uuid.UUID) ([]model.Sale, error) {
	return []model.Sale{}, nil
}

func (s *stubSalesService) ClearSales(userID uuid.UUID) (int64, error) {
	return 0, nil
}

func doJSON(t *testing.T, app *fiber.App, method, target, body, token string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp.StatusCode, decoded
}

func TestRegisterHandlerStatuses(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"created", nil, 201},
		{"duplicate username", service.ErrDuplicateUsername, 409},
		{"duplicate email", service.ErrDuplicateEmail, 409},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			h := NewAuthHandler(&stubAuthService{registerErr: tc.err})
			app.Post("/api/register", h.Register)

			status, body := doJSON(t, app, "POST", "/api/register",
				`{"username":"alice","email":"alice@x.com","password":"secret1"}`, "")
			assert.Equal(t, tc.wantStatus, status)
			if tc.err != nil {
				assert.Equal(t, tc.err.Error(), body["error"])
			}
		})
	}
}

func TestLoginHandlerInvalidCredentials(t *testing.T) {
	app := fiber.New()
	h := NewAuthHandler(&stubAuthService{loginErr: service.ErrInvalidCredentials})
	app.Post("/api/login", h.Login)

	status, body := doJSON(t, app, "POST", "/api/login",
		`{"email":"alice@x.com","password":"wrong"}`, "")
	assert.Equal(t, 401, status)
	assert.Equal(t, service.ErrInvalidCredentials.Error(), body["error"])
}

func TestSalesHandlerStatuses(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := jwt.GenerateToken(uuid.New(), "alice")
	require.NoError(t, err)

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"recorded", nil, 201},
		{"insufficient stock", service.ErrInsufficientStock, 400},
		{"not found", service.ErrNotFound, 404},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			h := NewSalesHandler(&stubSalesService{sellErr: tc.err})
			app.Post("/api/sales", middleware.RequireAuth(), h.Record)

			status, _ := doJSON(t, app, "POST", "/api/sales",
				`{"product_id":"`+uuid.NewString()+`","quantity":3}`, token)
			assert.Equal(t, tc.wantStatus, status)
		})
	}
}

func TestSalesHandlerRequiresAuth(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := fiber.New()
	h := NewSalesHandler(&stubSalesService{})
	app.Post("/api/sales", middleware.RequireAuth(), h.Record)

	status, _ := doJSON(t, app, "POST", "/api/sales", `{"quantity":1}`, "")
	assert.Equal(t, 401, status)
}
