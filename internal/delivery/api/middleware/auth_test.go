package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "ecospot/internal/delivery/context"
	"ecospot/internal/domain/entity"
	"ecospot/internal/domain/service"
	mockSvc "ecospot/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func setupAuthEcho(t *testing.T) (*echo.Echo, *mockSvc.MockTokenService) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	auth := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokenSvc})

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(newDiscardLogger()).HandleHTTPError
	e.GET("/me", func(c echo.Context) error {
		userID, _ := deliverycontext.GetUserID(c)

		return c.String(http.StatusOK, userID.String())
	}, auth.Authenticate)
	e.GET("/admin", func(c echo.Context) error { return c.NoContent(http.StatusOK) },
		auth.Authenticate, auth.RequireRole(entity.Role("admin")))

	return e, tokenSvc
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name     string
		target   string
		header   string
		setup    func(m *mockSvc.MockTokenService)
		wantCode int
	}{
		{
			name:   "bearer header",
			target: "/me",
			header: "Bearer good",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:   "query token for websocket handshakes",
			target: "/me?access_token=good",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateAccessToken("good").Return(&service.Claims{UserID: userID}, nil)
			},
			wantCode: http.StatusOK,
		},
		{name: "missing token", target: "/me", setup: func(*mockSvc.MockTokenService) {}, wantCode: http.StatusUnauthorized},
		{name: "not bearer", target: "/me", header: "Basic abc", setup: func(*mockSvc.MockTokenService) {}, wantCode: http.StatusUnauthorized},
		{
			name:   "invalid token",
			target: "/me",
			header: "Bearer bad",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateAccessToken("bad").Return(nil, errors.New("expired"))
			},
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, tokenSvc := setupAuthEcho(t)
			tt.setup(tokenSvc)

			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, userID.String(), rec.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	e, tokenSvc := setupAuthEcho(t)
	tokenSvc.EXPECT().ValidateAccessToken("good").
		Return(&service.Claims{UserID: uuid.New(), Roles: entity.Roles{entity.RoleUser}.ToStrings()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer good")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
