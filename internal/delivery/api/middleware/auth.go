package middleware

import (
	"strings"

	deliverycontext "ecospot/internal/delivery/context"
	"ecospot/internal/domain/entity"
	domainerrors "ecospot/internal/domain/errors"
	"ecospot/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	bearerPrefix = "Bearer "

	// accessTokenQuery carries the token of WebSocket handshakes, which cannot set headers in browsers.
	accessTokenQuery = "access_token"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
}

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService}
}

// Authenticate validates the access token and stores the principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, ok := extractToken(c)
		if !ok {
			return domainerrors.ErrUnauthorized.WithDetails("missing bearer token")
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return domainerrors.ErrUnauthorized
		}

		deliverycontext.SetUser(c, claims.UserID, claims.Roles)

		return next(c)
	}
}

// RequireRole checks that the authenticated user has role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !deliverycontext.GetRoles(c).Has(role) {
				return domainerrors.ErrForbidden
			}

			return next(c)
		}
	}
}

func extractToken(c echo.Context) (string, bool) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header != "" {
		token := strings.TrimPrefix(header, bearerPrefix)
		if token == header || strings.TrimSpace(token) == "" {
			return "", false
		}

		return token, true
	}

	if token := c.QueryParam(accessTokenQuery); token != "" {
		return token, true
	}

	return "", false
}
