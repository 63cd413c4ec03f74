package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"taller-system/pkg/contextkeys"
	apperrors "taller-system/pkg/errors"
	"taller-system/pkg/service"
	"taller-system/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	cookieName string
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, cookieName string, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{jwtService: jwtSvc, cookieName: cookieName, logger: logger}
}

// Auth resolves the session token (HttpOnly cookie set at login, or a Bearer
// header for non-browser clients) and stores the identity in the request
// context. Downstream code reads it via utils.GetSessionFromCtx.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized)
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			m.logger.Warn("session token rejected", zap.Error(err))
			return utils.ErrorResponse(c, err)
		}

		ctx := c.Request().Context()
		ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.UserID)
		ctx = context.WithValue(ctx, contextkeys.UserRoleKey, claims.Role)
		ctx = context.WithValue(ctx, contextkeys.BranchIDKey, claims.BranchID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireRoles gates a route group to the given roles. The role set is fixed
// (admin, tecnico, ventas), so a plain claim check is enough.
func (m *AuthMiddleware) RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			session, err := utils.GetSessionFromCtx(c.Request().Context())
			if err != nil {
				return utils.ErrorResponse(c, apperrors.ErrUnauthorized)
			}
			for _, role := range roles {
				if session.Role == role {
					return next(c)
				}
			}
			m.logger.Warn("role not allowed for route",
				zap.String("role", session.Role),
				zap.String("path", c.Path()),
			)
			return utils.ErrorResponse(c, apperrors.ErrForbidden)
		}
	}
}

func (m *AuthMiddleware) extractToken(c echo.Context) string {
	if cookie, err := c.Cookie(m.cookieName); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	authHeader := c.Request().Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}
