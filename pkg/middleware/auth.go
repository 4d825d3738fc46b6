package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"agrorent-api/pkg/contextkeys"
	apperrors "agrorent-api/pkg/errors"
	"agrorent-api/pkg/service"
	"agrorent-api/pkg/utils"
)

type AuthMiddleware struct {
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtSvc,
		logger:     logger,
	}
}

// Auth requires a valid bearer token and puts the user id and email into
// the request context for ownership checks downstream.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.resolve(c)
		if err != nil {
			m.logger.Warn("autenticação recusada", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}
		m.inject(c, claims)
		return next(c)
	}
}

// OptionalAuth resolves the identity when an Authorization header is
// present but lets anonymous requests through. A header that is present yet
// invalid is still rejected, so callers cannot half-authenticate.
func (m *AuthMiddleware) OptionalAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			return next(c)
		}
		claims, err := m.resolve(c)
		if err != nil {
			m.logger.Warn("token opcional inválido", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}
		m.inject(c, claims)
		return next(c)
	}
}

func (m *AuthMiddleware) resolve(c echo.Context) (*service.JwtCustomClaim, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, apperrors.ErrEmptyAuthHeader
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperrors.ErrInvalidAuthHeader
	}

	return m.jwtService.ValidateToken(parts[1])
}

func (m *AuthMiddleware) inject(c echo.Context, claims *service.JwtCustomClaim) {
	ctx := c.Request().Context()
	ctx = context.WithValue(ctx, contextkeys.UserIDKey, claims.Subject)
	ctx = context.WithValue(ctx, contextkeys.UserEmailKey, claims.Email)
	c.SetRequest(c.Request().WithContext(ctx))
}
