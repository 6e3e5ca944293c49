package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	jwtpkg "github.com/piresc/pathclear/internal/pkg/jwt"
	"github.com/piresc/pathclear/internal/pkg/models"
	"github.com/piresc/pathclear/internal/utils"
)

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			claims, err := jwtpkg.ValidateToken(parts[1], config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}
			if claims.UserID == "" {
				return utils.UnauthorizedResponse(c, "Invalid token: missing user_id claim")
			}
			if !claims.Role.Valid() {
				return utils.UnauthorizedResponse(c, "Invalid token: unknown role")
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_role", claims.Role)
			SetUserID(c, claims.UserID)

			return next(c)
		}
	}
}

// UserID returns the authenticated user of the request
func UserID(c echo.Context) string {
	id, _ := c.Get("user_id").(string)
	return id
}

// UserRole returns the role of the authenticated user
func UserRole(c echo.Context) models.Role {
	role, _ := c.Get("user_role").(models.Role)
	return role
}
