package middleware

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/sployal/fine-back-sub000/internal/pkg/models"
	"github.com/sployal/fine-back-sub000/internal/utils"
)

// AuthMiddleware verifies Supabase-issued bearer tokens. Tokens are HS256
// JWTs signed with the project secret; the subject claim carries the user id.
func AuthMiddleware(config models.AuthConfig) echo.MiddlewareFunc {
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

			token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
				if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
				}
				return []byte(config.JWTSecret), nil
			})
			if err != nil || !token.Valid {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token claims")
			}

			sub, ok := claims["sub"]
			if !ok {
				return utils.UnauthorizedResponse(c, "Invalid token: missing sub claim")
			}

			c.Set("user_id", fmt.Sprintf("%v", sub))
			if role, ok := claims["role"]; ok {
				c.Set("user_role", fmt.Sprintf("%v", role))
			}

			return next(c)
		}
	}
}

// UserID extracts the authenticated user id from the Echo context
func UserID(c echo.Context) string {
	if uid, ok := c.Get("user_id").(string); ok {
		return uid
	}
	return ""
}
