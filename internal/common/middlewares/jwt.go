package middlewares

import (
	"net/http"
	"strings"

	"github.com/c14220110/rota-backend/pkg/utils"
	"github.com/labstack/echo/v4"
)

// Definisikan tipe kustom untuk context key
type contextKey string

const (
	ContextKeyClaims contextKey = "claims"
)

// JWTMiddleware memvalidasi header "Authorization: Bearer <token>" dan
// menyimpan *utils.Claims di echo context.
func JWTMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return unauthorized(c, "Authorization header missing")
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return unauthorized(c, "Invalid authorization header")
			}
			claims, err := utils.ValidateJWTToken(secret, parts[1])
			if err != nil {
				return unauthorized(c, "Invalid token: "+err.Error())
			}

			c.Set(string(ContextKeyClaims), claims)
			return next(c)
		}
	}
}

// ClaimsFrom returns the claims stored by JWTMiddleware.
func ClaimsFrom(c echo.Context) (*utils.Claims, bool) {
	claims, ok := c.Get(string(ContextKeyClaims)).(*utils.Claims)
	return claims, ok && claims != nil
}

func unauthorized(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, map[string]interface{}{
		"status":  http.StatusUnauthorized,
		"message": message,
		"data":    nil,
	})
}
