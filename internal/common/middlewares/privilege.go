package middlewares

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireGrade memeriksa apakah grade di klaim JWT termasuk salah satu
// grade yang diizinkan. Harus dipasang setelah JWTMiddleware.
func RequireGrade(allowed ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := ClaimsFrom(c)
			if !ok {
				return unauthorized(c, "Missing or invalid JWT claims")
			}
			for _, g := range allowed {
				if claims.Grade == g {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]interface{}{
				"status":  http.StatusForbidden,
				"message": "grade " + claims.Grade + " is not allowed to perform this action",
				"data":    nil,
			})
		}
	}
}
