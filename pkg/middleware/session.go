package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	userRepo "github.com/Kouaj/Notations-sub000/pkg/user/repository"
)

// Session resolves the persisted current-user singleton into the request
// context. This slot is the sole session mechanism — no token, no expiry;
// logout clears it.
func Session(users userRepo.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			u, err := users.Current(c.Request().Context())
			if err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
			}
			if u == nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "not logged in"})
			}
			c.Set("uid", u.ID)
			c.Set("user", u)
			return next(c)
		}
	}
}
