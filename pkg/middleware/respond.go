package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Kouaj/Notations-sub000/database"
	"github.com/Kouaj/Notations-sub000/entities"
	userRepo "github.com/Kouaj/Notations-sub000/pkg/user/repository"
)

// Fail maps the storage error taxonomy onto HTTP statuses. Initialization
// failure is the only 503; validation and duplicates stay user-recoverable.
func Fail(c echo.Context, err error) error {
	var ve *entities.ValidationError
	switch {
	case errors.As(err, &ve):
		return c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Error()})
	case errors.Is(err, userRepo.ErrEmailExists):
		return c.JSON(http.StatusConflict, map[string]string{"error": "email already exists"})
	case database.IsNotFound(err):
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	case errors.Is(err, database.ErrUnavailable):
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
