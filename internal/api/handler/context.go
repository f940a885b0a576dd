package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estately/listings-api/internal/api/middleware"
	"github.com/estately/listings-api/internal/core/domain"
)

// currentUser extracts the identity attached by the Auth middleware and
// performs a fast-fail check before any service call: its presence proves
// the middleware ran on this route.
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.UserFrom(c)
	if !ok || user.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
