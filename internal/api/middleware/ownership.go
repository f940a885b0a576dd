package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/estately/listings-api/internal/core/ports"
)

// Ownership loads the property named by the :id path param and verifies the
// authenticated user owns it. Existence is confirmed before ownership is
// evaluated, so an absent property yields 404, not 403. Must be composed
// after Auth and after any role gate.
func Ownership(properties ports.PropertyRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, ok := UserFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}

			property, err := properties.FindByID(c.Request().Context(), c.Param("id"))
			if err != nil {
				return err
			}
			if property.Owner != user.ID {
				return echo.NewHTTPError(http.StatusForbidden, "you do not own this property")
			}
			return next(c)
		}
	}
}
