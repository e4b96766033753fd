package validation

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
)

// BadRequest writes the standard 400 response for a failed validation,
// including field-level detail when err is an *Errors.
func BadRequest(c echo.Context, err error) error {
	var verr *Errors
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, map[string]any{
			"error":  "validation failed",
			"fields": verr.Fields(),
		})
	}
	return echo.NewHTTPError(http.StatusBadRequest, err.Error())
}
