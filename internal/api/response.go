package api

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/AzmathBegum/finance-tracker/internal/apperr"
)

// errorJSON maps domain errors to status codes in one place:
// validation and wrong-password -> 400, auth -> 401, not-found -> 404,
// anything else -> 500 with the detail kept out of the response.
func errorJSON(c echo.Context, err error) error {
	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindInvalidCredentials:
		return c.JSON(400, map[string]string{"error": err.Error()})
	case apperr.KindAuth:
		return c.JSON(401, map[string]string{"error": err.Error()})
	case apperr.KindNotFound:
		return c.JSON(404, map[string]string{"error": err.Error()})
	default:
		log.Error().Err(err).Str("path", c.Path()).Msg("Internal error")
		return c.JSON(500, map[string]string{"error": "internal server error"})
	}
}
