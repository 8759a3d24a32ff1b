package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/anyulbade/noctus-rates-api/internal/apperrors"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"detalle,omitempty"`
}

func MapError(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Error: err.Error()}
	case errors.Is(err, apperrors.ErrNoData):
		return http.StatusServiceUnavailable, ErrorResponse{Error: err.Error()}
	}

	log.Error().Err(err).Msg("upstream request failed")
	return http.StatusInternalServerError, ErrorResponse{
		Error:   "failed to fetch spreadsheet data",
		Details: err.Error(),
	}
}

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 && !c.Writer.Written() {
			err := c.Errors.Last().Err
			status, resp := MapError(err)
			c.JSON(status, resp)
		}
	}
}
