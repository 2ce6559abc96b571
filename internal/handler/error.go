package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/snnyvrz/shelfshare-catalog/internal/service"
	"github.com/snnyvrz/shelfshare-catalog/internal/validation"
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

// writeServiceError maps domain errors to responses. Anything unknown is
// logged and reported as a 500 with failCode.
func writeServiceError(c *gin.Context, err error, failCode, failMessage string) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, validation.ValidationFailed(verr.FieldError()))
	case errors.Is(err, service.ErrBookNotFound):
		writeError(c, http.StatusNotFound, "BOOK_NOT_FOUND", "book not found")
	case errors.Is(err, service.ErrMissingParams):
		writeError(c, http.StatusBadRequest, "MISSING_PARAMETERS", service.ErrMissingParams.Error())
	case errors.Is(err, service.ErrNoValidFields):
		writeError(c, http.StatusBadRequest, "NO_VALID_FIELDS", service.ErrNoValidFields.Error())
	default:
		zerolog.Ctx(c.Request.Context()).Error().
			Err(err).
			Str("code", failCode).
			Msg(failMessage)
		_ = c.Error(err)
		writeError(c, http.StatusInternalServerError, failCode, failMessage)
	}
}
