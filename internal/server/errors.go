package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fxdesk/portal/pkg/errs"
	"github.com/fxdesk/portal/pkg/models"
)

// ErrorResponse is the error envelope returned by every failing endpoint.
type ErrorResponse struct {
	Status    int               `json:"status"`
	Message   string            `json:"message"`
	Timestamp models.LocalTime  `json:"timestamp" swaggertype:"string"`
	Errors    map[string]string `json:"errors,omitempty"`
}

func newErrorResponse(status int, message string, fields map[string]string) ErrorResponse {
	return ErrorResponse{
		Status:    status,
		Message:   message,
		Timestamp: models.NewLocalTime(time.Now()),
		Errors:    fields,
	}
}

// respondError maps a typed failure to the HTTP envelope. NotFound is a 400
// because a dangling quote id is a client input error; Conflict is a 409.
// Anything unclassified is logged and surfaced as a generic 500 so internal
// detail never reaches the client.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var appErr *errs.Error
	if !errors.As(err, &appErr) {
		appErr = errs.Internal(err)
	}

	switch errs.KindOf(err) {
	case errs.KindValidation:
		c.JSON(http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, appErr.Message, appErr.Fields))
	case errs.KindNotFound:
		c.JSON(http.StatusBadRequest, newErrorResponse(http.StatusBadRequest, appErr.Message, nil))
	case errs.KindConflict:
		c.JSON(http.StatusConflict, newErrorResponse(http.StatusConflict, appErr.Message, nil))
	default:
		logger.Error("request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		c.JSON(http.StatusInternalServerError,
			newErrorResponse(http.StatusInternalServerError, "An unexpected error occurred", nil))
	}
}

func respondValidation(c *gin.Context, fields map[string]string) {
	c.JSON(http.StatusBadRequest,
		newErrorResponse(http.StatusBadRequest, "Validation failed", fields))
}
