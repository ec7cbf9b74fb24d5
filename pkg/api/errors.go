package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/suiteops/suitepilot/pkg/services"
)

// mapServiceError maps service-layer errors to an HTTP status and message.
func mapServiceError(err error) (int, string) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		return http.StatusBadRequest, validErr.Error()
	}
	switch {
	case errors.Is(err, services.ErrNotFound):
		return http.StatusNotFound, "resource not found"
	case errors.Is(err, services.ErrInvalidTransition):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrConflict):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrFileLocked):
		return http.StatusConflict, err.Error()
	case errors.Is(err, services.ErrNotPermitted):
		return http.StatusForbidden, "operation requires administrative privilege"
	case errors.Is(err, services.ErrInvalidInput):
		return http.StatusBadRequest, err.Error()
	}

	slog.Error("Unexpected service error", "error", err)
	return http.StatusInternalServerError, "internal server error"
}

func serviceError(c *gin.Context, err error) {
	status, msg := mapServiceError(err)
	c.JSON(status, gin.H{"error": msg})
}
