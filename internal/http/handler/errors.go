package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UDARAS8/bugtracker/common/id"
	"github.com/UDARAS8/bugtracker/internal/service"
)

// parseID reads a snowflake path parameter, writing a 400 when it is malformed.
func parseID(c *gin.Context, param string) (int64, bool) {
	v, err := id.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return v, true
}

// respondError maps service sentinels to status codes. Anything else is logged and
// reported as a 500 with msg.
func respondError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrBugNotFound),
		errors.Is(err, service.ErrTestCaseNotFound),
		errors.Is(err, service.ErrReportNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNoData):
		c.JSON(http.StatusNotFound, gin.H{"error": "No data to export"})
	case errors.Is(err, service.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
	case errors.Is(err, service.ErrEmptyUpdate):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAIUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(c.Request.Context(), msg, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
	}
}

func bindError(c *gin.Context, err error) {
	slog.WarnContext(c.Request.Context(), "invalid request", "error", err)
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
