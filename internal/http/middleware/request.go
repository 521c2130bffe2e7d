package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/UDARAS8/bugtracker/common/logger"
)

// Logger tags the request context with the bug, test case or report the route
// addresses, then writes one access line per request. The line carries the
// session of an authenticated caller; user_id comes from the log fields.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		route := c.FullPath()

		if fields, ok := resourceFields(route, c.Param("id")); ok {
			c.Request = c.Request.WithContext(logger.WithLogFields(c.Request.Context(), fields))
		}

		c.Next()

		// Session middleware replaces the request, so read the context afterwards.
		ctx := c.Request.Context()
		status := c.Writer.Status()

		attrs := []any{
			"method", c.Request.Method,
			"route", route,
			"path", c.Request.URL.Path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if GetUser(ctx) != nil {
			attrs = append(attrs, "session_id", GetSessionID(ctx))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, "errors", c.Errors.String())
		}

		switch {
		case status >= 500:
			slog.ErrorContext(ctx, "request failed", attrs...)
		case status >= 400:
			slog.WarnContext(ctx, "request error", attrs...)
		case route == "/health":
			slog.DebugContext(ctx, "request", attrs...)
		default:
			slog.InfoContext(ctx, "request", attrs...)
		}
	}
}

// Recovery turns a handler panic into a 500. The panic is logged with the
// request's log fields so the bug or report being served is on the record.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				slog.ErrorContext(ctx, "panic recovered",
					"error", err,
					"method", c.Request.Method,
					"route", c.FullPath(),
					"stack", string(debug.Stack()),
				)

				if c.Writer.Written() {
					c.Abort()
					return
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// resourceFields maps a matched route such as /api/v1/bugs/:id to the log
// field for its id. Malformed ids are left to the handler to reject.
func resourceFields(route, rawID string) (logger.LogFields, bool) {
	if rawID == "" {
		return logger.LogFields{}, false
	}
	id, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil {
		return logger.LogFields{}, false
	}

	switch {
	case strings.Contains(route, "/bugs/:id"):
		return logger.LogFields{BugID: &id}, true
	case strings.Contains(route, "/test-cases/:id"):
		return logger.LogFields{TestCaseID: &id}, true
	case strings.Contains(route, "/reports/:id"):
		return logger.LogFields{ReportID: &id}, true
	}
	return logger.LogFields{}, false
}
