package router

import (
	"github.com/gin-gonic/gin"

	"github.com/UDARAS8/bugtracker/internal/http/handler"
)

// BugRouter mounts bug routes. Reads are public; writes need a session.
func BugRouter(rg *gin.RouterGroup, h *handler.BugHandler, requireSession gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/search", h.Search)
	rg.GET("/assignees", h.Assignees)
	rg.GET("/stats", h.Stats)
	rg.GET("/duplicates", h.Duplicates)
	rg.GET("/:id", h.Get)

	authed := rg.Group("", requireSession)
	{
		authed.POST("", h.Create)
		authed.PATCH("/:id", h.Update)
		authed.PUT("/:id/status", h.UpdateStatus)
		authed.DELETE("/:id", h.Delete)
	}
}
