package router

import (
	"github.com/gin-gonic/gin"

	"github.com/UDARAS8/bugtracker/internal/http/handler"
)

func TestCaseRouter(rg *gin.RouterGroup, h *handler.TestCaseHandler, requireSession gin.HandlerFunc) {
	rg.GET("", h.List)
	rg.GET("/categories", h.Categories)
	rg.GET("/:id", h.Get)

	authed := rg.Group("", requireSession)
	{
		authed.POST("", h.Create)
		authed.PUT("/:id/status", h.UpdateStatus)
	}
}
