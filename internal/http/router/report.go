package router

import (
	"github.com/gin-gonic/gin"

	"github.com/UDARAS8/bugtracker/internal/http/handler"
)

func ReportRouter(rg *gin.RouterGroup, h *handler.ReportHandler) {
	rg.GET("", h.List)
	rg.GET("/:id", h.Get)
	rg.GET("/:id/markdown", h.Markdown)
}

func ExportRouter(rg *gin.RouterGroup, h *handler.ExportHandler) {
	rg.GET("/bugs", h.Bugs)
	rg.GET("/test-cases", h.TestCases)
	rg.GET("/reports", h.Reports)
}
