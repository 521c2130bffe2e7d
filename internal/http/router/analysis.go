package router

import (
	"github.com/gin-gonic/gin"

	"github.com/UDARAS8/bugtracker/internal/http/handler"
)

// AnalysisRouter mounts the assistant operations. All of them need a session.
func AnalysisRouter(rg *gin.RouterGroup, h *handler.AnalysisHandler, requireSession gin.HandlerFunc) {
	rg.Use(requireSession)
	rg.POST("/bugs/:id/analyze", h.AnalyzeBug)
	rg.POST("/bugs/:id/suggest-assignee", h.SuggestAssignee)
	rg.POST("/bugs/:id/summary", h.Summarize)
	rg.POST("/scan", h.ScanAllBugs)
	rg.POST("/reports", h.GenerateReport)
	rg.POST("/test-cases/suggest", h.SuggestTestCases)
}
