package router

import (
	"github.com/gin-gonic/gin"

	"github.com/UDARAS8/bugtracker/internal/http/handler"
	"github.com/UDARAS8/bugtracker/internal/http/middleware"
	"github.com/UDARAS8/bugtracker/internal/service"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
	DB           handler.Pinger // optional, used by /health
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	healthHandler := handler.NewHealthHandler(cfg.DB)
	router.GET("/health", healthHandler.Health)

	auth := services.Auth()
	authHandler := handler.NewAuthHandler(auth, cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	requireSession := middleware.RequireSession(auth)

	v1 := router.Group("/api/v1", middleware.OptionalSession(auth))
	{
		BugRouter(v1.Group("/bugs"), handler.NewBugHandler(services.Bugs()), requireSession)
		TestCaseRouter(v1.Group("/test-cases"), handler.NewTestCaseHandler(services.TestCases()), requireSession)
		ReportRouter(v1.Group("/reports"), handler.NewReportHandler(services.Reports()))
		ExportRouter(v1.Group("/export"), handler.NewExportHandler(services.Export()))
		AnalysisRouter(v1.Group("/ai"), handler.NewAnalysisHandler(services.Analysis()), requireSession)
	}
}
