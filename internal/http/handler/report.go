package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/UDARAS8/bugtracker/internal/service"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) List(c *gin.Context) {
	reports, err := h.reportService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list reports")
		return
	}
	c.JSON(http.StatusOK, reports)
}

func (h *ReportHandler) Get(c *gin.Context) {
	reportID, ok := parseID(c, "id")
	if !ok {
		return
	}

	report, err := h.reportService.Get(c.Request.Context(), reportID)
	if err != nil {
		respondError(c, err, "failed to get report")
		return
	}
	c.JSON(http.StatusOK, report)
}

// Markdown serves the report as a markdown download.
func (h *ReportHandler) Markdown(c *gin.Context) {
	reportID, ok := parseID(c, "id")
	if !ok {
		return
	}

	content, err := h.reportService.Markdown(c.Request.Context(), reportID)
	if err != nil {
		respondError(c, err, "failed to render report")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="qa-report-`+strconv.FormatInt(reportID, 10)+`.md"`)
	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(content))
}
