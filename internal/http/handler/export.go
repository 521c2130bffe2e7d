package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UDARAS8/bugtracker/internal/service"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

func (h *ExportHandler) Bugs(c *gin.Context) {
	h.serve(c, h.exportService.Bugs)
}

func (h *ExportHandler) TestCases(c *gin.Context) {
	h.serve(c, h.exportService.TestCases)
}

func (h *ExportHandler) Reports(c *gin.Context) {
	h.serve(c, h.exportService.Reports)
}

type exportFunc func(ctx context.Context, format service.ExportFormat) (*service.ExportFile, error)

func (h *ExportHandler) serve(c *gin.Context, fn exportFunc) {
	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportFormatCSV)))
	if format != service.ExportFormatCSV && format != service.ExportFormatJSON {
		c.JSON(http.StatusBadRequest, gin.H{"error": "format must be csv or json"})
		return
	}

	file, err := fn(c.Request.Context(), format)
	if err != nil {
		respondError(c, err, "failed to export")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+file.Filename+`"`)
	c.Data(http.StatusOK, file.ContentType, file.Body)
}
