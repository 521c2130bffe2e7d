package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UDARAS8/bugtracker/internal/http/dto"
	"github.com/UDARAS8/bugtracker/internal/http/middleware"
	"github.com/UDARAS8/bugtracker/internal/service"
)

type AnalysisHandler struct {
	analysisService service.AnalysisService
}

func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

func (h *AnalysisHandler) AnalyzeBug(c *gin.Context) {
	ctx := c.Request.Context()

	bugID, ok := parseID(c, "id")
	if !ok {
		return
	}

	analysis, err := h.analysisService.AnalyzeBug(ctx, middleware.GetUser(ctx), bugID)
	if err != nil {
		respondError(c, err, "failed to analyze bug")
		return
	}
	c.JSON(http.StatusOK, dto.AnalysisResponse{Analysis: analysis})
}

func (h *AnalysisHandler) ScanAllBugs(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.analysisService.ScanAllBugs(ctx, middleware.GetUser(ctx))
	if err != nil {
		respondError(c, err, "failed to scan bugs")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AnalysisHandler) SuggestAssignee(c *gin.Context) {
	ctx := c.Request.Context()

	bugID, ok := parseID(c, "id")
	if !ok {
		return
	}

	result, err := h.analysisService.SuggestAssigneeAndStatus(ctx, middleware.GetUser(ctx), bugID)
	if err != nil {
		respondError(c, err, "failed to suggest assignee")
		return
	}
	if !result.OK() {
		c.JSON(http.StatusOK, dto.RawAssigneeSuggestion{RawSuggestion: result.Raw})
		return
	}
	c.JSON(http.StatusOK, result.Parsed)
}

func (h *AnalysisHandler) Summarize(c *gin.Context) {
	ctx := c.Request.Context()

	bugID, ok := parseID(c, "id")
	if !ok {
		return
	}

	summary, err := h.analysisService.GenerateBugSummary(ctx, middleware.GetUser(ctx), bugID)
	if err != nil {
		respondError(c, err, "failed to summarize bug")
		return
	}
	c.JSON(http.StatusOK, dto.SummaryResponse{Summary: summary})
}

func (h *AnalysisHandler) GenerateReport(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.analysisService.GenerateQAReport(ctx, middleware.GetUser(ctx))
	if err != nil {
		respondError(c, err, "failed to generate report")
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *AnalysisHandler) SuggestTestCases(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.SuggestTestCasesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	result, err := h.analysisService.SuggestTestCases(ctx, middleware.GetUser(ctx), req.Feature, req.Description)
	if err != nil {
		respondError(c, err, "failed to suggest test cases")
		return
	}
	if !result.OK() {
		c.JSON(http.StatusOK, dto.RawTestCaseSuggestions{RawSuggestions: result.Raw})
		return
	}
	c.JSON(http.StatusOK, result.Parsed)
}
