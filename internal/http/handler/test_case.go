package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UDARAS8/bugtracker/internal/http/dto"
	"github.com/UDARAS8/bugtracker/internal/http/middleware"
	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/service"
)

type TestCaseHandler struct {
	testCaseService service.TestCaseService
}

func NewTestCaseHandler(testCaseService service.TestCaseService) *TestCaseHandler {
	return &TestCaseHandler{testCaseService: testCaseService}
}

func (h *TestCaseHandler) List(c *gin.Context) {
	var q dto.ListTestCasesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	tcs, err := h.testCaseService.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		respondError(c, err, "failed to list test cases")
		return
	}
	c.JSON(http.StatusOK, tcs)
}

func (h *TestCaseHandler) Get(c *gin.Context) {
	tcID, ok := parseID(c, "id")
	if !ok {
		return
	}

	tc, err := h.testCaseService.Get(c.Request.Context(), tcID)
	if err != nil {
		respondError(c, err, "failed to get test case")
		return
	}
	c.JSON(http.StatusOK, tc)
}

func (h *TestCaseHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateTestCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	tc, err := h.testCaseService.Create(ctx, middleware.GetUser(ctx), req.ToInput())
	if err != nil {
		respondError(c, err, "failed to create test case")
		return
	}
	c.JSON(http.StatusCreated, tc)
}

func (h *TestCaseHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	tcID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateTestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	tc, err := h.testCaseService.UpdateStatus(ctx, middleware.GetUser(ctx), tcID, model.TestStatus(req.Status))
	if err != nil {
		respondError(c, err, "failed to update test status")
		return
	}
	c.JSON(http.StatusOK, tc)
}

func (h *TestCaseHandler) Categories(c *gin.Context) {
	categories, err := h.testCaseService.ListCategories(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list categories")
		return
	}
	c.JSON(http.StatusOK, categories)
}
