package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/UDARAS8/bugtracker/internal/http/dto"
	"github.com/UDARAS8/bugtracker/internal/http/middleware"
	"github.com/UDARAS8/bugtracker/internal/model"
	"github.com/UDARAS8/bugtracker/internal/service"
)

type BugHandler struct {
	bugService service.BugService
}

func NewBugHandler(bugService service.BugService) *BugHandler {
	return &BugHandler{bugService: bugService}
}

func (h *BugHandler) List(c *gin.Context) {
	var q dto.ListBugsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	bugs, err := h.bugService.List(c.Request.Context(), q.ToFilter())
	if err != nil {
		respondError(c, err, "failed to list bugs")
		return
	}
	c.JSON(http.StatusOK, bugs)
}

func (h *BugHandler) Get(c *gin.Context) {
	bugID, ok := parseID(c, "id")
	if !ok {
		return
	}

	bug, err := h.bugService.Get(c.Request.Context(), bugID)
	if err != nil {
		respondError(c, err, "failed to get bug")
		return
	}
	c.JSON(http.StatusOK, bug)
}

func (h *BugHandler) Search(c *gin.Context) {
	var q dto.SearchBugsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		bindError(c, err)
		return
	}

	bugs, err := h.bugService.Search(c.Request.Context(), q.Term, q.StatusFilter())
	if err != nil {
		respondError(c, err, "failed to search bugs")
		return
	}
	c.JSON(http.StatusOK, bugs)
}

func (h *BugHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateBugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	bug, err := h.bugService.Create(ctx, middleware.GetUser(ctx), req.ToInput())
	if err != nil {
		respondError(c, err, "failed to create bug")
		return
	}
	c.JSON(http.StatusCreated, bug)
}

func (h *BugHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	bugID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBugRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	bug, err := h.bugService.Update(ctx, middleware.GetUser(ctx), bugID, req.ToModel())
	if err != nil {
		respondError(c, err, "failed to update bug")
		return
	}
	c.JSON(http.StatusOK, bug)
}

func (h *BugHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()

	bugID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdateBugStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	bug, err := h.bugService.UpdateStatus(ctx, middleware.GetUser(ctx), bugID, model.BugStatus(req.Status))
	if err != nil {
		respondError(c, err, "failed to update bug status")
		return
	}
	c.JSON(http.StatusOK, bug)
}

func (h *BugHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	bugID, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.bugService.Delete(ctx, middleware.GetUser(ctx), bugID); err != nil {
		respondError(c, err, "failed to delete bug")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BugHandler) Assignees(c *gin.Context) {
	assignees, err := h.bugService.ListAssignees(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to list assignees")
		return
	}
	c.JSON(http.StatusOK, assignees)
}

func (h *BugHandler) Stats(c *gin.Context) {
	stats, err := h.bugService.Stats(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to compute stats")
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *BugHandler) Duplicates(c *gin.Context) {
	groups, err := h.bugService.DetectDuplicates(c.Request.Context())
	if err != nil {
		respondError(c, err, "failed to detect duplicates")
		return
	}
	c.JSON(http.StatusOK, groups)
}
