package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	dom "github.com/BenLittle1/orggraph-api/internal/domain"
	"github.com/BenLittle1/orggraph-api/internal/dto"
	"github.com/BenLittle1/orggraph-api/internal/service"
	"github.com/BenLittle1/orggraph-api/internal/store"
)

const defaultHighPriorityLimit = 5

// TrackerHandler serves the tree, task and category endpoints.
type TrackerHandler struct {
	svc *service.TrackerService
}

// NewTrackerHandler returns a new TrackerHandler.
func NewTrackerHandler(svc *service.TrackerService) *TrackerHandler {
	return &TrackerHandler{svc: svc}
}

// Tree godoc
// @Summary      Full process tree with summary
// @Tags         tree
// @Produce      json
// @Success      200  {object}  dto.TreeResponse
// @Failure      500  {object}  map[string]string
// @Router       /tree [get]
func (h *TrackerHandler) Tree(c *gin.Context) {
	tree, err := h.svc.Tree(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tree)
}

// Summary godoc
// @Summary      Derived counts over the full tree
// @Tags         tree
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Failure      500  {object}  map[string]string
// @Router       /summary [get]
func (h *TrackerHandler) Summary(c *gin.Context) {
	sum, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GetTask godoc
// @Summary      Get a task by ID
// @Tags         tasks
// @Produce      json
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.TaskResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /tasks/{id} [get]
func (h *TrackerHandler) GetTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.TaskByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewAnnotatedTaskResponse(t))
}

// HighPriority godoc
// @Summary      High-priority tasks in tree order
// @Tags         tasks
// @Produce      json
// @Param        limit  query     int  false  "Max items (default 5)"
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      400  {object}  map[string]string
// @Router       /tasks/high-priority [get]
func (h *TrackerHandler) HighPriority(c *gin.Context) {
	limit := defaultHighPriorityLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}
	list := h.svc.HighPriorityTasks(limit)
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: dto.NewAnnotatedTaskResponses(list)})
}

// UpdateTask godoc
// @Summary      Partially update a task (status, priority, due date)
// @Description  Absent or null fields are left unchanged. To clear due_date send the empty string "".
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.UpdateTaskRequest  true  "Partial update"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id} [patch]
func (h *TrackerHandler) UpdateTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	var (
		t   dom.Task
		err error
	)
	applied := false
	if req.Status != nil {
		t, err = h.svc.UpdateTaskStatus(ctx, id, dom.Status(*req.Status))
		applied = true
	}
	if err == nil && req.Priority != nil {
		t, err = h.svc.UpdateTaskPriority(ctx, id, dom.Priority(*req.Priority))
		applied = true
	}
	if err == nil && req.DueDate != nil {
		t, err = h.svc.UpdateTaskDueDate(ctx, id, req.DueDate.Ptr())
		applied = true
	}
	if err != nil {
		respondError(c, err)
		return
	}
	if !applied {
		// Nothing to change: respond with the current task.
		at, err := h.svc.TaskByID(id)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, dto.NewAnnotatedTaskResponse(at))
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskResponse(t))
}

// CreateTask godoc
// @Summary      Create a task under a subcategory
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Subcategory ID"
// @Param        body  body      dto.CreateTaskRequest  true  "Task body"
// @Success      201   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /subcategories/{id}/tasks [post]
func (h *TrackerHandler) CreateTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.AddTask(c.Request.Context(), id, store.NewTask{
		Name:     req.Name,
		Priority: dom.Priority(req.Priority),
		Assignee: req.Assignee,
		DueDate:  req.DueDate.Ptr(),
		Tags:     req.Tags,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewTaskResponse(t))
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateCategoryRequest  true  "Category body"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /categories [post]
func (h *TrackerHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cat, err := h.svc.AddCategory(c.Request.Context(), req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: cat.ID})
}

// CreateSubcategory godoc
// @Summary      Create a subcategory under a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Category ID"
// @Param        body  body      dto.CreateSubcategoryRequest  true  "Subcategory body"
// @Success      201   {object}  dto.CreatedResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /categories/{id}/subcategories [post]
func (h *TrackerHandler) CreateSubcategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.CreateSubcategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sc, err := h.svc.AddSubcategory(c.Request.Context(), id, req.Name)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreatedResponse{ID: sc.ID})
}

// CompleteCategory godoc
// @Summary      Mark every task in a category completed
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  dto.CategoryResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id}/complete [post]
func (h *TrackerHandler) CompleteCategory(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	cat, err := h.svc.MarkCategoryComplete(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCategoryResponse(cat))
}

// CategoryProgress godoc
// @Summary      Completion percentage of a category
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "Category ID"
// @Success      200  {object}  dto.CategoryProgressResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /categories/{id}/progress [get]
func (h *TrackerHandler) CategoryProgress(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	percent, err := h.svc.CategoryProgress(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.CategoryProgressResponse{CategoryID: id, Percent: percent})
}

// Reset godoc
// @Summary      Discard all changes and restore the seed tree
// @Tags         tree
// @Produce      json
// @Success      200  {object}  dto.SummaryResponse
// @Router       /reset [post]
func (h *TrackerHandler) Reset(c *gin.Context) {
	h.svc.Reset(c.Request.Context())
	sum, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sum)
}

func parseID(c *gin.Context, name string) (int64, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrUnknownMember):
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown team member"})
	case errors.Is(err, service.ErrDuplicateCategory):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrEmptyName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
