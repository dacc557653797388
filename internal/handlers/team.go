package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BenLittle1/orggraph-api/internal/dto"
	"github.com/BenLittle1/orggraph-api/internal/service"
)

// TeamHandler serves the roster and member-scoped views.
type TeamHandler struct {
	svc *service.TeamService
}

// NewTeamHandler returns a new TeamHandler.
func NewTeamHandler(svc *service.TeamService) *TeamHandler {
	return &TeamHandler{svc: svc}
}

// Team godoc
// @Summary      Team roster with departments
// @Tags         team
// @Produce      json
// @Success      200  {object}  dto.TeamResponse
// @Router       /team [get]
func (h *TeamHandler) Team(c *gin.Context) {
	members := h.svc.Members()
	out := dto.TeamResponse{
		Members:       make([]dto.TeamMemberResponse, len(members)),
		Departments:   h.svc.Departments(),
		TotalMembers:  len(members),
		ActiveMembers: h.svc.ActiveCount(),
	}
	for i, m := range members {
		out.Members[i] = dto.NewTeamMemberResponse(m)
	}
	c.JSON(http.StatusOK, out)
}

// Member godoc
// @Summary      Get a team member by ID
// @Tags         team
// @Produce      json
// @Param        id   path      string  true  "Member ID"
// @Success      200  {object}  dto.TeamMemberResponse
// @Failure      404  {object}  map[string]string
// @Router       /team/{id} [get]
func (h *TeamHandler) Member(c *gin.Context) {
	m, err := h.svc.MemberByID(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTeamMemberResponse(m))
}

// MemberTasks godoc
// @Summary      Tasks assigned to a team member
// @Tags         team
// @Produce      json
// @Param        id   path      string  true  "Member ID"
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      404  {object}  map[string]string
// @Router       /team/{id}/tasks [get]
func (h *TeamHandler) MemberTasks(c *gin.Context) {
	list, err := h.svc.TasksForMember(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: dto.NewAnnotatedTaskResponses(list)})
}

// MemberProgress godoc
// @Summary      Weighted completion for a team member
// @Tags         team
// @Produce      json
// @Param        id   path      string  true  "Member ID"
// @Success      200  {object}  dto.MemberProgressResponse
// @Failure      404  {object}  map[string]string
// @Router       /team/{id}/progress [get]
func (h *TeamHandler) MemberProgress(c *gin.Context) {
	id := c.Param("id")
	p, err := h.svc.MemberProgress(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MemberProgressResponse{
		MemberID:   id,
		Completed:  p.Completed,
		InProgress: p.InProgress,
		Pending:    p.Pending,
		Total:      p.Total,
		Percent:    p.Percent,
	})
}

// AssignTask godoc
// @Summary      Assign or unassign a task by team member ID
// @Tags         team
// @Accept       json
// @Produce      json
// @Param        id    path      int  true  "Task ID"
// @Param        body  body      dto.AssignTaskRequest  true  "member_id, null to clear"
// @Success      200   {object}  dto.TaskResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /tasks/{id}/assignee [put]
func (h *TeamHandler) AssignTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.svc.AssignTaskToMember(c.Request.Context(), id, req.MemberID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskResponse(t))
}
