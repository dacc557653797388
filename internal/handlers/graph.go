package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BenLittle1/orggraph-api/internal/service"
)

// GraphHandler serves the visualization projection of the tree.
type GraphHandler struct {
	svc *service.TrackerService
}

// NewGraphHandler returns a new GraphHandler.
func NewGraphHandler(svc *service.TrackerService) *GraphHandler {
	return &GraphHandler{svc: svc}
}

// Graph godoc
// @Summary      Node/edge projection of the tree for visualization
// @Tags         graph
// @Produce      json
// @Success      200  {object}  graph.Graph
// @Failure      500  {object}  map[string]string
// @Router       /graph [get]
func (h *GraphHandler) Graph(c *gin.Context) {
	g, err := h.svc.Graph(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, g)
}
