// Package graph projects the containment tree into a node/edge structure for
// force-directed visualization. The projection is pure and total: every
// category, subcategory and task yields exactly one node, every entity one
// edge to its direct parent, plus a synthetic root.
package graph

import (
	"strconv"

	dom "github.com/BenLittle1/orggraph-api/internal/domain"
)

// Hierarchy levels carried on every node.
const (
	LevelRoot        = 0
	LevelCategory    = 1
	LevelSubcategory = 2
	LevelTask        = 3
)

// Node kinds for the back-reference to the source entity.
const (
	KindRoot        = "root"
	KindCategory    = "category"
	KindSubcategory = "subcategory"
	KindTask        = "task"
)

// Ref points back at the source entity of a node. The root has no entity id.
type Ref struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id,omitempty"`
}

// Node is one visualization node. Completion is 1.0/0.5/0.0 for tasks by
// status and the arithmetic mean of direct children for containers. Weight is
// the contained task count (1 for a task itself).
type Node struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Level      int     `json:"level"`
	Completion float64 `json:"completion"`
	Weight     int     `json:"weight"`
	Ref        Ref     `json:"ref"`
}

// Edge links a child node to its direct parent. The tree never produces
// cross-links.
type Edge struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Stats holds aggregate task counts by status for the projected tree.
type Stats struct {
	TotalPending    int `json:"total_pending"`
	TotalInProgress int `json:"total_in_progress"`
	TotalCompleted  int `json:"total_completed"`
}

// Graph is the full projection result.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
	Stats Stats  `json:"stats"`
}

// Project builds the graph for a tree snapshot. Idempotent: the same tree
// always yields the same graph.
func Project(rootName string, categories []dom.Category) Graph {
	g := Graph{}

	// Root goes first; its completion is filled in after the categories are
	// known, since it averages over them.
	g.Nodes = append(g.Nodes, Node{
		ID:    "root",
		Name:  rootName,
		Level: LevelRoot,
		Ref:   Ref{Kind: KindRoot},
	})
	rootIdx := 0

	var rootSum float64
	totalTasks := 0

	for _, c := range categories {
		catNode := Node{
			ID:    nodeID(KindCategory, c.ID),
			Name:  c.Name,
			Level: LevelCategory,
			Ref:   Ref{Kind: KindCategory, ID: c.ID},
		}
		catIdx := len(g.Nodes)
		g.Nodes = append(g.Nodes, catNode)
		g.Edges = append(g.Edges, Edge{Source: "root", Target: catNode.ID})

		var catSum float64
		catTasks := 0

		for _, sc := range c.Subcategories {
			subNode := Node{
				ID:    nodeID(KindSubcategory, sc.ID),
				Name:  sc.Name,
				Level: LevelSubcategory,
				Ref:   Ref{Kind: KindSubcategory, ID: sc.ID},
			}
			subIdx := len(g.Nodes)
			g.Nodes = append(g.Nodes, subNode)
			g.Edges = append(g.Edges, Edge{Source: catNode.ID, Target: subNode.ID})

			var subSum float64
			for _, t := range sc.Tasks {
				completion := taskCompletion(t.Status)
				g.Nodes = append(g.Nodes, Node{
					ID:         nodeID(KindTask, t.ID),
					Name:       t.Name,
					Level:      LevelTask,
					Completion: completion,
					Weight:     1,
					Ref:        Ref{Kind: KindTask, ID: t.ID},
				})
				g.Edges = append(g.Edges, Edge{Source: subNode.ID, Target: nodeID(KindTask, t.ID)})
				subSum += completion

				switch t.Status {
				case dom.StatusCompleted:
					g.Stats.TotalCompleted++
				case dom.StatusInProgress:
					g.Stats.TotalInProgress++
				default:
					g.Stats.TotalPending++
				}
			}

			g.Nodes[subIdx].Weight = len(sc.Tasks)
			g.Nodes[subIdx].Completion = mean(subSum, len(sc.Tasks))
			catSum += g.Nodes[subIdx].Completion
			catTasks += len(sc.Tasks)
		}

		g.Nodes[catIdx].Weight = catTasks
		g.Nodes[catIdx].Completion = mean(catSum, len(c.Subcategories))
		rootSum += g.Nodes[catIdx].Completion
		totalTasks += catTasks
	}

	g.Nodes[rootIdx].Weight = totalTasks
	g.Nodes[rootIdx].Completion = mean(rootSum, len(categories))
	return g
}

func taskCompletion(s dom.Status) float64 {
	switch s {
	case dom.StatusCompleted:
		return 1.0
	case dom.StatusInProgress:
		return 0.5
	default:
		return 0.0
	}
}

// mean of a sum over n children; 0 for an empty container.
func mean(sum float64, n int) float64 {
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

func nodeID(kind string, id int64) string {
	return kind + "-" + strconv.FormatInt(id, 10)
}
