package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	dom "github.com/BenLittle1/orggraph-api/internal/domain"
	"github.com/BenLittle1/orggraph-api/internal/store"
)

func newTestServices(t *testing.T) (*TrackerService, *TeamService) {
	t.Helper()
	cats := []dom.Category{
		{
			ID:   1,
			Name: "Formation",
			Subcategories: []dom.Subcategory{
				{
					ID:   11,
					Name: "Filings",
					Tasks: []dom.Task{
						{ID: 1, Name: "File certificate", Status: dom.StatusPending, Priority: dom.PriorityHigh},
						{ID: 2, Name: "Obtain EIN", Status: dom.StatusCompleted, Priority: dom.PriorityMedium},
					},
				},
			},
		},
	}
	members := []dom.TeamMember{
		{ID: "tm-001", Name: "Alice Gray", IsActive: true},
		{ID: "tm-002", Name: "Jack Fan", IsActive: true},
	}
	st := store.New(cats, members, map[string][]int64{"tm-001": {1}})
	log := zap.NewNop()
	tracker := NewTrackerService(st, nil, log, "Business Process")
	team := NewTeamService(members, []string{"Legal"}, st, tracker, log)
	return tracker, team
}

func TestAddCategoryValidation(t *testing.T) {
	tracker, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := tracker.AddCategory(ctx, "   "); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("blank name err = %v, want ErrEmptyName", err)
	}
	if _, err := tracker.AddCategory(ctx, " formation "); !errors.Is(err, ErrDuplicateCategory) {
		t.Fatalf("duplicate err = %v, want ErrDuplicateCategory", err)
	}
	c, err := tracker.AddCategory(ctx, "Finance")
	if err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	if c.Name != "Finance" || c.ID == 0 {
		t.Fatalf("created category = %+v", c)
	}
}

func TestAddTaskValidation(t *testing.T) {
	tracker, _ := newTestServices(t)
	ctx := context.Background()

	if _, err := tracker.AddTask(ctx, 11, store.NewTask{Name: "  "}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("blank name err = %v, want ErrEmptyName", err)
	}
	if _, err := tracker.AddTask(ctx, 999, store.NewTask{Name: "Orphan", Priority: dom.PriorityLow}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown subcategory err = %v, want ErrNotFound", err)
	}
	task, err := tracker.AddTask(ctx, 11, store.NewTask{Name: "Adopt bylaws", Priority: dom.PriorityLow})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.Status != dom.StatusPending {
		t.Fatalf("new task status = %s, want pending", task.Status)
	}
}

func TestTaskByIDMapsNotFound(t *testing.T) {
	tracker, _ := newTestServices(t)
	if _, err := tracker.TaskByID(999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	got, err := tracker.TaskByID(1)
	if err != nil {
		t.Fatalf("TaskByID: %v", err)
	}
	if got.CategoryName != "Formation" || got.SubcategoryName != "Filings" {
		t.Fatalf("ancestors = %q/%q", got.CategoryName, got.SubcategoryName)
	}
}

func TestTreeAndGraphWithoutCache(t *testing.T) {
	tracker, _ := newTestServices(t)
	ctx := context.Background()

	tree, err := tracker.Tree(ctx)
	if err != nil {
		t.Fatalf("Tree: %v", err)
	}
	if tree.Summary.TotalTasks != 2 {
		t.Fatalf("total tasks = %d, want 2", tree.Summary.TotalTasks)
	}

	g, err := tracker.Graph(ctx)
	if err != nil {
		t.Fatalf("Graph: %v", err)
	}
	// root + category + subcategory + 2 tasks
	if len(g.Nodes) != 5 {
		t.Fatalf("graph nodes = %d, want 5", len(g.Nodes))
	}
	if g.Nodes[0].Name != "Business Process" {
		t.Fatalf("root name = %q", g.Nodes[0].Name)
	}
}

func TestAssignTaskToMemberResolvesName(t *testing.T) {
	tracker, team := newTestServices(t)
	ctx := context.Background()

	id := "tm-002"
	task, err := team.AssignTaskToMember(ctx, 2, &id)
	if err != nil {
		t.Fatalf("AssignTaskToMember: %v", err)
	}
	if task.Assignee == nil || *task.Assignee != "Jack Fan" {
		t.Fatalf("assignee = %v, want Jack Fan", task.Assignee)
	}

	unknown := "tm-999"
	if _, err := team.AssignTaskToMember(ctx, 2, &unknown); !errors.Is(err, ErrUnknownMember) {
		t.Fatalf("unknown member err = %v, want ErrUnknownMember", err)
	}

	task, err = team.AssignTaskToMember(ctx, 2, nil)
	if err != nil {
		t.Fatalf("unassign: %v", err)
	}
	if task.Assignee != nil {
		t.Fatalf("assignee = %q after clearing, want nil", *task.Assignee)
	}

	got, err := tracker.TaskByID(2)
	if err != nil {
		t.Fatalf("TaskByID: %v", err)
	}
	if got.Assignee != nil {
		t.Fatal("cleared assignment must persist in the store")
	}
}

func TestMemberProgressWeights(t *testing.T) {
	tracker, team := newTestServices(t)
	ctx := context.Background()

	// tm-001 holds task 1 (pending). Move it to in_progress: 0.5/1 -> 50%.
	if _, err := tracker.UpdateTaskStatus(ctx, 1, dom.StatusInProgress); err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	p, err := team.MemberProgress("tm-001")
	if err != nil {
		t.Fatalf("MemberProgress: %v", err)
	}
	if p.Total != 1 || p.InProgress != 1 || p.Percent != 50 {
		t.Fatalf("progress = %+v, want 1 in_progress at 50%%", p)
	}

	if _, err := team.MemberProgress("tm-999"); !errors.Is(err, ErrUnknownMember) {
		t.Fatalf("unknown member err = %v, want ErrUnknownMember", err)
	}
}
