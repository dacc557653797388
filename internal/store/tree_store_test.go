package store

import (
	"errors"
	"reflect"
	"testing"
	"time"

	dom "github.com/BenLittle1/orggraph-api/internal/domain"
)

func fixtureTree() []dom.Category {
	return []dom.Category{
		{
			ID:   1,
			Name: "Formation",
			Subcategories: []dom.Subcategory{
				{
					ID:   11,
					Name: "Filings",
					Tasks: []dom.Task{
						{ID: 1, Name: "File certificate", Status: dom.StatusCompleted, Priority: dom.PriorityHigh},
						{ID: 2, Name: "Obtain EIN", Status: dom.StatusPending, Priority: dom.PriorityMedium},
					},
				},
			},
		},
		{
			ID:   2,
			Name: "Finance",
			Subcategories: []dom.Subcategory{
				{
					ID:   21,
					Name: "Banking",
					Tasks: []dom.Task{
						{ID: 3, Name: "Open account", Status: dom.StatusCompleted, Priority: dom.PriorityLow},
						{ID: 4, Name: "Set budget", Status: dom.StatusPending, Priority: dom.PriorityHigh},
					},
				},
			},
		},
	}
}

func fixtureMembers() []dom.TeamMember {
	return []dom.TeamMember{
		{ID: "tm-001", Name: "Alice Gray", Role: "CEO", IsActive: true},
		{ID: "tm-002", Name: "Jack Fan", Role: "Engineer", IsActive: true},
	}
}

func fixtureAssignments() map[string][]int64 {
	// 999 does not exist in the tree and must be ignored.
	return map[string][]int64{
		"tm-001": {1},
		"tm-002": {2, 4, 999},
	}
}

func newFixtureStore() *TreeStore {
	return New(fixtureTree(), fixtureMembers(), fixtureAssignments())
}

// recount walks a snapshot and rebuilds the summary from scratch.
func recount(cats []dom.Category) dom.Summary {
	sum := dom.Summary{
		TotalCategories: len(cats),
		ByStatus: map[dom.Status]int{
			dom.StatusPending: 0, dom.StatusInProgress: 0, dom.StatusCompleted: 0,
		},
		ByPriority: map[dom.Priority]int{
			dom.PriorityHigh: 0, dom.PriorityMedium: 0, dom.PriorityLow: 0,
		},
	}
	for _, c := range cats {
		sum.TotalSubcategories += len(c.Subcategories)
		for _, sc := range c.Subcategories {
			sum.TotalTasks += len(sc.Tasks)
			for _, t := range sc.Tasks {
				sum.ByStatus[t.Status]++
				sum.ByPriority[t.Priority]++
			}
		}
	}
	return sum
}

func TestSeedSummary(t *testing.T) {
	s := newFixtureStore()
	sum := s.Summary()

	if sum.TotalTasks != 4 {
		t.Fatalf("TotalTasks = %d, want 4", sum.TotalTasks)
	}
	if sum.TotalCategories != 2 || sum.TotalSubcategories != 2 {
		t.Fatalf("categories/subcategories = %d/%d, want 2/2", sum.TotalCategories, sum.TotalSubcategories)
	}
	want := map[dom.Status]int{dom.StatusPending: 2, dom.StatusInProgress: 0, dom.StatusCompleted: 2}
	if !reflect.DeepEqual(sum.ByStatus, want) {
		t.Fatalf("ByStatus = %v, want %v", sum.ByStatus, want)
	}

	for _, id := range []int64{1, 2} {
		percent, err := s.CategoryProgress(id)
		if err != nil {
			t.Fatalf("CategoryProgress(%d): %v", id, err)
		}
		if percent != 50 {
			t.Fatalf("CategoryProgress(%d) = %d, want 50", id, percent)
		}
	}
}

func TestSummaryMatchesRecountAfterWrites(t *testing.T) {
	s := newFixtureStore()

	if _, err := s.UpdateTaskStatus(2, dom.StatusInProgress); err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	if _, err := s.UpdateTaskPriority(3, dom.PriorityHigh); err != nil {
		t.Fatalf("UpdateTaskPriority: %v", err)
	}
	if _, err := s.AddTask(21, NewTask{Name: "Hire accountant", Priority: dom.PriorityMedium}); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if _, err := s.MarkCategoryComplete(1); err != nil {
		t.Fatalf("MarkCategoryComplete: %v", err)
	}

	cats, sum := s.Snapshot()
	if want := recount(cats); !reflect.DeepEqual(sum, want) {
		t.Fatalf("summary %+v diverged from recount %+v", sum, want)
	}
	for _, c := range cats {
		n := 0
		for _, sc := range c.Subcategories {
			n += len(sc.Tasks)
		}
		if c.TotalTasks != n {
			t.Fatalf("category %d TotalTasks = %d, want %d", c.ID, c.TotalTasks, n)
		}
	}
}

func TestWritesAgainstUnknownIDs(t *testing.T) {
	s := newFixtureStore()

	if _, err := s.UpdateTaskStatus(404, dom.StatusCompleted); !errors.Is(err, ErrNotFound) {
		t.Fatalf("UpdateTaskStatus err = %v, want ErrNotFound", err)
	}
	if _, err := s.AddTask(404, NewTask{Name: "x", Priority: dom.PriorityLow}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("AddTask err = %v, want ErrNotFound", err)
	}
	if _, err := s.AddSubcategory(404, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("AddSubcategory err = %v, want ErrNotFound", err)
	}
	if _, err := s.MarkCategoryComplete(404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("MarkCategoryComplete err = %v, want ErrNotFound", err)
	}
	if _, err := s.CategoryProgress(404); !errors.Is(err, ErrNotFound) {
		t.Fatalf("CategoryProgress err = %v, want ErrNotFound", err)
	}

	// Failed writes must not disturb the summary.
	if sum := s.Summary(); sum.TotalTasks != 4 {
		t.Fatalf("TotalTasks after failed writes = %d, want 4", sum.TotalTasks)
	}
}

func TestCategoryProgressEmptyCategory(t *testing.T) {
	s := newFixtureStore()
	c := s.AddCategory("Empty")

	percent, err := s.CategoryProgress(c.ID)
	if err != nil {
		t.Fatalf("CategoryProgress: %v", err)
	}
	if percent != 0 {
		t.Fatalf("progress of empty category = %d, want 0", percent)
	}
}

func TestHighPriorityTasks(t *testing.T) {
	s := newFixtureStore()

	all := s.HighPriorityTasks(0)
	if len(all) != 2 {
		t.Fatalf("got %d high-priority tasks, want 2", len(all))
	}
	// Tree-traversal order: task 1 (Formation) before task 4 (Finance).
	if all[0].ID != 1 || all[1].ID != 4 {
		t.Fatalf("order = [%d %d], want [1 4]", all[0].ID, all[1].ID)
	}
	if all[0].CategoryName != "Formation" || all[0].SubcategoryName != "Filings" {
		t.Fatalf("annotation = %q/%q", all[0].CategoryName, all[0].SubcategoryName)
	}
	for _, at := range all {
		if at.Priority != dom.PriorityHigh {
			t.Fatalf("task %d priority = %s", at.ID, at.Priority)
		}
	}

	limited := s.HighPriorityTasks(1)
	if len(limited) != 1 || limited[0].ID != 1 {
		t.Fatalf("limit 1 returned %v", limited)
	}
}

func TestMarkCategoryCompleteIdempotent(t *testing.T) {
	s := newFixtureStore()

	if _, err := s.MarkCategoryComplete(2); err != nil {
		t.Fatalf("first MarkCategoryComplete: %v", err)
	}
	cats1, sum1 := s.Snapshot()

	if _, err := s.MarkCategoryComplete(2); err != nil {
		t.Fatalf("second MarkCategoryComplete: %v", err)
	}
	cats2, sum2 := s.Snapshot()

	if !reflect.DeepEqual(cats1, cats2) || !reflect.DeepEqual(sum1, sum2) {
		t.Fatal("repeating MarkCategoryComplete changed the tree")
	}
}

func TestMintedIDsAreUnique(t *testing.T) {
	s := newFixtureStore()

	seen := map[int64]bool{1: true, 2: true, 3: true, 4: true}
	var last int64
	for i := 0; i < 5; i++ {
		task, err := s.AddTask(11, NewTask{Name: "extra", Priority: dom.PriorityLow})
		if err != nil {
			t.Fatalf("AddTask: %v", err)
		}
		if seen[task.ID] {
			t.Fatalf("task id %d minted twice", task.ID)
		}
		if task.ID <= last {
			t.Fatalf("task ids not increasing: %d after %d", task.ID, last)
		}
		seen[task.ID] = true
		last = task.ID
	}

	c := s.AddCategory("New Category")
	if c.ID <= 2 {
		t.Fatalf("category id %d collides with seed", c.ID)
	}
	sc, err := s.AddSubcategory(c.ID, "New Subcategory")
	if err != nil {
		t.Fatalf("AddSubcategory: %v", err)
	}
	if sc.ID <= 21 {
		t.Fatalf("subcategory id %d collides with seed", sc.ID)
	}
}

func TestNewTasksStartPending(t *testing.T) {
	s := newFixtureStore()
	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	assignee := "Jack Fan"

	task, err := s.AddTask(11, NewTask{
		Name:     "Review filings",
		Priority: dom.PriorityHigh,
		Assignee: &assignee,
		DueDate:  &due,
		Tags:     []string{"legal"},
	})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.Status != dom.StatusPending {
		t.Fatalf("new task status = %s, want pending", task.Status)
	}
	if task.Assignee == nil || *task.Assignee != "Jack Fan" {
		t.Fatalf("assignee = %v", task.Assignee)
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Fatalf("due date = %v", task.DueDate)
	}
}

func TestAssigneeLinking(t *testing.T) {
	s := newFixtureStore()

	at, err := s.TaskByID(2)
	if err != nil {
		t.Fatalf("TaskByID: %v", err)
	}
	if at.Assignee == nil || *at.Assignee != "Jack Fan" {
		t.Fatalf("task 2 assignee = %v, want Jack Fan", at.Assignee)
	}

	at, err = s.TaskByID(3)
	if err != nil {
		t.Fatalf("TaskByID: %v", err)
	}
	if at.Assignee != nil {
		t.Fatalf("task 3 assignee = %q, want unassigned", *at.Assignee)
	}
}

func TestResetRestoresSeedWithAssignees(t *testing.T) {
	s := newFixtureStore()
	before, beforeSum := s.Snapshot()

	if _, err := s.UpdateTaskStatus(2, dom.StatusCompleted); err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	if _, err := s.AddTask(21, NewTask{Name: "temp", Priority: dom.PriorityLow}); err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	s.AddCategory("Scratch")

	s.Reset()

	after, afterSum := s.Snapshot()
	if !reflect.DeepEqual(before, after) {
		t.Fatal("reset tree differs from initial tree")
	}
	if !reflect.DeepEqual(beforeSum, afterSum) {
		t.Fatalf("reset summary %+v differs from initial %+v", afterSum, beforeSum)
	}

	// The linking pass must have been reapplied, and id minting must restart
	// from the seed maximum.
	at, err := s.TaskByID(4)
	if err != nil {
		t.Fatalf("TaskByID: %v", err)
	}
	if at.Assignee == nil || *at.Assignee != "Jack Fan" {
		t.Fatalf("task 4 assignee after reset = %v, want Jack Fan", at.Assignee)
	}
	task, err := s.AddTask(11, NewTask{Name: "post-reset", Priority: dom.PriorityLow})
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.ID != 5 {
		t.Fatalf("first minted id after reset = %d, want 5", task.ID)
	}
}

func TestAssigneeQueries(t *testing.T) {
	s := newFixtureStore()

	tasks := s.TasksForAssignee("Jack Fan")
	if len(tasks) != 2 {
		t.Fatalf("TasksForAssignee returned %d tasks, want 2", len(tasks))
	}
	if tasks[0].ID != 2 || tasks[1].ID != 4 {
		t.Fatalf("order = [%d %d], want [2 4]", tasks[0].ID, tasks[1].ID)
	}

	// Both of Jack's tasks are pending: weighted completion 0%.
	p := s.ProgressForAssignee("Jack Fan")
	if p.Total != 2 || p.Pending != 2 || p.Percent != 0 {
		t.Fatalf("progress = %+v", p)
	}
	if p.Completed+p.InProgress+p.Pending != p.Total {
		t.Fatalf("counts do not sum to total: %+v", p)
	}

	if _, err := s.UpdateTaskStatus(2, dom.StatusInProgress); err != nil {
		t.Fatalf("UpdateTaskStatus: %v", err)
	}
	p = s.ProgressForAssignee("Jack Fan")
	if p.Percent != 25 {
		t.Fatalf("percent = %d, want 25 (one of two in progress)", p.Percent)
	}
	if p.Percent < 0 || p.Percent > 100 {
		t.Fatalf("percent out of range: %d", p.Percent)
	}

	if p := s.ProgressForAssignee("Nobody"); p.Total != 0 || p.Percent != 0 {
		t.Fatalf("unknown assignee progress = %+v, want zeros", p)
	}
}

func TestUpdateAssigneeAndDueDate(t *testing.T) {
	s := newFixtureStore()

	name := "Alice Gray"
	task, err := s.UpdateTaskAssignee(3, &name)
	if err != nil {
		t.Fatalf("UpdateTaskAssignee: %v", err)
	}
	if task.Assignee == nil || *task.Assignee != "Alice Gray" {
		t.Fatalf("assignee = %v", task.Assignee)
	}

	task, err = s.UpdateTaskAssignee(3, nil)
	if err != nil {
		t.Fatalf("clear assignee: %v", err)
	}
	if task.Assignee != nil {
		t.Fatalf("assignee after clear = %q", *task.Assignee)
	}

	due := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	task, err = s.UpdateTaskDueDate(3, &due)
	if err != nil {
		t.Fatalf("UpdateTaskDueDate: %v", err)
	}
	if task.DueDate == nil || !task.DueDate.Equal(due) {
		t.Fatalf("due date = %v", task.DueDate)
	}
	task, err = s.UpdateTaskDueDate(3, nil)
	if err != nil {
		t.Fatalf("clear due date: %v", err)
	}
	if task.DueDate != nil {
		t.Fatalf("due date after clear = %v", task.DueDate)
	}
}

func TestSnapshotIsIsolated(t *testing.T) {
	s := newFixtureStore()

	cats, _ := s.Snapshot()
	cats[0].Name = "mutated"
	cats[0].Subcategories[0].Tasks[0].Status = dom.StatusPending
	if cats[0].Subcategories[0].Tasks[1].Assignee != nil {
		*cats[0].Subcategories[0].Tasks[1].Assignee = "mutated"
	}

	fresh, _ := s.Snapshot()
	if fresh[0].Name != "Formation" {
		t.Fatal("snapshot mutation leaked into store")
	}
	if fresh[0].Subcategories[0].Tasks[0].Status != dom.StatusCompleted {
		t.Fatal("task status mutation leaked into store")
	}
	at, _ := s.TaskByID(2)
	if at.Assignee == nil || *at.Assignee != "Jack Fan" {
		t.Fatal("assignee pointer leaked into store")
	}
}

func TestCategoryNameExists(t *testing.T) {
	s := newFixtureStore()

	if !s.CategoryNameExists("Formation") {
		t.Fatal("exact name not found")
	}
	if !s.CategoryNameExists("  formation ") {
		t.Fatal("trimmed case-insensitive match not found")
	}
	if s.CategoryNameExists("Marketing") {
		t.Fatal("unexpected match")
	}
}
