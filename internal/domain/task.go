package domain

import "time"

// Domain entities: бизнес-объекты (истина).
// Не зависят от Gin, Redis и сериализации.

// Status of a single task.
type Status string

const (
	StatusPending    Status = "pending"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
)

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Priority of a single task.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Valid reports whether p is one of the three known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task is a leaf of the process tree. Assignee holds a team member's
// display name (resolved at assignment time), nil when unassigned.
type Task struct {
	ID       int64
	Name     string
	Status   Status
	Priority Priority
	Assignee *string
	DueDate  *time.Time
	Tags     []string
}

// Subcategory owns an ordered list of tasks.
type Subcategory struct {
	ID    int64
	Name  string
	Tasks []Task
}

// Category owns an ordered list of subcategories. TotalTasks is always
// derived from the subcategories, never trusted from input data.
type Category struct {
	ID            int64
	Name          string
	TotalTasks    int
	Subcategories []Subcategory
}

// Summary is derived from the full tree after every mutation. It is never
// patched incrementally.
type Summary struct {
	TotalTasks         int
	TotalCategories    int
	TotalSubcategories int
	ByStatus           map[Status]int
	ByPriority         map[Priority]int
}

// AnnotatedTask is a task together with the names of its ancestors, used by
// flat listings that leave the tree context behind.
type AnnotatedTask struct {
	Task
	CategoryName    string
	SubcategoryName string
}
