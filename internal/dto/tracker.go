package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// DueDate parses due_date from JSON as either date-only ("2006-01-02") or
// RFC3339. Date-only is stored as start of that day in UTC. An empty string
// clears the date.
type DueDate struct{ t *time.Time }

func (d *DueDate) UnmarshalJSON(data []byte) error {
	var raw *string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == nil || strings.TrimSpace(*raw) == "" {
		d.t = nil
		return nil
	}
	s := strings.TrimSpace(*raw)
	layouts := []string{
		"2006-01-02", // date only
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			if layout == "2006-01-02" {
				parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
			}
			d.t = &parsed
			return nil
		}
	}
	return fmt.Errorf("due_date: use date (YYYY-MM-DD) or RFC3339 datetime")
}

// Ptr returns *time.Time for use in service/domain.
func (d DueDate) Ptr() *time.Time { return d.t }

// UpdateTaskRequest is a partial task update. Absent fields are left as-is.
// due_date: a JSON null behaves like an absent field (unchanged, the pointer
// stays nil); the empty string "" is the explicit clear. This differs from
// PUT /tasks/{id}/assignee, where null clears — that endpoint replaces the
// whole assignment, this one patches.
type UpdateTaskRequest struct {
	Status   *string  `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	Priority *string  `json:"priority" binding:"omitempty,oneof=high medium low"`
	DueDate  *DueDate `json:"due_date"` // nil = не менять, "" = очистить
}

// CreateTaskRequest is the JSON body for POST /subcategories/{id}/tasks.
// New tasks always start pending.
type CreateTaskRequest struct {
	Name     string   `json:"name" binding:"required,min=1,max=120"`
	Priority string   `json:"priority" binding:"required,oneof=high medium low"`
	Assignee *string  `json:"assignee" binding:"omitempty,max=120"`
	DueDate  DueDate  `json:"due_date"` // optional: "2026-03-01" or RFC3339
	Tags     []string `json:"tags" binding:"omitempty,dive,min=1,max=40"`
}

// CreateCategoryRequest is the JSON body for POST /categories.
type CreateCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=120"`
}

// CreateSubcategoryRequest is the JSON body for POST /categories/{id}/subcategories.
type CreateSubcategoryRequest struct {
	Name string `json:"name" binding:"required,min=1,max=120"`
}

// AssignTaskRequest sets or clears a task's assignee by team member id.
// member_id null (or absent) clears the assignment.
type AssignTaskRequest struct {
	MemberID *string `json:"member_id" binding:"omitempty,min=1,max=40"`
}

type TaskResponse struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	Priority    string   `json:"priority"`
	Assignee    *string  `json:"assignee"`
	DueDate     *string  `json:"due_date"`
	Tags        []string `json:"tags,omitempty"`
	Category    string   `json:"category,omitempty"`
	Subcategory string   `json:"subcategory,omitempty"`
}

type SubcategoryResponse struct {
	ID    int64          `json:"id"`
	Name  string         `json:"name"`
	Tasks []TaskResponse `json:"tasks"`
}

type CategoryResponse struct {
	ID            int64                 `json:"id"`
	Name          string                `json:"name"`
	TotalTasks    int                   `json:"total_tasks"`
	Subcategories []SubcategoryResponse `json:"subcategories"`
}

type SummaryResponse struct {
	TotalTasks         int            `json:"total_tasks"`
	TotalCategories    int            `json:"total_categories"`
	TotalSubcategories int            `json:"total_subcategories"`
	ByStatus           map[string]int `json:"by_status"`
	ByPriority         map[string]int `json:"by_priority"`
}

type TreeResponse struct {
	Categories []CategoryResponse `json:"categories"`
	Summary    SummaryResponse    `json:"summary"`
}

type ListTasksResponse struct {
	Items []TaskResponse `json:"items"`
}

type CategoryProgressResponse struct {
	CategoryID int64 `json:"category_id"`
	Percent    int   `json:"percent"`
}

// CreatedResponse returns a freshly minted id so the caller can select the
// new entity immediately.
type CreatedResponse struct {
	ID int64 `json:"id"`
}
