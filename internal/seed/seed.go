// Package seed loads the bundled dataset the tracker boots from: the process
// tree, the team roster, and the assignment table. The dataset is embedded at
// compile time; there is no external data source.
package seed

import (
	"embed"
	"encoding/json"
	"fmt"
	"time"

	dom "github.com/BenLittle1/orggraph-api/internal/domain"
)

//go:embed data/*.json
var dataFS embed.FS

const dateLayout = "2006-01-02"

type taskJSON struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Status   string   `json:"status"`
	Priority string   `json:"priority"`
	Assignee *string  `json:"assignee"`
	DueDate  *string  `json:"dueDate"`
	Tags     []string `json:"tags,omitempty"`
}

type subcategoryJSON struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Tasks []taskJSON `json:"tasks"`
}

type categoryJSON struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	TotalTasks    int               `json:"totalTasks"`
	Subcategories []subcategoryJSON `json:"subcategories"`
}

type treeJSON struct {
	Categories []categoryJSON `json:"categories"`
}

type memberJSON struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	Department string `json:"department"`
	HireDate   string `json:"hireDate"`
	IsActive   bool   `json:"isActive"`
	Bio        string `json:"bio,omitempty"`
}

type teamJSON struct {
	Members       []memberJSON `json:"members"`
	Departments   []string     `json:"departments"`
	TotalMembers  int          `json:"totalMembers"`
	ActiveMembers int          `json:"activeMembers"`
}

// Roster is the team boundary input: members, department list, and the
// stored totals the source data carries alongside them.
type Roster struct {
	Members       []dom.TeamMember
	Departments   []string
	TotalMembers  int
	ActiveMembers int
}

// Tree parses the embedded process tree. Category totals from the file are
// ignored; the store recomputes them from the subcategories.
func Tree() ([]dom.Category, error) {
	raw, err := dataFS.ReadFile("data/tree.json")
	if err != nil {
		return nil, fmt.Errorf("read tree.json: %w", err)
	}
	var file treeJSON
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse tree.json: %w", err)
	}

	cats := make([]dom.Category, 0, len(file.Categories))
	for _, c := range file.Categories {
		cat := dom.Category{ID: c.ID, Name: c.Name}
		for _, sc := range c.Subcategories {
			sub := dom.Subcategory{ID: sc.ID, Name: sc.Name}
			for _, t := range sc.Tasks {
				task, err := toTask(t)
				if err != nil {
					return nil, fmt.Errorf("category %d task %d: %w", c.ID, t.ID, err)
				}
				sub.Tasks = append(sub.Tasks, task)
			}
			cat.Subcategories = append(cat.Subcategories, sub)
			cat.TotalTasks += len(sub.Tasks)
		}
		cats = append(cats, cat)
	}
	return cats, nil
}

// Team parses the embedded roster.
func Team() (Roster, error) {
	raw, err := dataFS.ReadFile("data/team.json")
	if err != nil {
		return Roster{}, fmt.Errorf("read team.json: %w", err)
	}
	var file teamJSON
	if err := json.Unmarshal(raw, &file); err != nil {
		return Roster{}, fmt.Errorf("parse team.json: %w", err)
	}

	r := Roster{
		Departments:   file.Departments,
		TotalMembers:  file.TotalMembers,
		ActiveMembers: file.ActiveMembers,
	}
	for _, m := range file.Members {
		hired, err := time.Parse(dateLayout, m.HireDate)
		if err != nil {
			return Roster{}, fmt.Errorf("member %s hireDate: %w", m.ID, err)
		}
		r.Members = append(r.Members, dom.TeamMember{
			ID:         m.ID,
			Name:       m.Name,
			Role:       m.Role,
			Email:      m.Email,
			Department: m.Department,
			HireDate:   hired,
			IsActive:   m.IsActive,
			Bio:        m.Bio,
		})
	}
	return r, nil
}

// Assignments parses the embedded member-id → task-id table. Task ids with no
// matching task in the tree are tolerated and ignored by the linking pass.
func Assignments() (map[string][]int64, error) {
	raw, err := dataFS.ReadFile("data/assignments.json")
	if err != nil {
		return nil, fmt.Errorf("read assignments.json: %w", err)
	}
	var table map[string][]int64
	if err := json.Unmarshal(raw, &table); err != nil {
		return nil, fmt.Errorf("parse assignments.json: %w", err)
	}
	return table, nil
}

func toTask(t taskJSON) (dom.Task, error) {
	status := dom.Status(t.Status)
	if !status.Valid() {
		return dom.Task{}, fmt.Errorf("unknown status %q", t.Status)
	}
	priority := dom.Priority(t.Priority)
	if !priority.Valid() {
		return dom.Task{}, fmt.Errorf("unknown priority %q", t.Priority)
	}
	task := dom.Task{
		ID:       t.ID,
		Name:     t.Name,
		Status:   status,
		Priority: priority,
		Assignee: t.Assignee,
		Tags:     t.Tags,
	}
	if t.DueDate != nil && *t.DueDate != "" {
		due, err := time.Parse(dateLayout, *t.DueDate)
		if err != nil {
			return dom.Task{}, fmt.Errorf("dueDate: %w", err)
		}
		task.DueDate = &due
	}
	return task, nil
}
