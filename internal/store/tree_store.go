// Package store holds the canonical in-memory process tree. It is the single
// source of truth for categories, subcategories and tasks; every mutation
// recomputes the derived summary from scratch before readers can observe it.
package store

import (
	"errors"
	"math"
	"strings"
	"sync"
	"time"

	dom "github.com/BenLittle1/orggraph-api/internal/domain"
)

// ErrNotFound is returned by writes and lookups against an id that does not
// exist in the tree.
var ErrNotFound = errors.New("not found")

// NewTask carries the caller-supplied fields of a task to be created.
type NewTask struct {
	Name     string
	Priority dom.Priority
	Assignee *string
	DueDate  *time.Time
	Tags     []string
}

// TreeStore is the memory-resident tree behind a single RW lock. Readers get
// deep copies; writers replace fields in place and recount the summary before
// releasing the lock, so a snapshot never pairs a tree with a stale summary.
type TreeStore struct {
	mu         sync.RWMutex
	categories []dom.Category
	summary    dom.Summary

	// Pristine seed inputs, kept so Reset can re-run the same pipeline a
	// fresh boot runs, including the assignee linking pass.
	seed        []dom.Category
	members     []dom.TeamMember
	assignments map[string][]int64

	nextTaskID int64
	nextCatID  int64
	nextSubID  int64
}

// New builds a store from the seed tree, the roster and the assignment table.
// Assignment entries pointing at unknown task ids are ignored.
func New(categories []dom.Category, members []dom.TeamMember, assignments map[string][]int64) *TreeStore {
	s := &TreeStore{
		seed:        cloneCategories(categories),
		members:     members,
		assignments: assignments,
	}
	s.initLocked()
	return s
}

// initLocked rebuilds the working tree from the seed: clone, link assignees,
// recount totals, reset id counters. Callers must hold the write lock (or be
// the constructor).
func (s *TreeStore) initLocked() {
	s.categories = cloneCategories(s.seed)
	s.linkAssigneesLocked()
	s.recountLocked()

	s.nextCatID, s.nextSubID, s.nextTaskID = 1, 1, 1
	for _, c := range s.categories {
		if c.ID >= s.nextCatID {
			s.nextCatID = c.ID + 1
		}
		for _, sc := range c.Subcategories {
			if sc.ID >= s.nextSubID {
				s.nextSubID = sc.ID + 1
			}
			for _, t := range sc.Tasks {
				if t.ID >= s.nextTaskID {
					s.nextTaskID = t.ID + 1
				}
			}
		}
	}
}

// linkAssigneesLocked resolves the assignment table to display names. Runs
// once per init; afterwards assignee changes only flow through writes.
func (s *TreeStore) linkAssigneesLocked() {
	nameByTask := make(map[int64]string)
	for _, m := range s.members {
		for _, taskID := range s.assignments[m.ID] {
			nameByTask[taskID] = m.Name
		}
	}
	s.eachTaskLocked(func(t *dom.Task, _, _ string) {
		if name, ok := nameByTask[t.ID]; ok {
			n := name
			t.Assignee = &n
		}
	})
}

// Snapshot returns a deep copy of the tree together with the summary.
func (s *TreeStore) Snapshot() ([]dom.Category, dom.Summary) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneCategories(s.categories), cloneSummary(s.summary)
}

// Summary returns a copy of the current derived counts.
func (s *TreeStore) Summary() dom.Summary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSummary(s.summary)
}

// TaskByID returns the task with ancestor names, or ErrNotFound.
func (s *TreeStore) TaskByID(id int64) (dom.AnnotatedTask, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for ci := range s.categories {
		c := &s.categories[ci]
		for si := range c.Subcategories {
			sc := &c.Subcategories[si]
			for ti := range sc.Tasks {
				if sc.Tasks[ti].ID == id {
					return dom.AnnotatedTask{
						Task:            cloneTask(sc.Tasks[ti]),
						CategoryName:    c.Name,
						SubcategoryName: sc.Name,
					}, nil
				}
			}
		}
	}
	return dom.AnnotatedTask{}, ErrNotFound
}

// UpdateTaskStatus replaces the task's status and recounts the summary.
func (s *TreeStore) UpdateTaskStatus(id int64, status dom.Status) (dom.Task, error) {
	return s.updateTask(id, func(t *dom.Task) { t.Status = status })
}

// UpdateTaskPriority replaces the task's priority.
func (s *TreeStore) UpdateTaskPriority(id int64, priority dom.Priority) (dom.Task, error) {
	return s.updateTask(id, func(t *dom.Task) { t.Priority = priority })
}

// UpdateTaskAssignee replaces the task's assignee display name. nil clears it.
func (s *TreeStore) UpdateTaskAssignee(id int64, assignee *string) (dom.Task, error) {
	return s.updateTask(id, func(t *dom.Task) {
		if assignee == nil {
			t.Assignee = nil
			return
		}
		n := *assignee
		t.Assignee = &n
	})
}

// UpdateTaskDueDate replaces the task's due date. nil clears it.
func (s *TreeStore) UpdateTaskDueDate(id int64, due *time.Time) (dom.Task, error) {
	return s.updateTask(id, func(t *dom.Task) {
		if due == nil {
			t.DueDate = nil
			return
		}
		d := *due
		t.DueDate = &d
	})
}

func (s *TreeStore) updateTask(id int64, apply func(*dom.Task)) (dom.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := s.findTaskLocked(id)
	if t == nil {
		return dom.Task{}, ErrNotFound
	}
	apply(t)
	s.recountLocked()
	return cloneTask(*t), nil
}

// AddTask appends a task under the given subcategory with a freshly minted
// id. Returns ErrNotFound when the subcategory does not exist.
func (s *TreeStore) AddTask(subcategoryID int64, in NewTask) (dom.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ci := range s.categories {
		c := &s.categories[ci]
		for si := range c.Subcategories {
			sc := &c.Subcategories[si]
			if sc.ID != subcategoryID {
				continue
			}
			t := dom.Task{
				ID:       s.nextTaskID,
				Name:     in.Name,
				Status:   dom.StatusPending,
				Priority: in.Priority,
				Tags:     append([]string(nil), in.Tags...),
			}
			if in.Assignee != nil {
				n := *in.Assignee
				t.Assignee = &n
			}
			if in.DueDate != nil {
				d := *in.DueDate
				t.DueDate = &d
			}
			s.nextTaskID++
			sc.Tasks = append(sc.Tasks, t)
			s.recountLocked()
			return cloneTask(t), nil
		}
	}
	return dom.Task{}, ErrNotFound
}

// AddCategory appends an empty category and returns it with its new id.
func (s *TreeStore) AddCategory(name string) dom.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := dom.Category{ID: s.nextCatID, Name: name}
	s.nextCatID++
	s.categories = append(s.categories, c)
	s.recountLocked()
	return c
}

// AddSubcategory appends an empty subcategory under the given category.
func (s *TreeStore) AddSubcategory(categoryID int64, name string) (dom.Subcategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ci := range s.categories {
		c := &s.categories[ci]
		if c.ID != categoryID {
			continue
		}
		sc := dom.Subcategory{ID: s.nextSubID, Name: name}
		s.nextSubID++
		c.Subcategories = append(c.Subcategories, sc)
		s.recountLocked()
		return sc, nil
	}
	return dom.Subcategory{}, ErrNotFound
}

// MarkCategoryComplete sets every task in the category to completed.
// Idempotent: repeating it leaves the tree unchanged.
func (s *TreeStore) MarkCategoryComplete(categoryID int64) (dom.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ci := range s.categories {
		c := &s.categories[ci]
		if c.ID != categoryID {
			continue
		}
		for si := range c.Subcategories {
			sc := &c.Subcategories[si]
			for ti := range sc.Tasks {
				sc.Tasks[ti].Status = dom.StatusCompleted
			}
		}
		s.recountLocked()
		return cloneCategory(*c), nil
	}
	return dom.Category{}, ErrNotFound
}

// Reset discards all mutations and re-runs the boot pipeline: seed clone,
// assignee linking, recount, id counters.
func (s *TreeStore) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.initLocked()
}

// CategoryProgress returns the rounded percentage of completed tasks in the
// category. A category with no tasks is 0% complete, not a division by zero.
func (s *TreeStore) CategoryProgress(categoryID int64) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.ID != categoryID {
			continue
		}
		total, completed := 0, 0
		for _, sc := range c.Subcategories {
			for _, t := range sc.Tasks {
				total++
				if t.Status == dom.StatusCompleted {
					completed++
				}
			}
		}
		if total == 0 {
			return 0, nil
		}
		return int(math.Round(100 * float64(completed) / float64(total))), nil
	}
	return 0, ErrNotFound
}

// HighPriorityTasks returns high-priority tasks in tree-traversal order,
// annotated with ancestor names. limit <= 0 means no limit.
func (s *TreeStore) HighPriorityTasks(limit int) []dom.AnnotatedTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []dom.AnnotatedTask
	s.eachTaskLocked(func(t *dom.Task, catName, subName string) {
		if t.Priority != dom.PriorityHigh {
			return
		}
		if limit > 0 && len(out) >= limit {
			return
		}
		out = append(out, dom.AnnotatedTask{
			Task:            cloneTask(*t),
			CategoryName:    catName,
			SubcategoryName: subName,
		})
	})
	return out
}

// TasksForAssignee returns tasks whose assignee matches name exactly.
func (s *TreeStore) TasksForAssignee(name string) []dom.AnnotatedTask {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []dom.AnnotatedTask
	s.eachTaskLocked(func(t *dom.Task, catName, subName string) {
		if t.Assignee == nil || *t.Assignee != name {
			return
		}
		out = append(out, dom.AnnotatedTask{
			Task:            cloneTask(*t),
			CategoryName:    catName,
			SubcategoryName: subName,
		})
	})
	return out
}

// ProgressForAssignee returns weighted completion for one assignee name:
// completed counts 1.0, in progress 0.5, pending 0.0.
func (s *TreeStore) ProgressForAssignee(name string) dom.MemberProgress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var p dom.MemberProgress
	s.eachTaskLocked(func(t *dom.Task, _, _ string) {
		if t.Assignee == nil || *t.Assignee != name {
			return
		}
		p.Total++
		switch t.Status {
		case dom.StatusCompleted:
			p.Completed++
		case dom.StatusInProgress:
			p.InProgress++
		default:
			p.Pending++
		}
	})
	if p.Total > 0 {
		weighted := float64(p.Completed) + 0.5*float64(p.InProgress)
		p.Percent = int(math.Round(100 * weighted / float64(p.Total)))
	}
	return p
}

// CategoryNameExists reports whether a category with the given name already
// exists (case-insensitive, trimmed).
func (s *TreeStore) CategoryNameExists(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	want := strings.ToLower(strings.TrimSpace(name))
	for _, c := range s.categories {
		if strings.ToLower(strings.TrimSpace(c.Name)) == want {
			return true
		}
	}
	return false
}

// findTaskLocked returns a pointer into the live tree, nil if absent.
// Callers must hold the write lock.
func (s *TreeStore) findTaskLocked(id int64) *dom.Task {
	for ci := range s.categories {
		c := &s.categories[ci]
		for si := range c.Subcategories {
			sc := &c.Subcategories[si]
			for ti := range sc.Tasks {
				if sc.Tasks[ti].ID == id {
					return &sc.Tasks[ti]
				}
			}
		}
	}
	return nil
}

// eachTaskLocked visits every task in tree order: category, then
// subcategory, then task order. Callers must hold at least the read lock.
func (s *TreeStore) eachTaskLocked(visit func(t *dom.Task, catName, subName string)) {
	for ci := range s.categories {
		c := &s.categories[ci]
		for si := range c.Subcategories {
			sc := &c.Subcategories[si]
			for ti := range sc.Tasks {
				visit(&sc.Tasks[ti], c.Name, sc.Name)
			}
		}
	}
}

// recountLocked recomputes category totals and the summary by a full pass
// over the tree. Full recount over a few hundred tasks is cheaper than
// getting incremental updates wrong.
func (s *TreeStore) recountLocked() {
	sum := dom.Summary{
		TotalCategories: len(s.categories),
		ByStatus: map[dom.Status]int{
			dom.StatusPending:    0,
			dom.StatusInProgress: 0,
			dom.StatusCompleted:  0,
		},
		ByPriority: map[dom.Priority]int{
			dom.PriorityHigh:   0,
			dom.PriorityMedium: 0,
			dom.PriorityLow:    0,
		},
	}
	for ci := range s.categories {
		c := &s.categories[ci]
		c.TotalTasks = 0
		sum.TotalSubcategories += len(c.Subcategories)
		for si := range c.Subcategories {
			sc := &c.Subcategories[si]
			c.TotalTasks += len(sc.Tasks)
			sum.TotalTasks += len(sc.Tasks)
			for ti := range sc.Tasks {
				sum.ByStatus[sc.Tasks[ti].Status]++
				sum.ByPriority[sc.Tasks[ti].Priority]++
			}
		}
	}
	s.summary = sum
}
