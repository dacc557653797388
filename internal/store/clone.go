package store

import (
	dom "github.com/BenLittle1/orggraph-api/internal/domain"
)

// Deep copies keep the store's internals out of reach of readers. Tasks carry
// two pointer fields and a slice, so a shallow copy is not enough.

func cloneTask(t dom.Task) dom.Task {
	out := t
	if t.Assignee != nil {
		a := *t.Assignee
		out.Assignee = &a
	}
	if t.DueDate != nil {
		d := *t.DueDate
		out.DueDate = &d
	}
	if t.Tags != nil {
		out.Tags = append([]string(nil), t.Tags...)
	}
	return out
}

func cloneSubcategory(sc dom.Subcategory) dom.Subcategory {
	out := dom.Subcategory{ID: sc.ID, Name: sc.Name}
	if sc.Tasks != nil {
		out.Tasks = make([]dom.Task, len(sc.Tasks))
		for i := range sc.Tasks {
			out.Tasks[i] = cloneTask(sc.Tasks[i])
		}
	}
	return out
}

func cloneCategory(c dom.Category) dom.Category {
	out := dom.Category{ID: c.ID, Name: c.Name, TotalTasks: c.TotalTasks}
	if c.Subcategories != nil {
		out.Subcategories = make([]dom.Subcategory, len(c.Subcategories))
		for i := range c.Subcategories {
			out.Subcategories[i] = cloneSubcategory(c.Subcategories[i])
		}
	}
	return out
}

func cloneCategories(cats []dom.Category) []dom.Category {
	out := make([]dom.Category, len(cats))
	for i := range cats {
		out[i] = cloneCategory(cats[i])
	}
	return out
}

func cloneSummary(s dom.Summary) dom.Summary {
	out := s
	out.ByStatus = make(map[dom.Status]int, len(s.ByStatus))
	for k, v := range s.ByStatus {
		out.ByStatus[k] = v
	}
	out.ByPriority = make(map[dom.Priority]int, len(s.ByPriority))
	for k, v := range s.ByPriority {
		out.ByPriority[k] = v
	}
	return out
}
