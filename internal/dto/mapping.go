package dto

import (
	dom "github.com/BenLittle1/orggraph-api/internal/domain"
)

const dateLayout = "2006-01-02"

// NewTaskResponse maps a domain task. Ancestor names are filled only for
// annotated (flat-listing) tasks.
func NewTaskResponse(t dom.Task) TaskResponse {
	out := TaskResponse{
		ID:       t.ID,
		Name:     t.Name,
		Status:   string(t.Status),
		Priority: string(t.Priority),
		Assignee: t.Assignee,
		Tags:     t.Tags,
	}
	if t.DueDate != nil {
		s := t.DueDate.UTC().Format(dateLayout)
		out.DueDate = &s
	}
	return out
}

// NewAnnotatedTaskResponse maps a task together with its ancestor names.
func NewAnnotatedTaskResponse(t dom.AnnotatedTask) TaskResponse {
	out := NewTaskResponse(t.Task)
	out.Category = t.CategoryName
	out.Subcategory = t.SubcategoryName
	return out
}

// NewAnnotatedTaskResponses maps a flat task listing.
func NewAnnotatedTaskResponses(list []dom.AnnotatedTask) []TaskResponse {
	out := make([]TaskResponse, len(list))
	for i := range list {
		out[i] = NewAnnotatedTaskResponse(list[i])
	}
	return out
}

// NewCategoryResponse maps one category subtree.
func NewCategoryResponse(c dom.Category) CategoryResponse {
	out := CategoryResponse{
		ID:            c.ID,
		Name:          c.Name,
		TotalTasks:    c.TotalTasks,
		Subcategories: make([]SubcategoryResponse, len(c.Subcategories)),
	}
	for i, sc := range c.Subcategories {
		sub := SubcategoryResponse{
			ID:    sc.ID,
			Name:  sc.Name,
			Tasks: make([]TaskResponse, len(sc.Tasks)),
		}
		for j, t := range sc.Tasks {
			sub.Tasks[j] = NewTaskResponse(t)
		}
		out.Subcategories[i] = sub
	}
	return out
}

// NewSummaryResponse maps the derived summary.
func NewSummaryResponse(s dom.Summary) SummaryResponse {
	out := SummaryResponse{
		TotalTasks:         s.TotalTasks,
		TotalCategories:    s.TotalCategories,
		TotalSubcategories: s.TotalSubcategories,
		ByStatus:           make(map[string]int, len(s.ByStatus)),
		ByPriority:         make(map[string]int, len(s.ByPriority)),
	}
	for k, v := range s.ByStatus {
		out.ByStatus[string(k)] = v
	}
	for k, v := range s.ByPriority {
		out.ByPriority[string(k)] = v
	}
	return out
}

// NewTreeResponse maps a full snapshot.
func NewTreeResponse(categories []dom.Category, summary dom.Summary) TreeResponse {
	out := TreeResponse{
		Categories: make([]CategoryResponse, len(categories)),
		Summary:    NewSummaryResponse(summary),
	}
	for i := range categories {
		out.Categories[i] = NewCategoryResponse(categories[i])
	}
	return out
}

// NewTeamMemberResponse maps one roster entry.
func NewTeamMemberResponse(m dom.TeamMember) TeamMemberResponse {
	return TeamMemberResponse{
		ID:         m.ID,
		Name:       m.Name,
		Role:       m.Role,
		Email:      m.Email,
		Department: m.Department,
		HireDate:   m.HireDate.UTC().Format(dateLayout),
		IsActive:   m.IsActive,
		Bio:        m.Bio,
	}
}
