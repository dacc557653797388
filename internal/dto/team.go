package dto

// TeamMemberResponse is one roster entry.
type TeamMemberResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	Email      string `json:"email"`
	Department string `json:"department"`
	HireDate   string `json:"hire_date"`
	IsActive   bool   `json:"is_active"`
	Bio        string `json:"bio,omitempty"`
}

// TeamResponse is the full team view. Totals are computed from the roster,
// not echoed from the source data.
type TeamResponse struct {
	Members       []TeamMemberResponse `json:"members"`
	Departments   []string             `json:"departments"`
	TotalMembers  int                  `json:"total_members"`
	ActiveMembers int                  `json:"active_members"`
}

// MemberProgressResponse is a member's weighted workload completion.
type MemberProgressResponse struct {
	MemberID   string `json:"member_id"`
	Completed  int    `json:"completed"`
	InProgress int    `json:"in_progress"`
	Pending    int    `json:"pending"`
	Total      int    `json:"total"`
	Percent    int    `json:"percent"`
}
