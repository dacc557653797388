package domain

import "time"

// TeamMember is an independent roster entry. Tasks reference members only by
// display name through Task.Assignee.
type TeamMember struct {
	ID         string
	Name       string
	Role       string
	Email      string
	Department string
	HireDate   time.Time
	IsActive   bool
	Bio        string
}

// MemberProgress holds per-member workload counts. Percent is a weighted
// completion: completed 1.0, in progress 0.5, pending 0.0.
type MemberProgress struct {
	Completed  int
	InProgress int
	Pending    int
	Total      int
	Percent    int
}
