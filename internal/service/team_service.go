package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	dom "github.com/BenLittle1/orggraph-api/internal/domain"
	"github.com/BenLittle1/orggraph-api/internal/store"
)

var ErrUnknownMember = errors.New("unknown team member")

// TeamService exposes the fixed roster and the member-scoped task views. It
// is the only write path that resolves a member id to the display name a
// task's assignee field actually stores.
type TeamService struct {
	members     []dom.TeamMember
	departments []string
	byID        map[string]dom.TeamMember
	store       *store.TreeStore
	tracker     *TrackerService
	log         *zap.Logger
}

// NewTeamService returns a new TeamService over the seeded roster.
func NewTeamService(members []dom.TeamMember, departments []string, s *store.TreeStore, tracker *TrackerService, log *zap.Logger) *TeamService {
	byID := make(map[string]dom.TeamMember, len(members))
	for _, m := range members {
		byID[m.ID] = m
	}
	return &TeamService{
		members:     members,
		departments: departments,
		byID:        byID,
		store:       s,
		tracker:     tracker,
		log:         log,
	}
}

// Members returns the roster in seed order.
func (s *TeamService) Members() []dom.TeamMember {
	return append([]dom.TeamMember(nil), s.members...)
}

// Departments returns the department list.
func (s *TeamService) Departments() []string {
	return append([]string(nil), s.departments...)
}

// ActiveCount returns the number of active members. The stored roster totals
// are not trusted; these are always computed.
func (s *TeamService) ActiveCount() int {
	n := 0
	for _, m := range s.members {
		if m.IsActive {
			n++
		}
	}
	return n
}

// MemberByID returns one roster entry.
func (s *TeamService) MemberByID(id string) (dom.TeamMember, error) {
	m, ok := s.byID[id]
	if !ok {
		return dom.TeamMember{}, ErrUnknownMember
	}
	return m, nil
}

// TasksForMember returns tasks whose assignee matches the member's current
// display name, in tree order.
func (s *TeamService) TasksForMember(id string) ([]dom.AnnotatedTask, error) {
	m, ok := s.byID[id]
	if !ok {
		return nil, ErrUnknownMember
	}
	return s.store.TasksForAssignee(m.Name), nil
}

// MemberProgress returns weighted completion counts for the member's tasks.
func (s *TeamService) MemberProgress(id string) (dom.MemberProgress, error) {
	m, ok := s.byID[id]
	if !ok {
		return dom.MemberProgress{}, ErrUnknownMember
	}
	return s.store.ProgressForAssignee(m.Name), nil
}

// AssignTaskToMember resolves memberID to a display name (nil clears the
// assignment) and delegates to the tracker's assignee update.
func (s *TeamService) AssignTaskToMember(ctx context.Context, taskID int64, memberID *string) (dom.Task, error) {
	var name *string
	if memberID != nil {
		m, ok := s.byID[*memberID]
		if !ok {
			return dom.Task{}, ErrUnknownMember
		}
		name = &m.Name
	}
	t, err := s.tracker.UpdateTaskAssignee(ctx, taskID, name)
	if err != nil {
		return dom.Task{}, err
	}
	if memberID != nil {
		s.log.Info("task assigned", zap.Int64("task_id", taskID), zap.String("member_id", *memberID))
	} else {
		s.log.Info("task unassigned", zap.Int64("task_id", taskID))
	}
	return t, nil
}
