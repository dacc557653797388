package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/BenLittle1/orggraph-api/internal/cache"
	dom "github.com/BenLittle1/orggraph-api/internal/domain"
	"github.com/BenLittle1/orggraph-api/internal/dto"
	"github.com/BenLittle1/orggraph-api/internal/graph"
	"github.com/BenLittle1/orggraph-api/internal/metrics"
	"github.com/BenLittle1/orggraph-api/internal/store"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrEmptyName         = errors.New("name must not be empty")
	ErrDuplicateCategory = errors.New("category name already exists")
)

// TrackerService sits between the HTTP edge and the tree store: it validates
// input, maps snapshots to response shapes, and keeps the Redis cache
// coherent with the store across writes.
type TrackerService struct {
	store    *store.TreeStore
	cache    *cache.SnapshotCache
	log      *zap.Logger
	rootName string
	sf       singleflight.Group
}

// NewTrackerService creates a TrackerService. If c is nil, caching is
// disabled and every read renders from a fresh snapshot.
func NewTrackerService(s *store.TreeStore, c *cache.SnapshotCache, log *zap.Logger, rootName string) *TrackerService {
	return &TrackerService{store: s, cache: c, log: log, rootName: rootName}
}

// Tree returns the full tree plus summary, cache-aside.
func (s *TrackerService) Tree(ctx context.Context) (dto.TreeResponse, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("tree", func() (interface{}, error) {
			if cached, err := s.cache.GetTree(ctx); err == nil && cached != nil {
				metrics.IncrementCacheLookup("tree", "hit")
				return *cached, nil
			} else if err != nil {
				metrics.IncrementCacheLookup("tree", "error")
				s.log.Warn("tree cache read failed", zap.Error(err))
			} else {
				metrics.IncrementCacheLookup("tree", "miss")
			}
			out := s.renderTree()
			if err := s.cache.SetTree(ctx, out); err != nil {
				s.log.Warn("tree cache write failed", zap.Error(err))
			}
			return out, nil
		})
		if err != nil {
			return dto.TreeResponse{}, err
		}
		return v.(dto.TreeResponse), nil
	}
	return s.renderTree(), nil
}

// Summary returns the derived counts, cache-aside.
func (s *TrackerService) Summary(ctx context.Context) (dto.SummaryResponse, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("summary", func() (interface{}, error) {
			if cached, err := s.cache.GetSummary(ctx); err == nil && cached != nil {
				metrics.IncrementCacheLookup("summary", "hit")
				return *cached, nil
			} else if err != nil {
				metrics.IncrementCacheLookup("summary", "error")
				s.log.Warn("summary cache read failed", zap.Error(err))
			} else {
				metrics.IncrementCacheLookup("summary", "miss")
			}
			out := dto.NewSummaryResponse(s.store.Summary())
			if err := s.cache.SetSummary(ctx, out); err != nil {
				s.log.Warn("summary cache write failed", zap.Error(err))
			}
			return out, nil
		})
		if err != nil {
			return dto.SummaryResponse{}, err
		}
		return v.(dto.SummaryResponse), nil
	}
	return dto.NewSummaryResponse(s.store.Summary()), nil
}

// Graph returns the visualization projection of the current tree,
// cache-aside.
func (s *TrackerService) Graph(ctx context.Context) (graph.Graph, error) {
	if s.cache != nil {
		v, err, _ := s.sf.Do("graph", func() (interface{}, error) {
			if cached, err := s.cache.GetGraph(ctx); err == nil && cached != nil {
				metrics.IncrementCacheLookup("graph", "hit")
				return *cached, nil
			} else if err != nil {
				metrics.IncrementCacheLookup("graph", "error")
				s.log.Warn("graph cache read failed", zap.Error(err))
			} else {
				metrics.IncrementCacheLookup("graph", "miss")
			}
			out := s.renderGraph()
			if err := s.cache.SetGraph(ctx, out); err != nil {
				s.log.Warn("graph cache write failed", zap.Error(err))
			}
			return out, nil
		})
		if err != nil {
			return graph.Graph{}, err
		}
		return v.(graph.Graph), nil
	}
	return s.renderGraph(), nil
}

// TaskByID returns one task with its ancestor names.
func (s *TrackerService) TaskByID(id int64) (dom.AnnotatedTask, error) {
	t, err := s.store.TaskByID(id)
	if errors.Is(err, store.ErrNotFound) {
		return dom.AnnotatedTask{}, ErrNotFound
	}
	return t, err
}

// HighPriorityTasks returns up to limit high-priority tasks in tree order.
func (s *TrackerService) HighPriorityTasks(limit int) []dom.AnnotatedTask {
	return s.store.HighPriorityTasks(limit)
}

// CategoryProgress returns the completion percentage of a category.
func (s *TrackerService) CategoryProgress(ctx context.Context, categoryID int64) (int, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetProgress(ctx, categoryID); err == nil && cached != nil {
			metrics.IncrementCacheLookup("progress", "hit")
			return *cached, nil
		} else if err != nil {
			metrics.IncrementCacheLookup("progress", "error")
			s.log.Warn("progress cache read failed", zap.Error(err))
		} else {
			metrics.IncrementCacheLookup("progress", "miss")
		}
	}
	percent, err := s.store.CategoryProgress(categoryID)
	if errors.Is(err, store.ErrNotFound) {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}
	if s.cache != nil {
		if err := s.cache.SetProgress(ctx, categoryID, percent); err != nil {
			s.log.Warn("progress cache write failed", zap.Error(err))
		}
	}
	return percent, nil
}

// UpdateTaskStatus sets a task's status.
func (s *TrackerService) UpdateTaskStatus(ctx context.Context, id int64, status dom.Status) (dom.Task, error) {
	t, err := s.store.UpdateTaskStatus(id, status)
	return s.afterTaskWrite(ctx, "update_status", t, err)
}

// UpdateTaskPriority sets a task's priority.
func (s *TrackerService) UpdateTaskPriority(ctx context.Context, id int64, priority dom.Priority) (dom.Task, error) {
	t, err := s.store.UpdateTaskPriority(id, priority)
	return s.afterTaskWrite(ctx, "update_priority", t, err)
}

// UpdateTaskAssignee sets or clears a task's assignee display name. Team
// member resolution happens in TeamService; this path trusts the name.
func (s *TrackerService) UpdateTaskAssignee(ctx context.Context, id int64, assignee *string) (dom.Task, error) {
	t, err := s.store.UpdateTaskAssignee(id, assignee)
	return s.afterTaskWrite(ctx, "update_assignee", t, err)
}

// UpdateTaskDueDate sets or clears a task's due date.
func (s *TrackerService) UpdateTaskDueDate(ctx context.Context, id int64, due *time.Time) (dom.Task, error) {
	t, err := s.store.UpdateTaskDueDate(id, due)
	return s.afterTaskWrite(ctx, "update_due_date", t, err)
}

// AddTask creates a pending task under the given subcategory.
func (s *TrackerService) AddTask(ctx context.Context, subcategoryID int64, in store.NewTask) (dom.Task, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return dom.Task{}, ErrEmptyName
	}
	t, err := s.store.AddTask(subcategoryID, in)
	return s.afterTaskWrite(ctx, "add_task", t, err)
}

// AddCategory creates an empty category. Duplicate names (trimmed,
// case-insensitive) are rejected.
func (s *TrackerService) AddCategory(ctx context.Context, name string) (dom.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.Category{}, ErrEmptyName
	}
	if s.store.CategoryNameExists(name) {
		return dom.Category{}, ErrDuplicateCategory
	}
	c := s.store.AddCategory(name)
	s.afterWrite(ctx, "add_category")
	s.log.Info("category created", zap.Int64("category_id", c.ID), zap.String("name", c.Name))
	return c, nil
}

// AddSubcategory creates an empty subcategory under the given category.
func (s *TrackerService) AddSubcategory(ctx context.Context, categoryID int64, name string) (dom.Subcategory, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return dom.Subcategory{}, ErrEmptyName
	}
	sc, err := s.store.AddSubcategory(categoryID, name)
	if errors.Is(err, store.ErrNotFound) {
		return dom.Subcategory{}, ErrNotFound
	}
	if err != nil {
		return dom.Subcategory{}, err
	}
	s.afterWrite(ctx, "add_subcategory")
	s.log.Info("subcategory created",
		zap.Int64("category_id", categoryID),
		zap.Int64("subcategory_id", sc.ID),
		zap.String("name", sc.Name),
	)
	return sc, nil
}

// MarkCategoryComplete completes every task in a category.
func (s *TrackerService) MarkCategoryComplete(ctx context.Context, categoryID int64) (dom.Category, error) {
	c, err := s.store.MarkCategoryComplete(categoryID)
	if errors.Is(err, store.ErrNotFound) {
		return dom.Category{}, ErrNotFound
	}
	if err != nil {
		return dom.Category{}, err
	}
	s.afterWrite(ctx, "mark_category_complete")
	s.log.Info("category completed", zap.Int64("category_id", categoryID))
	return c, nil
}

// Reset restores the seed tree, re-running the full boot pipeline including
// the assignee linking pass.
func (s *TrackerService) Reset(ctx context.Context) {
	s.store.Reset()
	s.afterWrite(ctx, "reset")
	s.log.Info("tree reset to seed")
}

func (s *TrackerService) renderTree() dto.TreeResponse {
	cats, sum := s.store.Snapshot()
	return dto.NewTreeResponse(cats, sum)
}

func (s *TrackerService) renderGraph() graph.Graph {
	cats, _ := s.store.Snapshot()
	return graph.Project(s.rootName, cats)
}

func (s *TrackerService) afterTaskWrite(ctx context.Context, op string, t dom.Task, err error) (dom.Task, error) {
	if errors.Is(err, store.ErrNotFound) {
		return dom.Task{}, ErrNotFound
	}
	if err != nil {
		return dom.Task{}, err
	}
	s.afterWrite(ctx, op)
	s.log.Info("task updated", zap.String("operation", op), zap.Int64("task_id", t.ID))
	return t, nil
}

func (s *TrackerService) afterWrite(ctx context.Context, op string) {
	metrics.IncrementTreeMutation(op)
	if s.cache != nil {
		if err := s.cache.InvalidateAll(ctx); err != nil {
			s.log.Warn("cache invalidation failed", zap.String("operation", op), zap.Error(err))
		}
	}
}
