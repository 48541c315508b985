package services

import (
	"context"

	"github.com/prodcalc/tracker/types"
	"go.uber.org/zap"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	ListByUser(ctx context.Context, userID int) ([]types.Task, error)
	Create(ctx context.Context, task types.Task) (types.Task, error)
	Update(ctx context.Context, task types.Task) error
	Delete(ctx context.Context, id int) error
}

// TaskService encapsulates task use-cases.
type TaskService struct {
	repo   TaskRepository
	logger *zap.Logger
}

func NewTaskService(repo TaskRepository, logger *zap.Logger) *TaskService {
	return &TaskService{repo: repo, logger: logger}
}

// List returns the user's tasks. A storage failure yields an empty
// list rather than an error; the cause is logged.
func (s *TaskService) List(ctx context.Context, userID int) []types.Task {
	tasks, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		s.logger.Warn("listing tasks failed",
			zap.Int("user_id", userID),
			zap.Error(err),
		)
		return []types.Task{}
	}
	return tasks
}

func (s *TaskService) Add(ctx context.Context, task types.Task) (types.Task, error) {
	return s.repo.Create(ctx, task)
}

func (s *TaskService) Update(ctx context.Context, task types.Task) error {
	return s.repo.Update(ctx, task)
}

func (s *TaskService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
