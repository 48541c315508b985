package services

import (
	"context"
	"errors"
	"testing"

	"github.com/prodcalc/tracker/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeTaskRepo struct {
	tasks  []types.Task
	err    error
	nextID int
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{nextID: 1}
}

func (f *fakeTaskRepo) ListByUser(_ context.Context, userID int) ([]types.Task, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []types.Task{}
	for _, task := range f.tasks {
		if task.UserID == userID {
			out = append(out, task)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Create(_ context.Context, task types.Task) (types.Task, error) {
	if f.err != nil {
		return types.Task{}, f.err
	}
	task.ID = f.nextID
	f.nextID++
	f.tasks = append(f.tasks, task)
	return task, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, task types.Task) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == task.ID {
			f.tasks[i].Description = task.Description
			f.tasks[i].Category = task.Category
			f.tasks[i].Hours = task.Hours
		}
	}
	// Zero matching rows is still a success.
	return nil
}

func (f *fakeTaskRepo) Delete(_ context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	kept := f.tasks[:0]
	for _, task := range f.tasks {
		if task.ID != id {
			kept = append(kept, task)
		}
	}
	f.tasks = kept
	return nil
}

func TestListScopesToUser(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, zap.NewNop())

	_, err := svc.Add(context.Background(), types.Task{UserID: 1, Description: "mine", Category: "Productive", Hours: 1})
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), types.Task{UserID: 2, Description: "theirs", Category: "Leisure", Hours: 2})
	require.NoError(t, err)

	tasks := svc.List(context.Background(), 1)
	require.Len(t, tasks, 1)
	assert.Equal(t, "mine", tasks[0].Description)
}

func TestListMasksStorageFailure(t *testing.T) {
	repo := newFakeTaskRepo()
	repo.err = errors.New("connection reset")
	svc := NewTaskService(repo, zap.NewNop())

	tasks := svc.List(context.Background(), 1)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)
}

func TestAddAssignsID(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, zap.NewNop())

	task, err := svc.Add(context.Background(), types.Task{UserID: 1, Description: "Wrote report", Category: "Productive", Hours: 3.5})
	require.NoError(t, err)
	assert.Equal(t, 1, task.ID)

	tasks := svc.List(context.Background(), 1)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Wrote report", tasks[0].Description)
	assert.Equal(t, "Productive", tasks[0].Category)
	assert.InDelta(t, 3.5, tasks[0].Hours, 1e-9)
}

func TestUpdateMissingIDSucceedsUnchanged(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, zap.NewNop())

	added, err := svc.Add(context.Background(), types.Task{UserID: 1, Description: "keep", Category: "Leisure", Hours: 2})
	require.NoError(t, err)

	err = svc.Update(context.Background(), types.Task{ID: 999, UserID: 1, Description: "ghost", Category: "Leisure", Hours: 9})
	require.NoError(t, err)

	tasks := svc.List(context.Background(), 1)
	require.Len(t, tasks, 1)
	assert.Equal(t, added, tasks[0])
}

func TestDeleteMissingIDSucceeds(t *testing.T) {
	repo := newFakeTaskRepo()
	svc := NewTaskService(repo, zap.NewNop())

	assert.NoError(t, svc.Delete(context.Background(), 42))
}

func TestMutationsPropagateStorageErrors(t *testing.T) {
	repo := newFakeTaskRepo()
	repo.err = errors.New("statement timeout")
	svc := NewTaskService(repo, zap.NewNop())

	_, err := svc.Add(context.Background(), types.Task{UserID: 1})
	assert.ErrorContains(t, err, "statement timeout")
	assert.ErrorContains(t, svc.Update(context.Background(), types.Task{ID: 1}), "statement timeout")
	assert.ErrorContains(t, svc.Delete(context.Background(), 1), "statement timeout")
}
