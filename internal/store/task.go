package store

import (
	"context"
	"database/sql"

	"github.com/prodcalc/tracker/types"
)

// TaskRepository handles persistence for tasks.
type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByUser returns the user's tasks in insertion order. A user with
// no tasks yields an empty slice, not an error.
func (r *TaskRepository) ListByUser(ctx context.Context, userID int) ([]types.Task, error) {
	const query = `
		SELECT id, user_id, description, category, hours
		FROM tasks
		WHERE user_id = $1
		ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []types.Task{}
	for rows.Next() {
		var task types.Task
		if err := rows.Scan(
			&task.ID,
			&task.UserID,
			&task.Description,
			&task.Category,
			&task.Hours,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// Create inserts a task. The ID field of the input is ignored; storage
// assigns the identity.
func (r *TaskRepository) Create(ctx context.Context, task types.Task) (types.Task, error) {
	const query = `
		INSERT INTO tasks (user_id, description, category, hours)
		VALUES ($1, $2, $3, $4)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		task.UserID,
		task.Description,
		task.Category,
		task.Hours,
	).Scan(&task.ID); err != nil {
		return types.Task{}, err
	}
	return task, nil
}

// Update rewrites description, category, and hours for the task with
// the given ID. A missing ID affects zero rows and is not an error.
func (r *TaskRepository) Update(ctx context.Context, task types.Task) error {
	const query = `
		UPDATE tasks
		SET description = $1,
			category = $2,
			hours = $3
		WHERE id = $4`
	_, err := r.db.ExecContext(
		ctx,
		query,
		task.Description,
		task.Category,
		task.Hours,
		task.ID,
	)
	return err
}

// Delete removes the task with the given ID. A missing ID affects zero
// rows and is not an error.
func (r *TaskRepository) Delete(ctx context.Context, id int) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
