package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/wahek/task-list/internal/model"
	"github.com/wahek/task-list/internal/task"
)

const taskColumns = `id, title, description, deadline, tags, completed, date_created`

// Create inserts the task and returns it with the store-assigned id.
func (s *Store) Create(ctx context.Context, t model.Task) (model.Task, error) {
	const q = `
		INSERT INTO tasks (title, description, deadline, tags, completed, date_created)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		row := tx.QueryRowxContext(ctx, tx.Rebind(q),
			t.Title, t.Description, t.Deadline, t.Tags, t.Completed, t.DateCreated)
		if err := row.Scan(&t.ID); err != nil {
			return fmt.Errorf("inserting task: %w", err)
		}
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (s *Store) Get(ctx context.Context, id int64) (model.Task, error) {
	var t model.Task
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		return getTask(ctx, tx, id, &t)
	})
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func (s *Store) List(ctx context.Context, q task.ListQuery) ([]model.Task, error) {
	query, args := buildListQuery(q)

	out := make([]model.Task, 0, q.Limit)
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := tx.SelectContext(ctx, &out, tx.Rebind(query), args...); err != nil {
			return fmt.Errorf("listing tasks: %w", err)
		}
		for i := range out {
			if err := out[i].ValidateTags(); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Update loads the row, applies mutate and writes it back, all in one
// transaction. A missing row surfaces as model.ErrNotFound before mutate
// runs.
func (s *Store) Update(ctx context.Context, id int64, mutate func(*model.Task)) (model.Task, error) {
	const q = `
		UPDATE tasks
		SET title = ?, description = ?, deadline = ?, tags = ?, completed = ?
		WHERE id = ?`

	var t model.Task
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := getTask(ctx, tx, id, &t); err != nil {
			return err
		}
		mutate(&t)
		if _, err := tx.ExecContext(ctx, tx.Rebind(q),
			t.Title, t.Description, t.Deadline, t.Tags, t.Completed, t.ID); err != nil {
			return fmt.Errorf("updating task %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

// Delete removes the row and returns its last state.
func (s *Store) Delete(ctx context.Context, id int64) (model.Task, error) {
	var t model.Task
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		if err := getTask(ctx, tx, id, &t); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM tasks WHERE id = ?`), id); err != nil {
			return fmt.Errorf("deleting task %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return t, nil
}

func getTask(ctx context.Context, tx *sqlx.Tx, id int64, dst *model.Task) error {
	q := `SELECT ` + taskColumns + ` FROM tasks WHERE id = ?`
	if err := tx.GetContext(ctx, dst, tx.Rebind(q), id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.ErrNotFound
		}
		return fmt.Errorf("getting task %d: %w", id, err)
	}
	return dst.ValidateTags()
}
