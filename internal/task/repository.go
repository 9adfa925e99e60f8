package task

import (
	"context"

	"github.com/wahek/task-list/internal/model"
)

// Repository is the persistence boundary of the task service. Implementations
// must run each mutating call inside one transaction, and Update/Delete must
// return model.ErrNotFound before touching a missing row.
type Repository interface {
	Create(ctx context.Context, t model.Task) (model.Task, error)
	Get(ctx context.Context, id int64) (model.Task, error)
	List(ctx context.Context, q ListQuery) ([]model.Task, error)
	Update(ctx context.Context, id int64, mutate func(*model.Task)) (model.Task, error)
	Delete(ctx context.Context, id int64) (model.Task, error)
}
