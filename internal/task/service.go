package task

import (
	"context"
	"time"

	"github.com/wahek/task-list/internal/model"
)

// Service glues validation to the repository. It owns the defaulting rules
// for new tasks (completed=false, date_created=now); the store only assigns
// ids.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Create(ctx context.Context, in CreateInput) (model.Task, error) {
	if err := checkStruct(in); err != nil {
		return model.Task{}, err
	}

	t := model.Task{
		Title:       in.Title,
		Description: *in.Description,
		Deadline:    in.Deadline,
		Tags:        in.Tags,
		Completed:   false,
		DateCreated: s.creationTime(),
	}
	return s.repo.Create(ctx, t)
}

func (s *Service) Get(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, q ListQuery) ([]model.Task, error) {
	q = q.normalized()
	if err := validateQuery(q); err != nil {
		return nil, err
	}
	return s.repo.List(ctx, q)
}

// Patch applies exactly the fields present in the payload.
func (s *Service) Patch(ctx context.Context, id int64, in PatchInput) (model.Task, error) {
	if err := in.Validate(); err != nil {
		return model.Task{}, err
	}
	return s.repo.Update(ctx, id, in.apply)
}

// Replace overwrites every mutable field with the supplied values.
func (s *Service) Replace(ctx context.Context, id int64, in ReplaceInput) (model.Task, error) {
	if err := checkStruct(in); err != nil {
		return model.Task{}, err
	}
	return s.repo.Update(ctx, id, func(t *model.Task) {
		t.Title = in.Title
		t.Description = *in.Description
		t.Deadline = in.Deadline
		t.Tags = in.Tags
		t.Completed = in.Completed
	})
}

func (s *Service) ToggleCompleted(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Update(ctx, id, func(t *model.Task) {
		t.Completed = !t.Completed
	})
}

func (s *Service) Delete(ctx context.Context, id int64) (model.Task, error) {
	return s.repo.Delete(ctx, id)
}

// creationTime matches the column's second precision so a created task reads
// back identical to the create response.
func (s *Service) creationTime() time.Time {
	return s.now().UTC().Truncate(time.Second)
}
