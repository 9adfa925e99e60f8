package sqlstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/wahek/task-list/internal/model"
	"github.com/wahek/task-list/internal/store/sqlstore"
	"github.com/wahek/task-list/internal/task"
	"github.com/wahek/task-list/internal/testutil"
)

func seedTask(t *testing.T, s *sqlstore.Store, title, description string, completed bool, created time.Time) model.Task {
	t.Helper()
	saved, err := s.Create(context.Background(), model.Task{
		Title:       title,
		Description: description,
		Completed:   completed,
		DateCreated: created,
	})
	if err != nil {
		t.Fatalf("seed %q: %v", title, err)
	}
	return saved
}

func TestCreateAssignsIncreasingIDs(t *testing.T) {
	s := testutil.NewTestStore(t)
	now := time.Now().UTC().Truncate(time.Second)

	first := seedTask(t, s, "first", "d", false, now)
	second := seedTask(t, s, "second", "d", false, now)

	if first.ID == 0 {
		t.Fatalf("expected assigned id, got 0")
	}
	if second.ID <= first.ID {
		t.Fatalf("expected increasing ids, got %d then %d", first.ID, second.ID)
	}
}

func TestGetRoundTrip(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()

	deadline := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	tag := model.TagUrgent
	saved, err := s.Create(ctx, model.Task{
		Title:       "with everything",
		Description: "desc",
		Deadline:    &deadline,
		Tags:        &tag,
		Completed:   true,
		DateCreated: time.Now().UTC().Truncate(time.Second),
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := s.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != saved.Title || got.Description != saved.Description {
		t.Fatalf("text fields mismatch: %+v vs %+v", got, saved)
	}
	if got.Deadline == nil || !got.Deadline.Equal(deadline) {
		t.Fatalf("deadline mismatch: %v", got.Deadline)
	}
	if got.Tags == nil || *got.Tags != model.TagUrgent {
		t.Fatalf("tags mismatch: %v", got.Tags)
	}
	if !got.Completed {
		t.Fatalf("expected completed")
	}
	if !got.DateCreated.Equal(saved.DateCreated) {
		t.Fatalf("date_created mismatch: %v vs %v", got.DateCreated, saved.DateCreated)
	}
}

func TestGetNotFound(t *testing.T) {
	s := testutil.NewTestStore(t)

	_, err := s.Get(context.Background(), 12345)
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateMissingRowDoesNotMutate(t *testing.T) {
	s := testutil.NewTestStore(t)

	called := false
	_, err := s.Update(context.Background(), 999, func(tk *model.Task) {
		called = true
	})
	if !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if called {
		t.Fatalf("mutate ran for a missing row")
	}
}

func TestUpdateAppliesMutation(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	saved := seedTask(t, s, "before", "d", false, time.Now().UTC().Truncate(time.Second))

	updated, err := s.Update(ctx, saved.ID, func(tk *model.Task) {
		tk.Title = "after"
		tk.Completed = true
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Title != "after" || !updated.Completed {
		t.Fatalf("update not applied: %+v", updated)
	}

	got, err := s.Get(ctx, saved.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "after" || !got.Completed {
		t.Fatalf("update not persisted: %+v", got)
	}
}

func TestDeleteReturnsSnapshot(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	saved := seedTask(t, s, "doomed", "d", false, time.Now().UTC().Truncate(time.Second))

	snapshot, err := s.Delete(ctx, saved.ID)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	if snapshot.ID != saved.ID || snapshot.Title != "doomed" {
		t.Fatalf("unexpected snapshot: %+v", snapshot)
	}

	if _, err := s.Get(ctx, saved.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if _, err := s.Delete(ctx, saved.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListOrderingAndPagination(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	seedTask(t, s, "banana", "d", false, base.Add(1*time.Hour))
	seedTask(t, s, "apple", "d", true, base.Add(2*time.Hour))
	seedTask(t, s, "cherry", "d", false, base.Add(3*time.Hour))

	listQuery := func(q task.ListQuery) []model.Task {
		t.Helper()
		out, err := s.List(ctx, q)
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		return out
	}

	byTitle := listQuery(task.ListQuery{Limit: 10, OrderBy: task.OrderTitle, Sort: task.SortAsc})
	if len(byTitle) != 3 || byTitle[0].Title != "apple" || byTitle[2].Title != "cherry" {
		t.Fatalf("title asc order wrong: %+v", byTitle)
	}

	newestFirst := listQuery(task.ListQuery{Limit: 10, OrderBy: task.OrderDateCreated, Sort: task.SortDesc})
	if newestFirst[0].Title != "cherry" || newestFirst[2].Title != "banana" {
		t.Fatalf("date_created desc order wrong: %+v", newestFirst)
	}

	page := listQuery(task.ListQuery{Limit: 1, Offset: 1, OrderBy: task.OrderTitle, Sort: task.SortAsc})
	if len(page) != 1 || page[0].Title != "banana" {
		t.Fatalf("offset/limit slice wrong: %+v", page)
	}

	empty := listQuery(task.ListQuery{Limit: 10, Offset: 50, OrderBy: task.OrderTitle, Sort: task.SortAsc})
	if len(empty) != 0 {
		t.Fatalf("expected empty page past the end, got %d items", len(empty))
	}
}

func TestListFilters(t *testing.T) {
	s := testutil.NewTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	seedTask(t, s, "Buy milk", "2% from the corner shop", false, base)
	seedTask(t, s, "Call dentist", "ask about Friday", true, base.Add(time.Minute))

	completed := true
	done, err := s.List(ctx, task.ListQuery{Limit: 10, OrderBy: task.OrderDateCreated, Sort: task.SortDesc, Completed: &completed})
	if err != nil {
		t.Fatalf("list completed: %v", err)
	}
	if len(done) != 1 || done[0].Title != "Call dentist" {
		t.Fatalf("completed filter wrong: %+v", done)
	}

	// Case-insensitive, matches title or description.
	for _, needle := range []string{"MILK", "corner"} {
		found, err := s.List(ctx, task.ListQuery{Limit: 10, OrderBy: task.OrderDateCreated, Sort: task.SortDesc, Search: needle})
		if err != nil {
			t.Fatalf("search %q: %v", needle, err)
		}
		if len(found) != 1 || found[0].Title != "Buy milk" {
			t.Fatalf("search %q wrong: %+v", needle, found)
		}
	}

	none, err := s.List(ctx, task.ListQuery{Limit: 10, OrderBy: task.OrderDateCreated, Sort: task.SortDesc, Search: "bread"})
	if err != nil {
		t.Fatalf("search bread: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no matches, got %+v", none)
	}
}
