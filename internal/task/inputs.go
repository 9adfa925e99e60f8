package task

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/wahek/task-list/internal/model"
)

// MaxTitleLen mirrors the VARCHAR(100) bound on the title column.
const MaxTitleLen = 100

// CreateInput is the request body for POST /tasks.
// Description is a pointer so "required" means present, not non-empty.
type CreateInput struct {
	Title       string     `json:"title" validate:"required,max=100"`
	Description *string    `json:"description" validate:"required"`
	Deadline    *time.Time `json:"deadline"`
	Tags        *model.Tag `json:"tags" validate:"omitempty,oneof=urgent important optional"`
}

// ReplaceInput is the request body for PUT /tasks/{id}. All mutable fields
// are replaced: title and description must be resupplied, absent deadline and
// tags become null, absent completed becomes false.
type ReplaceInput struct {
	Title       string     `json:"title" validate:"required,max=100"`
	Description *string    `json:"description" validate:"required"`
	Deadline    *time.Time `json:"deadline"`
	Tags        *model.Tag `json:"tags" validate:"omitempty,oneof=urgent important optional"`
	Completed   bool       `json:"completed"`
}

// PatchInput is the request body for PATCH /tasks/{id}. Only fields present
// in the payload are applied; explicit null clears the nullable columns.
type PatchInput struct {
	Title       Optional[string]    `json:"title"`
	Description Optional[string]    `json:"description"`
	Deadline    Optional[time.Time] `json:"deadline"`
	Tags        Optional[model.Tag] `json:"tags"`
	Completed   Optional[bool]      `json:"completed"`
}

func (in PatchInput) Empty() bool {
	return !in.Title.Set && !in.Description.Set && !in.Deadline.Set &&
		!in.Tags.Set && !in.Completed.Set
}

func (in PatchInput) Validate() error {
	var fields []FieldError

	if in.Empty() {
		fields = append(fields, FieldError{Field: "body", Message: "provide at least one field"})
		return &ValidationError{Fields: fields}
	}

	if in.Title.Set {
		switch {
		case in.Title.Value == nil || *in.Title.Value == "":
			fields = append(fields, FieldError{Field: "title", Message: "is required"})
		case utf8.RuneCountInString(*in.Title.Value) > MaxTitleLen:
			fields = append(fields, FieldError{
				Field:   "title",
				Message: fmt.Sprintf("must be at most %d characters", MaxTitleLen),
			})
		}
	}
	if in.Description.Set && in.Description.Value == nil {
		fields = append(fields, FieldError{Field: "description", Message: "must not be null"})
	}
	if in.Completed.Set && in.Completed.Value == nil {
		fields = append(fields, FieldError{Field: "completed", Message: "must not be null"})
	}
	if in.Tags.Set && in.Tags.Value != nil && !in.Tags.Value.Valid() {
		fields = append(fields, FieldError{
			Field:   "tags",
			Message: "must be one of urgent, important, optional",
		})
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}

// apply copies every supplied field onto the task, truthiness aside.
func (in PatchInput) apply(t *model.Task) {
	if in.Title.Set {
		t.Title = *in.Title.Value
	}
	if in.Description.Set {
		t.Description = *in.Description.Value
	}
	if in.Deadline.Set {
		t.Deadline = in.Deadline.Value
	}
	if in.Tags.Set {
		t.Tags = in.Tags.Value
	}
	if in.Completed.Set {
		t.Completed = *in.Completed.Value
	}
}
