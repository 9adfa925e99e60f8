package model

import (
	"errors"
	"fmt"
	"time"
)

var ErrNotFound = errors.New("task not found")

// Tag is the enumerated label a task may carry. The column stores plain
// text, so the enum is checked on both the write and the read path.
type Tag string

const (
	TagUrgent    Tag = "urgent"
	TagImportant Tag = "important"
	TagOptional  Tag = "optional"
)

func (t Tag) Valid() bool {
	switch t {
	case TagUrgent, TagImportant, TagOptional:
		return true
	}
	return false
}

type Task struct {
	ID          int64      `json:"id" db:"id"`
	Title       string     `json:"title" db:"title"`
	Description string     `json:"description" db:"description"`
	Deadline    *time.Time `json:"deadline" db:"deadline"`
	Tags        *Tag       `json:"tags" db:"tags"`
	Completed   bool       `json:"completed" db:"completed"`
	DateCreated time.Time  `json:"date_created" db:"date_created"`
}

// ValidateTags rejects rows whose stored tag fell out of the enum,
// e.g. after a manual edit of the table.
func (t Task) ValidateTags() error {
	if t.Tags != nil && !t.Tags.Valid() {
		return fmt.Errorf("task %d: unknown tag %q", t.ID, *t.Tags)
	}
	return nil
}
