package httpapi

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/wahek/task-list/internal/task"
)

// parseListQuery reads the shared pagination and ordering parameters.
// Endpoint-specific parameters (completed, search) are layered on by the
// handlers.
func parseListQuery(q url.Values) (task.ListQuery, error) {
	lq := task.ListQuery{
		Limit:   task.DefaultLimit,
		OrderBy: task.OrderDateCreated,
		Sort:    task.SortDesc,
	}

	if v := q.Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > task.MaxLimit {
			return lq, fmt.Errorf("limit must be an integer between 1 and %d", task.MaxLimit)
		}
		lq.Limit = n
	}

	if v := q.Get("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return lq, errors.New("offset must be a non-negative integer")
		}
		lq.Offset = n
	}

	if v := q.Get("ordering"); v != "" {
		f := task.OrderField(v)
		if !f.Valid() {
			return lq, errors.New("ordering must be one of tags, deadline, date_created, completed, title")
		}
		lq.OrderBy = f
	}

	if v := q.Get("sort"); v != "" {
		d := task.SortDir(v)
		if !d.Valid() {
			return lq, errors.New("sort must be asc or desc")
		}
		lq.Sort = d
	}

	return lq, nil
}

func parseBoolStrict(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, errors.New("not a bool")
	}
}
