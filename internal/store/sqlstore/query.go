package sqlstore

import (
	"fmt"
	"strings"

	"github.com/wahek/task-list/internal/task"
)

// orderColumns maps the API ordering enum to real columns. Anything outside
// this map never reaches the SQL text.
var orderColumns = map[task.OrderField]string{
	task.OrderTags:        "tags",
	task.OrderDeadline:    "deadline",
	task.OrderDateCreated: "date_created",
	task.OrderCompleted:   "completed",
	task.OrderTitle:       "title",
}

// buildListQuery renders a ListQuery as SQL with "?" placeholders. The id
// tiebreaker keeps pages stable when the ordering column has equal values
// (date_created only carries second precision).
func buildListQuery(q task.ListQuery) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + taskColumns + ` FROM tasks`)

	var conds []string
	var args []any

	if q.Completed != nil {
		conds = append(conds, "completed = ?")
		args = append(args, *q.Completed)
	}
	if q.Search != "" {
		conds = append(conds, "(LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?))")
		pattern := "%" + q.Search + "%"
		args = append(args, pattern, pattern)
	}
	if len(conds) > 0 {
		sb.WriteString(" WHERE " + strings.Join(conds, " AND "))
	}

	col, ok := orderColumns[q.OrderBy]
	if !ok {
		col = "date_created"
	}
	dir := "DESC"
	if q.Sort == task.SortAsc {
		dir = "ASC"
	}
	fmt.Fprintf(&sb, " ORDER BY %s %s, id %s", col, dir, dir)

	sb.WriteString(" LIMIT ? OFFSET ?")
	args = append(args, q.Limit, q.Offset)

	return sb.String(), args
}
