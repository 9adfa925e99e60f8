package task

// OrderField selects the column a list page is sorted by.
type OrderField string

const (
	OrderTags        OrderField = "tags"
	OrderDeadline    OrderField = "deadline"
	OrderDateCreated OrderField = "date_created"
	OrderCompleted   OrderField = "completed"
	OrderTitle       OrderField = "title"
)

func (f OrderField) Valid() bool {
	switch f {
	case OrderTags, OrderDeadline, OrderDateCreated, OrderCompleted, OrderTitle:
		return true
	}
	return false
}

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

func (d SortDir) Valid() bool {
	return d == SortAsc || d == SortDesc
}

const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListQuery describes one filtered, ordered, paginated page of tasks.
// Zero values for Limit, OrderBy and Sort mean "use the default".
type ListQuery struct {
	Limit     int
	Offset    int
	OrderBy   OrderField
	Sort      SortDir
	Completed *bool
	Search    string
}

func (q ListQuery) normalized() ListQuery {
	if q.Limit <= 0 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if q.OrderBy == "" {
		q.OrderBy = OrderDateCreated
	}
	if q.Sort == "" {
		q.Sort = SortDesc
	}
	return q
}

// validateQuery rejects order/sort values outside the allow-list before they
// get anywhere near SQL construction.
func validateQuery(q ListQuery) error {
	var fields []FieldError
	if !q.OrderBy.Valid() {
		fields = append(fields, FieldError{
			Field:   "ordering",
			Message: "must be one of tags, deadline, date_created, completed, title",
		})
	}
	if !q.Sort.Valid() {
		fields = append(fields, FieldError{Field: "sort", Message: "must be asc or desc"})
	}
	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
