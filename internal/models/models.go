package models

// Todo is a single task record exposed by the API.
type Todo struct {
	ID       int64  `json:"id"`
	Todo     string `json:"todo"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Category string `json:"category"`
	DueDate  string `json:"dueDate"`
}

// Filter narrows a todo listing. Empty fields match everything.
type Filter struct {
	Status   string
	Priority string
	Category string
	Search   string
	DueDate  string
}

// Patch carries the fields of a partial update. Nil or empty values keep
// the stored value.
type Patch struct {
	Todo     *string
	Priority *string
	Status   *string
	Category *string
	DueDate  *string
}

// Field names a mutable todo attribute.
type Field string

const (
	FieldNone     Field = ""
	FieldStatus   Field = "status"
	FieldPriority Field = "priority"
	FieldTodo     Field = "todo"
	FieldCategory Field = "category"
	FieldDueDate  Field = "dueDate"
)

// ValidStatuses enumerates the accepted todo statuses.
var ValidStatuses = map[string]struct{}{
	"TO DO":       {},
	"IN PROGRESS": {},
	"DONE":        {},
}

// ValidPriorities enumerates the accepted todo priorities.
var ValidPriorities = map[string]struct{}{
	"HIGH":   {},
	"MEDIUM": {},
	"LOW":    {},
}

// ValidCategories enumerates the accepted todo categories.
var ValidCategories = map[string]struct{}{
	"WORK":     {},
	"HOME":     {},
	"LEARNING": {},
}

// Apply returns a copy of t with every non-empty patch field applied.
func (t Todo) Apply(p Patch) Todo {
	next := t
	next.Todo = pick(p.Todo, t.Todo)
	next.Priority = pick(p.Priority, t.Priority)
	next.Status = pick(p.Status, t.Status)
	next.Category = pick(p.Category, t.Category)
	next.DueDate = pick(p.DueDate, t.DueDate)
	return next
}

// FirstChange reports the first field that differs between before and after,
// checked in the order status, priority, todo, category, due date.
func FirstChange(before, after Todo) Field {
	switch {
	case before.Status != after.Status:
		return FieldStatus
	case before.Priority != after.Priority:
		return FieldPriority
	case before.Todo != after.Todo:
		return FieldTodo
	case before.Category != after.Category:
		return FieldCategory
	case before.DueDate != after.DueDate:
		return FieldDueDate
	default:
		return FieldNone
	}
}

func pick(v *string, fallback string) string {
	if v == nil || *v == "" {
		return fallback
	}
	return *v
}
