package sqlite

import (
	"database/sql"

	"todoapi/internal/models"
)

// todoRow mirrors the stored shape of a todo.
type todoRow struct {
	ID       int64
	Todo     sql.NullString
	Priority sql.NullString
	Status   sql.NullString
	Category sql.NullString
	DueDate  sql.NullString
}

type scanner interface {
	Scan(dest ...any) error
}

func scanTodo(sc scanner) (models.Todo, error) {
	var r todoRow
	if err := sc.Scan(&r.ID, &r.Todo, &r.Priority, &r.Status, &r.Category, &r.DueDate); err != nil {
		return models.Todo{}, err
	}
	return r.model(), nil
}

// model converts the row into its public form, exposing due_date as DueDate.
func (r todoRow) model() models.Todo {
	return models.Todo{
		ID:       r.ID,
		Todo:     r.Todo.String,
		Priority: r.Priority.String,
		Status:   r.Status.String,
		Category: r.Category.String,
		DueDate:  r.DueDate.String,
	}
}
