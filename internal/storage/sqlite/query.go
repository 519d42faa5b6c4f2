package sqlite

import (
	"database/sql"
	"strings"

	"todoapi/internal/models"
)

// statement is a query with its bound arguments.
type statement struct {
	query string
	args  []any
}

const todoColumns = `id, todo, priority, status, category, due_date`

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// contains turns v into a LIKE pattern matching any value containing v.
func contains(v string) string {
	return "%" + likeEscaper.Replace(v) + "%"
}

func nullable(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}

func listStatement(f models.Filter) statement {
	return statement{
		query: `SELECT ` + todoColumns + ` FROM todo WHERE
            COALESCE(status, '') LIKE ? ESCAPE '\' AND
            COALESCE(priority, '') LIKE ? ESCAPE '\' AND
            COALESCE(category, '') LIKE ? ESCAPE '\' AND
            COALESCE(todo, '') LIKE ? ESCAPE '\' AND
            COALESCE(due_date, '') LIKE ? ESCAPE '\'
        ORDER BY id`,
		args: []any{
			contains(f.Status),
			contains(f.Priority),
			contains(f.Category),
			contains(f.Search),
			contains(f.DueDate),
		},
	}
}

func getStatement(id int64) statement {
	return statement{
		query: `SELECT ` + todoColumns + ` FROM todo WHERE id = ?`,
		args:  []any{id},
	}
}

func agendaStatement(date string) statement {
	return statement{
		query: `SELECT ` + todoColumns + ` FROM todo WHERE due_date = ? ORDER BY id`,
		args:  []any{date},
	}
}

func insertStatement(t models.Todo) statement {
	return statement{
		query: `INSERT INTO todo(` + todoColumns + `) VALUES(?, ?, ?, ?, ?, ?)`,
		args:  []any{t.ID, t.Todo, t.Priority, t.Status, t.Category, nullable(t.DueDate)},
	}
}

// updateStatement writes every mutable column, changed or not.
func updateStatement(t models.Todo) statement {
	return statement{
		query: `UPDATE todo SET todo = ?, priority = ?, status = ?, category = ?, due_date = ? WHERE id = ?`,
		args:  []any{t.Todo, t.Priority, t.Status, t.Category, nullable(t.DueDate), t.ID},
	}
}

func deleteStatement(id int64) statement {
	return statement{
		query: `DELETE FROM todo WHERE id = ?`,
		args:  []any{id},
	}
}
