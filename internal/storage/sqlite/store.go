package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/mattn/go-sqlite3"

	"todoapi/internal/models"
)

var (
	// ErrNotFound is returned when no todo has the requested id.
	ErrNotFound = errors.New("todo not found")
	// ErrDuplicateID is returned when inserting a todo whose id is taken.
	ErrDuplicateID = errors.New("todo id already exists")
)

// Store wraps the single SQLite connection shared by all handlers.
type Store struct {
	db     *sql.DB
	logger *slog.Logger
}

// Open initializes the SQLite store and creates the todo table if needed.
func Open(dbPath string, logger *slog.Logger) (*Store, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("empty database path")
	}

	if logger == nil {
		logger = slog.Default()
	}

	if err := ensureDir(dbPath); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?_busy_timeout=5000", dbPath))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	conn.SetMaxOpenConns(1)
	conn.SetConnMaxLifetime(0)

	s := &Store{db: conn, logger: logger}
	if err := s.migrate(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	logger.Debug("database ready", slog.String("path", dbPath))
	return s, nil
}

// Close releases the database resources.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Ping checks that the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func ensureDir(dbPath string) error {
	dir := filepath.Dir(dbPath)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func (s *Store) migrate() error {
	const stmt = `CREATE TABLE IF NOT EXISTS todo (
            id INTEGER PRIMARY KEY,
            todo TEXT,
            priority TEXT,
            category TEXT,
            status TEXT,
            due_date TEXT
        );`
	if _, err := s.db.Exec(stmt); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	return nil
}

// ListTodos returns todos matching every non-empty filter field as a substring.
func (s *Store) ListTodos(ctx context.Context, f models.Filter) ([]models.Todo, error) {
	todos, err := s.queryTodos(ctx, listStatement(f))
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

// Agenda returns todos due exactly on the canonical date.
func (s *Store) Agenda(ctx context.Context, date string) ([]models.Todo, error) {
	todos, err := s.queryTodos(ctx, agendaStatement(date))
	if err != nil {
		return nil, fmt.Errorf("agenda: %w", err)
	}
	return todos, nil
}

// GetTodo fetches a single todo by id.
func (s *Store) GetTodo(ctx context.Context, id int64) (models.Todo, error) {
	st := getStatement(id)
	t, err := scanTodo(s.db.QueryRowContext(ctx, st.query, st.args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Todo{}, ErrNotFound
	}
	if err != nil {
		return models.Todo{}, fmt.Errorf("get todo: %w", err)
	}
	return t, nil
}

// CreateTodo inserts a todo with its caller supplied id.
func (s *Store) CreateTodo(ctx context.Context, t models.Todo) error {
	st := insertStatement(t)
	if _, err := s.db.ExecContext(ctx, st.query, st.args...); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return ErrDuplicateID
		}
		return fmt.Errorf("insert todo: %w", err)
	}
	return nil
}

// UpdateTodo loads the stored todo, applies the patch and writes back every
// mutable field. It returns the todo as it was before and after the write.
// The read and the write are not atomic.
func (s *Store) UpdateTodo(ctx context.Context, id int64, p models.Patch) (models.Todo, models.Todo, error) {
	before, err := s.GetTodo(ctx, id)
	if err != nil {
		return models.Todo{}, models.Todo{}, err
	}

	after := before.Apply(p)
	st := updateStatement(after)
	if _, err := s.db.ExecContext(ctx, st.query, st.args...); err != nil {
		return models.Todo{}, models.Todo{}, fmt.Errorf("update todo: %w", err)
	}
	return before, after, nil
}

// DeleteTodo removes a todo by id. Deleting a missing id is not an error.
func (s *Store) DeleteTodo(ctx context.Context, id int64) error {
	st := deleteStatement(id)
	res, err := s.db.ExecContext(ctx, st.query, st.args...)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if affected, err := res.RowsAffected(); err == nil && affected == 0 {
		s.logger.Debug("delete matched no rows", slog.Int64("id", id))
	}
	return nil
}

func (s *Store) queryTodos(ctx context.Context, st statement) ([]models.Todo, error) {
	rows, err := s.db.QueryContext(ctx, st.query, st.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []models.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, fmt.Errorf("scan todo: %w", err)
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}
