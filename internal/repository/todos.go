package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
)

const todoColumns = `id, title, completed, user_id, created_at`

func scanTodo(row pgx.Row) (model.Todo, error) {
	var t model.Todo
	err := row.Scan(&t.ID, &t.Title, &t.Completed, &t.UserID, &t.CreatedAt)
	return t, err
}

func (s *Store) ListTodos(ctx context.Context, userID int64) ([]model.Todo, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+todoColumns+`
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	todos := []model.Todo{}
	for rows.Next() {
		t, err := scanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, t)
	}
	return todos, rows.Err()
}

func (s *Store) CreateTodo(ctx context.Context, t model.Todo) (model.Todo, error) {
	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO todos (title, completed, user_id)
		VALUES ($1, $2, $3)
		RETURNING `+todoColumns, t.Title, t.Completed, t.UserID)
	return scanTodo(row)
}

func (s *Store) UpdateTodo(ctx context.Context, userID, id int64, patch model.TodoPatch) (model.Todo, error) {
	row := s.db.Pool.QueryRow(ctx, `
		UPDATE todos
		SET title = COALESCE($3, title),
		    completed = COALESCE($4, completed)
		WHERE id = $1 AND user_id = $2
		RETURNING `+todoColumns, id, userID, patch.Title, patch.Completed)
	t, err := scanTodo(row)
	return t, notFound(err)
}

func (s *Store) DeleteTodo(ctx context.Context, userID, id int64) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM todos WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
