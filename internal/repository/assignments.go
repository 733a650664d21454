package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
)

const assignmentColumns = `id, title, due_date, status, user_id, created_at`

func scanAssignment(row pgx.Row) (model.Assignment, error) {
	var (
		a      model.Assignment
		status string
	)
	if err := row.Scan(&a.ID, &a.Title, &a.DueDate, &status, &a.UserID, &a.CreatedAt); err != nil {
		return model.Assignment{}, err
	}
	parsed, err := model.ParseAssignmentStatus(status)
	if err != nil {
		return model.Assignment{}, fmt.Errorf("assignment %d: %w", a.ID, err)
	}
	a.Status = parsed
	return a, nil
}

func (s *Store) ListAssignments(ctx context.Context, userID int64) ([]model.Assignment, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT `+assignmentColumns+`
		FROM assignments
		WHERE user_id = $1
		ORDER BY created_at, id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assignments := []model.Assignment{}
	for rows.Next() {
		a, err := scanAssignment(rows)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}
	return assignments, rows.Err()
}

func (s *Store) CreateAssignment(ctx context.Context, a model.Assignment) (model.Assignment, error) {
	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO assignments (title, due_date, status, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+assignmentColumns, a.Title, a.DueDate, string(a.Status), a.UserID)
	return scanAssignment(row)
}

func (s *Store) UpdateAssignment(ctx context.Context, userID, id int64, patch model.AssignmentPatch) (model.Assignment, error) {
	var status *string
	if patch.Status != nil {
		value := string(*patch.Status)
		status = &value
	}
	row := s.db.Pool.QueryRow(ctx, `
		UPDATE assignments
		SET title = COALESCE($3, title),
		    due_date = COALESCE($4, due_date),
		    status = COALESCE($5, status)
		WHERE id = $1 AND user_id = $2
		RETURNING `+assignmentColumns, id, userID, patch.Title, patch.DueDate, status)
	a, err := scanAssignment(row)
	return a, notFound(err)
}

func (s *Store) DeleteAssignment(ctx context.Context, userID, id int64) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM assignments WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
