package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
)

const userColumns = `id, name, scholar_no, role, created_at`

func scanUser(row pgx.Row) (model.User, error) {
	var (
		user model.User
		role string
	)
	if err := row.Scan(&user.ID, &user.Name, &user.ScholarNo, &role, &user.CreatedAt); err != nil {
		return model.User{}, err
	}
	parsed, err := model.ParseRole(role)
	if err != nil {
		return model.User{}, fmt.Errorf("user %d: %w", user.ID, err)
	}
	user.Role = parsed
	return user, nil
}

// UpsertUser creates a student with the given scholar number or renames the
// existing one. created reports whether a new row was inserted.
func (s *Store) UpsertUser(ctx context.Context, name, scholarNo string) (model.User, bool, error) {
	var (
		user    model.User
		role    string
		created bool
	)
	row := s.db.Pool.QueryRow(ctx, `
		INSERT INTO users (name, scholar_no, role)
		VALUES ($1, $2, 'student')
		ON CONFLICT (scholar_no) DO UPDATE
		SET name = EXCLUDED.name
		RETURNING `+userColumns+`, (xmax = 0) AS created
	`, name, scholarNo)
	if err := row.Scan(&user.ID, &user.Name, &user.ScholarNo, &role, &user.CreatedAt, &created); err != nil {
		return model.User{}, false, err
	}
	parsed, err := model.ParseRole(role)
	if err != nil {
		return model.User{}, false, fmt.Errorf("user %d: %w", user.ID, err)
	}
	user.Role = parsed
	return user, created, nil
}

func (s *Store) GetUserByScholarNo(ctx context.Context, scholarNo string) (model.User, error) {
	row := s.db.Pool.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE scholar_no = $1`, scholarNo)
	user, err := scanUser(row)
	return user, notFound(err)
}

func (s *Store) ListUsers(ctx context.Context) ([]model.User, error) {
	rows, err := s.db.Pool.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

func (s *Store) SetUserRole(ctx context.Context, scholarNo string, role model.Role) (model.User, error) {
	row := s.db.Pool.QueryRow(ctx, `
		UPDATE users SET role = $2
		WHERE scholar_no = $1
		RETURNING `+userColumns, scholarNo, string(role))
	user, err := scanUser(row)
	return user, notFound(err)
}
