package repository

import (
	"context"
	"time"

	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
)

func (s *Store) CreateSession(ctx context.Context, session model.Session) error {
	_, err := s.db.Pool.Exec(ctx, `
		INSERT INTO sessions (token, user_id, expires_at)
		VALUES ($1, $2, $3)
	`, session.Token, session.UserID, session.ExpiresAt)
	return err
}

// GetSessionUser returns the owner of a session that is still valid at now.
// Unknown and expired tokens both yield ErrNotFound.
func (s *Store) GetSessionUser(ctx context.Context, token string, now time.Time) (model.User, error) {
	row := s.db.Pool.QueryRow(ctx, `
		SELECT u.id, u.name, u.scholar_no, u.role, u.created_at
		FROM sessions s
		JOIN users u ON u.id = s.user_id
		WHERE s.token = $1 AND s.expires_at > $2
	`, token, now)
	user, err := scanUser(row)
	return user, notFound(err)
}

func (s *Store) DeleteSession(ctx context.Context, token string) (bool, error) {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (s *Store) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
