package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/MayankSaini-Byte/Study-Edge/internal/db"
)

// ErrNotFound is returned when a row is absent or not owned by the caller.
// The two cases are never distinguished.
var ErrNotFound = errors.New("not found")

type Store struct {
	db *db.Store
}

func NewStore(store *db.Store) *Store {
	return &Store{db: store}
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
