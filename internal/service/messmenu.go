package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
	"github.com/MayankSaini-Byte/Study-Edge/internal/repository"
)

type MessMenuStore interface {
	GetMessMenu(ctx context.Context, day string) (model.MessMenu, error)
	ListMessMenus(ctx context.Context) ([]model.MessMenu, error)
	UpdateMessMenu(ctx context.Context, day string, patch model.MessMenuPatch) (model.MessMenu, error)
	SeedMessMenu(ctx context.Context, menus []model.MessMenu) (int, error)
}

type MessMenu struct {
	store MessMenuStore
	loc   *time.Location
	now   func() time.Time
}

func NewMessMenu(store MessMenuStore, loc *time.Location, now func() time.Time) *MessMenu {
	if loc == nil {
		loc = time.Local
	}
	if now == nil {
		now = time.Now
	}
	return &MessMenu{store: store, loc: loc, now: now}
}

// ResolveDay maps "today" (any case, or empty) to the current weekday in the
// menu's location and lowercases anything else.
func (s *MessMenu) ResolveDay(day string) string {
	day = strings.ToLower(strings.TrimSpace(day))
	if day == "" || day == "today" {
		return model.WeekdayName(s.now().In(s.loc))
	}
	return day
}

// Get returns nil without an error when no row exists for the day.
func (s *MessMenu) Get(ctx context.Context, day string) (*model.MessMenu, error) {
	menu, err := s.store.GetMessMenu(ctx, s.ResolveDay(day))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &menu, nil
}

func (s *MessMenu) Week(ctx context.Context) ([]model.MessMenu, error) {
	return s.store.ListMessMenus(ctx)
}

// Update overwrites only the meals present in patch. Callers must have
// passed auth.RequireAdmin first. An empty patch reads the row back unchanged.
func (s *MessMenu) Update(ctx context.Context, day string, patch model.MessMenuPatch) (model.MessMenu, error) {
	day = strings.ToLower(strings.TrimSpace(day))
	if patch.Empty() {
		return s.store.GetMessMenu(ctx, day)
	}
	return s.store.UpdateMessMenu(ctx, day, patch)
}

// Seed writes DefaultMenu when the table is empty. Running it again is a no-op.
func (s *MessMenu) Seed(ctx context.Context) (int, error) {
	return s.store.SeedMessMenu(ctx, DefaultMenu())
}
