package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
)

type AssignmentStore interface {
	ListAssignments(ctx context.Context, userID int64) ([]model.Assignment, error)
	CreateAssignment(ctx context.Context, a model.Assignment) (model.Assignment, error)
	UpdateAssignment(ctx context.Context, userID, id int64, patch model.AssignmentPatch) (model.Assignment, error)
	DeleteAssignment(ctx context.Context, userID, id int64) error
}

type Assignments struct {
	store AssignmentStore
}

func NewAssignments(store AssignmentStore) *Assignments {
	return &Assignments{store: store}
}

type NewAssignment struct {
	Title   string
	DueDate *time.Time
}

func (s *Assignments) List(ctx context.Context, user model.User) ([]model.Assignment, error) {
	return s.store.ListAssignments(ctx, user.ID)
}

func (s *Assignments) Create(ctx context.Context, user model.User, in NewAssignment) (model.Assignment, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return model.Assignment{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return s.store.CreateAssignment(ctx, model.Assignment{
		Title:   title,
		DueDate: in.DueDate,
		Status:  model.StatusPending,
		UserID:  user.ID,
	})
}

// Update returns repository.ErrNotFound both for unknown ids and for ids owned
// by someone else.
func (s *Assignments) Update(ctx context.Context, user model.User, id int64, patch model.AssignmentPatch) (model.Assignment, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return model.Assignment{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		patch.Title = &title
	}
	return s.store.UpdateAssignment(ctx, user.ID, id, patch)
}

func (s *Assignments) Delete(ctx context.Context, user model.User, id int64) error {
	return s.store.DeleteAssignment(ctx, user.ID, id)
}

// ParseDueDate accepts RFC 3339 timestamps and bare YYYY-MM-DD dates.
func ParseDueDate(value string) (*time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02T15:04", "2006-01-02"} {
		if parsed, err := time.Parse(layout, value); err == nil {
			return &parsed, nil
		}
	}
	return nil, fmt.Errorf("%w: due_date %q is not a date", ErrInvalidInput, value)
}
