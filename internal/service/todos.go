package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
)

type TodoStore interface {
	ListTodos(ctx context.Context, userID int64) ([]model.Todo, error)
	CreateTodo(ctx context.Context, t model.Todo) (model.Todo, error)
	UpdateTodo(ctx context.Context, userID, id int64, patch model.TodoPatch) (model.Todo, error)
	DeleteTodo(ctx context.Context, userID, id int64) error
}

type Todos struct {
	store TodoStore
}

func NewTodos(store TodoStore) *Todos {
	return &Todos{store: store}
}

func (s *Todos) List(ctx context.Context, user model.User) ([]model.Todo, error) {
	return s.store.ListTodos(ctx, user.ID)
}

func (s *Todos) Create(ctx context.Context, user model.User, title string) (model.Todo, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return model.Todo{}, fmt.Errorf("%w: title is required", ErrInvalidInput)
	}
	return s.store.CreateTodo(ctx, model.Todo{Title: title, UserID: user.ID})
}

func (s *Todos) Update(ctx context.Context, user model.User, id int64, patch model.TodoPatch) (model.Todo, error) {
	if patch.Title != nil {
		title := strings.TrimSpace(*patch.Title)
		if title == "" {
			return model.Todo{}, fmt.Errorf("%w: title cannot be empty", ErrInvalidInput)
		}
		patch.Title = &title
	}
	return s.store.UpdateTodo(ctx, user.ID, id, patch)
}

func (s *Todos) Delete(ctx context.Context, user model.User, id int64) error {
	return s.store.DeleteTodo(ctx, user.ID, id)
}
