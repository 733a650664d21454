// Package memstore is an in-memory stand-in for the Postgres repository. It
// mirrors the repository's query semantics closely enough for handler and
// service tests to run without a database.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
	"github.com/MayankSaini-Byte/Study-Edge/internal/repository"
)

type Store struct {
	mu sync.Mutex

	now func() time.Time

	users       []model.User
	sessions    map[string]model.Session
	assignments []model.Assignment
	todos       []model.Todo
	menus       []model.MessMenu

	nextUserID       int64
	nextAssignmentID int64
	nextTodoID       int64
	nextMenuID       int64
}

func New() *Store {
	return &Store{
		now:      time.Now,
		sessions: map[string]model.Session{},
	}
}

// WithClock overrides the clock used for created_at columns.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) UpsertUser(_ context.Context, name, scholarNo string) (model.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ScholarNo == scholarNo {
			s.users[i].Name = name
			return s.users[i], false, nil
		}
	}
	s.nextUserID++
	user := model.User{
		ID:        s.nextUserID,
		Name:      name,
		ScholarNo: scholarNo,
		Role:      model.RoleStudent,
		CreatedAt: s.now(),
	}
	s.users = append(s.users, user)
	return user, true, nil
}

func (s *Store) GetUserByScholarNo(_ context.Context, scholarNo string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if user.ScholarNo == scholarNo {
			return user, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (s *Store) ListUsers(_ context.Context) ([]model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.User(nil), s.users...), nil
}

func (s *Store) SetUserRole(_ context.Context, scholarNo string, role model.Role) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ScholarNo == scholarNo {
			s.users[i].Role = role
			return s.users[i], nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (s *Store) CreateSession(_ context.Context, session model.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.Token] = session
	return nil
}

func (s *Store) GetSessionUser(_ context.Context, token string, now time.Time) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[token]
	if !ok || !session.ExpiresAt.After(now) {
		return model.User{}, repository.ErrNotFound
	}
	for _, user := range s.users {
		if user.ID == session.UserID {
			return user, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (s *Store) DeleteSession(_ context.Context, token string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sessions[token]
	delete(s.sessions, token)
	return ok, nil
}

func (s *Store) DeleteExpiredSessions(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for token, session := range s.sessions {
		if !session.ExpiresAt.After(now) {
			delete(s.sessions, token)
			removed++
		}
	}
	return removed, nil
}

// SessionCount reports stored rows, expired ones included.
func (s *Store) SessionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Store) ListAssignments(_ context.Context, userID int64) ([]model.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Assignment{}
	for _, a := range s.assignments {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *Store) CreateAssignment(_ context.Context, a model.Assignment) (model.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextAssignmentID++
	a.ID = s.nextAssignmentID
	a.CreatedAt = s.now()
	s.assignments = append(s.assignments, a)
	return a, nil
}

func (s *Store) UpdateAssignment(_ context.Context, userID, id int64, patch model.AssignmentPatch) (model.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.assignments {
		a := &s.assignments[i]
		if a.ID != id || a.UserID != userID {
			continue
		}
		if patch.Title != nil {
			a.Title = *patch.Title
		}
		if patch.DueDate != nil {
			due := *patch.DueDate
			a.DueDate = &due
		}
		if patch.Status != nil {
			a.Status = *patch.Status
		}
		return *a, nil
	}
	return model.Assignment{}, repository.ErrNotFound
}

func (s *Store) DeleteAssignment(_ context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.assignments {
		if a.ID == id && a.UserID == userID {
			s.assignments = append(s.assignments[:i], s.assignments[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) ListTodos(_ context.Context, userID int64) ([]model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.Todo{}
	for _, t := range s.todos {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *Store) CreateTodo(_ context.Context, t model.Todo) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextTodoID++
	t.ID = s.nextTodoID
	t.CreatedAt = s.now()
	s.todos = append(s.todos, t)
	return t, nil
}

func (s *Store) UpdateTodo(_ context.Context, userID, id int64, patch model.TodoPatch) (model.Todo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.todos {
		t := &s.todos[i]
		if t.ID != id || t.UserID != userID {
			continue
		}
		if patch.Title != nil {
			t.Title = *patch.Title
		}
		if patch.Completed != nil {
			t.Completed = *patch.Completed
		}
		return *t, nil
	}
	return model.Todo{}, repository.ErrNotFound
}

func (s *Store) DeleteTodo(_ context.Context, userID, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.todos {
		if t.ID == id && t.UserID == userID {
			s.todos = append(s.todos[:i], s.todos[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Store) GetMessMenu(_ context.Context, day string) (model.MessMenu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.menus {
		if m.Day == day {
			return m, nil
		}
	}
	return model.MessMenu{}, repository.ErrNotFound
}

func (s *Store) ListMessMenus(_ context.Context) ([]model.MessMenu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := append([]model.MessMenu{}, s.menus...)
	sort.SliceStable(out, func(i, j int) bool {
		return model.WeekdayIndex(out[i].Day) < model.WeekdayIndex(out[j].Day)
	})
	return out, nil
}

func (s *Store) UpdateMessMenu(_ context.Context, day string, patch model.MessMenuPatch) (model.MessMenu, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.menus {
		m := &s.menus[i]
		if m.Day != day {
			continue
		}
		if patch.Breakfast != nil {
			m.Breakfast = *patch.Breakfast
		}
		if patch.Lunch != nil {
			m.Lunch = *patch.Lunch
		}
		if patch.TeaTime != nil {
			value := *patch.TeaTime
			m.TeaTime = &value
		}
		if patch.Dinner != nil {
			m.Dinner = *patch.Dinner
		}
		return *m, nil
	}
	return model.MessMenu{}, repository.ErrNotFound
}

func (s *Store) SeedMessMenu(_ context.Context, menus []model.MessMenu) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.menus) > 0 {
		return 0, nil
	}
	for _, m := range menus {
		s.nextMenuID++
		m.ID = s.nextMenuID
		s.menus = append(s.menus, m)
	}
	return len(menus), nil
}
