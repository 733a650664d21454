package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/MayankSaini-Byte/Study-Edge/internal/model"
	"github.com/MayankSaini-Byte/Study-Edge/internal/repository"
)

var (
	// ErrUnauthenticated means no session token was presented.
	ErrUnauthenticated = errors.New("not authenticated")
	// ErrInvalidSession covers unknown, expired and logged-out tokens alike.
	ErrInvalidSession = errors.New("invalid session")
	// ErrForbidden means the session is valid but the role is insufficient.
	ErrForbidden = errors.New("admin privileges required")
	// ErrInvalidLogin is returned when the login claim is missing a field.
	ErrInvalidLogin = errors.New("name and scholar number are required")
)

const DefaultSessionTTL = 7 * 24 * time.Hour

type Store interface {
	UpsertUser(ctx context.Context, name, scholarNo string) (model.User, bool, error)
	CreateSession(ctx context.Context, session model.Session) error
	GetSessionUser(ctx context.Context, token string, now time.Time) (model.User, error)
	DeleteSession(ctx context.Context, token string) (bool, error)
}

// Authority turns login claims into expiring session tokens and tokens back
// into users. Sessions live only in the store; nothing is cached in memory.
type Authority struct {
	store    Store
	ttl      time.Duration
	now      func() time.Time
	newToken func() (string, error)
}

type Option func(*Authority)

func WithTTL(ttl time.Duration) Option {
	return func(a *Authority) {
		if ttl > 0 {
			a.ttl = ttl
		}
	}
}

func WithClock(now func() time.Time) Option {
	return func(a *Authority) {
		a.now = now
	}
}

func WithTokenGenerator(gen func() (string, error)) Option {
	return func(a *Authority) {
		a.newToken = gen
	}
}

func NewAuthority(store Store, opts ...Option) *Authority {
	a := &Authority{
		store:    store,
		ttl:      DefaultSessionTTL,
		now:      time.Now,
		newToken: NewSessionToken,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Authority) TTL() time.Duration {
	return a.ttl
}

// NewSessionToken returns a random version 4 UUID rendered as text.
func NewSessionToken() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

type LoginResult struct {
	User      model.User
	Token     string
	ExpiresAt time.Time
	Created   bool
}

// Login finds or creates the user for scholarNo, renaming it when name
// changed, and always issues a new session.
func (a *Authority) Login(ctx context.Context, name, scholarNo string) (LoginResult, error) {
	name = strings.TrimSpace(name)
	scholarNo = strings.TrimSpace(scholarNo)
	if name == "" || scholarNo == "" {
		return LoginResult{}, ErrInvalidLogin
	}

	user, created, err := a.store.UpsertUser(ctx, name, scholarNo)
	if err != nil {
		return LoginResult{}, fmt.Errorf("upsert user: %w", err)
	}

	token, err := a.newToken()
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate session token: %w", err)
	}
	expiresAt := a.now().UTC().Add(a.ttl)
	if err := a.store.CreateSession(ctx, model.Session{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: expiresAt,
	}); err != nil {
		return LoginResult{}, fmt.Errorf("create session: %w", err)
	}

	return LoginResult{User: user, Token: token, ExpiresAt: expiresAt, Created: created}, nil
}

// Logout deletes the session row for token if there is one. Absent tokens
// are not an error.
func (a *Authority) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if _, err := a.store.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (a *Authority) Resolve(ctx context.Context, token string) (model.User, error) {
	if token == "" {
		return model.User{}, ErrUnauthenticated
	}
	user, err := a.store.GetSessionUser(ctx, token, a.now().UTC())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.User{}, ErrInvalidSession
		}
		return model.User{}, fmt.Errorf("resolve session: %w", err)
	}
	return user, nil
}

func RequireAdmin(user model.User) (model.User, error) {
	if !user.IsAdmin() {
		return model.User{}, ErrForbidden
	}
	return user, nil
}
