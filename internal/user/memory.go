package user

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository backs the service when no database DSN is configured.
// It mirrors the Postgres uniqueness rules: usernames are case-sensitive,
// emails are compared case-insensitively, and the username conflict wins
// when both fields collide.
type MemoryRepository struct {
	mu    sync.RWMutex
	users map[string]*User // keyed by id
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		users: make(map[string]*User),
	}
}

func (r *MemoryRepository) Create(_ context.Context, u *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if existing.Username == u.Username {
			return nil, ErrUsernameTaken
		}
	}
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return nil, ErrEmailTaken
		}
	}

	stored := *u
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.users[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByUsername(_ context.Context, username string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryRepository) GetByID(_ context.Context, id string) (*User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *u
	return &out, nil
}
