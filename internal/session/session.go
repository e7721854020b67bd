package session

import (
	"context"
	"time"
)

// Session binds a client-held opaque token to a user identity.
// It carries identity pointers only, never credential material.
type Session struct {
	SessionID string    // opaque token held by the client
	UserID    string    // references users.id
	ExpiresAt time.Time // absolute expiry time
}

// Store defines how sessions are persisted and retrieved.
// Get returns (nil, nil) when the session does not exist.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
}
