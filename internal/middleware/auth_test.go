package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blog-service/internal/session"
	"blog-service/internal/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	users map[string]*user.User
}

func (s *stubResolver) GetUser(_ context.Context, id string) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

func newAuthEnv(t *testing.T) (*AuthMiddleware, *session.MemoryStore, *stubResolver) {
	t.Helper()
	store := session.NewMemoryStore()
	resolver := &stubResolver{users: map[string]*user.User{}}
	return NewAuthMiddleware(store, resolver), store, resolver
}

func protectedHandler(gotUserID *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, _ := UserIDFromContext(r.Context())
		*gotUserID = id
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(auth *AuthMiddleware, next http.Handler, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	auth.RequireAuth(next).ServeHTTP(rec, req)
	return rec
}

func TestRequireAuth_NoCookie(t *testing.T) {
	auth, _, _ := newAuthEnv(t)

	var gotUserID string
	rec := doRequest(auth, protectedHandler(&gotUserID), nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "/auth/login")
	assert.Empty(t, gotUserID)
}

func TestRequireAuth_UnknownSession(t *testing.T) {
	auth, _, _ := newAuthEnv(t)

	var gotUserID string
	rec := doRequest(auth, protectedHandler(&gotUserID),
		&http.Cookie{Name: session.CookieName, Value: "bogus"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, gotUserID)
}

func TestRequireAuth_ValidSession(t *testing.T) {
	auth, store, resolver := newAuthEnv(t)

	resolver.users["u-1"] = &user.User{ID: "u-1", Username: "alice"}
	require.NoError(t, store.Create(context.Background(), session.Session{
		SessionID: "sid-1",
		UserID:    "u-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	var gotUserID string
	rec := doRequest(auth, protectedHandler(&gotUserID),
		&http.Cookie{Name: session.CookieName, Value: "sid-1"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-1", gotUserID)
}

func TestRequireAuth_DanglingUser(t *testing.T) {
	auth, store, _ := newAuthEnv(t)

	// session exists but the user behind it does not
	require.NoError(t, store.Create(context.Background(), session.Session{
		SessionID: "sid-1",
		UserID:    "u-gone",
		ExpiresAt: time.Now().Add(time.Hour),
	}))

	var gotUserID string
	rec := doRequest(auth, protectedHandler(&gotUserID),
		&http.Cookie{Name: session.CookieName, Value: "sid-1"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, gotUserID)

	// the dangling session was cleaned up
	got, err := store.Get(context.Background(), "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUserIDFromContext_Missing(t *testing.T) {
	_, ok := UserIDFromContext(context.Background())
	assert.False(t, ok)
}

// staleStore hands back a session past its expiry, which the memory store
// would normally have dropped on read.
type staleStore struct {
	sess    session.Session
	deleted []string
}

func (s *staleStore) Create(context.Context, session.Session) error { return nil }

func (s *staleStore) Get(_ context.Context, sessionID string) (*session.Session, error) {
	if sessionID != s.sess.SessionID {
		return nil, nil
	}
	out := s.sess
	return &out, nil
}

func (s *staleStore) Delete(_ context.Context, sessionID string) error {
	s.deleted = append(s.deleted, sessionID)
	return nil
}

func TestRequireAuth_ExpiredSessionDeleted(t *testing.T) {
	store := &staleStore{sess: session.Session{
		SessionID: "sid-old",
		UserID:    "u-1",
		ExpiresAt: time.Now().Add(-time.Minute),
	}}
	resolver := &stubResolver{users: map[string]*user.User{
		"u-1": {ID: "u-1"},
	}}
	auth := NewAuthMiddleware(store, resolver)

	var gotUserID string
	rec := doRequest(auth, protectedHandler(&gotUserID),
		&http.Cookie{Name: session.CookieName, Value: "sid-old"})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, []string{"sid-old"}, store.deleted)
	assert.Empty(t, gotUserID)
}
