package middleware

import (
	"context"
	"net/http"
	"time"

	"blog-service/internal/session"
	"blog-service/internal/user"
)

// unexported, collision-proof context key
type userIDContextKeyType struct{}

var userIDKey = userIDContextKeyType{}

// UserIDFromContext extracts the authenticated user ID from context.
func UserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// UserResolver checks that a session's user still exists.
type UserResolver interface {
	GetUser(ctx context.Context, id string) (*user.User, error)
}

type AuthMiddleware struct {
	Store session.Store
	Users UserResolver
}

func NewAuthMiddleware(store session.Store, users UserResolver) *AuthMiddleware {
	return &AuthMiddleware{Store: store, Users: users}
}

// RequireAuth resolves the session cookie to a live user before letting the
// request through. Missing cookies, unknown or expired sessions, and
// sessions whose user no longer exists are all refused the same way.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			refuse(w)
			return
		}

		sessionID := cookie.Value

		// 2. Load session
		sess, err := a.Store.Get(r.Context(), sessionID)
		if err != nil || sess == nil {
			refuse(w)
			return
		}

		// 3. Enforce session expiry
		if time.Now().After(sess.ExpiresAt) {
			_ = a.Store.Delete(r.Context(), sessionID)
			refuse(w)
			return
		}

		// 4. The user behind the session must still exist
		if _, err := a.Users.GetUser(r.Context(), sess.UserID); err != nil {
			_ = a.Store.Delete(r.Context(), sessionID)
			refuse(w)
			return
		}

		// 5. Attach user_id to context and continue
		ctx := context.WithValue(r.Context(), userIDKey, sess.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// refuse sends the uniform unauthorized response, pointing the caller at
// the login entry point.
func refuse(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"error":"authentication required","login_url":"/auth/login"}`))
}
