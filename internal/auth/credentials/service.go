package credentials

import (
	"context"
	"errors"
	"fmt"

	"blog-service/internal/user"
)

var (
	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords so callers cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrValidation = errors.New("validation failed")
)

type Service struct {
	users user.Repository
}

func NewService(users user.Repository) *Service {
	return &Service{users: users}
}

// Register creates a new account. Uniqueness is decided by the store's
// single insert, surfacing user.ErrUsernameTaken / user.ErrEmailTaken.
func (s *Service) Register(
	ctx context.Context,
	username string,
	email string,
	password string,
) (*user.User, error) {

	if username == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", ErrValidation)
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	return s.users.Create(ctx, &user.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
}

// Authenticate resolves credentials to a user. Both failure modes collapse
// into ErrInvalidCredentials.
func (s *Service) Authenticate(
	ctx context.Context,
	username string,
	password string,
) (*user.User, error) {

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		// infrastructure failures are not a credentials problem
		return nil, err
	}

	if err := VerifyPassword(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	return u, nil
}

// GetUser loads a user by id, for session resolution.
func (s *Service) GetUser(ctx context.Context, id string) (*user.User, error) {
	return s.users.GetByID(ctx, id)
}
