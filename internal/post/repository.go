package post

import (
	"context"
	"errors"
)

var (
	ErrNotFound   = errors.New("post not found")
	ErrNotAllowed = errors.New("not allowed")
	ErrValidation = errors.New("validation failed")
)

// Repository persists posts. Listings take a page number, are ordered
// newest first with the id as tie-breaker, and return the bounded window
// plus the total count; pages past the end are empty, never an error.
// Update and Delete are scoped by author so the store remains the final
// ownership arbiter even if a caller skips the CanModify check.
type Repository interface {
	Create(ctx context.Context, p *Post) (*Post, error)
	GetByID(ctx context.Context, id int64) (*Post, error)
	Update(ctx context.Context, id int64, authorID, title, body string) error
	Delete(ctx context.Context, id int64, authorID string) error
	List(ctx context.Context, page, pageSize int) ([]Post, int, error)
	ListByAuthor(ctx context.Context, authorID string, page, pageSize int) ([]Post, int, error)
}
