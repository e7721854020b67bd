package post

import (
	"context"
	"fmt"

	"blog-service/internal/pagination"
)

// PerPage is the fixed feed page size. It is a system constant, never
// caller-controlled, so per-request payload size stays bounded.
const PerPage = 6

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, authorID, title, body string) (*Post, error) {
	if authorID == "" {
		return nil, ErrNotAllowed
	}
	if err := validateFields(title, body); err != nil {
		return nil, err
	}

	return s.repo.Create(ctx, &Post{
		Title:    title,
		Body:     body,
		AuthorID: authorID,
	})
}

func (s *Service) Get(ctx context.Context, id int64) (*Post, error) {
	return s.repo.GetByID(ctx, id)
}

// Edit replaces title and body of an owned post. Author and creation time
// are immutable; both fields commit in a single store operation.
func (s *Service) Edit(ctx context.Context, userID string, id int64, title, body string) (*Post, error) {
	if err := validateFields(title, body); err != nil {
		return nil, err
	}

	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !CanModify(userID, p) {
		return nil, ErrNotAllowed
	}

	if err := s.repo.Update(ctx, id, userID, title, body); err != nil {
		return nil, err
	}

	p.Title = title
	p.Body = body
	return p, nil
}

func (s *Service) Delete(ctx context.Context, userID string, id int64) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !CanModify(userID, p) {
		return ErrNotAllowed
	}

	return s.repo.Delete(ctx, id, userID)
}

// Feed returns one page of all posts, newest first.
func (s *Service) Feed(ctx context.Context, page int) (pagination.Page[Post], error) {
	if page < 1 {
		page = 1
	}

	posts, total, err := s.repo.List(ctx, page, PerPage)
	if err != nil {
		return pagination.Page[Post]{}, err
	}

	return pagination.New(posts, page, PerPage, total), nil
}

// Dashboard returns one page of the author's own posts, newest first.
func (s *Service) Dashboard(ctx context.Context, authorID string, page int) (pagination.Page[Post], error) {
	if page < 1 {
		page = 1
	}

	posts, total, err := s.repo.ListByAuthor(ctx, authorID, page, PerPage)
	if err != nil {
		return pagination.Page[Post]{}, err
	}

	return pagination.New(posts, page, PerPage, total), nil
}

func validateFields(title, body string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", ErrValidation)
	}
	if body == "" {
		return fmt.Errorf("%w: body is required", ErrValidation)
	}
	return nil
}
