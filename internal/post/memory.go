package post

import (
	"context"
	"sort"
	"sync"
	"time"

	"blog-service/internal/pagination"
)

// MemoryRepository backs the service when no database DSN is configured.
// Ordering matches the Postgres feed index: created_at descending with the
// id as tie-breaker.
type MemoryRepository struct {
	mu     sync.RWMutex
	posts  map[int64]*Post
	nextID int64
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		posts:  make(map[int64]*Post),
		nextID: 1,
	}
}

func (r *MemoryRepository) Create(_ context.Context, p *Post) (*Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *p
	stored.ID = r.nextID
	stored.CreatedAt = time.Now()
	r.nextID++

	r.posts[stored.ID] = &stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByID(_ context.Context, id int64) (*Post, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, ErrNotFound
	}
	out := *p
	return &out, nil
}

func (r *MemoryRepository) Update(_ context.Context, id int64, authorID, title, body string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok || p.AuthorID != authorID {
		return ErrNotFound
	}

	p.Title = title
	p.Body = body
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64, authorID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.posts[id]
	if !ok || p.AuthorID != authorID {
		return ErrNotFound
	}

	delete(r.posts, id)
	return nil
}

func (r *MemoryRepository) List(_ context.Context, page, pageSize int) ([]Post, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pg := pagination.Slice(r.ordered(func(*Post) bool { return true }), page, pageSize)
	return pg.Items, pg.TotalCount, nil
}

func (r *MemoryRepository) ListByAuthor(_ context.Context, authorID string, page, pageSize int) ([]Post, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pg := pagination.Slice(r.ordered(func(p *Post) bool { return p.AuthorID == authorID }), page, pageSize)
	return pg.Items, pg.TotalCount, nil
}

func (r *MemoryRepository) ordered(keep func(*Post) bool) []Post {
	var posts []Post
	for _, p := range r.posts {
		if keep(p) {
			posts = append(posts, *p)
		}
	}

	sort.Slice(posts, func(i, j int) bool {
		if !posts[i].CreatedAt.Equal(posts[j].CreatedAt) {
			return posts[i].CreatedAt.After(posts[j].CreatedAt)
		}
		return posts[i].ID > posts[j].ID
	})

	return posts
}
