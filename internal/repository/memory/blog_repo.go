// Package memory provides mutex-guarded in-memory implementations of the
// repository contracts. It is the default backend when no DATABASE_URL is
// configured and the backend the handler tests run against. Stores are plain
// injected instances, never package globals, so every test gets a fresh one.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"go-demandflo-backend/internal/domain"
)

type BlogPostRepo struct {
	mu    sync.RWMutex
	posts map[uuid.UUID]domain.BlogPost
}

func NewBlogPostRepository() *BlogPostRepo {
	return &BlogPostRepo{posts: make(map[uuid.UUID]domain.BlogPost)}
}

func (r *BlogPostRepo) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	return r.list(func(p domain.BlogPost) bool { return p.Published }), nil
}

func (r *BlogPostRepo) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	return r.list(func(domain.BlogPost) bool { return true }), nil
}

func (r *BlogPostRepo) list(keep func(domain.BlogPost) bool) []domain.BlogPost {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var posts []domain.BlogPost
	for _, p := range r.posts {
		if keep(p) {
			posts = append(posts, p)
		}
	}
	// Newest first, matching the Postgres ordering.
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts
}

func (r *BlogPostRepo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Exact, case-sensitive match only.
	for _, p := range r.posts {
		if p.Slug == slug {
			post := p
			return &post, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *BlogPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.posts[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	post := p
	return &post, nil
}

func (r *BlogPostRepo) Create(ctx context.Context, post *domain.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.posts {
		if p.Slug == post.Slug {
			return domain.ErrSlugTaken
		}
	}
	r.posts[post.ID] = *post
	return nil
}

func (r *BlogPostRepo) Update(ctx context.Context, post *domain.BlogPost) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[post.ID]; !ok {
		return domain.ErrNotFound
	}
	for _, p := range r.posts {
		if p.Slug == post.Slug && p.ID != post.ID {
			return domain.ErrSlugTaken
		}
	}
	r.posts[post.ID] = *post
	return nil
}

func (r *BlogPostRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.posts[id]; !ok {
		return false, nil
	}
	delete(r.posts, id)
	return true, nil
}
