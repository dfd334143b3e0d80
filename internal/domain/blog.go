package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Common domain errors
var (
	ErrNotFound  = errors.New("resource not found")
	ErrSlugTaken = errors.New("slug already in use")
)

// BlogPost is one article on the marketing site. Slug is the public lookup
// key and is unique across all posts; ID and CreatedAt never change after
// creation.
type BlogPost struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Excerpt   string    `json:"excerpt"`
	Content   string    `json:"content"`
	Category  string    `json:"category"`
	ReadTime  string    `json:"readTime"`
	ImageURL  string    `json:"imageUrl"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateBlogPostRequest is the admin create payload. Published is optional
// and defaults to false (draft).
type CreateBlogPostRequest struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug" binding:"required,slug"`
	Excerpt   string `json:"excerpt" binding:"required"`
	Content   string `json:"content" binding:"required"`
	Category  string `json:"category" binding:"required"`
	ReadTime  string `json:"readTime" binding:"required"`
	ImageURL  string `json:"imageUrl" binding:"required"`
	Published *bool  `json:"published"`
}

// UpdateBlogPostRequest is a partial update: only non-nil fields are applied.
// ID and CreatedAt are not part of the payload and can never be overwritten.
type UpdateBlogPostRequest struct {
	Title     *string `json:"title" binding:"omitempty,min=1"`
	Slug      *string `json:"slug" binding:"omitempty,slug"`
	Excerpt   *string `json:"excerpt" binding:"omitempty,min=1"`
	Content   *string `json:"content" binding:"omitempty,min=1"`
	Category  *string `json:"category" binding:"omitempty,min=1"`
	ReadTime  *string `json:"readTime" binding:"omitempty,min=1"`
	ImageURL  *string `json:"imageUrl" binding:"omitempty,min=1"`
	Published *bool   `json:"published"`
}

type BlogPostRepository interface {
	// ListPublished returns published posts only, newest first.
	ListPublished(ctx context.Context) ([]BlogPost, error)
	// ListAll returns every post regardless of published state, newest first.
	ListAll(ctx context.Context) ([]BlogPost, error)
	// GetBySlug matches the slug exactly (case-sensitive) and returns the
	// post whether or not it is published; callers enforce the publish gate.
	GetBySlug(ctx context.Context, slug string) (*BlogPost, error)
	GetByID(ctx context.Context, id uuid.UUID) (*BlogPost, error)
	Create(ctx context.Context, post *BlogPost) error
	Update(ctx context.Context, post *BlogPost) error
	// Delete hard-deletes the post and reports whether a record existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type BlogUsecase interface {
	ListPublished(ctx context.Context) ([]BlogPost, error)
	// GetPublishedBySlug re-checks the published flag even though unpublished
	// posts never reach the public list; an unpublished post reads as absent.
	GetPublishedBySlug(ctx context.Context, slug string) (*BlogPost, error)
	ListAll(ctx context.Context) ([]BlogPost, error)
	Create(ctx context.Context, req *CreateBlogPostRequest) (*BlogPost, error)
	Update(ctx context.Context, id uuid.UUID, req *UpdateBlogPostRequest) (*BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
