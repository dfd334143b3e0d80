package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"go-demandflo-backend/internal/domain"
	"go-demandflo-backend/pkg/apperror"
)

type blogUsecase struct {
	blogRepo domain.BlogPostRepository
}

func NewBlogUsecase(blogRepo domain.BlogPostRepository) domain.BlogUsecase {
	return &blogUsecase{blogRepo: blogRepo}
}

func (u *blogUsecase) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	posts, err := u.blogRepo.ListPublished(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return posts, nil
}

func (u *blogUsecase) GetPublishedBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	post, err := u.blogRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, apperror.Internal(err)
	}
	// The repository matched the slug, but drafts must read as absent on the
	// public surface. Same 404 as a missing slug so drafts are not revealed.
	if !post.Published {
		return nil, apperror.NotFound("Post not found")
	}
	return post, nil
}

func (u *blogUsecase) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	posts, err := u.blogRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return posts, nil
}

func (u *blogUsecase) Create(ctx context.Context, req *domain.CreateBlogPostRequest) (*domain.BlogPost, error) {
	// Explicit existence check so the in-memory backend enforces uniqueness
	// too; the Postgres unique index is the backstop under concurrency.
	if _, err := u.blogRepo.GetBySlug(ctx, req.Slug); err == nil {
		return nil, apperror.Conflict("A post with this slug already exists")
	} else if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	post := &domain.BlogPost{
		ID:        uuid.New(),
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		ReadTime:  req.ReadTime,
		ImageURL:  req.ImageURL,
		Published: req.Published != nil && *req.Published,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.blogRepo.Create(ctx, post); err != nil {
		if errors.Is(err, domain.ErrSlugTaken) {
			return nil, apperror.Conflict("A post with this slug already exists")
		}
		return nil, apperror.Internal(err)
	}
	return post, nil
}

func (u *blogUsecase) Update(ctx context.Context, id uuid.UUID, req *domain.UpdateBlogPostRequest) (*domain.BlogPost, error) {
	post, err := u.blogRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Post not found")
		}
		return nil, apperror.Internal(err)
	}

	if req.Slug != nil && *req.Slug != post.Slug {
		if _, err := u.blogRepo.GetBySlug(ctx, *req.Slug); err == nil {
			return nil, apperror.Conflict("A post with this slug already exists")
		} else if !errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Internal(err)
		}
		post.Slug = *req.Slug
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.Category != nil {
		post.Category = *req.Category
	}
	if req.ReadTime != nil {
		post.ReadTime = *req.ReadTime
	}
	if req.ImageURL != nil {
		post.ImageURL = *req.ImageURL
	}
	if req.Published != nil {
		post.Published = *req.Published
	}

	// UpdatedAt must strictly increase even when mutations land within the
	// clock's resolution.
	now := time.Now()
	if !now.After(post.UpdatedAt) {
		now = post.UpdatedAt.Add(time.Microsecond)
	}
	post.UpdatedAt = now

	if err := u.blogRepo.Update(ctx, post); err != nil {
		switch {
		case errors.Is(err, domain.ErrNotFound):
			return nil, apperror.NotFound("Post not found")
		case errors.Is(err, domain.ErrSlugTaken):
			return nil, apperror.Conflict("A post with this slug already exists")
		default:
			return nil, apperror.Internal(err)
		}
	}
	return post, nil
}

func (u *blogUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	deleted, err := u.blogRepo.Delete(ctx, id)
	if err != nil {
		return apperror.Internal(err)
	}
	if !deleted {
		return apperror.NotFound("Post not found")
	}
	return nil
}
