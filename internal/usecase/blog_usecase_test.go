package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"go-demandflo-backend/internal/domain"
	"go-demandflo-backend/internal/repository/memory"
	"go-demandflo-backend/internal/usecase"
	"go-demandflo-backend/pkg/apperror"
)

// Mock Repositories
type MockBlogRepo struct {
	mock.Mock
}

func (m *MockBlogRepo) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BlogPost), args.Error(1)
}

func (m *MockBlogRepo) Create(ctx context.Context, post *domain.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogRepo) Update(ctx context.Context, post *domain.BlogPost) error {
	return m.Called(ctx, post).Error(0)
}

func (m *MockBlogRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func validCreateRequest(slug string) *domain.CreateBlogPostRequest {
	return &domain.CreateBlogPostRequest{
		Title:    "Hello",
		Slug:     slug,
		Excerpt:  "A short summary",
		Content:  "First paragraph.\n\nSecond paragraph.",
		Category: "Outbound Strategy",
		ReadTime: "5 min read",
		ImageURL: "https://example.com/hero.png",
	}
}

func TestBlogPublishGate(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewBlogUsecase(memory.NewBlogPostRepository())

	post, err := uc.Create(ctx, validCreateRequest("hello-world"))
	require.NoError(t, err)
	assert.False(t, post.Published, "published must default to false")

	t.Run("Drafts are excluded from the public list", func(t *testing.T) {
		posts, err := uc.ListPublished(ctx)
		require.NoError(t, err)
		assert.Empty(t, posts)
	})

	t.Run("Drafts read as absent by slug", func(t *testing.T) {
		_, err := uc.GetPublishedBySlug(ctx, "hello-world")
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	})

	t.Run("Drafts are visible on the admin list", func(t *testing.T) {
		posts, err := uc.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, posts, 1)
	})

	t.Run("Publishing makes the post visible everywhere", func(t *testing.T) {
		published := true
		_, err := uc.Update(ctx, post.ID, &domain.UpdateBlogPostRequest{Published: &published})
		require.NoError(t, err)

		posts, err := uc.ListPublished(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 1)
		assert.Equal(t, "hello-world", posts[0].Slug)

		got, err := uc.GetPublishedBySlug(ctx, "hello-world")
		require.NoError(t, err)
		assert.Equal(t, post.ID, got.ID)
	})
}

func TestBlogCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("Round-trips the input fields plus generated metadata", func(t *testing.T) {
		uc := usecase.NewBlogUsecase(memory.NewBlogPostRepository())
		req := validCreateRequest("round-trip")
		published := true
		req.Published = &published

		created, err := uc.Create(ctx, req)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, created.ID)
		assert.False(t, created.CreatedAt.IsZero())
		assert.Equal(t, created.CreatedAt, created.UpdatedAt)

		got, err := uc.GetPublishedBySlug(ctx, "round-trip")
		require.NoError(t, err)
		assert.Equal(t, *created, *got)
	})

	t.Run("Rejects a duplicate slug", func(t *testing.T) {
		uc := usecase.NewBlogUsecase(memory.NewBlogPostRepository())
		_, err := uc.Create(ctx, validCreateRequest("taken"))
		require.NoError(t, err)

		_, err = uc.Create(ctx, validCreateRequest("taken"))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindConflict, appErr.Kind)
	})

	t.Run("Maps a storage failure to an internal error", func(t *testing.T) {
		mockRepo := new(MockBlogRepo)
		mockRepo.On("GetBySlug", ctx, "boom").Return(nil, errors.New("connection refused"))

		uc := usecase.NewBlogUsecase(mockRepo)
		_, err := uc.Create(ctx, validCreateRequest("boom"))
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindInternal, appErr.Kind)
	})
}

func TestBlogUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("Changes only the supplied fields", func(t *testing.T) {
		uc := usecase.NewBlogUsecase(memory.NewBlogPostRepository())
		created, err := uc.Create(ctx, validCreateRequest("partial"))
		require.NoError(t, err)

		newTitle := "Renamed"
		updated, err := uc.Update(ctx, created.ID, &domain.UpdateBlogPostRequest{Title: &newTitle})
		require.NoError(t, err)

		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.Equal(t, created.Slug, updated.Slug)
		assert.Equal(t, created.Excerpt, updated.Excerpt)
		assert.Equal(t, created.Content, updated.Content)
		assert.True(t, updated.UpdatedAt.After(created.UpdatedAt), "updatedAt must strictly increase")
	})

	t.Run("Rejects a slug change onto an existing slug", func(t *testing.T) {
		uc := usecase.NewBlogUsecase(memory.NewBlogPostRepository())
		_, err := uc.Create(ctx, validCreateRequest("first"))
		require.NoError(t, err)
		second, err := uc.Create(ctx, validCreateRequest("second"))
		require.NoError(t, err)

		clash := "first"
		_, err = uc.Update(ctx, second.ID, &domain.UpdateBlogPostRequest{Slug: &clash})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindConflict, appErr.Kind)
	})

	t.Run("Unknown ID is not found", func(t *testing.T) {
		uc := usecase.NewBlogUsecase(memory.NewBlogPostRepository())
		title := "x"
		_, err := uc.Update(ctx, uuid.New(), &domain.UpdateBlogPostRequest{Title: &title})
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	})
}

func TestBlogDelete(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewBlogUsecase(memory.NewBlogPostRepository())

	created, err := uc.Create(ctx, validCreateRequest("doomed"))
	require.NoError(t, err)

	require.NoError(t, uc.Delete(ctx, created.ID))

	posts, err := uc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, posts)

	t.Run("Second delete reports nothing deleted", func(t *testing.T) {
		err := uc.Delete(ctx, created.ID)
		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.KindNotFound, appErr.Kind)
	})
}
