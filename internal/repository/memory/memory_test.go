package memory_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-demandflo-backend/internal/domain"
	"go-demandflo-backend/internal/repository/memory"
)

func newPost(slug string, published bool, createdAt time.Time) *domain.BlogPost {
	return &domain.BlogPost{
		ID:        uuid.New(),
		Title:     "Title " + slug,
		Slug:      slug,
		Excerpt:   "excerpt",
		Content:   "content",
		Category:  "category",
		ReadTime:  "5 min read",
		ImageURL:  "https://example.com/x.png",
		Published: published,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestBlogPostRepo(t *testing.T) {
	ctx := context.Background()

	t.Run("ListPublished filters drafts and orders newest first", func(t *testing.T) {
		repo := memory.NewBlogPostRepository()
		base := time.Now()
		require.NoError(t, repo.Create(ctx, newPost("old", true, base.Add(-2*time.Hour))))
		require.NoError(t, repo.Create(ctx, newPost("draft", false, base.Add(-time.Hour))))
		require.NoError(t, repo.Create(ctx, newPost("new", true, base)))

		posts, err := repo.ListPublished(ctx)
		require.NoError(t, err)
		require.Len(t, posts, 2)
		assert.Equal(t, "new", posts[0].Slug)
		assert.Equal(t, "old", posts[1].Slug)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("GetBySlug is exact and case-sensitive", func(t *testing.T) {
		repo := memory.NewBlogPostRepository()
		require.NoError(t, repo.Create(ctx, newPost("hello-world", false, time.Now())))

		post, err := repo.GetBySlug(ctx, "hello-world")
		require.NoError(t, err)
		assert.Equal(t, "hello-world", post.Slug)

		_, err = repo.GetBySlug(ctx, "Hello-World")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		_, err = repo.GetBySlug(ctx, "hello")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Create rejects duplicate slugs", func(t *testing.T) {
		repo := memory.NewBlogPostRepository()
		require.NoError(t, repo.Create(ctx, newPost("dup", false, time.Now())))
		err := repo.Create(ctx, newPost("dup", false, time.Now()))
		assert.ErrorIs(t, err, domain.ErrSlugTaken)
	})

	t.Run("Update rejects stealing another post's slug", func(t *testing.T) {
		repo := memory.NewBlogPostRepository()
		require.NoError(t, repo.Create(ctx, newPost("a", false, time.Now())))
		b := newPost("b", false, time.Now())
		require.NoError(t, repo.Create(ctx, b))

		b.Slug = "a"
		assert.ErrorIs(t, repo.Update(ctx, b), domain.ErrSlugTaken)

		// Re-writing a post under its own slug is fine.
		b.Slug = "b"
		b.Title = "changed"
		require.NoError(t, repo.Update(ctx, b))
	})

	t.Run("Delete reports whether a record existed", func(t *testing.T) {
		repo := memory.NewBlogPostRepository()
		post := newPost("doomed", false, time.Now())
		require.NoError(t, repo.Create(ctx, post))

		deleted, err := repo.Delete(ctx, post.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, post.ID)
		require.NoError(t, err)
		assert.False(t, deleted)

		_, err = repo.GetBySlug(ctx, "doomed")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Returned posts are copies, not aliases of stored state", func(t *testing.T) {
		repo := memory.NewBlogPostRepository()
		post := newPost("aliased", false, time.Now())
		require.NoError(t, repo.Create(ctx, post))

		got, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		got.Title = "mutated by caller"

		again, err := repo.GetByID(ctx, post.ID)
		require.NoError(t, err)
		assert.Equal(t, "Title aliased", again.Title)
	})
}

func TestContactSubmissionRepo(t *testing.T) {
	ctx := context.Background()
	repo := memory.NewContactSubmissionRepository()

	phone := "+15550100"
	require.NoError(t, repo.Create(ctx, &domain.ContactSubmission{
		ID: uuid.New(), FirstName: "A", LastName: "B", Email: "a@b.com",
		Phone: &phone, Message: "one", CreatedAt: time.Now(),
	}))
	require.NoError(t, repo.Create(ctx, &domain.ContactSubmission{
		ID: uuid.New(), FirstName: "C", LastName: "D", Email: "c@d.com",
		Message: "two", CreatedAt: time.Now(),
	}))

	submissions, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, submissions, 2)
	assert.Equal(t, "two", submissions[0].Message)
	assert.Nil(t, submissions[0].Phone)
	require.NotNil(t, submissions[1].Phone)
	assert.Equal(t, "+15550100", *submissions[1].Phone)
}
