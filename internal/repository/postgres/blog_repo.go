package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-demandflo-backend/internal/domain"
)

// uniqueViolation is the Postgres error code raised by the unique slug index.
const uniqueViolation = "23505"

type blogPostRepo struct {
	db *pgxpool.Pool
}

func NewBlogPostRepository(db *pgxpool.Pool) domain.BlogPostRepository {
	return &blogPostRepo{db: db}
}

const blogPostColumns = `id, title, slug, excerpt, content, category, read_time, image_url, published, created_at, updated_at`

func (r *blogPostRepo) ListPublished(ctx context.Context) ([]domain.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE published = true ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *blogPostRepo) ListAll(ctx context.Context) ([]domain.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *blogPostRepo) list(ctx context.Context, query string) ([]domain.BlogPost, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.BlogPost
	for rows.Next() {
		var post domain.BlogPost
		if err := rows.Scan(
			&post.ID, &post.Title, &post.Slug, &post.Excerpt, &post.Content, &post.Category,
			&post.ReadTime, &post.ImageURL, &post.Published, &post.CreatedAt, &post.UpdatedAt,
		); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}

func (r *blogPostRepo) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *blogPostRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	query := `SELECT ` + blogPostColumns + ` FROM blog_posts WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *blogPostRepo) getOne(ctx context.Context, query string, arg any) (*domain.BlogPost, error) {
	var post domain.BlogPost
	err := r.db.QueryRow(ctx, query, arg).Scan(
		&post.ID, &post.Title, &post.Slug, &post.Excerpt, &post.Content, &post.Category,
		&post.ReadTime, &post.ImageURL, &post.Published, &post.CreatedAt, &post.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (r *blogPostRepo) Create(ctx context.Context, post *domain.BlogPost) error {
	query := `INSERT INTO blog_posts (id, title, slug, excerpt, content, category, read_time, image_url, published, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.db.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content, post.Category,
		post.ReadTime, post.ImageURL, post.Published, post.CreatedAt, post.UpdatedAt,
	)
	return mapSlugConflict(err)
}

func (r *blogPostRepo) Update(ctx context.Context, post *domain.BlogPost) error {
	query := `UPDATE blog_posts
              SET title = $2, slug = $3, excerpt = $4, content = $5, category = $6, read_time = $7, image_url = $8, published = $9, updated_at = $10
              WHERE id = $1`
	tag, err := r.db.Exec(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content, post.Category,
		post.ReadTime, post.ImageURL, post.Published, post.UpdatedAt,
	)
	if err != nil {
		return mapSlugConflict(err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *blogPostRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func mapSlugConflict(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return domain.ErrSlugTaken
	}
	return err
}
