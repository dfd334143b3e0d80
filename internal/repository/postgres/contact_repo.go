package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"go-demandflo-backend/internal/domain"
)

type contactSubmissionRepo struct {
	db *pgxpool.Pool
}

func NewContactSubmissionRepository(db *pgxpool.Pool) domain.ContactSubmissionRepository {
	return &contactSubmissionRepo{db: db}
}

func (r *contactSubmissionRepo) Create(ctx context.Context, submission *domain.ContactSubmission) error {
	query := `INSERT INTO contact_submissions (id, first_name, last_name, email, phone, revenue_range, message, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Exec(ctx, query,
		submission.ID, submission.FirstName, submission.LastName, submission.Email,
		submission.Phone, submission.RevenueRange, submission.Message, submission.CreatedAt,
	)
	return err
}

func (r *contactSubmissionRepo) ListAll(ctx context.Context) ([]domain.ContactSubmission, error) {
	query := `SELECT id, first_name, last_name, email, phone, revenue_range, message, created_at
              FROM contact_submissions ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var submissions []domain.ContactSubmission
	for rows.Next() {
		var s domain.ContactSubmission
		if err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.Email,
			&s.Phone, &s.RevenueRange, &s.Message, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}
	return submissions, rows.Err()
}
