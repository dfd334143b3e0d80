package memory

import (
	"context"
	"sync"

	"go-demandflo-backend/internal/domain"
)

type ContactSubmissionRepo struct {
	mu          sync.RWMutex
	submissions []domain.ContactSubmission
}

func NewContactSubmissionRepository() *ContactSubmissionRepo {
	return &ContactSubmissionRepo{}
}

func (r *ContactSubmissionRepo) Create(ctx context.Context, submission *domain.ContactSubmission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.submissions = append(r.submissions, *submission)
	return nil
}

func (r *ContactSubmissionRepo) ListAll(ctx context.Context) ([]domain.ContactSubmission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Newest first: submissions are appended in creation order.
	out := make([]domain.ContactSubmission, 0, len(r.submissions))
	for i := len(r.submissions) - 1; i >= 0; i-- {
		out = append(out, r.submissions[i])
	}
	return out, nil
}
