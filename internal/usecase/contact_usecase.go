package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"go-demandflo-backend/internal/domain"
	"go-demandflo-backend/pkg/apperror"
)

type contactUsecase struct {
	contactRepo domain.ContactSubmissionRepository
}

func NewContactUsecase(contactRepo domain.ContactSubmissionRepository) domain.ContactUsecase {
	return &contactUsecase{contactRepo: contactRepo}
}

func (u *contactUsecase) SubmitContact(ctx context.Context, req *domain.CreateContactRequest) (*domain.ContactSubmission, error) {
	submission := &domain.ContactSubmission{
		ID:           uuid.New(),
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Email:        strings.TrimSpace(req.Email),
		Phone:        normalizeOptional(req.Phone),
		RevenueRange: normalizeOptional(req.RevenueRange),
		Message:      strings.TrimSpace(req.Message),
		CreatedAt:    time.Now(),
	}

	if err := u.contactRepo.Create(ctx, submission); err != nil {
		return nil, apperror.Internal(err)
	}
	return submission, nil
}

func (u *contactUsecase) ListSubmissions(ctx context.Context) ([]domain.ContactSubmission, error) {
	submissions, err := u.contactRepo.ListAll(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return submissions, nil
}

// normalizeOptional maps missing or blank optional fields to an explicit
// null so the store never holds empty strings or the literal "undefined".
func normalizeOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
