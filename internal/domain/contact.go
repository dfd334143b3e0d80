package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ContactSubmission is one inbound lead-capture form post. Submissions are
// immutable once created and retained indefinitely.
type ContactSubmission struct {
	ID           uuid.UUID `json:"id"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone"`
	RevenueRange *string   `json:"revenueRange"`
	Message      string    `json:"message"`
	CreatedAt    time.Time `json:"createdAt"`
}

// CreateContactRequest represents a contact form submission. Phone and
// RevenueRange are optional and normalized to null when blank.
type CreateContactRequest struct {
	FirstName    string  `json:"firstName" binding:"required"`
	LastName     string  `json:"lastName" binding:"required"`
	Email        string  `json:"email" binding:"required,email"`
	Phone        *string `json:"phone"`
	RevenueRange *string `json:"revenueRange"`
	Message      string  `json:"message" binding:"required"`
}

type ContactSubmissionRepository interface {
	Create(ctx context.Context, submission *ContactSubmission) error
	// ListAll returns every submission, newest first.
	ListAll(ctx context.Context) ([]ContactSubmission, error)
}

type ContactUsecase interface {
	SubmitContact(ctx context.Context, req *CreateContactRequest) (*ContactSubmission, error)
	ListSubmissions(ctx context.Context) ([]ContactSubmission, error)
}
