package repository

import (
	"context"

	"sccse-chatbot/internal/model"
)

// Repository persists user accounts.
type Repository interface {
	// Create stores a new user. Returns ErrDuplicateEmail if the email is taken.
	Create(ctx context.Context, opt CreateOptions) (model.User, error)

	// GetByEmail returns ErrNotFound if no user has that email.
	GetByEmail(ctx context.Context, email string) (model.User, error)
}
