package user

import "context"

// UseCase defines the account operations.
type UseCase interface {
	// Register creates an account. Emails are unique, compared lowercased.
	Register(ctx context.Context, input RegisterInput) (RegisterOutput, error)

	// Login checks the credentials and returns the account.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)
}
