package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"sccse-chatbot/internal/user"
	"sccse-chatbot/internal/user/repository"
)

func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.LoginOutput, error) {
	email := normalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return user.LoginOutput{}, user.ErrMissingCredentials
	}

	u, err := uc.repo.GetByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}
	if err != nil {
		return user.LoginOutput{}, fmt.Errorf("repo.GetByEmail: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(input.Password)); err != nil {
		uc.l.Warnf(ctx, "user.usecase.Login: password mismatch for user %s", u.ID)
		return user.LoginOutput{}, user.ErrInvalidCredentials
	}

	return user.LoginOutput{User: u}, nil
}
