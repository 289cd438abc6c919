package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"sccse-chatbot/internal/user"
	"sccse-chatbot/internal/user/repository"
)

func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.RegisterOutput, error) {
	name := strings.TrimSpace(input.Name)
	email := normalizeEmail(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return user.RegisterOutput{}, user.ErrMissingFields
	}

	_, err := uc.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return user.RegisterOutput{}, user.ErrUserExists
	case !errors.Is(err, repository.ErrNotFound):
		return user.RegisterOutput{}, fmt.Errorf("repo.GetByEmail: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), uc.bcryptCost)
	if err != nil {
		return user.RegisterOutput{}, fmt.Errorf("hash password: %w", err)
	}

	u, err := uc.repo.Create(ctx, repository.CreateOptions{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if errors.Is(err, repository.ErrDuplicateEmail) {
		return user.RegisterOutput{}, user.ErrUserExists
	}
	if err != nil {
		return user.RegisterOutput{}, fmt.Errorf("repo.Create: %w", err)
	}

	uc.l.Infof(ctx, "user.usecase.Register: created user %s", u.ID)
	return user.RegisterOutput{User: u}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
