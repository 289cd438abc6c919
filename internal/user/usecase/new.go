package usecase

import (
	"golang.org/x/crypto/bcrypt"

	"sccse-chatbot/internal/user"
	"sccse-chatbot/internal/user/repository"
	pkgLog "sccse-chatbot/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	repo       repository.Repository
	bcryptCost int
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates the account use case. A bcryptCost of zero uses bcrypt.DefaultCost.
func New(l pkgLog.Logger, repo repository.Repository, bcryptCost int) *implUseCase {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &implUseCase{
		l:          l,
		repo:       repo,
		bcryptCost: bcryptCost,
	}
}
