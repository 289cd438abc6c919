package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sccse-chatbot/internal/model"
	"sccse-chatbot/internal/user/repository"
	pkgLog "sccse-chatbot/pkg/log"
	pkgSQLite "sccse-chatbot/pkg/sqlite"
)

const timestampLayout = "2006-01-02 15:04:05"

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New migrates the users table and returns a Repository backed by db.
func New(ctx context.Context, db *sql.DB, l pkgLog.Logger) (repository.Repository, error) {
	if err := pkgSQLite.Migrate(ctx, db, schema...); err != nil {
		return nil, fmt.Errorf("user repository: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

func (r *implRepository) Create(ctx context.Context, opt repository.CreateOptions) (model.User, error) {
	u := model.User{
		ID:           uuid.NewString(),
		Name:         opt.Name,
		Email:        opt.Email,
		PasswordHash: opt.PasswordHash,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, name, email, password_hash, created_at) VALUES (?, ?, ?, ?, ?)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.CreatedAt.Format(timestampLayout))
	if err != nil {
		if pkgSQLite.IsUniqueViolation(err) {
			return model.User{}, repository.ErrDuplicateEmail
		}
		r.l.Errorf(ctx, "user.repository.sqlite.Create: %v", err)
		return model.User{}, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (r *implRepository) GetByEmail(ctx context.Context, email string) (model.User, error) {
	var (
		u  model.User
		ts sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = ?`, email,
	).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, repository.ErrNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user: %w", err)
	}
	if ts.Valid {
		if t, perr := time.Parse(timestampLayout, ts.String); perr == nil {
			u.CreatedAt = t
		}
	}
	return u, nil
}
