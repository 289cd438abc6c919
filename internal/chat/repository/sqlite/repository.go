package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"sccse-chatbot/internal/chat/repository"
	"sccse-chatbot/internal/model"
	pkgLog "sccse-chatbot/pkg/log"
	pkgSQLite "sccse-chatbot/pkg/sqlite"
)

// SQLite stores CURRENT_TIMESTAMP as "YYYY-MM-DD HH:MM:SS" in UTC.
const timestampLayout = "2006-01-02 15:04:05"

type implRepository struct {
	db *sql.DB
	l  pkgLog.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New migrates the schema and returns a Repository backed by db.
func New(ctx context.Context, db *sql.DB, l pkgLog.Logger) (repository.Repository, error) {
	if err := pkgSQLite.Migrate(ctx, db, schema...); err != nil {
		return nil, fmt.Errorf("chat repository: %w", err)
	}
	return &implRepository{db: db, l: l}, nil
}

func (r *implRepository) AppendTurn(ctx context.Context, opt repository.AppendTurnOptions) (model.Turn, error) {
	if opt.Role != model.RoleUser && opt.Role != model.RoleAssistant {
		return model.Turn{}, fmt.Errorf("%w: %q", repository.ErrInvalidRole, opt.Role)
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO messages (user_id, role, message) VALUES (?, ?, ?)`,
		opt.UserID, opt.Role, opt.Text)
	if err != nil {
		r.l.Errorf(ctx, "chat.repository.sqlite.AppendTurn: user=%s err=%v", opt.UserID, err)
		return model.Turn{}, fmt.Errorf("append turn: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Turn{}, fmt.Errorf("append turn: %w", err)
	}

	return model.Turn{
		ID:        id,
		UserID:    opt.UserID,
		Role:      opt.Role,
		Text:      opt.Text,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (r *implRepository) ListRecent(ctx context.Context, opt repository.ListRecentOptions) ([]model.Turn, error) {
	if opt.Limit <= 0 {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, role, message, timestamp FROM messages
		 WHERE user_id = ? ORDER BY id DESC LIMIT ?`,
		opt.UserID, opt.Limit)
	if err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	defer rows.Close()

	var turns []model.Turn
	for rows.Next() {
		var (
			t  model.Turn
			ts sql.NullString
		)
		if err := rows.Scan(&t.ID, &t.UserID, &t.Role, &t.Text, &ts); err != nil {
			return nil, fmt.Errorf("scan turn: %w", err)
		}
		t.CreatedAt = parseTimestamp(ts)
		turns = append(turns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list turns: %w", err)
	}
	return turns, nil
}

func (r *implRepository) CountTurns(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM messages WHERE user_id = ?`, userID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count turns: %w", err)
	}
	return n, nil
}

func (r *implRepository) AppendSummary(ctx context.Context, opt repository.AppendSummaryOptions) (model.Summary, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO summaries (user_id, summary) VALUES (?, ?)`, opt.UserID, opt.Text)
	if err != nil {
		r.l.Errorf(ctx, "chat.repository.sqlite.AppendSummary: user=%s err=%v", opt.UserID, err)
		return model.Summary{}, fmt.Errorf("append summary: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return model.Summary{}, fmt.Errorf("append summary: %w", err)
	}

	return model.Summary{ID: id, UserID: opt.UserID, Text: opt.Text, CreatedAt: time.Now().UTC()}, nil
}

func (r *implRepository) LatestSummary(ctx context.Context, userID string) (model.Summary, error) {
	var (
		s  model.Summary
		ts sql.NullString
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, summary, timestamp FROM summaries
		 WHERE user_id = ? ORDER BY id DESC LIMIT 1`, userID).
		Scan(&s.ID, &s.UserID, &s.Text, &ts)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Summary{}, repository.ErrSummaryNotFound
	}
	if err != nil {
		return model.Summary{}, fmt.Errorf("latest summary: %w", err)
	}
	s.CreatedAt = parseTimestamp(ts)
	return s, nil
}

func parseTimestamp(ts sql.NullString) time.Time {
	if !ts.Valid {
		return time.Time{}
	}
	for _, layout := range []string{timestampLayout, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, ts.String); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}
