package sqlite

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sccse-chatbot/internal/chat/repository"
	"sccse-chatbot/internal/model"
	pkgLog "sccse-chatbot/pkg/log"
	pkgSQLite "sccse-chatbot/pkg/sqlite"
)

func newTestRepo(t *testing.T) repository.Repository {
	t.Helper()
	ctx := context.Background()
	db, err := pkgSQLite.Open(ctx, pkgSQLite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := New(ctx, db, pkgLog.NewNop())
	require.NoError(t, err)
	return repo
}

func TestAppendTurn_ListRecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	for i := 0; i < 5; i++ {
		_, err := repo.AppendTurn(ctx, repository.AppendTurnOptions{
			UserID: "u1", Role: model.RoleUser, Text: fmt.Sprintf("msg %d", i),
		})
		require.NoError(t, err)
	}
	_, err := repo.AppendTurn(ctx, repository.AppendTurnOptions{UserID: "u2", Role: model.RoleUser, Text: "other"})
	require.NoError(t, err)

	turns, err := repo.ListRecent(ctx, repository.ListRecentOptions{UserID: "u1", Limit: 3})
	require.NoError(t, err)
	require.Len(t, turns, 3)
	assert.Equal(t, "msg 4", turns[0].Text)
	assert.Equal(t, "msg 2", turns[2].Text)
	assert.False(t, turns[0].CreatedAt.IsZero())

	n, err := repo.CountTurns(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	n, err = repo.CountTurns(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestAppendTurn_InvalidRole(t *testing.T) {
	repo := newTestRepo(t)
	_, err := repo.AppendTurn(context.Background(), repository.AppendTurnOptions{UserID: "u1", Role: "system", Text: "x"})
	assert.ErrorIs(t, err, repository.ErrInvalidRole)
}

func TestListRecent_ZeroLimit(t *testing.T) {
	repo := newTestRepo(t)
	turns, err := repo.ListRecent(context.Background(), repository.ListRecentOptions{UserID: "u1"})
	require.NoError(t, err)
	assert.Empty(t, turns)
}

func TestSummaries(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	_, err := repo.LatestSummary(ctx, "u1")
	assert.ErrorIs(t, err, repository.ErrSummaryNotFound)

	_, err = repo.AppendSummary(ctx, repository.AppendSummaryOptions{UserID: "u1", Text: "first"})
	require.NoError(t, err)
	_, err = repo.AppendSummary(ctx, repository.AppendSummaryOptions{UserID: "u1", Text: "second"})
	require.NoError(t, err)

	s, err := repo.LatestSummary(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "second", s.Text)
	assert.Equal(t, "u1", s.UserID)
}
