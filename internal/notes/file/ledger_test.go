package file

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"sccse-chatbot/internal/notes"
	"sccse-chatbot/pkg/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func newLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := New(filepath.Join(t.TempDir(), "data", "notes.txt"), log.NewNop())
	require.NoError(t, err)
	return l
}

func TestLedger_NewWritesHeader(t *testing.T) {
	l := newLedger(t)
	text, err := l.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, notes.Header+"\n", text)
	assert.Empty(t, notes.Entries(text))
}

func TestLedger_AppendAndTruncate(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	require.NoError(t, l.Append(ctx, "  club meets Friday "))
	require.NoError(t, l.Append(ctx, "hackathon on 12 March"))

	text, err := l.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, notes.Header+"\n\n- club meets Friday\n- hackathon on 12 March", text)

	require.NoError(t, l.Truncate(ctx))
	text, err = l.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, notes.Header+"\n", text)
}

func TestLedger_AppendEmpty(t *testing.T) {
	l := newLedger(t)
	assert.ErrorIs(t, l.Append(context.Background(), "   "), notes.ErrEmptyNote)
}

func TestLedger_ExistingFileKept(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "notes.txt")

	first, err := New(path, log.NewNop())
	require.NoError(t, err)
	require.NoError(t, first.Append(ctx, "keep me"))

	second, err := New(path, log.NewNop())
	require.NoError(t, err)
	text, err := second.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"keep me"}, notes.Entries(text))
}

func TestLedger_ConcurrentAppends(t *testing.T) {
	ctx := context.Background()
	l := newLedger(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, l.Append(ctx, fmt.Sprintf("note %d", i)))
		}(i)
	}
	wg.Wait()

	text, err := l.Read(ctx)
	require.NoError(t, err)
	entries := notes.Entries(text)
	assert.Len(t, entries, 50)
	for _, e := range entries {
		assert.Regexp(t, `^note \d+$`, e)
	}
}
