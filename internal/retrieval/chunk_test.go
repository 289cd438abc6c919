package retrieval

import (
	"context"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunk_PacksParagraphs(t *testing.T) {
	text := "Tech Team builds the website.\n\nDesign Team makes posters.\n\n\n\nPR Team runs outreach."
	chunks := Chunk(text, 60, 0)
	require.Len(t, chunks, 2)
	assert.Equal(t, "Tech Team builds the website.\n\nDesign Team makes posters.", chunks[0])
	assert.Equal(t, "PR Team runs outreach.", chunks[1])
}

func TestChunk_SplitsLongParagraph(t *testing.T) {
	para := strings.Repeat("word ", 50)
	chunks := Chunk(para, 40, 10)
	require.Greater(t, len(chunks), 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, utf8.RuneCountInString(c), 40)
	}
	// Overlap carries the last words of a chunk into the next one.
	assert.True(t, strings.HasPrefix(chunks[1], "word word"))
}

func TestChunk_Edges(t *testing.T) {
	assert.Nil(t, Chunk("anything", 0, 0))
	assert.Empty(t, Chunk("  \n\n  ", 100, 0))
	assert.Equal(t, []string{"short"}, Chunk("short", 100, 500))
}

func TestNoop(t *testing.T) {
	var n Noop
	got, err := n.Retrieve(context.Background(), "q", 3)
	assert.NoError(t, err)
	assert.Empty(t, got)
	assert.NoError(t, n.Index(context.Background(), nil))
}
