package memos

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"sccse-chatbot/internal/notes"
	pkgLog "sccse-chatbot/pkg/log"
)

const (
	listPageSize      = 200
	defaultVisibility = "PRIVATE"
)

// Ledger stores each note as a memo carrying a fixed tag.
type Ledger struct {
	client *Client
	tag    string
	mu     sync.RWMutex
	l      pkgLog.Logger
}

var _ notes.Ledger = (*Ledger)(nil)

// New creates a Memos-backed ledger. tag is written without the leading '#'.
func New(client *Client, tag string, l pkgLog.Logger) *Ledger {
	return &Ledger{
		client: client,
		tag:    strings.TrimPrefix(tag, "#"),
		l:      l,
	}
}

func (m *Ledger) Read(ctx context.Context) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	memos, err := m.list(ctx)
	if err != nil {
		return "", err
	}

	sort.SliceStable(memos, func(i, j int) bool {
		return memos[i].CreateTime < memos[j].CreateTime
	})

	entries := make([]string, 0, len(memos))
	for _, memo := range memos {
		if text := m.stripTag(memo.Content); text != "" {
			entries = append(entries, text)
		}
	}
	return notes.Render(entries), nil
}

func (m *Ledger) Append(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return notes.ErrEmptyNote
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.client.CreateMemo(ctx, CreateMemoRequest{
		Content:    fmt.Sprintf("%s\n\n#%s", text, m.tag),
		Visibility: defaultVisibility,
	})
	if err != nil {
		m.l.Errorf(ctx, "notes memos: failed to create memo: %v", err)
		return err
	}
	return nil
}

func (m *Ledger) Truncate(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	memos, err := m.list(ctx)
	if err != nil {
		return err
	}
	for _, memo := range memos {
		name := memo.Name
		if name == "" {
			name = memo.UID
		}
		if err := m.client.DeleteMemo(ctx, name); err != nil {
			m.l.Errorf(ctx, "notes memos: failed to delete %s: %v", name, err)
			return err
		}
	}
	m.l.Infof(ctx, "notes memos: deleted %d notes", len(memos))
	return nil
}

func (m *Ledger) list(ctx context.Context) ([]Memo, error) {
	filter := fmt.Sprintf("tag in [%q]", m.tag)

	var (
		all   []Memo
		token string
	)
	for {
		page, next, err := m.client.ListMemos(ctx, filter, listPageSize, token)
		if err != nil {
			m.l.Errorf(ctx, "notes memos: failed to list memos: %v", err)
			return nil, err
		}
		all = append(all, page...)
		if next == "" {
			return all, nil
		}
		token = next
	}
}

func (m *Ledger) stripTag(content string) string {
	content = strings.ReplaceAll(content, "#"+m.tag, "")
	return strings.Join(strings.Fields(content), " ")
}
