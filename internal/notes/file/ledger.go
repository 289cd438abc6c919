package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"sccse-chatbot/internal/notes"
	pkgLog "sccse-chatbot/pkg/log"
)

// Ledger keeps the notes in a plain text file.
type Ledger struct {
	path string
	mu   sync.RWMutex
	l    pkgLog.Logger
}

var _ notes.Ledger = (*Ledger)(nil)

// New opens the ledger at path, writing the header if the file does not exist.
func New(path string, l pkgLog.Logger) (*Ledger, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("notes file: create dir: %w", err)
		}
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(path, []byte(notes.Header+"\n"), 0o644); err != nil {
			return nil, fmt.Errorf("notes file: init: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("notes file: stat: %w", err)
	}
	return &Ledger{path: path, l: l}, nil
}

func (f *Ledger) Read(ctx context.Context) (string, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return notes.Header + "\n", nil
	}
	if err != nil {
		return "", fmt.Errorf("notes file: read: %w", err)
	}
	return string(b), nil
}

func (f *Ledger) Append(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return notes.ErrEmptyNote
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	fh, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("notes file: open: %w", err)
	}
	defer fh.Close()

	if _, err := fh.WriteString("\n" + notes.EntryPrefix + text); err != nil {
		return fmt.Errorf("notes file: append: %w", err)
	}
	f.l.Infof(ctx, "notes file: appended note (%d chars)", len(text))
	return nil
}

func (f *Ledger) Truncate(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := os.WriteFile(f.path, []byte(notes.Header+"\n"), 0o644); err != nil {
		return fmt.Errorf("notes file: truncate: %w", err)
	}
	f.l.Info(ctx, "notes file: truncated to header")
	return nil
}
