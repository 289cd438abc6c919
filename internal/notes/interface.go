package notes

import "context"

// Ledger is the append-or-truncate text log that grounds time-sensitive answers.
type Ledger interface {
	// Read returns the full ledger text, header included.
	Read(ctx context.Context) (string, error)
	// Append adds one "- <text>" line.
	Append(ctx context.Context, text string) error
	// Truncate removes every entry, leaving only the header.
	Truncate(ctx context.Context) error
}
