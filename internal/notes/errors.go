package notes

import "errors"

var (
	ErrEmptyNote      = errors.New("notes: empty note")
	ErrUnknownBackend = errors.New("notes: unknown backend")
)
