package repository

import "errors"

var (
	ErrSummaryNotFound = errors.New("summary not found")
	ErrInvalidRole     = errors.New("invalid role")
)
