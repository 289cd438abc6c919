package model

import "time"

// User is a registered account.
type User struct {
	ID           string
	Name         string
	Email        string // stored lowercased
	PasswordHash string
	CreatedAt    time.Time
}
