package model

import "strings"

// AnonymousUserID is used when a caller does not identify the user.
const AnonymousUserID = "anonymous"

// Scope identifies who a request is acting for.
type Scope struct {
	UserID   string // stable conversation key, e.g. an account id or "telegram_<chat id>"
	UserName string // display name, optional
}

// NewScope trims both fields and falls back to AnonymousUserID.
func NewScope(userID, userName string) Scope {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		userID = AnonymousUserID
	}
	return Scope{UserID: userID, UserName: strings.TrimSpace(userName)}
}
