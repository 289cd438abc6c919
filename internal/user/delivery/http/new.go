package http

import (
	"sccse-chatbot/internal/user"
	"sccse-chatbot/pkg/log"
)

type handler struct {
	l  log.Logger
	uc user.UseCase
}

// New creates a new HTTP handler for account registration and login.
func New(l log.Logger, uc user.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
