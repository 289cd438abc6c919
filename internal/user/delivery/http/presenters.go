package http

import (
	"sccse-chatbot/internal/model"
	"sccse-chatbot/internal/user"
)

const (
	messageRegistered = "User registered successfully!"
	messageLoggedIn   = "Login successful"
)

// --- Request DTOs ---

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerReq) toInput() user.RegisterInput {
	return user.RegisterInput{Name: r.Name, Email: r.Email, Password: r.Password}
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginReq) toInput() user.LoginInput {
	return user.LoginInput{Email: r.Email, Password: r.Password}
}

// --- Response DTOs ---

type userResp struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

func newUserResp(message string, u model.User) userResp {
	return userResp{
		Message: message,
		UserID:  u.ID,
		Name:    u.Name,
		Email:   u.Email,
	}
}
