package user

import "sccse-chatbot/internal/model"

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterOutput struct {
	User model.User
}

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	User model.User
}
