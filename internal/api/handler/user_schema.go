package handler

import "github.com/contactdesk/contacts-api/internal/core/domain"

type registerRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,min=6,max=100"`
	Name     string `json:"name"     validate:"required,max=100"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Password string `json:"password" validate:"required,max=100"`
}

// updateUserRequest is a partial update: nil fields are left untouched.
type updateUserRequest struct {
	Name     *string `json:"name"     validate:"omitempty,min=1,max=100"`
	Password *string `json:"password" validate:"omitempty,min=6,max=100"`
}

// userResponse never exposes the password hash. Token is present only in
// the login response.
type userResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Token    string `json:"token,omitempty"`
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{Username: u.Username, Name: u.Name}
}
