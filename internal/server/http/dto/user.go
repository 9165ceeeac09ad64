package dto

import "github.com/polkiloo/cars/internal/domain/model"

// Credentials is the login/password payload shared by auth and user management endpoints.
type Credentials struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// TokenResponse carries the issued token in the body, next to the header and cookie.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the public view of a user. Password hashes never leave the service.
type UserResponse struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// NewUserResponse converts a domain user.
func NewUserResponse(user model.User) UserResponse {
	return UserResponse{ID: user.ID, Login: user.Login}
}

// NewUserList converts users preserving order. The result is never nil.
func NewUserList(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}

// HealthResponse reports service status.
type HealthResponse struct {
	Status string `json:"status"`
}
