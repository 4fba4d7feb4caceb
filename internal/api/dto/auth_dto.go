package dto

import (
	"booster/internal/api/models"
)

// RegisterRequest for creating a new account
type RegisterRequest struct {
	Name       string `json:"name" binding:"required,min=2,max=120"`
	Email      string `json:"email" binding:"required,email"`
	Document   string `json:"document" binding:"required,min=11,max=18"` // CPF or CNPJ
	Phone      string `json:"phone"`
	ClientType string `json:"client_type" binding:"omitempty,oneof=PF PJ"`
	Password   string `json:"password" binding:"required,min=8"`
}

// LoginRequest for authenticating a user
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// RefreshRequest for exchanging a refresh token for a new access token
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// UserResponse for returning account information (never the password hash)
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	ClientType string `json:"client_type"`
}

// LoginResponse returned on successful login
type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	User         UserResponse `json:"user"`
}

// FromModelToUserResponse converts a User model to UserResponse DTO
func FromModelToUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		ClientType: user.ClientType,
	}
}

// UpdateProfileRequest for updating the current user's profile
type UpdateProfileRequest struct {
	Name  string `json:"name" binding:"omitempty,min=2,max=120"`
	Phone string `json:"phone"`
}
