package dto

import (
	"time"

	"github.com/google/uuid"

	"mysteryshopper_backend/internals/features/users/auth/model"
)

type RegisterRequest struct {
	UserEmail     string     `json:"user_email" validate:"required,email,max=255"`
	UserPassword  string     `json:"user_password" validate:"required,min=8,max=100"`
	UserFullName  string     `json:"user_full_name" validate:"required,min=3,max=100"`
	UserRole      string     `json:"user_role" validate:"required"`
	UserCompanyID *uuid.UUID `json:"user_company_id,omitempty"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

type UserResponse struct {
	UserID        uuid.UUID  `json:"user_id"`
	UserEmail     string     `json:"user_email"`
	UserFullName  string     `json:"user_full_name"`
	UserRole      string     `json:"user_role"`
	UserCompanyID *uuid.UUID `json:"user_company_id,omitempty"`
	UserIsActive  bool       `json:"user_is_active"`
	UserCreatedAt time.Time  `json:"user_created_at"`
}

type AuthResponse struct {
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

func ToUserResponse(u *model.UserModel) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		UserEmail:     u.UserEmail,
		UserFullName:  u.UserFullName,
		UserRole:      u.UserRole,
		UserCompanyID: u.UserCompanyID,
		UserIsActive:  u.UserIsActive,
		UserCreatedAt: u.UserCreatedAt,
	}
}
