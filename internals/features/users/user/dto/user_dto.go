package dto

import (
	"github.com/google/uuid"
)

type CreateUserRequest struct {
	UserEmail     string     `json:"user_email" validate:"required,email,max=255"`
	UserPassword  string     `json:"user_password" validate:"required,min=8,max=100"`
	UserFullName  string     `json:"user_full_name" validate:"required,min=3,max=100"`
	UserRole      string     `json:"user_role" validate:"required"`
	UserCompanyID *uuid.UUID `json:"user_company_id,omitempty"`
}
