package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel merepresentasikan akun pengguna (admin, client, evaluator).
// Client dan evaluator terikat ke satu company lewat UserCompanyID.
type UserModel struct {
	UserID        uuid.UUID  `json:"user_id" gorm:"column:user_id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserEmail     string     `json:"user_email" gorm:"column:user_email;type:varchar(255);unique;not null"`
	UserPassword  string     `json:"-" gorm:"column:user_password;type:varchar(250);not null"`
	UserFullName  string     `json:"user_full_name" gorm:"column:user_full_name;type:varchar(100);not null"`
	UserRole      string     `json:"user_role" gorm:"column:user_role;type:varchar(20);not null;default:'evaluator'"`
	UserCompanyID *uuid.UUID `json:"user_company_id,omitempty" gorm:"column:user_company_id;type:uuid;index"`
	UserIsActive  bool       `json:"user_is_active" gorm:"column:user_is_active;not null;default:true"`
	UserCreatedAt time.Time  `json:"user_created_at" gorm:"column:user_created_at;autoCreateTime"`
	UserUpdatedAt *time.Time `json:"user_updated_at,omitempty" gorm:"column:user_updated_at;autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}
