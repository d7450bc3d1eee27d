package service

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"mysteryshopper_backend/internals/constants"
	"mysteryshopper_backend/internals/features/users/auth/dto"
	"mysteryshopper_backend/internals/features/users/auth/model"
)

var (
	ErrInvalidRole        = errors.New("role tidak dikenal")
	ErrEmailTaken         = errors.New("email sudah terdaftar")
	ErrInvalidCredentials = errors.New("email atau password salah")
	ErrUserInactive       = errors.New("akun dinonaktifkan")
)

// Register membuat user baru. Role di luar admin/client/evaluator
// ditolak sebagai ValidationFailed — user TIDAK dibuat.
func Register(db *gorm.DB, req dto.RegisterRequest) (*model.UserModel, error) {
	role := strings.ToLower(strings.TrimSpace(req.UserRole))
	if !constants.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var count int64
	if err := db.Model(&model.UserModel{}).Where("user_email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrEmailTaken
	}

	hashed, err := HashPassword(req.UserPassword)
	if err != nil {
		return nil, err
	}

	user := &model.UserModel{
		UserEmail:     email,
		UserPassword:  hashed,
		UserFullName:  req.UserFullName,
		UserRole:      role,
		UserCompanyID: req.UserCompanyID,
		UserIsActive:  true,
	}
	if err := db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login memverifikasi kredensial dan mengembalikan access token 12 jam.
func Login(db *gorm.DB, req dto.LoginRequest) (string, *model.UserModel, error) {
	email := strings.ToLower(strings.TrimSpace(req.UserEmail))

	var user model.UserModel
	if err := db.Where("user_email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !CheckPasswordHash(req.UserPassword, user.UserPassword) {
		return "", nil, ErrInvalidCredentials
	}
	if !user.UserIsActive {
		return "", nil, ErrUserInactive
	}

	token, err := CreateAccessToken(&user)
	if err != nil {
		return "", nil, err
	}
	return token, &user, nil
}
