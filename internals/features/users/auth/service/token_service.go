package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"mysteryshopper_backend/internals/configs"
	"mysteryshopper_backend/internals/features/users/auth/model"
)

// Masa berlaku access token
const accessTokenTTL = 12 * time.Hour

// CreateAccessToken membuat JWT HS256 berisi identitas + role + tenant.
func CreateAccessToken(user *model.UserModel) (string, error) {
	claims := jwt.MapClaims{
		"sub":   user.UserID.String(),
		"email": user.UserEmail,
		"role":  user.UserRole,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(accessTokenTTL).Unix(),
	}
	if user.UserCompanyID != nil {
		claims["company_id"] = user.UserCompanyID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
