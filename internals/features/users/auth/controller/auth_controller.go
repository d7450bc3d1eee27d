package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/features/users/auth/dto"
	"mysteryshopper_backend/internals/features/users/auth/service"
	helper "mysteryshopper_backend/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/auth/register
func (ctrl *AuthController) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	user, err := service.Register(ctrl.DB, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			return helper.JsonValidationError(c, map[string][]string{
				"user_role": {"role harus salah satu dari: admin, client, evaluator"},
			})
		case errors.Is(err, service.ErrEmailTaken):
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		default:
			log.Printf("[ERROR] register gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan user")
		}
	}

	return helper.JsonCreated(c, "Registrasi berhasil", dto.ToUserResponse(user))
}

// POST /api/auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	token, user, err := service.Login(ctrl.DB, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			return helper.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		case errors.Is(err, service.ErrUserInactive):
			return helper.JsonError(c, fiber.StatusForbidden, "Akun dinonaktifkan")
		default:
			log.Printf("[ERROR] login gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal login")
		}
	}

	return helper.JsonOK(c, "Login berhasil", dto.AuthResponse{
		AccessToken: token,
		User:        dto.ToUserResponse(user),
	})
}
