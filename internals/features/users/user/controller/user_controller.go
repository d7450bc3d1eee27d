package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/constants"
	authdto "mysteryshopper_backend/internals/features/users/auth/dto"
	authmodel "mysteryshopper_backend/internals/features/users/auth/model"
	authservice "mysteryshopper_backend/internals/features/users/auth/service"
	"mysteryshopper_backend/internals/features/users/user/dto"
	"mysteryshopper_backend/internals/features/users/user/service"
	helper "mysteryshopper_backend/internals/helpers"
	scope "mysteryshopper_backend/internals/helpers/auth"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// POST /api/users
// Admin: role & tenant bebas. Client: dipaksa evaluator + tenant sendiri.
func (ctrl *UserController) Create(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	role, companyID, err := service.ResolveProvisionedUser(sc, req.UserRole, req.UserCompanyID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRole):
			return helper.JsonValidationError(c, map[string][]string{
				"user_role": {"role harus salah satu dari: admin, client, evaluator"},
			})
		case errors.Is(err, scope.ErrNoTenant), errors.Is(err, scope.ErrRoleNotAllowed):
			return helper.JsonError(c, fiber.StatusForbidden, "Tidak berwenang membuat user")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
		}
	}

	user, err := authservice.Register(ctrl.DB, authdto.RegisterRequest{
		UserEmail:     req.UserEmail,
		UserPassword:  req.UserPassword,
		UserFullName:  req.UserFullName,
		UserRole:      role,
		UserCompanyID: companyID,
	})
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrEmailTaken):
			return helper.JsonError(c, fiber.StatusConflict, "Email sudah terdaftar")
		default:
			log.Printf("[ERROR] create user gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat user")
		}
	}

	return helper.JsonCreated(c, "User berhasil dibuat", authdto.ToUserResponse(user))
}

// GET /api/users?role=
// Admin: semua user. Client: hanya user tenant-nya sendiri.
func (ctrl *UserController) List(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&authmodel.UserModel{})

	switch {
	case sc.IsAdmin():
		// tanpa filter
	case sc.IsClient():
		tid, err := sc.TenantID()
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun client tanpa company")
		}
		q = q.Where("user_company_id = ?", tid)
	default:
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdminOrClient("daftar user"))
	}

	if role := strings.ToLower(c.Query("role")); role != "" {
		if !constants.ValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Filter role tidak dikenal")
		}
		q = q.Where("user_role = ?", role)
	}

	var users []authmodel.UserModel
	if err := q.Order("user_created_at ASC").Find(&users).Error; err != nil {
		log.Printf("[ERROR] list user gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	out := make([]authdto.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, authdto.ToUserResponse(&users[i]))
	}
	return helper.JsonList(c, "Daftar user", out)
}

// DELETE /api/users/:id
// Nonaktifkan akun. Admin: siapa pun. Client: hanya evaluator tenant-nya.
func (ctrl *UserController) Deactivate(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID user tidak valid")
	}

	var user authmodel.UserModel
	if err := ctrl.DB.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil user")
	}

	switch {
	case sc.IsAdmin():
		// boleh
	case sc.IsClient():
		tid, err := sc.TenantID()
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun client tanpa company")
		}
		if user.UserRole != constants.RoleEvaluator ||
			user.UserCompanyID == nil || *user.UserCompanyID != tid {
			return helper.JsonError(c, fiber.StatusForbidden, "Tidak berwenang menonaktifkan user ini")
		}
	default:
		return helper.JsonError(c, fiber.StatusForbidden, constants.RoleErrorAdminOrClient("hapus user"))
	}

	if err := ctrl.DB.Model(&user).Update("user_is_active", false).Error; err != nil {
		log.Printf("[ERROR] nonaktifkan user gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menonaktifkan user")
	}

	return helper.JsonDeleted(c, "User dinonaktifkan", fiber.Map{"user_id": userID})
}
