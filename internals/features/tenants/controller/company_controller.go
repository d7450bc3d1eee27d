package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/features/tenants/dto"
	"mysteryshopper_backend/internals/features/tenants/model"
	helper "mysteryshopper_backend/internals/helpers"
	scope "mysteryshopper_backend/internals/helpers/auth"
	"mysteryshopper_backend/internals/repository"
)

var validate = validator.New()

type CompanyController struct {
	DB      *gorm.DB
	gateway *repository.GormGateway[model.CompanyModel, *model.CompanyModel]
}

func NewCompanyController(db *gorm.DB) *CompanyController {
	return &CompanyController{DB: db, gateway: repository.NewGorm[model.CompanyModel](db)}
}

// POST /api/companies (admin only — dipagari route)
func (ctrl *CompanyController) Create(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	var req dto.CreateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	company := &model.CompanyModel{
		CompanyName:  req.CompanyName,
		CompanyNotes: req.CompanyNotes,
	}
	if err := ctrl.gateway.Add(c.Context(), &sc.UserID, company); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return helper.JsonError(c, fiber.StatusConflict, "Nama company sudah dipakai")
		}
		log.Printf("[ERROR] create company gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat company")
	}

	return helper.JsonCreated(c, "Company berhasil dibuat", company)
}

// GET /api/companies — admin semua, client hanya miliknya
func (ctrl *CompanyController) List(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	filter, err := sc.CompanyFilter("id")
	if err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	var companies []model.CompanyModel
	if err := filter(ctrl.DB.Where("is_deleted = FALSE")).
		Order("created_at ASC").Find(&companies).Error; err != nil {
		log.Printf("[ERROR] list company gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar company")
	}

	return helper.JsonList(c, "Daftar company", companies)
}

// GET /api/companies/:id
func (ctrl *CompanyController) GetByID(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID company tidak valid")
	}

	company, err := ctrl.gateway.GetByID(c.Context(), id, "Agencies")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil company")
	}
	if company == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Company tidak ditemukan")
	}
	if err := sc.CanAccessCompany(company.ID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	return helper.JsonOK(c, "Detail company", company)
}

// PUT /api/companies/:id
func (ctrl *CompanyController) Update(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID company tidak valid")
	}

	var req dto.UpdateCompanyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	company, err := ctrl.gateway.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil company")
	}
	if company == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Company tidak ditemukan")
	}
	if err := sc.CanAccessCompany(company.ID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	if req.CompanyName != nil {
		company.CompanyName = *req.CompanyName
	}
	if req.CompanyNotes != nil {
		company.CompanyNotes = req.CompanyNotes
	}
	if err := ctrl.gateway.Update(c.Context(), &sc.UserID, company); err != nil {
		log.Printf("[ERROR] update company gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui company")
	}

	return helper.JsonUpdated(c, "Company diperbarui", company)
}

// DELETE /api/companies/:id?hard=true
// Default soft delete; hard delete fisik hanya admin.
func (ctrl *CompanyController) Delete(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID company tidak valid")
	}

	company, err := ctrl.gateway.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil company")
	}
	if company == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Company tidak ditemukan")
	}
	if err := sc.CanAccessCompany(company.ID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	if c.QueryBool("hard") {
		if !sc.IsAdmin() {
			return helper.JsonError(c, fiber.StatusForbidden, "Hard delete hanya untuk admin")
		}
		if err := ctrl.gateway.HardDelete(c.Context(), id); err != nil {
			log.Printf("[ERROR] hard delete company gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus company")
		}
		return helper.JsonDeleted(c, "Company dihapus permanen", fiber.Map{"id": id})
	}

	if err := ctrl.gateway.SoftDelete(c.Context(), &sc.UserID, id); err != nil {
		log.Printf("[ERROR] soft delete company gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus company")
	}
	return helper.JsonDeleted(c, "Company dihapus", fiber.Map{"id": id})
}

// forbiddenFromScopeErr memetakan error scope → status HTTP.
func forbiddenFromScopeErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, scope.ErrNoTenant):
		return helper.JsonError(c, fiber.StatusForbidden, "Akun client tanpa klaim company")
	case errors.Is(err, scope.ErrRoleNotAllowed):
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak diizinkan untuk operasi ini")
	case errors.Is(err, scope.ErrForbidden):
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak untuk resource ini")
	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa otorisasi")
	}
}
