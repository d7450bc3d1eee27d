package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/features/tenants/dto"
	"mysteryshopper_backend/internals/features/tenants/model"
	helper "mysteryshopper_backend/internals/helpers"
	scope "mysteryshopper_backend/internals/helpers/auth"
	"mysteryshopper_backend/internals/repository"
)

type AgencyController struct {
	DB        *gorm.DB
	gateway   *repository.GormGateway[model.AgencyModel, *model.AgencyModel]
	companies *repository.GormGateway[model.CompanyModel, *model.CompanyModel]
}

func NewAgencyController(db *gorm.DB) *AgencyController {
	return &AgencyController{
		DB:        db,
		gateway:   repository.NewGorm[model.AgencyModel](db),
		companies: repository.NewGorm[model.CompanyModel](db),
	}
}

// POST /api/agencies — company harus ada DAN visible untuk tenant principal
func (ctrl *AgencyController) Create(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	var req dto.CreateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	company, err := ctrl.companies.GetByID(c.Context(), req.AgencyCompanyID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa company")
	}
	if company == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Company tidak ditemukan")
	}
	if err := sc.CanAccessCompany(company.ID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	agency := &model.AgencyModel{
		AgencyCompanyID: req.AgencyCompanyID,
		AgencyName:      req.AgencyName,
		AgencyAddress:   req.AgencyAddress,
	}
	if err := ctrl.gateway.Add(c.Context(), &sc.UserID, agency); err != nil {
		log.Printf("[ERROR] create agency gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat agency")
	}

	return helper.JsonCreated(c, "Agency berhasil dibuat", agency)
}

// GET /api/agencies
func (ctrl *AgencyController) List(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	filter, err := sc.CompanyFilter("agency_company_id")
	if err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	var agencies []model.AgencyModel
	if err := filter(ctrl.DB.Where("is_deleted = FALSE")).
		Order("created_at ASC").Find(&agencies).Error; err != nil {
		log.Printf("[ERROR] list agency gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar agency")
	}

	return helper.JsonList(c, "Daftar agency", agencies)
}

// GET /api/agencies/:id
func (ctrl *AgencyController) GetByID(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID agency tidak valid")
	}

	agency, err := ctrl.gateway.GetByID(c.Context(), id, "Employees")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil agency")
	}
	if agency == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Agency tidak ditemukan")
	}
	if err := sc.CanAccessCompany(agency.AgencyCompanyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	return helper.JsonOK(c, "Detail agency", agency)
}

// PUT /api/agencies/:id
func (ctrl *AgencyController) Update(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID agency tidak valid")
	}

	var req dto.UpdateAgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	agency, err := ctrl.gateway.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil agency")
	}
	if agency == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Agency tidak ditemukan")
	}
	if err := sc.CanAccessCompany(agency.AgencyCompanyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	if req.AgencyName != nil {
		agency.AgencyName = *req.AgencyName
	}
	if req.AgencyAddress != nil {
		agency.AgencyAddress = req.AgencyAddress
	}
	if err := ctrl.gateway.Update(c.Context(), &sc.UserID, agency); err != nil {
		log.Printf("[ERROR] update agency gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui agency")
	}

	return helper.JsonUpdated(c, "Agency diperbarui", agency)
}

// DELETE /api/agencies/:id?hard=true
func (ctrl *AgencyController) Delete(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID agency tidak valid")
	}

	agency, err := ctrl.gateway.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil agency")
	}
	if agency == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Agency tidak ditemukan")
	}
	if err := sc.CanAccessCompany(agency.AgencyCompanyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	if c.QueryBool("hard") {
		if !sc.IsAdmin() {
			return helper.JsonError(c, fiber.StatusForbidden, "Hard delete hanya untuk admin")
		}
		if err := ctrl.gateway.HardDelete(c.Context(), id); err != nil {
			log.Printf("[ERROR] hard delete agency gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus agency")
		}
		return helper.JsonDeleted(c, "Agency dihapus permanen", fiber.Map{"id": id})
	}

	if err := ctrl.gateway.SoftDelete(c.Context(), &sc.UserID, id); err != nil {
		log.Printf("[ERROR] soft delete agency gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus agency")
	}
	return helper.JsonDeleted(c, "Agency dihapus", fiber.Map{"id": id})
}
