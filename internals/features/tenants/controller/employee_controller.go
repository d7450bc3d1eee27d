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

type EmployeeController struct {
	DB       *gorm.DB
	gateway  *repository.GormGateway[model.EmployeeModel, *model.EmployeeModel]
	agencies *repository.GormGateway[model.AgencyModel, *model.AgencyModel]
}

func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{
		DB:       db,
		gateway:  repository.NewGorm[model.EmployeeModel](db),
		agencies: repository.NewGorm[model.AgencyModel](db),
	}
}

// tenantOfEmployee menelusuri company lewat agency induknya.
func (ctrl *EmployeeController) tenantOfEmployee(c *fiber.Ctx, e *model.EmployeeModel) (uuid.UUID, error) {
	agency, err := ctrl.agencies.GetByID(c.Context(), e.EmployeeAgencyID)
	if err != nil {
		return uuid.Nil, err
	}
	if agency == nil {
		return uuid.Nil, repository.ErrNotFound
	}
	return agency.AgencyCompanyID, nil
}

// POST /api/employees
func (ctrl *EmployeeController) Create(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	var req dto.CreateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	agency, err := ctrl.agencies.GetByID(c.Context(), req.EmployeeAgencyID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa agency")
	}
	if agency == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Agency tidak ditemukan")
	}
	if err := sc.CanAccessCompany(agency.AgencyCompanyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	employee := &model.EmployeeModel{
		EmployeeAgencyID: req.EmployeeAgencyID,
		EmployeeFullName: req.EmployeeFullName,
		EmployeePosition: req.EmployeePosition,
	}
	if err := ctrl.gateway.Add(c.Context(), &sc.UserID, employee); err != nil {
		log.Printf("[ERROR] create employee gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat employee")
	}

	return helper.JsonCreated(c, "Employee berhasil dibuat", employee)
}

// GET /api/employees?agency_id=
func (ctrl *EmployeeController) List(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	// tenant employee lewat join ke agency
	q := ctrl.DB.Model(&model.EmployeeModel{}).
		Joins("JOIN agencies ON agencies.id = employees.employee_agency_id").
		Where("employees.is_deleted = FALSE AND agencies.is_deleted = FALSE")

	switch {
	case sc.IsAdmin():
		// tanpa filter
	case sc.IsClient():
		tid, err := sc.TenantID()
		if err != nil {
			return forbiddenFromScopeErr(c, err)
		}
		q = q.Where("agencies.agency_company_id = ?", tid)
	default:
		return forbiddenFromScopeErr(c, scope.ErrRoleNotAllowed)
	}

	if agencyID := c.Query("agency_id"); agencyID != "" {
		id, err := uuid.Parse(agencyID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "agency_id tidak valid")
		}
		q = q.Where("employees.employee_agency_id = ?", id)
	}

	var employees []model.EmployeeModel
	if err := q.Order("employees.created_at ASC").Find(&employees).Error; err != nil {
		log.Printf("[ERROR] list employee gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar employee")
	}

	return helper.JsonList(c, "Daftar employee", employees)
}

// GET /api/employees/:id
func (ctrl *EmployeeController) GetByID(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID employee tidak valid")
	}

	employee, err := ctrl.gateway.GetByID(c.Context(), id, "Agency")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil employee")
	}
	if employee == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee tidak ditemukan")
	}

	companyID, err := ctrl.tenantOfEmployee(c, employee)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Agency induk tidak ditemukan")
	}
	if err := sc.CanAccessCompany(companyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	return helper.JsonOK(c, "Detail employee", employee)
}

// PUT /api/employees/:id
func (ctrl *EmployeeController) Update(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID employee tidak valid")
	}

	var req dto.UpdateEmployeeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	employee, err := ctrl.gateway.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil employee")
	}
	if employee == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee tidak ditemukan")
	}

	companyID, err := ctrl.tenantOfEmployee(c, employee)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Agency induk tidak ditemukan")
	}
	if err := sc.CanAccessCompany(companyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	if req.EmployeeFullName != nil {
		employee.EmployeeFullName = *req.EmployeeFullName
	}
	if req.EmployeePosition != nil {
		employee.EmployeePosition = req.EmployeePosition
	}
	if err := ctrl.gateway.Update(c.Context(), &sc.UserID, employee); err != nil {
		log.Printf("[ERROR] update employee gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui employee")
	}

	return helper.JsonUpdated(c, "Employee diperbarui", employee)
}

// DELETE /api/employees/:id?hard=true
func (ctrl *EmployeeController) Delete(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID employee tidak valid")
	}

	employee, err := ctrl.gateway.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil employee")
	}
	if employee == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Employee tidak ditemukan")
	}

	companyID, err := ctrl.tenantOfEmployee(c, employee)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Agency induk tidak ditemukan")
	}
	if err := sc.CanAccessCompany(companyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	if c.QueryBool("hard") {
		if !sc.IsAdmin() {
			return helper.JsonError(c, fiber.StatusForbidden, "Hard delete hanya untuk admin")
		}
		if err := ctrl.gateway.HardDelete(c.Context(), id); err != nil {
			log.Printf("[ERROR] hard delete employee gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus employee")
		}
		return helper.JsonDeleted(c, "Employee dihapus permanen", fiber.Map{"id": id})
	}

	if err := ctrl.gateway.SoftDelete(c.Context(), &sc.UserID, id); err != nil {
		log.Printf("[ERROR] soft delete employee gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus employee")
	}
	return helper.JsonDeleted(c, "Employee dihapus", fiber.Map{"id": id})
}
