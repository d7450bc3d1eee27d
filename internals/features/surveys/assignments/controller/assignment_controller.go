package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/features/surveys/assignments/dto"
	"mysteryshopper_backend/internals/features/surveys/assignments/model"
	tplmodel "mysteryshopper_backend/internals/features/surveys/templates/model"
	tenantmodel "mysteryshopper_backend/internals/features/tenants/model"
	helper "mysteryshopper_backend/internals/helpers"
	scope "mysteryshopper_backend/internals/helpers/auth"
	"mysteryshopper_backend/internals/repository"
)

var validate = validator.New()

type AssignmentController struct {
	DB        *gorm.DB
	gateway   *repository.GormGateway[model.SurveyAssignmentModel, *model.SurveyAssignmentModel]
	templates *repository.GormGateway[tplmodel.SurveyTemplateModel, *tplmodel.SurveyTemplateModel]
	agencies  *repository.GormGateway[tenantmodel.AgencyModel, *tenantmodel.AgencyModel]
	employees *repository.GormGateway[tenantmodel.EmployeeModel, *tenantmodel.EmployeeModel]
}

func NewAssignmentController(db *gorm.DB) *AssignmentController {
	return &AssignmentController{
		DB:        db,
		gateway:   repository.NewGorm[model.SurveyAssignmentModel](db),
		templates: repository.NewGorm[tplmodel.SurveyTemplateModel](db),
		agencies:  repository.NewGorm[tenantmodel.AgencyModel](db),
		employees: repository.NewGorm[tenantmodel.EmployeeModel](db),
	}
}

// POST /api/survey-assignments
// Template + agency harus ada dan visible untuk tenant pembuat;
// employee (opsional) harus milik agency yang sama.
func (ctrl *AssignmentController) Create(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	var req dto.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	template, err := ctrl.templates.GetByID(c.Context(), req.AssignmentSurveyTemplateID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa template")
	}
	if template == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
	}
	if err := sc.CanAccessCompany(template.TemplateCompanyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	agency, err := ctrl.agencies.GetByID(c.Context(), req.AssignmentAgencyID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa agency")
	}
	if agency == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Agency tidak ditemukan")
	}
	if err := sc.CanAccessCompany(agency.AgencyCompanyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	if req.AssignmentEmployeeID != nil {
		employee, err := ctrl.employees.GetByID(c.Context(), *req.AssignmentEmployeeID)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa employee")
		}
		if employee == nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Employee tidak ditemukan")
		}
		if employee.EmployeeAgencyID != agency.ID {
			return helper.JsonValidationError(c, map[string][]string{
				"assignment_employee_id": {"employee bukan bagian dari agency yang dipilih"},
			})
		}
	}

	assignment := &model.SurveyAssignmentModel{
		AssignmentSurveyTemplateID: req.AssignmentSurveyTemplateID,
		AssignmentAgencyID:         req.AssignmentAgencyID,
		AssignmentEmployeeID:       req.AssignmentEmployeeID,
		AssignmentEvaluatorUserID:  req.AssignmentEvaluatorUserID,
		AssignmentDueDate:          req.AssignmentDueDate,
		AssignmentCompleted:        false,
	}
	if err := ctrl.gateway.Add(c.Context(), &sc.UserID, assignment); err != nil {
		log.Printf("[ERROR] create assignment gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat assignment")
	}

	return helper.JsonCreated(c, "Assignment berhasil dibuat", assignment)
}

// GET /api/survey-assignments
// Admin semua; client per tenant (via join agency); evaluator hanya miliknya.
func (ctrl *AssignmentController) List(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.SurveyAssignmentModel{}).
		Where("survey_assignments.is_deleted = FALSE")

	switch {
	case sc.IsAdmin():
		// tanpa filter
	case sc.IsClient():
		tid, err := sc.TenantID()
		if err != nil {
			return forbiddenFromScopeErr(c, err)
		}
		q = q.Joins("JOIN agencies ON agencies.id = survey_assignments.assignment_agency_id").
			Where("agencies.agency_company_id = ?", tid)
	case sc.IsEvaluator():
		q = q.Where("survey_assignments.assignment_evaluator_user_id = ?", sc.UserID)
	default:
		return forbiddenFromScopeErr(c, scope.ErrRoleNotAllowed)
	}

	var assignments []model.SurveyAssignmentModel
	if err := q.Preload("SurveyTemplate").Preload("Agency").Preload("Employee").
		Order("survey_assignments.created_at ASC").Find(&assignments).Error; err != nil {
		log.Printf("[ERROR] list assignment gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar assignment")
	}

	return helper.JsonList(c, "Daftar assignment", assignments)
}

// GET /api/survey-assignments/:id
func (ctrl *AssignmentController) GetByID(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}

	assignment, err := ctrl.gateway.GetByID(c.Context(), id, "SurveyTemplate", "Agency", "Employee")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}
	if assignment == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}

	if err := ctrl.authorizeAssignment(c, sc, assignment); err != nil {
		return err
	}

	return helper.JsonOK(c, "Detail assignment", assignment)
}

// GET /api/survey-assignments/:id/survey
// Detail kuesioner untuk dikerjakan: template + pertanyaan urut per order.
func (ctrl *AssignmentController) GetSurvey(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}

	assignment, err := ctrl.gateway.GetByID(c.Context(), id, "Agency", "Employee")
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}
	if assignment == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}
	if err := ctrl.authorizeAssignment(c, sc, assignment); err != nil {
		return err
	}

	template, err := ctrl.templates.GetByID(c.Context(), assignment.AssignmentSurveyTemplateID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil template")
	}
	if template == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Template assignment tidak ditemukan")
	}

	if err := ctrl.DB.
		Where("question_template_id = ? AND is_deleted = FALSE", template.ID).
		Order("question_order ASC").
		Find(&template.Questions).Error; err != nil {
		log.Printf("[ERROR] load questions gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pertanyaan")
	}

	return helper.JsonOK(c, "Detail survey", fiber.Map{
		"assignment": assignment,
		"template":   template,
	})
}

// DELETE /api/survey-assignments/:id?hard=true
// Tidak ada operasi reassign: delete + create ulang.
func (ctrl *AssignmentController) Delete(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID assignment tidak valid")
	}

	assignment, err := ctrl.gateway.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil assignment")
	}
	if assignment == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	}

	companyID, err := ctrl.tenantOfAssignment(c, assignment)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Agency assignment tidak ditemukan")
	}
	if err := sc.CanAccessCompany(companyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	if c.QueryBool("hard") {
		if !sc.IsAdmin() {
			return helper.JsonError(c, fiber.StatusForbidden, "Hard delete hanya untuk admin")
		}
		if err := ctrl.gateway.HardDelete(c.Context(), id); err != nil {
			log.Printf("[ERROR] hard delete assignment gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus assignment")
		}
		return helper.JsonDeleted(c, "Assignment dihapus permanen", fiber.Map{"id": id})
	}

	if err := ctrl.gateway.SoftDelete(c.Context(), &sc.UserID, id); err != nil {
		log.Printf("[ERROR] soft delete assignment gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus assignment")
	}
	return helper.JsonDeleted(c, "Assignment dihapus", fiber.Map{"id": id})
}

// tenantOfAssignment menelusuri company lewat agency assignment.
func (ctrl *AssignmentController) tenantOfAssignment(c *fiber.Ctx, a *model.SurveyAssignmentModel) (uuid.UUID, error) {
	agency, err := ctrl.agencies.GetByID(c.Context(), a.AssignmentAgencyID)
	if err != nil {
		return uuid.Nil, err
	}
	if agency == nil {
		return uuid.Nil, repository.ErrNotFound
	}
	return agency.AgencyCompanyID, nil
}

// authorizeAssignment: admin bebas, client per tenant, evaluator hanya
// assignment yang menyebut dirinya.
func (ctrl *AssignmentController) authorizeAssignment(c *fiber.Ctx, sc *scope.Scope, a *model.SurveyAssignmentModel) error {
	if sc.IsEvaluator() {
		if a.AssignmentEvaluatorUserID != sc.UserID {
			return helper.JsonError(c, fiber.StatusForbidden, "Assignment ini bukan milik Anda")
		}
		return nil
	}

	companyID, err := ctrl.tenantOfAssignment(c, a)
	if err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Agency assignment tidak ditemukan")
	}
	if err := sc.CanAccessCompany(companyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}
	return nil
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
