package controller

import (
	"errors"
	"log"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/features/surveys/templates/dto"
	"mysteryshopper_backend/internals/features/surveys/templates/model"
	tenantmodel "mysteryshopper_backend/internals/features/tenants/model"
	helper "mysteryshopper_backend/internals/helpers"
	scope "mysteryshopper_backend/internals/helpers/auth"
	"mysteryshopper_backend/internals/repository"
)

var validate = validator.New()

type TemplateController struct {
	DB        *gorm.DB
	gateway   *repository.GormGateway[model.SurveyTemplateModel, *model.SurveyTemplateModel]
	companies *repository.GormGateway[tenantmodel.CompanyModel, *tenantmodel.CompanyModel]
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{
		DB:        db,
		gateway:   repository.NewGorm[model.SurveyTemplateModel](db),
		companies: repository.NewGorm[tenantmodel.CompanyModel](db),
	}
}

// buildQuestion menerjemahkan request → model + validasi bentuk.
func buildQuestion(templateID uuid.UUID, req dto.CreateQuestionRequest) (*model.QuestionModel, error) {
	weight := 1.0
	if req.QuestionWeight != nil {
		weight = *req.QuestionWeight
	}

	var options datatypes.JSON
	if len(req.QuestionOptions) > 0 {
		raw, err := sonic.Marshal(req.QuestionOptions)
		if err != nil {
			return nil, err
		}
		options = datatypes.JSON(raw)
	}

	q := &model.QuestionModel{
		QuestionTemplateID:   templateID,
		QuestionText:         req.QuestionText,
		QuestionType:         req.QuestionType,
		QuestionOrder:        req.QuestionOrder,
		QuestionWeight:       weight,
		QuestionOptions:      options,
		QuestionAllowComment: req.QuestionAllowComment,
		QuestionAllowMedia:   req.QuestionAllowMedia,
	}
	if err := q.ValidateShape(); err != nil {
		return nil, err
	}
	return q, nil
}

// POST /api/survey-templates — sekalian membuat pertanyaan awal
func (ctrl *TemplateController) Create(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	var req dto.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	company, err := ctrl.companies.GetByID(c.Context(), req.TemplateCompanyID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa company")
	}
	if company == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Company tidak ditemukan")
	}
	if err := sc.CanAccessCompany(company.ID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	template := &model.SurveyTemplateModel{
		TemplateCompanyID:   req.TemplateCompanyID,
		TemplateTitle:       req.TemplateTitle,
		TemplateDescription: req.TemplateDescription,
	}
	if err := ctrl.gateway.Add(c.Context(), &sc.UserID, template); err != nil {
		log.Printf("[ERROR] create template gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat template")
	}

	questions := repository.NewGorm[model.QuestionModel](ctrl.DB)
	for _, qr := range req.Questions {
		q, err := buildQuestion(template.ID, qr)
		if err != nil {
			return helper.JsonValidationError(c, map[string][]string{
				"questions": {err.Error()},
			})
		}
		if err := questions.Add(c.Context(), &sc.UserID, q); err != nil {
			log.Printf("[ERROR] create question gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pertanyaan")
		}
		template.Questions = append(template.Questions, *q)
	}

	return helper.JsonCreated(c, "Template berhasil dibuat", template)
}

// GET /api/survey-templates
func (ctrl *TemplateController) List(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	filter, err := sc.CompanyFilter("template_company_id")
	if err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	var templates []model.SurveyTemplateModel
	if err := filter(ctrl.DB.Where("is_deleted = FALSE")).
		Order("created_at ASC").Find(&templates).Error; err != nil {
		log.Printf("[ERROR] list template gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar template")
	}

	return helper.JsonList(c, "Daftar template", templates)
}

// GET /api/survey-templates/:id — termasuk pertanyaan, urut per order
func (ctrl *TemplateController) GetByID(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID template tidak valid")
	}

	template, err := ctrl.gateway.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil template")
	}
	if template == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
	}
	if err := sc.CanAccessCompany(template.TemplateCompanyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	if err := ctrl.DB.
		Where("question_template_id = ? AND is_deleted = FALSE", template.ID).
		Order("question_order ASC").
		Find(&template.Questions).Error; err != nil {
		log.Printf("[ERROR] load questions gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pertanyaan")
	}

	return helper.JsonOK(c, "Detail template", template)
}

// PUT /api/survey-templates/:id
func (ctrl *TemplateController) Update(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID template tidak valid")
	}

	var req dto.UpdateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	template, err := ctrl.gateway.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil template")
	}
	if template == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
	}
	if err := sc.CanAccessCompany(template.TemplateCompanyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	if req.TemplateTitle != nil {
		template.TemplateTitle = *req.TemplateTitle
	}
	if req.TemplateDescription != nil {
		template.TemplateDescription = req.TemplateDescription
	}
	if err := ctrl.gateway.Update(c.Context(), &sc.UserID, template); err != nil {
		log.Printf("[ERROR] update template gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui template")
	}

	return helper.JsonUpdated(c, "Template diperbarui", template)
}

// DELETE /api/survey-templates/:id?hard=true
func (ctrl *TemplateController) Delete(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID template tidak valid")
	}

	template, err := ctrl.gateway.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil template")
	}
	if template == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
	}
	if err := sc.CanAccessCompany(template.TemplateCompanyID); err != nil {
		return forbiddenFromScopeErr(c, err)
	}

	if c.QueryBool("hard") {
		if !sc.IsAdmin() {
			return helper.JsonError(c, fiber.StatusForbidden, "Hard delete hanya untuk admin")
		}
		if err := ctrl.gateway.HardDelete(c.Context(), id); err != nil {
			log.Printf("[ERROR] hard delete template gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus template")
		}
		return helper.JsonDeleted(c, "Template dihapus permanen", fiber.Map{"id": id})
	}

	if err := ctrl.gateway.SoftDelete(c.Context(), &sc.UserID, id); err != nil {
		log.Printf("[ERROR] soft delete template gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus template")
	}
	return helper.JsonDeleted(c, "Template dihapus", fiber.Map{"id": id})
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
