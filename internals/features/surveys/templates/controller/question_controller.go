package controller

import (
	"log"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/features/surveys/templates/dto"
	"mysteryshopper_backend/internals/features/surveys/templates/model"
	helper "mysteryshopper_backend/internals/helpers"
	scope "mysteryshopper_backend/internals/helpers/auth"
	"mysteryshopper_backend/internals/repository"
)

type QuestionController struct {
	DB        *gorm.DB
	gateway   *repository.GormGateway[model.QuestionModel, *model.QuestionModel]
	templates *repository.GormGateway[model.SurveyTemplateModel, *model.SurveyTemplateModel]
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{
		DB:        db,
		gateway:   repository.NewGorm[model.QuestionModel](db),
		templates: repository.NewGorm[model.SurveyTemplateModel](db),
	}
}

// authorizeTemplate memastikan template ada + tenant principal berhak.
func (ctrl *QuestionController) authorizeTemplate(c *fiber.Ctx, sc *scope.Scope, templateID uuid.UUID) (*model.SurveyTemplateModel, error) {
	template, err := ctrl.templates.GetByID(c.Context(), templateID)
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa template")
	}
	if template == nil {
		return nil, helper.JsonError(c, fiber.StatusNotFound, "Template tidak ditemukan")
	}
	if err := sc.CanAccessCompany(template.TemplateCompanyID); err != nil {
		return nil, forbiddenFromScopeErr(c, err)
	}
	return template, nil
}

// POST /api/survey-templates/:templateId/questions
func (ctrl *QuestionController) Create(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	templateID, err := uuid.Parse(c.Params("templateId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID template tidak valid")
	}

	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	if _, err := ctrl.authorizeTemplate(c, sc, templateID); err != nil {
		return err
	}

	q, err := buildQuestion(templateID, req)
	if err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"question": {err.Error()},
		})
	}
	if err := ctrl.gateway.Add(c.Context(), &sc.UserID, q); err != nil {
		log.Printf("[ERROR] create question gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat pertanyaan")
	}

	return helper.JsonCreated(c, "Pertanyaan berhasil dibuat", q)
}

// PUT /api/questions/:id
func (ctrl *QuestionController) Update(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pertanyaan tidak valid")
	}

	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	q, err := ctrl.gateway.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pertanyaan")
	}
	if q == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}
	if _, err := ctrl.authorizeTemplate(c, sc, q.QuestionTemplateID); err != nil {
		return err
	}

	if req.QuestionText != nil {
		q.QuestionText = *req.QuestionText
	}
	if req.QuestionOrder != nil {
		q.QuestionOrder = *req.QuestionOrder
	}
	if req.QuestionWeight != nil {
		q.QuestionWeight = *req.QuestionWeight
	}
	if req.QuestionOptions != nil {
		raw, err := sonic.Marshal(req.QuestionOptions)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Opsi pertanyaan tidak valid")
		}
		q.QuestionOptions = datatypes.JSON(raw)
	}
	if req.QuestionAllowComment != nil {
		q.QuestionAllowComment = *req.QuestionAllowComment
	}
	if req.QuestionAllowMedia != nil {
		q.QuestionAllowMedia = *req.QuestionAllowMedia
	}

	if err := q.ValidateShape(); err != nil {
		return helper.JsonValidationError(c, map[string][]string{
			"question": {err.Error()},
		})
	}
	if err := ctrl.gateway.Update(c.Context(), &sc.UserID, q); err != nil {
		log.Printf("[ERROR] update question gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memperbarui pertanyaan")
	}

	return helper.JsonUpdated(c, "Pertanyaan diperbarui", q)
}

// DELETE /api/questions/:id?hard=true
func (ctrl *QuestionController) Delete(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pertanyaan tidak valid")
	}

	q, err := ctrl.gateway.GetByID(c.Context(), id)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil pertanyaan")
	}
	if q == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	}
	if _, err := ctrl.authorizeTemplate(c, sc, q.QuestionTemplateID); err != nil {
		return err
	}

	if c.QueryBool("hard") {
		if !sc.IsAdmin() {
			return helper.JsonError(c, fiber.StatusForbidden, "Hard delete hanya untuk admin")
		}
		if err := ctrl.gateway.HardDelete(c.Context(), id); err != nil {
			log.Printf("[ERROR] hard delete question gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pertanyaan")
		}
		return helper.JsonDeleted(c, "Pertanyaan dihapus permanen", fiber.Map{"id": id})
	}

	if err := ctrl.gateway.SoftDelete(c.Context(), &sc.UserID, id); err != nil {
		log.Printf("[ERROR] soft delete question gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus pertanyaan")
	}
	return helper.JsonDeleted(c, "Pertanyaan dihapus", fiber.Map{"id": id})
}
