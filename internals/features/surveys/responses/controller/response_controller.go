package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"mysteryshopper_backend/internals/configs"
	"mysteryshopper_backend/internals/features/surveys/responses/dto"
	"mysteryshopper_backend/internals/features/surveys/responses/model"
	"mysteryshopper_backend/internals/features/surveys/responses/service"
	helper "mysteryshopper_backend/internals/helpers"
	scope "mysteryshopper_backend/internals/helpers/auth"
	"mysteryshopper_backend/internals/repository"
)

var validate = validator.New()

type ResponseController struct {
	DB      *gorm.DB
	Service *service.ResponseService
	Files   *service.FileService

	// gateway langsung untuk jalur admin/client (delete + audit read);
	// jalur evaluator lewat Service.
	responses *repository.GormGateway[model.SurveyResponseModel, *model.SurveyResponseModel]
	answers   *repository.GormGateway[model.AnswerModel, *model.AnswerModel]
	media     *repository.GormGateway[model.MediaFileModel, *model.MediaFileModel]
}

func NewResponseController(db *gorm.DB) *ResponseController {
	return &ResponseController{
		DB: db,
		Service: service.NewResponseService(
			service.NewAssignmentStore(db),
			service.NewResponseStore(db),
			service.NewAnswerStore(db),
			service.NewQuestionStore(db),
			service.NewMediaStore(db),
		),
		Files:     service.NewFileService(configs.UploadRoot),
		responses: repository.NewGorm[model.SurveyResponseModel](db),
		answers:   repository.NewGorm[model.AnswerModel](db),
		media:     repository.NewGorm[model.MediaFileModel](db),
	}
}

// lifecycleError memetakan sentinel service → status HTTP.
func lifecycleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrAssignmentNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Assignment tidak ditemukan")
	case errors.Is(err, service.ErrResponseNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Response tidak ditemukan")
	case errors.Is(err, service.ErrAnswerNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Jawaban belum ada untuk pertanyaan ini")
	case errors.Is(err, service.ErrMediaNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Media tidak ditemukan")
	case errors.Is(err, service.ErrQuestionNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, "Pertanyaan tidak ditemukan")
	case errors.Is(err, service.ErrNotEvaluator):
		return helper.JsonError(c, fiber.StatusForbidden, "Anda bukan evaluator assignment ini")
	case errors.Is(err, service.ErrResponseExists):
		return helper.JsonError(c, fiber.StatusConflict, "Response untuk assignment ini sudah dimulai")
	case errors.Is(err, service.ErrAlreadySubmitted):
		return helper.JsonError(c, fiber.StatusConflict, "Response sudah di-submit dan terkunci")
	case errors.Is(err, service.ErrInvalidAnswer):
		return helper.JsonValidationError(c, map[string][]string{
			"answer": {"payload jawaban tidak cocok dengan tipe pertanyaan"},
		})
	case errors.Is(err, service.ErrInvalidMediaKind):
		return helper.JsonValidationError(c, map[string][]string{
			"kind": {"jenis media harus image/video/audio/other"},
		})
	default:
		log.Printf("[ERROR] lifecycle response gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Operasi response gagal")
	}
}

// POST /api/survey-responses/start
func (ctrl *ResponseController) Start(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	var req dto.StartResponseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	resp, err := ctrl.Service.Start(c.Context(), sc.UserID, req.AssignmentID)
	if err != nil {
		return lifecycleError(c, err)
	}
	return helper.JsonCreated(c, "Response dimulai", resp)
}

// POST /api/survey-responses/:responseId/answer
func (ctrl *ResponseController) UpsertAnswer(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	responseID, err := uuid.Parse(c.Params("responseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID response tidak valid")
	}

	var req dto.UpsertAnswerRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonValidatorError(c, err)
	}

	ans, err := ctrl.Service.UpsertAnswer(c.Context(), sc.UserID, responseID, req.QuestionID, service.AnswerInput{
		TextValue:       req.TextValue,
		NumberValue:     req.NumberValue,
		BoolValue:       req.BoolValue,
		SelectedOptions: req.SelectedOptions,
		Comment:         req.Comment,
	})
	if err != nil {
		return lifecycleError(c, err)
	}
	return helper.JsonOK(c, "Jawaban tersimpan", ans)
}

// attachMedia menyimpan file upload lalu menempelkannya ke response/answer.
func (ctrl *ResponseController) attachMedia(c *fiber.Ctx, questionID *uuid.UUID) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	responseID, err := uuid.Parse(c.Params("responseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID response tidak valid")
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File upload tidak ditemukan (field 'file')")
	}

	saved, err := ctrl.Files.SaveUpload(fh)
	if err != nil {
		log.Printf("[ERROR] simpan upload gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan file")
	}

	kind := c.FormValue("kind")
	if kind == "" {
		kind = service.KindForContentType(saved.ContentType)
	}

	media, err := ctrl.Service.AttachMedia(c.Context(), sc.UserID, responseID, questionID, service.MediaInput{
		Kind:         kind,
		FileName:     saved.FileName,
		ContentType:  saved.ContentType,
		SizeBytes:    saved.SizeBytes,
		RelativePath: saved.RelativePath,
	})
	if err != nil {
		return lifecycleError(c, err)
	}
	return helper.JsonCreated(c, "Media terlampir", media)
}

// POST /api/survey-responses/:responseId/upload
func (ctrl *ResponseController) UploadResponseMedia(c *fiber.Ctx) error {
	return ctrl.attachMedia(c, nil)
}

// POST /api/survey-responses/:responseId/answer/:questionId/upload
func (ctrl *ResponseController) UploadAnswerMedia(c *fiber.Ctx) error {
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pertanyaan tidak valid")
	}
	return ctrl.attachMedia(c, &questionID)
}

// POST /api/survey-responses/:responseId/submit
func (ctrl *ResponseController) Submit(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	responseID, err := uuid.Parse(c.Params("responseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID response tidak valid")
	}

	var req dto.SubmitResponseRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Format request tidak valid")
		}
	}

	resp, err := ctrl.Service.Submit(c.Context(), sc.UserID, responseID, req.OverallComment)
	if err != nil {
		return lifecycleError(c, err)
	}
	return helper.JsonOK(c, "Response di-submit", resp)
}

// GET /api/survey-responses
// Admin semua; client per tenant (join assignment→agency); evaluator
// hanya response buatannya sendiri (created_by).
func (ctrl *ResponseController) List(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	q := ctrl.DB.Model(&model.SurveyResponseModel{}).
		Where("survey_responses.is_deleted = FALSE")

	switch {
	case sc.IsAdmin():
		// tanpa filter
	case sc.IsClient():
		tid, err := sc.TenantID()
		if err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Akun client tanpa klaim company")
		}
		q = q.Joins("JOIN survey_assignments ON survey_assignments.id = survey_responses.response_assignment_id").
			Joins("JOIN agencies ON agencies.id = survey_assignments.assignment_agency_id").
			Where("agencies.agency_company_id = ?", tid)
	case sc.IsEvaluator():
		q = sc.OwnerFilter()(q)
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak diizinkan untuk operasi ini")
	}

	var responses []model.SurveyResponseModel
	if err := q.Order("survey_responses.created_at ASC").Find(&responses).Error; err != nil {
		log.Printf("[ERROR] list response gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil daftar response")
	}

	return helper.JsonList(c, "Daftar response", responses)
}

// GET /api/survey-responses/:responseId
func (ctrl *ResponseController) GetByID(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	responseID, err := uuid.Parse(c.Params("responseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID response tidak valid")
	}

	// ?include_deleted=true: jalur audit admin — row soft-deleted ikut
	// terbaca lengkap dengan kolom deleted_at/deleted_by.
	if c.QueryBool("include_deleted") {
		if !sc.IsAdmin() {
			return helper.JsonError(c, fiber.StatusForbidden, "Audit read hanya untuk admin")
		}
		raw, err := ctrl.responses.GetAnyByID(c.Context(), responseID)
		if err != nil {
			log.Printf("[ERROR] audit read response gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil response")
		}
		if raw == nil {
			return helper.JsonError(c, fiber.StatusNotFound, "Response tidak ditemukan")
		}
		return helper.JsonOK(c, "Detail response (audit)", raw)
	}

	var resp model.SurveyResponseModel
	if err := ctrl.DB.
		Where("id = ? AND is_deleted = FALSE", responseID).
		Preload("Answers", "is_deleted = FALSE").
		Preload("Answers.MediaFiles", "is_deleted = FALSE").
		Preload("MediaFiles", "is_deleted = FALSE").
		Preload("Assignment").
		First(&resp).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Response tidak ditemukan")
		}
		log.Printf("[ERROR] detail response gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil response")
	}

	switch {
	case sc.IsAdmin():
		// boleh
	case sc.IsClient():
		if err := ctrl.checkClientTenant(c, sc, resp.ResponseAssignmentID); err != nil {
			return err
		}
	case sc.IsEvaluator():
		if err := sc.CanAccessOwned(resp.CreatedBy); err != nil {
			return helper.JsonError(c, fiber.StatusForbidden, "Response ini bukan milik Anda")
		}
	default:
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak diizinkan untuk operasi ini")
	}

	return helper.JsonOK(c, "Detail response", &resp)
}

// checkClientTenant memastikan response (via assignment→agency) ada di
// tenant si client. Return-nya sudah berupa respons fiber kalau ditolak.
func (ctrl *ResponseController) checkClientTenant(c *fiber.Ctx, sc *scope.Scope, assignmentID uuid.UUID) error {
	tid, err := sc.TenantID()
	if err != nil {
		return helper.JsonError(c, fiber.StatusForbidden, "Akun client tanpa klaim company")
	}
	var agencyCompanyID uuid.UUID
	if err := ctrl.DB.Raw(`
		SELECT agencies.agency_company_id
		FROM survey_assignments
		JOIN agencies ON agencies.id = survey_assignments.assignment_agency_id
		WHERE survey_assignments.id = ?`, assignmentID).
		Scan(&agencyCompanyID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memeriksa tenant response")
	}
	if agencyCompanyID != tid {
		// salah tenant: "ada tapi ditolak", bukan not-found
		return helper.JsonError(c, fiber.StatusForbidden, "Akses ditolak untuk resource ini")
	}
	return nil
}

// DELETE /api/survey-responses/:responseId?hard=true
// Evaluator: soft delete response miliknya — slot unique per assignment
// bebas lagi, jadi kunjungan bisa di-Start ulang. Client: soft delete
// dalam tenant. Hard delete fisik (cascade answers+media) hanya admin.
func (ctrl *ResponseController) Delete(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	responseID, err := uuid.Parse(c.Params("responseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID response tidak valid")
	}
	if c.QueryBool("hard") && !sc.IsAdmin() {
		return helper.JsonError(c, fiber.StatusForbidden, "Hard delete hanya untuk admin")
	}

	if sc.IsEvaluator() {
		if err := ctrl.Service.DeleteResponse(c.Context(), sc.UserID, responseID); err != nil {
			return lifecycleError(c, err)
		}
		return helper.JsonDeleted(c, "Response dihapus", fiber.Map{"id": responseID})
	}
	if !sc.IsAdmin() && !sc.IsClient() {
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak diizinkan untuk operasi ini")
	}

	resp, err := ctrl.responses.GetByID(c.Context(), responseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil response")
	}
	if resp == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Response tidak ditemukan")
	}
	if sc.IsClient() {
		if err := ctrl.checkClientTenant(c, sc, resp.ResponseAssignmentID); err != nil {
			return err
		}
	}

	if c.QueryBool("hard") {
		if err := ctrl.responses.HardDelete(c.Context(), responseID); err != nil {
			log.Printf("[ERROR] hard delete response gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus response")
		}
		return helper.JsonDeleted(c, "Response dihapus permanen", fiber.Map{"id": responseID})
	}

	if err := ctrl.responses.SoftDelete(c.Context(), &sc.UserID, responseID); err != nil {
		log.Printf("[ERROR] soft delete response gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus response")
	}
	return helper.JsonDeleted(c, "Response dihapus", fiber.Map{"id": responseID})
}

// DELETE /api/survey-responses/:responseId/answer/:questionId?hard=true
func (ctrl *ResponseController) DeleteAnswer(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	responseID, err := uuid.Parse(c.Params("responseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID response tidak valid")
	}
	questionID, err := uuid.Parse(c.Params("questionId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pertanyaan tidak valid")
	}
	if c.QueryBool("hard") && !sc.IsAdmin() {
		return helper.JsonError(c, fiber.StatusForbidden, "Hard delete hanya untuk admin")
	}

	if sc.IsEvaluator() {
		if err := ctrl.Service.DeleteAnswer(c.Context(), sc.UserID, responseID, questionID); err != nil {
			return lifecycleError(c, err)
		}
		return helper.JsonDeleted(c, "Jawaban dihapus", fiber.Map{"response_id": responseID, "question_id": questionID})
	}
	if !sc.IsAdmin() && !sc.IsClient() {
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak diizinkan untuk operasi ini")
	}

	resp, err := ctrl.responses.GetByID(c.Context(), responseID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil response")
	}
	if resp == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Response tidak ditemukan")
	}
	if sc.IsClient() {
		if err := ctrl.checkClientTenant(c, sc, resp.ResponseAssignmentID); err != nil {
			return err
		}
	}

	rows, err := ctrl.answers.List(c.Context(), map[string]any{
		"answer_response_id": responseID,
		"answer_question_id": questionID,
	})
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil jawaban")
	}
	if len(rows) == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jawaban belum ada untuk pertanyaan ini")
	}
	answerID := rows[0].ID

	if c.QueryBool("hard") {
		if err := ctrl.answers.HardDelete(c.Context(), answerID); err != nil {
			log.Printf("[ERROR] hard delete answer gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jawaban")
		}
		return helper.JsonDeleted(c, "Jawaban dihapus permanen", fiber.Map{"id": answerID})
	}

	if err := ctrl.answers.SoftDelete(c.Context(), &sc.UserID, answerID); err != nil {
		log.Printf("[ERROR] soft delete answer gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus jawaban")
	}
	return helper.JsonDeleted(c, "Jawaban dihapus", fiber.Map{"id": answerID})
}

// DELETE /api/media-files/:id?hard=true
func (ctrl *ResponseController) DeleteMedia(c *fiber.Ctx) error {
	sc, err := scope.ResolveScope(c)
	if err != nil {
		return err
	}

	mediaID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID media tidak valid")
	}
	if c.QueryBool("hard") && !sc.IsAdmin() {
		return helper.JsonError(c, fiber.StatusForbidden, "Hard delete hanya untuk admin")
	}

	if sc.IsEvaluator() {
		if err := ctrl.Service.DeleteMedia(c.Context(), sc.UserID, mediaID); err != nil {
			return lifecycleError(c, err)
		}
		return helper.JsonDeleted(c, "Media dihapus", fiber.Map{"id": mediaID})
	}
	if !sc.IsAdmin() && !sc.IsClient() {
		return helper.JsonError(c, fiber.StatusForbidden, "Role tidak diizinkan untuk operasi ini")
	}

	mediaFile, err := ctrl.media.GetByID(c.Context(), mediaID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil media")
	}
	if mediaFile == nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Media tidak ditemukan")
	}

	if sc.IsClient() {
		// parent response dilacak langsung atau lewat answer
		var responseID uuid.UUID
		switch {
		case mediaFile.MediaResponseID != nil:
			responseID = *mediaFile.MediaResponseID
		case mediaFile.MediaAnswerID != nil:
			ans, err := ctrl.answers.GetByID(c.Context(), *mediaFile.MediaAnswerID)
			if err != nil || ans == nil {
				return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melacak induk media")
			}
			responseID = ans.AnswerResponseID
		}
		resp, err := ctrl.responses.GetByID(c.Context(), responseID)
		if err != nil || resp == nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal melacak induk media")
		}
		if err := ctrl.checkClientTenant(c, sc, resp.ResponseAssignmentID); err != nil {
			return err
		}
	}

	if c.QueryBool("hard") {
		if err := ctrl.media.HardDelete(c.Context(), mediaID); err != nil {
			log.Printf("[ERROR] hard delete media gagal: %v", err)
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus media")
		}
		return helper.JsonDeleted(c, "Media dihapus permanen", fiber.Map{"id": mediaID})
	}

	if err := ctrl.media.SoftDelete(c.Context(), &sc.UserID, mediaID); err != nil {
		log.Printf("[ERROR] soft delete media gagal: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus media")
	}
	return helper.JsonDeleted(c, "Media dihapus", fiber.Map{"id": mediaID})
}
