package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	asgmodel "mysteryshopper_backend/internals/features/surveys/assignments/model"
	respmodel "mysteryshopper_backend/internals/features/surveys/responses/model"
	tplmodel "mysteryshopper_backend/internals/features/surveys/templates/model"
	"mysteryshopper_backend/internals/repository"
)

/* =========================================================
   STORES
   Interface sempit di atas gateway generik supaya service
   lifecycle bisa dites pakai fake tanpa database.
========================================================= */

type AssignmentStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*asgmodel.SurveyAssignmentModel, error)
	Update(ctx context.Context, actor *uuid.UUID, a *asgmodel.SurveyAssignmentModel) error
}

type ResponseStore interface {
	Add(ctx context.Context, actor *uuid.UUID, r *respmodel.SurveyResponseModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*respmodel.SurveyResponseModel, error)
	FindActiveByAssignment(ctx context.Context, assignmentID uuid.UUID) (*respmodel.SurveyResponseModel, error)
	Update(ctx context.Context, actor *uuid.UUID, r *respmodel.SurveyResponseModel) error
	SoftDelete(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error
}

type AnswerStore interface {
	Add(ctx context.Context, actor *uuid.UUID, a *respmodel.AnswerModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*respmodel.AnswerModel, error)
	GetByResponseQuestion(ctx context.Context, responseID, questionID uuid.UUID) (*respmodel.AnswerModel, error)
	ListByResponse(ctx context.Context, responseID uuid.UUID) ([]respmodel.AnswerModel, error)
	Update(ctx context.Context, actor *uuid.UUID, a *respmodel.AnswerModel) error
	SoftDelete(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error
}

type QuestionStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (*tplmodel.QuestionModel, error)
	ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]tplmodel.QuestionModel, error)
}

type MediaStore interface {
	Add(ctx context.Context, actor *uuid.UUID, m *respmodel.MediaFileModel) error
	GetByID(ctx context.Context, id uuid.UUID) (*respmodel.MediaFileModel, error)
	SoftDelete(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error
}

/* =========================================================
   GORM IMPLEMENTATIONS
========================================================= */

type gormAssignmentStore struct {
	gw *repository.GormGateway[asgmodel.SurveyAssignmentModel, *asgmodel.SurveyAssignmentModel]
}

func NewAssignmentStore(db *gorm.DB) AssignmentStore {
	return &gormAssignmentStore{gw: repository.NewGorm[asgmodel.SurveyAssignmentModel](db)}
}

func (s *gormAssignmentStore) GetByID(ctx context.Context, id uuid.UUID) (*asgmodel.SurveyAssignmentModel, error) {
	return s.gw.GetByID(ctx, id)
}

func (s *gormAssignmentStore) Update(ctx context.Context, actor *uuid.UUID, a *asgmodel.SurveyAssignmentModel) error {
	return s.gw.Update(ctx, actor, a)
}

type gormResponseStore struct {
	gw *repository.GormGateway[respmodel.SurveyResponseModel, *respmodel.SurveyResponseModel]
}

func NewResponseStore(db *gorm.DB) ResponseStore {
	return &gormResponseStore{gw: repository.NewGorm[respmodel.SurveyResponseModel](db)}
}

func (s *gormResponseStore) Add(ctx context.Context, actor *uuid.UUID, r *respmodel.SurveyResponseModel) error {
	return s.gw.Add(ctx, actor, r)
}

func (s *gormResponseStore) GetByID(ctx context.Context, id uuid.UUID) (*respmodel.SurveyResponseModel, error) {
	return s.gw.GetByID(ctx, id)
}

func (s *gormResponseStore) FindActiveByAssignment(ctx context.Context, assignmentID uuid.UUID) (*respmodel.SurveyResponseModel, error) {
	rows, err := s.gw.List(ctx, map[string]any{"response_assignment_id": assignmentID})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (s *gormResponseStore) Update(ctx context.Context, actor *uuid.UUID, r *respmodel.SurveyResponseModel) error {
	return s.gw.Update(ctx, actor, r)
}

func (s *gormResponseStore) SoftDelete(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error {
	return s.gw.SoftDelete(ctx, actor, id)
}

type gormAnswerStore struct {
	gw *repository.GormGateway[respmodel.AnswerModel, *respmodel.AnswerModel]
}

func NewAnswerStore(db *gorm.DB) AnswerStore {
	return &gormAnswerStore{gw: repository.NewGorm[respmodel.AnswerModel](db)}
}

func (s *gormAnswerStore) Add(ctx context.Context, actor *uuid.UUID, a *respmodel.AnswerModel) error {
	return s.gw.Add(ctx, actor, a)
}

func (s *gormAnswerStore) GetByID(ctx context.Context, id uuid.UUID) (*respmodel.AnswerModel, error) {
	return s.gw.GetByID(ctx, id)
}

func (s *gormAnswerStore) GetByResponseQuestion(ctx context.Context, responseID, questionID uuid.UUID) (*respmodel.AnswerModel, error) {
	rows, err := s.gw.List(ctx, map[string]any{
		"answer_response_id": responseID,
		"answer_question_id": questionID,
	})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return &rows[0], nil
}

func (s *gormAnswerStore) ListByResponse(ctx context.Context, responseID uuid.UUID) ([]respmodel.AnswerModel, error) {
	return s.gw.List(ctx, map[string]any{"answer_response_id": responseID})
}

func (s *gormAnswerStore) Update(ctx context.Context, actor *uuid.UUID, a *respmodel.AnswerModel) error {
	return s.gw.Update(ctx, actor, a)
}

func (s *gormAnswerStore) SoftDelete(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error {
	return s.gw.SoftDelete(ctx, actor, id)
}

type gormQuestionStore struct {
	gw *repository.GormGateway[tplmodel.QuestionModel, *tplmodel.QuestionModel]
}

func NewQuestionStore(db *gorm.DB) QuestionStore {
	return &gormQuestionStore{gw: repository.NewGorm[tplmodel.QuestionModel](db)}
}

func (s *gormQuestionStore) GetByID(ctx context.Context, id uuid.UUID) (*tplmodel.QuestionModel, error) {
	return s.gw.GetByID(ctx, id)
}

func (s *gormQuestionStore) ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]tplmodel.QuestionModel, error) {
	return s.gw.List(ctx, map[string]any{"question_template_id": templateID})
}

type gormMediaStore struct {
	gw *repository.GormGateway[respmodel.MediaFileModel, *respmodel.MediaFileModel]
}

func NewMediaStore(db *gorm.DB) MediaStore {
	return &gormMediaStore{gw: repository.NewGorm[respmodel.MediaFileModel](db)}
}

func (s *gormMediaStore) Add(ctx context.Context, actor *uuid.UUID, m *respmodel.MediaFileModel) error {
	return s.gw.Add(ctx, actor, m)
}

func (s *gormMediaStore) GetByID(ctx context.Context, id uuid.UUID) (*respmodel.MediaFileModel, error) {
	return s.gw.GetByID(ctx, id)
}

func (s *gormMediaStore) SoftDelete(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error {
	return s.gw.SoftDelete(ctx, actor, id)
}
