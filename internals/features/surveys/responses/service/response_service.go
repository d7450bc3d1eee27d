package service

import (
	"context"
	"errors"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	asgmodel "mysteryshopper_backend/internals/features/surveys/assignments/model"
	respmodel "mysteryshopper_backend/internals/features/surveys/responses/model"
	tplmodel "mysteryshopper_backend/internals/features/surveys/templates/model"
	"mysteryshopper_backend/internals/repository"
)

/* =========================================================
   RESPONSE LIFECYCLE SERVICE
   State machine per response:
   NotStarted (belum ada row) → InProgress → Submitted (terminal).
   Semua mutasi mensyaratkan principal = evaluator assignment.
========================================================= */

var (
	ErrAssignmentNotFound = errors.New("assignment tidak ditemukan")
	ErrResponseNotFound   = errors.New("response tidak ditemukan")
	ErrAnswerNotFound     = errors.New("answer tidak ditemukan")
	ErrMediaNotFound      = errors.New("media tidak ditemukan")
	ErrQuestionNotFound   = errors.New("question tidak ditemukan")
	ErrNotEvaluator       = errors.New("bukan evaluator assignment ini")
	ErrResponseExists     = errors.New("response aktif sudah ada untuk assignment ini")
	ErrAlreadySubmitted   = errors.New("response sudah di-submit")
	ErrInvalidAnswer      = errors.New("payload jawaban tidak cocok dengan tipe pertanyaan")
	ErrInvalidMediaKind   = errors.New("jenis media tidak dikenal")
)

type AnswerInput struct {
	TextValue       *string  `json:"text_value,omitempty"`
	NumberValue     *float64 `json:"number_value,omitempty"`
	BoolValue       *bool    `json:"bool_value,omitempty"`
	SelectedOptions []string `json:"selected_options,omitempty"`
	Comment         *string  `json:"comment,omitempty"`
}

type MediaInput struct {
	Kind         string
	FileName     string
	ContentType  string
	SizeBytes    int64
	RelativePath string
}

type ResponseService struct {
	Assignments AssignmentStore
	Responses   ResponseStore
	Answers     AnswerStore
	Questions   QuestionStore
	Media       MediaStore
	Now         func() time.Time
}

func NewResponseService(asg AssignmentStore, resp ResponseStore, ans AnswerStore, q QuestionStore, media MediaStore) *ResponseService {
	return &ResponseService{
		Assignments: asg,
		Responses:   resp,
		Answers:     ans,
		Questions:   q,
		Media:       media,
		Now:         func() time.Time { return time.Now().UTC() },
	}
}

// Start membuat response baru (NotStarted → InProgress). TIDAK idempoten:
// pemanggilan kedua untuk assignment yang sama kena Conflict. Race dua
// Start bersamaan ditutup partial unique index → ErrDuplicate → Conflict.
func (s *ResponseService) Start(ctx context.Context, actor uuid.UUID, assignmentID uuid.UUID) (*respmodel.SurveyResponseModel, error) {
	asg, err := s.Assignments.GetByID(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if asg == nil {
		return nil, ErrAssignmentNotFound
	}
	if asg.AssignmentEvaluatorUserID != actor {
		return nil, ErrNotEvaluator
	}

	existing, err := s.Responses.FindActiveByAssignment(ctx, assignmentID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrResponseExists
	}

	resp := &respmodel.SurveyResponseModel{
		ResponseAssignmentID: assignmentID,
		ResponseStartedAt:    s.Now(),
		ResponseScore:        0,
	}
	if err := s.Responses.Add(ctx, &actor, resp); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrResponseExists
		}
		return nil, err
	}
	return resp, nil
}

// UpsertAnswer menyimpan/mengganti jawaban (response, question). Idempoten:
// panggilan kedua menimpa nilai, tidak menambah row. Response yang sudah
// Submitted menolak mutasi (Conflict).
func (s *ResponseService) UpsertAnswer(ctx context.Context, actor uuid.UUID, responseID, questionID uuid.UUID, in AnswerInput) (*respmodel.AnswerModel, error) {
	resp, _, err := s.loadOwnedResponse(ctx, actor, responseID)
	if err != nil {
		return nil, err
	}
	if resp.IsSubmitted() {
		return nil, ErrAlreadySubmitted
	}

	q, err := s.Questions.GetByID(ctx, questionID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, ErrQuestionNotFound
	}
	if err := validateAnswer(q, in); err != nil {
		return nil, err
	}

	selected, err := encodeSelected(in.SelectedOptions)
	if err != nil {
		return nil, err
	}

	existing, err := s.Answers.GetByResponseQuestion(ctx, responseID, questionID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		ans := &respmodel.AnswerModel{
			AnswerResponseID:      responseID,
			AnswerQuestionID:      questionID,
			AnswerTextValue:       in.TextValue,
			AnswerNumberValue:     in.NumberValue,
			AnswerBoolValue:       in.BoolValue,
			AnswerSelectedOptions: selected,
			AnswerComment:         in.Comment,
		}
		if err := s.Answers.Add(ctx, &actor, ans); err != nil {
			return nil, err
		}
		return ans, nil
	}

	existing.AnswerTextValue = in.TextValue
	existing.AnswerNumberValue = in.NumberValue
	existing.AnswerBoolValue = in.BoolValue
	existing.AnswerSelectedOptions = selected
	existing.AnswerComment = in.Comment
	if err := s.Answers.Update(ctx, &actor, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// AttachMedia menempelkan media ke response (questionID nil) atau ke answer
// spesifik (questionID terisi). Metadata file sudah disimpan FileService.
func (s *ResponseService) AttachMedia(ctx context.Context, actor uuid.UUID, responseID uuid.UUID, questionID *uuid.UUID, in MediaInput) (*respmodel.MediaFileModel, error) {
	if !respmodel.ValidMediaKind(in.Kind) {
		return nil, ErrInvalidMediaKind
	}

	resp, _, err := s.loadOwnedResponse(ctx, actor, responseID)
	if err != nil {
		return nil, err
	}
	if resp.IsSubmitted() {
		return nil, ErrAlreadySubmitted
	}

	media := &respmodel.MediaFileModel{
		MediaKind:         in.Kind,
		MediaFileName:     in.FileName,
		MediaContentType:  in.ContentType,
		MediaSizeBytes:    in.SizeBytes,
		MediaRelativePath: in.RelativePath,
	}

	if questionID != nil {
		ans, err := s.Answers.GetByResponseQuestion(ctx, responseID, *questionID)
		if err != nil {
			return nil, err
		}
		if ans == nil {
			return nil, ErrAnswerNotFound
		}
		answerID := ans.ID
		media.MediaAnswerID = &answerID
	} else {
		respID := resp.ID
		media.MediaResponseID = &respID
	}

	if err := s.Media.Add(ctx, &actor, media); err != nil {
		return nil, err
	}
	return media, nil
}

// Submit menutup response (InProgress → Submitted): hitung skor, set
// overall comment + submitted_at, dan tandai assignment selesai.
// Submit kedua kena Conflict, bukan rescore diam-diam.
func (s *ResponseService) Submit(ctx context.Context, actor uuid.UUID, responseID uuid.UUID, overallComment *string) (*respmodel.SurveyResponseModel, error) {
	resp, asg, err := s.loadOwnedResponse(ctx, actor, responseID)
	if err != nil {
		return nil, err
	}
	if resp.IsSubmitted() {
		return nil, ErrAlreadySubmitted
	}

	questions, err := s.Questions.ListByTemplate(ctx, asg.AssignmentSurveyTemplateID)
	if err != nil {
		return nil, err
	}
	answers, err := s.Answers.ListByResponse(ctx, responseID)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	resp.ResponseScore = ComputeScore(questions, answers)
	resp.ResponseOverallComment = overallComment
	resp.ResponseSubmittedAt = &now
	if err := s.Responses.Update(ctx, &actor, resp); err != nil {
		return nil, err
	}

	asg.AssignmentCompleted = true
	if err := s.Assignments.Update(ctx, &actor, asg); err != nil {
		return nil, err
	}
	return resp, nil
}

// DeleteResponse membuang response milik evaluator (soft delete). Slot
// partial unique index ikut bebas, jadi Start bisa dipanggil ulang untuk
// assignment yang sama — jalur redo kalau kunjungan harus diulang.
// Response yang sudah Submitted menolak (Conflict); itu ranah admin.
func (s *ResponseService) DeleteResponse(ctx context.Context, actor uuid.UUID, responseID uuid.UUID) error {
	resp, _, err := s.loadOwnedResponse(ctx, actor, responseID)
	if err != nil {
		return err
	}
	if resp.IsSubmitted() {
		return ErrAlreadySubmitted
	}
	return s.Responses.SoftDelete(ctx, &actor, responseID)
}

// DeleteAnswer membuang jawaban (response, question) yang sudah tersimpan.
func (s *ResponseService) DeleteAnswer(ctx context.Context, actor uuid.UUID, responseID, questionID uuid.UUID) error {
	resp, _, err := s.loadOwnedResponse(ctx, actor, responseID)
	if err != nil {
		return err
	}
	if resp.IsSubmitted() {
		return ErrAlreadySubmitted
	}

	ans, err := s.Answers.GetByResponseQuestion(ctx, responseID, questionID)
	if err != nil {
		return err
	}
	if ans == nil {
		return ErrAnswerNotFound
	}
	return s.Answers.SoftDelete(ctx, &actor, ans.ID)
}

// DeleteMedia membuang satu media file. Parent response dilacak langsung
// (media level response) atau lewat answer (media level answer).
func (s *ResponseService) DeleteMedia(ctx context.Context, actor uuid.UUID, mediaID uuid.UUID) error {
	media, err := s.Media.GetByID(ctx, mediaID)
	if err != nil {
		return err
	}
	if media == nil {
		return ErrMediaNotFound
	}

	var responseID uuid.UUID
	switch {
	case media.MediaResponseID != nil:
		responseID = *media.MediaResponseID
	case media.MediaAnswerID != nil:
		ans, err := s.Answers.GetByID(ctx, *media.MediaAnswerID)
		if err != nil {
			return err
		}
		if ans == nil {
			return ErrAnswerNotFound
		}
		responseID = ans.AnswerResponseID
	default:
		return ErrMediaNotFound
	}

	resp, _, err := s.loadOwnedResponse(ctx, actor, responseID)
	if err != nil {
		return err
	}
	if resp.IsSubmitted() {
		return ErrAlreadySubmitted
	}
	return s.Media.SoftDelete(ctx, &actor, mediaID)
}

// loadOwnedResponse memuat response + assignment dan memastikan actor
// adalah evaluator yang ditunjuk.
func (s *ResponseService) loadOwnedResponse(ctx context.Context, actor uuid.UUID, responseID uuid.UUID) (*respmodel.SurveyResponseModel, *asgmodel.SurveyAssignmentModel, error) {
	resp, err := s.Responses.GetByID(ctx, responseID)
	if err != nil {
		return nil, nil, err
	}
	if resp == nil {
		return nil, nil, ErrResponseNotFound
	}

	asg, err := s.Assignments.GetByID(ctx, resp.ResponseAssignmentID)
	if err != nil {
		return nil, nil, err
	}
	if asg == nil {
		return nil, nil, ErrAssignmentNotFound
	}
	if asg.AssignmentEvaluatorUserID != actor {
		return nil, nil, ErrNotEvaluator
	}
	return resp, asg, nil
}

func encodeSelected(options []string) (datatypes.JSON, error) {
	if len(options) == 0 {
		return nil, nil
	}
	raw, err := sonic.Marshal(options)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

// validateAnswer mengecek payload terhadap tipe pertanyaan sebelum disimpan.
func validateAnswer(q *tplmodel.QuestionModel, in AnswerInput) error {
	switch q.QuestionType {
	case tplmodel.QuestionTypeYesNo:
		if in.BoolValue == nil {
			return ErrInvalidAnswer
		}
	case tplmodel.QuestionTypeNumber:
		if in.NumberValue == nil {
			return ErrInvalidAnswer
		}
	case tplmodel.QuestionTypeRating1to5:
		if in.NumberValue == nil || *in.NumberValue < 1 || *in.NumberValue > 5 {
			return ErrInvalidAnswer
		}
	case tplmodel.QuestionTypeText:
		if in.TextValue == nil || *in.TextValue == "" {
			return ErrInvalidAnswer
		}
	case tplmodel.QuestionTypeSingleChoice, tplmodel.QuestionTypeMultipleChoice:
		if len(in.SelectedOptions) == 0 {
			return ErrInvalidAnswer
		}
		if q.QuestionType == tplmodel.QuestionTypeSingleChoice && len(in.SelectedOptions) != 1 {
			return ErrInvalidAnswer
		}
		labels, err := q.OptionLabels()
		if err != nil {
			return ErrInvalidAnswer
		}
		valid := make(map[string]bool, len(labels))
		for _, l := range labels {
			valid[l] = true
		}
		for _, sel := range in.SelectedOptions {
			if !valid[sel] {
				return ErrInvalidAnswer
			}
		}
	}
	return nil
}
