package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mysteryshopper_backend/internals/audit"
	asgmodel "mysteryshopper_backend/internals/features/surveys/assignments/model"
	respmodel "mysteryshopper_backend/internals/features/surveys/responses/model"
	tplmodel "mysteryshopper_backend/internals/features/surveys/templates/model"
)

/* =========================================================
   FAKE STORES (in-memory) untuk tes lifecycle tanpa DB
========================================================= */

type fakeStores struct {
	assignments map[uuid.UUID]*asgmodel.SurveyAssignmentModel
	responses   map[uuid.UUID]*respmodel.SurveyResponseModel
	answers     map[uuid.UUID]*respmodel.AnswerModel
	questions   map[uuid.UUID]*tplmodel.QuestionModel
	media       []*respmodel.MediaFileModel
}

func newFakeStores() *fakeStores {
	return &fakeStores{
		assignments: map[uuid.UUID]*asgmodel.SurveyAssignmentModel{},
		responses:   map[uuid.UUID]*respmodel.SurveyResponseModel{},
		answers:     map[uuid.UUID]*respmodel.AnswerModel{},
		questions:   map[uuid.UUID]*tplmodel.QuestionModel{},
	}
}

func (f *fakeStores) GetByID(ctx context.Context, id uuid.UUID) (*asgmodel.SurveyAssignmentModel, error) {
	a, ok := f.assignments[id]
	if !ok || a.IsDeleted {
		return nil, nil
	}
	return a, nil
}

func (f *fakeStores) Update(ctx context.Context, actor *uuid.UUID, a *asgmodel.SurveyAssignmentModel) error {
	f.assignments[a.ID] = a
	return nil
}

type fakeResponseStore struct{ f *fakeStores }

func (s *fakeResponseStore) Add(ctx context.Context, actor *uuid.UUID, r *respmodel.SurveyResponseModel) error {
	r.StampCreate(time.Now().UTC(), actor)
	s.f.responses[r.ID] = r
	return nil
}

func (s *fakeResponseStore) GetByID(ctx context.Context, id uuid.UUID) (*respmodel.SurveyResponseModel, error) {
	r, ok := s.f.responses[id]
	if !ok || r.IsDeleted {
		return nil, nil
	}
	return r, nil
}

func (s *fakeResponseStore) FindActiveByAssignment(ctx context.Context, assignmentID uuid.UUID) (*respmodel.SurveyResponseModel, error) {
	for _, r := range s.f.responses {
		if r.ResponseAssignmentID == assignmentID && !r.IsDeleted {
			return r, nil
		}
	}
	return nil, nil
}

func (s *fakeResponseStore) Update(ctx context.Context, actor *uuid.UUID, r *respmodel.SurveyResponseModel) error {
	r.StampUpdate(time.Now().UTC(), actor)
	s.f.responses[r.ID] = r
	return nil
}

func (s *fakeResponseStore) SoftDelete(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error {
	r := s.f.responses[id]
	r.StampDelete(time.Now().UTC(), actor)
	return nil
}

type fakeAnswerStore struct{ f *fakeStores }

func (s *fakeAnswerStore) Add(ctx context.Context, actor *uuid.UUID, a *respmodel.AnswerModel) error {
	a.StampCreate(time.Now().UTC(), actor)
	s.f.answers[a.ID] = a
	return nil
}

func (s *fakeAnswerStore) GetByID(ctx context.Context, id uuid.UUID) (*respmodel.AnswerModel, error) {
	a, ok := s.f.answers[id]
	if !ok || a.IsDeleted {
		return nil, nil
	}
	return a, nil
}

func (s *fakeAnswerStore) GetByResponseQuestion(ctx context.Context, responseID, questionID uuid.UUID) (*respmodel.AnswerModel, error) {
	for _, a := range s.f.answers {
		if a.AnswerResponseID == responseID && a.AnswerQuestionID == questionID && !a.IsDeleted {
			return a, nil
		}
	}
	return nil, nil
}

func (s *fakeAnswerStore) ListByResponse(ctx context.Context, responseID uuid.UUID) ([]respmodel.AnswerModel, error) {
	var out []respmodel.AnswerModel
	for _, a := range s.f.answers {
		if a.AnswerResponseID == responseID && !a.IsDeleted {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (s *fakeAnswerStore) Update(ctx context.Context, actor *uuid.UUID, a *respmodel.AnswerModel) error {
	a.StampUpdate(time.Now().UTC(), actor)
	s.f.answers[a.ID] = a
	return nil
}

func (s *fakeAnswerStore) SoftDelete(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error {
	s.f.answers[id].StampDelete(time.Now().UTC(), actor)
	return nil
}

type fakeQuestionStore struct{ f *fakeStores }

func (s *fakeQuestionStore) GetByID(ctx context.Context, id uuid.UUID) (*tplmodel.QuestionModel, error) {
	q, ok := s.f.questions[id]
	if !ok || q.IsDeleted {
		return nil, nil
	}
	return q, nil
}

func (s *fakeQuestionStore) ListByTemplate(ctx context.Context, templateID uuid.UUID) ([]tplmodel.QuestionModel, error) {
	var out []tplmodel.QuestionModel
	for _, q := range s.f.questions {
		if q.QuestionTemplateID == templateID && !q.IsDeleted {
			out = append(out, *q)
		}
	}
	return out, nil
}

type fakeMediaStore struct{ f *fakeStores }

func (s *fakeMediaStore) Add(ctx context.Context, actor *uuid.UUID, m *respmodel.MediaFileModel) error {
	m.StampCreate(time.Now().UTC(), actor)
	s.f.media = append(s.f.media, m)
	return nil
}

func (s *fakeMediaStore) GetByID(ctx context.Context, id uuid.UUID) (*respmodel.MediaFileModel, error) {
	for _, m := range s.f.media {
		if m.ID == id && !m.IsDeleted {
			return m, nil
		}
	}
	return nil, nil
}

func (s *fakeMediaStore) SoftDelete(ctx context.Context, actor *uuid.UUID, id uuid.UUID) error {
	for _, m := range s.f.media {
		if m.ID == id {
			m.StampDelete(time.Now().UTC(), actor)
		}
	}
	return nil
}

/* ========================================================= */

type fixture struct {
	svc        *ResponseService
	stores     *fakeStores
	evaluator  uuid.UUID
	templateID uuid.UUID
	assignment *asgmodel.SurveyAssignmentModel
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := newFakeStores()
	svc := NewResponseService(
		f,
		&fakeResponseStore{f: f},
		&fakeAnswerStore{f: f},
		&fakeQuestionStore{f: f},
		&fakeMediaStore{f: f},
	)

	evaluator := uuid.New()
	templateID := uuid.New()

	asg := &asgmodel.SurveyAssignmentModel{
		AssignmentSurveyTemplateID: templateID,
		AssignmentAgencyID:         uuid.New(),
		AssignmentEvaluatorUserID:  evaluator,
	}
	asg.Fields = audit.Fields{ID: uuid.New(), CreatedAt: time.Now().UTC()}
	f.assignments[asg.ID] = asg

	return &fixture{svc: svc, stores: f, evaluator: evaluator, templateID: templateID, assignment: asg}
}

func (fx *fixture) addQuestion(qType string, weight float64) *tplmodel.QuestionModel {
	q := &tplmodel.QuestionModel{
		QuestionTemplateID: fx.templateID,
		QuestionType:       qType,
		QuestionWeight:     weight,
	}
	q.Fields = audit.Fields{ID: uuid.New()}
	fx.stores.questions[q.ID] = q
	return q
}

func TestStart_HappyPath(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, fx.assignment.ID, resp.ResponseAssignmentID)
	assert.False(t, resp.ResponseStartedAt.IsZero())
	assert.Nil(t, resp.ResponseSubmittedAt)
	assert.Equal(t, 0.0, resp.ResponseScore)
}

func TestStart_UnknownAssignment(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.Start(context.Background(), fx.evaluator, uuid.New())
	assert.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestStart_WrongEvaluator(t *testing.T) {
	fx := newFixture(t)

	_, err := fx.svc.Start(context.Background(), uuid.New(), fx.assignment.ID)
	assert.ErrorIs(t, err, ErrNotEvaluator)
}

func TestStart_SecondCallConflicts(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	_, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	_, err = fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	assert.ErrorIs(t, err, ErrResponseExists)
}

func TestUpsertAnswer_Idempotent(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	q := fx.addQuestion(tplmodel.QuestionTypeRating1to5, 1)

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	three := 3.0
	first, err := fx.svc.UpsertAnswer(ctx, fx.evaluator, resp.ID, q.ID, AnswerInput{NumberValue: &three})
	require.NoError(t, err)

	five := 5.0
	second, err := fx.svc.UpsertAnswer(ctx, fx.evaluator, resp.ID, q.ID, AnswerInput{NumberValue: &five})
	require.NoError(t, err)

	// baris yang sama di-update, bukan duplikasi
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, fx.stores.answers, 1)
	assert.Equal(t, 5.0, *fx.stores.answers[first.ID].AnswerNumberValue)
}

func TestUpsertAnswer_ValidatesPayloadAgainstType(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	qYesNo := fx.addQuestion(tplmodel.QuestionTypeYesNo, 1)
	qRating := fx.addQuestion(tplmodel.QuestionTypeRating1to5, 1)

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	// yes_no tanpa bool
	n := 1.0
	_, err = fx.svc.UpsertAnswer(ctx, fx.evaluator, resp.ID, qYesNo.ID, AnswerInput{NumberValue: &n})
	assert.ErrorIs(t, err, ErrInvalidAnswer)

	// rating di luar 1..5
	nine := 9.0
	_, err = fx.svc.UpsertAnswer(ctx, fx.evaluator, resp.ID, qRating.ID, AnswerInput{NumberValue: &nine})
	assert.ErrorIs(t, err, ErrInvalidAnswer)
}

func TestUpsertAnswer_UnknownResponseAndQuestion(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	v := true
	_, err := fx.svc.UpsertAnswer(ctx, fx.evaluator, uuid.New(), uuid.New(), AnswerInput{BoolValue: &v})
	assert.ErrorIs(t, err, ErrResponseNotFound)

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	_, err = fx.svc.UpsertAnswer(ctx, fx.evaluator, resp.ID, uuid.New(), AnswerInput{BoolValue: &v})
	assert.ErrorIs(t, err, ErrQuestionNotFound)
}

func TestSubmit_ComputesScoreAndCompletesAssignment(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	qYesNo := fx.addQuestion(tplmodel.QuestionTypeYesNo, 2)
	fx.addQuestion(tplmodel.QuestionTypeYesNo, 2) // tidak dijawab

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	yes := true
	_, err = fx.svc.UpsertAnswer(ctx, fx.evaluator, resp.ID, qYesNo.ID, AnswerInput{BoolValue: &yes})
	require.NoError(t, err)

	comment := "pelayanan oke"
	submitted, err := fx.svc.Submit(ctx, fx.evaluator, resp.ID, &comment)
	require.NoError(t, err)

	assert.Equal(t, 50.0, submitted.ResponseScore)
	assert.NotNil(t, submitted.ResponseSubmittedAt)
	assert.Equal(t, &comment, submitted.ResponseOverallComment)
	assert.True(t, fx.stores.assignments[fx.assignment.ID].AssignmentCompleted)
}

func TestSubmit_SecondCallConflicts(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	_, err = fx.svc.Submit(ctx, fx.evaluator, resp.ID, nil)
	require.NoError(t, err)

	_, err = fx.svc.Submit(ctx, fx.evaluator, resp.ID, nil)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestMutationsAfterSubmitAreRejected(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	q := fx.addQuestion(tplmodel.QuestionTypeYesNo, 1)

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	_, err = fx.svc.Submit(ctx, fx.evaluator, resp.ID, nil)
	require.NoError(t, err)

	yes := true
	_, err = fx.svc.UpsertAnswer(ctx, fx.evaluator, resp.ID, q.ID, AnswerInput{BoolValue: &yes})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)

	_, err = fx.svc.AttachMedia(ctx, fx.evaluator, resp.ID, nil, MediaInput{
		Kind: respmodel.MediaKindImage, FileName: "a.webp", ContentType: "image/webp", RelativePath: "uploads/2026/08/a.webp",
	})
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestAttachMedia_ResponseLevelAndAnswerLevel(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	q := fx.addQuestion(tplmodel.QuestionTypeText, 1)

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	// media level response
	m1, err := fx.svc.AttachMedia(ctx, fx.evaluator, resp.ID, nil, MediaInput{
		Kind: respmodel.MediaKindVideo, FileName: "toko.mp4", ContentType: "video/mp4", RelativePath: "uploads/2026/08/x.mp4",
	})
	require.NoError(t, err)
	require.NotNil(t, m1.MediaResponseID)
	assert.Nil(t, m1.MediaAnswerID)

	// media level answer: answer harus ada dulu
	_, err = fx.svc.AttachMedia(ctx, fx.evaluator, resp.ID, &q.ID, MediaInput{
		Kind: respmodel.MediaKindImage, FileName: "rak.jpg", ContentType: "image/webp", RelativePath: "uploads/2026/08/y.webp",
	})
	assert.ErrorIs(t, err, ErrAnswerNotFound)

	text := "rak rapi"
	ans, err := fx.svc.UpsertAnswer(ctx, fx.evaluator, resp.ID, q.ID, AnswerInput{TextValue: &text})
	require.NoError(t, err)

	m2, err := fx.svc.AttachMedia(ctx, fx.evaluator, resp.ID, &q.ID, MediaInput{
		Kind: respmodel.MediaKindImage, FileName: "rak.jpg", ContentType: "image/webp", RelativePath: "uploads/2026/08/y.webp",
	})
	require.NoError(t, err)
	require.NotNil(t, m2.MediaAnswerID)
	assert.Equal(t, ans.ID, *m2.MediaAnswerID)
	assert.Nil(t, m2.MediaResponseID)
}

func TestAttachMedia_RejectsUnknownKind(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	_, err = fx.svc.AttachMedia(ctx, fx.evaluator, resp.ID, nil, MediaInput{Kind: "hologram"})
	assert.ErrorIs(t, err, ErrInvalidMediaKind)
}

func TestLifecycle_WrongEvaluatorIsForbidden(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	intruder := uuid.New()

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	yes := true
	q := fx.addQuestion(tplmodel.QuestionTypeYesNo, 1)

	_, err = fx.svc.UpsertAnswer(ctx, intruder, resp.ID, q.ID, AnswerInput{BoolValue: &yes})
	assert.ErrorIs(t, err, ErrNotEvaluator)

	_, err = fx.svc.Submit(ctx, intruder, resp.ID, nil)
	assert.ErrorIs(t, err, ErrNotEvaluator)
}

func TestDeleteResponse_FreesAssignmentForRestart(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	first, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	// kunjungan batal di tengah jalan → buang, lalu mulai ulang
	require.NoError(t, fx.svc.DeleteResponse(ctx, fx.evaluator, first.ID))

	second, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// row lama tetap ada untuk audit, hanya tertandai deleted
	old := fx.stores.responses[first.ID]
	require.NotNil(t, old)
	assert.True(t, old.IsDeleted)
	require.NotNil(t, old.DeletedBy)
	assert.Equal(t, fx.evaluator, *old.DeletedBy)
}

func TestDeleteResponse_GuardRails(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	err := fx.svc.DeleteResponse(ctx, fx.evaluator, uuid.New())
	assert.ErrorIs(t, err, ErrResponseNotFound)

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	// bukan evaluator assignment → ditolak
	err = fx.svc.DeleteResponse(ctx, uuid.New(), resp.ID)
	assert.ErrorIs(t, err, ErrNotEvaluator)

	// sudah submit → terkunci, bukan ranah evaluator lagi
	_, err = fx.svc.Submit(ctx, fx.evaluator, resp.ID, nil)
	require.NoError(t, err)
	err = fx.svc.DeleteResponse(ctx, fx.evaluator, resp.ID)
	assert.ErrorIs(t, err, ErrAlreadySubmitted)
}

func TestDeleteAnswer_RemovesAndAllowsReanswer(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	q := fx.addQuestion(tplmodel.QuestionTypeYesNo, 1)

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	yes := true
	first, err := fx.svc.UpsertAnswer(ctx, fx.evaluator, resp.ID, q.ID, AnswerInput{BoolValue: &yes})
	require.NoError(t, err)

	require.NoError(t, fx.svc.DeleteAnswer(ctx, fx.evaluator, resp.ID, q.ID))

	// hapus kedua: jawaban sudah tidak terlihat
	err = fx.svc.DeleteAnswer(ctx, fx.evaluator, resp.ID, q.ID)
	assert.ErrorIs(t, err, ErrAnswerNotFound)

	// jawab ulang bikin row baru, bukan menghidupkan row lama
	no := false
	second, err := fx.svc.UpsertAnswer(ctx, fx.evaluator, resp.ID, q.ID, AnswerInput{BoolValue: &no})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestDeleteMedia_ResponseAndAnswerLevel(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()
	q := fx.addQuestion(tplmodel.QuestionTypeText, 1)

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	m1, err := fx.svc.AttachMedia(ctx, fx.evaluator, resp.ID, nil, MediaInput{
		Kind: respmodel.MediaKindImage, FileName: "etalase.jpg", ContentType: "image/webp", RelativePath: "uploads/2026/08/e.webp",
	})
	require.NoError(t, err)

	text := "etalase bersih"
	_, err = fx.svc.UpsertAnswer(ctx, fx.evaluator, resp.ID, q.ID, AnswerInput{TextValue: &text})
	require.NoError(t, err)
	m2, err := fx.svc.AttachMedia(ctx, fx.evaluator, resp.ID, &q.ID, MediaInput{
		Kind: respmodel.MediaKindImage, FileName: "rak.jpg", ContentType: "image/webp", RelativePath: "uploads/2026/08/r.webp",
	})
	require.NoError(t, err)

	require.NoError(t, fx.svc.DeleteMedia(ctx, fx.evaluator, m1.ID))
	require.NoError(t, fx.svc.DeleteMedia(ctx, fx.evaluator, m2.ID))
	assert.True(t, m1.IsDeleted)
	assert.True(t, m2.IsDeleted)

	// sudah hilang dari jalur baca default
	err = fx.svc.DeleteMedia(ctx, fx.evaluator, m1.ID)
	assert.ErrorIs(t, err, ErrMediaNotFound)
}

func TestDeleteMedia_WrongEvaluatorForbidden(t *testing.T) {
	fx := newFixture(t)
	ctx := context.Background()

	resp, err := fx.svc.Start(ctx, fx.evaluator, fx.assignment.ID)
	require.NoError(t, err)

	m, err := fx.svc.AttachMedia(ctx, fx.evaluator, resp.ID, nil, MediaInput{
		Kind: respmodel.MediaKindAudio, FileName: "wawancara.m4a", ContentType: "audio/mp4", RelativePath: "uploads/2026/08/w.m4a",
	})
	require.NoError(t, err)

	err = fx.svc.DeleteMedia(ctx, uuid.New(), m.ID)
	assert.ErrorIs(t, err, ErrNotEvaluator)
	assert.False(t, m.IsDeleted)
}
