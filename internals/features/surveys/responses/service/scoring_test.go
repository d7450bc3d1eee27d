package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"mysteryshopper_backend/internals/audit"
	respmodel "mysteryshopper_backend/internals/features/surveys/responses/model"
	tplmodel "mysteryshopper_backend/internals/features/surveys/templates/model"
)

func question(id uuid.UUID, qType string, weight float64) tplmodel.QuestionModel {
	q := tplmodel.QuestionModel{
		QuestionType:   qType,
		QuestionWeight: weight,
	}
	q.ID = id
	return q
}

func boolAnswer(qID uuid.UUID, v bool) respmodel.AnswerModel {
	a := respmodel.AnswerModel{AnswerQuestionID: qID, AnswerBoolValue: &v}
	a.Fields = audit.Fields{ID: uuid.New()}
	return a
}

func numberAnswer(qID uuid.UUID, v float64) respmodel.AnswerModel {
	a := respmodel.AnswerModel{AnswerQuestionID: qID, AnswerNumberValue: &v}
	a.Fields = audit.Fields{ID: uuid.New()}
	return a
}

func TestComputeScore_PerfectAnswersIs100(t *testing.T) {
	q1, q2, q3 := uuid.New(), uuid.New(), uuid.New()
	questions := []tplmodel.QuestionModel{
		question(q1, tplmodel.QuestionTypeYesNo, 2),
		question(q2, tplmodel.QuestionTypeRating1to5, 3),
		question(q3, tplmodel.QuestionTypeNumber, 5),
	}
	answers := []respmodel.AnswerModel{
		boolAnswer(q1, true),
		numberAnswer(q2, 5),
		numberAnswer(q3, 1),
	}

	assert.Equal(t, 100.0, ComputeScore(questions, answers))
}

func TestComputeScore_NoAnswersIsZero(t *testing.T) {
	questions := []tplmodel.QuestionModel{
		question(uuid.New(), tplmodel.QuestionTypeYesNo, 1),
		question(uuid.New(), tplmodel.QuestionTypeRating1to5, 1),
	}
	assert.Equal(t, 0.0, ComputeScore(questions, nil))
}

func TestComputeScore_ZeroTotalWeightIsZero(t *testing.T) {
	qID := uuid.New()
	questions := []tplmodel.QuestionModel{
		question(qID, tplmodel.QuestionTypeYesNo, 0),
	}
	answers := []respmodel.AnswerModel{boolAnswer(qID, true)}

	assert.Equal(t, 0.0, ComputeScore(questions, answers))

	assert.Equal(t, 0.0, ComputeScore(nil, nil))
}

func TestComputeScore_RatingContribution(t *testing.T) {
	// Rating bobot 20 dijawab 3 → parsial 0.6 → 12 dari 20 → 60.00
	qID := uuid.New()
	questions := []tplmodel.QuestionModel{
		question(qID, tplmodel.QuestionTypeRating1to5, 20),
	}
	answers := []respmodel.AnswerModel{numberAnswer(qID, 3)}

	assert.Equal(t, 60.0, ComputeScore(questions, answers))
}

func TestComputeScore_RatingClamped(t *testing.T) {
	qID := uuid.New()
	questions := []tplmodel.QuestionModel{
		question(qID, tplmodel.QuestionTypeRating1to5, 1),
	}

	assert.Equal(t, 100.0, ComputeScore(questions, []respmodel.AnswerModel{numberAnswer(qID, 99)}))
	assert.Equal(t, 20.0, ComputeScore(questions, []respmodel.AnswerModel{numberAnswer(qID, -3)}))
}

func TestComputeScore_UnansweredCountsTowardWeight(t *testing.T) {
	q1, q2 := uuid.New(), uuid.New()
	questions := []tplmodel.QuestionModel{
		question(q1, tplmodel.QuestionTypeYesNo, 1),
		question(q2, tplmodel.QuestionTypeYesNo, 1),
	}
	answers := []respmodel.AnswerModel{boolAnswer(q1, true)}

	assert.Equal(t, 50.0, ComputeScore(questions, answers))
}

func TestComputeScore_TextAndChoiceAreInformationalOnly(t *testing.T) {
	q1, q2 := uuid.New(), uuid.New()
	questions := []tplmodel.QuestionModel{
		question(q1, tplmodel.QuestionTypeText, 1),
		question(q2, tplmodel.QuestionTypeYesNo, 1),
	}
	text := "sangat ramah"
	ansText := respmodel.AnswerModel{AnswerQuestionID: q1, AnswerTextValue: &text}
	answers := []respmodel.AnswerModel{ansText, boolAnswer(q2, true)}

	assert.Equal(t, 50.0, ComputeScore(questions, answers))
}

func TestComputeScore_RoundsToTwoDecimals(t *testing.T) {
	q1, q2, q3 := uuid.New(), uuid.New(), uuid.New()
	questions := []tplmodel.QuestionModel{
		question(q1, tplmodel.QuestionTypeYesNo, 1),
		question(q2, tplmodel.QuestionTypeYesNo, 1),
		question(q3, tplmodel.QuestionTypeYesNo, 1),
	}
	answers := []respmodel.AnswerModel{boolAnswer(q1, true)}

	// 1/3 * 100 = 33.333... → 33.33
	assert.Equal(t, 33.33, ComputeScore(questions, answers))
}
