package service

import (
	"math"

	"github.com/google/uuid"

	respmodel "mysteryshopper_backend/internals/features/surveys/responses/model"
	tplmodel "mysteryshopper_backend/internals/features/surveys/templates/model"
)

/* =========================================================
   SCORING ENGINE
   Fungsi murni: (questions, answers) → skor 0..100.
   Pertanyaan yang tidak dijawab tetap dihitung di totalWeight
   sehingga response yang tidak lengkap otomatis terpenalti.
========================================================= */

// ComputeScore menghitung skor akhir sebuah response.
// totalWeight == 0 → 0 (tidak ada pembagian nol).
func ComputeScore(questions []tplmodel.QuestionModel, answers []respmodel.AnswerModel) float64 {
	byQuestion := make(map[uuid.UUID]*respmodel.AnswerModel, len(answers))
	for i := range answers {
		byQuestion[answers[i].AnswerQuestionID] = &answers[i]
	}

	var score, totalWeight float64
	for i := range questions {
		q := &questions[i]
		totalWeight += q.QuestionWeight

		ans, ok := byQuestion[q.ID]
		if !ok {
			continue
		}
		score += partialValue(q.QuestionType, ans) * q.QuestionWeight
	}

	if totalWeight == 0 {
		return 0
	}
	return round2(score / totalWeight * 100)
}

// partialValue memetakan satu jawaban ke nilai parsial.
// Text & tipe pilihan memang bernilai 0: informasional saja.
func partialValue(questionType string, ans *respmodel.AnswerModel) float64 {
	switch questionType {
	case tplmodel.QuestionTypeYesNo:
		if ans.AnswerBoolValue != nil && *ans.AnswerBoolValue {
			return 1
		}
		return 0
	case tplmodel.QuestionTypeRating1to5:
		if ans.AnswerNumberValue == nil {
			return 0
		}
		v := *ans.AnswerNumberValue
		if v < 1 {
			v = 1
		}
		if v > 5 {
			v = 5
		}
		return v / 5
	case tplmodel.QuestionTypeNumber:
		if ans.AnswerNumberValue == nil {
			return 0
		}
		// dipakai apa adanya; pembuat template yang menjamin skala
		return *ans.AnswerNumberValue
	default:
		return 0
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
