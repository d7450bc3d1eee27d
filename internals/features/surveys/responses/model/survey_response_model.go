package model

import (
	"time"

	"github.com/google/uuid"

	"mysteryshopper_backend/internals/audit"
	asgmodel "mysteryshopper_backend/internals/features/surveys/assignments/model"
)

// SurveyResponseModel = satu percobaan evaluator untuk satu assignment.
// Siklus: belum ada row → InProgress (submitted_at null) → Submitted.
// Maksimal SATU row aktif per assignment (partial unique index di migrasi).
type SurveyResponseModel struct {
	audit.Fields

	ResponseAssignmentID    uuid.UUID  `json:"response_assignment_id" gorm:"column:response_assignment_id;type:uuid;not null;index"`
	ResponseStartedAt       time.Time  `json:"response_started_at" gorm:"column:response_started_at;not null"`
	ResponseSubmittedAt     *time.Time `json:"response_submitted_at,omitempty" gorm:"column:response_submitted_at"`
	ResponseOverallComment  *string    `json:"response_overall_comment,omitempty" gorm:"column:response_overall_comment;type:text"`
	ResponseScore           float64    `json:"response_score" gorm:"column:response_score;type:numeric(5,2);not null;default:0"`

	Assignment *asgmodel.SurveyAssignmentModel `json:"assignment,omitempty" gorm:"foreignKey:ResponseAssignmentID;references:ID"`
	Answers    []AnswerModel                   `json:"answers,omitempty" gorm:"foreignKey:AnswerResponseID"`
	MediaFiles []MediaFileModel                `json:"media_files,omitempty" gorm:"foreignKey:MediaResponseID"`
}

func (SurveyResponseModel) TableName() string {
	return "survey_responses"
}

// IsSubmitted = sudah di state terminal; mutasi lanjutan ditolak Conflict.
func (r *SurveyResponseModel) IsSubmitted() bool {
	return r.ResponseSubmittedAt != nil
}
