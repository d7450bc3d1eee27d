package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"mysteryshopper_backend/internals/audit"
	tplmodel "mysteryshopper_backend/internals/features/surveys/templates/model"
)

// AnswerModel = jawaban satu question di satu response.
// Unik per (response, question) di antara row aktif — upsert, bukan append.
type AnswerModel struct {
	audit.Fields

	AnswerResponseID      uuid.UUID      `json:"answer_response_id" gorm:"column:answer_response_id;type:uuid;not null;index"`
	AnswerQuestionID      uuid.UUID      `json:"answer_question_id" gorm:"column:answer_question_id;type:uuid;not null;index"`
	AnswerTextValue       *string        `json:"answer_text_value,omitempty" gorm:"column:answer_text_value;type:text"`
	AnswerNumberValue     *float64       `json:"answer_number_value,omitempty" gorm:"column:answer_number_value;type:numeric(12,4)"`
	AnswerBoolValue       *bool          `json:"answer_bool_value,omitempty" gorm:"column:answer_bool_value"`
	AnswerSelectedOptions datatypes.JSON `json:"answer_selected_options,omitempty" gorm:"column:answer_selected_options;type:jsonb"`
	AnswerComment         *string        `json:"answer_comment,omitempty" gorm:"column:answer_comment;type:text"`

	Question   *tplmodel.QuestionModel `json:"question,omitempty" gorm:"foreignKey:AnswerQuestionID;references:ID"`
	MediaFiles []MediaFileModel        `json:"media_files,omitempty" gorm:"foreignKey:MediaAnswerID"`
}

func (AnswerModel) TableName() string {
	return "answers"
}
