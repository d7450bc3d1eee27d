package dto

import (
	"github.com/google/uuid"
)

type StartResponseRequest struct {
	AssignmentID uuid.UUID `json:"assignment_id" validate:"required"`
}

type UpsertAnswerRequest struct {
	QuestionID      uuid.UUID `json:"question_id" validate:"required"`
	TextValue       *string   `json:"text_value,omitempty"`
	NumberValue     *float64  `json:"number_value,omitempty"`
	BoolValue       *bool     `json:"bool_value,omitempty"`
	SelectedOptions []string  `json:"selected_options,omitempty"`
	Comment         *string   `json:"comment,omitempty"`
}

type SubmitResponseRequest struct {
	OverallComment *string `json:"overall_comment,omitempty"`
}
