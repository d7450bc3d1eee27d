package dto

import (
	"github.com/google/uuid"
)

type CreateTemplateRequest struct {
	TemplateCompanyID   uuid.UUID               `json:"template_company_id" validate:"required"`
	TemplateTitle       string                  `json:"template_title" validate:"required,min=3,max=200"`
	TemplateDescription *string                 `json:"template_description,omitempty"`
	Questions           []CreateQuestionRequest `json:"questions,omitempty" validate:"dive"`
}

type UpdateTemplateRequest struct {
	TemplateTitle       *string `json:"template_title,omitempty" validate:"omitempty,min=3,max=200"`
	TemplateDescription *string `json:"template_description,omitempty"`
}

type CreateQuestionRequest struct {
	QuestionText         string   `json:"question_text" validate:"required"`
	QuestionType         string   `json:"question_type" validate:"required"`
	QuestionOrder        int      `json:"question_order"`
	QuestionWeight       *float64 `json:"question_weight,omitempty"`
	QuestionOptions      []string `json:"question_options,omitempty"`
	QuestionAllowComment bool     `json:"question_allow_comment"`
	QuestionAllowMedia   bool     `json:"question_allow_media"`
}

type UpdateQuestionRequest struct {
	QuestionText         *string  `json:"question_text,omitempty"`
	QuestionOrder        *int     `json:"question_order,omitempty"`
	QuestionWeight       *float64 `json:"question_weight,omitempty"`
	QuestionOptions      []string `json:"question_options,omitempty"`
	QuestionAllowComment *bool    `json:"question_allow_comment,omitempty"`
	QuestionAllowMedia   *bool    `json:"question_allow_media,omitempty"`
}
