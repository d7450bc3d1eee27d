package model

import (
	"github.com/google/uuid"

	"mysteryshopper_backend/internals/audit"
)

// SurveyTemplateModel adalah blueprint kuesioner milik satu company.
type SurveyTemplateModel struct {
	audit.Fields

	TemplateCompanyID   uuid.UUID `json:"template_company_id" gorm:"column:template_company_id;type:uuid;not null;index"`
	TemplateTitle       string    `json:"template_title" gorm:"column:template_title;type:varchar(200);not null"`
	TemplateDescription *string   `json:"template_description,omitempty" gorm:"column:template_description;type:text"`

	Questions []QuestionModel `json:"questions,omitempty" gorm:"foreignKey:QuestionTemplateID"`
}

func (SurveyTemplateModel) TableName() string {
	return "survey_templates"
}
