package model

import (
	"time"

	"github.com/google/uuid"

	"mysteryshopper_backend/internals/audit"
	tplmodel "mysteryshopper_backend/internals/features/surveys/templates/model"
	tenantmodel "mysteryshopper_backend/internals/features/tenants/model"
)

// SurveyAssignmentModel menugaskan satu evaluator menilai satu agency
// (opsional: satu employee) memakai satu template.
type SurveyAssignmentModel struct {
	audit.Fields

	AssignmentSurveyTemplateID uuid.UUID  `json:"assignment_survey_template_id" gorm:"column:assignment_survey_template_id;type:uuid;not null;index"`
	AssignmentAgencyID         uuid.UUID  `json:"assignment_agency_id" gorm:"column:assignment_agency_id;type:uuid;not null;index"`
	AssignmentEmployeeID       *uuid.UUID `json:"assignment_employee_id,omitempty" gorm:"column:assignment_employee_id;type:uuid;index"`
	AssignmentEvaluatorUserID  uuid.UUID  `json:"assignment_evaluator_user_id" gorm:"column:assignment_evaluator_user_id;type:uuid;not null;index"`
	AssignmentDueDate          *time.Time `json:"assignment_due_date,omitempty" gorm:"column:assignment_due_date"`
	AssignmentCompleted        bool       `json:"assignment_completed" gorm:"column:assignment_completed;not null;default:false"`

	SurveyTemplate *tplmodel.SurveyTemplateModel `json:"survey_template,omitempty" gorm:"foreignKey:AssignmentSurveyTemplateID;references:ID"`
	Agency         *tenantmodel.AgencyModel      `json:"agency,omitempty" gorm:"foreignKey:AssignmentAgencyID;references:ID"`
	Employee       *tenantmodel.EmployeeModel    `json:"employee,omitempty" gorm:"foreignKey:AssignmentEmployeeID;references:ID"`
}

func (SurveyAssignmentModel) TableName() string {
	return "survey_assignments"
}
