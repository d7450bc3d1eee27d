package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAssignmentRequest struct {
	AssignmentSurveyTemplateID uuid.UUID  `json:"assignment_survey_template_id" validate:"required"`
	AssignmentAgencyID         uuid.UUID  `json:"assignment_agency_id" validate:"required"`
	AssignmentEmployeeID       *uuid.UUID `json:"assignment_employee_id,omitempty"`
	AssignmentEvaluatorUserID  uuid.UUID  `json:"assignment_evaluator_user_id" validate:"required"`
	AssignmentDueDate          *time.Time `json:"assignment_due_date,omitempty"`
}
