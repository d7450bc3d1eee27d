package dto

import (
	"github.com/google/uuid"
)

type CreateCompanyRequest struct {
	CompanyName  string  `json:"company_name" validate:"required,min=2,max=150"`
	CompanyNotes *string `json:"company_notes,omitempty"`
}

type UpdateCompanyRequest struct {
	CompanyName  *string `json:"company_name,omitempty" validate:"omitempty,min=2,max=150"`
	CompanyNotes *string `json:"company_notes,omitempty"`
}

type CreateAgencyRequest struct {
	AgencyCompanyID uuid.UUID `json:"agency_company_id" validate:"required"`
	AgencyName      string    `json:"agency_name" validate:"required,min=2,max=150"`
	AgencyAddress   *string   `json:"agency_address,omitempty"`
}

type UpdateAgencyRequest struct {
	AgencyName    *string `json:"agency_name,omitempty" validate:"omitempty,min=2,max=150"`
	AgencyAddress *string `json:"agency_address,omitempty"`
}

type CreateEmployeeRequest struct {
	EmployeeAgencyID uuid.UUID `json:"employee_agency_id" validate:"required"`
	EmployeeFullName string    `json:"employee_full_name" validate:"required,min=2,max=150"`
	EmployeePosition *string   `json:"employee_position,omitempty" validate:"omitempty,max=100"`
}

type UpdateEmployeeRequest struct {
	EmployeeFullName *string `json:"employee_full_name,omitempty" validate:"omitempty,min=2,max=150"`
	EmployeePosition *string `json:"employee_position,omitempty" validate:"omitempty,max=100"`
}
