package model

import (
	"mysteryshopper_backend/internals/audit"
)

// CompanyModel adalah akar tenant. Semua data survey (agency, employee,
// template, assignment, response) bergantung ke satu company.
type CompanyModel struct {
	audit.Fields

	CompanyName  string  `json:"company_name" gorm:"column:company_name;type:varchar(150);unique;not null"`
	CompanyNotes *string `json:"company_notes,omitempty" gorm:"column:company_notes;type:text"`

	Agencies []AgencyModel `json:"agencies,omitempty" gorm:"foreignKey:AgencyCompanyID"`
}

func (CompanyModel) TableName() string {
	return "companies"
}
