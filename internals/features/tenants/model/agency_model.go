package model

import (
	"github.com/google/uuid"

	"mysteryshopper_backend/internals/audit"
)

// AgencyModel = cabang / outlet milik sebuah company.
type AgencyModel struct {
	audit.Fields

	AgencyCompanyID uuid.UUID `json:"agency_company_id" gorm:"column:agency_company_id;type:uuid;not null;index"`
	AgencyName      string    `json:"agency_name" gorm:"column:agency_name;type:varchar(150);not null"`
	AgencyAddress   *string   `json:"agency_address,omitempty" gorm:"column:agency_address;type:text"`

	Company   *CompanyModel   `json:"company,omitempty" gorm:"foreignKey:AgencyCompanyID;references:ID"`
	Employees []EmployeeModel `json:"employees,omitempty" gorm:"foreignKey:EmployeeAgencyID"`
}

func (AgencyModel) TableName() string {
	return "agencies"
}
