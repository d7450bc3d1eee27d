package model

import (
	"github.com/google/uuid"

	"mysteryshopper_backend/internals/audit"
)

// EmployeeModel = karyawan pada sebuah agency; bisa jadi target penilaian.
type EmployeeModel struct {
	audit.Fields

	EmployeeAgencyID uuid.UUID `json:"employee_agency_id" gorm:"column:employee_agency_id;type:uuid;not null;index"`
	EmployeeFullName string    `json:"employee_full_name" gorm:"column:employee_full_name;type:varchar(150);not null"`
	EmployeePosition *string   `json:"employee_position,omitempty" gorm:"column:employee_position;type:varchar(100)"`

	Agency *AgencyModel `json:"agency,omitempty" gorm:"foreignKey:EmployeeAgencyID;references:ID"`
}

func (EmployeeModel) TableName() string {
	return "employees"
}
