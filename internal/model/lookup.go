package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"backend/pkg/language"
)

// Tenant-scoped lookups carry a ProjectID; rows bound to AllProjectsID apply
// to every tenant. Global lookups (countries, religions, ...) carry none.

type Department struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	ProjectID uint `gorm:"not null;index" json:"project_id"`
	Status    int  `gorm:"default:1" json:"status"`
	IsDeleted int  `gorm:"default:0;index" json:"-"`
	Audit
}

func (Department) TableName() string { return "departments" }

type Position struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	ProjectID uint `gorm:"not null;index" json:"project_id"`
	Status    int  `gorm:"default:1" json:"status"`
	IsDeleted int  `gorm:"default:0;index" json:"-"`
	Audit
}

func (Position) TableName() string { return "positions" }

type Safe struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	EnName string `gorm:"type:varchar(255);not null;uniqueIndex:idx_safes_name_project" json:"en_name"`
	ArName string `gorm:"type:varchar(255);not null" json:"ar_name"`
	// ProjectID is part of the name uniqueness: one safe name per tenant.
	ProjectID uint `gorm:"not null;uniqueIndex:idx_safes_name_project" json:"project_id"`
	IsDeleted int  `gorm:"default:0;index" json:"-"`
	Audit
}

func (Safe) TableName() string { return "safes" }

// Name selects the safe display name; Safe carries its bilingual pair inline
// because en_name participates in the per-tenant uniqueness index.
func (s Safe) Name(lang language.Language) string {
	if lang == language.Arabic {
		return s.ArName
	}
	return s.EnName
}

type UserType struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	ProjectID uint `gorm:"not null;index" json:"project_id"`
	IsDeleted int  `gorm:"default:0;index" json:"-"`
	Audit
}

func (UserType) TableName() string { return "user_types" }

type EmployeeType struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	ProjectID uint `gorm:"not null;index" json:"project_id"`
	IsDeleted int  `gorm:"default:0;index" json:"-"`
	Audit
}

func (EmployeeType) TableName() string { return "employee_types" }

type LocationType struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	ProjectID uint `gorm:"not null;index" json:"project_id"`
	IsDeleted int  `gorm:"default:0;index" json:"-"`
	Audit
}

func (LocationType) TableName() string { return "location_types" }

// Location forms a hierarchy through ParentLocationID; the tree is assembled
// per request in the language the caller selected.
type Location struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	ProjectID        uint  `gorm:"not null;index" json:"project_id"`
	LocationTypeID   *uint `json:"location_type_id,omitempty"`
	ParentLocationID *uint `gorm:"index" json:"parent_location_id,omitempty"`
	IsDeleted        int   `gorm:"default:0;index" json:"-"`
	Audit
}

func (Location) TableName() string { return "locations" }

type RentalCompany struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	ProjectID uint `gorm:"not null;index" json:"project_id"`
	IsDeleted int  `gorm:"default:0;index" json:"-"`
	Audit
}

func (RentalCompany) TableName() string { return "rental_companies" }

type UnitType struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	ProjectID uint `gorm:"not null;index" json:"project_id"`
	IsDeleted int  `gorm:"default:0;index" json:"-"`
	Audit
}

func (UnitType) TableName() string { return "unit_types" }

type Country struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	IsDeleted int `gorm:"default:0;index" json:"-"`
	Audit
}

func (Country) TableName() string { return "countries" }

type IDType struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	IsDeleted int `gorm:"default:0;index" json:"-"`
	Audit
}

func (IDType) TableName() string { return "id_types" }

type Religion struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	IsDeleted int `gorm:"default:0;index" json:"-"`
	Audit
}

func (Religion) TableName() string { return "religions" }

type MaritalStatus struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	IsDeleted int `gorm:"default:0;index" json:"-"`
	Audit
}

func (MaritalStatus) TableName() string { return "marital_statuses" }

type CustomerType struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	IsDeleted int `gorm:"default:0;index" json:"-"`
	Audit
}

func (CustomerType) TableName() string { return "customer_types" }

type OwnershipType struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	IsDeleted int `gorm:"default:0;index" json:"-"`
	Audit
}

func (OwnershipType) TableName() string { return "ownership_types" }

// ServiceConfig parameterizes a billable service within a tenant.
type ServiceConfig struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	ProjectID      uint            `gorm:"not null;index" json:"project_id"`
	CompanyProject CompanyProject  `gorm:"foreignKey:ProjectID" json:"-"`
	Amount         decimal.Decimal `gorm:"type:numeric(14,2)" json:"amount"`
	IsDeleted      int             `gorm:"default:0;index" json:"-"`
	CreatedByID    *uuid.UUID      `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CreatedByEmp   *Employee       `gorm:"foreignKey:CreatedByID" json:"-"`
	Audit
}

func (ServiceConfig) TableName() string { return "service_configs" }

// Service is a department-provided billable service instance.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`
	Localized
	DepartmentID    uint            `gorm:"not null;index" json:"department_id"`
	Department      Department      `gorm:"foreignKey:DepartmentID" json:"-"`
	ServiceConfigID uint            `gorm:"not null;index" json:"service_config_id"`
	ServiceConfig   ServiceConfig   `gorm:"foreignKey:ServiceConfigID" json:"-"`
	Price           decimal.Decimal `gorm:"type:numeric(14,2)" json:"price"`
	StartDate       time.Time       `json:"start_date"`
	IsDeleted       int             `gorm:"default:0;index" json:"-"`
	CreatedByID     *uuid.UUID      `gorm:"type:uuid" json:"created_by_id,omitempty"`
	CreatedByEmp    *Employee       `gorm:"foreignKey:CreatedByID" json:"-"`
	Audit
}

func (Service) TableName() string { return "services" }
