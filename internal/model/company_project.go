package model

// AllProjectsID is the sentinel tenant row ("*"/"*") seeded first; lookups
// bound to it apply to every tenant.
const AllProjectsID uint = 1

// SentinelCode is the company/project code of the all-tenants row.
const SentinelCode = "*"

// CompanyProject is the tenancy unit: roles, employees (through roles) and
// most business data are scoped to one company/project pair.
type CompanyProject struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	CompanyCode string `gorm:"type:varchar(50);not null;uniqueIndex:idx_company_project_codes" json:"company_code"`
	ProjectCode string `gorm:"type:varchar(50);not null;uniqueIndex:idx_company_project_codes" json:"project_code"`
	Localized
	IsPublic  int `gorm:"default:0" json:"is_public"`
	IsDeleted int `gorm:"default:0;index" json:"-"`
	Audit
}

func (CompanyProject) TableName() string { return "company_projects" }
