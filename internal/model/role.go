package model

import (
	"github.com/google/uuid"

	"backend/pkg/language"
)

// Role is a tenant-scoped permission bundle. The name is unique per tenant
// among non-deleted roles; is_deleted participates in the index so a deleted
// role frees its name while its grant history survives.
type Role struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EnName           string         `gorm:"type:varchar(255);not null;uniqueIndex:idx_roles_name_tenant" json:"en_name"`
	ArName           string         `gorm:"type:varchar(255);not null" json:"ar_name"`
	CompanyProjectID uint           `gorm:"not null;index;uniqueIndex:idx_roles_name_tenant" json:"company_project_id"`
	CompanyProject   CompanyProject `gorm:"foreignKey:CompanyProjectID" json:"-"`
	IsDeleted        int            `gorm:"default:0;uniqueIndex:idx_roles_name_tenant" json:"-"`
	Audit
}

func (Role) TableName() string { return "roles" }

// Name selects the role display name for the given language. Role carries
// its bilingual pair inline (not via Localized) because en_name participates
// in the tenant uniqueness index.
func (r Role) Name(lang language.Language) string {
	if lang == language.Arabic {
		return r.ArName
	}
	return r.EnName
}

// RolePrivilege records whether a role may exercise a privilege on a menu
// item. One row per (role, menu item, privilege) triple, targeted by upsert:
// revocation flips status rather than deleting the row.
type RolePrivilege struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	RoleID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_role_privileges_triple" json:"role_id"`
	MenuItemID  uint      `gorm:"not null;uniqueIndex:idx_role_privileges_triple" json:"menuitem_id"`
	PrivilegeID uint      `gorm:"not null;uniqueIndex:idx_role_privileges_triple" json:"privilege_id"`
	Status      int       `gorm:"not null;default:1" json:"status"`
	Role        Role      `gorm:"foreignKey:RoleID" json:"-"`
	MenuItem    MenuItem  `gorm:"foreignKey:MenuItemID" json:"-"`
	Privilege   Privilege `gorm:"foreignKey:PrivilegeID" json:"-"`
	Audit
}

func (RolePrivilege) TableName() string { return "role_privileges" }
