package model

import (
	"time"

	"backend/pkg/language"
)

// Soft-delete flag values. Rows are never physically removed; queries filter
// on is_deleted explicitly because the flag participates in unique indexes
// (a deleted role frees its name for reuse within the tenant).
const (
	NotDeleted = 0
	Deleted    = 1
)

// Row-level activation status (catalog joins, grants, lookup rows).
const (
	StatusInactive = 0
	StatusActive   = 1
)

// Lock flag values for employee accounts and units.
const (
	Unlocked = 0
	Locked   = 1
)

// Public flag values for tenants; only public projects answer the
// unauthenticated unit lookup.
const (
	Private = 0
	Public  = 1
)

// Gender values carried on employees and customers.
const (
	Female = 0
	Male   = 1
)

// SuperAdminRoleName is the one role exempt from tenant filtering.
// SiteAdminRoleName may additionally manage catalog assignments.
const (
	SuperAdminRoleName = "Super Admin"
	SiteAdminRoleName  = "Site Admin"
)

// Localized is the bilingual name pair carried by reference rows.
type Localized struct {
	EnName string `gorm:"type:varchar(255);not null" json:"en_name"`
	ArName string `gorm:"type:varchar(255);not null" json:"ar_name"`
}

// Name selects the display name for the given language.
func (l Localized) Name(lang language.Language) string {
	if lang == language.Arabic {
		return l.ArName
	}
	return l.EnName
}

// Audit carries the shared created/updated bookkeeping columns.
type Audit struct {
	CreatedBy string    `gorm:"type:varchar(255)" json:"created_by,omitempty"`
	UpdatedBy string    `gorm:"type:varchar(255)" json:"updated_by,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
