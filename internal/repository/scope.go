package repository

import (
	"gorm.io/gorm"

	"backend/internal/middleware"
)

// TenantScope applies the cross-cutting tenancy rule shared by every
// tenant-scoped listing: the super-admin role sees all tenants, every other
// caller is pinned to its own project id on the given column.
func TenantScope(claims *middleware.Claims, column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if claims.IsSuperAdmin() {
			return db
		}
		return db.Where(column+" = ?", claims.CompanyProjectID)
	}
}
