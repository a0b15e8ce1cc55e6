package repository_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
)

func dryRunDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 conn,
		PreferSimpleProtocol: true,
	}), &gorm.Config{DryRun: true})
	require.NoError(t, err)
	return db
}

func TestTenantScope(t *testing.T) {
	db := dryRunDB(t)

	t.Run("regular caller is pinned to their project", func(t *testing.T) {
		claims := &middleware.Claims{RoleName: "Manager", CompanyProjectID: 7}

		stmt := db.Model(&model.Role{}).
			Scopes(repository.TenantScope(claims, "company_project_id")).
			Find(&[]model.Role{}).Statement

		assert.Contains(t, stmt.SQL.String(), "company_project_id = ")
		assert.Contains(t, stmt.Vars, uint(7))
	})

	t.Run("super admin sees every tenant", func(t *testing.T) {
		claims := &middleware.Claims{RoleName: model.SuperAdminRoleName}

		stmt := db.Model(&model.Role{}).
			Scopes(repository.TenantScope(claims, "company_project_id")).
			Find(&[]model.Role{}).Statement

		assert.NotContains(t, stmt.SQL.String(), "company_project_id = ")
	})

	t.Run("scope column is caller-chosen for joins", func(t *testing.T) {
		claims := &middleware.Claims{RoleName: "Manager", CompanyProjectID: 3}

		stmt := db.Model(&model.Employee{}).
			Scopes(repository.TenantScope(claims, "roles.company_project_id")).
			Find(&[]model.Employee{}).Statement

		assert.Contains(t, stmt.SQL.String(), "roles.company_project_id = ")
	})
}

func TestLookupScope(t *testing.T) {
	db := dryRunDB(t)

	t.Run("regular caller sees own rows plus shared rows", func(t *testing.T) {
		claims := &middleware.Claims{RoleName: "Manager", CompanyProjectID: 7}

		stmt := db.Model(&model.Department{}).
			Scopes(repository.LookupScope(claims, "project_id")).
			Find(&[]model.Department{}).Statement

		assert.Contains(t, stmt.SQL.String(), "project_id IN ")
	})

	t.Run("super admin is unrestricted", func(t *testing.T) {
		claims := &middleware.Claims{RoleName: model.SuperAdminRoleName}

		stmt := db.Model(&model.Department{}).
			Scopes(repository.LookupScope(claims, "project_id")).
			Find(&[]model.Department{}).Statement

		assert.NotContains(t, stmt.SQL.String(), "project_id IN ")
	})
}
