package database

import (
	"log"

	"gorm.io/gorm"

	"backend/internal/model"
	"backend/pkg/password"
)

// SeedAdmin is the bootstrap identity for the super admin account.
type SeedAdmin struct {
	Email    string
	UserName string
	FullName string
	Password string
}

// Seed bootstraps the sentinel tenant, the super admin role and its account,
// plus the minimal lookup rows the account references. Safe to run on every
// start: each row is looked up before it is created, and seeded rows carry an
// empty created_by which keeps them out of user-facing role listings.
func Seed(db *gorm.DB, admin SeedAdmin) error {
	sentinel := model.CompanyProject{
		CompanyCode: model.SentinelCode,
		ProjectCode: model.SentinelCode,
		Localized:   model.Localized{EnName: "All Projects", ArName: "All Projects"},
	}
	if err := db.Where("company_code = ? AND project_code = ?", model.SentinelCode, model.SentinelCode).
		FirstOrCreate(&sentinel).Error; err != nil {
		return err
	}

	role := model.Role{
		EnName:           model.SuperAdminRoleName,
		ArName:           model.SuperAdminRoleName,
		CompanyProjectID: sentinel.ID,
	}
	if err := db.Where("en_name = ? AND company_project_id = ? AND is_deleted = ?",
		model.SuperAdminRoleName, sentinel.ID, model.NotDeleted).
		FirstOrCreate(&role).Error; err != nil {
		return err
	}

	department := model.Department{
		Localized: model.Localized{EnName: "Administration", ArName: "Administration"},
		ProjectID: sentinel.ID,
		Status:    model.StatusActive,
	}
	if err := db.Where("en_name = ? AND project_id = ?", department.EnName, sentinel.ID).
		FirstOrCreate(&department).Error; err != nil {
		return err
	}

	position := model.Position{
		Localized: model.Localized{EnName: "Administrator", ArName: "Administrator"},
		ProjectID: sentinel.ID,
		Status:    model.StatusActive,
	}
	if err := db.Where("en_name = ? AND project_id = ?", position.EnName, sentinel.ID).
		FirstOrCreate(&position).Error; err != nil {
		return err
	}

	safe := model.Safe{
		EnName:    "Main Safe",
		ArName:    "Main Safe",
		ProjectID: sentinel.ID,
	}
	if err := db.Where("en_name = ? AND project_id = ?", safe.EnName, sentinel.ID).
		FirstOrCreate(&safe).Error; err != nil {
		return err
	}

	var count int64
	if err := db.Model(&model.Employee{}).Where("email = ?", admin.Email).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		hash, err := password.Hash(admin.Password)
		if err != nil {
			return err
		}
		employee := model.Employee{
			Email:        admin.Email,
			UserName:     admin.UserName,
			FullName:     admin.FullName,
			Password:     hash,
			RoleID:       role.ID,
			DepartmentID: &department.ID,
			PositionID:   &position.ID,
			SafeID:       &safe.ID,
		}
		if err := db.Create(&employee).Error; err != nil {
			return err
		}
		log.Printf("database: seeded super admin account %s", admin.Email)
	}

	return nil
}
