package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"backend/internal/model"
)

// NewConnection initializes a new connection pool using GORM. TranslateError
// turns driver-level uniqueness and foreign key violations into GORM's
// portable sentinel errors so the layers above can classify them.
func NewConnection(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&model.CompanyProject{},
		&model.Role{},
		&model.Department{},
		&model.Position{},
		&model.Safe{},
		&model.UserType{},
		&model.EmployeeType{},
		&model.Employee{},
		&model.Menu{},
		&model.MenuItem{},
		&model.Privilege{},
		&model.MenuItemPrivilege{},
		&model.RolePrivilege{},
		&model.LocationType{},
		&model.Location{},
		&model.RentalCompany{},
		&model.UnitType{},
		&model.Country{},
		&model.IDType{},
		&model.Religion{},
		&model.MaritalStatus{},
		&model.CustomerType{},
		&model.OwnershipType{},
		&model.Customer{},
		&model.UnitSpecification{},
		&model.Unit{},
		&model.ServiceConfig{},
		&model.Service{},
	)
	if err != nil {
		return nil, err
	}

	return db, nil
}
