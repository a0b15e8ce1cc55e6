package repository

import (
	"context"

	"gorm.io/gorm"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/pkg/language"
	"backend/pkg/pagination"
)

// LookupScope is the tenancy rule for reference data: super admins see every
// tenant, other callers see their own rows plus the shared all-projects rows.
func LookupScope(claims *middleware.Claims, column string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if claims.IsSuperAdmin() {
			return db
		}
		return db.Where(column+" IN ?", []uint{claims.CompanyProjectID, model.AllProjectsID})
	}
}

func createBatch[T any](ctx context.Context, db *gorm.DB, rows []T) error {
	if len(rows) == 0 {
		return nil
	}
	return db.WithContext(ctx).Create(&rows).Error
}

func listScoped[T any](ctx context.Context, db *gorm.DB, claims *middleware.Claims) ([]T, error) {
	var rows []T
	err := db.WithContext(ctx).
		Where("is_deleted = ?", model.NotDeleted).
		Scopes(LookupScope(claims, "project_id")).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

func listGlobal[T any](ctx context.Context, db *gorm.DB) ([]T, error) {
	var rows []T
	err := db.WithContext(ctx).
		Where("is_deleted = ?", model.NotDeleted).
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// LookupRepository defines data access for the reference tables behind the
// definitions module and the combined dropdown read.
type LookupRepository interface {
	CreateProjects(ctx context.Context, rows []model.CompanyProject) error
	CreateDepartments(ctx context.Context, rows []model.Department) error
	CreatePositions(ctx context.Context, rows []model.Position) error
	CreateSafes(ctx context.Context, rows []model.Safe) error
	CreateUserTypes(ctx context.Context, rows []model.UserType) error
	CreateEmployeeTypes(ctx context.Context, rows []model.EmployeeType) error
	CreateLocationTypes(ctx context.Context, rows []model.LocationType) error
	CreateLocations(ctx context.Context, rows []model.Location) error
	CreateRentalCompanies(ctx context.Context, rows []model.RentalCompany) error
	CreateUnitTypes(ctx context.Context, rows []model.UnitType) error
	CreateCountries(ctx context.Context, rows []model.Country) error
	CreateIDTypes(ctx context.Context, rows []model.IDType) error
	CreateReligions(ctx context.Context, rows []model.Religion) error
	CreateMaritalStatuses(ctx context.Context, rows []model.MaritalStatus) error
	CreateCustomerTypes(ctx context.Context, rows []model.CustomerType) error
	CreateOwnershipTypes(ctx context.Context, rows []model.OwnershipType) error
	CreateServiceConfigs(ctx context.Context, rows []model.ServiceConfig) error
	CreateServices(ctx context.Context, rows []model.Service) error

	ListDepartments(ctx context.Context, claims *middleware.Claims) ([]model.Department, error)
	ListPositions(ctx context.Context, claims *middleware.Claims) ([]model.Position, error)
	ListSafes(ctx context.Context, claims *middleware.Claims) ([]model.Safe, error)
	ListUserTypes(ctx context.Context, claims *middleware.Claims) ([]model.UserType, error)
	ListEmployeeTypes(ctx context.Context, claims *middleware.Claims) ([]model.EmployeeType, error)
	ListLocationTypes(ctx context.Context, claims *middleware.Claims) ([]model.LocationType, error)
	ListLocations(ctx context.Context, claims *middleware.Claims) ([]model.Location, error)
	ListRentalCompanies(ctx context.Context, claims *middleware.Claims) ([]model.RentalCompany, error)
	ListUnitTypes(ctx context.Context, claims *middleware.Claims) ([]model.UnitType, error)
	ListCountries(ctx context.Context) ([]model.Country, error)
	ListIDTypes(ctx context.Context) ([]model.IDType, error)
	ListReligions(ctx context.Context) ([]model.Religion, error)
	ListMaritalStatuses(ctx context.Context) ([]model.MaritalStatus, error)
	ListCustomerTypes(ctx context.Context) ([]model.CustomerType, error)
	ListOwnershipTypes(ctx context.Context) ([]model.OwnershipType, error)

	ListServiceConfigs(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) ([]model.ServiceConfig, int64, error)
	ListServices(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) ([]model.Service, int64, error)
}

type lookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository returns a new instance of LookupRepository
func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &lookupRepository{db: db}
}

func (r *lookupRepository) CreateProjects(ctx context.Context, rows []model.CompanyProject) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateDepartments(ctx context.Context, rows []model.Department) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreatePositions(ctx context.Context, rows []model.Position) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateSafes(ctx context.Context, rows []model.Safe) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateUserTypes(ctx context.Context, rows []model.UserType) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateEmployeeTypes(ctx context.Context, rows []model.EmployeeType) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateLocationTypes(ctx context.Context, rows []model.LocationType) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateLocations(ctx context.Context, rows []model.Location) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateRentalCompanies(ctx context.Context, rows []model.RentalCompany) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateUnitTypes(ctx context.Context, rows []model.UnitType) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateCountries(ctx context.Context, rows []model.Country) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateIDTypes(ctx context.Context, rows []model.IDType) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateReligions(ctx context.Context, rows []model.Religion) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateMaritalStatuses(ctx context.Context, rows []model.MaritalStatus) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateCustomerTypes(ctx context.Context, rows []model.CustomerType) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateOwnershipTypes(ctx context.Context, rows []model.OwnershipType) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateServiceConfigs(ctx context.Context, rows []model.ServiceConfig) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) CreateServices(ctx context.Context, rows []model.Service) error {
	return createBatch(ctx, r.db, rows)
}

func (r *lookupRepository) ListDepartments(ctx context.Context, claims *middleware.Claims) ([]model.Department, error) {
	return listScoped[model.Department](ctx, r.db, claims)
}

func (r *lookupRepository) ListPositions(ctx context.Context, claims *middleware.Claims) ([]model.Position, error) {
	return listScoped[model.Position](ctx, r.db, claims)
}

func (r *lookupRepository) ListSafes(ctx context.Context, claims *middleware.Claims) ([]model.Safe, error) {
	return listScoped[model.Safe](ctx, r.db, claims)
}

func (r *lookupRepository) ListUserTypes(ctx context.Context, claims *middleware.Claims) ([]model.UserType, error) {
	return listScoped[model.UserType](ctx, r.db, claims)
}

func (r *lookupRepository) ListEmployeeTypes(ctx context.Context, claims *middleware.Claims) ([]model.EmployeeType, error) {
	return listScoped[model.EmployeeType](ctx, r.db, claims)
}

func (r *lookupRepository) ListLocationTypes(ctx context.Context, claims *middleware.Claims) ([]model.LocationType, error) {
	return listScoped[model.LocationType](ctx, r.db, claims)
}

func (r *lookupRepository) ListLocations(ctx context.Context, claims *middleware.Claims) ([]model.Location, error) {
	return listScoped[model.Location](ctx, r.db, claims)
}

func (r *lookupRepository) ListRentalCompanies(ctx context.Context, claims *middleware.Claims) ([]model.RentalCompany, error) {
	return listScoped[model.RentalCompany](ctx, r.db, claims)
}

func (r *lookupRepository) ListUnitTypes(ctx context.Context, claims *middleware.Claims) ([]model.UnitType, error) {
	return listScoped[model.UnitType](ctx, r.db, claims)
}

func (r *lookupRepository) ListCountries(ctx context.Context) ([]model.Country, error) {
	return listGlobal[model.Country](ctx, r.db)
}

func (r *lookupRepository) ListIDTypes(ctx context.Context) ([]model.IDType, error) {
	return listGlobal[model.IDType](ctx, r.db)
}

func (r *lookupRepository) ListReligions(ctx context.Context) ([]model.Religion, error) {
	return listGlobal[model.Religion](ctx, r.db)
}

func (r *lookupRepository) ListMaritalStatuses(ctx context.Context) ([]model.MaritalStatus, error) {
	return listGlobal[model.MaritalStatus](ctx, r.db)
}

func (r *lookupRepository) ListCustomerTypes(ctx context.Context) ([]model.CustomerType, error) {
	return listGlobal[model.CustomerType](ctx, r.db)
}

func (r *lookupRepository) ListOwnershipTypes(ctx context.Context) ([]model.OwnershipType, error) {
	return listGlobal[model.OwnershipType](ctx, r.db)
}

// ListServiceConfigs returns tenant-visible service configs with their
// project preloaded, filtered on the localized name.
func (r *lookupRepository) ListServiceConfigs(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) ([]model.ServiceConfig, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.ServiceConfig{}).
		Where("is_deleted = ?", model.NotDeleted).
		Scopes(LookupScope(claims, "project_id"))

	if filter != "" {
		q = q.Where(lang.NameColumn()+" ILIKE ?", "%"+filter+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if pag.Enabled {
		q = q.Offset(pag.Offset).Limit(pag.Limit)
	}

	var configs []model.ServiceConfig
	if err := q.Preload("CompanyProject").Order("id ASC").Find(&configs).Error; err != nil {
		return nil, 0, err
	}
	return configs, total, nil
}

// ListServices scopes through the department since services bind to tenants
// via their department.
func (r *lookupRepository) ListServices(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) ([]model.Service, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Service{}).
		Joins("JOIN departments ON departments.id = services.department_id").
		Where("services.is_deleted = ? AND departments.is_deleted = ?", model.NotDeleted, model.NotDeleted).
		Scopes(LookupScope(claims, "departments.project_id"))

	if filter != "" {
		q = q.Where("services."+lang.NameColumn()+" ILIKE ?", "%"+filter+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if pag.Enabled {
		q = q.Offset(pag.Offset).Limit(pag.Limit)
	}

	var services []model.Service
	if err := q.Preload("Department").Preload("ServiceConfig").Order("services.id ASC").Find(&services).Error; err != nil {
		return nil, 0, err
	}
	return services, total, nil
}
