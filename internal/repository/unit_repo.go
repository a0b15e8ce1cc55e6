package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/pkg/pagination"
)

// UnitFilter narrows the unit listing. Zero values mean "no filter".
type UnitFilter struct {
	UnitNumber string
	UnitTypeID uint
	LocationID uint
	IsActive   *int
}

// UnitRepository defines data access for property units and their
// specifications.
type UnitRepository interface {
	CreateWithSpecification(ctx context.Context, unit *model.Unit, spec *model.UnitSpecification) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Unit, error)
	List(ctx context.Context, claims *middleware.Claims, filter UnitFilter, pag pagination.Params) ([]model.Unit, int64, error)
	Update(ctx context.Context, unit *model.Unit) error
	ListByNumber(ctx context.Context, projectID uint, unitNumber string) ([]model.Unit, error)
	GetProject(ctx context.Context, id uint) (*model.CompanyProject, error)
	ListProjects(ctx context.Context) ([]model.CompanyProject, error)
	ListProjectCodes(ctx context.Context, projectID uint) ([]model.CompanyProject, error)
}

type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository returns a new instance of UnitRepository
func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db: db}
}

// CreateWithSpecification inserts the specification and the unit atomically;
// a failed unit insert rolls the specification back.
func (r *unitRepository) CreateWithSpecification(ctx context.Context, unit *model.Unit, spec *model.UnitSpecification) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(spec).Error; err != nil {
			return err
		}
		unit.SpecificationID = spec.ID
		return tx.Create(unit).Error
	})
}

func (r *unitRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Unit, error) {
	var unit model.Unit
	err := r.db.WithContext(ctx).
		Preload("Specification").
		First(&unit, "id = ? AND is_deleted = ?", id, model.NotDeleted).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (r *unitRepository) List(ctx context.Context, claims *middleware.Claims, filter UnitFilter, pag pagination.Params) ([]model.Unit, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Unit{}).
		Joins("JOIN unit_specifications ON unit_specifications.id = units.specification_id").
		Where("units.is_deleted = ?", model.NotDeleted).
		Scopes(TenantScope(claims, "units.project_id"))

	if filter.UnitNumber != "" {
		q = q.Where("units.unit_number ILIKE ?", "%"+filter.UnitNumber+"%")
	}
	if filter.UnitTypeID != 0 {
		q = q.Where("unit_specifications.unit_type_id = ?", filter.UnitTypeID)
	}
	if filter.LocationID != 0 {
		q = q.Where("unit_specifications.location_id = ?", filter.LocationID)
	}
	if filter.IsActive != nil {
		q = q.Where("units.is_active = ?", *filter.IsActive)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if pag.Enabled {
		q = q.Offset(pag.Offset).Limit(pag.Limit)
	}

	var units []model.Unit
	if err := q.Preload("Specification").Order("units.created_at ASC").Find(&units).Error; err != nil {
		return nil, 0, err
	}
	return units, total, nil
}

func (r *unitRepository) Update(ctx context.Context, unit *model.Unit) error {
	return r.db.WithContext(ctx).Save(unit).Error
}

// ListByNumber matches the unit number case-insensitively within one project.
func (r *unitRepository) ListByNumber(ctx context.Context, projectID uint, unitNumber string) ([]model.Unit, error) {
	var units []model.Unit
	err := r.db.WithContext(ctx).
		Preload("Specification").
		Where("project_id = ? AND unit_number ILIKE ? AND is_deleted = ?", projectID, unitNumber, model.NotDeleted).
		Find(&units).Error
	return units, err
}

func (r *unitRepository) GetProject(ctx context.Context, id uint) (*model.CompanyProject, error) {
	var project model.CompanyProject
	err := r.db.WithContext(ctx).
		First(&project, "id = ? AND is_deleted = ?", id, model.NotDeleted).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// ListProjects returns all live tenants except the sentinel all-projects row.
func (r *unitRepository) ListProjects(ctx context.Context) ([]model.CompanyProject, error) {
	var projects []model.CompanyProject
	err := r.db.WithContext(ctx).
		Where("is_deleted = ? AND company_code <> ?", model.NotDeleted, model.SentinelCode).
		Order("id ASC").
		Find(&projects).Error
	return projects, err
}

func (r *unitRepository) ListProjectCodes(ctx context.Context, projectID uint) ([]model.CompanyProject, error) {
	var projects []model.CompanyProject
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ? AND company_code <> ?", projectID, model.NotDeleted, model.SentinelCode).
		Find(&projects).Error
	return projects, err
}
