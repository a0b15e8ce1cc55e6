package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/pkg/pagination"
)

// EmployeeRepository defines data access for employee identities.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *model.Employee) error
	GetWithRole(ctx context.Context, id uuid.UUID) (*model.Employee, error)
	GetByEmailWithRole(ctx context.Context, email string) (*model.Employee, error)
	ExistsByEmailOrUserName(ctx context.Context, email, userName string) (bool, error)
	List(ctx context.Context, claims *middleware.Claims, filter string, pag pagination.Params) ([]model.Employee, int64, error)
	Update(ctx context.Context, employee *model.Employee) error
	UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository returns a new instance of EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) Create(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// GetWithRole loads the employee together with its role and tenant. The
// soft-delete and lock flags are loaded as stored so callers can surface
// the specific condition.
func (r *employeeRepository) GetWithRole(ctx context.Context, id uuid.UUID) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("Role.CompanyProject").
		First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) GetByEmailWithRole(ctx context.Context, email string) (*model.Employee, error) {
	var employee model.Employee
	err := r.db.WithContext(ctx).
		Preload("Role").
		Preload("Role.CompanyProject").
		First(&employee, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) ExistsByEmailOrUserName(ctx context.Context, email, userName string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("email = ? OR user_name = ?", email, userName).
		Count(&count).Error
	return count > 0, err
}

// List returns employees visible to the caller: tenant scoping runs through
// the role join since employees bind to tenants via their role.
func (r *employeeRepository) List(ctx context.Context, claims *middleware.Claims, filter string, pag pagination.Params) ([]model.Employee, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Employee{}).
		Joins("JOIN roles ON roles.id = employees.role_id").
		Where("employees.is_deleted = ?", model.NotDeleted).
		Scopes(TenantScope(claims, "roles.company_project_id"))

	if filter != "" {
		q = q.Where("employees.full_name ILIKE ?", "%"+filter+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if pag.Enabled {
		q = q.Offset(pag.Offset).Limit(pag.Limit)
	}

	var employees []model.Employee
	if err := q.Preload("Role").Order("employees.created_at ASC").Find(&employees).Error; err != nil {
		return nil, 0, err
	}
	return employees, total, nil
}

func (r *employeeRepository) Update(ctx context.Context, employee *model.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

func (r *employeeRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	return r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ?", id).
		Update("password", hash).Error
}

func (r *employeeRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Employee{}).
		Where("id = ?", id).
		Update("last_login_date", at).Error
}
