package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/pkg/pagination"
)

// CustomerRepository defines data access for customers.
type CustomerRepository interface {
	Create(ctx context.Context, customer *model.Customer) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error)
	List(ctx context.Context, claims *middleware.Claims, filter string, pag pagination.Params) ([]model.Customer, int64, error)
	Update(ctx context.Context, customer *model.Customer) error
}

type customerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository returns a new instance of CustomerRepository
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	var customer model.Customer
	err := r.db.WithContext(ctx).
		First(&customer, "id = ? AND is_deleted = ?", id, model.NotDeleted).Error
	if err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) List(ctx context.Context, claims *middleware.Claims, filter string, pag pagination.Params) ([]model.Customer, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Customer{}).
		Where("is_deleted = ?", model.NotDeleted).
		Scopes(TenantScope(claims, "project_id"))

	if filter != "" {
		q = q.Where("full_name ILIKE ?", "%"+filter+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if pag.Enabled {
		q = q.Offset(pag.Offset).Limit(pag.Limit)
	}

	var customers []model.Customer
	if err := q.Order("created_at ASC").Find(&customers).Error; err != nil {
		return nil, 0, err
	}
	return customers, total, nil
}

func (r *customerRepository) Update(ctx context.Context, customer *model.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}
