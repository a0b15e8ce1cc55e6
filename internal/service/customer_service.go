package service

import (
	"context"
	"time"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperr"
	"backend/pkg/pagination"
)

// --- DTOs ---

type CreateCustomerRequest struct {
	FullName       string     `json:"full_name" binding:"required"`
	Email          string     `json:"email" binding:"omitempty,email"`
	PhoneNumber    string     `json:"phone_number"`
	ProjectID      uint       `json:"project_id"`
	CustomerTypeID *uint      `json:"customer_type_id"`
	IDTypeID       *uint      `json:"id_type_id"`
	IDNumber       string     `json:"id_number"`
	CountryID      *uint      `json:"country_id"`
	ReligionID     *uint      `json:"religion_id"`
	MaritalID      *uint      `json:"marital_status_id"`
	IsMale         *int       `json:"is_male"`
	BirthDate      *time.Time `json:"birth_date"`
	Address        string     `json:"address"`
}

type CustomerListResponse struct {
	TotalCount int64            `json:"totalCount"`
	TotalPages int              `json:"totalPages"`
	Customers  []model.Customer `json:"customers"`
}

// --- Service ---

// CustomerService manages tenant-scoped customer records.
type CustomerService interface {
	CreateCustomer(ctx context.Context, claims *middleware.Claims, req CreateCustomerRequest) (*model.Customer, error)
	ListCustomers(ctx context.Context, claims *middleware.Claims, filter string, pag pagination.Params) (*CustomerListResponse, error)
}

type customerService struct {
	customers repository.CustomerRepository
}

// NewCustomerService returns a new instance of CustomerService
func NewCustomerService(customers repository.CustomerRepository) CustomerService {
	return &customerService{customers: customers}
}

// CreateCustomer stores a customer under the caller's tenant unless the
// payload names another project.
func (s *customerService) CreateCustomer(ctx context.Context, claims *middleware.Claims, req CreateCustomerRequest) (*model.Customer, error) {
	projectID := req.ProjectID
	if projectID == 0 {
		projectID = claims.CompanyProjectID
	}

	customer := model.Customer{
		FullName:       req.FullName,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		ProjectID:      projectID,
		CustomerTypeID: req.CustomerTypeID,
		IDTypeID:       req.IDTypeID,
		IDNumber:       req.IDNumber,
		CountryID:      req.CountryID,
		ReligionID:     req.ReligionID,
		MaritalID:      req.MaritalID,
		IsMale:         model.Male,
		BirthDate:      req.BirthDate,
		Address:        req.Address,
	}
	if req.IsMale != nil {
		customer.IsMale = *req.IsMale
	}
	customer.CreatedBy = claims.UserName

	if err := s.customers.Create(ctx, &customer); err != nil {
		if apperr.KindOf(apperr.FromDB(err, "")) == apperr.KindInvalidReference {
			return nil, apperr.Wrap(apperr.KindInvalidReference, "Invalid foreign key reference", err)
		}
		return nil, apperr.FromDB(err, "customer not found")
	}
	return &customer, nil
}

func (s *customerService) ListCustomers(ctx context.Context, claims *middleware.Claims, filter string, pag pagination.Params) (*CustomerListResponse, error) {
	customers, total, err := s.customers.List(ctx, claims, filter, pag)
	if err != nil {
		return nil, apperr.FromDB(err, "customers not found")
	}
	return &CustomerListResponse{
		TotalCount: total,
		TotalPages: pag.TotalPages(total),
		Customers:  customers,
	}, nil
}
