package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"backend/internal/mail"
	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperr"
	"backend/pkg/language"
	"backend/pkg/pagination"
	"backend/pkg/password"
)

// --- DTOs ---

type CreateEmployeeRequest struct {
	Email        string `json:"email" binding:"required,email"`
	UserName     string `json:"user_name" binding:"required"`
	FullName     string `json:"full_name" binding:"required"`
	PhoneNumber  string `json:"phone_number"`
	IsMale       *int   `json:"is_male" binding:"required"`
	RoleID       string `json:"role_id" binding:"required,uuid"`
	DepartmentID *uint  `json:"department_id"`
	PositionID   *uint  `json:"position_id"`
	SafeID       *uint  `json:"safe_id"`
	UserTypeID   *uint  `json:"user_type_id"`
}

type UpdateEmployeeRequest struct {
	FullName     string `json:"full_name"`
	PhoneNumber  string `json:"phone_number"`
	RoleID       string `json:"role_id" binding:"omitempty,uuid"`
	DepartmentID *uint  `json:"department_id"`
	PositionID   *uint  `json:"position_id"`
	IsLocked     *int   `json:"is_locked"`
	IsDeleted    *int   `json:"is_deleted"`
}

type EmployeeResponse struct {
	ID            uuid.UUID  `json:"id"`
	Email         string     `json:"email"`
	UserName      string     `json:"user_name"`
	FullName      string     `json:"full_name"`
	PhoneNumber   string     `json:"phone_number"`
	RoleID        uuid.UUID  `json:"role_id"`
	RoleName      string     `json:"role_name,omitempty"`
	IsLocked      int        `json:"is_locked"`
	LastLoginDate *time.Time `json:"last_login_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type EmployeeListResponse struct {
	TotalCount int64              `json:"totalCount"`
	TotalPages int                `json:"totalPages"`
	Employees  []EmployeeResponse `json:"employees"`
}

// --- Service ---

// EmployeeService manages employee identities. New accounts get a generated
// password delivered by mail; accounts are locked or soft deleted, never
// physically removed.
type EmployeeService interface {
	CreateEmployee(ctx context.Context, claims *middleware.Claims, req CreateEmployeeRequest) (*EmployeeResponse, error)
	ListEmployees(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) (*EmployeeListResponse, error)
	UpdateEmployee(ctx context.Context, claims *middleware.Claims, id string, req UpdateEmployeeRequest) (*EmployeeResponse, error)
}

type employeeService struct {
	employees repository.EmployeeRepository
	mailer    mail.Sender
}

// NewEmployeeService returns a new instance of EmployeeService
func NewEmployeeService(employees repository.EmployeeRepository, mailer mail.Sender) EmployeeService {
	return &employeeService{employees: employees, mailer: mailer}
}

func toEmployeeResponse(e *model.Employee, lang language.Language) EmployeeResponse {
	resp := EmployeeResponse{
		ID:            e.ID,
		Email:         e.Email,
		UserName:      e.UserName,
		FullName:      e.FullName,
		PhoneNumber:   e.PhoneNumber,
		RoleID:        e.RoleID,
		IsLocked:      e.IsLocked,
		LastLoginDate: e.LastLoginDate,
		CreatedAt:     e.CreatedAt,
	}
	if e.Role.ID != uuid.Nil {
		resp.RoleName = e.Role.Name(lang)
	}
	return resp
}

// CreateEmployee provisions an account with a generated password and mails
// the credentials to the new employee.
func (s *employeeService) CreateEmployee(ctx context.Context, claims *middleware.Claims, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	exists, err := s.employees.ExistsByEmailOrUserName(ctx, req.Email, req.UserName)
	if err != nil {
		return nil, apperr.FromDB(err, "employee not found")
	}
	if exists {
		return nil, apperr.New(apperr.KindConflict, "Email or User Name already exists")
	}

	roleID, err := uuid.Parse(req.RoleID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid role id", err)
	}

	plain, err := password.Random(GeneratedPasswordLength)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to generate password", err)
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to hash password", err)
	}

	employee := model.Employee{
		Email:        req.Email,
		UserName:     req.UserName,
		FullName:     req.FullName,
		PhoneNumber:  req.PhoneNumber,
		IsMale:       *req.IsMale,
		Password:     hash,
		RoleID:       roleID,
		DepartmentID: req.DepartmentID,
		PositionID:   req.PositionID,
		SafeID:       req.SafeID,
		UserTypeID:   req.UserTypeID,
	}
	employee.CreatedBy = claims.UserName

	if err := s.employees.Create(ctx, &employee); err != nil {
		if apperr.KindOf(apperr.FromDB(err, "")) == apperr.KindInvalidReference {
			return nil, apperr.Wrap(apperr.KindInvalidReference, "Invalid foreign key reference", err)
		}
		return nil, apperr.FromDB(err, "employee not found")
	}

	if err := s.mailer.Send([]string{employee.Email}, mail.CredentialSubject, mail.CredentialTemplate(employee.FullName, plain)); err != nil {
		return nil, apperr.Wrap(apperr.KindInternal, "failed to send credential mail", err)
	}

	resp := toEmployeeResponse(&employee, language.Default)
	return &resp, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) (*EmployeeListResponse, error) {
	employees, total, err := s.employees.List(ctx, claims, filter, pag)
	if err != nil {
		return nil, apperr.FromDB(err, "employees not found")
	}

	responses := make([]EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, toEmployeeResponse(&employees[i], lang))
	}

	return &EmployeeListResponse{
		TotalCount: total,
		TotalPages: pag.TotalPages(total),
		Employees:  responses,
	}, nil
}

func (s *employeeService) UpdateEmployee(ctx context.Context, claims *middleware.Claims, id string, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	employeeID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid employee id", err)
	}

	employee, err := s.employees.GetWithRole(ctx, employeeID)
	if err != nil {
		return nil, apperr.FromDB(err, "employee not found")
	}

	if req.FullName != "" {
		employee.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		employee.PhoneNumber = req.PhoneNumber
	}
	if req.RoleID != "" {
		roleID, err := uuid.Parse(req.RoleID)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, "invalid role id", err)
		}
		employee.RoleID = roleID
	}
	if req.DepartmentID != nil {
		employee.DepartmentID = req.DepartmentID
	}
	if req.PositionID != nil {
		employee.PositionID = req.PositionID
	}
	if req.IsLocked != nil {
		employee.IsLocked = *req.IsLocked
	}
	if req.IsDeleted != nil {
		employee.IsDeleted = *req.IsDeleted
	}
	employee.UpdatedBy = claims.UserName

	if err := s.employees.Update(ctx, employee); err != nil {
		if apperr.KindOf(apperr.FromDB(err, "")) == apperr.KindInvalidReference {
			return nil, apperr.Wrap(apperr.KindInvalidReference, "Invalid foreign key reference", err)
		}
		return nil, apperr.FromDB(err, "employee not found")
	}

	resp := toEmployeeResponse(employee, language.Default)
	return &resp, nil
}
