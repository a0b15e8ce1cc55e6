package service

import (
	"context"
	"crypto/rsa"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"backend/internal/mail"
	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/pkg/apperr"
	"backend/pkg/password"
)

// GeneratedPasswordLength is used for admin-created accounts and resets.
const GeneratedPasswordLength = 8

// --- DTOs ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	EmployeeID       uuid.UUID `json:"employee_id"`
	RoleID           uuid.UUID `json:"role_id"`
	RoleName         string    `json:"role_name"`
	UserName         string    `json:"user_name"`
	EmployeeName     string    `json:"employee_name"`
	CompanyProjectID uint      `json:"company_project_id"`
	CompanyCode      string    `json:"company_code"`
	ProjectCode      string    `json:"project_code"`
	ProjectName      string    `json:"project_name"`
	AccessToken      string    `json:"access_token"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type ResetPasswordRequest struct {
	EmployeeID string `json:"employee_id" binding:"required,uuid"`
}

// --- Token issuer ---

// TokenIssuer mints RS256-signed access tokens. Only this process holds the
// private key; verifiers need just the public half.
type TokenIssuer struct {
	privateKey *rsa.PrivateKey
	ttl        time.Duration
}

// NewTokenIssuer returns a TokenIssuer with a fixed token lifetime.
func NewTokenIssuer(privateKey *rsa.PrivateKey, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{privateKey: privateKey, ttl: ttl}
}

// Issue signs a token embedding identity, role and tenant claims. The
// employee must arrive with its role and tenant preloaded.
func (t *TokenIssuer) Issue(employee *model.Employee) (string, *middleware.Claims, error) {
	now := time.Now()
	claims := &middleware.Claims{
		EmployeeID:       employee.ID,
		RoleID:           employee.Role.ID,
		RoleName:         employee.Role.EnName,
		UserName:         employee.UserName,
		EmployeeName:     employee.FullName,
		CompanyProjectID: employee.Role.CompanyProjectID,
		CompanyCode:      employee.Role.CompanyProject.CompanyCode,
		ProjectCode:      employee.Role.CompanyProject.ProjectCode,
		ProjectName:      employee.Role.CompanyProject.EnName,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)
	signed, err := token.SignedString(t.privateKey)
	if err != nil {
		return "", nil, apperr.Wrap(apperr.KindInternal, "failed to sign token", err)
	}
	return signed, claims, nil
}

// --- Service ---

// AuthService covers credential validation, token issuance and the
// password lifecycle.
type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (*LoginResponse, error)
	ChangePassword(ctx context.Context, claims *middleware.Claims, req ChangePasswordRequest) error
	ResetPassword(ctx context.Context, req ResetPasswordRequest) error
}

type authService struct {
	employees repository.EmployeeRepository
	issuer    *TokenIssuer
	mailer    mail.Sender
}

// NewAuthService returns a new instance of AuthService
func NewAuthService(employees repository.EmployeeRepository, issuer *TokenIssuer, mailer mail.Sender) AuthService {
	return &authService{employees: employees, issuer: issuer, mailer: mailer}
}

// Login validates credentials and mints an access token. Unknown email and
// wrong password collapse into the same generic failure; deleted/locked
// states are distinct, user-visible conditions checked before the password
// is compared.
func (s *authService) Login(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	employee, err := s.validateCredentials(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, claims, err := s.issuer.Issue(employee)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		EmployeeID:       claims.EmployeeID,
		RoleID:           claims.RoleID,
		RoleName:         claims.RoleName,
		UserName:         claims.UserName,
		EmployeeName:     claims.EmployeeName,
		CompanyProjectID: claims.CompanyProjectID,
		CompanyCode:      claims.CompanyCode,
		ProjectCode:      claims.ProjectCode,
		ProjectName:      claims.ProjectName,
		AccessToken:      token,
	}, nil
}

func (s *authService) validateCredentials(ctx context.Context, email, plain string) (*model.Employee, error) {
	employee, err := s.employees.GetByEmailWithRole(ctx, email)
	if err != nil {
		// Not found maps to the same generic message as a bad password.
		return nil, apperr.New(apperr.KindUnauthenticated, "invalid email or password")
	}

	switch {
	case employee.Role.IsDeleted == model.Deleted:
		return nil, apperr.New(apperr.KindRoleDeleted, "Your role has been deleted, please contact administrator")
	case employee.IsDeleted == model.Deleted:
		return nil, apperr.New(apperr.KindAccountDeleted, "Your account has been deleted, please contact administrator")
	case employee.IsLocked == model.Locked:
		return nil, apperr.New(apperr.KindAccountLocked, "Your account has been locked, please contact administrator")
	}

	ok, err := password.Verify(plain, employee.Password)
	if err != nil || !ok {
		return nil, apperr.New(apperr.KindUnauthenticated, "invalid email or password")
	}

	// Lazy hash migration: a successful login against a legacy hash
	// re-hashes with the modern scheme, exactly once per account.
	if password.IsLegacy(employee.Password) {
		newHash, err := password.Hash(plain)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindInternal, "failed to re-hash password", err)
		}
		if err := s.employees.UpdatePassword(ctx, employee.ID, newHash); err != nil {
			return nil, apperr.FromDB(err, "employee not found")
		}
		employee.Password = newHash
	}

	now := time.Now()
	if err := s.employees.UpdateLastLogin(ctx, employee.ID, now); err != nil {
		return nil, apperr.FromDB(err, "employee not found")
	}
	employee.LastLoginDate = &now

	return employee, nil
}

// ChangePassword verifies the old password and stores a modern hash of the
// new one.
func (s *authService) ChangePassword(ctx context.Context, claims *middleware.Claims, req ChangePasswordRequest) error {
	if req.NewPassword != req.ConfirmPassword {
		return apperr.New(apperr.KindValidation, "New password and confirm password do not match")
	}

	employee, err := s.employees.GetWithRole(ctx, claims.EmployeeID)
	if err != nil {
		return apperr.FromDB(err, "Employee not found")
	}

	ok, err := password.Verify(req.OldPassword, employee.Password)
	if err != nil || !ok {
		return apperr.New(apperr.KindValidation, "Old password is incorrect")
	}

	hash, err := password.Hash(req.NewPassword)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to hash password", err)
	}
	if err := s.employees.UpdatePassword(ctx, employee.ID, hash); err != nil {
		return apperr.FromDB(err, "Employee not found")
	}
	return nil
}

// ResetPassword generates a fresh random password, stores its hash and
// mails the plaintext to the employee.
func (s *authService) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	id, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return apperr.Wrap(apperr.KindValidation, "invalid employee id", err)
	}

	employee, err := s.employees.GetWithRole(ctx, id)
	if err != nil {
		return apperr.FromDB(err, "Email or User Name does not exist")
	}
	if employee.Email == "" {
		return apperr.New(apperr.KindValidation, "Employee email is missing")
	}

	plain, err := password.Random(GeneratedPasswordLength)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to generate password", err)
	}
	hash, err := password.Hash(plain)
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "failed to hash password", err)
	}
	if err := s.employees.UpdatePassword(ctx, employee.ID, hash); err != nil {
		return apperr.FromDB(err, "Email or User Name does not exist")
	}

	if err := s.mailer.Send([]string{employee.Email}, mail.CredentialSubject, mail.CredentialTemplate(employee.FullName, plain)); err != nil {
		// The password is already rotated; mail failure must surface so
		// the admin retries rather than leaving the employee locked out.
		log.Printf("auth: credential mail to %s failed: %v", employee.Email, err)
		return apperr.Wrap(apperr.KindInternal, "failed to send credential mail", err)
	}
	return nil
}
