package service_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/pbkdf2"
	"gorm.io/gorm"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/apperr"
	"backend/pkg/pagination"
	"backend/pkg/password"
)

// fakeEmployeeRepo is an in-memory EmployeeRepository.
type fakeEmployeeRepo struct {
	employees map[uuid.UUID]*model.Employee
}

func newFakeEmployeeRepo(employees ...*model.Employee) *fakeEmployeeRepo {
	repo := &fakeEmployeeRepo{employees: make(map[uuid.UUID]*model.Employee)}
	for _, e := range employees {
		repo.employees[e.ID] = e
	}
	return repo
}

func (r *fakeEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	for _, e := range r.employees {
		if e.Email == employee.Email || e.UserName == employee.UserName {
			return gorm.ErrDuplicatedKey
		}
	}
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	r.employees[employee.ID] = employee
	return nil
}

func (r *fakeEmployeeRepo) GetWithRole(_ context.Context, id uuid.UUID) (*model.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

func (r *fakeEmployeeRepo) GetByEmailWithRole(_ context.Context, email string) (*model.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeEmployeeRepo) ExistsByEmailOrUserName(_ context.Context, email, userName string) (bool, error) {
	for _, e := range r.employees {
		if e.Email == email || e.UserName == userName {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmployeeRepo) List(_ context.Context, _ *middleware.Claims, _ string, _ pagination.Params) ([]model.Employee, int64, error) {
	var out []model.Employee
	for _, e := range r.employees {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (r *fakeEmployeeRepo) Update(_ context.Context, employee *model.Employee) error {
	if _, ok := r.employees[employee.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	r.employees[employee.ID] = employee
	return nil
}

func (r *fakeEmployeeRepo) UpdatePassword(_ context.Context, id uuid.UUID, hash string) error {
	e, ok := r.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.Password = hash
	return nil
}

func (r *fakeEmployeeRepo) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	e, ok := r.employees[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	e.LastLoginDate = &at
	return nil
}

// fakeMailer records sent mail and can be told to fail.
type fakeMailer struct {
	sent []sentMail
	err  error
}

type sentMail struct {
	to      []string
	subject string
	body    string
}

func (m *fakeMailer) Send(to []string, subject, html string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: html})
	return nil
}

func testIssuer(t *testing.T) (*service.TokenIssuer, *rsa.PublicKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	return service.NewTokenIssuer(key, time.Hour), &key.PublicKey
}

func testEmployee(t *testing.T, plain string) *model.Employee {
	t.Helper()
	hash, err := password.Hash(plain)
	require.NoError(t, err)

	roleID := uuid.New()
	return &model.Employee{
		ID:       uuid.New(),
		Email:    "jane@acme.test",
		UserName: "jane",
		FullName: "Jane Doe",
		Password: hash,
		RoleID:   roleID,
		Role: model.Role{
			ID:               roleID,
			EnName:           "Manager",
			ArName:           "Manager",
			CompanyProjectID: 7,
			CompanyProject: model.CompanyProject{
				ID:          7,
				CompanyCode: "ACME",
				ProjectCode: "P1",
				Localized:   model.Localized{EnName: "Acme Towers", ArName: "Acme Towers"},
			},
		},
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success returns verifiable token and claims", func(t *testing.T) {
		employee := testEmployee(t, "GoodPass1")
		repo := newFakeEmployeeRepo(employee)
		issuer, pub := testIssuer(t)
		svc := service.NewAuthService(repo, issuer, &fakeMailer{})

		resp, err := svc.Login(ctx, service.LoginRequest{Email: employee.Email, Password: "GoodPass1"})
		require.NoError(t, err)

		assert.Equal(t, employee.ID, resp.EmployeeID)
		assert.Equal(t, "Manager", resp.RoleName)
		assert.Equal(t, uint(7), resp.CompanyProjectID)
		assert.Equal(t, "ACME", resp.CompanyCode)
		assert.Equal(t, "P1", resp.ProjectCode)
		assert.Equal(t, "Acme Towers", resp.ProjectName)

		claims, err := middleware.ParseToken(resp.AccessToken, pub)
		require.NoError(t, err)
		assert.Equal(t, employee.ID, claims.EmployeeID)
		assert.Equal(t, "jane", claims.UserName)

		assert.NotNil(t, employee.LastLoginDate)
	})

	t.Run("unknown email is a generic failure", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		issuer, _ := testIssuer(t)
		svc := service.NewAuthService(repo, issuer, &fakeMailer{})

		_, err := svc.Login(ctx, service.LoginRequest{Email: "ghost@acme.test", Password: "x"})
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
		assert.Equal(t, "invalid email or password", apperr.Message(err))
	})

	t.Run("wrong password matches the unknown email message", func(t *testing.T) {
		employee := testEmployee(t, "GoodPass1")
		repo := newFakeEmployeeRepo(employee)
		issuer, _ := testIssuer(t)
		svc := service.NewAuthService(repo, issuer, &fakeMailer{})

		_, err := svc.Login(ctx, service.LoginRequest{Email: employee.Email, Password: "BadPass"})
		require.Error(t, err)
		assert.Equal(t, apperr.KindUnauthenticated, apperr.KindOf(err))
		assert.Equal(t, "invalid email or password", apperr.Message(err))
	})

	t.Run("deleted role is reported before the password is checked", func(t *testing.T) {
		employee := testEmployee(t, "GoodPass1")
		employee.Role.IsDeleted = model.Deleted
		repo := newFakeEmployeeRepo(employee)
		issuer, _ := testIssuer(t)
		svc := service.NewAuthService(repo, issuer, &fakeMailer{})

		_, err := svc.Login(ctx, service.LoginRequest{Email: employee.Email, Password: "wrong-anyway"})
		require.Error(t, err)
		assert.Equal(t, apperr.KindRoleDeleted, apperr.KindOf(err))
		assert.Equal(t, "Your role has been deleted, please contact administrator", apperr.Message(err))
	})

	t.Run("deleted account", func(t *testing.T) {
		employee := testEmployee(t, "GoodPass1")
		employee.IsDeleted = model.Deleted
		repo := newFakeEmployeeRepo(employee)
		issuer, _ := testIssuer(t)
		svc := service.NewAuthService(repo, issuer, &fakeMailer{})

		_, err := svc.Login(ctx, service.LoginRequest{Email: employee.Email, Password: "GoodPass1"})
		require.Error(t, err)
		assert.Equal(t, apperr.KindAccountDeleted, apperr.KindOf(err))
	})

	t.Run("locked account", func(t *testing.T) {
		employee := testEmployee(t, "GoodPass1")
		employee.IsLocked = model.Locked
		repo := newFakeEmployeeRepo(employee)
		issuer, _ := testIssuer(t)
		svc := service.NewAuthService(repo, issuer, &fakeMailer{})

		_, err := svc.Login(ctx, service.LoginRequest{Email: employee.Email, Password: "GoodPass1"})
		require.Error(t, err)
		assert.Equal(t, apperr.KindAccountLocked, apperr.KindOf(err))
	})

	t.Run("legacy hash migrates on successful login", func(t *testing.T) {
		employee := testEmployee(t, "unused")
		salt := []byte("0123456789abcdef")
		subkey := pbkdf2.Key([]byte("LegacyPass1"), salt, 10000, 32, sha256.New)
		raw := append(append(make([]byte, 13), salt...), subkey...)
		employee.Password = base64.StdEncoding.EncodeToString(raw)
		require.True(t, password.IsLegacy(employee.Password))

		repo := newFakeEmployeeRepo(employee)
		issuer, _ := testIssuer(t)
		svc := service.NewAuthService(repo, issuer, &fakeMailer{})

		_, err := svc.Login(ctx, service.LoginRequest{Email: employee.Email, Password: "LegacyPass1"})
		require.NoError(t, err)

		assert.False(t, password.IsLegacy(employee.Password))
		ok, err := password.Verify("LegacyPass1", employee.Password)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (service.AuthService, *model.Employee, *middleware.Claims) {
		employee := testEmployee(t, "OldPass1")
		repo := newFakeEmployeeRepo(employee)
		issuer, _ := testIssuer(t)
		svc := service.NewAuthService(repo, issuer, &fakeMailer{})
		return svc, employee, &middleware.Claims{EmployeeID: employee.ID}
	}

	t.Run("success stores a modern hash of the new password", func(t *testing.T) {
		svc, employee, claims := setup(t)

		err := svc.ChangePassword(ctx, claims, service.ChangePasswordRequest{
			OldPassword: "OldPass1", NewPassword: "NewPass1", ConfirmPassword: "NewPass1",
		})
		require.NoError(t, err)

		ok, err := password.Verify("NewPass1", employee.Password)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		svc, _, claims := setup(t)

		err := svc.ChangePassword(ctx, claims, service.ChangePasswordRequest{
			OldPassword: "OldPass1", NewPassword: "NewPass1", ConfirmPassword: "Different",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})

	t.Run("wrong old password", func(t *testing.T) {
		svc, _, claims := setup(t)

		err := svc.ChangePassword(ctx, claims, service.ChangePasswordRequest{
			OldPassword: "Nope", NewPassword: "NewPass1", ConfirmPassword: "NewPass1",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.Equal(t, "Old password is incorrect", apperr.Message(err))
	})
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("rotates the password and mails the plaintext", func(t *testing.T) {
		employee := testEmployee(t, "OldPass1")
		repo := newFakeEmployeeRepo(employee)
		issuer, _ := testIssuer(t)
		mailer := &fakeMailer{}
		svc := service.NewAuthService(repo, issuer, mailer)

		err := svc.ResetPassword(ctx, service.ResetPasswordRequest{EmployeeID: employee.ID.String()})
		require.NoError(t, err)

		ok, err := password.Verify("OldPass1", employee.Password)
		require.NoError(t, err)
		assert.False(t, ok, "old password must no longer verify")

		require.Len(t, mailer.sent, 1)
		assert.Equal(t, []string{employee.Email}, mailer.sent[0].to)
		assert.Contains(t, mailer.sent[0].body, employee.FullName)
	})

	t.Run("unknown employee", func(t *testing.T) {
		repo := newFakeEmployeeRepo()
		issuer, _ := testIssuer(t)
		svc := service.NewAuthService(repo, issuer, &fakeMailer{})

		err := svc.ResetPassword(ctx, service.ResetPasswordRequest{EmployeeID: uuid.NewString()})
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("mail failure surfaces after the rotation", func(t *testing.T) {
		employee := testEmployee(t, "OldPass1")
		repo := newFakeEmployeeRepo(employee)
		issuer, _ := testIssuer(t)
		mailer := &fakeMailer{err: errors.New("smtp down")}
		svc := service.NewAuthService(repo, issuer, mailer)

		err := svc.ResetPassword(ctx, service.ResetPasswordRequest{EmployeeID: employee.ID.String()})
		require.Error(t, err)
		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	})
}
