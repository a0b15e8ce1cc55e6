package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/pkg/apperr"
	"backend/pkg/language"
	"backend/pkg/pagination"
)

type fakeUnitRepo struct {
	units    map[uuid.UUID]*model.Unit
	projects map[uint]*model.CompanyProject
	nextSpec uint
}

func newFakeUnitRepo(units ...*model.Unit) *fakeUnitRepo {
	r := &fakeUnitRepo{
		units:    make(map[uuid.UUID]*model.Unit),
		projects: make(map[uint]*model.CompanyProject),
	}
	for _, u := range units {
		r.units[u.ID] = u
	}
	return r
}

func (r *fakeUnitRepo) CreateWithSpecification(_ context.Context, unit *model.Unit, spec *model.UnitSpecification) error {
	r.nextSpec++
	spec.ID = r.nextSpec
	unit.SpecificationID = spec.ID
	unit.ID = uuid.New()
	stored := *unit
	r.units[unit.ID] = &stored
	return nil
}

func (r *fakeUnitRepo) GetByID(_ context.Context, id uuid.UUID) (*model.Unit, error) {
	u, ok := r.units[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeUnitRepo) List(_ context.Context, claims *middleware.Claims, filter repository.UnitFilter, _ pagination.Params) ([]model.Unit, int64, error) {
	var units []model.Unit
	for _, u := range r.units {
		if claims.RoleName != model.SuperAdminRoleName && u.ProjectID != claims.CompanyProjectID {
			continue
		}
		units = append(units, *u)
	}
	return units, int64(len(units)), nil
}

func (r *fakeUnitRepo) Update(_ context.Context, unit *model.Unit) error {
	if _, ok := r.units[unit.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	stored := *unit
	r.units[unit.ID] = &stored
	return nil
}

func (r *fakeUnitRepo) ListByNumber(_ context.Context, projectID uint, unitNumber string) ([]model.Unit, error) {
	var units []model.Unit
	for _, u := range r.units {
		if u.ProjectID == projectID && strings.EqualFold(u.UnitNumber, unitNumber) {
			units = append(units, *u)
		}
	}
	return units, nil
}

func (r *fakeUnitRepo) GetProject(_ context.Context, id uint) (*model.CompanyProject, error) {
	p, ok := r.projects[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (r *fakeUnitRepo) ListProjects(_ context.Context) ([]model.CompanyProject, error) {
	var projects []model.CompanyProject
	for _, p := range r.projects {
		projects = append(projects, *p)
	}
	return projects, nil
}

func (r *fakeUnitRepo) ListProjectCodes(_ context.Context, projectID uint) ([]model.CompanyProject, error) {
	p, ok := r.projects[projectID]
	if !ok || p.CompanyCode == model.SentinelCode {
		return nil, nil
	}
	return []model.CompanyProject{*p}, nil
}

func TestUnitService_CreateUnit(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the tenant and stamps the creator", func(t *testing.T) {
		repo := newFakeUnitRepo()
		svc := service.NewUnitService(repo)

		unit, err := svc.CreateUnit(ctx, managerClaims(), service.CreateUnitRequest{
			UnitNumber: "A-101",
			Specification: service.UnitSpecificationInput{
				UnitTypeID: 1,
				LocationID: 2,
			},
		})
		require.NoError(t, err)
		assert.Equal(t, uint(7), unit.ProjectID)
		assert.Equal(t, "jane", unit.CreatedBy)
		assert.Equal(t, model.StatusActive, unit.IsActive)
		assert.NotZero(t, unit.SpecificationID)
		assert.Equal(t, "jane", unit.Specification.CreatedBy)
	})

	t.Run("malformed customer id is a validation error", func(t *testing.T) {
		svc := service.NewUnitService(newFakeUnitRepo())

		_, err := svc.CreateUnit(ctx, managerClaims(), service.CreateUnitRequest{
			UnitNumber:    "A-102",
			Specification: service.UnitSpecificationInput{UnitTypeID: 1, LocationID: 2},
			CustomerID:    "nope",
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestUnitService_SetUnitLock(t *testing.T) {
	ctx := context.Background()

	seeded := func() (*fakeUnitRepo, uuid.UUID) {
		id := uuid.New()
		return newFakeUnitRepo(&model.Unit{ID: id, UnitNumber: "A-101", ProjectID: 7}), id
	}

	t.Run("locking stamps the lock audit pair", func(t *testing.T) {
		repo, id := seeded()
		svc := service.NewUnitService(repo)

		unit, err := svc.SetUnitLock(ctx, managerClaims(), id.String(), model.Locked)
		require.NoError(t, err)
		assert.Equal(t, model.Locked, unit.IsLocked)
		assert.Equal(t, "jane", unit.LockedBy)
		require.NotNil(t, unit.LockDate)
		assert.Nil(t, unit.UnlockDate)
		assert.Equal(t, "jane", unit.UpdatedBy)

		stored := repo.units[id]
		assert.Equal(t, model.Locked, stored.IsLocked)
	})

	t.Run("unlocking stamps the unlock audit pair", func(t *testing.T) {
		repo, id := seeded()
		svc := service.NewUnitService(repo)

		_, err := svc.SetUnitLock(ctx, managerClaims(), id.String(), model.Locked)
		require.NoError(t, err)

		unit, err := svc.SetUnitLock(ctx, managerClaims(), id.String(), model.Unlocked)
		require.NoError(t, err)
		assert.Equal(t, model.Unlocked, unit.IsLocked)
		assert.Equal(t, "jane", unit.UnlockedBy)
		require.NotNil(t, unit.UnlockDate)
		require.NotNil(t, unit.LockDate, "earlier lock audit survives the unlock")
	})

	t.Run("unknown unit", func(t *testing.T) {
		svc := service.NewUnitService(newFakeUnitRepo())

		_, err := svc.SetUnitLock(ctx, managerClaims(), uuid.NewString(), model.Locked)
		require.Error(t, err)
		assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	})

	t.Run("malformed id", func(t *testing.T) {
		svc := service.NewUnitService(newFakeUnitRepo())

		_, err := svc.SetUnitLock(ctx, managerClaims(), "nope", model.Locked)
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
	})
}

func TestUnitService_PublicReads(t *testing.T) {
	ctx := context.Background()

	seeded := func() *fakeUnitRepo {
		repo := newFakeUnitRepo(&model.Unit{ID: uuid.New(), UnitNumber: "A-101", ProjectID: 7})
		repo.projects[7] = &model.CompanyProject{
			ID:          7,
			CompanyCode: "ACME",
			ProjectCode: "P1",
			Localized:   model.Localized{EnName: "Acme Towers", ArName: "AR Acme Towers"},
			IsPublic:    model.Public,
		}
		repo.projects[8] = &model.CompanyProject{
			ID:          8,
			CompanyCode: "ACME",
			ProjectCode: "P2",
			Localized:   model.Localized{EnName: "Acme Gardens", ArName: "AR Acme Gardens"},
		}
		return repo
	}

	t.Run("unit lookup on a public project", func(t *testing.T) {
		svc := service.NewUnitService(seeded())

		units, err := svc.GetPublicUnit(ctx, 7, "a-101")
		require.NoError(t, err)
		require.Len(t, units, 1)
		assert.Equal(t, "A-101", units[0].UnitNumber)
	})

	t.Run("private project answers like a missing one", func(t *testing.T) {
		svc := service.NewUnitService(seeded())

		_, err := svc.GetPublicUnit(ctx, 8, "A-101")
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.Equal(t, "Invalid project ID", apperr.Message(err))
	})

	t.Run("unknown project", func(t *testing.T) {
		svc := service.NewUnitService(seeded())

		_, err := svc.GetPublicUnit(ctx, 99, "A-101")
		require.Error(t, err)
		assert.Equal(t, "Invalid project ID", apperr.Message(err))
	})

	t.Run("sentinel project is never public", func(t *testing.T) {
		repo := seeded()
		repo.projects[model.AllProjectsID] = &model.CompanyProject{
			ID: model.AllProjectsID, CompanyCode: model.SentinelCode, ProjectCode: model.SentinelCode, IsPublic: model.Public,
		}
		svc := service.NewUnitService(repo)

		_, err := svc.GetPublicUnit(ctx, model.AllProjectsID, "A-101")
		require.Error(t, err)
		assert.Equal(t, "Invalid project ID", apperr.Message(err))
	})

	t.Run("project codes are localized", func(t *testing.T) {
		svc := service.NewUnitService(seeded())

		codes, err := svc.GetProjectCodes(ctx, language.Arabic, 7)
		require.NoError(t, err)
		require.Len(t, codes, 1)
		assert.Equal(t, "AR Acme Towers", codes[0].Name)
		assert.Equal(t, "ACME", codes[0].CompanyCode)
		assert.Equal(t, "P1", codes[0].ProjectCode)
	})

	t.Run("project codes respect the public flag", func(t *testing.T) {
		svc := service.NewUnitService(seeded())

		_, err := svc.GetProjectCodes(ctx, language.English, 8)
		require.Error(t, err)
		assert.Equal(t, "Invalid project ID", apperr.Message(err))
	})
}
