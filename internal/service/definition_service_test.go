package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/repository"
	"backend/internal/service"
	"backend/pkg/apperr"
	"backend/pkg/language"
)

// fakeLookupRepo embeds the interface and overrides only what a test needs;
// untouched methods panic if reached.
type fakeLookupRepo struct {
	repository.LookupRepository
	departments []model.Department
	projects    []model.CompanyProject
	projectErr  error
}

func (f *fakeLookupRepo) CreateDepartments(_ context.Context, rows []model.Department) error {
	f.departments = append(f.departments, rows...)
	return nil
}

func (f *fakeLookupRepo) CreateProjects(_ context.Context, rows []model.CompanyProject) error {
	if f.projectErr != nil {
		return f.projectErr
	}
	f.projects = append(f.projects, rows...)
	return nil
}

func TestDefinitionService_CreateDepartments(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults the tenant to the caller's project", func(t *testing.T) {
		repo := &fakeLookupRepo{}
		svc := service.NewDefinitionService(repo)

		err := svc.CreateDepartments(ctx, managerClaims(), service.CreateLookupsRequest{
			Items: []service.LookupInput{{EnName: "Finance", ArName: "AR Finance"}},
		})
		require.NoError(t, err)
		require.Len(t, repo.departments, 1)
		assert.Equal(t, uint(7), repo.departments[0].ProjectID)
		assert.Equal(t, "jane", repo.departments[0].CreatedBy)
	})

	t.Run("explicit project wins", func(t *testing.T) {
		repo := &fakeLookupRepo{}
		svc := service.NewDefinitionService(repo)

		err := svc.CreateDepartments(ctx, managerClaims(), service.CreateLookupsRequest{
			Items: []service.LookupInput{{EnName: "Finance", ArName: "AR Finance", ProjectID: 42}},
		})
		require.NoError(t, err)
		require.Len(t, repo.departments, 1)
		assert.Equal(t, uint(42), repo.departments[0].ProjectID)
	})

	t.Run("super admin must name a project", func(t *testing.T) {
		repo := &fakeLookupRepo{}
		svc := service.NewDefinitionService(repo)
		super := &middleware.Claims{RoleName: model.SuperAdminRoleName, UserName: "root"}

		err := svc.CreateDepartments(ctx, super, service.CreateLookupsRequest{
			Items: []service.LookupInput{{EnName: "Finance", ArName: "AR Finance"}},
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		assert.Empty(t, repo.departments)
	})
}

func TestDefinitionService_CreateProjects(t *testing.T) {
	ctx := context.Background()
	public := model.Public

	t.Run("creates tenants with their code pair", func(t *testing.T) {
		repo := &fakeLookupRepo{}
		svc := service.NewDefinitionService(repo)

		err := svc.CreateProjects(ctx, managerClaims(), service.CreateProjectsRequest{
			Projects: []service.ProjectInput{
				{EnName: "Acme Towers", ArName: "AR Acme Towers", CompanyCode: "ACME", ProjectCode: "P1", IsPublic: &public},
				{EnName: "Acme Gardens", ArName: "AR Acme Gardens", CompanyCode: "ACME", ProjectCode: "P2"},
			},
		})
		require.NoError(t, err)
		require.Len(t, repo.projects, 2)
		assert.Equal(t, "ACME", repo.projects[0].CompanyCode)
		assert.Equal(t, model.Public, repo.projects[0].IsPublic)
		assert.Equal(t, model.Private, repo.projects[1].IsPublic)
		assert.Equal(t, "jane", repo.projects[0].CreatedBy)
	})

	t.Run("duplicate code pair conflicts", func(t *testing.T) {
		repo := &fakeLookupRepo{projectErr: gorm.ErrDuplicatedKey}
		svc := service.NewDefinitionService(repo)

		err := svc.CreateProjects(ctx, managerClaims(), service.CreateProjectsRequest{
			Projects: []service.ProjectInput{{EnName: "x", ArName: "y", CompanyCode: "ACME", ProjectCode: "P1"}},
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
		assert.Equal(t, "project already exists", apperr.Message(err))
	})
}

func loc(id uint, en, ar string, parent *uint) model.Location {
	return model.Location{
		ID:               id,
		Localized:        model.Localized{EnName: en, ArName: ar},
		ParentLocationID: parent,
	}
}

func ptr(v uint) *uint { return &v }

func TestBuildLocationTree(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		assert.Empty(t, service.BuildLocationTree(nil, language.English))
	})

	t.Run("nests children under parents", func(t *testing.T) {
		locations := []model.Location{
			loc(1, "Cairo", "AR Cairo", nil),
			loc(2, "Nasr City", "AR Nasr City", ptr(1)),
			loc(3, "Block A", "AR Block A", ptr(2)),
			loc(4, "Giza", "AR Giza", nil),
		}

		tree := service.BuildLocationTree(locations, language.English)
		require.Len(t, tree, 2)

		cairo := tree[0]
		assert.Equal(t, "Cairo", cairo.Name)
		require.Len(t, cairo.Locations, 1)
		assert.Equal(t, "Nasr City", cairo.Locations[0].Name)
		require.Len(t, cairo.Locations[0].Locations, 1)
		assert.Equal(t, "Block A", cairo.Locations[0].Locations[0].Name)

		assert.Equal(t, "Giza", tree[1].Name)
		assert.Empty(t, tree[1].Locations)
	})

	t.Run("arabic names when requested", func(t *testing.T) {
		locations := []model.Location{
			loc(1, "Cairo", "AR Cairo", nil),
			loc(2, "Nasr City", "AR Nasr City", ptr(1)),
		}

		tree := service.BuildLocationTree(locations, language.Arabic)
		require.Len(t, tree, 1)
		assert.Equal(t, "AR Cairo", tree[0].Name)
		assert.Equal(t, "AR Nasr City", tree[0].Locations[0].Name)
	})

	t.Run("orphaned child becomes a root", func(t *testing.T) {
		locations := []model.Location{
			loc(2, "Nasr City", "AR Nasr City", ptr(1)),
		}

		tree := service.BuildLocationTree(locations, language.English)
		require.Len(t, tree, 1)
		assert.Equal(t, "Nasr City", tree[0].Name)
	})
}
