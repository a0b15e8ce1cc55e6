package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/apperr"
	"backend/pkg/language"
)

type pairKey struct {
	menuItemID  uint
	privilegeID uint
}

// fakeCatalogRepo is an in-memory CatalogRepository with upsert semantics on
// the menu-item/privilege pair.
type fakeCatalogRepo struct {
	menus        map[uint]model.Menu
	items        map[uint]model.MenuItem
	privileges   map[uint]model.Privilege
	associations map[pairKey]*model.MenuItemPrivilege
	nextMenu     uint
	nextItem     uint
	nextPriv     uint
	nextAssoc    uint
}

func newFakeCatalogRepo() *fakeCatalogRepo {
	return &fakeCatalogRepo{
		menus:        make(map[uint]model.Menu),
		items:        make(map[uint]model.MenuItem),
		privileges:   make(map[uint]model.Privilege),
		associations: make(map[pairKey]*model.MenuItemPrivilege),
	}
}

func (r *fakeCatalogRepo) CreateMenus(_ context.Context, menus []model.Menu) error {
	for _, m := range menus {
		r.nextMenu++
		m.ID = r.nextMenu
		r.menus[m.ID] = m
	}
	return nil
}

func (r *fakeCatalogRepo) CreateMenuItems(_ context.Context, items []model.MenuItem) error {
	for _, item := range items {
		if _, ok := r.menus[item.MenuID]; !ok {
			return gorm.ErrForeignKeyViolated
		}
	}
	for _, item := range items {
		r.nextItem++
		item.ID = r.nextItem
		r.items[item.ID] = item
	}
	return nil
}

func (r *fakeCatalogRepo) CreatePrivileges(_ context.Context, privileges []model.Privilege) error {
	for _, p := range privileges {
		r.nextPriv++
		p.ID = r.nextPriv
		r.privileges[p.ID] = p
	}
	return nil
}

func (r *fakeCatalogRepo) UpsertAssociations(_ context.Context, joins []model.MenuItemPrivilege) ([]model.MenuItemPrivilege, error) {
	applied := make([]model.MenuItemPrivilege, 0, len(joins))
	for _, join := range joins {
		if _, ok := r.items[join.MenuItemID]; !ok {
			return nil, gorm.ErrForeignKeyViolated
		}
		if _, ok := r.privileges[join.PrivilegeID]; !ok {
			return nil, gorm.ErrForeignKeyViolated
		}
		key := pairKey{join.MenuItemID, join.PrivilegeID}
		if existing, ok := r.associations[key]; ok {
			existing.Status = join.Status
			applied = append(applied, *existing)
			continue
		}
		r.nextAssoc++
		join.ID = r.nextAssoc
		stored := join
		r.associations[key] = &stored
		applied = append(applied, join)
	}
	return applied, nil
}

func (r *fakeCatalogRepo) AssociationRows(_ context.Context, lang language.Language, filter string) ([]model.MenuItemPrivilege, error) {
	var rows []model.MenuItemPrivilege
	for _, assoc := range r.associations {
		if assoc.Status != model.StatusActive {
			continue
		}
		item := r.items[assoc.MenuItemID]
		item.Menu = r.menus[item.MenuID]
		if filter != "" && !strings.Contains(strings.ToLower(item.Name(lang)), strings.ToLower(filter)) {
			continue
		}
		row := *assoc
		row.MenuItem = item
		row.Privilege = r.privileges[assoc.PrivilegeID]
		rows = append(rows, row)
	}
	return rows, nil
}

func (r *fakeCatalogRepo) ListMenuItems(_ context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	for _, item := range r.items {
		items = append(items, item)
	}
	return items, nil
}

func (r *fakeCatalogRepo) ListPrivileges(_ context.Context) ([]model.Privilege, error) {
	var privileges []model.Privilege
	for _, p := range r.privileges {
		privileges = append(privileges, p)
	}
	return privileges, nil
}

func seededCatalog(t *testing.T, svc service.CatalogService) {
	t.Helper()
	ctx := context.Background()
	claims := managerClaims()

	require.NoError(t, svc.CreateMenus(ctx, claims, service.CreateMenusRequest{
		Menus: []service.LocalizedNameInput{{EnName: "Admin", ArName: "AR Admin"}},
	}))
	require.NoError(t, svc.CreateMenuItems(ctx, claims, service.CreateMenuItemsRequest{
		MenuItems: []service.MenuItemInput{
			{EnName: "Users", ArName: "AR Users", MenuID: 1},
			{EnName: "Roles", ArName: "AR Roles", MenuID: 1},
		},
	}))
	require.NoError(t, svc.CreatePrivileges(ctx, claims, service.CreatePrivilegesRequest{
		PrivilegeItems: []service.LocalizedNameInput{
			{EnName: "View", ArName: "AR View"},
			{EnName: "Edit", ArName: "AR Edit"},
		},
	}))
}

func TestCatalogService_CreateMenuItems(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown menu is an invalid reference", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		svc := service.NewCatalogService(repo, testHub())

		err := svc.CreateMenuItems(ctx, managerClaims(), service.CreateMenuItemsRequest{
			MenuItems: []service.MenuItemInput{{EnName: "x", ArName: "y", MenuID: 42}},
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindInvalidReference, apperr.KindOf(err))
		assert.Contains(t, apperr.Message(err), "menu_id")
	})

	t.Run("stamps the creator", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		svc := service.NewCatalogService(repo, testHub())
		seededCatalog(t, svc)

		for _, item := range repo.items {
			assert.Equal(t, "jane", item.CreatedBy)
		}
	})
}

func TestCatalogService_AssignPrivilegesToMenuItems(t *testing.T) {
	ctx := context.Background()
	active, inactive := model.StatusActive, model.StatusInactive

	t.Run("creates then flips on re-assignment", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		svc := service.NewCatalogService(repo, testHub())
		seededCatalog(t, svc)

		applied, err := svc.AssignPrivilegesToMenuItems(ctx, service.AssignCatalogRequest{
			Privileges: []service.AssociationEntry{{MenuItemID: 1, PrivilegeID: 1, Status: &active}},
		})
		require.NoError(t, err)
		require.Len(t, applied, 1)

		_, err = svc.AssignPrivilegesToMenuItems(ctx, service.AssignCatalogRequest{
			Privileges: []service.AssociationEntry{{MenuItemID: 1, PrivilegeID: 1, Status: &inactive}},
		})
		require.NoError(t, err)

		require.Len(t, repo.associations, 1)
		for _, assoc := range repo.associations {
			assert.Equal(t, model.StatusInactive, assoc.Status)
		}
	})

	t.Run("unknown pair member is an invalid reference", func(t *testing.T) {
		repo := newFakeCatalogRepo()
		svc := service.NewCatalogService(repo, testHub())
		seededCatalog(t, svc)

		_, err := svc.AssignPrivilegesToMenuItems(ctx, service.AssignCatalogRequest{
			Privileges: []service.AssociationEntry{{MenuItemID: 99, PrivilegeID: 1, Status: &active}},
		})
		require.Error(t, err)
		assert.Equal(t, apperr.KindInvalidReference, apperr.KindOf(err))
	})
}

func TestCatalogService_SearchPrivileges(t *testing.T) {
	ctx := context.Background()
	active := model.StatusActive

	repo := newFakeCatalogRepo()
	svc := service.NewCatalogService(repo, testHub())
	seededCatalog(t, svc)

	_, err := svc.AssignPrivilegesToMenuItems(ctx, service.AssignCatalogRequest{
		Privileges: []service.AssociationEntry{
			{MenuItemID: 1, PrivilegeID: 1, Status: &active},
			{MenuItemID: 2, PrivilegeID: 2, Status: &active},
		},
	})
	require.NoError(t, err)

	t.Run("unfiltered returns the full tree", func(t *testing.T) {
		tree, err := svc.SearchPrivileges(ctx, language.English, "")
		require.NoError(t, err)
		require.Len(t, tree, 1)
		assert.Equal(t, "Admin", tree[0].MenuName)
		assert.Len(t, tree[0].MenuItems, 2)
	})

	t.Run("filter narrows by menu item name", func(t *testing.T) {
		tree, err := svc.SearchPrivileges(ctx, language.English, "user")
		require.NoError(t, err)
		require.Len(t, tree, 1)
		require.Len(t, tree[0].MenuItems, 1)
		assert.Equal(t, "Users", tree[0].MenuItems[0].Name)
	})

	t.Run("arabic filter against arabic names", func(t *testing.T) {
		tree, err := svc.SearchPrivileges(ctx, language.Arabic, "AR Roles")
		require.NoError(t, err)
		require.Len(t, tree, 1)
		require.Len(t, tree[0].MenuItems, 1)
		assert.Equal(t, "AR Roles", tree[0].MenuItems[0].Name)
	})
}
