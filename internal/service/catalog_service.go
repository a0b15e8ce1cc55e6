package service

import (
	"context"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/notify"
	"backend/internal/repository"
	"backend/pkg/apperr"
	"backend/pkg/language"
)

// --- DTOs ---

type LocalizedNameInput struct {
	EnName string `json:"en_name" binding:"required"`
	ArName string `json:"ar_name" binding:"required"`
}

type CreateMenusRequest struct {
	Menus []LocalizedNameInput `json:"menus" binding:"required,min=1,dive"`
}

type MenuItemInput struct {
	EnName string `json:"en_name" binding:"required"`
	ArName string `json:"ar_name" binding:"required"`
	MenuID uint   `json:"menu_id" binding:"required"`
}

type CreateMenuItemsRequest struct {
	MenuItems []MenuItemInput `json:"menuitems" binding:"required,min=1,dive"`
}

type CreatePrivilegesRequest struct {
	PrivilegeItems []LocalizedNameInput `json:"privilegeItems" binding:"required,min=1,dive"`
}

type AssociationEntry struct {
	MenuItemID  uint `json:"menuitem_id" binding:"required"`
	PrivilegeID uint `json:"privilege_id" binding:"required"`
	Status      *int `json:"status" binding:"required"`
}

type AssignCatalogRequest struct {
	Privileges []AssociationEntry `json:"privileges" binding:"required,min=1,dive"`
}

// --- Service ---

// CatalogService maintains the three-level privilege catalog: menus, menu
// items, privileges and the catalog-level menu-item/privilege association.
type CatalogService interface {
	CreateMenus(ctx context.Context, claims *middleware.Claims, req CreateMenusRequest) error
	CreateMenuItems(ctx context.Context, claims *middleware.Claims, req CreateMenuItemsRequest) error
	CreatePrivileges(ctx context.Context, claims *middleware.Claims, req CreatePrivilegesRequest) error
	AssignPrivilegesToMenuItems(ctx context.Context, req AssignCatalogRequest) ([]model.MenuItemPrivilege, error)
	SearchPrivileges(ctx context.Context, lang language.Language, filter string) ([]MenuNode, error)
	ListMenuItems(ctx context.Context, lang language.Language) ([]DropdownItem, error)
	ListPrivileges(ctx context.Context, lang language.Language) ([]DropdownItem, error)
}

type catalogService struct {
	catalog repository.CatalogRepository
	hub     *notify.Hub
}

// NewCatalogService returns a new instance of CatalogService
func NewCatalogService(catalog repository.CatalogRepository, hub *notify.Hub) CatalogService {
	return &catalogService{catalog: catalog, hub: hub}
}

func (s *catalogService) CreateMenus(ctx context.Context, claims *middleware.Claims, req CreateMenusRequest) error {
	menus := make([]model.Menu, 0, len(req.Menus))
	for _, in := range req.Menus {
		m := model.Menu{Localized: model.Localized{EnName: in.EnName, ArName: in.ArName}}
		m.CreatedBy = claims.UserName
		menus = append(menus, m)
	}
	if err := s.catalog.CreateMenus(ctx, menus); err != nil {
		return apperr.FromDB(err, "menus not found")
	}
	s.hub.Publish(notify.EventCatalogUpdated, map[string]interface{}{"entity": "menus"})
	return nil
}

func (s *catalogService) CreateMenuItems(ctx context.Context, claims *middleware.Claims, req CreateMenuItemsRequest) error {
	items := make([]model.MenuItem, 0, len(req.MenuItems))
	for _, in := range req.MenuItems {
		item := model.MenuItem{
			MenuID:    in.MenuID,
			Localized: model.Localized{EnName: in.EnName, ArName: in.ArName},
		}
		item.CreatedBy = claims.UserName
		items = append(items, item)
	}
	if err := s.catalog.CreateMenuItems(ctx, items); err != nil {
		if apperr.KindOf(apperr.FromDB(err, "")) == apperr.KindInvalidReference {
			return apperr.Wrap(apperr.KindInvalidReference, "Invalid foreign key reference for menu_id", err)
		}
		return apperr.FromDB(err, "menu items not found")
	}
	s.hub.Publish(notify.EventCatalogUpdated, map[string]interface{}{"entity": "menu_items"})
	return nil
}

func (s *catalogService) CreatePrivileges(ctx context.Context, claims *middleware.Claims, req CreatePrivilegesRequest) error {
	privileges := make([]model.Privilege, 0, len(req.PrivilegeItems))
	for _, in := range req.PrivilegeItems {
		p := model.Privilege{Localized: model.Localized{EnName: in.EnName, ArName: in.ArName}}
		p.CreatedBy = claims.UserName
		privileges = append(privileges, p)
	}
	if err := s.catalog.CreatePrivileges(ctx, privileges); err != nil {
		return apperr.FromDB(err, "privileges not found")
	}
	s.hub.Publish(notify.EventCatalogUpdated, map[string]interface{}{"entity": "privileges"})
	return nil
}

// AssignPrivilegesToMenuItems enables or disables candidate privileges on
// menu items, independent of any role.
func (s *catalogService) AssignPrivilegesToMenuItems(ctx context.Context, req AssignCatalogRequest) ([]model.MenuItemPrivilege, error) {
	joins := make([]model.MenuItemPrivilege, 0, len(req.Privileges))
	for _, entry := range req.Privileges {
		joins = append(joins, model.MenuItemPrivilege{
			MenuItemID:  entry.MenuItemID,
			PrivilegeID: entry.PrivilegeID,
			Status:      *entry.Status,
		})
	}

	applied, err := s.catalog.UpsertAssociations(ctx, joins)
	if err != nil {
		if apperr.KindOf(apperr.FromDB(err, "")) == apperr.KindInvalidReference {
			return nil, apperr.Wrap(apperr.KindInvalidReference, "Invalid foreign key reference for menuitem_id or privilege_id", err)
		}
		return nil, apperr.FromDB(err, "catalog associations not found")
	}

	s.hub.Publish(notify.EventCatalogUpdated, map[string]interface{}{"entity": "menu_item_privileges"})
	return applied, nil
}

// ListMenuItems returns every menu item as a localized id/name pair.
func (s *catalogService) ListMenuItems(ctx context.Context, lang language.Language) ([]DropdownItem, error) {
	items, err := s.catalog.ListMenuItems(ctx)
	if err != nil {
		return nil, apperr.FromDB(err, "menu items not found")
	}
	return toDropdownItems(items, lang, func(i model.MenuItem) uint { return i.ID }), nil
}

// ListPrivileges returns every privilege definition as a localized id/name pair.
func (s *catalogService) ListPrivileges(ctx context.Context, lang language.Language) ([]DropdownItem, error) {
	privileges, err := s.catalog.ListPrivileges(ctx)
	if err != nil {
		return nil, apperr.FromDB(err, "privileges not found")
	}
	return toDropdownItems(privileges, lang, func(p model.Privilege) uint { return p.ID }), nil
}

// SearchPrivileges returns the enabled catalog as a nested tree, filtered
// by a case-insensitive substring on the menu item's localized name.
func (s *catalogService) SearchPrivileges(ctx context.Context, lang language.Language, filter string) ([]MenuNode, error) {
	rows, err := s.catalog.AssociationRows(ctx, lang, filter)
	if err != nil {
		return nil, apperr.FromDB(err, "privileges not found")
	}

	grantRows := make([]GrantRow, 0, len(rows))
	for _, row := range rows {
		grantRows = append(grantRows, GrantRow{
			MenuID:        row.MenuItem.Menu.ID,
			MenuName:      row.MenuItem.Menu.Name(lang),
			MenuItemID:    row.MenuItem.ID,
			MenuItemName:  row.MenuItem.Name(lang),
			PrivilegeID:   row.Privilege.ID,
			PrivilegeName: row.Privilege.Name(lang),
			Status:        row.Status,
		})
	}

	return BuildPrivilegeTree(grantRows), nil
}
