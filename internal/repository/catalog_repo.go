package repository

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"backend/internal/model"
	"backend/pkg/language"
)

// CatalogRepository defines data access for the three-level privilege
// catalog and its menu-item/privilege association.
type CatalogRepository interface {
	CreateMenus(ctx context.Context, menus []model.Menu) error
	CreateMenuItems(ctx context.Context, items []model.MenuItem) error
	CreatePrivileges(ctx context.Context, privileges []model.Privilege) error
	UpsertAssociations(ctx context.Context, joins []model.MenuItemPrivilege) ([]model.MenuItemPrivilege, error)
	AssociationRows(ctx context.Context, lang language.Language, filter string) ([]model.MenuItemPrivilege, error)
	ListMenuItems(ctx context.Context) ([]model.MenuItem, error)
	ListPrivileges(ctx context.Context) ([]model.Privilege, error)
}

type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository returns a new instance of CatalogRepository
func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) CreateMenus(ctx context.Context, menus []model.Menu) error {
	return r.db.WithContext(ctx).Create(&menus).Error
}

func (r *catalogRepository) CreateMenuItems(ctx context.Context, items []model.MenuItem) error {
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *catalogRepository) CreatePrivileges(ctx context.Context, privileges []model.Privilege) error {
	return r.db.WithContext(ctx).Create(&privileges).Error
}

// UpsertAssociations enables or disables privileges on menu items at the
// catalog level. Same upsert discipline as role grants: unique pair target,
// status-only update on conflict.
func (r *catalogRepository) UpsertAssociations(ctx context.Context, joins []model.MenuItemPrivilege) ([]model.MenuItemPrivilege, error) {
	applied := make([]model.MenuItemPrivilege, len(joins))

	g, ctx := errgroup.WithContext(ctx)
	for i := range joins {
		g.Go(func() error {
			join := joins[i]
			err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
				Columns: []clause.Column{{Name: "menu_item_id"}, {Name: "privilege_id"}},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"status":     join.Status,
					"updated_at": time.Now(),
				}),
			}).Create(&join).Error
			if err != nil {
				return err
			}
			applied[i] = join
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return applied, nil
}

// AssociationRows returns the enabled catalog joins with non-deleted menus,
// menu items and privileges, optionally filtered by a case-insensitive
// substring on the menu item's localized name.
func (r *catalogRepository) AssociationRows(ctx context.Context, lang language.Language, filter string) ([]model.MenuItemPrivilege, error) {
	q := r.db.WithContext(ctx).Model(&model.MenuItemPrivilege{}).
		Joins("JOIN menu_items ON menu_items.id = menu_item_privileges.menu_item_id AND menu_items.is_deleted = ?", model.NotDeleted).
		Joins("JOIN menus ON menus.id = menu_items.menu_id AND menus.is_deleted = ?", model.NotDeleted).
		Joins("JOIN privileges ON privileges.id = menu_item_privileges.privilege_id AND privileges.is_deleted = ?", model.NotDeleted).
		Where("menu_item_privileges.status = ?", model.StatusActive).
		Preload("MenuItem").
		Preload("MenuItem.Menu").
		Preload("Privilege").
		Order("menu_item_privileges.id ASC")

	if filter != "" {
		q = q.Where("menu_items."+lang.NameColumn()+" ILIKE ?", "%"+filter+"%")
	}

	var rows []model.MenuItemPrivilege
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *catalogRepository) ListMenuItems(ctx context.Context) ([]model.MenuItem, error) {
	var items []model.MenuItem
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", model.NotDeleted).
		Order("id ASC").
		Find(&items).Error
	return items, err
}

func (r *catalogRepository) ListPrivileges(ctx context.Context) ([]model.Privilege, error) {
	var privileges []model.Privilege
	err := r.db.WithContext(ctx).
		Where("is_deleted = ?", model.NotDeleted).
		Order("id ASC").
		Find(&privileges).Error
	return privileges, err
}
