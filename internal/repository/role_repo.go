package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/pkg/language"
	"backend/pkg/pagination"
)

// RoleRepository defines data access for roles and their privilege grants.
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	Update(ctx context.Context, role *model.Role) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error)
	List(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) ([]model.Role, int64, error)
	UpsertGrants(ctx context.Context, grants []model.RolePrivilege) ([]model.RolePrivilege, error)
	GrantRows(ctx context.Context, roleID uuid.UUID) ([]model.RolePrivilege, error)
}

type roleRepository struct {
	db *gorm.DB
}

// NewRoleRepository returns a new instance of RoleRepository
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepository{db: db}
}

func (r *roleRepository) Create(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Create(role).Error
}

func (r *roleRepository) Update(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Save(role).Error
}

func (r *roleRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Role, error) {
	var role model.Role
	if err := r.db.WithContext(ctx).First(&role, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

// List returns admin-created roles visible to the caller. The seeded system
// role carries no created_by and is excluded; the name filter matches the
// localized column case-insensitively.
func (r *roleRepository) List(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) ([]model.Role, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Role{}).
		Where("created_by <> ''").
		Where("is_deleted = ?", model.NotDeleted).
		Scopes(TenantScope(claims, "company_project_id"))

	if filter != "" {
		q = q.Where(lang.NameColumn()+" ILIKE ?", "%"+filter+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if pag.Enabled {
		q = q.Offset(pag.Offset).Limit(pag.Limit)
	}

	var roles []model.Role
	if err := q.Order("created_at ASC").Find(&roles).Error; err != nil {
		return nil, 0, err
	}
	return roles, total, nil
}

// UpsertGrants applies one upsert per grant entry, keyed on the unique
// (role_id, menu_item_id, privilege_id) triple: an existing row only has its
// status and updated_at changed. Entries target disjoint keys, so they run
// concurrently with no ordering requirement.
func (r *roleRepository) UpsertGrants(ctx context.Context, grants []model.RolePrivilege) ([]model.RolePrivilege, error) {
	applied := make([]model.RolePrivilege, len(grants))

	g, ctx := errgroup.WithContext(ctx)
	for i := range grants {
		g.Go(func() error {
			grant := grants[i]
			err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
				Columns: []clause.Column{
					{Name: "role_id"}, {Name: "menu_item_id"}, {Name: "privilege_id"},
				},
				DoUpdates: clause.Assignments(map[string]interface{}{
					"status":     grant.Status,
					"updated_at": time.Now(),
				}),
			}).Create(&grant).Error
			if err != nil {
				return err
			}
			applied[i] = grant
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return applied, nil
}

// GrantRows returns the active grants of a role, dropping rows whose role,
// menu item, menu or privilege has been soft deleted.
func (r *roleRepository) GrantRows(ctx context.Context, roleID uuid.UUID) ([]model.RolePrivilege, error) {
	var rows []model.RolePrivilege
	err := r.db.WithContext(ctx).Model(&model.RolePrivilege{}).
		Joins("JOIN roles ON roles.id = role_privileges.role_id AND roles.is_deleted = ?", model.NotDeleted).
		Joins("JOIN menu_items ON menu_items.id = role_privileges.menu_item_id AND menu_items.is_deleted = ?", model.NotDeleted).
		Joins("JOIN menus ON menus.id = menu_items.menu_id AND menus.is_deleted = ?", model.NotDeleted).
		Joins("JOIN privileges ON privileges.id = role_privileges.privilege_id AND privileges.is_deleted = ?", model.NotDeleted).
		Where("role_privileges.role_id = ?", roleID).
		Where("role_privileges.status = ?", model.StatusActive).
		Preload("MenuItem").
		Preload("MenuItem.Menu").
		Preload("Privilege").
		Order("role_privileges.id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
