package service

import (
	"context"

	"github.com/google/uuid"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/notify"
	"backend/internal/repository"
	"backend/pkg/apperr"
	"backend/pkg/language"
	"backend/pkg/pagination"
)

// --- DTOs ---

type CreateRoleRequest struct {
	EnName           string `json:"en_name" binding:"required"`
	ArName           string `json:"ar_name" binding:"required"`
	CompanyProjectID uint   `json:"company_project_id"`
}

type UpdateRoleRequest struct {
	EnName string `json:"en_name"`
	ArName string `json:"ar_name"`
}

type GrantEntry struct {
	RoleID      string `json:"role_id" binding:"required,uuid"`
	MenuItemID  uint   `json:"menuitem_id" binding:"required"`
	PrivilegeID uint   `json:"privilege_id" binding:"required"`
	Status      *int   `json:"status" binding:"required"`
}

type AssignPrivilegesRequest struct {
	Privileges []GrantEntry `json:"privileges" binding:"required,min=1,dive"`
}

type RoleSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type RoleListResponse struct {
	TotalCount int64         `json:"totalCount"`
	TotalPages int           `json:"totalPages"`
	Roles      []RoleSummary `json:"roles"`
}

type CreatedResponse struct {
	ID      uuid.UUID `json:"id"`
	Message string    `json:"message"`
}

// --- Service ---

// RoleService covers role CRUD and the role-privilege grant store.
type RoleService interface {
	CreateRole(ctx context.Context, claims *middleware.Claims, req CreateRoleRequest) (*CreatedResponse, error)
	ListRoles(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) (*RoleListResponse, error)
	UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*CreatedResponse, error)
	AssignPrivileges(ctx context.Context, req AssignPrivilegesRequest) ([]model.RolePrivilege, error)
	GetRolePrivileges(ctx context.Context, roleID string, lang language.Language) ([]MenuNode, error)
}

type roleService struct {
	roles repository.RoleRepository
	hub   *notify.Hub
}

// NewRoleService returns a new instance of RoleService
func NewRoleService(roles repository.RoleRepository, hub *notify.Hub) RoleService {
	return &roleService{roles: roles, hub: hub}
}

// CreateRole creates a tenant-scoped role; the tenant defaults to the
// caller's own project when the payload names none.
func (s *roleService) CreateRole(ctx context.Context, claims *middleware.Claims, req CreateRoleRequest) (*CreatedResponse, error) {
	projectID := req.CompanyProjectID
	if projectID == 0 {
		projectID = claims.CompanyProjectID
	}

	role := model.Role{
		EnName:           req.EnName,
		ArName:           req.ArName,
		CompanyProjectID: projectID,
	}
	role.CreatedBy = claims.UserName

	if err := s.roles.Create(ctx, &role); err != nil {
		if apperr.KindOf(apperr.FromDB(err, "")) == apperr.KindConflict {
			return nil, apperr.Wrap(apperr.KindConflict, "Role with name \""+req.EnName+"\" already exists", err)
		}
		return nil, apperr.FromDB(err, "role not found")
	}

	s.hub.Publish(notify.EventRoleChanged, map[string]interface{}{"id": role.ID, "action": "created"})
	return &CreatedResponse{ID: role.ID, Message: "Role created successfully"}, nil
}

func (s *roleService) ListRoles(ctx context.Context, claims *middleware.Claims, lang language.Language, filter string, pag pagination.Params) (*RoleListResponse, error) {
	roles, total, err := s.roles.List(ctx, claims, lang, filter, pag)
	if err != nil {
		return nil, apperr.FromDB(err, "roles not found")
	}

	summaries := make([]RoleSummary, 0, len(roles))
	for _, r := range roles {
		summaries = append(summaries, RoleSummary{ID: r.ID, Name: r.Name(lang)})
	}

	return &RoleListResponse{
		TotalCount: total,
		TotalPages: pag.TotalPages(total),
		Roles:      summaries,
	}, nil
}

func (s *roleService) UpdateRole(ctx context.Context, id string, req UpdateRoleRequest) (*CreatedResponse, error) {
	roleID, err := uuid.Parse(id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid role id", err)
	}

	role, err := s.roles.GetByID(ctx, roleID)
	if err != nil {
		return nil, apperr.FromDB(err, "role not found")
	}

	if req.EnName != "" {
		role.EnName = req.EnName
	}
	if req.ArName != "" {
		role.ArName = req.ArName
	}

	if err := s.roles.Update(ctx, role); err != nil {
		if apperr.KindOf(apperr.FromDB(err, "")) == apperr.KindConflict {
			return nil, apperr.Wrap(apperr.KindConflict, "Role with name \""+req.EnName+"\" already exists", err)
		}
		return nil, apperr.FromDB(err, "role not found")
	}

	s.hub.Publish(notify.EventRoleChanged, map[string]interface{}{"id": role.ID, "action": "updated"})
	return &CreatedResponse{ID: role.ID, Message: "Role updated successfully"}, nil
}

// AssignPrivileges upserts each (role, menu item, privilege) entry: existing
// triples have their status flipped, new ones are created. The full applied
// set is returned.
func (s *roleService) AssignPrivileges(ctx context.Context, req AssignPrivilegesRequest) ([]model.RolePrivilege, error) {
	grants := make([]model.RolePrivilege, 0, len(req.Privileges))
	for _, entry := range req.Privileges {
		roleID, err := uuid.Parse(entry.RoleID)
		if err != nil {
			return nil, apperr.Wrap(apperr.KindValidation, "invalid role id", err)
		}
		grants = append(grants, model.RolePrivilege{
			RoleID:      roleID,
			MenuItemID:  entry.MenuItemID,
			PrivilegeID: entry.PrivilegeID,
			Status:      *entry.Status,
		})
	}

	applied, err := s.roles.UpsertGrants(ctx, grants)
	if err != nil {
		if apperr.KindOf(apperr.FromDB(err, "")) == apperr.KindInvalidReference {
			return nil, apperr.Wrap(apperr.KindInvalidReference, "Invalid foreign key reference for role_id, menuitem_id or privilege_id", err)
		}
		return nil, apperr.FromDB(err, "grants not found")
	}

	s.hub.Publish(notify.EventRoleGrantsUpdated, map[string]interface{}{"count": len(applied)})
	return applied, nil
}

// GetRolePrivileges assembles the active grants of a role into the nested
// menu → menu item → privilege tree.
func (s *roleService) GetRolePrivileges(ctx context.Context, roleID string, lang language.Language) ([]MenuNode, error) {
	id, err := uuid.Parse(roleID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindValidation, "invalid role id", err)
	}

	rows, err := s.roles.GrantRows(ctx, id)
	if err != nil {
		return nil, apperr.FromDB(err, "role privileges not found")
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
