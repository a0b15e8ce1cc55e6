package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"
)

type RoleHandler struct {
	roleService service.RoleService
}

func NewRoleHandler(roleService service.RoleService) *RoleHandler {
	return &RoleHandler{roleService: roleService}
}

func (h *RoleHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	roles := router.Group("/api/roles")
	roles.Use(authn)
	{
		roles.POST("", h.CreateRole)
		roles.GET("", h.ListRoles)
		roles.PUT("/:id", h.UpdateRole)
		roles.POST("/privileges", h.AssignPrivileges)
		roles.GET("/:id/privileges", h.GetRolePrivileges)
	}
}

// CreateRole creates a tenant-scoped role
func (h *RoleHandler) CreateRole(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	result, err := h.roleService.CreateRole(c.Request.Context(), claims, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// ListRoles returns the roles visible to the caller, localized and filtered
func (h *RoleHandler) ListRoles(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	pag, ok := parsePagination(c)
	if !ok {
		return
	}
	lang := middleware.CurrentLanguage(c)

	result, err := h.roleService.ListRoles(c.Request.Context(), claims, lang, c.Query("filter"), pag)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, result.Roles, result.TotalCount, result.TotalPages))
}

// UpdateRole renames a role
func (h *RoleHandler) UpdateRole(c *gin.Context) {
	var req service.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	result, err := h.roleService.UpdateRole(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// AssignPrivileges upserts grant entries for roles
func (h *RoleHandler) AssignPrivileges(c *gin.Context) {
	var req service.AssignPrivilegesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	applied, err := h.roleService.AssignPrivileges(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, applied))
}

// GetRolePrivileges returns a role's active grants as a nested tree
func (h *RoleHandler) GetRolePrivileges(c *gin.Context) {
	lang := middleware.CurrentLanguage(c)

	tree, err := h.roleService.GetRolePrivileges(c.Request.Context(), c.Param("id"), lang)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tree))
}
