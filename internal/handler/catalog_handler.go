package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"
)

type CatalogHandler struct {
	catalogService service.CatalogService
}

func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// RegisterRoutes wires the catalog endpoints. Catalog structure is global,
// so creating menus, menu items and privileges is super-admin only; the
// menu-item assignment additionally admits the site admin.
func (h *CatalogHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	catalog := router.Group("/api/catalog")
	catalog.Use(authn)
	{
		superOnly := middleware.RequireRoles(model.SuperAdminRoleName)
		catalog.POST("/menus", superOnly, h.CreateMenus)
		catalog.POST("/menuitems", superOnly, h.CreateMenuItems)
		catalog.POST("/privileges", superOnly, h.CreatePrivileges)
		catalog.POST("/assign", middleware.RequireRoles(model.SuperAdminRoleName, model.SiteAdminRoleName), h.AssignPrivilegesToMenuItems)
		catalog.GET("/menuitems", h.ListMenuItems)
		catalog.GET("/privileges", h.ListPrivileges)
		catalog.GET("/privileges/search", h.SearchPrivileges)
	}
}

// CreateMenus batch-creates top-level menus
func (h *CatalogHandler) CreateMenus(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.CreateMenusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.catalogService.CreateMenus(c.Request.Context(), claims, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, gin.H{"message": "Menus created successfully"}))
}

// CreateMenuItems batch-creates menu items under existing menus
func (h *CatalogHandler) CreateMenuItems(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.CreateMenuItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.catalogService.CreateMenuItems(c.Request.Context(), claims, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, gin.H{"message": "Menu items created successfully"}))
}

// CreatePrivileges batch-creates privilege definitions
func (h *CatalogHandler) CreatePrivileges(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.CreatePrivilegesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.catalogService.CreatePrivileges(c.Request.Context(), claims, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, gin.H{"message": "Privileges created successfully"}))
}

// AssignPrivilegesToMenuItems enables or disables candidate privileges on menu items
func (h *CatalogHandler) AssignPrivilegesToMenuItems(c *gin.Context) {
	var req service.AssignCatalogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	applied, err := h.catalogService.AssignPrivilegesToMenuItems(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, applied))
}

// ListMenuItems returns every menu item as a localized dropdown list
func (h *CatalogHandler) ListMenuItems(c *gin.Context) {
	items, err := h.catalogService.ListMenuItems(c.Request.Context(), middleware.CurrentLanguage(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, items))
}

// ListPrivileges returns every privilege definition as a localized dropdown list
func (h *CatalogHandler) ListPrivileges(c *gin.Context) {
	privileges, err := h.catalogService.ListPrivileges(c.Request.Context(), middleware.CurrentLanguage(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, privileges))
}

// SearchPrivileges returns the enabled catalog tree filtered by menu item name
func (h *CatalogHandler) SearchPrivileges(c *gin.Context) {
	lang := middleware.CurrentLanguage(c)

	tree, err := h.catalogService.SearchPrivileges(c.Request.Context(), lang, c.Query("filter"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, tree))
}
