package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"
)

type DefinitionHandler struct {
	definitionService service.DefinitionService
}

func NewDefinitionHandler(definitionService service.DefinitionService) *DefinitionHandler {
	return &DefinitionHandler{definitionService: definitionService}
}

// RegisterRoutes wires the definitions endpoints. Global reference data
// (projects, countries, id types, religions, marital statuses, customer
// types) is super-admin only; tenant-scoped lookups are open to any
// authenticated caller.
func (h *DefinitionHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	defs := router.Group("/api/definitions")
	defs.Use(authn)
	{
		superOnly := middleware.RequireRoles(model.SuperAdminRoleName)
		defs.POST("/projects", superOnly, h.CreateProjects)
		defs.POST("/departments", h.createLookups(h.definitionService.CreateDepartments, "Departments"))
		defs.POST("/positions", h.createLookups(h.definitionService.CreatePositions, "Positions"))
		defs.POST("/safes", h.createLookups(h.definitionService.CreateSafes, "Safes"))
		defs.POST("/user-types", h.createLookups(h.definitionService.CreateUserTypes, "User types"))
		defs.POST("/employee-types", h.createLookups(h.definitionService.CreateEmployeeTypes, "Employee types"))
		defs.POST("/location-types", h.createLookups(h.definitionService.CreateLocationTypes, "Location types"))
		defs.POST("/locations", h.CreateLocations)
		defs.POST("/rental-companies", h.createLookups(h.definitionService.CreateRentalCompanies, "Rental companies"))
		defs.POST("/unit-types", h.createLookups(h.definitionService.CreateUnitTypes, "Unit types"))
		defs.POST("/countries", superOnly, h.createLookups(h.definitionService.CreateCountries, "Countries"))
		defs.POST("/id-types", superOnly, h.createLookups(h.definitionService.CreateIDTypes, "ID types"))
		defs.POST("/religions", superOnly, h.createLookups(h.definitionService.CreateReligions, "Religions"))
		defs.POST("/marital-statuses", superOnly, h.createLookups(h.definitionService.CreateMaritalStatuses, "Marital statuses"))
		defs.POST("/customer-types", superOnly, h.createLookups(h.definitionService.CreateCustomerTypes, "Customer types"))
		defs.POST("/ownership-types", h.createLookups(h.definitionService.CreateOwnershipTypes, "Ownership types"))
		defs.POST("/service-configs", h.CreateServiceConfigs)
		defs.POST("/services", h.CreateServices)

		defs.GET("/dropdowns", h.GetAllDropdowns)
		defs.GET("/service-configs", h.GetServiceConfigs)
		defs.GET("/services", h.GetServices)
	}
}

// createLookups builds the shared handler for the bilingual lookup tables;
// they differ only in the target table and the message entity name.
func (h *DefinitionHandler) createLookups(create func(context.Context, *middleware.Claims, service.CreateLookupsRequest) error, entity string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := mustClaims(c)
		if !ok {
			return
		}

		var req service.CreateLookupsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "Invalid request payload: "+err.Error())
			return
		}

		if err := create(c.Request.Context(), claims, req); err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusCreated, response.Success(http.StatusCreated, gin.H{"message": entity + " created successfully"}))
	}
}

// CreateProjects batch-creates tenants
func (h *DefinitionHandler) CreateProjects(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.CreateProjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.definitionService.CreateProjects(c.Request.Context(), claims, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, gin.H{"message": "Projects created successfully"}))
}

// CreateLocations batch-creates locations, optionally nested under parents
func (h *DefinitionHandler) CreateLocations(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.CreateLocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.definitionService.CreateLocations(c.Request.Context(), claims, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, gin.H{"message": "Locations created successfully"}))
}

// CreateServiceConfigs batch-creates billable service configurations
func (h *DefinitionHandler) CreateServiceConfigs(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.CreateServiceConfigsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.definitionService.CreateServiceConfigs(c.Request.Context(), claims, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, gin.H{"message": "Service configs created successfully"}))
}

// CreateServices batch-creates department services
func (h *DefinitionHandler) CreateServices(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.CreateServicesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.definitionService.CreateServices(c.Request.Context(), claims, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, gin.H{"message": "Services created successfully"}))
}

// GetAllDropdowns returns every reference list in one localized payload
func (h *DefinitionHandler) GetAllDropdowns(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	lang := middleware.CurrentLanguage(c)

	dropdowns, err := h.definitionService.GetAllDropdowns(c.Request.Context(), claims, lang)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, dropdowns))
}

// GetServiceConfigs returns the tenant-visible service configurations
func (h *DefinitionHandler) GetServiceConfigs(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	pag, ok := parsePagination(c)
	if !ok {
		return
	}
	lang := middleware.CurrentLanguage(c)

	result, err := h.definitionService.GetServiceConfigs(c.Request.Context(), claims, lang, c.Query("filter"), pag)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, result.Configs, result.TotalCount, result.TotalPages))
}

// GetServices returns the tenant-visible department services
func (h *DefinitionHandler) GetServices(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	pag, ok := parsePagination(c)
	if !ok {
		return
	}
	lang := middleware.CurrentLanguage(c)

	result, err := h.definitionService.GetServices(c.Request.Context(), claims, lang, c.Query("filter"), pag)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, result.Services, result.TotalCount, result.TotalPages))
}
