package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"
)

type UnitHandler struct {
	unitService service.UnitService
}

func NewUnitHandler(unitService service.UnitService) *UnitHandler {
	return &UnitHandler{unitService: unitService}
}

// RegisterRoutes wires the unit endpoints. The project reads are public so
// a sales site can resolve projects and look up a unit by number; the
// service layer only answers for projects flagged public.
func (h *UnitHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	units := router.Group("/api/units")
	units.Use(authn)
	{
		units.POST("", h.CreateUnit)
		units.GET("", h.ListUnits)
		units.PUT("/:id/lock", h.SetUnitLock)
	}

	projects := router.Group("/api/projects")
	{
		projects.GET("", h.ListProjects)
		projects.GET("/:project_id", h.GetProjectCodes)
		projects.GET("/:project_id/units/:unit_number", h.GetPublicUnit)
	}
}

// CreateUnit creates a unit together with its specification
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	unit, err := h.unitService.CreateUnit(c.Request.Context(), claims, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, unit))
}

// ListUnits returns the units visible to the caller, filtered on number,
// type, location and active state
func (h *UnitHandler) ListUnits(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	pag, ok := parsePagination(c)
	if !ok {
		return
	}

	query := service.ListUnitsQuery{UnitNumber: c.Query("unit_number")}
	if raw := c.Query("unit_type_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			badRequest(c, "unit_type_id must be a positive integer")
			return
		}
		query.UnitTypeID = uint(n)
	}
	if raw := c.Query("location_id"); raw != "" {
		n, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			badRequest(c, "location_id must be a positive integer")
			return
		}
		query.LocationID = uint(n)
	}
	if raw := c.Query("is_active"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			badRequest(c, "is_active must be 0 or 1")
			return
		}
		query.IsActive = &n
	}

	result, err := h.unitService.ListUnits(c.Request.Context(), claims, query, pag)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, result.Units, result.TotalCount, result.TotalPages))
}

// SetUnitLock locks or unlocks a unit with an audit trail
func (h *UnitHandler) SetUnitLock(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.LockUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}
	if *req.Locked != model.Locked && *req.Locked != model.Unlocked {
		badRequest(c, "locked must be 0 or 1")
		return
	}

	unit, err := h.unitService.SetUnitLock(c.Request.Context(), claims, c.Param("id"), *req.Locked)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, unit))
}

// ListProjects returns all live tenants as localized id/name pairs
func (h *UnitHandler) ListProjects(c *gin.Context) {
	projects, err := h.unitService.ListProjects(c.Request.Context(), middleware.CurrentLanguage(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, projects))
}

func (h *UnitHandler) projectParam(c *gin.Context) (uint, bool) {
	n, err := strconv.ParseUint(c.Param("project_id"), 10, 64)
	if err != nil {
		badRequest(c, "Invalid project ID")
		return 0, false
	}
	return uint(n), true
}

// GetProjectCodes returns the company and project codes of one public project
func (h *UnitHandler) GetProjectCodes(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}

	codes, err := h.unitService.GetProjectCodes(c.Request.Context(), middleware.CurrentLanguage(c), projectID)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, codes))
}

// GetPublicUnit looks a unit up by number within a public project
func (h *UnitHandler) GetPublicUnit(c *gin.Context) {
	projectID, ok := h.projectParam(c)
	if !ok {
		return
	}

	units, err := h.unitService.GetPublicUnit(c.Request.Context(), projectID, c.Param("unit_number"))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"units": units}))
}
