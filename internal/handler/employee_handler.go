package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/middleware"
	"backend/internal/service"
	"backend/pkg/response"
)

type EmployeeHandler struct {
	employeeService service.EmployeeService
}

func NewEmployeeHandler(employeeService service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{employeeService: employeeService}
}

func (h *EmployeeHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	employees := router.Group("/api/employees")
	employees.Use(authn)
	{
		employees.POST("", h.CreateEmployee)
		employees.GET("", h.ListEmployees)
		employees.PUT("/:id", h.UpdateEmployee)
	}
}

// CreateEmployee provisions an account and mails the generated credentials
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	result, err := h.employeeService.CreateEmployee(c.Request.Context(), claims, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, result))
}

// ListEmployees returns the employees visible to the caller
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	pag, ok := parsePagination(c)
	if !ok {
		return
	}
	lang := middleware.CurrentLanguage(c)

	result, err := h.employeeService.ListEmployees(c.Request.Context(), claims, lang, c.Query("filter"), pag)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, result.Employees, result.TotalCount, result.TotalPages))
}

// UpdateEmployee edits profile fields, role binding and lock/delete flags
func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	result, err := h.employeeService.UpdateEmployee(c.Request.Context(), claims, c.Param("id"), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}
