package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/service"
	"backend/pkg/response"
)

type CustomerHandler struct {
	customerService service.CustomerService
}

func NewCustomerHandler(customerService service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

func (h *CustomerHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	customers := router.Group("/api/customers")
	customers.Use(authn)
	{
		customers.POST("", h.CreateCustomer)
		customers.GET("", h.ListCustomers)
	}
}

// CreateCustomer stores a customer under the caller's tenant
func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), claims, req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, customer))
}

// ListCustomers returns the customers visible to the caller
func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}
	pag, ok := parsePagination(c)
	if !ok {
		return
	}

	result, err := h.customerService.ListCustomers(c.Request.Context(), claims, c.Query("filter"), pag)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Paginated(http.StatusOK, result.Customers, result.TotalCount, result.TotalPages))
}
