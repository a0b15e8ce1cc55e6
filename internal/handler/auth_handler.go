package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/middleware"
	"backend/internal/model"
	"backend/internal/service"
	"backend/pkg/response"
)

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRoutes wires the auth endpoints. Login is the only public route in
// the API; password reset is restricted to the super admin.
func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup, authn gin.HandlerFunc) {
	auth := router.Group("/api/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/change-password", authn, h.ChangePassword)
		auth.POST("/reset-password", authn, middleware.RequireRoles(model.SuperAdminRoleName), h.ResetPassword)
	}
}

// Login godoc
// @Summary      Authenticate an employee
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request body service.LoginRequest true "Credentials"
// @Success      200 {object} response.Response
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	result, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, result))
}

// ChangePassword lets the authenticated employee rotate their own password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	claims, ok := mustClaims(c)
	if !ok {
		return
	}

	var req service.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), claims, req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Password changed successfully"}))
}

// ResetPassword issues a fresh random password for any employee and mails it.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req service.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request payload: "+err.Error())
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), req); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"message": "Password reset successfully"}))
}
