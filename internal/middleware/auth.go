package middleware

import (
	"context"
	"crypto/rsa"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"backend/internal/model"
	"backend/pkg/response"
)

// Claims is the identity payload embedded in every access token. It carries
// no password material; account/role/tenant status is re-checked live on
// each request rather than trusted from the token.
type Claims struct {
	EmployeeID       uuid.UUID `json:"employee_id"`
	RoleID           uuid.UUID `json:"role_id"`
	RoleName         string    `json:"role_name"`
	UserName         string    `json:"user_name"`
	EmployeeName     string    `json:"employee_name"`
	CompanyProjectID uint      `json:"company_project_id"`
	CompanyCode      string    `json:"company_code"`
	ProjectCode      string    `json:"project_code"`
	ProjectName      string    `json:"project_name"`
	jwt.RegisteredClaims
}

// IsSuperAdmin reports whether the caller holds the tenant-unbound role.
func (c *Claims) IsSuperAdmin() bool {
	return c.RoleName == model.SuperAdminRoleName
}

const claimsContextKey = "authClaims"

// EmployeeSource resolves the current state of an employee for the live
// status re-check.
type EmployeeSource interface {
	GetWithRole(ctx context.Context, id uuid.UUID) (*model.Employee, error)
}

// ParseToken verifies an RS256 bearer token and returns its claims.
func ParseToken(tokenString string, publicKey *rsa.PublicKey) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return publicKey, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}

// Authenticate validates the bearer token and then re-fetches the employee's
// current account, role and tenant state. A token valid at issuance is not
// enough: an account locked or deleted after issuance is rejected here on
// its next request.
func Authenticate(publicKey *rsa.PublicKey, employees EmployeeSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "No authentication token provided"))
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid authorization format. Expected 'Bearer <token>'"))
			return
		}

		claims, err := ParseToken(parts[1], publicKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid or missing authentication token"))
			return
		}

		employee, err := employees.GetWithRole(c.Request.Context(), claims.EmployeeID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "Invalid or missing authentication token"))
			return
		}

		switch {
		case employee.Role.IsDeleted == model.Deleted:
			c.AbortWithStatusJSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Your role has been deleted, please contact administrator"))
			return
		case employee.IsDeleted == model.Deleted:
			c.AbortWithStatusJSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Your account has been deleted, please contact administrator"))
			return
		case employee.IsLocked == model.Locked:
			c.AbortWithStatusJSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Your account has been locked, please contact administrator"))
			return
		}

		// Role and tenant fields come from the live record, not the token,
		// so a role rename or re-assignment takes effect immediately.
		claims.RoleID = employee.Role.ID
		claims.RoleName = employee.Role.EnName
		claims.CompanyProjectID = employee.Role.CompanyProjectID

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

// RequireRoles enforces a per-route role allow-list. With no roles declared
// any authenticated identity passes; this is the coarse route gate, distinct
// from the fine-grained privilege model.
func RequireRoles(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := CurrentClaims(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "No authentication token provided"))
			return
		}

		if len(allowedRoles) == 0 {
			c.Next()
			return
		}

		for _, role := range allowedRoles {
			if claims.RoleName == role {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, response.Error(http.StatusForbidden, "Insufficient role permissions"))
	}
}

// CurrentClaims returns the resolved identity attached by Authenticate.
func CurrentClaims(c *gin.Context) (*Claims, bool) {
	v, exists := c.Get(claimsContextKey)
	if !exists {
		return nil, false
	}
	claims, ok := v.(*Claims)
	return claims, ok
}
