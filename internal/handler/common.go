package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/internal/middleware"
	"backend/pkg/apperr"
	"backend/pkg/pagination"
	"backend/pkg/response"
)

// fail writes the classified error with its mapped status code.
func fail(c *gin.Context, err error) {
	status := apperr.HTTPStatus(err)
	c.JSON(status, response.Error(status, apperr.Message(err)))
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, message))
}

// mustClaims returns the authenticated identity; routes registered behind
// Authenticate always have one.
func mustClaims(c *gin.Context) (*middleware.Claims, bool) {
	claims, ok := middleware.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, response.Error(http.StatusUnauthorized, "No authentication token provided"))
		return nil, false
	}
	return claims, true
}

func parsePagination(c *gin.Context) (pagination.Params, bool) {
	pag, err := pagination.Parse(c)
	if err != nil {
		badRequest(c, err.Error())
		return pagination.Params{}, false
	}
	return pag, true
}
