package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"backend/pkg/language"
	"backend/pkg/response"
)

const languageContextKey = "requestLanguage"

// ResolveLanguage normalizes the request language (header, then query, then
// body) once per request. Unsupported codes are a client error.
func ResolveLanguage() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang, err := language.Resolve(c)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, err.Error()))
			return
		}
		c.Set(languageContextKey, lang)
		c.Next()
	}
}

// CurrentLanguage returns the language resolved for this request.
func CurrentLanguage(c *gin.Context) language.Language {
	if v, exists := c.Get(languageContextKey); exists {
		if lang, ok := v.(language.Language); ok {
			return lang
		}
	}
	return language.Default
}
