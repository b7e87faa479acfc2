package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"grocery-storefront/internal/domain"
	"grocery-storefront/internal/i18n"
)

func translationsHandler(bundle *i18n.Bundle) gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := c.Param("lang")
		strings, err := bundle.Strings(lang)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "unsupported language"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"language": lang, "strings": strings})
	}
}
