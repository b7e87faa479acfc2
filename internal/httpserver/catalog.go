package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"grocery-storefront/internal/catalog"
	"grocery-storefront/internal/domain"
)

func listCategoriesHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"categories": cat.Categories()})
	}
}

func listProductsHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"products": cat.All()})
	}
}

func categoryProductsHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := cat.ByCategory(c.Param("key"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "category not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"category": c.Param("key"), "products": products})
	}
}

func searchHandler(cat *catalog.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		results := cat.Search(c.Query("q"))
		if results == nil {
			results = []domain.Product{}
		}
		c.JSON(http.StatusOK, gin.H{"results": results, "total": len(results)})
	}
}
