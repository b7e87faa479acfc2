package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"grocery-storefront/internal/catalog"
	"grocery-storefront/internal/domain"
	"grocery-storefront/internal/pricing"
	"grocery-storefront/internal/repository/snapshot"
	cartsvc "grocery-storefront/internal/service/cart"
)

type cartResponse struct {
	Items  []domain.CartItem `json:"items"`
	Count  int               `json:"count"`
	Totals domain.Totals     `json:"totals"`
	Notice *cartsvc.Notice   `json:"notice,omitempty"`
}

// toCartResponse derives the view of a cart. Totals come from the shared
// pricing rules, the same ones checkout uses.
func toCartResponse(store *cartsvc.Store, notice *cartsvc.Notice) cartResponse {
	items := store.Items()
	if items == nil {
		items = []domain.CartItem{}
	}
	return cartResponse{
		Items:  items,
		Count:  store.Count(),
		Totals: pricing.Compute(store.Total()),
		Notice: notice,
	}
}

type addItemRequest struct {
	Name string `json:"name" binding:"required"`
}

type updateItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

func getCartHandler(snapshots snapshot.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cartsvc.Open(c.Request.Context(), snapshots, snapshotKey(c), logger)
		c.JSON(http.StatusOK, toCartResponse(store, nil))
	}
}

func addCartItemHandler(cat *catalog.Catalog, snapshots snapshot.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "product name required"})
			return
		}
		product, err := cat.ByName(req.Name)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}

		store := cartsvc.Open(c.Request.Context(), snapshots, snapshotKey(c), logger)
		notice := store.AddToCart(c.Request.Context(), *product)
		c.JSON(http.StatusOK, toCartResponse(store, &notice))
	}
}

func updateCartItemHandler(snapshots snapshot.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "quantity required"})
			return
		}
		store := cartsvc.Open(c.Request.Context(), snapshots, snapshotKey(c), logger)
		notice := store.UpdateQuantity(c.Request.Context(), c.Param("id"), *req.Quantity)
		c.JSON(http.StatusOK, toCartResponse(store, notice))
	}
}

func removeCartItemHandler(snapshots snapshot.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cartsvc.Open(c.Request.Context(), snapshots, snapshotKey(c), logger)
		notice := store.RemoveFromCart(c.Request.Context(), c.Param("id"))
		c.JSON(http.StatusOK, toCartResponse(store, notice))
	}
}

func clearCartHandler(snapshots snapshot.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := cartsvc.Open(c.Request.Context(), snapshots, snapshotKey(c), logger)
		store.ClearCart(c.Request.Context())
		c.Status(http.StatusNoContent)
	}
}
