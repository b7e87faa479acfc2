package httpserver

import (
	"database/sql"
	"errors"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"grocery-storefront/internal/catalog"
	"grocery-storefront/internal/i18n"
	"grocery-storefront/internal/repository/snapshot"
	"grocery-storefront/internal/service/checkout"
	"grocery-storefront/internal/service/mailer"
)

// Deps carries the collaborators the handlers need.
type Deps struct {
	Catalog      *catalog.Catalog
	Snapshots    snapshot.Repository
	Checkout     *checkout.Service
	Mailer       *mailer.Service
	Translations *i18n.Bundle
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *sql.DB, deps Deps, corsOrigins []string) (*gin.Engine, error) {
	if deps.Catalog == nil {
		return nil, errors.New("catalog required")
	}
	if deps.Snapshots == nil {
		return nil, errors.New("snapshot repository required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	// The browser frontend lives on another origin and the cart rides on a
	// cookie, so credentials must be allowed.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Content-Type"},
		AllowCredentials: true,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	api := router.Group("/api")
	{
		api.GET("/categories", listCategoriesHandler(deps.Catalog))
		api.GET("/categories/:key/products", categoryProductsHandler(deps.Catalog))
		api.GET("/products", listProductsHandler(deps.Catalog))
		api.GET("/search", searchHandler(deps.Catalog))

		carts := api.Group("", sessionMiddleware())
		{
			carts.GET("/cart", getCartHandler(deps.Snapshots, logger))
			carts.POST("/cart/items", addCartItemHandler(deps.Catalog, deps.Snapshots, logger))
			carts.PATCH("/cart/items/:id", updateCartItemHandler(deps.Snapshots, logger))
			carts.DELETE("/cart/items/:id", removeCartItemHandler(deps.Snapshots, logger))
			carts.DELETE("/cart", clearCartHandler(deps.Snapshots, logger))

			if deps.Checkout != nil {
				carts.POST("/checkout", checkoutHandler(deps.Checkout, deps.Snapshots, logger))
			}
		}

		if deps.Mailer != nil {
			api.POST("/send-order-email", sendOrderEmailHandler(deps.Mailer, logger))
		}
		if deps.Translations != nil {
			api.GET("/translations/:lang", translationsHandler(deps.Translations))
		}
	}

	return router, nil
}
