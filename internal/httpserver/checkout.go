package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"grocery-storefront/internal/domain"
	"grocery-storefront/internal/repository/snapshot"
	cartsvc "grocery-storefront/internal/service/cart"
	"grocery-storefront/internal/service/checkout"
)

// checkoutRequest is the customer form. The binding tags are the validation
// boundary: the checkout service receives the customer already well-formed.
type checkoutRequest struct {
	FullName   string `json:"fullName" binding:"required,min=2"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required,min=10"`
	Address    string `json:"address" binding:"required,min=5"`
	City       string `json:"city" binding:"required,min=2"`
	PostalCode string `json:"postalCode" binding:"required,min=4"`
	Country    string `json:"country" binding:"required,min=2"`
	Notes      string `json:"notes"`
}

func (r checkoutRequest) customer() domain.CustomerInfo {
	return domain.CustomerInfo{
		FullName:   r.FullName,
		Email:      r.Email,
		Phone:      r.Phone,
		Address:    r.Address,
		City:       r.City,
		PostalCode: r.PostalCode,
		Country:    r.Country,
		Notes:      r.Notes,
	}
}

func checkoutHandler(svc *checkout.Service, snapshots snapshot.Repository, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		store := cartsvc.Open(c.Request.Context(), snapshots, snapshotKey(c), logger)
		order, err := svc.Submit(c.Request.Context(), req.customer(), store)
		if err != nil {
			if errors.Is(err, checkout.ErrEmptyCart) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
				return
			}
			logger.Printf("order submission failed: %v", err)
			c.JSON(http.StatusBadGateway, gin.H{
				"error": "There was an error processing your order. Please try again.",
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Your order has been placed successfully. You will receive a confirmation email shortly.",
			"order":   order,
		})
	}
}
