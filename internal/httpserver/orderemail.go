package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"grocery-storefront/internal/domain"
	"grocery-storefront/internal/service/mailer"
)

// sendOrderEmailHandler is the order-notification sink: it accepts the order
// document, renders and logs both email texts, and reports success. Actual
// delivery is out of scope.
func sendOrderEmailHandler(svc *mailer.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order domain.Order
		if err := c.ShouldBindJSON(&order); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid order payload"})
			return
		}
		if err := svc.Send(order); err != nil {
			logger.Printf("render order emails: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Failed to send emails"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Order confirmation emails sent successfully",
		})
	}
}
