package routes

import (
	"pagfacil/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

// Route paths are kept at the root, matching what the client app calls.
func addPaymentRoutes(r *gin.Engine, paymentHandler *handlers.PaymentHandler) {
	r.POST("/create-payment", paymentHandler.CreatePayment)
	r.POST("/confirm-payment", paymentHandler.ConfirmPayment)
	r.GET("/pix/:paymentId", paymentHandler.GetPixQrCode)
}
