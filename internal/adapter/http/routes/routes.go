package routes

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "pagfacil/docs" // This will be auto-generated
	"pagfacil/internal/adapter/http/handlers"
	"pagfacil/internal/infrastructure/notify"
	"pagfacil/internal/infrastructure/payments"
	"pagfacil/internal/usecase"
)

var router = gin.Default()

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + getenvDefault("PORT", "3333"))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	// One shared client per upstream; base URLs and credentials are read-only
	// after this point.
	httpClient := &http.Client{}

	gateway, err := payments.NewAsaasGateway(
		getenvDefault("ASAAS_API_URL", payments.DefaultBaseURL),
		os.Getenv("ASAAS_API_KEY"),
		httpClient,
	)
	if err != nil {
		log.Fatalf("Asaas gateway not configured: %v", err)
	}

	notifier := notify.NewWhatsAppNotifier(
		getenvDefault("WHATSAPP_API_URL", "https://graph.facebook.com/v19.0"),
		os.Getenv("WHATSAPP_API_TOKEN"),
		os.Getenv("WHATSAPP_PHONE_NUMBER_ID"),
		httpClient,
	)

	orchestrator := usecase.NewPaymentOrchestrator(gateway, notifier)
	paymentHandler := handlers.NewPaymentHandler(orchestrator)

	addHealthRoutes(router)
	addPaymentRoutes(router, paymentHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
