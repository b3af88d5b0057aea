package main

import (
	_ "pagfacil/docs"
	"pagfacil/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Payment Relay API
// @version         1.0
// @description     Payment-orchestration relay (Asaas checkout + WhatsApp notifications).
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:3333

// @BasePath  /

func main() {
	routes.Run()
}
