package main

import (
	_ "gardenroom-billing/docs"
	"gardenroom-billing/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Garden Room Quote & Billing API
// @version         1.0
// @description     Pricing, quote submission and payment ledger for prefabricated garden rooms.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
