package main

import (
	"fmt"
	"os"

	"finance-tracker/config"
	"finance-tracker/internal/bootstrap/api"
)

// @title Finance Tracker API
// @version 1.0
// @description Учет личных финансов: категории, товары, цены, теги, транзакции и аналитика
// @host localhost:8000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := api.StartFinanceAPI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
