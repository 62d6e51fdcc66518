package main

import (
	"fmt"
	"os"

	"finance-tracker/config"
	"finance-tracker/internal/bootstrap/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := worker.StartAnalyticsWorker(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
