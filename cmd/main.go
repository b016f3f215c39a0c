package main

import (
	"fmt"
	"os"

	"github.com/yungbote/neowatch-backend/internal/app"
)

func main() {
	application, err := app.New()
	if err != nil {
		fmt.Printf("Failed to start: %v\n", err)
		os.Exit(1)
	}
	defer application.Close()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	application.Log.Info("Starting server...", "port", port)
	if err := application.Run(":" + port); err != nil {
		application.Log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
