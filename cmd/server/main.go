package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/marie/subvention-scroller/internal/api"
)

func main() {
	// Local development keeps its secrets in a .env file; production sets
	// real environment variables and has no file to load.
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found, using environment as-is")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8081"
	}

	srv := api.NewServer()
	log.Printf("Server starting on port %s...", port)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}
