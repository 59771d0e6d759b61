package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/pastrylab/equilibra/pkg/api"
)

func main() {
	// .env files seed PORT, LOG_LEVEL, and the EQUILIBRA_* dataset
	// variables before the server reads them.
	_ = godotenv.Load()

	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
