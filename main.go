package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Nishu0/xicon-cli/cmd"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
