package main

import (
	"github.com/joho/godotenv"

	"github.com/mcoot/uniquepick/internal/cli"
)

func main() {
	// Optional .env supplies UNIQUEPICK_* defaults
	_ = godotenv.Load()

	cli.Execute()
}
