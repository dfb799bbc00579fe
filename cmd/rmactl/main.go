package main

import (
	"github.com/joho/godotenv"

	"github.com/jhoicas/rma-tracker/internal/cli"
)

func main() {
	_ = godotenv.Load()
	cli.Execute()
}
