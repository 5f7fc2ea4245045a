package main

import (
	"varejo_xpto/internal/worker"

	_ "github.com/joho/godotenv/autoload"
)

func main() {
	worker.Run()
}
