package main

import (
	"adforge/cmd/handlers"
	"adforge/internal/logger"
)

func main() {
	logger.Init() // Initialize the logger
	handlers.Execute()
}
