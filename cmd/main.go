package main

import (
	"fmt"
	"log"

	"placeholder/internal/config"
	"placeholder/internal/files"
	"placeholder/internal/image"
	"placeholder/internal/services"
)

func main() {
	logger := log.Default()
	cfg := config.Load(logger)

	placeholderService := services.NewPlaceholderService(
		files.NewFontLoader(cfg.Font),
		&image.Processor{},
		files.NewLocalFileManager(),
		cfg.JPEGQuality,
	)

	if err := placeholderService.Generate(cfg.OutputPath()); err != nil {
		logger.Fatal(err)
	}

	fmt.Println("Created default candidate image successfully")
}
