package services

import (
	"fmt"
	img "image"
	"image/color"

	"placeholder/internal/files"
	"placeholder/internal/image"
)

const (
	CanvasSize = 400
	Text       = "No Photo"
)

var (
	BackgroundColor = color.RGBA{R: 0xE5, G: 0xE5, B: 0xE5, A: 0xFF} // #E5E5E5
	TextColor       = color.RGBA{R: 0x52, G: 0x52, B: 0x5B, A: 0xFF} // #52525B
)

type PlaceholderService struct {
	fontLoader  *files.FontLoader
	processor   *image.Processor
	fileManager files.FileManager
	quality     int
}

func NewPlaceholderService(
	fontLoader *files.FontLoader,
	processor *image.Processor,
	fileManager files.FileManager,
	quality int,
) *PlaceholderService {
	return &PlaceholderService{
		fontLoader:  fontLoader,
		processor:   processor,
		fileManager: fileManager,
		quality:     quality,
	}
}

func (s *PlaceholderService) Render() (img.Image, error) {
	face, err := s.fontLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("font load error: %w", err)
	}

	dc := s.processor.NewCanvas(CanvasSize, CanvasSize, BackgroundColor)

	renderer := &image.TextRenderer{Face: face, Color: TextColor}
	if _, err := renderer.DrawCentered(dc, Text); err != nil {
		return nil, fmt.Errorf("text render: %w", err)
	}

	return dc.Image(), nil
}

// Generate writes the placeholder to outputPath, replacing any existing file.
// Nothing is written unless the whole image encodes.
func (s *PlaceholderService) Generate(outputPath string) error {
	placeholder, err := s.Render()
	if err != nil {
		return err
	}

	if err := s.fileManager.SaveJPEG(outputPath, placeholder, s.quality); err != nil {
		return fmt.Errorf("save output: %w", err)
	}
	return nil
}
