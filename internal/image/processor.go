package image

import (
	"image/color"

	"github.com/fogleman/gg"
)

type Processor struct{}

// NewCanvas returns a drawing context fully covered by bg.
func (p *Processor) NewCanvas(width, height int, bg color.Color) *gg.Context {
	dc := gg.NewContext(width, height)
	dc.SetColor(bg)
	dc.Clear()
	return dc
}
