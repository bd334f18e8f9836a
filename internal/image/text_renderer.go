package image

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

var ErrNoFace = errors.New("no font face")

type TextRenderer struct {
	Face  font.Face
	Color color.Color
}

// Measure returns the bounding box of text relative to a dot at the origin,
// so Min.Y is negative for glyphs above the baseline.
func (tr *TextRenderer) Measure(text string) (fixed.Rectangle26_6, error) {
	if tr.Face == nil {
		return fixed.Rectangle26_6{}, ErrNoFace
	}

	bounds, _ := font.BoundString(tr.Face, text)
	if bounds.Empty() {
		return fixed.Rectangle26_6{}, fmt.Errorf("measure %q: empty bounds", text)
	}
	return bounds, nil
}

// DrawCentered draws text with its bounding box centered on the canvas and
// returns the pixel rectangle the box occupies.
func (tr *TextRenderer) DrawCentered(dc *gg.Context, text string) (image.Rectangle, error) {
	bounds, err := tr.Measure(text)
	if err != nil {
		return image.Rectangle{}, err
	}

	w := bounds.Max.X - bounds.Min.X
	h := bounds.Max.Y - bounds.Min.Y

	x := ((fixed.I(dc.Width())-w)/2 - bounds.Min.X).Round()
	y := ((fixed.I(dc.Height())-h)/2 - bounds.Min.Y).Round()

	dc.SetFontFace(tr.Face)
	dc.SetColor(tr.Color)
	dc.DrawString(text, float64(x), float64(y))

	dot := fixed.P(x, y)
	return image.Rect(
		(dot.X + bounds.Min.X).Floor(),
		(dot.Y + bounds.Min.Y).Floor(),
		(dot.X + bounds.Max.X).Ceil(),
		(dot.Y + bounds.Max.Y).Ceil(),
	), nil
}
