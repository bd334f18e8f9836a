package files

import (
	"fmt"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	FontBasic     = "basic"
	FontGoRegular = "goregular"

	// Matches the line height of basicfont.Face7x13.
	DefaultFontSize = 13
)

type FontLoader struct {
	name string
	size float64
}

// NewFontLoader accepts a built-in face name or a path to a TrueType file.
func NewFontLoader(name string) *FontLoader {
	return &FontLoader{
		name: name,
		size: DefaultFontSize,
	}
}

func (l *FontLoader) Load() (font.Face, error) {
	switch l.name {
	case "", FontBasic:
		return basicfont.Face7x13, nil
	case FontGoRegular:
		f, err := truetype.Parse(goregular.TTF)
		if err != nil {
			return nil, fmt.Errorf("parse go regular: %w", err)
		}
		return truetype.NewFace(f, &truetype.Options{Size: l.size}), nil
	}

	face, err := gg.LoadFontFace(l.name, l.size)
	if err != nil {
		return nil, fmt.Errorf("load font file %s: %w", l.name, err)
	}
	return face, nil
}
