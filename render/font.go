package render

import (
	"fmt"
	"image/color"

	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Font defines the parameters for rendering annotation labels
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// TTF when set renders the label with a TrueType face instead of the
	// Hershey font, which only covers Latin characters.  A font.Face must not
	// be shared between goroutines.
	TTF font.Face
}

// DefaultFont returns default font settings, a red Hershey Simplex font with
// a 2 pixel stroke
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     1,
		Color:     Red,
		Thickness: 2,
		LineType:  gocv.Line8,
	}
}

// NewTTFFace parses TrueType or OpenType font data and creates a type face of
// the given point size
func NewTTFFace(fontBytes []byte, size float64) (font.Face, error) {

	f, err := opentype.Parse(fontBytes)

	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}

	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})

	if err != nil {
		return nil, fmt.Errorf("failed to create type face: %w", err)
	}

	return face, nil
}

// GoRegularFace returns a type face for the embedded Go Regular font
func GoRegularFace(size float64) (font.Face, error) {
	return NewTTFFace(goregular.TTF, size)
}
