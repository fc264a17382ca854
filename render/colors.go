package render

import (
	"image/color"

	"github.com/swdee/go-roiannotate"
)

var (
	Red   = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue  = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Black = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// swapRB exchanges the red and blue channels
func swapRB(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.B, G: c.G, B: c.R, A: c.A}
}

// matColor returns the color to pass to gocv drawing functions so it appears
// as c on a frame of the given format.  gocv writes colors in BGR order.
func matColor(c color.RGBA, format roiannotate.PixelFormat) color.RGBA {
	if format.IsBGR() {
		return c
	}
	return swapRB(c)
}
