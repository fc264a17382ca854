package render

import (
	"fmt"
	"image"

	"github.com/swdee/go-roiannotate"
	"gocv.io/x/gocv"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// LabelOffset is the distance in pixels from the top of the region to the
// label baseline, added to the region height
const LabelOffset = 30

// LabelPosition returns the lower left origin of the label text for a region,
// which sits below the region's bounding box
func LabelPosition(rect roiannotate.Rect) image.Point {
	return image.Pt(int(rect.X), int(rect.Y+rect.H+LabelOffset))
}

// AnnotationLabel draws the label text below the region.  The text is not
// clipped or wrapped and may extend past the frame edges.
func AnnotationLabel(img *gocv.Mat, format roiannotate.PixelFormat,
	rect roiannotate.Rect, label string, f Font) error {

	if label == "" {
		return nil
	}

	pos := LabelPosition(rect)

	if f.TTF != nil {
		return putTTFText(img, format, label, pos, f)
	}

	gocv.PutTextWithParams(img, label, pos, f.Face, f.Scale,
		matColor(f.Color, format), f.Thickness, f.LineType, false)

	return nil
}

// ttfMaskThreshold is the glyph coverage at or above which a pixel takes the
// label color
const ttfMaskThreshold = 128

// putTTFText rasterises the text with the TrueType face into a glyph mask the
// size of the label and paints the label color through it, supporting
// characters the Hershey fonts don't cover
func putTTFText(img *gocv.Mat, format roiannotate.PixelFormat, text string,
	pos image.Point, f Font) error {

	bounds, _ := font.BoundString(f.TTF, text)

	area := image.Rect(
		pos.X+bounds.Min.X.Floor(), pos.Y+bounds.Min.Y.Floor(),
		pos.X+bounds.Max.X.Ceil(), pos.Y+bounds.Max.Y.Ceil(),
	).Intersect(image.Rect(0, 0, img.Cols(), img.Rows()))

	if area.Empty() {
		return nil
	}

	glyphs := image.NewAlpha(image.Rect(0, 0, area.Dx(), area.Dy()))

	dr := &font.Drawer{
		Dst:  glyphs,
		Src:  image.Opaque,
		Face: f.TTF,
		Dot:  fixed.P(pos.X-area.Min.X, pos.Y-area.Min.Y),
	}
	dr.DrawString(text)

	for i, a := range glyphs.Pix {
		if a < ttfMaskThreshold {
			glyphs.Pix[i] = 0
		}
	}

	mask, err := gocv.NewMatFromBytes(area.Dy(), area.Dx(), gocv.MatTypeCV8UC1,
		glyphs.Pix)

	if err != nil {
		return fmt.Errorf("error creating glyph mask: %w", err)
	}

	defer mask.Close()

	c := matColor(f.Color, format)
	fill := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), float64(c.A)),
		area.Dy(), area.Dx(), img.Type())
	defer fill.Close()

	region := img.Region(area)
	defer region.Close()

	fill.CopyToWithMask(&region, mask)

	return nil
}
