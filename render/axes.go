package render

import (
	"image"
	"image/color"

	"github.com/swdee/go-roiannotate"
	"github.com/swdee/go-roiannotate/pose"
	"gocv.io/x/gocv"
)

// AxesStyle defines the parameters used for rendering the head pose axes
type AxesStyle struct {
	XColor    color.RGBA
	YColor    color.RGBA
	ZColor    color.RGBA
	Thickness int
	// CircleRadius is the radius of the dot marking the head of the Z axis
	CircleRadius int
}

// DefaultAxesStyle returns default axes style settings
func DefaultAxesStyle() AxesStyle {
	return AxesStyle{
		XColor:       Red,
		YColor:       Green,
		ZColor:       Blue,
		Thickness:    2,
		CircleRadius: 3,
	}
}

// pt converts a projected point to pixel coordinates, truncating toward zero
func pt(p pose.Point) image.Point {
	return image.Pt(int(p.X), int(p.Y))
}

// PoseAxes draws the projected head pose axes.  X and Y are drawn from the
// center, Z is drawn through the head with a dot on the end facing the
// camera.
func PoseAxes(img *gocv.Mat, format roiannotate.PixelFormat, axes pose.Axes,
	style AxesStyle) {

	center := pt(axes.Center)

	gocv.Line(img, center, pt(axes.XEnd), matColor(style.XColor, format), style.Thickness)
	gocv.Line(img, center, pt(axes.YEnd), matColor(style.YColor, format), style.Thickness)

	zClr := matColor(style.ZColor, format)
	gocv.Line(img, pt(axes.ZStart), pt(axes.ZEnd), zClr, style.Thickness)
	gocv.Circle(img, pt(axes.ZEnd), style.CircleRadius, zClr, -1)
}
