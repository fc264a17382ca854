package render

import (
	"fmt"

	"github.com/swdee/go-roiannotate"
	"github.com/swdee/go-roiannotate/pose"
	"github.com/swdee/go-roiannotate/postprocess"
	"gocv.io/x/gocv"
)

// Style groups the rendering parameters for a region's annotation
type Style struct {
	Font Font
	Axes AxesStyle
	// AxisLength is the length in pixels of each pose axis before projection
	AxisLength float64
}

// DefaultStyle returns default annotation style settings
func DefaultStyle() Style {
	return Style{
		Font:       DefaultFont(),
		Axes:       DefaultAxesStyle(),
		AxisLength: pose.DefaultLength,
	}
}

// Annotation draws the region's label and, when a complete head pose was
// observed, the pose axes centered on the region.  Regions with invalid
// geometry are not drawn and return ErrInvalidGeometry.
func Annotation(img *gocv.Mat, format roiannotate.PixelFormat,
	rect roiannotate.Rect, ann postprocess.Annotation, style Style) error {

	if !rect.Valid() {
		return fmt.Errorf("rect %+v: %w", rect, roiannotate.ErrInvalidGeometry)
	}

	err := AnnotationLabel(img, format, rect, ann.Label, style.Font)

	if err != nil {
		return fmt.Errorf("error drawing label: %w", err)
	}

	if ann.Pose == nil {
		return nil
	}

	cx, cy := rect.Center()

	axes := pose.Project(pose.Angles{
		Roll:  float64(ann.Pose.Roll),
		Pitch: float64(ann.Pose.Pitch),
		Yaw:   float64(ann.Pose.Yaw),
	}, cx, cy, style.AxisLength)

	PoseAxes(img, format, axes, style.Axes)

	return nil
}
