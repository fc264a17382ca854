package metadata

import "github.com/swdee/go-roiannotate"

// Normalize re-creates the regions carrying only their geometry and label.
// Order is preserved, tensors are dropped and identifiers are renumbered from
// one by position, so records emitted afterwards carry the region's index.
func Normalize(rois []roiannotate.ROI) []roiannotate.ROI {

	out := make([]roiannotate.ROI, len(rois))

	for i, roi := range rois {
		out[i] = roiannotate.ROI{
			Rect:  roi.Rect,
			ID:    i + 1,
			Label: roi.Label,
		}
	}

	return out
}
