package metadata

import (
	"github.com/swdee/go-roiannotate"
	"github.com/swdee/go-roiannotate/postprocess"
)

// LabelSource selects which label, if any, is attached to emitted records
type LabelSource int

const (
	LabelNone LabelSource = iota
	// LabelROI emits the label the region arrived with, eg: "face"
	LabelROI
	// LabelAnnotation emits the label composed from the region's tensors
	LabelAnnotation
)

// EmitterParams defines the contents of emitted records
type EmitterParams struct {
	Labels LabelSource
}

// Emitter creates metadata records for regions of interest
type Emitter struct {
	params EmitterParams
}

// NewEmitter returns an Emitter using the given parameters
func NewEmitter(params EmitterParams) *Emitter {
	return &Emitter{params: params}
}

// Emit creates the record for a single region at position index in its
// frame.  Tracked regions carry their tracking identifier minus one,
// untracked regions their index.  The annotation is only used when emitting
// annotation labels.  Use EmitFrame for whole frames so identifiers can't
// collide.
func (e *Emitter) Emit(roi roiannotate.ROI, index int, ann postprocess.Annotation) Record {

	if roi.Tracked() {
		return e.record(roi, roi.ID-1, true, ann)
	}

	return e.record(roi, index, false, ann)
}

// record builds a Record with the given object identifier
func (e *Emitter) record(roi roiannotate.ROI, objectID int, tracked bool,
	ann postprocess.Annotation) Record {

	rec := Record{
		ObjectID: objectID,
		Tracked:  tracked,
	}

	switch e.params.Labels {
	case LabelROI:
		rec.Label = roi.Label
	case LabelAnnotation:
		rec.Label = ann.Label
	}

	return rec
}

// EmitFrame creates a record for every region in order.  Object identifiers
// are unique within the frame: tracking identifiers are used when every
// region is tracked with a distinct identifier, otherwise every region is
// numbered by its index.  anns may be nil when labels are not taken from
// annotations, otherwise it must be the same length as rois.
func (e *Emitter) EmitFrame(rois []roiannotate.ROI, anns []postprocess.Annotation) []Record {

	records := make([]Record, len(rois))
	tracked := TrackedFrame(rois)

	for i, roi := range rois {
		var ann postprocess.Annotation

		if i < len(anns) {
			ann = anns[i]
		}

		if tracked {
			records[i] = e.record(roi, roi.ID-1, true, ann)
		} else {
			records[i] = e.record(roi, i, false, ann)
		}
	}

	return records
}

// TrackedFrame reports if every region carries a tracking identifier and no
// two regions share one
func TrackedFrame(rois []roiannotate.ROI) bool {

	seen := make(map[int]struct{}, len(rois))

	for _, roi := range rois {
		if !roi.Tracked() {
			return false
		}

		if _, dup := seen[roi.ID]; dup {
			return false
		}

		seen[roi.ID] = struct{}{}
	}

	return true
}

// Emit creates a record for a region without a label
func Emit(roi roiannotate.ROI, index int) Record {
	return NewEmitter(EmitterParams{}).Emit(roi, index, postprocess.Annotation{})
}
