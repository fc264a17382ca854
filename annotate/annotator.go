package annotate

import (
	"errors"
	"fmt"

	"github.com/cyclopcam/logs"
	"github.com/swdee/go-roiannotate"
	"github.com/swdee/go-roiannotate/metadata"
	"github.com/swdee/go-roiannotate/postprocess"
	"github.com/swdee/go-roiannotate/render"
)

// ErrFrameSkipped is returned when a frame could not be drawn on and passes
// through unannotated
var ErrFrameSkipped = errors.New("frame passed through unannotated")

// Mode selects the outputs produced for each frame
type Mode int

const (
	// ModeRender draws labels and pose axes onto the frame
	ModeRender Mode = 1 << iota
	// ModeMetadata emits a metadata record per region
	ModeMetadata
	// ModeNormalize replaces the frame's regions with tensor free copies
	// after processing
	ModeNormalize
)

// Params defines how frames are annotated
type Params struct {
	Mode        Mode
	Style       render.Style
	Interpreter postprocess.InterpreterParams
	Emitter     metadata.EmitterParams
}

// DefaultParams returns parameters that both render and emit metadata
// without labels
func DefaultParams() Params {
	return Params{
		Mode:        ModeRender | ModeMetadata,
		Style:       render.DefaultStyle(),
		Interpreter: postprocess.DefaultInterpreterParams(),
		Emitter:     metadata.EmitterParams{Labels: metadata.LabelNone},
	}
}

// SkippedROI records a region that was not drawn
type SkippedROI struct {
	Index int
	Err   error
}

// Result holds the outputs of processing a single frame
type Result struct {
	// Annotations are the derived attributes of each region in order
	Annotations []postprocess.Annotation
	// Records are the emitted metadata records, nil unless ModeMetadata is set
	Records []metadata.Record
	// Skipped lists regions that were not drawn due to invalid geometry
	Skipped []SkippedROI
}

// Annotator processes frames one at a time.  It holds no per frame state
// but its Font.TTF face, if set, must not be shared with another goroutine.
type Annotator struct {
	params      Params
	interpreter *postprocess.Interpreter
	emitter     *metadata.Emitter
	log         logs.Log
}

// NewAnnotator returns an Annotator for the given parameters.  log may be nil
// to disable logging.
func NewAnnotator(params Params, log logs.Log) *Annotator {
	return &Annotator{
		params:      params,
		interpreter: postprocess.NewInterpreter(params.Interpreter),
		emitter:     metadata.NewEmitter(params.Emitter),
		log:         log,
	}
}

// Params returns the parameters the Annotator was created with
func (a *Annotator) Params() Params {
	return a.params
}

// Process interprets the regions of the frame and produces the outputs
// selected by the mode.  Errors returned wrap ErrFrameSkipped and only
// affect this frame, any records emitted are still returned.
func (a *Annotator) Process(frame *roiannotate.Frame) (*Result, error) {

	res := &Result{
		Annotations: a.interpreter.InterpretFrame(frame.ROIs),
	}

	if a.params.Mode&ModeMetadata != 0 {
		res.Records = a.emitter.EmitFrame(frame.ROIs, res.Annotations)
	}

	var err error

	if a.params.Mode&ModeRender != 0 && len(frame.ROIs) > 0 {
		err = a.draw(frame, res)
	}

	if a.params.Mode&ModeNormalize != 0 {
		frame.ROIs = metadata.Normalize(frame.ROIs)
	}

	return res, err
}

// draw renders every region's annotation onto the frame's pixels
func (a *Annotator) draw(frame *roiannotate.Frame, res *Result) error {

	mapped, err := frame.Map(roiannotate.MapRead | roiannotate.MapWrite)

	if err != nil {
		a.warnf("Frame %dx%d %s not annotated: %v", frame.Width, frame.Height,
			frame.Format, err)
		return fmt.Errorf("%w: %w", ErrFrameSkipped, err)
	}

	defer mapped.Close()

	for i, roi := range frame.ROIs {
		err := render.Annotation(&mapped.Mat, mapped.Format, roi.Rect,
			res.Annotations[i], a.params.Style)

		if err != nil {
			a.warnf("Skipping region %d (%q): %v", i, roi.Label, err)
			res.Skipped = append(res.Skipped, SkippedROI{Index: i, Err: err})
		}
	}

	return nil
}

func (a *Annotator) warnf(format string, args ...interface{}) {
	if a.log != nil {
		a.log.Warnf(format, args...)
	}
}

// Close releases the TTF face of the Annotator's font, if any
func (a *Annotator) Close() error {

	if a.params.Style.Font.TTF == nil {
		return nil
	}

	return a.params.Style.Font.TTF.Close()
}
