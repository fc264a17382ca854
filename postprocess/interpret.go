package postprocess

import (
	"strconv"
	"strings"

	"github.com/chewxy/math32"
	"github.com/swdee/go-roiannotate"
)

// InterpreterParams defines the label tables used to decode tensor outputs
type InterpreterParams struct {
	// EmotionLabels are the class names of the emotion model outputs in index
	// order
	EmotionLabels []string
	// GenderThreshold is the male probability above which a face is classed as
	// male
	GenderThreshold float32
}

// DefaultInterpreterParams returns the parameters for the
// emotions-recognition-retail-0003 and age-gender-recognition-retail-0013
// models
func DefaultInterpreterParams() InterpreterParams {
	return InterpreterParams{
		EmotionLabels:   []string{"neutral", "happy", "sad", "surprise", "anger"},
		GenderThreshold: 0.5,
	}
}

// MaxAge is the largest age in years accepted from the age regression output,
// values outside 0 to MaxAge are ignored
const MaxAge = 150

// Interpreter derives Annotations from the tensors attached to regions of
// interest.  It holds no state between calls and is safe for concurrent use.
type Interpreter struct {
	params InterpreterParams
}

// NewInterpreter returns an Interpreter using the given parameters
func NewInterpreter(params InterpreterParams) *Interpreter {

	labels := make([]string, len(params.EmotionLabels))
	copy(labels, params.EmotionLabels)
	params.EmotionLabels = labels

	return &Interpreter{params: params}
}

// DefaultInterpreter returns an Interpreter with DefaultInterpreterParams
func DefaultInterpreter() *Interpreter {
	return NewInterpreter(DefaultInterpreterParams())
}

// Interpret derives the Annotation of a single region using the default
// parameters
func Interpret(roi roiannotate.ROI) Annotation {
	return DefaultInterpreter().Interpret(roi)
}

// poseAccum collects the head pose angles as they are observed
type poseAccum struct {
	pose             Pose
	roll, pitch, yaw bool
}

func (p *poseAccum) complete() bool {
	return p.roll && p.pitch && p.yaw
}

// Interpret walks the region's tensors in order and derives its Annotation.
// Tensors too short for their layer are skipped.  When a layer appears more
// than once the last value wins.
func (ip *Interpreter) Interpret(roi roiannotate.ROI) Annotation {

	ann := Annotation{}
	var pose poseAccum

	for _, tensor := range roi.Tensors {

		data := tensor.Data

		switch ClassifyLayer(tensor.LayerName) {
		case LayerGender:
			// index 1 is the male probability channel
			if len(data) < 2 {
				continue
			}

			if data[1] > ip.params.GenderThreshold {
				ann.Gender = GenderMale
			} else {
				ann.Gender = GenderFemale
			}

		case LayerAge:
			if len(data) < 1 {
				continue
			}

			// NaN fails both comparisons and is skipped with the out of range
			// values
			age := math32.Round(data[0] * 100)

			if !(age >= 0 && age <= MaxAge) {
				continue
			}

			ann.Age = int(age)
			ann.HasAge = true

		case LayerEmotion:
			idx, ok := argMax(data, len(ip.params.EmotionLabels))

			if !ok {
				continue
			}

			ann.Emotion = ip.params.EmotionLabels[idx]

		case LayerRoll:
			if len(data) < 1 {
				continue
			}
			pose.pose.Roll = data[0]
			pose.roll = true

		case LayerPitch:
			if len(data) < 1 {
				continue
			}
			pose.pose.Pitch = data[0]
			pose.pitch = true

		case LayerYaw:
			if len(data) < 1 {
				continue
			}
			pose.pose.Yaw = data[0]
			pose.yaw = true
		}
	}

	if pose.complete() {
		p := pose.pose
		ann.Pose = &p
	}

	ann.Label = composeLabel(roi.Label, ann)

	return ann
}

// InterpretFrame returns the Annotation of every region in order
func (ip *Interpreter) InterpretFrame(rois []roiannotate.ROI) []Annotation {

	anns := make([]Annotation, len(rois))

	for i, roi := range rois {
		anns[i] = ip.Interpret(roi)
	}

	return anns
}

// composeLabel builds the display label, eg: "face__M37 happy"
func composeLabel(base string, ann Annotation) string {

	var sb strings.Builder

	sb.WriteString(base)
	sb.WriteString("_")
	sb.WriteString(ann.Gender.suffix())

	if ann.HasAge {
		sb.WriteString(strconv.Itoa(ann.Age))
	}

	if ann.Emotion != "" {
		sb.WriteString(" ")
		sb.WriteString(ann.Emotion)
	}

	return sb.String()
}
