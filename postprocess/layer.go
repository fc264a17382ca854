package postprocess

import "strings"

// LayerKind is the semantic meaning of a tensor derived from the name of the
// output layer that produced it
type LayerKind int

const (
	LayerUnknown LayerKind = iota
	// LayerGender is the binary gender probability output of the
	// age-gender-recognition model
	LayerGender
	// LayerAge is the normalized age regression output of the
	// age-gender-recognition model
	LayerAge
	// LayerEmotion is the per class probability output of the
	// emotions-recognition model
	LayerEmotion
	// LayerRoll, LayerPitch and LayerYaw are the angle outputs of the
	// head-pose-estimation model in degrees
	LayerRoll
	LayerPitch
	LayerYaw
)

// layer names matched exactly
var exactLayers = map[string]LayerKind{
	"prob":         LayerGender,
	"age_conv3":    LayerAge,
	"prob_emotion": LayerEmotion,
}

// layer name fragments matched anywhere in the name, head pose models prefix
// these with the fully connected layer name eg: "angle_y_fc"
var angleLayers = []struct {
	fragment string
	kind     LayerKind
}{
	{"angle_r", LayerRoll},
	{"angle_p", LayerPitch},
	{"angle_y", LayerYaw},
}

// ClassifyLayer returns the LayerKind for the given output layer name.  Exact
// names are matched before angle fragments.
func ClassifyLayer(name string) LayerKind {

	if kind, ok := exactLayers[name]; ok {
		return kind
	}

	for _, a := range angleLayers {
		if strings.Contains(name, a.fragment) {
			return a.kind
		}
	}

	return LayerUnknown
}

// String returns a readable description of the LayerKind
func (k LayerKind) String() string {
	switch k {
	case LayerGender:
		return "gender"
	case LayerAge:
		return "age"
	case LayerEmotion:
		return "emotion"
	case LayerRoll:
		return "roll"
	case LayerPitch:
		return "pitch"
	case LayerYaw:
		return "yaw"
	default:
		return "unknown"
	}
}
