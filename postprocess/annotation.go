package postprocess

// Gender of a face as classified by the age-gender-recognition model
type Gender int

const (
	GenderUnknown Gender = iota
	GenderMale
	GenderFemale
)

// String returns a readable description of the Gender
func (g Gender) String() string {
	switch g {
	case GenderMale:
		return "male"
	case GenderFemale:
		return "female"
	default:
		return "unknown"
	}
}

// suffix returns the label suffix for the gender
func (g Gender) suffix() string {
	switch g {
	case GenderMale:
		return "_M"
	case GenderFemale:
		return "_F"
	default:
		return ""
	}
}

// Pose is the head orientation in degrees
type Pose struct {
	Roll  float32
	Pitch float32
	Yaw   float32
}

// Annotation is the set of attributes derived from the tensors attached to a
// single region of interest
type Annotation struct {
	// Label is the region's own label followed by the derived attributes
	Label  string
	Gender Gender
	// Age in years, only meaningful when HasAge is set
	Age    int
	HasAge bool
	// Emotion is the name of the most likely emotion or empty if none was
	// observed
	Emotion string
	// Pose is nil unless roll, pitch and yaw were all observed
	Pose *Pose
}
