package postprocess

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-roiannotate"
)

// faceROI returns a face region carrying the given tensors
func faceROI(tensors ...roiannotate.Tensor) roiannotate.ROI {
	return roiannotate.ROI{
		Rect:    roiannotate.Rect{X: 100, Y: 80, W: 64, H: 64},
		ID:      3,
		Label:   "face",
		Tensors: tensors,
	}
}

func tensor(layer string, data ...float32) roiannotate.Tensor {
	return roiannotate.NewTensor("test-model", layer, data)
}

func TestClassifyLayer(t *testing.T) {

	tests := []struct {
		name string
		want LayerKind
	}{
		{"prob", LayerGender},
		{"age_conv3", LayerAge},
		{"prob_emotion", LayerEmotion},
		{"angle_r_fc", LayerRoll},
		{"angle_p_fc", LayerPitch},
		{"angle_y_fc", LayerYaw},
		{"angle_y", LayerYaw},
		{"prob_other", LayerUnknown},
		{"Prob", LayerUnknown},
		{"", LayerUnknown},
		{"landmarks", LayerUnknown},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, ClassifyLayer(tc.name), "layer %q", tc.name)
	}
}

func TestInterpretGender(t *testing.T) {

	tests := []struct {
		data []float32
		want Gender
	}{
		{[]float32{0.1, 0.9}, GenderMale},
		{[]float32{0.49, 0.51}, GenderMale},
		{[]float32{0.5, 0.5}, GenderFemale},
		{[]float32{0.9, 0.1}, GenderFemale},
		// too short for the male channel, rule is skipped
		{[]float32{0.9}, GenderUnknown},
		{[]float32{}, GenderUnknown},
	}

	for _, tc := range tests {
		ann := Interpret(faceROI(tensor("prob", tc.data...)))
		assert.Equal(t, tc.want, ann.Gender, "data %v", tc.data)
	}
}

func TestInterpretShortGenderLabel(t *testing.T) {
	ann := Interpret(faceROI(tensor("prob", 0.7)))
	assert.Equal(t, "face_", ann.Label)
}

func TestInterpretAge(t *testing.T) {

	ann := Interpret(faceROI(tensor("age_conv3", 0.37)))

	require.True(t, ann.HasAge)
	assert.Equal(t, 37, ann.Age)
	assert.Equal(t, "face_37", ann.Label)

	ann = Interpret(faceROI(tensor("age_conv3", 0.256)))
	assert.Equal(t, 26, ann.Age)

	ann = Interpret(faceROI(tensor("age_conv3")))
	assert.False(t, ann.HasAge)
}

func TestInterpretAgeOutOfRange(t *testing.T) {

	for _, v := range []float32{
		1e30, -1e30, -0.2, 1.51, math32.NaN(), math32.Inf(1), math32.Inf(-1),
	} {
		ann := Interpret(faceROI(tensor("age_conv3", v)))

		assert.False(t, ann.HasAge, "age %v", v)
		assert.Equal(t, "face_", ann.Label, "age %v", v)
	}

	// limits are inclusive
	assert.Equal(t, 0, Interpret(faceROI(tensor("age_conv3", 0))).Age)
	assert.Equal(t, MaxAge, Interpret(faceROI(tensor("age_conv3", 1.5))).Age)

	// an out of range value does not clear an earlier valid one
	ann := Interpret(faceROI(tensor("age_conv3", 0.3), tensor("age_conv3", 1e30)))
	assert.Equal(t, "face_30", ann.Label)
}

func TestInterpretEmotion(t *testing.T) {

	tests := []struct {
		data []float32
		want string
	}{
		{[]float32{0.1, 0.6, 0.05, 0.05, 0.2}, "happy"},
		{[]float32{0.9, 0.02, 0.03, 0.03, 0.02}, "neutral"},
		{[]float32{0.1, 0.1, 0.1, 0.1, 0.6}, "anger"},
		// ties resolve to the first maximum
		{[]float32{0.1, 0.4, 0.4, 0.05, 0.05}, "happy"},
		// values beyond the label table are ignored
		{[]float32{0.1, 0.1, 0.5, 0.1, 0.1, 0.9}, "sad"},
		// fewer values than labels yields no emotion
		{[]float32{0.1, 0.9}, ""},
		{[]float32{}, ""},
	}

	for _, tc := range tests {
		ann := Interpret(faceROI(tensor("prob_emotion", tc.data...)))
		assert.Equal(t, tc.want, ann.Emotion, "data %v", tc.data)
	}
}

func TestInterpretCustomEmotionLabels(t *testing.T) {

	ip := NewInterpreter(InterpreterParams{
		EmotionLabels:   []string{"calm", "angry"},
		GenderThreshold: 0.5,
	})

	ann := ip.Interpret(faceROI(tensor("prob_emotion", 0.2, 0.8)))
	assert.Equal(t, "angry", ann.Emotion)
	assert.Equal(t, "face_ angry", ann.Label)
}

func TestInterpretPose(t *testing.T) {

	ann := Interpret(faceROI(
		tensor("angle_r_fc", 5),
		tensor("angle_p_fc", -10),
		tensor("angle_y_fc", 20),
	))

	require.NotNil(t, ann.Pose)
	assert.Equal(t, Pose{Roll: 5, Pitch: -10, Yaw: 20}, *ann.Pose)

	// a frontal face has all angles zero and must still produce a pose
	ann = Interpret(faceROI(
		tensor("angle_r_fc", 0),
		tensor("angle_p_fc", 0),
		tensor("angle_y_fc", 0),
	))

	require.NotNil(t, ann.Pose)
	assert.Equal(t, Pose{}, *ann.Pose)
}

func TestInterpretPartialPose(t *testing.T) {

	tests := [][]roiannotate.Tensor{
		{tensor("angle_r_fc", 5)},
		{tensor("angle_r_fc", 5), tensor("angle_p_fc", 4)},
		{tensor("angle_p_fc", 4), tensor("angle_y_fc", 3)},
		// an empty angle tensor does not count as observed
		{tensor("angle_r_fc", 5), tensor("angle_p_fc", 4), tensor("angle_y_fc")},
	}

	for i, tensors := range tests {
		ann := Interpret(faceROI(tensors...))
		assert.Nil(t, ann.Pose, "case %d", i)
	}
}

func TestInterpretEmpty(t *testing.T) {

	ann := Interpret(faceROI())

	assert.Equal(t, Annotation{Label: "face_"}, ann)

	roi := faceROI()
	roi.Label = ""
	assert.Equal(t, "_", Interpret(roi).Label)
}

func TestInterpretFullLabel(t *testing.T) {

	roi := faceROI(
		// emotion first to show the label order is fixed
		tensor("prob_emotion", 0.1, 0.6, 0.05, 0.05, 0.2),
		tensor("age_conv3", 0.37),
		tensor("prob", 0.2, 0.8),
		tensor("landmarks", 1, 2, 3, 4),
		tensor("angle_r_fc", 1),
		tensor("angle_p_fc", 2),
		tensor("angle_y_fc", 3),
	)

	ann := Interpret(roi)

	assert.Equal(t, "face__M37 happy", ann.Label)
	assert.Equal(t, GenderMale, ann.Gender)
	assert.Equal(t, "happy", ann.Emotion)
	require.NotNil(t, ann.Pose)
	assert.Equal(t, Pose{Roll: 1, Pitch: 2, Yaw: 3}, *ann.Pose)
}

func TestInterpretLastLayerWins(t *testing.T) {
	ann := Interpret(faceROI(tensor("prob", 0.2, 0.8), tensor("prob", 0.8, 0.2)))
	assert.Equal(t, GenderFemale, ann.Gender)
	assert.Equal(t, "face__F", ann.Label)
}

func TestInterpretIdempotent(t *testing.T) {

	roi := faceROI(
		tensor("prob", 0.3, 0.7),
		tensor("age_conv3", 0.42),
		tensor("prob_emotion", 0.1, 0.1, 0.6, 0.1, 0.1),
		tensor("angle_r_fc", 1),
		tensor("angle_p_fc", 2),
		tensor("angle_y_fc", 3),
	)

	ip := DefaultInterpreter()
	first := ip.Interpret(roi)
	second := ip.Interpret(roi)

	assert.Equal(t, first, second)
	// the returned pose is not shared between calls
	assert.NotSame(t, first.Pose, second.Pose)
}

func TestInterpretFrame(t *testing.T) {

	rois := make([]roiannotate.ROI, 300)

	for i := range rois {
		rois[i] = faceROI(tensor("age_conv3", float32(i%100)/100))
	}

	anns := DefaultInterpreter().InterpretFrame(rois)

	require.Len(t, anns, len(rois))
	assert.Equal(t, 99, anns[199].Age)
}

func TestArgMax(t *testing.T) {

	idx, ok := argMax([]float32{1, 3, 2}, 3)
	assert.True(t, ok)
	assert.Equal(t, 1, idx)

	_, ok = argMax([]float32{1, 3}, 3)
	assert.False(t, ok)

	_, ok = argMax(nil, 0)
	assert.False(t, ok)
}
