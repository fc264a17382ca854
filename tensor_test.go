package roiannotate

import (
	"math"
	"strings"
	"testing"

	"github.com/x448/float16"
)

func floatsEqual(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-6
}

func TestNewTensorFP16(t *testing.T) {

	want := []float32{0, 1, -2.5, 0.375, 65504}
	bits := make([]uint16, len(want))

	for i, v := range want {
		bits[i] = float16.Fromfloat32(v).Bits()
	}

	tensor := NewTensorFP16("age-gender", "age_conv3", bits)

	if tensor.Precision != PrecisionFP16 {
		t.Errorf("Precision = %s, want FP16", tensor.Precision)
	}

	for i := range want {
		if !floatsEqual(tensor.Data[i], want[i]) {
			t.Errorf("Data[%d] = %v, want %v", i, tensor.Data[i], want[i])
		}
	}

	// NaN bit patterns survive conversion
	nan := NewTensorFP16("m", "l", []uint16{0x7e00})

	if !math.IsNaN(float64(nan.Data[0])) {
		t.Errorf("expected NaN, got %v", nan.Data[0])
	}
}

func TestNewTensorQuantized(t *testing.T) {

	tensor := NewTensorQuantized("emotions", "prob_emotion",
		[]int8{-128, -3, 0, 127}, -3, 0.5)

	want := []float32{-62.5, 0, 1.5, 65}

	if tensor.Precision != PrecisionI8 {
		t.Errorf("Precision = %s, want I8", tensor.Precision)
	}

	if tensor.ModelName != "emotions" || tensor.LayerName != "prob_emotion" {
		t.Errorf("unexpected names %q %q", tensor.ModelName, tensor.LayerName)
	}

	for i := range want {
		if !floatsEqual(tensor.Data[i], want[i]) {
			t.Errorf("Data[%d] = %v, want %v", i, tensor.Data[i], want[i])
		}
	}
}

func TestReadLabels(t *testing.T) {

	in := `# emotions-recognition-retail-0003
neutral
happy

  sad
surprise
anger
`

	labels, err := ReadLabels(strings.NewReader(in))

	if err != nil {
		t.Fatalf("ReadLabels failed: %v", err)
	}

	want := []string{"neutral", "happy", "sad", "surprise", "anger"}

	if len(labels) != len(want) {
		t.Fatalf("got %d labels, want %d", len(labels), len(want))
	}

	for i := range want {
		if labels[i] != want[i] {
			t.Errorf("label %d = %q, want %q", i, labels[i], want[i])
		}
	}

	if _, err := ReadLabels(strings.NewReader("\n# none\n")); err == nil {
		t.Error("expected error for empty label table")
	}

	if _, err := LoadLabels("does-not-exist.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}
