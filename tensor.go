package roiannotate

// Precision is the numeric type a Tensor's values were produced in before
// conversion to float32
type Precision int

const (
	PrecisionFP32 Precision = iota
	PrecisionFP16
	PrecisionI8
)

// String returns a readable description of the Precision
func (p Precision) String() string {
	switch p {
	case PrecisionFP32:
		return "FP32"
	case PrecisionFP16:
		return "FP16"
	case PrecisionI8:
		return "I8"
	default:
		return "UNKNOW"
	}
}

// Tensor is a named inference output attached to a region of interest
type Tensor struct {
	ModelName string
	// LayerName is the output layer of the model that produced the tensor and
	// selects how the data is interpreted
	LayerName string
	Precision Precision
	// Data is the flat tensor output converted to float32
	Data []float32
}

// NewTensor creates a Tensor from float32 output data
func NewTensor(modelName, layerName string, data []float32) Tensor {
	return Tensor{
		ModelName: modelName,
		LayerName: layerName,
		Precision: PrecisionFP32,
		Data:      data,
	}
}

// NewTensorFP16 creates a Tensor from IEEE 754 half precision output data
func NewTensorFP16(modelName, layerName string, data []uint16) Tensor {

	out := make([]float32, len(data))

	for i, bits := range data {
		out[i] = f16LookupTable[bits]
	}

	return Tensor{
		ModelName: modelName,
		LayerName: layerName,
		Precision: PrecisionFP16,
		Data:      out,
	}
}

// NewTensorQuantized creates a Tensor from affine quantized int8 output data
// using the layer's zero point and scale
func NewTensorQuantized(modelName, layerName string, data []int8, zp int32,
	scale float32) Tensor {

	out := make([]float32, len(data))

	for i, qnt := range data {
		out[i] = deqntAffineToF32(qnt, zp, scale)
	}

	return Tensor{
		ModelName: modelName,
		LayerName: layerName,
		Precision: PrecisionI8,
		Data:      out,
	}
}

// deqntAffineToF32 converts a quantized int8 value back to a float32 using
// the provided zero point and scale
func deqntAffineToF32(qnt int8, zp int32, scale float32) float32 {
	return (float32(qnt) - float32(zp)) * scale
}
