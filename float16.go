package roiannotate

import "github.com/x448/float16"

// f16LookupTable maps every half precision bit pattern to its float32 value
var f16LookupTable [65536]float32

func init() {
	for i := range f16LookupTable {
		f16LookupTable[i] = float16.Frombits(uint16(i)).Float32()
	}
}
