package roiannotate

import "fmt"

// MapFlags define the access requested when mapping a Buffer
type MapFlags int

const (
	MapRead  MapFlags = 1 << 0
	MapWrite MapFlags = 1 << 1
)

// Buffer is a pixel buffer owned by the media pipeline.  Access to the bytes
// is only valid between a successful Map and the matching Unmap.
type Buffer interface {
	Map(flags MapFlags) ([]byte, error)
	Unmap()
}

// MemoryBuffer is a Buffer backed by a byte slice
type MemoryBuffer struct {
	data     []byte
	mapped   bool
	readOnly bool
}

// NewMemoryBuffer wraps the given pixel data in a Buffer
func NewMemoryBuffer(data []byte) *MemoryBuffer {
	return &MemoryBuffer{data: data}
}

// NewReadOnlyBuffer wraps the given pixel data in a Buffer that refuses write
// mappings
func NewReadOnlyBuffer(data []byte) *MemoryBuffer {
	return &MemoryBuffer{data: data, readOnly: true}
}

// Map returns the underlying bytes.  A buffer may only be mapped once at a
// time.
func (b *MemoryBuffer) Map(flags MapFlags) ([]byte, error) {

	if b.mapped {
		return nil, ErrBufferMapped
	}

	if flags&MapWrite != 0 && b.readOnly {
		return nil, fmt.Errorf("write access to read only buffer: %w", ErrBufferMap)
	}

	b.mapped = true
	return b.data, nil
}

// Unmap releases the mapping
func (b *MemoryBuffer) Unmap() {
	b.mapped = false
}

// Mapped reports if the buffer is currently mapped
func (b *MemoryBuffer) Mapped() bool {
	return b.mapped
}

// Bytes returns the underlying pixel data
func (b *MemoryBuffer) Bytes() []byte {
	return b.data
}
