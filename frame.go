package roiannotate

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"
)

// PixelFormat is the memory layout of a Frame's pixel buffer
type PixelFormat int

const (
	FormatUnknown PixelFormat = iota
	FormatBGRx
	FormatBGRA
	FormatBGR
	FormatRGBx
	FormatRGBA
	FormatRGB
)

// Channels returns the number of bytes per pixel for the format, or zero if
// the format is not supported
func (p PixelFormat) Channels() int {
	switch p {
	case FormatBGRx, FormatBGRA, FormatRGBx, FormatRGBA:
		return 4
	case FormatBGR, FormatRGB:
		return 3
	default:
		return 0
	}
}

// IsBGR reports if the first byte of each pixel holds the blue channel
func (p PixelFormat) IsBGR() bool {
	return p == FormatBGRx || p == FormatBGRA || p == FormatBGR
}

// String returns a readable description of the PixelFormat
func (p PixelFormat) String() string {
	switch p {
	case FormatBGRx:
		return "BGRx"
	case FormatBGRA:
		return "BGRA"
	case FormatBGR:
		return "BGR"
	case FormatRGBx:
		return "RGBx"
	case FormatRGBA:
		return "RGBA"
	case FormatRGB:
		return "RGB"
	default:
		return "UNKNOWN"
	}
}

// matType returns the gocv Mat type matching the pixel layout
func (p PixelFormat) matType() gocv.MatType {
	if p.Channels() == 3 {
		return gocv.MatTypeCV8UC3
	}
	return gocv.MatTypeCV8UC4
}

// Rect is the axis aligned bounding box of a region of interest in pixel
// coordinates
type Rect struct {
	X float64
	Y float64
	W float64
	H float64
}

// Valid reports if all coordinates are finite and the width and height are
// not negative
func (r Rect) Valid() bool {
	for _, v := range [4]float64{r.X, r.Y, r.W, r.H} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return r.W >= 0 && r.H >= 0
}

// Center returns the center point of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// UntrackedID is the identifier carried by a region that has not been
// assigned an object ID by a tracker
const UntrackedID = -1

// ROI is a region of interest within a Frame for a single detected object
// along with the inference outputs attached to it
type ROI struct {
	Rect Rect
	// ID is the one based tracking identifier of the object.  Any value
	// less than one means the object is untracked
	ID    int
	Label string
	// Tensors are the inference outputs attached to this region in the order
	// they were produced
	Tensors []Tensor
}

// Tracked reports if the region carries a valid tracking identifier
func (r ROI) Tracked() bool {
	return r.ID > 0
}

// Frame is a single decoded video frame and the regions detected in it
type Frame struct {
	Width  int
	Height int
	Format PixelFormat
	Buffer Buffer
	ROIs   []ROI
}

// Stride returns the number of bytes in a row of pixels
func (f *Frame) Stride() int {
	return f.Width * f.Format.Channels()
}

// MappedFrame is a Mat view onto a Frame's pixel buffer which is valid until
// Close is called.  The Mat shares memory with the mapped bytes so drawing on
// it changes the frame directly.
type MappedFrame struct {
	Mat    gocv.Mat
	Format PixelFormat
	frame  *Frame
}

// Map acquires access to the Frame's pixel buffer and wraps it in a Mat.  The
// returned MappedFrame must be closed to release the buffer.
func (f *Frame) Map(flags MapFlags) (*MappedFrame, error) {

	if f.Buffer == nil {
		return nil, fmt.Errorf("frame has no buffer: %w", ErrBufferMap)
	}

	channels := f.Format.Channels()

	if channels == 0 {
		return nil, fmt.Errorf("pixel format %s: %w", f.Format, ErrUnsupportedFormat)
	}

	data, err := f.Buffer.Map(flags)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBufferMap, err)
	}

	if f.Width <= 0 || f.Height <= 0 || len(data) < f.Height*f.Stride() {
		f.Buffer.Unmap()
		return nil, fmt.Errorf("buffer of %d bytes for %dx%d %s frame: %w",
			len(data), f.Width, f.Height, f.Format, ErrBufferSize)
	}

	size := f.Height * f.Stride()

	mat, err := gocv.NewMatFromBytes(f.Height, f.Width, f.Format.matType(), data[:size])

	if err != nil {
		f.Buffer.Unmap()
		return nil, fmt.Errorf("error creating Mat from buffer: %w", err)
	}

	return &MappedFrame{
		Mat:    mat,
		Format: f.Format,
		frame:  f,
	}, nil
}

// Close releases the Mat and the buffer mapping
func (m *MappedFrame) Close() {

	if m.frame == nil {
		return
	}

	m.Mat.Close()
	m.frame.Buffer.Unmap()
	m.frame = nil
}
