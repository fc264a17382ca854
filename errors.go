package roiannotate

import "errors"

var (
	// ErrBufferMap is returned when a frame's pixel buffer could not be
	// acquired
	ErrBufferMap = errors.New("buffer could not be mapped")
	// ErrBufferMapped is returned when mapping a buffer that is already mapped
	ErrBufferMapped = errors.New("buffer is already mapped")
	// ErrBufferSize is returned when the pixel buffer is smaller than the frame
	// dimensions require
	ErrBufferSize = errors.New("buffer too small for frame")
	// ErrUnsupportedFormat is returned for pixel formats the renderer can't
	// draw on
	ErrUnsupportedFormat = errors.New("unsupported pixel format")
	// ErrInvalidGeometry is returned for regions with non finite coordinates or
	// a negative width or height
	ErrInvalidGeometry = errors.New("invalid region geometry")
)
