package pose

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"
)

// FocalLength is the focal length in pixels of the pinhole camera the axes
// are projected through
const FocalLength = 950.0

// DefaultLength is the length in pixels of each axis before projection
const DefaultLength = 50.0

// Angles is a head orientation in degrees
type Angles struct {
	Roll  float64
	Pitch float64
	Yaw   float64
}

// Point is a projected image coordinate
type Point struct {
	X float64
	Y float64
}

// Axes is the head pose glyph for one face.  The X, Y and Z directions are the
// rotated axis vectors relative to the center, and the End points are their
// projections onto the image plane.
type Axes struct {
	Center Point
	// X points to the subject's left, Y points up and Z points from the face
	// towards the camera
	X r3.Vec
	Y r3.Vec
	Z r3.Vec
	// XEnd and YEnd are the projected heads of the X and Y axes drawn from
	// Center
	XEnd Point
	YEnd Point
	// the Z axis is drawn from the projection of its tail behind the head to
	// ZEnd
	ZStart Point
	ZEnd   Point
}

// Rotation returns the 3x3 rotation matrix Rz(roll) * Ry(yaw) * Rx(pitch)
func Rotation(a Angles) *mat.Dense {

	roll := a.Roll * math.Pi / 180
	pitch := a.Pitch * math.Pi / 180
	yaw := a.Yaw * math.Pi / 180

	sp, cp := math.Sincos(pitch)
	sy, cy := math.Sincos(yaw)
	sr, cr := math.Sincos(roll)

	rx := mat.NewDense(3, 3, []float64{
		1, 0, 0,
		0, cp, -sp,
		0, sp, cp,
	})

	ry := mat.NewDense(3, 3, []float64{
		cy, 0, -sy,
		0, 1, 0,
		sy, 0, cy,
	})

	rz := mat.NewDense(3, 3, []float64{
		cr, -sr, 0,
		sr, cr, 0,
		0, 0, 1,
	})

	var zy mat.Dense
	zy.Mul(rz, ry)

	r := mat.NewDense(3, 3, nil)
	r.Mul(&zy, rx)

	return r
}

// rotate applies the rotation matrix to v
func rotate(r mat.Matrix, v r3.Vec) r3.Vec {

	var out mat.VecDense
	out.MulVec(r, mat.NewVecDense(3, []float64{v.X, v.Y, v.Z}))

	return r3.Vec{X: out.AtVec(0), Y: out.AtVec(1), Z: out.AtVec(2)}
}

// project maps a rotated axis vector onto the image plane.  The vector is
// pushed out to the focal distance so the head sits on the camera axis.
func project(v r3.Vec, cx, cy float64) Point {

	p := r3.Add(v, r3.Vec{Z: FocalLength})

	return Point{
		X: p.X/p.Z*FocalLength + cx,
		Y: p.Y/p.Z*FocalLength + cy,
	}
}

// Project calculates the head pose axes for the given angles centered on
// (cx, cy) with each axis scaled to length pixels
func Project(a Angles, cx, cy, length float64) Axes {

	r := Rotation(a)

	x := rotate(r, r3.Vec{X: length})
	y := rotate(r, r3.Vec{Y: -length})
	z := rotate(r, r3.Vec{Z: -length})
	zTail := rotate(r, r3.Vec{Z: length})

	return Axes{
		Center: Point{X: cx, Y: cy},
		X:      x,
		Y:      y,
		Z:      z,
		XEnd:   project(x, cx, cy),
		YEnd:   project(y, cx, cy),
		ZStart: project(zTail, cx, cy),
		ZEnd:   project(z, cx, cy),
	}
}
