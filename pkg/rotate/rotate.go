// Package rotate turns points around a pivot in the XY plane.
package rotate

import "github.com/mesh-intelligence/bounded/pkg/trig"

// Point2D is a point in the plane.
type Point2D struct {
	X, Y float64
}

// Point3D is a point in space.
type Point3D struct {
	X, Y, Z float64
}

// Rotate2D rotates p counterclockwise around pivot by degrees.
func Rotate2D(p, pivot Point2D, degrees float64) Point2D {
	x, y := rotateXY(p.X-pivot.X, p.Y-pivot.Y, degrees)
	return Point2D{X: x + pivot.X, Y: y + pivot.Y}
}

// Rotate3D rotates p around the axis through pivot parallel to Z.
// The Z coordinate is carried through unchanged.
func Rotate3D(p, pivot Point3D, degrees float64) Point3D {
	x, y := rotateXY(p.X-pivot.X, p.Y-pivot.Y, degrees)
	return Point3D{X: x + pivot.X, Y: y + pivot.Y, Z: p.Z}
}

func rotateXY(dx, dy, degrees float64) (float64, float64) {
	sin := trig.Sin(degrees, trig.DefaultTerms)
	cos := trig.Cos(degrees, trig.DefaultTerms)
	return dx*cos - dy*sin, dx*sin + dy*cos
}
