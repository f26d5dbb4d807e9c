package foil

import (
	"fmt"
	"math"

	"github.com/soypat/foil/internal/d3"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"
)

// Axis selects the coordinate axis an embedded contour is normal to.
// That axis is held at zero for every output point.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// ParseAxis decodes a case-insensitive axis selector ("x", "Y", ...).
func ParseAxis(s string) (Axis, error) {
	switch s {
	case "x", "X":
		return AxisX, nil
	case "y", "Y":
		return AxisY, nil
	case "z", "Z":
		return AxisZ, nil
	}
	return 0, fmt.Errorf("%w: %q is not one of X, Y, Z", ErrInvalidAxis, s)
}

// String returns the axis letter.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Embed maps a 2D contour into 3D space on the plane normal to the
// given axis. The normal coordinate is zero for every point; the other
// two carry the contour values:
//
//	normal X: (0, x, y)
//	normal Y: (x, 0, y)
//	normal Z: (x, y, 0)
//
// Point order and count are preserved.
func Embed(contour []r2.Vec, normal Axis) ([]r3.Vec, error) {
	points := make([]r3.Vec, len(contour))
	switch normal {
	case AxisX:
		for i, p := range contour {
			points[i] = r3.Vec{Y: p.X, Z: p.Y}
		}
	case AxisY:
		for i, p := range contour {
			points[i] = r3.Vec{X: p.X, Z: p.Y}
		}
	case AxisZ:
		for i, p := range contour {
			points[i] = r3.Vec{X: p.X, Y: p.Y}
		}
	default:
		return nil, fmt.Errorf("%w: %v", ErrInvalidAxis, normal)
	}
	return points, nil
}

// Validate checks embedded geometry for non-finite coordinates and for
// the fully degenerate case where every point coincides.
func Validate(points []r3.Vec) error {
	if len(points) == 0 {
		return fmt.Errorf("%w: empty point sequence", ErrInvalidParameter)
	}
	for _, p := range points {
		if !isFinite(p.X) || !isFinite(p.Y) || !isFinite(p.Z) {
			return fmt.Errorf("%w: non-finite coordinate in generated geometry", ErrInvalidParameter)
		}
	}
	set := d3.Set(points)
	span := r3.Sub(set.Max(), set.Min())
	if span.X == 0 && span.Y == 0 && span.Z == 0 {
		return fmt.Errorf("%w: degenerate geometry, all points identical", ErrInvalidParameter)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
