package foil

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// cosineSpacing returns n chordwise stations on [0,1] clustered towards
// both ends, x_i = (1 - cos θ_i)/2 with θ_i linear in [0,π]. The
// clustering follows contour curvature at the leading and trailing
// edges, which is where uniform spacing underresolves the profile.
func cosineSpacing(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		beta := math.Pi * float64(i) / float64(n-1)
		x[i] = 0.5 * (1 - math.Cos(beta))
	}
	return x
}

// Contour generates the closed surface contour of an airfoil with the
// given chord length, sampled at stations cosine-spaced points per
// surface. The thickness is offset perpendicular to the camber line.
//
// Points run along the upper surface from trailing edge to leading
// edge, then along the lower surface back to the trailing edge. The
// shared leading-edge point is emitted once, so the result has
// 2*stations - 1 points and traces a closed, non-self-intersecting
// loop.
func Contour(n NACA4, chord float64, stations int) ([]r2.Vec, error) {
	if chord <= 0 {
		return nil, fmt.Errorf("%w: chord %g must be positive", ErrInvalidParameter, chord)
	}
	if stations < 2 {
		return nil, fmt.Errorf("%w: %d stations per surface, need at least 2", ErrInvalidParameter, stations)
	}
	x := cosineSpacing(stations)
	upper := make([]r2.Vec, stations)
	lower := make([]r2.Vec, stations)
	for i, xi := range x {
		yc, dyc := n.Camber(xi)
		yt := n.HalfThickness(xi)
		theta := math.Atan(dyc)
		sin, cos := math.Sincos(theta)
		upper[i] = r2.Scale(chord, r2.Vec{X: xi - yt*sin, Y: yc + yt*cos})
		lower[i] = r2.Scale(chord, r2.Vec{X: xi + yt*sin, Y: yc - yt*cos})
	}
	contour := make([]r2.Vec, 0, 2*stations-1)
	for i := stations - 1; i >= 0; i-- {
		contour = append(contour, upper[i])
	}
	// lower[0] is the leading edge already emitted from the upper pass.
	contour = append(contour, lower[1:]...)
	return contour, nil
}
