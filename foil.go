// Package foil generates NACA 4-digit airfoil surface geometry.
//
// The package is a pure, stateless pipeline: a 4-digit designation is
// decoded into camber and thickness fractions, expanded into a closed
// 2D surface contour, and embedded into one of the three orthogonal
// coordinate planes as a sequence of 3D points. File export and
// plotting live in the render package; the CLI lives under cmd/foilgen.
package foil

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Validation failures returned by the package. Wrapped errors carry
// detail; test with errors.Is.
var (
	// ErrInvalidCode indicates a malformed or degenerate 4-digit designation.
	ErrInvalidCode = errors.New("invalid NACA 4-digit code")
	// ErrInvalidParameter indicates a non-positive chord or a station
	// count below the minimum.
	ErrInvalidParameter = errors.New("invalid profile parameter")
	// ErrInvalidAxis indicates a normal-axis selector other than X, Y or Z.
	ErrInvalidAxis = errors.New("invalid normal axis")
)

// NACA4 is a decoded NACA 4-digit airfoil designation. All fields are
// fractions of the chord length.
type NACA4 struct {
	// M is the maximum camber (first digit, percent of chord).
	M float64
	// P is the chordwise position of maximum camber (second digit,
	// tenths of chord).
	P float64
	// T is the maximum thickness (last two digits, percent of chord).
	T float64
}

// ParseNACA4 decodes a 4-digit NACA designation such as "2412" or
// "0012". The code must be exactly four decimal digits and the
// thickness digits must be nonzero; a zero-thickness profile is
// degenerate and rejected.
func ParseNACA4(code string) (NACA4, error) {
	code = strings.TrimSpace(code)
	if len(code) != 4 {
		return NACA4{}, fmt.Errorf("%w: %q must be 4 digits", ErrInvalidCode, code)
	}
	var digits [4]int
	for i, c := range code {
		if c < '0' || c > '9' {
			return NACA4{}, fmt.Errorf("%w: %q contains non-digit characters", ErrInvalidCode, code)
		}
		digits[i] = int(c - '0')
	}
	tt := 10*digits[2] + digits[3]
	if tt == 0 {
		return NACA4{}, fmt.Errorf("%w: %q has zero thickness", ErrInvalidCode, code)
	}
	return NACA4{
		M: float64(digits[0]) / 100,
		P: float64(digits[1]) / 10,
		T: float64(tt) / 100,
	}, nil
}

// String returns the 4-digit designation, e.g. "NACA 2412".
func (n NACA4) String() string {
	return fmt.Sprintf("NACA %d%d%02d",
		int(math.Round(n.M*100)),
		int(math.Round(n.P*10)),
		int(math.Round(n.T*100)))
}

// Camber evaluates the mean camber line at normalized chordwise
// position x in [0,1]. It returns the camber height yc and the local
// slope dyc/dx. The line is piecewise parabolic, split at x = P.
// A zero M or P yields a symmetric profile with zero camber.
func (n NACA4) Camber(x float64) (yc, dyc float64) {
	if n.M == 0 || n.P == 0 {
		return 0, 0
	}
	m, p := n.M, n.P
	if x <= p {
		yc = m / (p * p) * (2*p*x - x*x)
		dyc = 2 * m / (p * p) * (p - x)
		return yc, dyc
	}
	q := 1 - p
	yc = m / (q * q) * ((1 - 2*p) + 2*p*x - x*x)
	dyc = 2 * m / (q * q) * (p - x)
	return yc, dyc
}

// HalfThickness evaluates the NACA 4-digit thickness distribution at
// normalized chordwise position x in [0,1], returning the
// half-thickness yt measured perpendicular to the camber line.
func (n NACA4) HalfThickness(x float64) float64 {
	sx := math.Sqrt(math.Max(x, 0))
	return 5 * n.T * (0.2969*sx - 0.1260*x - 0.3516*x*x + 0.2843*x*x*x - 0.1015*x*x*x*x)
}
