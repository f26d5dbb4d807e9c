// Package render writes airfoil geometry to delimited text files and
// renders 2D contour plots.
package render

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
)

// CreateXYZ writes embedded airfoil points to a text file at path.
func CreateXYZ(path string, points []r3.Vec) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := WriteXYZ(file, points); err != nil {
		return err
	}
	return file.Close()
}

// WriteXYZ writes points to w as header-free whitespace-delimited
// "x y z" rows, one point per line, six decimal places.
func WriteXYZ(w io.Writer, points []r3.Vec) error {
	if len(points) == 0 {
		return errors.New("empty point slice")
	}
	bw := bufio.NewWriter(w)
	for _, p := range points {
		if _, err := fmt.Fprintf(bw, "%.6f %.6f %.6f\n", p.X, p.Y, p.Z); err != nil {
			return err
		}
	}
	return bw.Flush()
}
