package render_test

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/soypat/foil/render"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestWriteXYZ(t *testing.T) {
	points := []r3.Vec{
		{X: 1, Y: 0.5, Z: 0},
		{X: 0.25, Y: -0.0625, Z: 0},
		{X: 0, Y: 0, Z: 0},
	}
	var buf bytes.Buffer
	if err := render.WriteXYZ(&buf, points); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(points) {
		t.Fatalf("wrote %d rows, want %d", len(lines), len(points))
	}
	for i, line := range lines {
		var x, y, z float64
		if _, err := fmt.Sscanf(line, "%f %f %f", &x, &y, &z); err != nil {
			t.Fatalf("row %d %q: %v", i, line, err)
		}
		p := points[i]
		if x != p.X || y != p.Y || z != p.Z {
			t.Errorf("row %d = (%g, %g, %g), want (%g, %g, %g)", i, x, y, z, p.X, p.Y, p.Z)
		}
	}
}

func TestWriteXYZEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := render.WriteXYZ(&buf, nil); err == nil {
		t.Error("WriteXYZ(nil) = nil, want error")
	}
}

func TestCreateXYZ(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profile.txt")
	points := []r3.Vec{{X: 1}, {X: 0, Y: 0.06}}
	if err := render.CreateXYZ(path, points); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(string(data), "\n"); got != len(points) {
		t.Errorf("file has %d rows, want %d", got, len(points))
	}
}
