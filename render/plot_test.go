package render_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/soypat/foil"
	"github.com/soypat/foil/render"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot/cmpimg"
)

func testContour(t *testing.T) ([]r2.Vec, string) {
	t.Helper()
	n, err := foil.ParseNACA4("2412")
	if err != nil {
		t.Fatal(err)
	}
	c, err := foil.Contour(n, 1, 26)
	if err != nil {
		t.Fatal(err)
	}
	return c, n.String()
}

func TestPlotDeterministic(t *testing.T) {
	contour, name := testContour(t)
	var raw [2]bytes.Buffer
	for i := range raw {
		p, err := render.Plot(contour, name, 1)
		if err != nil {
			t.Fatal(err)
		}
		if err := render.WritePNG(&raw[i], p); err != nil {
			t.Fatal(err)
		}
	}
	eq, err := cmpimg.Equal("png", raw[0].Bytes(), raw[1].Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if !eq {
		t.Error("identical contours rendered different PNGs")
	}
}

func TestCreatePNG(t *testing.T) {
	contour, name := testContour(t)
	p, err := render.Plot(contour, name, 1)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "profile.png")
	if err := render.CreatePNG(path, p); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Error("saved PNG is empty")
	}
}

func TestPlotEmptyContour(t *testing.T) {
	if _, err := render.Plot(nil, "empty", 1); err == nil {
		t.Error("Plot(nil) = nil, want error")
	}
}
