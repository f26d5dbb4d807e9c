package render

import (
	"errors"
	"image/color"
	"io"
	"os"

	"github.com/soypat/foil/internal/d2"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Figure size of saved plots. The 2:1 aspect suits airfoil sections,
// which are an order of magnitude wider than they are thick.
const (
	plotWidth  = 8 * vg.Inch
	plotHeight = 4 * vg.Inch
)

// Plot builds a 2D figure of the airfoil contour with a dashed chord
// reference line. name labels the contour in the legend and title.
func Plot(contour []r2.Vec, name string, chord float64) (*plot.Plot, error) {
	if len(contour) == 0 {
		return nil, errors.New("empty contour")
	}
	pts := make(plotter.XYs, len(contour))
	for i, v := range contour {
		pts[i].X = v.X
		pts[i].Y = v.Y
	}
	p := plot.New()
	p.Title.Text = name
	p.X.Label.Text = "x (chord)"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())
	if err := plotutil.AddLinePoints(p, name, pts); err != nil {
		return nil, err
	}
	chordLine, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: chord, Y: 0}})
	if err != nil {
		return nil, err
	}
	chordLine.LineStyle.Color = color.Black
	chordLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(chordLine)
	p.Legend.Add("chord line", chordLine)
	setAspect(p, contour)
	return p, nil
}

// CreatePNG writes the plot to a PNG file at path.
func CreatePNG(path string, p *plot.Plot) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := WritePNG(file, p); err != nil {
		return err
	}
	return file.Close()
}

// WritePNG renders the plot as a PNG at the standard figure size.
func WritePNG(w io.Writer, p *plot.Plot) error {
	wt, err := p.WriterTo(plotWidth, plotHeight, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}

// setAspect widens the axis ranges so a chord unit spans the same
// canvas distance on both axes. Without this the thin section is
// stretched to fill the figure and the profile shape is unreadable.
func setAspect(p *plot.Plot, contour []r2.Vec) {
	set := d2.Set(contour)
	min, max := set.Min(), set.Max()
	const aspect = float64(plotWidth) / float64(plotHeight)
	spanX := max.X - min.X
	spanY := max.Y - min.Y
	if spanX == 0 && spanY == 0 {
		return
	}
	if spanY < spanX/aspect {
		cy := (min.Y + max.Y) / 2
		half := spanX / aspect / 2
		p.X.Min, p.X.Max = min.X, max.X
		p.Y.Min, p.Y.Max = cy-half, cy+half
		return
	}
	cx := (min.X + max.X) / 2
	half := spanY * aspect / 2
	p.Y.Min, p.Y.Max = min.Y, max.Y
	p.X.Min, p.X.Max = cx-half, cx+half
}
