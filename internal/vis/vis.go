// Package vis renders polygons and triangulations to PNG for
// debugging, and prints them inline on terminals that can show images.
// Nothing here is part of the library's contract; it exists so you can
// look at a shape instead of squinting at coordinates.
package vis

import (
	"fmt"
	"io"
	"math"

	"github.com/fogleman/gg"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/geom"
	"github.com/osuushi/geom/dbg"
)

// Padding around the shapes so strokes at the bounds aren't clipped.
const drawPadding = 20

// Translucent fills cycled across triangles so neighbors stay
// distinguishable.
var palette = [][3]float64{
	{0.3, 0.2, 1},
	{1, 1, 0},
	{0, 0.8, 0.4},
	{1, 0.4, 0.1},
	{0.8, 0.2, 0.8},
	{0.2, 0.9, 0.9},
}

// DrawPolygons renders the polygons to a PNG at path: even-odd fill
// with stroked outlines on a black background. The context is flipped
// so y-up geometry renders the way the coordinates read.
func DrawPolygons(path string, polys []geom.Polygon, scale float64) error {
	c, err := newContext(polys, scale)
	if err != nil {
		return err
	}
	c.SetFillRuleEvenOdd()
	c.SetLineWidth(2)
	for _, poly := range polys {
		tracePath(c, poly)
	}
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()
	return c.SavePNG(path)
}

// DrawTriangulation renders the triangles filled from the palette,
// then the outlines of the original polygons on top. With label set,
// each triangle is tagged at its centroid with its dbg.Name.
func DrawTriangulation(path string, polys, tris []geom.Polygon, scale float64, label bool) error {
	all := make([]geom.Polygon, 0, len(polys)+len(tris))
	all = append(all, polys...)
	all = append(all, tris...)
	c, err := newContext(all, scale)
	if err != nil {
		return err
	}

	for i, tri := range tris {
		color := palette[i%len(palette)]
		tracePath(c, tri)
		c.SetRGBA(color[0], color[1], color[2], 0.5)
		c.Fill()
	}

	c.SetLineWidth(1)
	for _, tri := range tris {
		tracePath(c, tri)
	}
	c.SetRGB(0, 1, 0)
	c.Stroke()

	c.SetLineWidth(2)
	for _, poly := range polys {
		tracePath(c, poly)
	}
	c.SetRGB(0, 1, 1)
	c.Stroke()

	if label {
		c.SetRGB(1, 1, 1)
		for _, tri := range tris {
			center := tri.Centroid()
			// Text must draw in native coordinates or the y flip
			// mirrors it.
			x, y := c.TransformPoint(center.X, center.Y)
			c.Push()
			c.Identity()
			c.DrawStringAnchored(dbg.Name(tri), x, y, 0.5, 0.5)
			c.Pop()
		}
	}
	return c.SavePNG(path)
}

// Cat writes the image at path inline to w, for terminals that speak
// the iTerm2 image protocol.
func Cat(path string, w io.Writer) error {
	return imgcat.CatFile(path, w)
}

// Describe returns a one-line colored summary of a polygon: its name,
// winding (green for counterclockwise, red for clockwise), vertex
// count, and area.
func Describe(p geom.Polygon) string {
	winding := aurora.Green("ccw").String()
	if p.IsClockwise() {
		winding = aurora.Red("cw").String()
	}
	return fmt.Sprintf("%s %s: %s vertices, area %s",
		dbg.Name(p),
		winding,
		aurora.Cyan(fmt.Sprintf("%d", len(p.Points()))).String(),
		aurora.Cyan(fmt.Sprintf("%g", p.Area())).String(),
	)
}

// newContext builds a gg context sized to the polygons' bounds plus
// padding, black background, flipped and scaled so geometry draws in
// its own y-up coordinates.
func newContext(polys []geom.Polygon, scale float64) (*gg.Context, error) {
	if len(polys) == 0 {
		return nil, errors.New("nothing to draw")
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, poly := range polys {
		for _, p := range poly.Points() {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Pad, scale, and shift the minimum corner to the origin.
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)
	return c, nil
}

func tracePath(c *gg.Context, poly geom.Polygon) {
	points := poly.Points()
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}
