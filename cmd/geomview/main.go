// Command geomview triangulates polygons and renders the result.
// Input on stdin should be newline separated points in the form "x y",
// with each polygon separated by an extra newline.
//
// Polygons should be simple; winding does not matter, triangulation
// normalizes it. Holes are not supported.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/geom"
	"github.com/osuushi/geom/internal/vis"
)

var (
	out      = kingpin.Flag("out", "Output PNG path.").Default("/tmp/geomview.png").String()
	scale    = kingpin.Flag("scale", "Render scale, pixels per unit.").Default("1.0").Float64()
	cat      = kingpin.Flag("cat", "Write the image to the terminal (iTerm2).").Bool()
	labels   = kingpin.Flag("labels", "Label each triangle with a readable name.").Bool()
	describe = kingpin.Flag("describe", "Print a one-line summary per polygon.").Bool()
	outline  = kingpin.Flag("outline", "Render outlines only, without triangulating.").Bool()
)

func main() {
	kingpin.Parse()

	polygons, err := readPolygons(os.Stdin)
	kingpin.FatalIfError(err, "reading polygons")
	if len(polygons) == 0 {
		kingpin.Fatalf("no polygons on stdin")
	}

	if *describe {
		for _, poly := range polygons {
			fmt.Println(vis.Describe(poly))
		}
	}

	if *outline {
		kingpin.FatalIfError(vis.DrawPolygons(*out, polygons, *scale), "rendering %s", *out)
		fmt.Printf("Rendered %d polygon outlines to %s\n", len(polygons), *out)
	} else {
		var triangles []geom.Polygon
		for i, poly := range polygons {
			tris, err := poly.Triangulate()
			kingpin.FatalIfError(err, "triangulating polygon %d", i+1)
			triangles = append(triangles, tris...)
		}
		err = vis.DrawTriangulation(*out, polygons, triangles, *scale, *labels)
		kingpin.FatalIfError(err, "rendering %s", *out)
		fmt.Printf("Rendered %d polygons as %d triangles to %s\n", len(polygons), len(triangles), *out)
	}

	if *cat {
		kingpin.FatalIfError(vis.Cat(*out, os.Stdout), "writing image to terminal")
	}
}

func readPolygons(in io.Reader) ([]geom.Polygon, error) {
	var polygons []geom.Polygon
	var points []geom.Vec2

	// An empty line closes the polygon under construction, as does the
	// end of input.
	flush := func() error {
		if len(points) == 0 {
			return nil
		}
		poly, err := geom.NewPolygon(points)
		if err != nil {
			return errors.Wrapf(err, "polygon %d", len(polygons)+1)
		}
		polygons = append(polygons, poly)
		points = points[:0]
		return nil
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			if err := flush(); err != nil {
				return nil, err
			}
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return polygons, nil
}

func parsePoint(line string) (geom.Vec2, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return geom.Vec2{}, errors.Errorf("malformed point line %q, want \"x y\"", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geom.Vec2{}, errors.Wrapf(err, "bad x in %q", line)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geom.Vec2{}, errors.Wrapf(err, "bad y in %q", line)
	}
	return geom.V2(x, y), nil
}
