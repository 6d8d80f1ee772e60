package geom

import (
	"embed"
	"log"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs polygons. It is not a
// full svg parser: it finds the single <polygon> element, reads its
// points attribute, and normalizes the result to counterclockwise
// winding. Fixtures are trusted input, so anything unexpected kills
// the test run.
//
// Fixtures are available by name in the fixtures/ directory, sans
// extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	polygonEls := rootEl.FindAll("polygon")
	if len(polygonEls) != 1 {
		log.Fatalf("Fixture %q must hold exactly one polygon, found %d", name, len(polygonEls))
	}

	var points []Vec2
	for _, pointString := range strings.Split(polygonEls[0].Attributes["points"], " ") {
		if pointString == "" {
			continue
		}
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			log.Fatalf("Invalid point string %q in fixture %q", pointString, name)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", coords[0], err)
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", coords[1], err)
		}
		points = append(points, Vec2{x, y})
	}

	poly, err := NewPolygon(points)
	if err != nil {
		log.Fatalf("Fixture %q is not a valid polygon: %v", name, err)
	}
	if poly.IsClockwise() {
		poly = poly.Reverse()
	}
	return poly
}
