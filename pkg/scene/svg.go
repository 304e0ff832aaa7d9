package scene

import (
	"io"

	"github.com/ajstarks/svgo"

	"github.com/yunhao-qian/light2d/pkg/geometry"
)

// svgScale maps world units to SVG pixels for the debug preview.
const svgScale = 40.0

// WritePreviewSVG draws the scene's render region and every circle
// entity as an SVG document, letting a maintainer sanity-check entity
// placement before running a potentially expensive render.
func WritePreviewSVG(w io.Writer, s *Scene) {
	width := int((s.Region.Max.X - s.Region.Min.X) * svgScale)
	height := int((s.Region.Max.Y - s.Region.Min.Y) * svgScale)

	canvas := svg.New(w)
	canvas.Start(width, height)

	canvas.Rect(0, 0, width, height, "fill:white;stroke:black;stroke-width:1")

	for _, e := range s.Entities {
		circle, ok := e.Shape.(*geometry.Circle)
		if !ok {
			continue
		}
		cx, cy := toSVGCoords(circle.Center.X, circle.Center.Y, s)
		r := int(circle.Radius * svgScale)
		canvas.Circle(cx, cy, r, "fill:lightgray;stroke:black;stroke-width:1;fill-opacity:0.6")
	}

	canvas.End()
}

// toSVGCoords converts a world-space point to SVG pixel coordinates,
// flipping y because SVG's origin is top-left while this renderer's
// world space has y increasing upward.
func toSVGCoords(x, y float64, s *Scene) (int, int) {
	px := (x - s.Region.Min.X) * svgScale
	py := (s.Region.Max.Y - y) * svgScale
	return int(px), int(py)
}
