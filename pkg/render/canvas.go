// Package render turns a computed layout into draw calls against a Canvas,
// the externally-owned 2D drawing surface.
//
// The composer never touches pixels or output encodings. It walks the
// Layout in a fixed order and issues primitive calls with diagram-space
// coordinates; Canvas implementations (see the sink subpackage) own the
// mapping to their device space and the actual output format.
package render

import (
	"github.com/matzehuels/fishbone/pkg/layout"
	"github.com/matzehuels/fishbone/pkg/render/styles"
)

// Canvas is the drawing surface the composer draws onto. All coordinates
// are diagram-space points; angles are degrees, counter-clockwise, with 0
// at the positive x axis.
//
// Implementations must be deterministic: the same sequence of calls must
// produce the same output.
type Canvas interface {
	// Line draws a straight line between two points.
	Line(p1, p2 layout.Point, s styles.Stroke)

	// Wedge draws a filled circular wedge centered at center, sweeping
	// counter-clockwise from angleStart to angleEnd.
	Wedge(center layout.Point, radius, angleStart, angleEnd float64, s styles.Fill)

	// Polygon draws a filled closed polygon.
	Polygon(pts []layout.Point, s styles.Fill)

	// Annotation draws text at anchor+offset with an arrow from the text
	// back to the anchor.
	Annotation(anchor, offset layout.Point, text string, s styles.Text)

	// Text draws plain text at pos.
	Text(pos layout.Point, text string, s styles.Text)
}
