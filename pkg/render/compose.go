package render

import (
	"github.com/matzehuels/fishbone/pkg/layout"
	"github.com/matzehuels/fishbone/pkg/render/styles"
)

// Head wedge geometry: a right-facing half disc at the head position, with
// the problem text tucked just inside its flat edge.
const (
	headRadius     = 1.0
	headAngleStart = 270.0
	headAngleEnd   = 90.0
	headTextDX     = 0.1
	headTextDY     = -0.05
)

// Compose issues the full draw-call sequence for a computed layout:
// spine, head, tail, then every category and cause annotation in input
// order. It is infallible by construction; anything that can go wrong has
// already gone wrong in layout.Compute, before the canvas was touched.
func Compose(c Canvas, l layout.Layout, theme styles.Theme) {
	p := l.Profile

	// Spine and body glyphs first so annotations draw on top.
	c.Line(layout.Pt(p.SpineMin, 0), layout.Pt(p.SpineMax, 0), theme.Spine)
	c.Wedge(p.Head, headRadius, headAngleStart, headAngleEnd, theme.Body)
	c.Text(layout.Pt(p.Head.X+headTextDX, p.Head.Y+headTextDY), l.Problem, theme.Problem)
	c.Polygon(p.Tail[:], theme.Body)

	for _, pl := range l.Placements {
		c.Annotation(pl.Category.Point, pl.Category.Offset, pl.Name, theme.Category)
		for _, ca := range pl.Causes {
			c.Annotation(ca.Anchor.Point, ca.Anchor.Offset, ca.Text, theme.Cause)
		}
	}
}
