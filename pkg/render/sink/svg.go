// Package sink renders computed layouts to output formats: SVG natively,
// PNG and PDF via conversion, and JSON for tooling.
package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/matzehuels/fishbone/pkg/layout"
	"github.com/matzehuels/fishbone/pkg/render"
	"github.com/matzehuels/fishbone/pkg/render/styles"
)

const (
	// DefaultWidth and DefaultHeight give the frame the 10:6 aspect the
	// layout profiles were tuned against.
	DefaultWidth  = 800.0
	DefaultHeight = 480.0

	// worldHalf is the half-extent of diagram space in each axis.
	worldHalf = 5.0
)

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	theme  styles.Theme
	width  float64
	height float64
}

// WithTheme sets the visual theme (default: classic).
func WithTheme(t styles.Theme) SVGOption {
	return func(r *svgRenderer) { r.theme = t }
}

// WithFrame sets the output frame size in pixels.
func WithFrame(width, height float64) SVGOption {
	return func(r *svgRenderer) { r.width, r.height = width, height }
}

// RenderSVG renders the layout as a standalone SVG document.
func RenderSVG(l layout.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{theme: styles.Classic(), width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&r)
	}

	c := &svgCanvas{width: r.width, height: r.height}
	fmt.Fprintf(&c.buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		r.width, r.height, r.width, r.height)
	c.writeDefs()

	render.Compose(c, l, r.theme)

	c.buf.WriteString("</svg>\n")
	return c.buf.Bytes()
}

// svgCanvas implements render.Canvas, mapping diagram space onto the SVG
// viewport: x in [-5,5] onto [0,width], y flipped onto [0,height].
type svgCanvas struct {
	buf    bytes.Buffer
	width  float64
	height float64
}

func (c *svgCanvas) writeDefs() {
	c.buf.WriteString("  <defs>\n")
	c.buf.WriteString(`    <marker id="arrow" viewBox="0 0 8 8" refX="7" refY="4" markerWidth="7" markerHeight="7" orient="auto-start-reverse"><path d="M0,0 L8,4 L0,8 z" fill="#000000"/></marker>` + "\n")
	c.buf.WriteString("  </defs>\n")
}

// device maps a diagram-space point to viewport coordinates.
func (c *svgCanvas) device(p layout.Point) (x, y float64) {
	x = (p.X + worldHalf) / (2 * worldHalf) * c.width
	y = (worldHalf - p.Y) / (2 * worldHalf) * c.height
	return x, y
}

// radii maps a diagram-space radius to viewport radii. The frame is not
// square, so circles in diagram space render as ellipses, matching the
// stretched axes of the original figure.
func (c *svgCanvas) radii(r float64) (rx, ry float64) {
	return r / (2 * worldHalf) * c.width, r / (2 * worldHalf) * c.height
}

func (c *svgCanvas) Line(p1, p2 layout.Point, s styles.Stroke) {
	x1, y1 := c.device(p1)
	x2, y2 := c.device(p2)
	fmt.Fprintf(&c.buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		x1, y1, x2, y2, s.Color, s.Width)
}

func (c *svgCanvas) Wedge(center layout.Point, radius, angleStart, angleEnd float64, s styles.Fill) {
	cx, cy := c.device(center)
	rx, ry := c.radii(radius)

	// Arc endpoints for counter-clockwise sweep in diagram space (y up);
	// the y flip makes the on-screen sweep counter-clockwise as well, so
	// the SVG sweep flag stays 0.
	sx := cx + rx*math.Cos(angleStart*math.Pi/180)
	sy := cy - ry*math.Sin(angleStart*math.Pi/180)
	ex := cx + rx*math.Cos(angleEnd*math.Pi/180)
	ey := cy - ry*math.Sin(angleEnd*math.Pi/180)

	span := math.Mod(angleEnd-angleStart+360, 360)
	large := 0
	if span > 180 {
		large = 1
	}

	fmt.Fprintf(&c.buf, `  <path d="M%.2f,%.2f L%.2f,%.2f A%.2f,%.2f 0 %d 0 %.2f,%.2f z" fill="%s"/>`+"\n",
		cx, cy, sx, sy, rx, ry, large, ex, ey, s.Color)
}

func (c *svgCanvas) Polygon(pts []layout.Point, s styles.Fill) {
	c.buf.WriteString(`  <polygon points="`)
	for i, p := range pts {
		x, y := c.device(p)
		if i > 0 {
			c.buf.WriteByte(' ')
		}
		fmt.Fprintf(&c.buf, "%.2f,%.2f", x, y)
	}
	fmt.Fprintf(&c.buf, `" fill="%s"/>`+"\n", s.Color)
}

func (c *svgCanvas) Annotation(anchor, offset layout.Point, text string, s styles.Text) {
	ax, ay := c.device(anchor)
	tx, ty := c.device(anchor.Add(offset))

	fmt.Fprintf(&c.buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="#000000" stroke-width="1" marker-end="url(#arrow)"/>`+"\n",
		tx, ty, ax, ay)

	if s.Boxed {
		w, h := styles.BoxSize(text, s)
		fmt.Fprintf(&c.buf, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" fill="%s"/>`+"\n",
			tx-w/2, ty-h/2, w, h, s.BoxFill)
	}

	c.text(tx, ty, text, s, "middle")
}

func (c *svgCanvas) Text(pos layout.Point, text string, s styles.Text) {
	x, y := c.device(pos)
	c.text(x, y, text, s, "start")
}

func (c *svgCanvas) text(x, y float64, text string, s styles.Text, anchor string) {
	weight := ""
	if s.Weight != "" {
		weight = fmt.Sprintf(` font-weight="%s"`, s.Weight)
	}
	fmt.Fprintf(&c.buf, `  <text x="%.2f" y="%.2f" font-size="%.1f" fill="%s" text-anchor="%s" dominant-baseline="central"%s>%s</text>`+"\n",
		x, y, s.Size, s.Color, anchor, weight, styles.EscapeXML(text))
}
