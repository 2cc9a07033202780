package styles

import (
	"bytes"
	"encoding/xml"
)

const (
	fontCharWidth = 0.55 // average glyph width as a fraction of font size
	boxPadX       = 8.0
	boxPadY       = 5.0
)

// TextWidth estimates the rendered width of s at the given font size.
// A character-width heuristic is enough here: boxes only need to clear
// their label, not typeset it.
func TextWidth(s string, size float64) float64 {
	n := len([]rune(s))
	if n < 1 {
		n = 1
	}
	return float64(n) * size * fontCharWidth
}

// BoxSize returns the width and height of the rectangle behind a boxed
// label, including padding.
func BoxSize(s string, t Text) (w, h float64) {
	return TextWidth(s, t.Size) + 2*boxPadX, t.Size + 2*boxPadY
}

// EscapeXML escapes s for safe embedding in SVG text content.
func EscapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
