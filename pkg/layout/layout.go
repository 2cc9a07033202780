// Package layout computes fishbone diagram geometry: where every spine
// segment, category branch, and cause leaf sits on the fixed canvas, and
// where each label attaches.
//
// The computation is a pure single pass. Compute selects one of three
// hand-tuned scale profiles from the category count, assigns categories to
// slot pairs alternating above and below the spine, and fans each
// category's causes out along its branch using a fixed offset table. The
// result is a Layout value the render package turns into draw calls; the
// two never feed back into each other.
//
// All coordinates are in diagram space: a [-5, 5] square with y up.
package layout

import (
	"strings"

	"github.com/matzehuels/fishbone/pkg/diagram"
)

// Layout is the complete computed geometry for one diagram. It carries the
// label texts alongside the anchors so it round-trips through JSON and the
// renderer needs nothing else.
type Layout struct {
	Problem    string      `json:"problem"`
	Profile    Profile     `json:"profile"`
	Placements []Placement `json:"placements"`
}

// Compute validates the diagram and lays out every category and cause.
// Any validation or placement failure aborts with no partial Layout:
// a partially laid-out diagram is not a supported state.
func Compute(d diagram.Diagram) (Layout, error) {
	if err := d.Validate(); err != nil {
		return Layout{}, err
	}

	profile, err := SelectProfile(len(d.Categories))
	if err != nil {
		return Layout{}, err
	}

	l := Layout{
		Problem:    d.DisplayProblem(),
		Profile:    profile,
		Placements: make([]Placement, 0, len(d.Categories)),
	}

	for i, cat := range d.Categories {
		p, err := PlaceCategory(i, strings.ToUpper(cat.Name), cat.Causes, profile)
		if err != nil {
			return Layout{}, err
		}
		l.Placements = append(l.Placements, p)
	}

	return l, nil
}
