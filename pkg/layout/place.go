package layout

import "github.com/matzehuels/fishbone/pkg/errors"

// Label placement constants, in diagram units. Offsets point back toward
// the tail so labels never cross the head.
const (
	// causeRowOffset is the vertical distance from the spine at which the
	// first cause of every category sits. Profile-independent.
	causeRowOffset = 1.7

	// Category labels sit up-and-back from the branch anchor, beyond the
	// cause fan (causes reach at most y ±3.2 from the spine).
	categoryLabelDX = -1.5
	categoryLabelDY = 3.8

	// Cause labels sit left of their anchor, nudged slightly down.
	causeLabelDX = -0.9
	causeLabelDY = -0.05
)

// CauseAnchor pairs a cause's text with its computed anchor.
type CauseAnchor struct {
	Text   string `json:"text"`
	Anchor Anchor `json:"anchor"`
}

// Placement is the per-category layout artifact: the branch anchor on the
// spine plus one anchor per cause. Computed fresh each pass and never
// mutated afterward.
type Placement struct {
	Name     string        `json:"name"`
	Top      bool          `json:"top"`
	Category Anchor        `json:"category"`
	Causes   []CauseAnchor `json:"causes,omitempty"`
}

// PlaceCauses computes one anchor per cause, fanning out from base along
// the branch. The anchor chains: each offset table entry shifts relative to
// the previous cause's anchor, not the original base, so the alternating
// signs in the table swing successive causes to opposite sides with
// strictly growing reach. All anchors share the same constant label offset.
func PlaceCauses(base Point, causes []string, top bool) ([]CauseAnchor, error) {
	if len(causes) == 0 {
		return nil, nil
	}

	out := make([]CauseAnchor, 0, len(causes))
	cur := base
	for i, text := range causes {
		off, err := OffsetAt(i)
		if err != nil {
			return nil, err
		}

		push := off.PushTop
		if !top {
			push = off.PushBottom
		}
		cur = Pt(cur.X-off.Pullback, cur.Y+push)

		out = append(out, CauseAnchor{
			Text: text,
			Anchor: Anchor{
				Point:  cur,
				Offset: Pt(causeLabelDX, causeLabelDY),
			},
		})
	}
	return out, nil
}

// PlaceCategory computes the full placement for the category at the given
// input index. Even indexes go above the spine, odd below; index/2 selects
// the slot pair shared by both rows. The bounds check runs before any
// placement work so an oversized diagram fails without partial results.
func PlaceCategory(index int, name string, causes []string, p Profile) (Placement, error) {
	if index < 0 || index >= errors.MaxCategories {
		return Placement{}, errors.New(errors.ErrCodeTooManyCategories,
			"category index %d outside supported slots (0..%d)", index, errors.MaxCategories-1)
	}

	slot := index / 2
	if slot >= len(p.Slots) {
		return Placement{}, errors.New(errors.ErrCodeTooManyCategories,
			"category index %d needs slot %d but profile has %d", index, slot, len(p.Slots))
	}

	top := index%2 == 0
	sign := 1.0
	if !top {
		sign = -1.0
	}

	causeAnchors, err := PlaceCauses(Pt(p.Slots[slot].CauseBaseX, sign*causeRowOffset), causes, top)
	if err != nil {
		return Placement{}, err
	}

	return Placement{
		Name: name,
		Top:  top,
		Category: Anchor{
			Point:  Pt(p.Slots[slot].BranchX, 0),
			Offset: Pt(categoryLabelDX, sign*categoryLabelDY),
		},
		Causes: causeAnchors,
	}, nil
}
