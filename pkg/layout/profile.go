package layout

import "github.com/matzehuels/fishbone/pkg/errors"

// Slot holds the x-coordinates one category pair attaches at: BranchX for
// the branch anchor on the spine, CauseBaseX for the first cause row.
type Slot struct {
	BranchX    float64 `json:"branch_x"`
	CauseBaseX float64 `json:"cause_base_x"`
}

// Profile is one of three hand-tuned canvas scale bands. Rather than
// interpolating continuously, the diagram switches between discrete zoom
// levels so branch and cause spacing stays legible at any density without
// a collision solver.
type Profile struct {
	// SpineMin and SpineMax are the x-extent of the spine; y is always 0.
	SpineMin float64 `json:"spine_min"`
	SpineMax float64 `json:"spine_max"`

	// Head is the center of the problem head wedge at the positive end.
	Head Point `json:"head"`

	// Tail is the three-point polygon converging at the negative end.
	Tail [3]Point `json:"tail"`

	// Slots are the per-pair attachment coordinates. Categories 2k and 2k+1
	// share Slots[k]; only the slots a band can serve are present.
	Slots []Slot `json:"slots"`
}

// The three bands, keyed by category count: 1-2, 3-4, 5-6. Extents grow
// with count so the populated diagram always spans a comparable share of
// the fixed canvas.
var profiles = []Profile{
	{
		SpineMin: -2.1, SpineMax: 2,
		Head:  Pt(2, 0),
		Tail:  [3]Point{Pt(-2.8, 0.8), Pt(-2.8, -0.8), Pt(-2.0, -0.01)},
		Slots: []Slot{{1.6, 0.6}},
	},
	{
		SpineMin: -3.1, SpineMax: 3,
		Head:  Pt(3, 0),
		Tail:  [3]Point{Pt(-3.8, 0.8), Pt(-3.8, -0.8), Pt(-3.0, -0.01)},
		Slots: []Slot{{2.6, 1.6}, {-0.4, -1.4}},
	},
	{
		SpineMin: -4.1, SpineMax: 4,
		Head:  Pt(4, 0),
		Tail:  [3]Point{Pt(-4.8, 0.8), Pt(-4.8, -0.8), Pt(-4.0, -0.01)},
		Slots: []Slot{{3.5, 2.5}, {1, 0}, {-1.5, -2.5}},
	},
}

// SelectProfile picks the scale band for the given category count.
// Counts outside 1..6 are unsupported: the fixed-slot model has nowhere to
// put a seventh category, and an empty diagram has nothing to scale to.
func SelectProfile(categoryCount int) (Profile, error) {
	if err := errors.ValidateCategoryCount(categoryCount); err != nil {
		return Profile{}, err
	}
	return profiles[(categoryCount-1)/2], nil
}
