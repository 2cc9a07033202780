package layout

import "github.com/matzehuels/fishbone/pkg/errors"

// CauseOffset is one entry of the fixed cause offset table. Pullback shifts
// the running anchor back along x relative to the previous cause; PushTop
// and PushBottom shift it along y for categories above and below the spine
// respectively. Signs alternate from entry to entry so successive causes
// fan out on both sides of the branch instead of stacking.
type CauseOffset struct {
	Pullback   float64
	PushTop    float64
	PushBottom float64
}

// causeOffsets is the full table, indexed by a cause's position within its
// category. Entry 0 is zero: the first cause sits exactly on the cause base
// anchor. Magnitudes grow with the index so later causes land further out.
var causeOffsets = [errors.MaxCauses]CauseOffset{
	{0, 0, 0},
	{0.28, 0.5, -0.5},
	{-0.56, -1, 1},
	{0.84, 1.5, -1.5},
	{-1.1, -2, 2},
	{1.38, 2.5, -2.5},
}

// OffsetAt returns the offset table entry for the i-th cause of a category.
// Indexes beyond the table are a hard error: there is no support for more
// than six causes, and clamping would silently misplace the extras.
func OffsetAt(i int) (CauseOffset, error) {
	if i < 0 || i >= len(causeOffsets) {
		return CauseOffset{}, errors.New(errors.ErrCodeIndexOutOfRange,
			"cause index %d outside offset table (0..%d)", i, len(causeOffsets)-1)
	}
	return causeOffsets[i], nil
}
