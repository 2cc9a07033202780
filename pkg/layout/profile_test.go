package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/fishbone/pkg/errors"
)

func TestSelectProfile(t *testing.T) {
	tests := []struct {
		count     int
		wantSlots int
		wantHeadX float64
	}{
		{count: 1, wantSlots: 1, wantHeadX: 2},
		{count: 2, wantSlots: 1, wantHeadX: 2},
		{count: 3, wantSlots: 2, wantHeadX: 3},
		{count: 4, wantSlots: 2, wantHeadX: 3},
		{count: 5, wantSlots: 3, wantHeadX: 4},
		{count: 6, wantSlots: 3, wantHeadX: 4},
	}

	for _, tt := range tests {
		p, err := SelectProfile(tt.count)
		if err != nil {
			t.Fatalf("SelectProfile(%d) error = %v", tt.count, err)
		}
		if len(p.Slots) != tt.wantSlots {
			t.Errorf("SelectProfile(%d) slots = %d, want %d", tt.count, len(p.Slots), tt.wantSlots)
		}
		if p.Head.X != tt.wantHeadX {
			t.Errorf("SelectProfile(%d) head x = %v, want %v", tt.count, p.Head.X, tt.wantHeadX)
		}
	}
}

func TestSelectProfileSharedBands(t *testing.T) {
	// Counts in the same band get byte-identical profiles.
	for _, pair := range [][2]int{{1, 2}, {3, 4}, {5, 6}} {
		a, _ := SelectProfile(pair[0])
		b, _ := SelectProfile(pair[1])
		if diff := cmp.Diff(a, b); diff != "" {
			t.Errorf("profiles for counts %d and %d differ (-a +b):\n%s", pair[0], pair[1], diff)
		}
	}
}

func TestSelectProfileMonotonicSpread(t *testing.T) {
	// The spine extent widens with the category count: each denser band's
	// spine contains the sparser band's.
	p1, _ := SelectProfile(1)
	p3, _ := SelectProfile(3)
	p5, _ := SelectProfile(5)

	if !(p5.SpineMin < p3.SpineMin && p3.SpineMin < p1.SpineMin) {
		t.Errorf("spine min not widening: %v, %v, %v", p1.SpineMin, p3.SpineMin, p5.SpineMin)
	}
	if !(p5.SpineMax > p3.SpineMax && p3.SpineMax > p1.SpineMax) {
		t.Errorf("spine max not widening: %v, %v, %v", p1.SpineMax, p3.SpineMax, p5.SpineMax)
	}
	if !(p5.Head.X > p3.Head.X && p3.Head.X > p1.Head.X) {
		t.Errorf("head not moving out: %v, %v, %v", p1.Head.X, p3.Head.X, p5.Head.X)
	}
	for _, p := range []Profile{p1, p3, p5} {
		if p.Head.X != p.SpineMax {
			t.Errorf("head %v not at positive spine end %v", p.Head.X, p.SpineMax)
		}
		for _, pt := range p.Tail {
			if pt.X > p.SpineMin+0.2 {
				t.Errorf("tail point %v not at the negative spine end %v", pt, p.SpineMin)
			}
		}
	}
}

func TestSelectProfileInvalidCount(t *testing.T) {
	for _, count := range []int{0, -1, 7, 12} {
		_, err := SelectProfile(count)
		if !errors.Is(err, errors.ErrCodeInvalidCategoryCount) {
			t.Errorf("SelectProfile(%d) code = %v, want %v",
				count, errors.GetCode(err), errors.ErrCodeInvalidCategoryCount)
		}
	}
}
