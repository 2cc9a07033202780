package diagram

import (
	"strings"
	"testing"

	"github.com/matzehuels/fishbone/pkg/errors"
)

func TestDisplayProblem(t *testing.T) {
	tests := []struct {
		name    string
		problem string
		want    string
	}{
		{name: "set", problem: "Delivery delays", want: "DELIVERY DELAYS"},
		{name: "default", problem: "", want: "PROBLEM"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Diagram{Problem: tt.problem}
			if got := d.DisplayProblem(); got != tt.want {
				t.Errorf("DisplayProblem() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCauseCount(t *testing.T) {
	d := Diagram{Categories: []Category{
		{Name: "Method", Causes: []string{"Cost", "Time"}},
		{Name: "Machine", Causes: []string{"Faulty"}},
		{Name: "People"},
	}}
	if got := d.CauseCount(); got != 3 {
		t.Errorf("CauseCount() = %d, want 3", got)
	}
}

func TestValidate(t *testing.T) {
	valid := func(n int) []Category {
		cats := make([]Category, n)
		for i := range cats {
			cats[i] = Category{Name: "Category"}
		}
		return cats
	}

	tests := []struct {
		name     string
		d        Diagram
		wantCode errors.Code
	}{
		{
			name: "single category",
			d:    Diagram{Categories: valid(1)},
		},
		{
			name: "six categories with causes",
			d: Diagram{Categories: []Category{
				{Name: "a", Causes: []string{"1", "2", "3", "4", "5", "6"}},
				{Name: "b"}, {Name: "c"}, {Name: "d"}, {Name: "e"}, {Name: "f"},
			}},
		},
		{
			name:     "no categories",
			d:        Diagram{},
			wantCode: errors.ErrCodeInvalidCategoryCount,
		},
		{
			name:     "seven categories",
			d:        Diagram{Categories: valid(7)},
			wantCode: errors.ErrCodeInvalidCategoryCount,
		},
		{
			name: "seven causes",
			d: Diagram{Categories: []Category{
				{Name: "a", Causes: []string{"1", "2", "3", "4", "5", "6", "7"}},
			}},
			wantCode: errors.ErrCodeIndexOutOfRange,
		},
		{
			name:     "empty category name",
			d:        Diagram{Categories: []Category{{Name: ""}}},
			wantCode: errors.ErrCodeInvalidLabel,
		},
		{
			name: "empty cause label",
			d: Diagram{Categories: []Category{
				{Name: "a", Causes: []string{""}},
			}},
			wantCode: errors.ErrCodeInvalidLabel,
		},
		{
			name: "oversized problem label",
			d: Diagram{
				Problem:    strings.Repeat("p", 300),
				Categories: valid(1),
			},
			wantCode: errors.ErrCodeInvalidLabel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if tt.wantCode == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantCode) {
				t.Errorf("Validate() code = %v, want %v", errors.GetCode(err), tt.wantCode)
			}
		})
	}
}
