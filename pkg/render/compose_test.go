package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/fishbone/pkg/diagram"
	"github.com/matzehuels/fishbone/pkg/layout"
	"github.com/matzehuels/fishbone/pkg/render/styles"
)

// drawOp records one canvas call for sequence assertions.
type drawOp struct {
	Kind   string
	Points []layout.Point
	Text   string
}

// recorder is a Canvas that logs calls instead of drawing.
type recorder struct {
	ops []drawOp
}

func (r *recorder) Line(p1, p2 layout.Point, _ styles.Stroke) {
	r.ops = append(r.ops, drawOp{Kind: "line", Points: []layout.Point{p1, p2}})
}

func (r *recorder) Wedge(center layout.Point, _, _, _ float64, _ styles.Fill) {
	r.ops = append(r.ops, drawOp{Kind: "wedge", Points: []layout.Point{center}})
}

func (r *recorder) Polygon(pts []layout.Point, _ styles.Fill) {
	r.ops = append(r.ops, drawOp{Kind: "polygon", Points: pts})
}

func (r *recorder) Annotation(anchor, offset layout.Point, text string, _ styles.Text) {
	r.ops = append(r.ops, drawOp{Kind: "annotation", Points: []layout.Point{anchor, offset}, Text: text})
}

func (r *recorder) Text(pos layout.Point, text string, _ styles.Text) {
	r.ops = append(r.ops, drawOp{Kind: "text", Points: []layout.Point{pos}, Text: text})
}

func testLayout(t *testing.T) layout.Layout {
	t.Helper()
	l, err := layout.Compute(diagram.Diagram{
		Categories: []diagram.Category{
			{Name: "Method", Causes: []string{"Cost", "Time"}},
			{Name: "Machine", Causes: []string{"Faulty"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return l
}

func TestComposeSequence(t *testing.T) {
	rec := &recorder{}
	Compose(rec, testLayout(t), styles.Classic())

	var kinds []string
	for _, op := range rec.ops {
		kinds = append(kinds, op.Kind)
	}

	// Spine, head wedge, head text, tail; then per category in input
	// order: one category annotation followed by its cause annotations.
	want := []string{
		"line", "wedge", "text", "polygon",
		"annotation", "annotation", "annotation", // METHOD + 2 causes
		"annotation", "annotation", // MACHINE + 1 cause
	}
	if diff := cmp.Diff(want, kinds); diff != "" {
		t.Fatalf("draw sequence mismatch (-want +got):\n%s", diff)
	}

	if rec.ops[2].Text != "PROBLEM" {
		t.Errorf("head text = %q, want PROBLEM", rec.ops[2].Text)
	}
	if rec.ops[4].Text != "METHOD" {
		t.Errorf("first annotation = %q, want METHOD", rec.ops[4].Text)
	}
	if rec.ops[7].Text != "MACHINE" {
		t.Errorf("fourth annotation = %q, want MACHINE", rec.ops[7].Text)
	}
}

func TestComposeSpineMatchesProfile(t *testing.T) {
	rec := &recorder{}
	l := testLayout(t)
	Compose(rec, l, styles.Classic())

	spine := rec.ops[0]
	want := []layout.Point{
		layout.Pt(l.Profile.SpineMin, 0),
		layout.Pt(l.Profile.SpineMax, 0),
	}
	if diff := cmp.Diff(want, spine.Points); diff != "" {
		t.Errorf("spine endpoints mismatch (-want +got):\n%s", diff)
	}

	if rec.ops[1].Points[0] != l.Profile.Head {
		t.Errorf("wedge center = %+v, want head %+v", rec.ops[1].Points[0], l.Profile.Head)
	}
	if diff := cmp.Diff(l.Profile.Tail[:], rec.ops[3].Points); diff != "" {
		t.Errorf("tail polygon mismatch (-want +got):\n%s", diff)
	}
}

func TestComposeDeterministic(t *testing.T) {
	l := testLayout(t)

	a, b := &recorder{}, &recorder{}
	Compose(a, l, styles.Classic())
	Compose(b, l, styles.Classic())

	if diff := cmp.Diff(a.ops, b.ops); diff != "" {
		t.Errorf("repeated Compose() differs (-first +second):\n%s", diff)
	}
}
