package layout_test

import (
	"fmt"

	"github.com/matzehuels/fishbone/pkg/diagram"
	"github.com/matzehuels/fishbone/pkg/layout"
)

func ExampleCompute() {
	d := diagram.Diagram{
		Problem: "Delivery delays",
		Categories: []diagram.Category{
			{Name: "Method", Causes: []string{"Cost", "Time"}},
			{Name: "Machine", Causes: []string{"Faulty"}},
		},
	}

	l, err := layout.Compute(d)
	if err != nil {
		panic(err)
	}

	fmt.Println("Problem:", l.Problem)
	fmt.Println("Placements:", len(l.Placements))
	fmt.Printf("Spine: %.1f to %.1f\n", l.Profile.SpineMin, l.Profile.SpineMax)
	fmt.Printf("Method branch: (%.1f, %.1f) top=%v\n",
		l.Placements[0].Category.Point.X, l.Placements[0].Category.Point.Y, l.Placements[0].Top)
	// Output:
	// Problem: DELIVERY DELAYS
	// Placements: 2
	// Spine: -2.1 to 2.0
	// Method branch: (1.6, 0.0) top=true
}

func ExampleSelectProfile() {
	p, err := layout.SelectProfile(5)
	if err != nil {
		panic(err)
	}

	fmt.Println("Slots:", len(p.Slots))
	fmt.Printf("Head: (%.0f, %.0f)\n", p.Head.X, p.Head.Y)
	// Output:
	// Slots: 3
	// Head: (4, 0)
}
