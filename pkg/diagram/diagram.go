// Package diagram defines the input model for fishbone (Ishikawa,
// cause-and-effect) diagrams.
//
// A diagram is a problem statement plus an ordered list of categories, each
// carrying an ordered list of causes. Category identity is positional: the
// first category in the input occupies the first slot above the spine, the
// second the first slot below it, and so on. Diagrams are read-only once
// constructed; the layout engine never mutates them.
package diagram

import "strings"

// DefaultProblem is the head label used when a diagram does not set one.
// It matches the historical hardcoded head text.
const DefaultProblem = "Problem"

// Category is one branch of the fishbone: a name and its ordered causes.
// Identity is the category's position in Diagram.Categories (0-indexed).
type Category struct {
	Name   string   `json:"name" toml:"name" yaml:"name"`
	Causes []string `json:"causes,omitempty" toml:"causes" yaml:"causes"`
}

// Diagram is the complete input for one layout-and-render pass.
type Diagram struct {
	Problem    string     `json:"problem,omitempty" toml:"problem" yaml:"problem"`
	Categories []Category `json:"categories" toml:"categories" yaml:"categories"`
}

// DisplayProblem returns the upper-cased head label, falling back to
// DefaultProblem when unset. Head and category labels are drawn upper-cased.
func (d *Diagram) DisplayProblem() string {
	p := d.Problem
	if p == "" {
		p = DefaultProblem
	}
	return strings.ToUpper(p)
}

// CauseCount returns the total number of causes across all categories.
func (d *Diagram) CauseCount() int {
	n := 0
	for _, c := range d.Categories {
		n += len(c.Causes)
	}
	return n
}
