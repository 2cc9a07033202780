package diagram

import "github.com/matzehuels/fishbone/pkg/errors"

// Validate checks the diagram against the fixed-slot model: 1..6 categories,
// 0..6 causes per category, and well-formed labels. It is called eagerly by
// the decoders and again by the layout engine, so invalid input fails before
// a single draw call is issued.
func (d *Diagram) Validate() error {
	if err := errors.ValidateCategoryCount(len(d.Categories)); err != nil {
		return err
	}

	for _, c := range d.Categories {
		if err := errors.ValidateLabel("category", c.Name); err != nil {
			return err
		}
		if err := errors.ValidateCauseCount(c.Name, len(c.Causes)); err != nil {
			return err
		}
		for _, cause := range c.Causes {
			if err := errors.ValidateLabel("cause", cause); err != nil {
				return err
			}
		}
	}

	if d.Problem != "" {
		if err := errors.ValidateLabel("problem", d.Problem); err != nil {
			return err
		}
	}

	return nil
}
