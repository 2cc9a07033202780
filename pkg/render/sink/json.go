package sink

import (
	"encoding/json"

	"github.com/matzehuels/fishbone/pkg/layout"
)

// RenderJSON marshals the layout as indented JSON. The output carries every
// anchor and label, so external tooling can re-render the diagram without
// recomputing the layout.
func RenderJSON(l layout.Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// ReadLayout parses a layout previously produced by RenderJSON.
func ReadLayout(data []byte) (layout.Layout, error) {
	var l layout.Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return layout.Layout{}, err
	}
	return l, nil
}
