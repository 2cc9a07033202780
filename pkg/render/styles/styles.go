// Package styles defines the visual vocabulary for fishbone rendering:
// stroke, fill, and text attributes, bundled into named themes.
//
// Styles are plain data. Drawing surfaces interpret them; the composer just
// picks which style each primitive gets.
package styles

// Theme names accepted by the pipeline and CLI.
const (
	ThemeClassic = "classic" // filled blue body, the traditional look
	ThemeMono    = "mono"    // black-on-white, print friendly
)

// Stroke describes line appearance.
type Stroke struct {
	Color string  // CSS color
	Width float64 // device units
}

// Fill describes filled-shape appearance.
type Fill struct {
	Color string
}

// Text describes label appearance. Boxed labels are drawn on a filled
// rectangle sized to the text.
type Text struct {
	Color   string
	Size    float64 // font size in device units
	Weight  string  // "" or "bold"
	Boxed   bool
	BoxFill string
}

// Theme bundles the styles for every element class of the diagram.
type Theme struct {
	Name     string
	Spine    Stroke // main spine line
	Body     Fill   // head wedge and tail polygon
	Problem  Text   // head label
	Category Text   // category labels (boxed)
	Cause    Text   // cause labels
}

// Classic is the traditional palette: the body in matplotlib's default
// blue, white bold labels on category boxes.
func Classic() Theme {
	const bodyBlue = "#1f77b4"
	return Theme{
		Name:     ThemeClassic,
		Spine:    Stroke{Color: bodyBlue, Width: 2},
		Body:     Fill{Color: bodyBlue},
		Problem:  Text{Color: "#ffffff", Size: 13, Weight: "bold"},
		Category: Text{Color: "#ffffff", Size: 13, Weight: "bold", Boxed: true, BoxFill: bodyBlue},
		Cause:    Text{Color: "#000000", Size: 12},
	}
}

// Mono is a black-on-white theme for print.
func Mono() Theme {
	return Theme{
		Name:     ThemeMono,
		Spine:    Stroke{Color: "#000000", Width: 2},
		Body:     Fill{Color: "#000000"},
		Problem:  Text{Color: "#ffffff", Size: 13, Weight: "bold"},
		Category: Text{Color: "#ffffff", Size: 13, Weight: "bold", Boxed: true, BoxFill: "#000000"},
		Cause:    Text{Color: "#000000", Size: 12},
	}
}

// ForName returns the theme for a ThemeName constant, defaulting to Classic
// for unknown names. Name validation happens in the pipeline, not here.
func ForName(name string) Theme {
	if name == ThemeMono {
		return Mono()
	}
	return Classic()
}
