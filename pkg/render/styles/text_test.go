package styles

import "testing"

func TestTextWidth(t *testing.T) {
	if TextWidth("", 12) <= 0 {
		t.Error("empty text should still reserve some width")
	}
	if TextWidth("short", 12) >= TextWidth("much longer label", 12) {
		t.Error("longer text should be wider")
	}
	if TextWidth("label", 12) >= TextWidth("label", 24) {
		t.Error("larger font should be wider")
	}
}

func TestBoxSize(t *testing.T) {
	style := Text{Size: 13}
	w, h := BoxSize("MACHINE", style)
	if w <= TextWidth("MACHINE", style.Size) {
		t.Errorf("box width %v does not clear the text", w)
	}
	if h <= style.Size {
		t.Errorf("box height %v does not clear the font size", h)
	}
}

func TestEscapeXML(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: "a < b & c", want: "a &lt; b &amp; c"},
		{in: "two > one", want: "two &gt; one"},
	}

	for _, tt := range tests {
		if got := EscapeXML(tt.in); got != tt.want {
			t.Errorf("EscapeXML(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestForName(t *testing.T) {
	if ForName(ThemeMono).Name != ThemeMono {
		t.Error("ForName(mono) did not return the mono theme")
	}
	if ForName(ThemeClassic).Name != ThemeClassic {
		t.Error("ForName(classic) did not return the classic theme")
	}
	if ForName("unknown").Name != ThemeClassic {
		t.Error("unknown names should fall back to classic")
	}
}
