package icon

import (
	"encoding/xml"
	"io"
	"strings"
	"testing"
)

func TestSVG_128(t *testing.T) {
	doc := SVG(128, "SAS")

	for _, want := range []string{
		`width="128" height="128"`,
		`xmlns="http://www.w3.org/2000/svg"`,
		`>SAS<`,
		`font-size="44.8"`,
		`y="83.2"`,
		`x="64"`,
		`fill="#0066cc"`,
		`fill="white"`,
		`text-anchor="middle"`,
		`font-weight="bold"`,
	} {
		if !strings.Contains(doc, want) {
			t.Errorf("missing %q in:\n%s", want, doc)
		}
	}
}

func TestSVG_16(t *testing.T) {
	doc := SVG(16, "S")
	if !strings.Contains(doc, `width="16" height="16"`) {
		t.Errorf("dimensions missing in:\n%s", doc)
	}
	if !strings.Contains(doc, ">S<") {
		t.Errorf("label missing in:\n%s", doc)
	}
	if !strings.Contains(doc, `font-size="5.6"`) {
		t.Errorf("font size: want 5.6 in:\n%s", doc)
	}
}

func TestSVG_FixedSpecs(t *testing.T) {
	tests := []struct {
		size  int
		label string
	}{
		{128, "SAS"},
		{48, "SAS"},
		{16, "S"},
	}
	for _, tt := range tests {
		doc := SVG(tt.size, tt.label)
		dims := `width="` + itoa(tt.size) + `" height="` + itoa(tt.size) + `"`
		if !strings.Contains(doc, dims) {
			t.Errorf("size %d: missing %s", tt.size, dims)
		}
		if !strings.Contains(doc, ">"+tt.label+"<") {
			t.Errorf("size %d: missing label %q", tt.size, tt.label)
		}
	}
}

func TestSVG_Deterministic(t *testing.T) {
	a := SVG(48, "SAS")
	b := SVG(48, "SAS")
	if a != b {
		t.Fatalf("output differs between runs:\n%s\n---\n%s", a, b)
	}
}

func TestSVG_FractionalRounding(t *testing.T) {
	// 48*0.35 is 16.799999999999997 in float64.
	doc := SVG(48, "SAS")
	if !strings.Contains(doc, `font-size="16.8"`) {
		t.Errorf("font size not rounded in:\n%s", doc)
	}
	if !strings.Contains(doc, `y="31.2"`) {
		t.Errorf("baseline not rounded in:\n%s", doc)
	}
}

func TestSVG_WellFormed(t *testing.T) {
	for _, label := range []string{"SAS", "", "a<b&c", strings.Repeat("X", 200)} {
		dec := xml.NewDecoder(strings.NewReader(SVG(32, label)))
		for {
			_, err := dec.Token()
			if err == io.EOF {
				break
			}
			if err != nil {
				t.Fatalf("label %q: not well-formed: %v", label, err)
			}
		}
	}
}

func TestSVG_EscapesLabel(t *testing.T) {
	doc := SVG(32, `<script>`)
	if strings.Contains(doc, "<script>") {
		t.Errorf("label embedded unescaped:\n%s", doc)
	}
	if !strings.Contains(doc, "&lt;script&gt;") {
		t.Errorf("escaped label missing:\n%s", doc)
	}
}

func TestSVGPath(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"extension/icon48.png", "extension/icon48.svg"},
		{"extension/icon128.png", "extension/icon128.svg"},
		{"icon16.png", "icon16.svg"},
		{"a.png.dir/icon.png", "a.png.dir/icon.svg"},
		{"extension/icon", "extension/icon.svg"},
	}
	for _, tt := range tests {
		if got := SVGPath(tt.in); got != tt.want {
			t.Errorf("SVGPath(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{64, "64"},
		{44.8, "44.8"},
		{128 * 0.65, "83.2"},
		{48 * 0.35, "16.8"},
		{0.0004, "0"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func itoa(n int) string {
	return FormatNumber(float64(n))
}
