// Package icon renders placeholder extension icons as SVG documents.
package icon

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"
)

// AccentColor fills the icon background.
const AccentColor = "#0066cc"

// Label placement relative to the canvas size.
const (
	FontScale     = 0.35
	BaselineScale = 0.65
)

// SVG returns a size×size document: a solid accent square with label
// centered on it in bold white text. The label is XML-escaped; output is
// deterministic for a given size and label.
func SVG(size int, label string) string {
	var buf bytes.Buffer
	buf.Grow(512)

	canvas := svg.New(&buf)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, fmt.Sprintf(`fill="%s"`, AccentColor))
	writeLabel(canvas, size, label)
	canvas.End()

	return buf.String()
}

// writeLabel emits the <text> element directly: svgo only takes integer
// coordinates, and the baseline and font size are fractional.
func writeLabel(canvas *svg.SVG, size int, label string) {
	s := float64(size)
	fmt.Fprintf(canvas.Writer,
		`<text x="%s" y="%s" font-family="Arial" font-size="%s" font-weight="bold" fill="white" text-anchor="middle">`,
		FormatNumber(s/2), FormatNumber(s*BaselineScale), FormatNumber(s*FontScale))
	xml.EscapeText(canvas.Writer, []byte(label))
	fmt.Fprintln(canvas.Writer, "</text>")
}

// FormatNumber prints v rounded to three decimals in its shortest form,
// so 128*0.35 prints as 44.8 and 64.0 prints as 64.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(round3(v), 'f', -1, 64)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// SVGPath swaps the image suffix of target for .svg, leaving the rest of
// the path untouched. Targets without an extension get .svg appended.
func SVGPath(target string) string {
	ext := filepath.Ext(target)
	if ext == "" {
		return target + ".svg"
	}
	return strings.TrimSuffix(target, ext) + ".svg"
}
