// Package textfit estimates whether an icon label fits its canvas.
//
// Widths come from the fixed-advance basicfont face scaled to the target
// font size. That is coarse for proportional fonts, but good enough to flag
// labels that clearly overflow a small icon.
package textfit

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var face = basicfont.Face7x13

// Width returns the estimated rendered width of label at fontSize pixels.
func Width(label string, fontSize float64) float64 {
	adv := font.MeasureString(face, label)
	px := float64(adv) / 64
	return px * fontSize / float64(face.Height)
}

// Fits reports whether label, drawn at fontScale of a size×size canvas,
// stays within the canvas width.
func Fits(label string, size int, fontScale float64) bool {
	s := float64(size)
	return Width(label, s*fontScale) <= s
}
