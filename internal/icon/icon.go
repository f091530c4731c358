// Package icon renders square app icons. Two renderers share the Renderer
// contract: TextStamp draws a short string on a solid background and
// LogoComposite pastes a color-inverted logo onto one.
package icon

import (
	"image"
	"image/color"
)

// Renderer produces one square image with the given edge length in pixels.
type Renderer interface {
	Name() string
	Render(size int) (image.Image, error)
}

var (
	Black = color.NRGBA{A: 0xff}
	White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// scaled returns int(size*frac), at least 1. The epsilon keeps products like
// 40*0.95 from landing just under a whole number.
func scaled(size int, frac float64) int {
	n := int(float64(size)*frac + 1e-9)
	if n < 1 {
		return 1
	}
	return n
}
