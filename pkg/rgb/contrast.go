package rgb

import "github.com/lucasb-eyer/go-colorful"

// WCAG midpoint where black and white text have equal contrast.
const contrastPivot = 0.179

var (
	Black = Color{}
	White = Color{red: MaxChannel, green: MaxChannel, blue: MaxChannel}
)

// Colorful converts c to a go-colorful color for blending or palette work.
func (c Color) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.red) / MaxChannel,
		G: float64(c.green) / MaxChannel,
		B: float64(c.blue) / MaxChannel,
	}
}

// FromColorful converts a go-colorful color, clamping it into the sRGB gamut.
func FromColorful(cc colorful.Color) Color {
	r, g, b := cc.Clamped().RGB255()
	return New(int(r), int(g), int(b))
}

// Luminance returns the relative luminance of c in [0, 1].
func (c Color) Luminance() float64 {
	_, y, _ := c.Colorful().Xyz()
	return y
}

// ContrastText returns black or white, whichever reads better on top of c.
func (c Color) ContrastText() Color {
	if c.Luminance() > contrastPivot {
		return Black
	}
	return White
}
