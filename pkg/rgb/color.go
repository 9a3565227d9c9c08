package rgb

import "fmt"

const (
	// MinChannel and MaxChannel bound every channel value.
	MinChannel = 0
	MaxChannel = 255
)

// Color is an RGB triple. The zero value is black.
type Color struct {
	red   int
	green int
	blue  int
}

// New builds a color from channel values. Out-of-range values are ignored,
// leaving that channel at 0, so New(300, -50, 256) is black.
func New(red, green, blue int) Color {
	var c Color
	c.SetRed(red)
	c.SetGreen(green)
	c.SetBlue(blue)
	return c
}

func (c Color) Red() int { return c.red }
func (c Color) Green() int { return c.green }
func (c Color) Blue() int { return c.blue }

// SetRed stores v if it is a valid channel value and reports whether it did.
func (c *Color) SetRed(v int) bool {
	return setChannel(&c.red, v)
}

// SetGreen stores v if it is a valid channel value and reports whether it did.
func (c *Color) SetGreen(v int) bool {
	return setChannel(&c.green, v)
}

// SetBlue stores v if it is a valid channel value and reports whether it did.
func (c *Color) SetBlue(v int) bool {
	return setChannel(&c.blue, v)
}

func setChannel(dst *int, v int) bool {
	if v < MinChannel || v > MaxChannel {
		return false
	}
	*dst = v
	return true
}

func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.red, c.green, c.blue)
}

// Distance returns the squared Euclidean distance between two colors.
func Distance(a, b Color) int {
	dr := a.red - b.red
	dg := a.green - b.green
	db := a.blue - b.blue
	return dr*dr + dg*dg + db*db
}

// DistanceHex decodes hex and returns its distance to c.
func DistanceHex(c Color, hex string) (int, error) {
	other, err := ParseHex(hex)
	if err != nil {
		return 0, err
	}
	return Distance(c, other), nil
}
