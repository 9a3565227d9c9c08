package rgb

import (
	"fmt"
	"strconv"
)

// HexLen is the length of an encoded color.
const HexLen = 6

// Hex encodes the color as six uppercase hex digits, e.g. "C82061".
func (c Color) Hex() string {
	return fmt.Sprintf("%02X%02X%02X", c.red, c.green, c.blue)
}

// ParseHex decodes a six character hex string such as "C82061".
// Lower-case digits are accepted.
func ParseHex(s string) (Color, error) {
	if len(s) != HexLen {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	var channels [3]int
	for i := range channels {
		v, err := strconv.ParseUint(s[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHex, s)
		}
		channels[i] = int(v)
	}

	return New(channels[0], channels[1], channels[2]), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
func MustParseHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
