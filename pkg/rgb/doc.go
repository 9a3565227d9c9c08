// Package rgb provides a small RGB color value used to tint annotation
// boxes, together with its hexadecimal wire form and a squared Euclidean
// distance metric.
//
// Channels are integers in the closed range [0, 255]. Writes outside that
// range are ignored: the channel keeps its previous value (0 for a freshly
// constructed color). Nothing is clamped. The Set* methods report whether a
// write was accepted so callers can detect a rejected value.
//
// # Usage
//
//	import "github.com/dmitrymomot/boxkit/pkg/rgb"
//
//	c := rgb.New(200, 32, 97)
//	c.Hex() // "C82061"
//
//	other, err := rgb.ParseHex("FF23C2")
//	if err != nil {
//	    // errors.Is(err, rgb.ErrInvalidHex)
//	}
//	d := rgb.Distance(c, other) // 12443
//
// Hex strings are exactly six characters, two uppercase hex digits per
// channel in red, green, blue order, without a leading "#".
//
// Distance is the sum of squared channel differences. It stays in integer
// arithmetic so threshold comparisons are exact.
//
// For presentation helpers the package bridges to
// github.com/lucasb-eyer/go-colorful (Colorful, FromColorful) and exposes
// Luminance and ContrastText to pick a readable label color.
package rgb
