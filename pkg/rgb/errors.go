package rgb

import "errors"

var ErrInvalidHex = errors.New("invalid color format in hexadecimal")
