package boxname

import "errors"

var (
	ErrInvalidName    = errors.New("not a valid text box name")
	ErrInvalidContent = errors.New("unknown box content")
)
