package palette

import "errors"

var (
	// ErrExhausted is returned when no admissible color was found within the attempt cap.
	ErrExhausted = errors.New("no distinguishable color found")

	ErrNilRegistry = errors.New("palette: nil registry")
)
