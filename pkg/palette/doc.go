// Package palette allocates annotation colors that are easy to tell apart
// from every color already in use.
//
// # Architecture
//
//   • Registry is an ordered, mutex-guarded list of hex colors that are
//     currently in use. Populating it is the caller's job: add every color
//     assigned to a box, or enable WithAutoRegister on the allocator.
//   • Allocator is a rejection sampler. Each attempt draws red, green and
//     blue independently and uniformly from [0, 255) and accepts the
//     candidate only if its squared distance (see rgb.Distance) to every
//     registry entry is at least the threshold (default 100).
//   • Attempts are capped (default 1,000,000). When the cap is reached,
//     Allocate returns ErrExhausted. WithMaxAttempts(0) removes the cap; the
//     loop then never terminates on a registry dense enough to leave no
//     admissible color.
//
// # Usage
//
//	reg := palette.NewRegistry()
//	alloc := palette.New(reg, palette.WithAutoRegister(true))
//
//	hex, err := alloc.Allocate() // e.g. "3A9F0C"
//	if err != nil {
//	    // errors.Is(err, palette.ErrExhausted)
//	}
//
// Registry and Allocator are safe for concurrent use. Give independent
// callers their own Registry if their colors need not be distinct from each
// other.
package palette
