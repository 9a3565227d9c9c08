package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Color records a hex color under the key "color".
func Color(hex string) slog.Attr {
	return slog.String("color", hex)
}

// BoxName records an encoded box name under the key "box_name".
func BoxName(name string) slog.Attr {
	return slog.String("box_name", name)
}

// BoxID records a box id under the key "box_id".
func BoxID(id int) slog.Attr {
	return slog.Int("box_id", id)
}

// Attempts records how many candidates were sampled under the key "attempts".
func Attempts(n int) slog.Attr {
	return slog.Int("attempts", n)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
