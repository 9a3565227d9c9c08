// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers so that color and box-name fields are logged
// under consistent keys across packages.
//
// # Usage
//
//	import "github.com/dmitrymomot/boxkit/pkg/logger"
//
//	log := logger.New(
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithAttr(slog.String("component", "palette")),
//	)
//	log.Debug("color allocated", logger.Color("C82061"), logger.Attempts(3))
//
// Level and format can also be given as strings (for example from
// environment configuration) through ParseLevel and ParseFormat.
//
// The default logger writes JSON at INFO level to stdout. Discard returns a
// logger that drops every record; library packages use it when the caller
// did not supply one.
package logger
