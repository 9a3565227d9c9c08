// Package config loads typed configuration structs from environment
// variables, optionally seeded from .env files.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
//
//   - LoadEnv loads one or more .env files into the process environment
//     (the default `.env` when called without arguments). Variables that are
//     already set are not overwritten.
//   - Load parses the environment into any struct annotated with `env` tags
//     and caches the result per struct type, so later calls are served from
//     memory.
//   - MustLoad and MustLoadEnv panic instead of returning an error.
//   - ResetCache and ForceReload exist for tests that change the
//     environment between cases.
//
// # Usage
//
//	type Config struct {
//	    MinDistance int `env:"BOXKIT_MIN_COLOR_DISTANCE" envDefault:"100"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    log.Fatalf("parsing env: %v", err)
//	}
//
// # Error Handling
//
//   - ErrParsingConfig   – env vars could not be parsed into the struct.
//   - ErrConfigNotLoaded – the cache has no entry after loading.
//   - ErrNilPointer      – nil pointer passed to Load.
//   - ErrLoadingEnvFile  – a .env file could not be read.
package config
