package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/boxkit/pkg/config"
)

type fileConfig struct {
	Name   string `env:"BOXKIT_TEST_NAME"`
	Count  int    `env:"BOXKIT_TEST_COUNT"`
	Quoted string `env:"BOXKIT_TEST_QUOTED"`
}

type defaultsConfig struct {
	Threshold int    `env:"BOXKIT_TEST_THRESHOLD" envDefault:"100"`
	Format    string `env:"BOXKIT_TEST_FORMAT" envDefault:"text"`
}

type requiredConfig struct {
	Required string `env:"BOXKIT_TEST_REQUIRED,required"`
}

type badIntConfig struct {
	Value int `env:"BOXKIT_TEST_BAD_INT"`
}

func unsetFileVars(t *testing.T) {
	t.Helper()
	for _, k := range []string{"BOXKIT_TEST_NAME", "BOXKIT_TEST_COUNT", "BOXKIT_TEST_QUOTED"} {
		// Register restore first so t.Setenv's cleanup resets the value.
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadEnv(t *testing.T) {
	unsetFileVars(t)
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "from_file", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
	assert.Equal(t, "quoted value", cfg.Quoted)
}

func TestLoadEnv_EarlierFileWins(t *testing.T) {
	unsetFileVars(t)
	config.ResetCache()

	require.NoError(t, config.LoadEnv("testdata/.env.override", "testdata/.env.test"))

	var cfg fileConfig
	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "override", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv("testdata/missing.env")
	require.ErrorIs(t, err, config.ErrLoadingEnvFile)

	assert.Panics(t, func() { config.MustLoadEnv("testdata/missing.env") })
	assert.NotPanics(t, func() { config.MustLoadEnv("testdata/.env.test") })
}

func TestLoad_DefaultsAndCache(t *testing.T) {
	config.ResetCache()
	t.Setenv("BOXKIT_TEST_THRESHOLD", "250")

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 250, cfg.Threshold)
	assert.Equal(t, "text", cfg.Format)

	// Cached: environment changes are not observed until ForceReload.
	t.Setenv("BOXKIT_TEST_THRESHOLD", "300")
	var cached defaultsConfig
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, 250, cached.Threshold)

	var reloaded defaultsConfig
	require.NoError(t, config.ForceReload(&reloaded))
	assert.Equal(t, 300, reloaded.Threshold)
}

func TestLoad_Required(t *testing.T) {
	config.ResetCache()
	t.Setenv("BOXKIT_TEST_REQUIRED", "")
	require.NoError(t, os.Unsetenv("BOXKIT_TEST_REQUIRED"))

	var cfg requiredConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&requiredConfig{}) })

	t.Setenv("BOXKIT_TEST_REQUIRED", "present")
	require.NoError(t, config.ForceReload(&cfg))
	assert.Equal(t, "present", cfg.Required)
}

func TestLoad_ParseError(t *testing.T) {
	config.ResetCache()
	t.Setenv("BOXKIT_TEST_BAD_INT", "not-a-number")

	var cfg badIntConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	require.ErrorIs(t, config.Load[defaultsConfig](nil), config.ErrNilPointer)
	require.ErrorIs(t, config.ForceReload[defaultsConfig](nil), config.ErrNilPointer)
}
