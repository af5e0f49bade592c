package configloader

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yaklabco/humorlint/pkg/config"
)

func TestMerge(t *testing.T) {
	t.Parallel()

	base := config.NewConfig()
	base.Ignore = []string{"a/**"}

	override := &config.Config{
		LogLevel: "debug",
		Ignore:   []string{"b/**"},
		Server:   config.ServerConfig{LogFile: "server.log"},
	}

	got := merge(base, override)

	assert.Equal(t, "debug", got.LogLevel)
	assert.Equal(t, []string{"b/**"}, got.Ignore)
	assert.Equal(t, "server.log", got.Server.LogFile)
	assert.Equal(t, config.DefaultExtensions(), got.Extensions, "nil slices do not override")
	assert.Equal(t, config.FormatText, got.Format, "empty scalars do not override")

	// Inputs are left untouched.
	assert.Equal(t, "info", base.LogLevel)
	assert.Equal(t, []string{"a/**"}, base.Ignore)
}

func TestMergeNil(t *testing.T) {
	t.Parallel()

	cfg := config.NewConfig()
	assert.Same(t, cfg, merge(cfg, nil))
	assert.Same(t, cfg, merge(nil, cfg))
}

func TestMergeAll(t *testing.T) {
	t.Parallel()

	assert.Nil(t, MergeAll())

	got := MergeAll(
		config.NewConfig(),
		&config.Config{Jobs: 2},
		&config.Config{Jobs: 4, Color: config.ColorNever},
	)
	assert.Equal(t, 4, got.Jobs)
	assert.Equal(t, config.ColorNever, got.Color)
}
