package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"VJDUMP_LABEL", "VJDUMP_NO_ASSETS", "VJDUMP_PAGE", "VJDUMP_MEASURE", "VJDUMP_LIMIT", "VJDUMP_ALL_FIELDS"} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{Page: true, Measure: "runes", Limit: 100}, cfg)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("VJDUMP_LABEL", "payload")
	t.Setenv("VJDUMP_NO_ASSETS", "true")
	t.Setenv("VJDUMP_PAGE", "false")
	t.Setenv("VJDUMP_MEASURE", "graphemes")
	t.Setenv("VJDUMP_LIMIT", "20")
	t.Setenv("VJDUMP_ALL_FIELDS", "true")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{
		Label:     "payload",
		NoAssets:  true,
		Page:      false,
		Measure:   "graphemes",
		Limit:     20,
		AllFields: true,
	}, cfg)
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("VJDUMP_LIMIT", "many")
	_, err := Load()
	assert.Error(t, err)
}
