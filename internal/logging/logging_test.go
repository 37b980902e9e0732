package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		verbosity int
		want      zerolog.Level
	}{
		"negative": {verbosity: -1, want: zerolog.WarnLevel},
		"zero":     {verbosity: 0, want: zerolog.WarnLevel},
		"one":      {verbosity: 1, want: zerolog.InfoLevel},
		"two":      {verbosity: 2, want: zerolog.DebugLevel},
		"many":     {verbosity: 5, want: zerolog.TraceLevel},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, Level(tc.verbosity))
		})
	}
}

func TestNewFiltersByVerbosity(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(&buf, 0)
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNewDebug(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	logger := New(&buf, 2)
	logger.Debug().Str("key", "value").Msg("details")
	assert.Contains(t, buf.String(), "details")
	assert.Contains(t, buf.String(), "key=value")
}
