// SPDX-License-Identifier: MIT
package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want zerolog.Level
	}{
		{"", DefaultLevel},
		{"debug", zerolog.DebugLevel},
		{" WARN ", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"disabled", zerolog.Disabled},
	}
	for _, tc := range cases {
		got, err := ParseLevel(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	_, err := ParseLevel("loud")
	require.ErrorIs(t, err, ErrInvalidLevel)
}

func TestNew_JSONFiltersByLevel(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := New(&buf, "info", FormatJSON)
	require.NoError(t, err)

	l.Debug().Msg("hidden")
	cl := Component(l, "bench")
	cl.Info().Int("n", 3).Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var ev map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &ev))
	assert.Equal(t, "info", ev["level"])
	assert.Equal(t, "bench", ev["component"])
	assert.Equal(t, "shown", ev["message"])
	assert.EqualValues(t, 3, ev["n"])
	assert.Contains(t, ev, "time")
}

func TestNew_Console(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	l, err := New(&buf, "debug", FormatConsole)
	require.NoError(t, err)
	l.Debug().Str("op", "Mul").Msg("done")

	out := buf.String()
	assert.Contains(t, out, "DBG")
	assert.Contains(t, out, "done")
	assert.Contains(t, out, "op=Mul")
}

func TestNew_InvalidLevel(t *testing.T) {
	t.Parallel()

	_, err := New(&bytes.Buffer{}, "verbose", FormatJSON)
	require.ErrorIs(t, err, ErrInvalidLevel)
}
