// SPDX-License-Identifier: MIT
package calculator_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/linalg/calculator"
)

// stepClock advances by one microsecond per call.
func stepClock() func() time.Time {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return t0.Add(time.Duration(n) * time.Microsecond)
	}
}

func run(t *testing.T, input string, opts ...calculator.Option) (string, error) {
	t.Helper()
	var out bytes.Buffer
	opts = append([]calculator.Option{calculator.WithClock(stepClock())}, opts...)
	s := calculator.NewSession(strings.NewReader(input), &out, opts...)
	err := s.Run(context.Background())

	return out.String(), err
}

func TestSession_Entries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		input     string
		precision int
		want      []string
	}{
		{
			name:      "multiply",
			input:     "1  2 2  2 2  1 2 3 4  5 6 7 8  0",
			precision: 2,
			want: []string{
				"--- Matrix Multiplication Calculator ---",
				"Enter element [2][2]: ",
				"Result (A × B):\n[ 19.00  22.00]\n[ 43.00  50.00]\n",
				"Computation time: 1 microseconds",
			},
		},
		{
			name:      "determinant",
			input:     "2  2  1 2 3 4  0",
			precision: 6,
			want:      []string{"Determinant: -2.000000"},
		},
		{
			name:      "eigenvalues",
			input:     "3  2  2 0 0 3  0",
			precision: 1,
			want:      []string{"λ1 = 3.0\n", "λ2 = 2.0\n"},
		},
		{
			name:      "inverse",
			input:     "4  2  4 7 2 6  0",
			precision: 1,
			want: []string{
				"Inverse Matrix:\n[  0.6  -0.7]\n[ -0.2   0.4]\n",
				"Verification (A × A⁻¹):\n",
			},
		},
		{
			name:      "dot",
			input:     "5  3  1 2 3  4 5 6  0",
			precision: 6,
			want: []string{
				"Enter component 3: ",
				"Vector 1: [1.000000, 2.000000, 3.000000]",
				"Dot Product: 32.000000",
				"Computation time: 1000 nanoseconds",
				"Vector 2 magnitude:",
				"Angle between vectors:",
			},
		},
		{
			name:      "cross",
			input:     "6  1 2 3  4 5 6  0",
			precision: 1,
			want: []string{
				"Cross Product: [-3.0, 6.0, -3.0]",
				"Area of parallelogram: 7.3",
			},
		},
		{
			name:      "lu",
			input:     "7  2  4 3 6 3  0",
			precision: 1,
			want: []string{
				"L Matrix (Lower Triangular):\n[  1.0   0.0]\n[  1.5   1.0]\n",
				"U Matrix (Upper Triangular):\n[  4.0   3.0]\n[  0.0  -1.5]\n",
				"Verification (L × U):\n[  4.0   3.0]\n[  6.0   3.0]\n",
			},
		},
		{
			name:      "qr",
			input:     "8  2 2  1 0 0 1  0",
			precision: 1,
			want: []string{
				"Q Matrix (Orthogonal):\n[  1.0   0.0]\n[  0.0   1.0]\n",
				"Verification (Q × R):\n[  1.0   0.0]\n[  0.0   1.0]\n",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			out, err := run(t, tc.input, calculator.WithPrecision(tc.precision))
			require.NoError(t, err)
			for _, w := range tc.want {
				assert.Contains(t, out, w)
			}
			assert.Contains(t, out, "Thank you")
		})
	}
}

func TestSession_LibraryErrorsAreReported(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		input string
		want  string
	}{
		"singular inverse":  {"4  2  1 1 1 1  0", "Error: "},
		"zero vector angle": {"5  2  0 0  1 1  0", "near-zero magnitude"},
		"shape mismatch":    {"1  2 3  2 2  0", "must equal matrix B rows"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			out, err := run(t, tc.input)
			require.NoError(t, err, "menu continues after a library error")
			assert.Contains(t, out, tc.want)
			assert.Contains(t, out, "Thank you")
		})
	}

	out, _ := run(t, "4  2  1 1 1 1  0")
	assert.Contains(t, out, "singular")
}

func TestSession_InvalidInput(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"abc", "2  2  1 x", "2  -1", "2  5000"} {
		_, err := run(t, in)
		require.ErrorIs(t, err, calculator.ErrInvalidInput, in)
	}
}

func TestSession_EOFEndsCleanly(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "2  2  1 2", "5  3  1"} {
		out, err := run(t, in)
		require.NoError(t, err, in)
		assert.Contains(t, out, "Enter your choice: ")
	}
}

func TestSession_InvalidChoice(t *testing.T) {
	t.Parallel()

	out, err := run(t, "42  0")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid choice! Please try again.")
}

func TestSession_Benchmark(t *testing.T) {
	t.Parallel()

	out, err := run(t, "9  0")
	require.NoError(t, err)
	assert.Contains(t, out, "not available")

	called := false
	hook := func(_ context.Context, w io.Writer) error {
		called = true
		_, err := io.WriteString(w, "BENCH REPORT\n")
		return err
	}
	out, err = run(t, "9  0", calculator.WithBenchmark(hook))
	require.NoError(t, err)
	assert.True(t, called)
	assert.Contains(t, out, "BENCH REPORT")

	failing := func(context.Context, io.Writer) error { return errors.New("boom") }
	out, err = run(t, "9  0", calculator.WithBenchmark(failing))
	require.NoError(t, err)
	assert.Contains(t, out, "Error: boom")
}

func TestSession_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	s := calculator.NewSession(strings.NewReader("2  1  5  0"), io.Discard)
	require.ErrorIs(t, s.Run(ctx), context.Canceled)
}

func TestSession_LogsOneEventPerEntry(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	l := zerolog.New(&logs).Level(zerolog.DebugLevel)
	_, err := run(t, "2  1  5  2  1  7  0", calculator.WithLogger(l))
	require.NoError(t, err)

	assert.Equal(t, 2, strings.Count(logs.String(), "calculator entry finished"))
	assert.Contains(t, logs.String(), `"op":"Determinant Calculator"`)
}
