// SPDX-License-Identifier: MIT

package calculator

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// tokenReader yields whitespace-separated tokens.
type tokenReader struct {
	sc *bufio.Scanner
}

func newTokenReader(r io.Reader) *tokenReader {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &tokenReader{sc: sc}
}

// next returns io.EOF once the input is exhausted.
func (t *tokenReader) next() (string, error) {
	if t.sc.Scan() {
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", err
	}

	return "", io.EOF
}

func (t *tokenReader) readInt() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer: %w", tok, ErrInvalidInput)
	}

	return n, nil
}

func (t *tokenReader) readFloat() (float64, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	x, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number: %w", tok, ErrInvalidInput)
	}

	return x, nil
}

// readDim reads a size in [lo, MaxDimension].
func (s *Session) readDim(lo int) (int, error) {
	n, err := s.in.readInt()
	if err != nil {
		return 0, err
	}
	if n < lo || n > MaxDimension {
		return 0, fmt.Errorf("dimension %d outside [%d, %d]: %w", n, lo, MaxDimension, ErrInvalidInput)
	}

	return n, nil
}

// readMatrix prompts for every element of a rows×cols matrix, 1-based.
func (s *Session) readMatrix(rows, cols int) (*matrix.Dense[float64], error) {
	vals := make([]float64, 0, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			s.printf("Enter element [%d][%d]: ", i+1, j+1)
			x, err := s.in.readFloat()
			if err != nil {
				return nil, err
			}
			vals = append(vals, x)
		}
	}

	return matrix.FromFlat(rows, cols, vals)
}

// readSquare prompts for n and then the n×n elements.
func (s *Session) readSquare() (*matrix.Dense[float64], error) {
	s.printf("Enter matrix size (n x n): ")
	n, err := s.readDim(1)
	if err != nil {
		return nil, err
	}
	s.println("\nEnter matrix elements:")

	return s.readMatrix(n, n)
}

// readVector prompts for n components, 1-based.
func (s *Session) readVector(n int) (*vector.Vector[float64], error) {
	vals := make([]float64, 0, n)
	for i := 0; i < n; i++ {
		s.printf("Enter component %d: ", i+1)
		x, err := s.in.readFloat()
		if err != nil {
			return nil, err
		}
		vals = append(vals, x)
	}

	return vector.FromSlice(vals), nil
}
