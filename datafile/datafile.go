// Package datafile reads the scene's plain-text numeric tables.
//
// A table is a sequence of floating-point numbers separated by any mix of
// spaces and newlines, with no header and no count.
package datafile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
)

var (
	// ErrOverflow is returned when a file holds more values than the destination.
	ErrOverflow = errors.New("datafile: more values than capacity")
	// ErrMalformed is returned for a token that is not a number.
	ErrMalformed = errors.New("datafile: malformed number")
)

// Read parses values from r into dst in order and returns how many were stored.
// It never writes past len(dst); dst[n:] is left untouched.
func Read(r io.Reader, dst []float32) (int, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	n := 0
	for sc.Scan() {
		tok := sc.Text()
		v, err := strconv.ParseFloat(tok, 32)
		if err != nil {
			return n, fmt.Errorf("%w: token %d %q", ErrMalformed, n, tok)
		}
		if n >= len(dst) {
			return n, fmt.Errorf("%w (%d)", ErrOverflow, len(dst))
		}
		dst[n] = float32(v)
		n++
	}
	if err := sc.Err(); err != nil {
		return n, err
	}
	return n, nil
}

// Load reads the file at path into dst. See Read.
func Load(path string, dst []float32) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	n, err := Read(f, dst)
	if err != nil {
		return n, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// LoadAll reads at most capacity values from path and returns them as a slice
// of exactly the loaded length.
func LoadAll(path string, capacity int) ([]float32, error) {
	buf := make([]float32, capacity)
	n, err := Load(path, buf)
	if err != nil {
		return nil, err
	}
	return buf[:n:n], nil
}
