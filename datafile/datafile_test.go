package datafile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeNumbers(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		sep := " "
		if i%7 == 6 {
			sep = "\n"
		}
		fmt.Fprintf(&b, "%g%s", float32(i)*0.5-3, sep)
	}
	path := filepath.Join(t.TempDir(), "numbers.txt")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadWithinCapacity(t *testing.T) {
	path := writeNumbers(t, 150)

	dst := make([]float32, 200)
	for i := range dst {
		dst[i] = 99
	}
	n, err := Load(path, dst)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if n != 150 {
		t.Fatalf("n = %d; want 150", n)
	}
	for i := 0; i < 150; i++ {
		if want := float32(i)*0.5 - 3; dst[i] != want {
			t.Fatalf("dst[%d] = %v; want %v", i, dst[i], want)
		}
	}
	for i := 150; i < 200; i++ {
		if dst[i] != 99 {
			t.Fatalf("dst[%d] = %v; want untouched 99", i, dst[i])
		}
	}
}

func TestLoadOverflow(t *testing.T) {
	path := writeNumbers(t, 51)

	backing := make([]float32, 60)
	for i := range backing {
		backing[i] = -1
	}
	dst := backing[:50]
	n, err := Load(path, dst)
	if !errors.Is(err, ErrOverflow) {
		t.Fatalf("err = %v; want ErrOverflow", err)
	}
	if n != 50 {
		t.Fatalf("n = %d; want 50", n)
	}
	for i := 50; i < len(backing); i++ {
		if backing[i] != -1 {
			t.Fatalf("backing[%d] = %v; overflow wrote past capacity", i, backing[i])
		}
	}
}

func TestReadMalformed(t *testing.T) {
	dst := make([]float32, 4)
	n, err := Read(strings.NewReader("1 2 x 4"), dst)
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("err = %v; want ErrMalformed", err)
	}
	if n != 2 {
		t.Fatalf("n = %d; want 2", n)
	}
}

func TestReadEmptyAndWhitespace(t *testing.T) {
	for _, in := range []string{"", "   \n\t\n"} {
		n, err := Read(strings.NewReader(in), make([]float32, 3))
		if err != nil || n != 0 {
			t.Fatalf("Read(%q) = %d, %v; want 0, nil", in, n, err)
		}
	}
}

func TestLoadAll(t *testing.T) {
	path := writeNumbers(t, 10)
	got, err := LoadAll(path, 50)
	if err != nil {
		t.Fatalf("LoadAll: %v", err)
	}
	if len(got) != 10 || cap(got) != 10 {
		t.Fatalf("len/cap = %d/%d; want 10/10", len(got), cap(got))
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"), make([]float32, 1))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v; want ErrNotExist", err)
	}
}
