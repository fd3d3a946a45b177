package scene

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"space/datafile"
	"space/motion"
)

// MaxRows is the capacity of each per-row motion file.
const MaxRows = 50

// ErrRowMismatch reports motion files that disagree on the number of rows.
var ErrRowMismatch = errors.New("scene: motion table row count mismatch")

// Row is one line of the motion table: a base offset and path coefficients.
type Row struct {
	Offset mgl32.Vec3
	Coeffs motion.Coeffs
}

// MotionTable holds the per-ship rows loaded at start. It is read-only.
type MotionTable struct {
	rows []Row
}

// NewMotionTable builds a table from per-axis offsets and the abjk table,
// which holds all a values, then all b, all j, all k.
func NewMotionTable(x, y, z, abjk []float32) (*MotionTable, error) {
	n := len(x)
	if len(y) != n || len(z) != n {
		return nil, fmt.Errorf("%w: x=%d y=%d z=%d", ErrRowMismatch, len(x), len(y), len(z))
	}
	if len(abjk) != 4*n {
		return nil, fmt.Errorf("%w: abjk has %d values, want %d", ErrRowMismatch, len(abjk), 4*n)
	}
	rows := make([]Row, n)
	for i := range rows {
		rows[i] = Row{
			Offset: mgl32.Vec3{x[i], y[i], z[i]},
			Coeffs: motion.Coeffs{
				A: float64(abjk[i]),
				B: float64(abjk[n+i]),
				J: float64(abjk[2*n+i]),
				K: float64(abjk[3*n+i]),
			},
		}
	}
	return &MotionTable{rows: rows}, nil
}

// Motion data file names under the data directory.
const (
	XMoveFile  = "xmove.txt"
	YMoveFile  = "ymove.txt"
	ZMoveFile  = "zmove.txt"
	ABJKFile   = "abjk.txt"
	SkyboxFile = "skybox.txt"
)

// LoadMotionTable reads the four motion files from dir.
func LoadMotionTable(dir string, log zerolog.Logger) (*MotionTable, error) {
	var cols [3][]float32
	for i, name := range [3]string{XMoveFile, YMoveFile, ZMoveFile} {
		v, err := loadFloats(filepath.Join(dir, name), MaxRows, log)
		if err != nil {
			return nil, err
		}
		cols[i] = v
	}
	abjk, err := loadFloats(filepath.Join(dir, ABJKFile), 4*MaxRows, log)
	if err != nil {
		return nil, err
	}
	return NewMotionTable(cols[0], cols[1], cols[2], abjk)
}

func loadFloats(path string, capacity int, log zerolog.Logger) ([]float32, error) {
	v, err := datafile.LoadAll(path, capacity)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("path", path).Int("count", len(v)).Msg("floats loaded")
	return v, nil
}

// Len returns the number of rows.
func (t *MotionTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Row returns row i.
func (t *MotionTable) Row(i int) Row { return t.rows[i] }
