package scene

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/rs/zerolog"

	"space/assets"
	"space/camera"
	"space/datafile"
	"space/gfx"
	"space/motion"
)

func writeFloats(t *testing.T, path string, n int, f func(i int) float64) {
	t.Helper()
	var b strings.Builder
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "%g\n", f(i))
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
}

// writeMotionData writes n rows of motion data into dir.
func writeMotionData(t *testing.T, dir string, n int) {
	t.Helper()
	writeFloats(t, filepath.Join(dir, XMoveFile), n, func(i int) float64 { return float64(i) / 10 })
	writeFloats(t, filepath.Join(dir, YMoveFile), n, func(i int) float64 { return float64(i) / 20 })
	writeFloats(t, filepath.Join(dir, ZMoveFile), n, func(i int) float64 { return float64(i) / 40 })
	writeFloats(t, filepath.Join(dir, ABJKFile), 4*n, func(i int) float64 { return float64(1 + i/n) })
}

func TestNewMotionTableLayout(t *testing.T) {
	x := []float32{1, 2}
	y := []float32{3, 4}
	z := []float32{5, 6}
	abjk := []float32{10, 11, 20, 21, 30, 31, 40, 41}
	tbl, err := NewMotionTable(x, y, z, abjk)
	if err != nil {
		t.Fatalf("NewMotionTable: %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", tbl.Len())
	}
	got := tbl.Row(1)
	want := Row{Offset: mgl32.Vec3{2, 4, 6}, Coeffs: motion.Coeffs{A: 11, B: 21, J: 31, K: 41}}
	if got != want {
		t.Fatalf("Row(1) = %+v; want %+v", got, want)
	}
}

func TestNewMotionTableMismatch(t *testing.T) {
	cases := []struct {
		name       string
		x, y, z, k []float32
	}{
		{"short y", []float32{1, 2}, []float32{1}, []float32{1, 2}, make([]float32, 8)},
		{"short abjk", []float32{1, 2}, []float32{1, 2}, []float32{1, 2}, make([]float32, 7)},
	}
	for _, tc := range cases {
		if _, err := NewMotionTable(tc.x, tc.y, tc.z, tc.k); !errors.Is(err, ErrRowMismatch) {
			t.Fatalf("%s: err = %v; want %v", tc.name, err, ErrRowMismatch)
		}
	}
}

func TestLoadMotionTableLogsCounts(t *testing.T) {
	dir := t.TempDir()
	writeMotionData(t, dir, 50)

	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	tbl, err := LoadMotionTable(dir, log)
	if err != nil {
		t.Fatalf("LoadMotionTable: %v", err)
	}
	if tbl.Len() != 50 {
		t.Fatalf("Len() = %d; want 50", tbl.Len())
	}
	if got := strings.Count(buf.String(), "floats loaded"); got != 4 {
		t.Fatalf("log has %d 'floats loaded' lines; want 4:\n%s", got, buf.String())
	}
	if !strings.Contains(buf.String(), `"count":200`) {
		t.Fatalf("log missing abjk count:\n%s", buf.String())
	}
	if r := tbl.Row(49); r.Coeffs != (motion.Coeffs{A: 1, B: 2, J: 3, K: 4}) {
		t.Fatalf("Row(49).Coeffs = %+v; want {1 2 3 4}", r.Coeffs)
	}
}

func TestLoadMotionTableOverflow(t *testing.T) {
	dir := t.TempDir()
	writeMotionData(t, dir, 50)
	writeFloats(t, filepath.Join(dir, XMoveFile), 51, func(int) float64 { return 1 })
	if _, err := LoadMotionTable(dir, zerolog.Nop()); !errors.Is(err, datafile.ErrOverflow) {
		t.Fatalf("err = %v; want %v", err, datafile.ErrOverflow)
	}
}

func TestLoadMotionTableRowMismatch(t *testing.T) {
	dir := t.TempDir()
	writeMotionData(t, dir, 50)
	writeFloats(t, filepath.Join(dir, ZMoveFile), 49, func(int) float64 { return 1 })
	if _, err := LoadMotionTable(dir, zerolog.Nop()); !errors.Is(err, ErrRowMismatch) {
		t.Fatalf("err = %v; want %v", err, ErrRowMismatch)
	}
}

func testTable(t *testing.T, n int) *MotionTable {
	t.Helper()
	x := make([]float32, n)
	y := make([]float32, n)
	z := make([]float32, n)
	abjk := make([]float32, 4*n)
	for i := 0; i < n; i++ {
		x[i], y[i], z[i] = float32(i), float32(i)/2, float32(i)/4
	}
	for i := range abjk {
		abjk[i] = 1
	}
	tbl, err := NewMotionTable(x, y, z, abjk)
	if err != nil {
		t.Fatal(err)
	}
	return tbl
}

func TestSpaceOrder(t *testing.T) {
	ents := Space(testTable(t, 50))
	// planet, ring, capital, the pairs, precursors
	if want := 4 + 2*50; len(ents) != want {
		t.Fatalf("len = %d; want %d", len(ents), want)
	}
	wantKeys := []string{Mars, HaloRing, Charon, Pelican, Phantom}
	for i, k := range wantKeys {
		if ents[i].Model != k {
			t.Fatalf("ents[%d].Model = %q; want %q", i, ents[i].Model, k)
		}
	}
	for i := 0; i < 50; i++ {
		if p, q := ents[3+2*i], ents[4+2*i]; p.Model != Pelican || q.Model != Phantom {
			t.Fatalf("pair %d = %q,%q; want pelican,phantom", i, p.Model, q.Model)
		}
	}
	if last := ents[len(ents)-1]; last.Model != Precursors {
		t.Fatalf("last = %q; want %q", last.Model, Precursors)
	}

	// row 2 offsets (2, 1, 0.5)
	pel, ph := ents[3+2*2], ents[4+2*2]
	if want := (mgl32.Vec3{13, 8.5, -7}); !pel.Base.ApproxEqual(want) {
		t.Fatalf("pelican base = %v; want %v", pel.Base, want)
	}
	if want := (mgl32.Vec3{4, 8.5, -6}); !ph.Base.ApproxEqual(want) {
		t.Fatalf("phantom base = %v; want %v", ph.Base, want)
	}
	if pel.Path.Phase != -math.Pi/2 || ph.Path.Phase != 0 {
		t.Fatalf("phases = %v,%v; want -π/2,0", pel.Path.Phase, ph.Path.Phase)
	}
}

func TestStaticTransform(t *testing.T) {
	planet := Space(testTable(t, 0))[0]
	m, err := planet.Transform(0)
	if err != nil {
		t.Fatalf("Transform: %v", err)
	}
	want := mgl32.Translate3D(-12, 9.5, -9).Mul4(mgl32.Scale3D(11, 11, 11))
	if !m.ApproxEqualThreshold(want, 1e-5) {
		t.Fatalf("Transform(0) = %v; want %v", m, want)
	}

	// at t=100π the planet has spun half a turn about Y
	m, _ = planet.Transform(100 * math.Pi)
	x := m.Mul4x1(mgl32.Vec4{1, 0, 0, 1})
	if want := (mgl32.Vec4{-23, 9.5, -9, 1}); !x.ApproxEqualThreshold(want, 1e-3) {
		t.Fatalf("spun +X = %v; want %v", x, want)
	}
}

func TestAnimatedTransformFollowsPath(t *testing.T) {
	capital := Space(testTable(t, 0))[2]
	for _, now := range []float64{0, 12.5, 100} {
		m, err := capital.Transform(now)
		if err != nil {
			t.Fatalf("Transform(%v): %v", now, err)
		}
		want, err := motion.Position(capital.Path.Coeffs, capital.Base, now/50, 0)
		if err != nil {
			t.Fatal(err)
		}
		if got := m.Col(3).Vec3(); !got.ApproxEqualThreshold(want, 1e-4) {
			t.Fatalf("Transform(%v) translation = %v; want %v", now, got, want)
		}
	}
}

func newTestRenderer(t *testing.T, ents []Entity) (*Renderer, *gfx.Device, *gfx.RGBATarget) {
	t.Helper()
	d := gfx.NewDevice()
	tgt := gfx.NewRGBATarget(16, 16)
	d.Bind(tgt)

	pos, err := datafile.LoadAll(filepath.Join("..", "data", SkyboxFile), 3*SkyboxVertices)
	if err != nil {
		t.Fatal(err)
	}
	sky, err := NewSkybox(d, pos, &gfx.Cubemap{Fallback: assets.PlaceholderFace})
	if err != nil {
		t.Fatal(err)
	}
	models := map[string]*assets.Model{
		"box": assets.PlaceholderModel(d, "box", assets.ShapeBox, mgl32.Vec4{1, 0, 0, 1}),
	}
	return NewRenderer(d, ents, models, sky, zerolog.Nop()), d, tgt
}

func TestUpdateFreezesOnDomainError(t *testing.T) {
	// cos(t)^0.5 is not real for t in (π/2, 3π/2)
	e := Entity{
		Name:  "sqrt",
		Model: "box",
		Path:  &Path{Coeffs: motion.Coeffs{A: 1, B: 1, J: 0.5, K: 1}, Divisor: 1},
		Scale: mgl32.Vec3{1, 1, 1},
	}
	r, _, _ := newTestRenderer(t, []Entity{e, e})

	r.Update(math.Pi)
	if _, ok := r.Transform(0); ok {
		t.Fatalf("Transform valid after a first frame outside the domain")
	}

	r.Update(0.5)
	good, ok := r.Transform(0)
	if !ok {
		t.Fatalf("Transform invalid at t=0.5")
	}
	r.Update(math.Pi)
	frozen, ok := r.Transform(0)
	if !ok || frozen != good {
		t.Fatalf("Transform at π = %v,%v; want frozen %v", frozen, ok, good)
	}
	for _, v := range frozen {
		if math.IsNaN(float64(v)) {
			t.Fatalf("frozen transform has NaN: %v", frozen)
		}
	}

	r.Update(2 * math.Pi)
	if m, _ := r.Transform(0); m == good {
		t.Fatalf("Transform did not resume after leaving the bad range")
	}
}

func TestDrawOneCallPerEntityPlusSkybox(t *testing.T) {
	ents := []Entity{
		{Name: "a", Model: "box", Base: mgl32.Vec3{0, 0, -5}, Scale: mgl32.Vec3{1, 1, 1}},
		{Name: "b", Model: "box", Base: mgl32.Vec3{2, 0, -5}, Scale: mgl32.Vec3{1, 1, 1}},
		{Name: "missing", Model: "none", Scale: mgl32.Vec3{1, 1, 1}},
	}
	r, d, tgt := newTestRenderer(t, ents)
	cam := camera.New(mgl32.Vec3{0, 0, 0})

	r.Update(0)
	r.Draw(cam.View(), cam.Projection(1, 0.1, 100))
	if err := r.Err(); err != nil {
		t.Fatalf("Err() = %v", err)
	}
	if got := d.Stats().DrawCalls; got != 3 {
		t.Fatalf("DrawCalls = %d; want 2 entities + skybox", got)
	}
	if got := tgt.At(8, 8); got.R == 0 || got.G != 0 {
		t.Fatalf("centre pixel = %v; want the red box", got)
	}
	if got := tgt.At(0, 0); got != assets.PlaceholderFace {
		t.Fatalf("corner pixel = %v; want sky %v", got, assets.PlaceholderFace)
	}
	if d.DepthFunc() != gfx.DepthLess || !d.DepthMask() {
		t.Fatalf("depth state = %v mask=%v; want less, true", d.DepthFunc(), d.DepthMask())
	}
}

func TestLoadWithPlaceholders(t *testing.T) {
	root := t.TempDir()
	data := filepath.Join(root, "data")
	if err := os.Mkdir(data, 0o755); err != nil {
		t.Fatal(err)
	}
	writeMotionData(t, data, 50)
	sky, err := os.ReadFile(filepath.Join("..", "data", SkyboxFile))
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(data, SkyboxFile), sky, 0o644); err != nil {
		t.Fatal(err)
	}

	d := gfx.NewDevice()
	r, err := Load(d, Options{Root: root, Placeholders: true}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if want := 4 + 2*50; r.Len() != want {
		t.Fatalf("Len() = %d; want %d", r.Len(), want)
	}
	if got := r.Entity(0).Name; got != "planet" {
		t.Fatalf("Entity(0).Name = %q; want planet", got)
	}
	if got := r.Entity(r.Len() - 1).Name; got != "precursors" {
		t.Fatalf("last entity = %q; want precursors", got)
	}
	for key, m := range r.models {
		if !m.Placeholder || len(m.Meshes) != 1 {
			t.Fatalf("model %q = %+v; want one placeholder mesh", key, m)
		}
	}
	// six models plus the skybox cube
	if got := d.Live(); got != 7 {
		t.Fatalf("Live() = %d; want 7", got)
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if got := d.Live(); got != 0 {
		t.Fatalf("Live() after Close = %d; want 0", got)
	}

	r, err = Load(d, Options{Root: root}, zerolog.Nop())
	if err != nil {
		t.Fatalf("Load without placeholders: %v", err)
	}
	for key, m := range r.models {
		if len(m.Meshes) != 0 {
			t.Fatalf("model %q has %d meshes; want empty", key, len(m.Meshes))
		}
	}
}

func TestLoadMissingTable(t *testing.T) {
	if _, err := Load(gfx.NewDevice(), Options{Root: t.TempDir()}, zerolog.Nop()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v; want os.ErrNotExist", err)
	}
}

func TestClockMonotonic(t *testing.T) {
	var c Clock
	if dt := c.Advance(0.5); dt != 0.5 {
		t.Fatalf("first dt = %v; want 0.5", dt)
	}
	if dt := c.Advance(0.75); dt != 0.25 {
		t.Fatalf("dt = %v; want 0.25", dt)
	}
	if dt := c.Advance(0.1); dt != 0 || c.Now() != 0.75 {
		t.Fatalf("backwards sample: dt=%v now=%v; want 0, 0.75", dt, c.Now())
	}
	if c.Frames() != 3 {
		t.Fatalf("Frames() = %d; want 3", c.Frames())
	}
}
