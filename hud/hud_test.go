package hud

import (
	"image/color"
	"math"
	"strings"
	"testing"

	"space/gfx"
)

func countColor(t *gfx.RGBATarget, c color.RGBA) int {
	n := 0
	for y := 0; y < t.H; y++ {
		for x := 0; x < t.W; x++ {
			if t.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestDisabledDrawsNothing(t *testing.T) {
	tgt := gfx.NewRGBATarget(64, 64)
	o := New(false)
	o.Draw(tgt, Stats{Entities: 103})
	if n := countColor(tgt, color.RGBA{}); n != 64*64 {
		t.Fatalf("untouched pixels = %d; want %d", n, 64*64)
	}
}

func TestToggleDrawsText(t *testing.T) {
	tgt := gfx.NewRGBATarget(160, 64)
	o := New(false)
	o.Toggle()
	if !o.Enabled() {
		t.Fatalf("Enabled() = false after Toggle")
	}
	o.Draw(tgt, Stats{Build: "dev", Zoom: 45, Entities: 103})
	if n := countColor(tgt, fg); n == 0 {
		t.Fatalf("no text pixels drawn")
	}
	if n := countColor(tgt, bg); n == 0 {
		t.Fatalf("no panel pixels drawn")
	}
	if got := tgt.At(159, 63); got != (color.RGBA{}) {
		t.Fatalf("bottom-right pixel = %v; want untouched", got)
	}
}

func TestLines(t *testing.T) {
	o := New(true)
	lines := o.Lines(Stats{Entities: 103, DrawCalls: 104, Triangles: 9})
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "ENT 103 DRAW 104 TRI 9") {
		t.Fatalf("Lines = %q; want entity counters", joined)
	}
}

func TestFrameSmoothsFPS(t *testing.T) {
	o := New(true)
	o.Frame(0)
	if o.FPS() != 0 {
		t.Fatalf("FPS after dt=0 = %v; want 0", o.FPS())
	}
	o.Frame(1.0 / 60)
	if math.Abs(o.FPS()-60) > 1e-9 {
		t.Fatalf("FPS = %v; want 60", o.FPS())
	}
	o.Frame(1.0 / 30)
	if got := o.FPS(); got >= 60 || got <= 30 {
		t.Fatalf("FPS = %v; want between 30 and 60", got)
	}
}

func TestFillRectangleClips(t *testing.T) {
	tgt := gfx.NewRGBATarget(4, 4)
	d := &targetDisplay{t: tgt}
	red := color.RGBA{R: 255, A: 255}
	if err := d.FillRectangle(-2, 2, 10, 10, red); err != nil {
		t.Fatal(err)
	}
	if n := countColor(tgt, red); n != 8 {
		t.Fatalf("filled = %d; want 8", n)
	}
	if x, y := d.Size(); x != 4 || y != 4 {
		t.Fatalf("Size() = %d,%d; want 4,4", x, y)
	}
}

func TestDrawPanic(t *testing.T) {
	tgt := gfx.NewRGBATarget(40, 20)
	DrawPanic(tgt, []string{"PANIC", strings.Repeat("X", 40)})
	if n := countColor(tgt, panicFG); n == 0 {
		t.Fatalf("no text drawn")
	}
	if got := tgt.At(39, 19); got != panicBG {
		t.Fatalf("corner = %v; want %v", got, panicBG)
	}
}

func TestTakeRunes(t *testing.T) {
	tests := []struct {
		in         string
		n          int16
		head, rest string
	}{
		{"abcdef", 4, "abcd", "ef"},
		{"ab", 4, "ab", ""},
		{"héllo", 2, "hé", "llo"},
		{"", 3, "", ""},
	}
	for _, tt := range tests {
		head, rest := takeRunes(tt.in, tt.n)
		if head != tt.head || rest != tt.rest {
			t.Fatalf("takeRunes(%q, %d) = %q, %q; want %q, %q", tt.in, tt.n, head, rest, tt.head, tt.rest)
		}
	}
}
