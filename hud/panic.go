package hud

import (
	"image/color"
	"strings"
	"unicode/utf8"

	"tinygo.org/x/tinyfont"

	"space/gfx"
)

var (
	panicBG = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	panicFG = color.RGBA{A: 0xFF}
)

// DrawPanic clears t to white and writes lines in black, wrapping long lines
// at the target width. Lines that do not fit are dropped.
func DrawPanic(t gfx.Target, lines []string) {
	if t == nil {
		return
	}
	t.Clear(panicBG)
	w, h := t.Size()
	font := &tinyfont.TomThumb
	_, cw := tinyfont.LineWidth(font, "0")
	if cw == 0 || w <= 0 || h <= 0 {
		return
	}
	cols := int16(w-2*margin) / int16(cw)
	if cols <= 0 {
		cols = 1
	}

	d := &targetDisplay{t: t}
	y := int16(margin + lineHeight - 1)
	for _, line := range lines {
		for len(line) > 0 {
			if int(y) >= h {
				return
			}
			chunk, rest := takeRunes(line, cols)
			tinyfont.WriteLine(d, font, margin, y, chunk, panicFG)
			y += lineHeight
			line = strings.TrimLeft(rest, " ")
		}
	}
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
