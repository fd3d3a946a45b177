package gfx

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// clipEpsilon keeps w strictly positive after clipping so the divide is safe.
const clipEpsilon = 1e-5

type clipVertex struct {
	pos  mgl32.Vec4
	vary Varyings
}

type screenVertex struct {
	x, y float32 // window coordinates, pixel centres at +0.5
	z    float32 // window depth in [0,1]
	invW float32
	vary Varyings
}

func (d *Device) drawTriangle(vs VertexFunc, fs FragmentFunc, a, b, c Vertex) {
	d.stats.Triangles++

	poly := d.poly[:0]
	for _, v := range [3]Vertex{a, b, c} {
		p, out := vs(v)
		if !finite4(p) {
			return
		}
		poly = append(poly, clipVertex{pos: p, vary: out})
	}

	poly = clipPolygon(poly, &d.tmp, func(p mgl32.Vec4) float32 { return p[3] - clipEpsilon })
	poly = clipPolygon(poly, &d.tmp, func(p mgl32.Vec4) float32 { return p[2] + p[3] })
	poly = clipPolygon(poly, &d.tmp, func(p mgl32.Vec4) float32 { return p[3] - p[2] })
	d.poly = poly[:0]
	if len(poly) < 3 {
		return
	}

	s0 := d.toScreen(poly[0])
	for i := 1; i+1 < len(poly); i++ {
		d.fill(fs, s0, d.toScreen(poly[i]), d.toScreen(poly[i+1]))
	}
}

// clipPolygon keeps the part of poly where dist >= 0 (Sutherland–Hodgman).
// Varyings are interpolated linearly in clip space.
func clipPolygon(poly []clipVertex, scratch *[]clipVertex, dist func(mgl32.Vec4) float32) []clipVertex {
	if len(poly) == 0 {
		return poly
	}
	out := (*scratch)[:0]
	prev := poly[len(poly)-1]
	prevD := dist(prev.pos)
	for _, cur := range poly {
		curD := dist(cur.pos)
		if curD >= 0 {
			if prevD < 0 {
				out = append(out, lerpClip(prev, cur, prevD/(prevD-curD)))
			}
			out = append(out, cur)
		} else if prevD >= 0 {
			out = append(out, lerpClip(prev, cur, prevD/(prevD-curD)))
		}
		prev, prevD = cur, curD
	}
	// Swap buffers: the input becomes next call's scratch.
	*scratch = poly[:0]
	return out
}

func lerpClip(a, b clipVertex, t float32) clipVertex {
	var v clipVertex
	for i := 0; i < 4; i++ {
		v.pos[i] = a.pos[i] + (b.pos[i]-a.pos[i])*t
	}
	for i := range v.vary {
		v.vary[i] = a.vary[i] + (b.vary[i]-a.vary[i])*t
	}
	return v
}

func (d *Device) toScreen(v clipVertex) screenVertex {
	invW := 1 / v.pos[3]
	nx := v.pos[0] * invW
	ny := v.pos[1] * invW
	nz := v.pos[2] * invW
	s := screenVertex{
		x:    (nx*0.5 + 0.5) * float32(d.w),
		y:    (1 - (ny*0.5 + 0.5)) * float32(d.h),
		z:    nz*0.5 + 0.5,
		invW: invW,
	}
	for i := range v.vary {
		s.vary[i] = v.vary[i] * invW
	}
	return s
}

func (d *Device) fill(fs FragmentFunc, v0, v1, v2 screenVertex) {
	area := edgeFn(v0.x, v0.y, v1.x, v1.y, v2.x, v2.y)
	if area == 0 || math.IsNaN(float64(area)) {
		return
	}
	invArea := 1 / area

	minX := clampInt(int(math.Floor(float64(min3(v0.x, v1.x, v2.x)))), 0, d.w-1)
	maxX := clampInt(int(math.Ceil(float64(max3(v0.x, v1.x, v2.x)))), 0, d.w-1)
	minY := clampInt(int(math.Floor(float64(min3(v0.y, v1.y, v2.y)))), 0, d.h-1)
	maxY := clampInt(int(math.Ceil(float64(max3(v0.y, v1.y, v2.y)))), 0, d.h-1)
	if minX > maxX || minY > maxY {
		return
	}

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			l0 := edgeFn(v1.x, v1.y, v2.x, v2.y, px, py) * invArea
			l1 := edgeFn(v2.x, v2.y, v0.x, v0.y, px, py) * invArea
			l2 := edgeFn(v0.x, v0.y, v1.x, v1.y, px, py) * invArea
			if l0 < 0 || l1 < 0 || l2 < 0 {
				continue
			}

			z := clamp01(v0.z + l1*(v1.z-v0.z) + l2*(v2.z-v0.z))
			idx := y*d.w + x
			if !d.depthFunc.pass(z, d.depth[idx]) {
				continue
			}

			q := l0*v0.invW + l1*v1.invW + l2*v2.invW
			if q == 0 {
				continue
			}
			invQ := 1 / q
			var in Varyings
			for i := range in {
				in[i] = (l0*v0.vary[i] + l1*v1.vary[i] + l2*v2.vary[i]) * invQ
			}

			c, keep := fs(in)
			if !keep {
				continue
			}
			if d.depthMask {
				d.depth[idx] = z
			}
			d.target.SetPixel(x, y, c)
			d.stats.Fragments++
		}
	}
}

func edgeFn(x0, y0, x1, y1, x, y float32) float32 {
	return (x-x0)*(y1-y0) - (y-y0)*(x1-x0)
}

func finite4(v mgl32.Vec4) bool {
	for _, c := range v {
		f := float64(c)
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func min3(a, b, c float32) float32 {
	if a > b {
		a = b
	}
	if a > c {
		a = c
	}
	return a
}

func max3(a, b, c float32) float32 {
	if a < b {
		a = b
	}
	if a < c {
		a = c
	}
	return a
}
