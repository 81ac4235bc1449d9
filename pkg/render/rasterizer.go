// Package render provides software rasterization for scanline: camera
// projection, a depth/color buffer, scan-line triangle fill and line
// drawing.
package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// edgeEpsilon absorbs float error when rounding scan-line bounds to pixel
// columns, so an edge that lands exactly on a column still covers it.
const edgeEpsilon = 1e-9

// ScreenVertex is a projected vertex paired with its camera-space depth.
type ScreenVertex struct {
	P     math3d.Point2
	Depth float64
}

// SV creates a ScreenVertex.
func SV(x, y int, depth float64) ScreenVertex {
	return ScreenVertex{P: math3d.P2(x, y), Depth: depth}
}

// Stats counts what a rasterizer did since it was created or reset.
type Stats struct {
	Drawn   int // Triangles scan-converted
	Skipped int // Triangles dropped for a degenerate projection
	Lines   int // Line segments drawn
}

// MeshSource is anything that can hand out triangles by index.
// models.Mesh implements it without render importing models.
type MeshSource interface {
	TriangleCount() int
	Triangle(i int) Triangle
}

// Rasterizer scan-converts triangles and lines into a Buffer as seen
// through a Camera. The camera is copied in and read-only for the
// rasterizer's lifetime.
type Rasterizer struct {
	camera Camera
	buf    *Buffer
	Stats  Stats
}

// NewRasterizer creates a rasterizer drawing into buf.
func NewRasterizer(camera Camera, buf *Buffer) *Rasterizer {
	return &Rasterizer{
		camera: camera,
		buf:    buf,
	}
}

// Camera returns the camera the rasterizer projects through.
func (r *Rasterizer) Camera() Camera {
	return r.camera
}

// Buffer returns the target buffer.
func (r *Rasterizer) Buffer() *Buffer {
	return r.buf
}

// ResetStats zeroes the counters.
func (r *Rasterizer) ResetStats() {
	r.Stats = Stats{}
}

// Project projects a world point onto the target buffer's grid.
func (r *Rasterizer) Project(p math3d.Vec3) (ScreenVertex, error) {
	pt, depth, err := r.camera.Project(p, r.buf.Width, r.buf.Height)
	if err != nil {
		return ScreenVertex{}, err
	}
	return ScreenVertex{P: pt, Depth: depth}, nil
}

// projectTriangle projects all three vertices, failing on the first
// degenerate one.
func (r *Rasterizer) projectTriangle(tri Triangle) ([3]ScreenVertex, error) {
	var sv [3]ScreenVertex
	for i, v := range tri.Vertices() {
		p, err := r.Project(v)
		if err != nil {
			return sv, err
		}
		sv[i] = p
	}
	return sv, nil
}

// DrawTriangle projects and fills one triangle. A triangle with a vertex
// on the camera plane is skipped and counted in Stats.Skipped.
func (r *Rasterizer) DrawTriangle(tri Triangle) {
	sv, err := r.projectTriangle(tri)
	if err != nil {
		r.Stats.Skipped++
		Logger().Debug("skipping triangle", "err", err)
		return
	}
	r.FillTriangle(sv, tri.Color)
	r.Stats.Drawn++
}

// FillTriangle scan-converts an already projected triangle.
//
// Vertices are sorted top to bottom; the long edge A→C is walked against
// the two short edges A→B→C, and one comparison at the middle row decides
// which of them is the left boundary for the whole triangle. Each covered
// pixel is submitted with its linearly interpolated depth, so the nearest
// surface wins regardless of draw order.
func (r *Rasterizer) FillTriangle(v [3]ScreenVertex, c Color) {
	a, b, cv := v[0], v[1], v[2]
	if b.P.Y < a.P.Y {
		a, b = b, a
	}
	if cv.P.Y < a.P.Y {
		a, cv = cv, a
	}
	if cv.P.Y < b.P.Y {
		b, cv = cv, b
	}

	if a.P.Y == cv.P.Y {
		r.fillFlat(a, b, cv, c)
		return
	}

	xab := Interpolate(a.P.Y, float64(a.P.X), b.P.Y, float64(b.P.X))
	zab := Interpolate(a.P.Y, a.Depth, b.P.Y, b.Depth)

	xbc := Interpolate(b.P.Y, float64(b.P.X), cv.P.Y, float64(cv.P.X))
	zbc := Interpolate(b.P.Y, b.Depth, cv.P.Y, cv.Depth)

	xac := Interpolate(a.P.Y, float64(a.P.X), cv.P.Y, float64(cv.P.X))
	zac := Interpolate(a.P.Y, a.Depth, cv.P.Y, cv.Depth)

	// The last row of A→B is the first row of B→C.
	xabc := concat(xab[:len(xab)-1], xbc)
	zabc := concat(zab[:len(zab)-1], zbc)

	xl, xr := xac, xabc
	zl, zr := zac, zabc
	if m := len(xabc) / 2; !(xac[m] < xabc[m]) {
		xl, xr = xabc, xac
		zl, zr = zabc, zac
	}

	top := max(a.P.Y, 0)
	bottom := min(cv.P.Y, r.buf.Height-1)
	for y := top; y <= bottom; y++ {
		i := y - a.P.Y
		left, right := xl[i], xr[i]
		dl, dr := zl[i], zr[i]
		if left > right {
			// Only reachable when the middle-row comparison was a tie.
			left, right = right, left
			dl, dr = dr, dl
		}

		x0 := int(math.Ceil(left - edgeEpsilon))
		x1 := int(math.Floor(right + edgeEpsilon))
		if x0 > x1 || x1 < 0 || x0 >= r.buf.Width {
			continue
		}

		depths := Interpolate(x0, dl, x1, dr)
		for x := max(x0, 0); x <= min(x1, r.buf.Width-1); x++ {
			r.buf.Set(x, y, c, depths[x-x0])
		}
	}
}

// fillFlat covers a triangle collapsed onto a single row: the span between
// its leftmost and rightmost vertex.
func (r *Rasterizer) fillFlat(a, b, c ScreenVertex, col Color) {
	left, right := a, a
	for _, v := range [2]ScreenVertex{b, c} {
		if v.P.X < left.P.X {
			left = v
		}
		if v.P.X > right.P.X {
			right = v
		}
	}
	y := a.P.Y
	if y < 0 || y >= r.buf.Height {
		return
	}
	depths := Interpolate(left.P.X, left.Depth, right.P.X, right.Depth)
	for x := max(left.P.X, 0); x <= min(right.P.X, r.buf.Width-1); x++ {
		r.buf.Set(x, y, col, depths[x-left.P.X])
	}
}

// DrawMesh draws every triangle of m.
func (r *Rasterizer) DrawMesh(m MeshSource) {
	for i := 0; i < m.TriangleCount(); i++ {
		r.DrawTriangle(m.Triangle(i))
	}
}

func concat(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}
