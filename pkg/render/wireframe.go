package render

import (
	"math"

	"github.com/taigrr/scanline/pkg/math3d"
)

// OverlayDepth is the depth wireframe overlays are drawn at: nearer than
// any surface, so edges always show.
var OverlayDepth = math.Inf(-1)

// DrawLine draws a line from p1 to p2 using Bresenham's algorithm,
// submitting every visited pixel to the buffer at the given depth.
func (r *Rasterizer) DrawLine(p1, p2 math3d.Point2, c Color, depth float64) {
	x0, y0 := p1.X, p1.Y
	x1, y1 := p2.X, p2.Y

	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		r.buf.Set(x0, y0, c, depth)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
	r.Stats.Lines++
}

// DrawLine3D projects both endpoints and draws the segment between them.
// Segments with a degenerate endpoint are dropped.
func (r *Rasterizer) DrawLine3D(p1, p2 math3d.Vec3, c Color) {
	a, err := r.Project(p1)
	if err != nil {
		Logger().Debug("skipping line", "err", err)
		return
	}
	b, err := r.Project(p2)
	if err != nil {
		Logger().Debug("skipping line", "err", err)
		return
	}
	r.DrawLine(a.P, b.P, c, OverlayDepth)
}

// DrawTriangleWireframe outlines a triangle.
func (r *Rasterizer) DrawTriangleWireframe(tri Triangle, c Color) {
	sv, err := r.projectTriangle(tri)
	if err != nil {
		r.Stats.Skipped++
		Logger().Debug("skipping wireframe triangle", "err", err)
		return
	}
	r.DrawLine(sv[0].P, sv[1].P, c, OverlayDepth)
	r.DrawLine(sv[1].P, sv[2].P, c, OverlayDepth)
	r.DrawLine(sv[2].P, sv[0].P, c, OverlayDepth)
}

// DrawMeshWireframe outlines every triangle of m.
func (r *Rasterizer) DrawMeshWireframe(m MeshSource, c Color) {
	for i := 0; i < m.TriangleCount(); i++ {
		r.DrawTriangleWireframe(m.Triangle(i), c)
	}
}

// DrawAxes draws the world axes from the origin: X red, Y green, Z blue.
func (r *Rasterizer) DrawAxes(length float64) {
	origin := math3d.Zero3()
	r.DrawLine3D(origin, math3d.V3(length, 0, 0), ColorRed)
	r.DrawLine3D(origin, math3d.V3(0, length, 0), ColorGreen)
	r.DrawLine3D(origin, math3d.V3(0, 0, length), ColorBlue)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
