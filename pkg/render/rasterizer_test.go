package render

import (
	"math"
	"testing"

	"github.com/taigrr/scanline/pkg/math3d"
)

// mockMesh implements MeshSource for testing.
type mockMesh struct {
	tris []Triangle
}

func (m *mockMesh) TriangleCount() int      { return len(m.tris) }
func (m *mockMesh) Triangle(i int) Triangle { return m.tris[i] }

// edgeCoeffs returns A, B, C for the edge function A*x + B*y + C of the
// directed edge (x0, y0) → (x1, y1).
func edgeCoeffs(x0, y0, x1, y1 float64) (A, B, C float64) {
	A = y0 - y1
	B = x1 - x0
	C = x0*y1 - x1*y0
	return
}

// insideTriangle is an oracle independent of the scan-line code: a point
// is inside (edges included) when all three edge functions share a sign.
func insideTriangle(v [3]math3d.Point2, x, y int) bool {
	var pos, neg bool
	for i := range 3 {
		a, b := v[i], v[(i+1)%3]
		A, B, C := edgeCoeffs(float64(a.X), float64(a.Y), float64(b.X), float64(b.Y))
		e := A*float64(x) + B*float64(y) + C
		if e > 0 {
			pos = true
		}
		if e < 0 {
			neg = true
		}
	}
	return !(pos && neg)
}

// screenCamera maps world (x, -y, 1) to pixel (x, y) on a width×height
// buffer, so tests can place triangles directly in screen space.
func screenCamera(width, height int) Camera {
	return NewCamera(
		math3d.Zero3(),
		math3d.Zero3(),
		math3d.V3(-float64(width)/2, -float64(height)/2, 1),
		1,
	)
}

func screenPoint(x, y int) math3d.Vec3 {
	return math3d.V3(float64(x), -float64(y), 1)
}

// createTestRasterizer creates a rasterizer with a screen-space camera.
func createTestRasterizer(width, height int) (*Rasterizer, *Buffer) {
	buf := NewBuffer(width, height)
	return NewRasterizer(screenCamera(width, height), buf), buf
}

func checkAgainstOracle(t *testing.T, buf *Buffer, v [3]math3d.Point2, c Color) {
	t.Helper()
	for y := 0; y < buf.Height; y++ {
		for x := 0; x < buf.Width; x++ {
			want := insideTriangle(v, x, y)
			got := buf.Get(x, y) == c
			if got != want {
				t.Errorf("pixel (%d, %d): filled=%v, oracle=%v", x, y, got, want)
			}
		}
	}
}

func TestFillTriangleRightTriangle(t *testing.T) {
	// Every vertex order must cover exactly x >= 0, y >= 0, x + y <= 10.
	corners := [3]math3d.Point2{math3d.P2(0, 0), math3d.P2(10, 0), math3d.P2(0, 10)}
	orders := [][3]int{{0, 1, 2}, {0, 2, 1}, {1, 0, 2}, {1, 2, 0}, {2, 0, 1}, {2, 1, 0}}

	for _, o := range orders {
		r, buf := createTestRasterizer(16, 16)
		var sv [3]ScreenVertex
		for i, idx := range o {
			sv[i] = ScreenVertex{P: corners[idx], Depth: 1}
		}
		r.FillTriangle(sv, ColorGreen)

		for y := range 16 {
			for x := range 16 {
				want := x+y <= 10
				if got := buf.Get(x, y) == ColorGreen; got != want {
					t.Errorf("order %v pixel (%d, %d): filled=%v, want %v", o, x, y, got, want)
				}
			}
		}
		checkAgainstOracle(t, buf, corners, ColorGreen)
	}
}

func TestDrawTriangleMatchesOracle(t *testing.T) {
	tests := []struct {
		name string
		v    [3]math3d.Point2
	}{
		{"right triangle", [3]math3d.Point2{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}},
		{"obtuse", [3]math3d.Point2{{X: 2, Y: 3}, {X: 30, Y: 9}, {X: 5, Y: 20}}},
		{"flat bottom", [3]math3d.Point2{{X: 15, Y: 2}, {X: 4, Y: 22}, {X: 28, Y: 22}}},
		{"flat top", [3]math3d.Point2{{X: 3, Y: 4}, {X: 27, Y: 4}, {X: 12, Y: 25}}},
		{"sliver", [3]math3d.Point2{{X: 1, Y: 1}, {X: 30, Y: 3}, {X: 2, Y: 2}}},
		{"partly off screen", [3]math3d.Point2{{X: -10, Y: -5}, {X: 40, Y: 12}, {X: 8, Y: 40}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r, buf := createTestRasterizer(32, 32)
			tri := NewTriangle(
				screenPoint(tc.v[0].X, tc.v[0].Y),
				screenPoint(tc.v[1].X, tc.v[1].Y),
				screenPoint(tc.v[2].X, tc.v[2].Y),
				ColorBlue,
			)
			r.DrawTriangle(tri)

			if r.Stats.Drawn != 1 || r.Stats.Skipped != 0 {
				t.Fatalf("stats = %+v", r.Stats)
			}
			checkAgainstOracle(t, buf, tc.v, ColorBlue)
		})
	}
}

func TestFillTriangleInterpolatesDepth(t *testing.T) {
	r, buf := createTestRasterizer(16, 16)
	r.FillTriangle([3]ScreenVertex{SV(0, 0, 1), SV(10, 0, 11), SV(0, 10, 1)}, ColorRed)

	if got := buf.Depth(0, 0); got != 1 {
		t.Errorf("depth at A = %v, want 1", got)
	}
	if got := buf.Depth(10, 0); got != 11 {
		t.Errorf("depth at B = %v, want 11", got)
	}
	if got := buf.Depth(5, 0); math.Abs(got-6) > 1e-9 {
		t.Errorf("depth halfway along top row = %v, want 6", got)
	}
}

func TestNearestSurfaceWinsRegardlessOfOrder(t *testing.T) {
	near := [3]ScreenVertex{SV(0, 0, 2), SV(20, 0, 2), SV(0, 20, 2)}
	far := [3]ScreenVertex{SV(5, 5, 9), SV(25, 5, 9), SV(5, 25, 9)}

	draw := func(first, second [3]ScreenVertex, c1, c2 Color) *Buffer {
		r, buf := createTestRasterizer(32, 32)
		r.FillTriangle(first, c1)
		r.FillTriangle(second, c2)
		return buf
	}

	a := draw(near, far, ColorRed, ColorBlue)
	b := draw(far, near, ColorBlue, ColorRed)

	for i := range a.Cells {
		if a.Cells[i] != b.Cells[i] {
			x, y := i%a.Width, i/a.Width
			t.Fatalf("pixel (%d, %d) differs by draw order: %v vs %v", x, y, a.Cells[i], b.Cells[i])
		}
	}
	if got := a.Get(6, 6); got != ColorRed {
		t.Errorf("overlap pixel = %v, want the nearer red", got)
	}
	if got := a.Get(20, 10); got != ColorBlue {
		t.Errorf("far-only pixel = %v, want blue", got)
	}
}

func TestDrawTriangleSkipsDegenerate(t *testing.T) {
	r, buf := createTestRasterizer(16, 16)
	tri := NewTriangle(screenPoint(1, 1), math3d.V3(5, 5, 0), screenPoint(1, 8), ColorRed)
	r.DrawTriangle(tri)

	if r.Stats.Skipped != 1 || r.Stats.Drawn != 0 {
		t.Errorf("stats = %+v, want one skipped", r.Stats)
	}
	for i, c := range buf.Cells {
		if c != emptyCell {
			t.Fatalf("cell %d written: %v", i, c)
		}
	}
}

func TestDrawMesh(t *testing.T) {
	r, buf := createTestRasterizer(32, 32)
	mesh := &mockMesh{tris: []Triangle{
		NewTriangle(screenPoint(0, 0), screenPoint(10, 0), screenPoint(0, 10), ColorRed),
		NewTriangle(screenPoint(20, 20), screenPoint(30, 20), screenPoint(20, 30), ColorGreen),
		NewTriangle(screenPoint(0, 0), math3d.V3(1, 1, 0), screenPoint(0, 10), ColorBlue),
	}}

	r.DrawMesh(mesh)

	if r.Stats.Drawn != 2 || r.Stats.Skipped != 1 {
		t.Errorf("stats = %+v, want 2 drawn 1 skipped", r.Stats)
	}
	if buf.Get(1, 1) != ColorRed || buf.Get(21, 21) != ColorGreen {
		t.Errorf("mesh triangles missing: %v %v", buf.Get(1, 1), buf.Get(21, 21))
	}

	r.ResetStats()
	if r.Stats != (Stats{}) {
		t.Errorf("ResetStats left %+v", r.Stats)
	}
}

func TestDrawTriangleThroughPerspective(t *testing.T) {
	// A triangle straddling the optical axis at depth 100 covers the
	// screen center; the stored depth is the camera-space z.
	buf := NewBuffer(400, 300)
	r := NewRasterizer(DefaultCamera(), buf)
	tri := NewTriangle(
		math3d.V3(-100, -100, -400),
		math3d.V3(100, -100, -400),
		math3d.V3(0, 100, -400),
		ColorGreen,
	)
	r.DrawTriangle(tri)

	if buf.Get(200, 150) != ColorGreen {
		t.Errorf("center = %v, want green", buf.Get(200, 150))
	}
	if d := buf.Depth(200, 150); math.Abs(d-100) > 1e-9 {
		t.Errorf("center depth = %v, want 100", d)
	}
	if buf.Get(0, 0) != ColorWhite {
		t.Errorf("corner = %v, want background", buf.Get(0, 0))
	}
}

func BenchmarkFillTriangle(b *testing.B) {
	r, _ := createTestRasterizer(400, 300)
	sv := [3]ScreenVertex{SV(10, 10, 1), SV(390, 40, 2), SV(150, 290, 3)}
	for b.Loop() {
		r.FillTriangle(sv, ColorRed)
	}
}

func TestFillTriangleSingleRow(t *testing.T) {
	r, buf := createTestRasterizer(16, 4)
	r.FillTriangle([3]ScreenVertex{SV(5, 2, 1), SV(2, 2, 1), SV(12, 2, 1)}, ColorRed)

	for x := range 16 {
		want := x >= 2 && x <= 12
		if got := buf.Get(x, 2) == ColorRed; got != want {
			t.Errorf("pixel (%d, 2): filled=%v, want %v", x, got, want)
		}
	}
	if buf.Get(5, 1) != ColorWhite || buf.Get(5, 3) != ColorWhite {
		t.Error("single-row triangle leaked into neighbouring rows")
	}
}
