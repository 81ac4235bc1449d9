package render

import (
	"github.com/taigrr/scanline/pkg/math3d"
)

// Triangle is three world-space vertices sharing one flat color.
// Vertex order only matters for winding, never for visibility.
type Triangle struct {
	A, B, C math3d.Vec3
	Color   Color
}

// NewTriangle creates a triangle.
func NewTriangle(a, b, c math3d.Vec3, color Color) Triangle {
	return Triangle{A: a, B: b, C: c, Color: color}
}

// Vertices returns the three vertices in order.
func (t Triangle) Vertices() [3]math3d.Vec3 {
	return [3]math3d.Vec3{t.A, t.B, t.C}
}

// Translate returns a copy of t moved by (x, y, z).
func (t Triangle) Translate(x, y, z float64) Triangle {
	return Triangle{
		A:     t.A.Translate(x, y, z),
		B:     t.B.Translate(x, y, z),
		C:     t.C.Translate(x, y, z),
		Color: t.Color,
	}
}

// Transform returns a copy of t with every vertex multiplied by m.
func (t Triangle) Transform(m math3d.Mat4) Triangle {
	return Triangle{
		A:     m.MulVec3(t.A),
		B:     m.MulVec3(t.B),
		C:     m.MulVec3(t.C),
		Color: t.Color,
	}
}

// Normal returns the unnormalized face normal (B-A) × (C-A).
func (t Triangle) Normal() math3d.Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A))
}
