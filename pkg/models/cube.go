package models

import (
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
)

// unitCube lists the cube with corners at 0 and 1, two triangles per face.
var unitCube = [12][3][3]float64{
	// Bottom
	{{1, 0, 0}, {0, 0, 0}, {0, 0, 1}},
	{{1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	// Front
	{{0, 0, 0}, {0, 1, 0}, {1, 1, 0}},
	{{0, 0, 0}, {1, 0, 0}, {1, 1, 0}},
	// Left
	{{0, 1, 0}, {0, 0, 0}, {0, 0, 1}},
	{{0, 1, 0}, {0, 1, 1}, {0, 0, 1}},
	// Back
	{{1, 0, 1}, {0, 0, 1}, {0, 1, 1}},
	{{1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	// Right
	{{1, 0, 0}, {1, 0, 1}, {1, 1, 1}},
	{{1, 0, 0}, {1, 1, 0}, {1, 1, 1}},
	// Top
	{{1, 1, 0}, {0, 1, 0}, {0, 1, 1}},
	{{1, 1, 0}, {1, 1, 1}, {0, 1, 1}},
}

// Cube builds an axis-aligned cube spanning [0, size] on every axis, one
// palette color per triangle.
func Cube(size float64, p render.Palette) *Mesh {
	tris := make([]render.Triangle, len(unitCube))
	for i, t := range unitCube {
		tris[i] = render.NewTriangle(
			math3d.V3(t[0][0], t[0][1], t[0][2]).Scale(size),
			math3d.V3(t[1][0], t[1][1], t[1][2]).Scale(size),
			math3d.V3(t[2][0], t[2][1], t[2][2]).Scale(size),
			p(i),
		)
	}
	return NewMesh("cube", tris...)
}
