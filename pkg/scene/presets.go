package scene

import (
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/models"
	"github.com/taigrr/scanline/pkg/render"
)

// Default is the single green triangle demo with a static camera.
func Default() *Scene {
	tri := render.NewTriangle(
		math3d.V3(-200, -250, 0.3),
		math3d.V3(200, 50, 0.1),
		math3d.V3(20, 250, 1.0),
		render.ColorGreen,
	)
	return New(Config{
		Camera: render.DefaultCamera(),
		Meshes: []*models.Mesh{models.NewMesh("triangle", tri)},
	})
}

// CubeScene shows two cubes touching along an edge, the second moved
// diagonally by one cube size.
func CubeScene() *Scene {
	p := render.GoldenPalette(0.6, 0.95)
	cube := models.Cube(100, p)
	return New(Config{
		Camera: render.DefaultCamera(),
		Meshes: []*models.Mesh{
			cube,
			cube.Translate(100, 100, 0),
		},
	})
}
