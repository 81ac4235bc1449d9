// Package config loads scanline scene descriptions from YAML.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/models"
	"github.com/taigrr/scanline/pkg/render"
	"github.com/taigrr/scanline/pkg/scene"
)

// Mesh kinds.
const (
	KindCube      = "cube"
	KindTriangles = "triangles"
	KindGLTF      = "gltf"
)

var (
	// ErrUnknownKind is returned for a mesh whose kind is not one of the
	// Kind constants.
	ErrUnknownKind = errors.New("unknown mesh kind")
	// ErrInvalid is returned for a structurally valid file with unusable
	// values.
	ErrInvalid = errors.New("invalid scene")
)

// Vec is a YAML [x, y, z] triple.
type Vec [3]float64

func (v Vec) vec3() math3d.Vec3 { return math3d.V3(v[0], v[1], v[2]) }

// File mirrors the YAML document.
type File struct {
	Camera    Camera  `yaml:"camera"`
	Motion    Motion  `yaml:"motion"`
	Wireframe bool    `yaml:"wireframe"`
	WireColor string  `yaml:"wireframe_color"`
	Axes      bool    `yaml:"axes"`
	Palette   Palette `yaml:"palette"`
	Meshes    []Mesh  `yaml:"meshes"`
}

// Camera mirrors render.Camera. Missing fields take DefaultCamera's values.
type Camera struct {
	Position   *Vec     `yaml:"position"`
	Rotation   *Vec     `yaml:"rotation"`
	Projection *Vec     `yaml:"projection"`
	Scale      *float64 `yaml:"scale"`
}

// Motion mirrors scene.Motion.
type Motion struct {
	Translate Vec     `yaml:"translate"`
	Rotate    Vec     `yaml:"rotate"`
	Frequency float64 `yaml:"frequency"`
	Damping   float64 `yaml:"damping"`
}

// Palette selects the golden-angle palette used for meshes without
// explicit colors, or a fixed list when Colors is set.
type Palette struct {
	Saturation float64  `yaml:"saturation"`
	Value      float64  `yaml:"value"`
	Colors     []string `yaml:"colors"`
}

// Mesh is one entry of the meshes list.
type Mesh struct {
	Name      string     `yaml:"name"`
	Kind      string     `yaml:"kind"`
	Size      float64    `yaml:"size"`
	Offset    Vec        `yaml:"offset"`
	Path      string     `yaml:"path"`
	Scale     float64    `yaml:"scale"`
	Color     string     `yaml:"color"`
	Triangles []Triangle `yaml:"triangles"`
}

// Triangle is an explicit triangle. An empty Color falls back to the
// palette.
type Triangle struct {
	A     Vec    `yaml:"a"`
	B     Vec    `yaml:"b"`
	C     Vec    `yaml:"c"`
	Color string `yaml:"color"`
}

// Parse decodes a YAML scene. Unknown keys are rejected.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	return &f, nil
}

// Load reads and builds the scene config at path. Relative glTF paths are
// resolved against the scene file's directory.
func Load(path string) (scene.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return scene.Config{}, fmt.Errorf("read scene: %w", err)
	}
	f, err := Parse(bytes.NewReader(data))
	if err != nil {
		return scene.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg, err := f.Build(filepath.Dir(path))
	if err != nil {
		return scene.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	render.Logger().Info("loaded scene", "path", path, "meshes", len(cfg.Meshes))
	return cfg, nil
}

// Build turns the parsed file into a scene.Config. dir anchors relative
// mesh paths.
func (f *File) Build(dir string) (scene.Config, error) {
	cam, err := f.Camera.build()
	if err != nil {
		return scene.Config{}, err
	}

	palette, err := f.Palette.build()
	if err != nil {
		return scene.Config{}, err
	}

	cfg := scene.Config{
		Camera: cam,
		Motion: scene.Motion{
			Translate: f.Motion.Translate,
			Rotate:    f.Motion.Rotate,
			Frequency: f.Motion.Frequency,
			Damping:   f.Motion.Damping,
		},
		Wireframe: f.Wireframe,
		Axes:      f.Axes,
	}
	if f.WireColor != "" {
		if cfg.WireframeColor, err = render.ParseColor(f.WireColor); err != nil {
			return scene.Config{}, fmt.Errorf("wireframe_color: %w", err)
		}
	}

	for i, m := range f.Meshes {
		mesh, err := m.build(dir, palette)
		if err != nil {
			return scene.Config{}, fmt.Errorf("mesh %d (%s): %w", i, m.Name, err)
		}
		cfg.Meshes = append(cfg.Meshes, mesh)
	}
	return cfg, nil
}

func (c Camera) build() (render.Camera, error) {
	cam := render.DefaultCamera()
	if c.Position != nil {
		cam.Position = c.Position.vec3()
	}
	if c.Rotation != nil {
		cam.Rotation = c.Rotation.vec3()
	}
	if c.Projection != nil {
		cam.Projection = c.Projection.vec3()
	}
	if c.Scale != nil {
		cam.Scale = *c.Scale
	}
	if cam.Projection.Z == 0 || cam.Scale == 0 {
		return cam, fmt.Errorf("camera: %w: focal distance and scale must be non-zero", ErrInvalid)
	}
	return cam, nil
}

func (p Palette) build() (render.Palette, error) {
	if len(p.Colors) > 0 {
		colors := make([]render.Color, len(p.Colors))
		for i, s := range p.Colors {
			c, err := render.ParseColor(s)
			if err != nil {
				return nil, fmt.Errorf("palette color %d: %w", i, err)
			}
			colors[i] = c
		}
		return render.FixedPalette(colors...), nil
	}
	s, v := p.Saturation, p.Value
	if s == 0 {
		s = 0.6
	}
	if v == 0 {
		v = 0.95
	}
	return render.GoldenPalette(s, v), nil
}

func (m Mesh) build(dir string, palette render.Palette) (*models.Mesh, error) {
	if m.Color != "" {
		c, err := render.ParseColor(m.Color)
		if err != nil {
			return nil, err
		}
		palette = render.FixedPalette(c)
	}

	var mesh *models.Mesh
	switch m.Kind {
	case KindCube:
		size := m.Size
		if size == 0 {
			size = 100
		}
		mesh = models.Cube(size, palette)

	case KindTriangles:
		if len(m.Triangles) == 0 {
			return nil, fmt.Errorf("%w: no triangles", ErrInvalid)
		}
		tris := make([]render.Triangle, len(m.Triangles))
		for i, t := range m.Triangles {
			c := palette(i)
			if t.Color != "" {
				var err error
				if c, err = render.ParseColor(t.Color); err != nil {
					return nil, fmt.Errorf("triangle %d: %w", i, err)
				}
			}
			tris[i] = render.NewTriangle(t.A.vec3(), t.B.vec3(), t.C.vec3(), c)
		}
		mesh = models.NewMesh("triangles", tris...)

	case KindGLTF:
		if m.Path == "" {
			return nil, fmt.Errorf("%w: gltf mesh needs a path", ErrInvalid)
		}
		path := m.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(dir, path)
		}
		loader := models.NewGLTFLoader(palette)
		if m.Scale != 0 {
			loader.Scale = m.Scale
		}
		var err error
		if mesh, err = loader.Load(path); err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, m.Kind)
	}

	if m.Name != "" {
		mesh.Name = m.Name
	}
	if m.Offset != (Vec{}) {
		mesh = mesh.Translate(m.Offset[0], m.Offset[1], m.Offset[2])
	}
	return mesh, nil
}
