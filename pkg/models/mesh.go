// Package models provides meshes for scanline: the Mesh aggregate, simple
// shape builders and glTF import.
package models

import (
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
)

// Mesh is an ordered list of flat-colored triangles.
type Mesh struct {
	Name      string
	Triangles []render.Triangle

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates a mesh from tris and computes its bounds.
func NewMesh(name string, tris ...render.Triangle) *Mesh {
	m := &Mesh{
		Name:      name,
		Triangles: append([]render.Triangle(nil), tris...),
	}
	m.CalculateBounds()
	return m
}

// Add appends triangles and widens the bounds.
func (m *Mesh) Add(tris ...render.Triangle) {
	m.Triangles = append(m.Triangles, tris...)
	m.CalculateBounds()
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Triangles) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	m.BoundsMin = m.Triangles[0].A
	m.BoundsMax = m.Triangles[0].A

	for _, t := range m.Triangles {
		for _, v := range t.Vertices() {
			m.BoundsMin = m.BoundsMin.Min(v)
			m.BoundsMax = m.BoundsMax.Max(v)
		}
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// TriangleCount returns the number of triangles.
// Implements render.MeshSource.
func (m *Mesh) TriangleCount() int {
	return len(m.Triangles)
}

// Triangle returns triangle i.
// Implements render.MeshSource.
func (m *Mesh) Triangle(i int) render.Triangle {
	return m.Triangles[i]
}

// Translate returns a copy of m moved by (x, y, z).
func (m *Mesh) Translate(x, y, z float64) *Mesh {
	out := &Mesh{Name: m.Name, Triangles: make([]render.Triangle, len(m.Triangles))}
	for i, t := range m.Triangles {
		out.Triangles[i] = t.Translate(x, y, z)
	}
	out.CalculateBounds()
	return out
}

// Transform applies a transformation matrix to all vertices in place.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Triangles {
		m.Triangles[i] = m.Triangles[i].Transform(mat)
	}
	m.CalculateBounds()
}

// Recolor assigns palette color i to triangle i.
func (m *Mesh) Recolor(p render.Palette) {
	for i := range m.Triangles {
		m.Triangles[i].Color = p(i)
	}
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Triangles: make([]render.Triangle, len(m.Triangles)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Triangles, m.Triangles)
	return clone
}
