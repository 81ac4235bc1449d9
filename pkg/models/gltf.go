package models

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"path/filepath"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/qmuntal/gltf"
	"github.com/taigrr/scanline/pkg/math3d"
	"github.com/taigrr/scanline/pkg/render"
)

// ErrNoTriangles is returned when a glTF document holds no triangle
// primitives.
var ErrNoTriangles = errors.New("no triangle primitives")

// GLTFLoader loads GLTF/GLB files into flat-colored meshes.
type GLTFLoader struct {
	// Palette colors triangles whose primitive has no base color factor.
	Palette render.Palette
	// Scale is applied uniformly to every position. Zero means 1.
	Scale float64
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader(p render.Palette) *GLTFLoader {
	if p == nil {
		p = render.GoldenPalette(0.6, 0.95)
	}
	return &GLTFLoader{Palette: p, Scale: 1}
}

// LoadGLTF loads a .gltf or .glb file with the given fallback palette.
func LoadGLTF(path string, p render.Palette) (*Mesh, error) {
	return NewGLTFLoader(p).Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open gltf %s: %w", path, err)
	}

	mesh, err := l.Decode(doc, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return mesh, nil
}

// Decode converts an already parsed document.
func (l *GLTFLoader) Decode(doc *gltf.Document, name string) (*Mesh, error) {
	mesh := NewMesh(name)
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}
	if len(mesh.Triangles) == 0 {
		return nil, ErrNoTriangles
	}
	mesh.CalculateBounds()

	render.Logger().Debug("loaded gltf", "name", name, "triangles", len(mesh.Triangles))
	return mesh, nil
}

// processMesh appends the triangles of every triangle-list primitive.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	scale := l.Scale
	if scale == 0 {
		scale = 1
	}

	for pi, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			render.Logger().Warn("skipping non-triangle primitive", "mesh", m.Name, "primitive", pi, "mode", prim.Mode)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}

		positions, err := readVec3Accessor(doc, posIdx)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		var indices []int
		if prim.Indices != nil {
			indices, err = readIndices(doc, *prim.Indices)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			// No indices, assume sequential triangles
			indices = make([]int, len(positions))
			for i := range indices {
				indices[i] = i
			}
		}

		flat, hasFlat := l.materialColor(doc, prim)
		for i := 0; i+2 < len(indices); i += 3 {
			var v [3]math3d.Vec3
			for j := range 3 {
				k := indices[i+j]
				if k < 0 || k >= len(positions) {
					return fmt.Errorf("index %d out of range (%d positions)", k, len(positions))
				}
				v[j] = positions[k].Scale(scale)
			}
			c := flat
			if !hasFlat {
				c = l.Palette(len(mesh.Triangles))
			}
			mesh.Triangles = append(mesh.Triangles, render.NewTriangle(v[0], v[1], v[2], c))
		}
	}

	return nil
}

// materialColor returns the primitive's base color factor, converted from
// linear to sRGB.
func (l *GLTFLoader) materialColor(doc *gltf.Document, prim *gltf.Primitive) (render.Color, bool) {
	if prim.Material == nil || *prim.Material >= len(doc.Materials) {
		return render.Color{}, false
	}
	mat := doc.Materials[*prim.Material]
	if mat.PBRMetallicRoughness == nil || mat.PBRMetallicRoughness.BaseColorFactor == nil {
		return render.Color{}, false
	}
	f := mat.PBRMetallicRoughness.BaseColorFactor
	r, g, b := colorful.LinearRgb(f[0], f[1], f[2]).Clamped().RGB255()
	a := uint8(math.Round(math.Max(0, math.Min(1, f[3])) * 255))
	return render.RGBA(r, g, b, a), true
}

// readVec3Accessor reads Vec3 data from a GLTF accessor.
func readVec3Accessor(doc *gltf.Document, accessorIdx int) ([]math3d.Vec3, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorVec3 || accessor.ComponentType != gltf.ComponentFloat {
		return nil, fmt.Errorf("expected float VEC3, got %v / %v", accessor.Type, accessor.ComponentType)
	}

	data, start, stride, err := accessorBytes(doc, accessor, 12)
	if err != nil {
		return nil, err
	}

	result := make([]math3d.Vec3, accessor.Count)
	for i := range result {
		offset := start + i*stride
		result[i] = math3d.V3(
			float64(readFloat32(data[offset:])),
			float64(readFloat32(data[offset+4:])),
			float64(readFloat32(data[offset+8:])),
		)
	}
	return result, nil
}

// readIndices reads index data from a GLTF accessor.
func readIndices(doc *gltf.Document, accessorIdx int) ([]int, error) {
	if accessorIdx < 0 || accessorIdx >= len(doc.Accessors) {
		return nil, fmt.Errorf("accessor %d out of range", accessorIdx)
	}
	accessor := doc.Accessors[accessorIdx]
	if accessor.Type != gltf.AccessorScalar {
		return nil, fmt.Errorf("expected SCALAR, got %v", accessor.Type)
	}

	var size int
	switch accessor.ComponentType {
	case gltf.ComponentUbyte:
		size = 1
	case gltf.ComponentUshort:
		size = 2
	case gltf.ComponentUint:
		size = 4
	default:
		return nil, fmt.Errorf("unexpected index type: %v", accessor.ComponentType)
	}

	data, start, stride, err := accessorBytes(doc, accessor, size)
	if err != nil {
		return nil, err
	}

	result := make([]int, accessor.Count)
	for i := range result {
		offset := start + i*stride
		switch size {
		case 1:
			result[i] = int(data[offset])
		case 2:
			result[i] = int(binary.LittleEndian.Uint16(data[offset:]))
		case 4:
			result[i] = int(binary.LittleEndian.Uint32(data[offset:]))
		}
	}
	return result, nil
}

// accessorBytes resolves an accessor to its backing bytes, first element
// offset and stride, checking that every element lies inside the buffer.
func accessorBytes(doc *gltf.Document, accessor *gltf.Accessor, elemSize int) ([]byte, int, int, error) {
	if accessor.BufferView == nil {
		return nil, 0, 0, fmt.Errorf("accessor has no buffer view")
	}
	if *accessor.BufferView >= len(doc.BufferViews) {
		return nil, 0, 0, fmt.Errorf("buffer view %d out of range", *accessor.BufferView)
	}

	bufferView := doc.BufferViews[*accessor.BufferView]
	if bufferView.Buffer >= len(doc.Buffers) {
		return nil, 0, 0, fmt.Errorf("buffer %d out of range", bufferView.Buffer)
	}
	data := doc.Buffers[bufferView.Buffer].Data
	if data == nil {
		return nil, 0, 0, fmt.Errorf("buffer has no data")
	}

	start := bufferView.ByteOffset + accessor.ByteOffset
	stride := bufferView.ByteStride
	if stride == 0 {
		stride = elemSize
	}
	if accessor.Count > 0 {
		end := start + (accessor.Count-1)*stride + elemSize
		if end > len(data) {
			return nil, 0, 0, fmt.Errorf("accessor reads past buffer end (%d > %d)", end, len(data))
		}
	}
	return data, start, stride, nil
}

// readFloat32 reads a little-endian float32.
func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
