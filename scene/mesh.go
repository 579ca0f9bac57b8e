package scene

import (
	"terrain-demo/core"
	"terrain-demo/math"
)

// DrawMode controls the OpenGL primitive type used when rendering a mesh.
type DrawMode int

const (
	DrawTriangles DrawMode = iota // gl.TRIANGLES (default)
	DrawLines                     // gl.LINES, pairs of indices form segments
)

// AABB is an axis-aligned bounding box.
type AABB struct {
	Min, Max math.Vec3
}

func (b AABB) Center() math.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Size() math.Vec3 {
	return b.Max.Sub(b.Min)
}

// Mesh holds CPU-side vertex/index data.
// GPU upload is managed by the renderer backend.
type Mesh struct {
	Name     string
	Vertices []core.Vertex
	Indices  []uint32
	DrawMode DrawMode

	LocalAABB AABB

	// Material holds surface shading properties. If nil, DefaultMaterial() is used.
	Material *Material

	// GPUData is set by the renderer backend (e.g. *opengl.GPUMesh).
	GPUData interface{}
}

// CreateMeshFromData builds a Mesh and pre-computes its local-space AABB.
func CreateMeshFromData(name string, vertices []core.Vertex, indices []uint32) *Mesh {
	m := &Mesh{
		Name:     name,
		Vertices: vertices,
		Indices:  indices,
	}
	if len(vertices) > 0 {
		m.LocalAABB = computeLocalAABB(vertices)
	}
	return m
}

func computeLocalAABB(vertices []core.Vertex) AABB {
	min := vertices[0].Position
	max := vertices[0].Position
	for i := 1; i < len(vertices); i++ {
		p := vertices[i].Position
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.Z < min.Z {
			min.Z = p.Z
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
		if p.Z > max.Z {
			max.Z = p.Z
		}
	}
	return AABB{Min: min, Max: max}
}

// TriangleCount reports how many triangles an indexed triangle mesh draws.
func (m *Mesh) TriangleCount() int {
	if m.DrawMode != DrawTriangles {
		return 0
	}
	if len(m.Indices) > 0 {
		return len(m.Indices) / 3
	}
	return len(m.Vertices) / 3
}

// CreateLine builds a single segment drawn with DrawLines.
func CreateLine(name string, start, end math.Vec3, color core.Color) *Mesh {
	m := CreateMeshFromData(name, []core.Vertex{
		{Position: start, Normal: math.Vec3Up, Color: color},
		{Position: end, Normal: math.Vec3Up, Color: color},
	}, []uint32{0, 1})
	m.DrawMode = DrawLines
	m.Material = DefaultMaterial()
	m.Material.Unlit = true
	return m
}

// SetLine moves both ends of a mesh built by CreateLine.
func (m *Mesh) SetLine(start, end math.Vec3) {
	m.Vertices[0].Position = start
	m.Vertices[1].Position = end
	m.LocalAABB = computeLocalAABB(m.Vertices)
}

// CreateCube builds a single-coloured cube centred on the origin. The demo
// falls back to it when no player model is configured.
func CreateCube(size float32, color core.Color) *Mesh {
	s := size / 2

	faces := []struct {
		normal math.Vec3
		u, v   math.Vec3
	}{
		{math.Vec3{X: 0, Y: 0, Z: 1}, math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 1, Z: 0}},
		{math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: -1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 1, Z: 0}},
		{math.Vec3{X: 0, Y: 1, Z: 0}, math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 0, Z: -1}},
		{math.Vec3{X: 0, Y: -1, Z: 0}, math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 0, Z: 1}},
		{math.Vec3{X: 1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 0, Z: -1}, math.Vec3{X: 0, Y: 1, Z: 0}},
		{math.Vec3{X: -1, Y: 0, Z: 0}, math.Vec3{X: 0, Y: 0, Z: 1}, math.Vec3{X: 0, Y: 1, Z: 0}},
	}
	corners := [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}}

	vertices := make([]core.Vertex, 0, 24)
	indices := make([]uint32, 0, 36)
	for _, f := range faces {
		base := uint32(len(vertices))
		for _, c := range corners {
			pos := f.normal.Add(f.u.Mul(c[0])).Add(f.v.Mul(c[1])).Mul(s)
			vertices = append(vertices, core.Vertex{
				Position: pos,
				Normal:   f.normal,
				UV:       math.Vec2{X: (c[0] + 1) / 2, Y: (c[1] + 1) / 2},
				Color:    color,
			})
		}
		indices = append(indices, base, base+1, base+2, base+2, base+3, base)
	}

	return CreateMeshFromData("Cube", vertices, indices)
}
