package scene

import (
	"fmt"
	"path/filepath"
	"strings"

	"terrain-demo/core"
)

// LoadModel loads a mesh file, choosing the parser by extension, and merges
// all of its parts into one mesh.
func LoadModel(path string) (*Mesh, error) {
	var parts []*Mesh
	var err error
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		parts, err = LoadOBJ(path)
	case ".glb", ".gltf":
		parts, err = LoadGLTF(path)
	default:
		return nil, fmt.Errorf("load model %q: unsupported format %q", path, ext)
	}
	if err != nil {
		return nil, err
	}
	merged := MergeMeshes(filepath.Base(path), parts)
	if merged == nil {
		return nil, fmt.Errorf("load model %q: no geometry found", path)
	}
	return merged, nil
}

// MergeMeshes concatenates indexed triangle meshes, baking each part's albedo
// into its vertex colours so the parts keep their look under one material.
func MergeMeshes(name string, parts []*Mesh) *Mesh {
	switch len(parts) {
	case 0:
		return nil
	case 1:
		return parts[0]
	}

	var vertices []core.Vertex
	var indices []uint32
	for _, p := range parts {
		albedo := core.ColorWhite
		if p.Material != nil {
			albedo = p.Material.Albedo
		}
		base := uint32(len(vertices))
		for _, v := range p.Vertices {
			v.Color = core.Color{
				R: v.Color.R * albedo.R, G: v.Color.G * albedo.G,
				B: v.Color.B * albedo.B, A: v.Color.A * albedo.A,
			}
			vertices = append(vertices, v)
		}
		if len(p.Indices) == 0 {
			for i := range p.Vertices {
				indices = append(indices, base+uint32(i))
			}
			continue
		}
		for _, idx := range p.Indices {
			indices = append(indices, base+idx)
		}
	}

	m := CreateMeshFromData(name, vertices, indices)
	m.Material = DefaultMaterial()
	if parts[0].Material != nil {
		m.Material.Wireframe = parts[0].Material.Wireframe
	}
	return m
}
