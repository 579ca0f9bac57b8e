package scene

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"terrain-demo/core"
	"terrain-demo/math"
)

var identityMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}

// LoadGLTF opens a .glb or .gltf file and returns its geometry as flat meshes:
// node transforms are baked into the vertices so each mesh can hang off a
// single scene node. Base colour factors become the material albedo.
func LoadGLTF(path string) ([]*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}
	meshes, err := meshesFromGLTF(doc)
	if err != nil {
		return nil, fmt.Errorf("gltf %q: %w", path, err)
	}
	return meshes, nil
}

func meshesFromGLTF(doc *gltf.Document) ([]*Mesh, error) {
	materials := make([]*Material, len(doc.Materials))
	for i, gm := range doc.Materials {
		mat := DefaultMaterial()
		mat.Name = gm.Name
		if pbr := gm.PBRMetallicRoughness; pbr != nil {
			cf := pbr.BaseColorFactorOrDefault()
			mat.Albedo = core.Color{
				R: float32(cf[0]), G: float32(cf[1]),
				B: float32(cf[2]), A: float32(cf[3]),
			}
		}
		materials[i] = mat
	}

	var meshes []*Mesh
	// scene roots are not range-checked by the decoder and a malformed file
	// may link nodes into a cycle
	visited := make([]bool, len(doc.Nodes))
	var visit func(idx int, parent math.Mat4)
	visit = func(idx int, parent math.Mat4) {
		if idx < 0 || idx >= len(doc.Nodes) || visited[idx] || doc.Nodes[idx] == nil {
			return
		}
		visited[idx] = true
		gn := doc.Nodes[idx]
		world := gltfNodeMatrix(gn).Mul(parent)

		if gn.Mesh != nil && *gn.Mesh < len(doc.Meshes) {
			gm := doc.Meshes[*gn.Mesh]
			for pi, prim := range gm.Primitives {
				m, err := loadGLTFPrimitive(doc, gm.Name, pi, prim)
				if err != nil {
					// skip broken primitives, keep the rest of the model
					continue
				}
				bakeTransform(m, world)
				if prim.Material != nil && *prim.Material < len(materials) {
					m.Material = materials[*prim.Material]
				} else {
					m.Material = DefaultMaterial()
				}
				meshes = append(meshes, m)
			}
		}
		for _, child := range gn.Children {
			visit(child, world)
		}
	}

	for _, root := range gltfRoots(doc) {
		visit(root, math.Mat4Identity())
	}
	if len(meshes) == 0 {
		return nil, fmt.Errorf("no geometry found")
	}
	return meshes, nil
}

// gltfRoots returns the default scene's nodes, or every parentless node when
// the document names no scene.
func gltfRoots(doc *gltf.Document) []int {
	if doc.Scene != nil && *doc.Scene < len(doc.Scenes) {
		return doc.Scenes[*doc.Scene].Nodes
	}
	hasParent := make([]bool, len(doc.Nodes))
	for _, gn := range doc.Nodes {
		for _, c := range gn.Children {
			if c < len(hasParent) {
				hasParent[c] = true
			}
		}
	}
	var roots []int
	for i := range doc.Nodes {
		if !hasParent[i] {
			roots = append(roots, i)
		}
	}
	return roots
}

// gltfNodeMatrix returns the node's local transform in Mat4 layout. glTF
// stores column-major matrices for column vectors, which is exactly the
// row-vector Mat4 read row by row.
func gltfNodeMatrix(gn *gltf.Node) math.Mat4 {
	if raw := gn.MatrixOrDefault(); raw != identityMatrix {
		var m math.Mat4
		for i := 0; i < 4; i++ {
			for j := 0; j < 4; j++ {
				m[i][j] = float32(raw[i*4+j])
			}
		}
		return m
	}

	t := gn.TranslationOrDefault()
	r := gn.RotationOrDefault() // [x, y, z, w]
	s := gn.ScaleOrDefault()
	rot := math.Quaternion{X: float32(r[0]), Y: float32(r[1]), Z: float32(r[2]), W: float32(r[3])}
	return math.Mat4Scale(math.Vec3{X: float32(s[0]), Y: float32(s[1]), Z: float32(s[2])}).
		Mul(rot.Normalize().ToMat4()).
		Mul(math.Mat4Translation(math.Vec3{X: float32(t[0]), Y: float32(t[1]), Z: float32(t[2])}))
}

func bakeTransform(m *Mesh, world math.Mat4) {
	if world == math.Mat4Identity() {
		return
	}
	for i := range m.Vertices {
		v := &m.Vertices[i]
		v.Position = world.TransformPoint(v.Position)
		v.Normal = v.Normal.ToVec4(0).MulMat(world).ToVec3().Normalize()
	}
	m.LocalAABB = computeLocalAABB(m.Vertices)
}

// loadGLTFPrimitive converts one glTF mesh primitive into a scene.Mesh.
func loadGLTFPrimitive(doc *gltf.Document, meshName string, primIdx int, prim *gltf.Primitive) (*Mesh, error) {
	name := fmt.Sprintf("%s_p%d", meshName, primIdx)
	if meshName == "" {
		name = fmt.Sprintf("prim_%d", primIdx)
	}

	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return nil, fmt.Errorf("%s: no POSITION attribute", name)
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return nil, fmt.Errorf("%s positions: %w", name, err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
			Normal:   math.Vec3Up,
			Color:    core.ColorWhite,
		}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		verts[i] = v
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return nil, fmt.Errorf("%s indices: %w", name, err)
		}
	}

	m := CreateMeshFromData(name, verts, indices)
	if len(normals) == 0 {
		if indices == nil {
			indices = make([]uint32, len(verts))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}
		generateNormals(m.Vertices, indices)
	}
	return m, nil
}
