package scene

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"terrain-demo/core"
	remath "terrain-demo/math"
)

// objCorner references one face corner; indices are 0-based, -1 when absent.
type objCorner struct{ v, vt, vn int }

type objObject struct {
	name    string
	matName string
	tris    [][3]objCorner
}

// LoadOBJ parses a Wavefront .obj file and returns one Mesh per object/group.
// A companion .mtl file referenced via "mtllib" supplies diffuse colours.
func LoadOBJ(path string) ([]*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	dir := filepath.Dir(path)
	meshes, err := parseOBJ(f, func(name string) (map[string]*Material, error) {
		return loadMTL(filepath.Join(dir, name))
	})
	if err != nil {
		return nil, fmt.Errorf("obj %q: %w", path, err)
	}
	return meshes, nil
}

func parseOBJ(r io.Reader, openMTL func(name string) (map[string]*Material, error)) ([]*Mesh, error) {
	var positions []remath.Vec3
	var normals []remath.Vec3
	var uvs []remath.Vec2
	materials := map[string]*Material{}

	var objects []objObject
	cur := &objObject{name: "default"}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) >= 4 {
				positions = append(positions, parseVec3(fields[1:4]))
			}

		case "vn":
			if len(fields) >= 4 {
				normals = append(normals, parseVec3(fields[1:4]))
			}

		case "vt":
			if len(fields) >= 3 {
				u, _ := strconv.ParseFloat(fields[1], 32)
				v, _ := strconv.ParseFloat(fields[2], 32)
				uvs = append(uvs, remath.Vec2{X: float32(u), Y: float32(v)})
			}

		case "o", "g":
			if len(cur.tris) > 0 {
				objects = append(objects, *cur)
			}
			name := "default"
			if len(fields) > 1 {
				name = fields[1]
			}
			cur = &objObject{name: name, matName: cur.matName}

		case "usemtl":
			if len(fields) > 1 {
				cur.matName = fields[1]
			}

		case "mtllib":
			if len(fields) > 1 && openMTL != nil {
				// a missing .mtl only costs the colours
				if loaded, err := openMTL(fields[1]); err == nil {
					for k, v := range loaded {
						materials[k] = v
					}
				}
			}

		case "f":
			if len(fields) < 4 {
				continue
			}
			corners := make([]objCorner, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				corners = append(corners, parseFaceCorner(tok, len(positions), len(uvs), len(normals)))
			}
			// fan triangulation: 0-1-2, 0-2-3, ...
			for i := 1; i+1 < len(corners); i++ {
				cur.tris = append(cur.tris, [3]objCorner{corners[0], corners[i], corners[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	if len(cur.tris) > 0 {
		objects = append(objects, *cur)
	}
	if len(objects) == 0 {
		return nil, fmt.Errorf("no geometry found")
	}

	meshes := make([]*Mesh, 0, len(objects))
	for _, obj := range objects {
		mesh := buildMeshFromOBJ(obj.name, obj.tris, positions, normals, uvs)
		if mat, ok := materials[obj.matName]; ok {
			mesh.Material = mat
		} else {
			mesh.Material = DefaultMaterial()
		}
		meshes = append(meshes, mesh)
	}
	return meshes, nil
}

func parseVec3(fields []string) remath.Vec3 {
	x, _ := strconv.ParseFloat(fields[0], 32)
	y, _ := strconv.ParseFloat(fields[1], 32)
	z, _ := strconv.ParseFloat(fields[2], 32)
	return remath.Vec3{X: float32(x), Y: float32(y), Z: float32(z)}
}

// parseFaceCorner parses "v", "v/vt", "v//vn" or "v/vt/vn". OBJ indices are
// 1-based; negative ones count back from the current end of each list.
func parseFaceCorner(tok string, nPos, nUV, nNorm int) objCorner {
	resolve := func(s string, n int) int {
		if s == "" {
			return -1
		}
		i, err := strconv.Atoi(s)
		switch {
		case err != nil:
			return -1
		case i > 0:
			return i - 1
		case i < 0:
			return n + i
		}
		return -1
	}

	parts := strings.Split(tok, "/")
	c := objCorner{v: -1, vt: -1, vn: -1}
	c.v = resolve(parts[0], nPos)
	if len(parts) > 1 {
		c.vt = resolve(parts[1], nUV)
	}
	if len(parts) > 2 {
		c.vn = resolve(parts[2], nNorm)
	}
	return c
}

// buildMeshFromOBJ converts triangles into an indexed Mesh, sharing vertices
// whose position/uv/normal references are identical.
func buildMeshFromOBJ(name string, tris [][3]objCorner, positions, normals []remath.Vec3, uvs []remath.Vec2) *Mesh {
	vertMap := map[objCorner]uint32{}
	var vertices []core.Vertex
	var indices []uint32

	for _, tri := range tris {
		for _, k := range tri {
			if idx, ok := vertMap[k]; ok {
				indices = append(indices, idx)
				continue
			}
			v := core.Vertex{Normal: remath.Vec3Up, Color: core.ColorWhite}
			if k.v >= 0 && k.v < len(positions) {
				v.Position = positions[k.v]
			}
			if k.vn >= 0 && k.vn < len(normals) {
				v.Normal = normals[k.vn]
			}
			if k.vt >= 0 && k.vt < len(uvs) {
				v.UV = uvs[k.vt]
			}
			idx := uint32(len(vertices))
			vertices = append(vertices, v)
			vertMap[k] = idx
			indices = append(indices, idx)
		}
	}

	if len(normals) == 0 {
		generateNormals(vertices, indices)
	}
	return CreateMeshFromData(name, vertices, indices)
}

// generateNormals writes area-weighted vertex normals.
func generateNormals(vertices []core.Vertex, indices []uint32) {
	accum := make([]remath.Vec3, len(vertices))
	for i := 0; i+2 < len(indices); i += 3 {
		i0, i1, i2 := indices[i], indices[i+1], indices[i+2]
		v0 := vertices[i0].Position
		n := vertices[i1].Position.Sub(v0).Cross(vertices[i2].Position.Sub(v0))
		accum[i0] = accum[i0].Add(n)
		accum[i1] = accum[i1].Add(n)
		accum[i2] = accum[i2].Add(n)
	}
	for i := range vertices {
		if accum[i].Length() > 0 {
			vertices[i].Normal = accum[i].Normalize()
		}
	}
}

func loadMTL(path string) (map[string]*Material, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return parseMTL(f)
}

// parseMTL reads newmtl/Kd/d statements; everything else is ignored.
func parseMTL(r io.Reader) (map[string]*Material, error) {
	mats := map[string]*Material{}
	var cur *Material

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "newmtl":
			if len(fields) > 1 {
				cur = DefaultMaterial()
				cur.Name = fields[1]
				mats[fields[1]] = cur
			}
		case "Kd":
			if cur != nil && len(fields) >= 4 {
				kd := parseVec3(fields[1:4])
				cur.Albedo = core.Color{R: kd.X, G: kd.Y, B: kd.Z, A: cur.Albedo.A}
			}
		case "d":
			if cur != nil && len(fields) >= 2 {
				d, _ := strconv.ParseFloat(fields[1], 32)
				cur.Albedo.A = float32(d)
			}
		}
	}
	return mats, scanner.Err()
}
