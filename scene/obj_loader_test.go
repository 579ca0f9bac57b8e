package scene

import (
	"errors"
	"strings"
	"testing"

	"terrain-demo/core"
	"terrain-demo/math"
)

const quadOBJ = `# a unit quad split into two objects
mtllib quad.mtl
v 0 0 0
v 1 0 0
v 1 0 1
v 0 0 1
vn 0 1 0
o body
usemtl red
f 1//1 4//1 3//1 2//1
o tail
f -4 -1 -2
`

const quadMTL = `newmtl red
Kd 1 0 0
d 0.5
newmtl unused
Kd 0 1 0
`

func TestParseOBJ(t *testing.T) {
	var requested string
	meshes, err := parseOBJ(strings.NewReader(quadOBJ), func(name string) (map[string]*Material, error) {
		requested = name
		return parseMTL(strings.NewReader(quadMTL))
	})
	if err != nil {
		t.Fatalf("parseOBJ: %v", err)
	}
	if requested != "quad.mtl" {
		t.Errorf("mtllib: expected quad.mtl, got %q", requested)
	}
	if len(meshes) != 2 {
		t.Fatalf("expected 2 meshes, got %d", len(meshes))
	}

	body := meshes[0]
	if body.Name != "body" || len(body.Vertices) != 4 || len(body.Indices) != 6 {
		t.Errorf("body: unexpected mesh %q with %d vertices / %d indices", body.Name, len(body.Vertices), len(body.Indices))
	}
	if body.Material.Albedo != (core.Color{R: 1, G: 0, B: 0, A: 0.5}) {
		t.Errorf("body material: unexpected albedo %v", body.Material.Albedo)
	}

	// the tail keeps the active material and resolves negative indices
	tail := meshes[1]
	if tail.Material.Name != "red" {
		t.Errorf("tail material: expected red, got %q", tail.Material.Name)
	}
	if len(tail.Vertices) != 3 || tail.Vertices[0].Position != math.NewVec3(0, 0, 0) {
		t.Errorf("tail: unexpected vertices %v", tail.Vertices)
	}
}

func TestParseOBJGeneratesNormals(t *testing.T) {
	src := "v 0 0 0\nv 0 0 1\nv 1 0 0\nf 1 2 3\n"
	meshes, err := parseOBJ(strings.NewReader(src), nil)
	if err != nil {
		t.Fatalf("parseOBJ: %v", err)
	}
	for _, v := range meshes[0].Vertices {
		if v.Normal != math.Vec3Up {
			t.Errorf("generated normal: expected up, got %v", v.Normal)
		}
	}
	if meshes[0].Material == nil || meshes[0].Material.Name != "Default" {
		t.Error("expected default material without usemtl")
	}
}

func TestParseOBJMissingMTL(t *testing.T) {
	src := "mtllib gone.mtl\nv 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"
	meshes, err := parseOBJ(strings.NewReader(src), func(string) (map[string]*Material, error) {
		return nil, errors.New("not found")
	})
	if err != nil || len(meshes) != 1 {
		t.Fatalf("missing mtl should not fail the model: %v", err)
	}
}

func TestParseOBJNoGeometry(t *testing.T) {
	if _, err := parseOBJ(strings.NewReader("# empty\nv 0 0 0\n"), nil); err == nil {
		t.Error("expected error for a file without faces")
	}
}

func TestParseFaceCorner(t *testing.T) {
	tests := []struct {
		tok  string
		want objCorner
	}{
		{"3", objCorner{v: 2, vt: -1, vn: -1}},
		{"3/1", objCorner{v: 2, vt: 0, vn: -1}},
		{"3//2", objCorner{v: 2, vt: -1, vn: 1}},
		{"3/1/2", objCorner{v: 2, vt: 0, vn: 1}},
		{"-1/-1/-1", objCorner{v: 9, vt: 4, vn: 1}},
		{"x", objCorner{v: -1, vt: -1, vn: -1}},
	}
	for _, tt := range tests {
		if got := parseFaceCorner(tt.tok, 10, 5, 2); got != tt.want {
			t.Errorf("parseFaceCorner(%q) = %+v, expected %+v", tt.tok, got, tt.want)
		}
	}
}
