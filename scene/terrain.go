package scene

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"

	"terrain-demo/core"
	"terrain-demo/math"
)

// Heightmap is a grid of raw heights taken from the grey level of an image,
// one sample per pixel, row-major with Z running down the rows.
type Heightmap struct {
	Width   int
	Depth   int
	Heights []float32
}

// LoadHeightmap decodes a BMP, PNG or JPEG image into a Heightmap.
func LoadHeightmap(path string) (*Heightmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open heightmap %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode heightmap %q: %w", path, err)
	}
	hm := HeightmapFromImage(img)
	if hm.Width < 2 || hm.Depth < 2 {
		return nil, fmt.Errorf("heightmap %q: need at least 2x2 pixels, got %dx%d", path, hm.Width, hm.Depth)
	}
	return hm, nil
}

// HeightmapFromImage converts every pixel to its 0-255 grey level.
func HeightmapFromImage(img image.Image) *Heightmap {
	bounds := img.Bounds()
	hm := &Heightmap{
		Width:   bounds.Dx(),
		Depth:   bounds.Dy(),
		Heights: make([]float32, bounds.Dx()*bounds.Dy()),
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			hm.Heights[(y-bounds.Min.Y)*hm.Width+(x-bounds.Min.X)] = float32(g.Y)
		}
	}
	return hm
}

// At returns the sample at (x, z), clamping out-of-range indices to the edge.
func (h *Heightmap) At(x, z int) float32 {
	x = clampInt(x, 0, h.Width-1)
	z = clampInt(z, 0, h.Depth-1)
	return h.Heights[z*h.Width+x]
}

// Smooth runs passes rounds of a 5-point box filter over the grid.
func (h *Heightmap) Smooth(passes int) {
	if passes <= 0 || len(h.Heights) == 0 {
		return
	}
	next := make([]float32, len(h.Heights))
	for p := 0; p < passes; p++ {
		for z := 0; z < h.Depth; z++ {
			for x := 0; x < h.Width; x++ {
				sum := h.At(x, z) + h.At(x-1, z) + h.At(x+1, z) + h.At(x, z-1) + h.At(x, z+1)
				next[z*h.Width+x] = sum / 5
			}
		}
		h.Heights, next = next, h.Heights
	}
}

// TerrainConfig mirrors the knobs of a heightmap terrain node.
type TerrainConfig struct {
	Scale        math.Vec3 // grid spacing on X/Z, height multiplier on Y
	VertexColor  core.Color
	SmoothFactor int
	Wireframe    bool
}

func DefaultTerrainConfig() TerrainConfig {
	return TerrainConfig{
		Scale:        math.Vec3{X: 40.1, Y: 4.01, Z: 40.1},
		VertexColor:  core.ColorWhite,
		SmoothFactor: 4,
		Wireframe:    true,
	}
}

// Terrain is a heightmap turned into a single triangle mesh under Node.
type Terrain struct {
	Node      *Node
	Heightmap *Heightmap
	Scale     math.Vec3
}

// NewTerrain smooths hm in place and builds the terrain mesh. The mesh spans
// [0, (Width-1)*Scale.X] x [0, (Depth-1)*Scale.Z] in local space.
func NewTerrain(name string, hm *Heightmap, cfg TerrainConfig) *Terrain {
	hm.Smooth(cfg.SmoothFactor)

	vertices := make([]core.Vertex, 0, hm.Width*hm.Depth)
	for z := 0; z < hm.Depth; z++ {
		for x := 0; x < hm.Width; x++ {
			// central differences, scaled into world units
			dx := (hm.At(x+1, z) - hm.At(x-1, z)) * cfg.Scale.Y / (2 * cfg.Scale.X)
			dz := (hm.At(x, z+1) - hm.At(x, z-1)) * cfg.Scale.Y / (2 * cfg.Scale.Z)
			vertices = append(vertices, core.Vertex{
				Position: math.Vec3{
					X: float32(x) * cfg.Scale.X,
					Y: hm.At(x, z) * cfg.Scale.Y,
					Z: float32(z) * cfg.Scale.Z,
				},
				Normal: math.Vec3{X: -dx, Y: 1, Z: -dz}.Normalize(),
				UV:     math.Vec2{X: float32(x) / float32(hm.Width-1), Y: float32(z) / float32(hm.Depth-1)},
				Color:  cfg.VertexColor,
			})
		}
	}

	indices := make([]uint32, 0, (hm.Width-1)*(hm.Depth-1)*6)
	for z := 0; z < hm.Depth-1; z++ {
		for x := 0; x < hm.Width-1; x++ {
			topLeft := uint32(z*hm.Width + x)
			topRight := topLeft + 1
			bottomLeft := topLeft + uint32(hm.Width)
			bottomRight := bottomLeft + 1

			indices = append(indices, topLeft, bottomLeft, topRight)
			indices = append(indices, topRight, bottomLeft, bottomRight)
		}
	}

	mesh := CreateMeshFromData(name, vertices, indices)
	mesh.Material = NewMaterial(name, core.ColorWhite)
	mesh.Material.Wireframe = cfg.Wireframe

	node := NewNode(name)
	node.Mesh = mesh
	return &Terrain{Node: node, Heightmap: hm, Scale: cfg.Scale}
}

// Center returns the centre of the terrain's bounding box in world space.
func (t *Terrain) Center() math.Vec3 {
	return t.Node.GetWorldMatrix().TransformPoint(t.Node.Mesh.LocalAABB.Center())
}

// HeightAt samples the terrain surface at world (x, z) with bilinear
// filtering. ok is false outside the terrain. The terrain node is assumed to
// be translated only.
func (t *Terrain) HeightAt(x, z float32) (height float32, ok bool) {
	origin := t.Node.GetAbsolutePosition()
	gx := (x - origin.X) / t.Scale.X
	gz := (z - origin.Z) / t.Scale.Z
	hm := t.Heightmap
	if gx < 0 || gz < 0 || gx > float32(hm.Width-1) || gz > float32(hm.Depth-1) {
		return 0, false
	}

	x0, z0 := int(gx), int(gz)
	fx, fz := gx-float32(x0), gz-float32(z0)
	top := hm.At(x0, z0)*(1-fx) + hm.At(x0+1, z0)*fx
	bottom := hm.At(x0, z0+1)*(1-fx) + hm.At(x0+1, z0+1)*fx
	return origin.Y + (top*(1-fz)+bottom*fz)*t.Scale.Y, true
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
