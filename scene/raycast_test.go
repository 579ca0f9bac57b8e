package scene

import (
	stdmath "math"
	"testing"
	"time"

	"terrain-demo/math"
)

func TestAABBIntersectRay(t *testing.T) {
	box := AABB{Min: math.NewVec3(-1, -1, -1), Max: math.NewVec3(1, 1, 1)}

	tests := []struct {
		name        string
		ray         Ray
		enter, exit float32
		ok          bool
	}{
		{"hit from outside", Ray{math.NewVec3(-5, 0, 0), math.NewVec3(1, 0, 0)}, 4, 6, true},
		{"origin inside", Ray{math.Vec3Zero, math.NewVec3(0, 0, 1)}, 0, 1, true},
		{"pointing away", Ray{math.NewVec3(-5, 0, 0), math.NewVec3(-1, 0, 0)}, 0, 0, false},
		{"parallel outside", Ray{math.NewVec3(-5, 2, 0), math.NewVec3(1, 0, 0)}, 0, 0, false},
		{"miss", Ray{math.NewVec3(-5, 0, 0), math.NewVec3(0, 1, 0)}, 0, 0, false},
	}
	for _, tt := range tests {
		enter, exit, ok := box.IntersectRay(tt.ray)
		if ok != tt.ok || (ok && (enter != tt.enter || exit != tt.exit)) {
			t.Errorf("%s: got %v, %v, %v; expected %v, %v, %v", tt.name, enter, exit, ok, tt.enter, tt.exit, tt.ok)
		}
	}
}

func TestTerrainRaycast(t *testing.T) {
	cfg := DefaultTerrainConfig()
	cfg.SmoothFactor = 0
	cfg.Scale = math.NewVec3(10, 1, 10)
	terrain := NewTerrain("terrain", flatHeightmap(5, 5, 20), cfg)

	// straight down onto flat ground at height 20
	down := Ray{Origin: math.NewVec3(15, 100, 15), Direction: math.NewVec3(0, -1, 0)}
	d, ok := terrain.Raycast(down, 1000)
	if !ok || stdmath.Abs(float64(d-80)) > 1e-2 {
		t.Errorf("down: expected hit at 80, got %v, %v", d, ok)
	}

	if _, ok := terrain.Raycast(down, 50); ok {
		t.Error("down: hit reported beyond maxDist")
	}

	// a slanted ray crosses the ground between samples
	dir := math.NewVec3(1, -1, 0).Normalize()
	slant := Ray{Origin: math.NewVec3(0, 30, 20), Direction: dir}
	d, ok = terrain.Raycast(slant, 1000)
	hit := slant.At(d)
	if !ok || stdmath.Abs(float64(hit.Y-20)) > 1e-2 || stdmath.Abs(float64(hit.X-10)) > 1e-2 {
		t.Errorf("slant: expected hit near (10,20,20), got %v (%v)", hit, ok)
	}

	up := Ray{Origin: math.NewVec3(15, 100, 15), Direction: math.NewVec3(0, 1, 0)}
	if _, ok := terrain.Raycast(up, 1000); ok {
		t.Error("up: expected no hit")
	}
}

func TestTerrainRaycastFarFromOrigin(t *testing.T) {
	cfg := DefaultTerrainConfig()
	cfg.SmoothFactor = 0
	cfg.Scale = math.NewVec3(1, 1, 1)
	terrain := NewTerrain("terrain", flatHeightmap(200, 3, 0), cfg)
	terrain.Node.SetPosition(math.NewVec3(1e8, 0, 0))

	// float32 spacing near 1e8 is 8, far coarser than the half-cell step
	r := Ray{Origin: math.NewVec3(0, 0.5, 1), Direction: math.NewVec3(1, 0, 0)}
	done := make(chan bool, 1)
	go func() {
		_, ok := terrain.Raycast(r, 2e8)
		done <- ok
	}()
	select {
	case ok := <-done:
		if ok {
			t.Error("expected the ray to pass above flat ground")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Raycast did not return")
	}
}
