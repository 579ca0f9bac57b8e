package scene

import (
	stdmath "math"

	"terrain-demo/math"
)

// Ray is a half-line; Direction is expected to be unit length.
type Ray struct {
	Origin    math.Vec3
	Direction math.Vec3
}

func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// IntersectRay runs the slab test and returns the distances at which the
// ray enters and leaves the box. tEnter is clamped to 0 when the origin is
// inside.
func (b AABB) IntersectRay(r Ray) (tEnter, tExit float32, ok bool) {
	tEnter, tExit = 0, float32(stdmath.MaxFloat32)
	axes := [3][4]float32{
		{r.Origin.X, r.Direction.X, b.Min.X, b.Max.X},
		{r.Origin.Y, r.Direction.Y, b.Min.Y, b.Max.Y},
		{r.Origin.Z, r.Direction.Z, b.Min.Z, b.Max.Z},
	}
	for _, a := range axes {
		origin, dir, lo, hi := a[0], a[1], a[2], a[3]
		if dir == 0 {
			if origin < lo || origin > hi {
				return 0, 0, false
			}
			continue
		}
		t1 := (lo - origin) / dir
		t2 := (hi - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		tEnter = max(tEnter, t1)
		tExit = min(tExit, t2)
		if tEnter > tExit {
			return 0, 0, false
		}
	}
	return tEnter, tExit, true
}

// WorldAABB returns the terrain bounds in world space. Like HeightAt it
// assumes the terrain node is translated only.
func (t *Terrain) WorldAABB() AABB {
	origin := t.Node.GetAbsolutePosition()
	local := t.Node.Mesh.LocalAABB
	return AABB{Min: local.Min.Add(origin), Max: local.Max.Add(origin)}
}

// Raycast finds where r first meets the terrain surface within maxDist.
// The ray is marched at half a grid cell and the crossing refined by
// bisection.
func (t *Terrain) Raycast(r Ray, maxDist float32) (float32, bool) {
	box := t.WorldAABB()
	// a flat terrain has a zero-height box; pad it so the march starts above
	// the surface and ends below it
	box.Min.Y--
	box.Max.Y++
	tEnter, tExit, ok := box.IntersectRay(r)
	if !ok || tEnter > maxDist {
		return 0, false
	}
	tExit = min(tExit, maxDist)

	below := func(d float32) bool {
		p := r.At(d)
		h, ok := t.HeightAt(p.X, p.Z)
		return ok && p.Y <= h
	}
	if below(tEnter) {
		return tEnter, true
	}

	step := min(t.Scale.X, t.Scale.Z) * 0.5
	// count steps rather than accumulate: far from the origin d+step can
	// round back to d
	n := int(stdmath.Ceil(float64((tExit - tEnter) / step)))
	prev := tEnter
	for i := 1; i <= n; i++ {
		d := min(tEnter+float32(i)*step, tExit)
		if d <= prev {
			continue
		}
		if below(d) {
			lo, hi := prev, d
			for j := 0; j < 16; j++ {
				mid := (lo + hi) * 0.5
				if below(mid) {
					hi = mid
				} else {
					lo = mid
				}
			}
			return hi, true
		}
		prev = d
	}
	return 0, false
}
