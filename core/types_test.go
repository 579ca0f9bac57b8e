package core

import (
	stdmath "math"
	"testing"

	"terrain-demo/math"
)

func TestTransformMatrixOrder(t *testing.T) {
	tr := NewTransform()
	tr.Position = math.NewVec3(100, 0, 0)
	tr.Scale = math.NewVec3(10, 10, 10)

	got := tr.GetMatrix().TransformPoint(math.Vec3Right)
	want := math.NewVec3(110, 0, 0)
	if got != want {
		t.Errorf("GetMatrix: expected %v, got %v", want, got)
	}
}

func TestTransformRotationDegrees(t *testing.T) {
	tr := NewTransform()
	tr.Rotation = math.NewVec3(0, 90, 0)

	got := tr.GetMatrix().TransformPoint(math.Vec3Right)
	if stdmath.Abs(float64(got.X)) > 1e-4 || stdmath.Abs(float64(got.Z+1)) > 1e-4 {
		t.Errorf("yaw 90: expected (0,0,-1), got %v", got)
	}
}

func TestColorFromRGBA8(t *testing.T) {
	c := ColorFromRGBA8(255, 0, 255, 255)
	if c != (Color{1, 0, 1, 1}) {
		t.Errorf("ColorFromRGBA8: expected magenta, got %v", c)
	}
}
