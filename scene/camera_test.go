package scene

import (
	stdmath "math"
	"testing"

	"terrain-demo/input"
	"terrain-demo/math"
)

func approxVec(a, b math.Vec3, eps float64) bool {
	return stdmath.Abs(float64(a.X-b.X)) <= eps &&
		stdmath.Abs(float64(a.Y-b.Y)) <= eps &&
		stdmath.Abs(float64(a.Z-b.Z)) <= eps
}

func TestCameraTarget(t *testing.T) {
	cam := NewCamera(float32(stdmath.Pi/3), 4.0/3.0, 1, 4200)
	cam.SetPosition(math.NewVec3(0, 0, 10))
	cam.SetTarget(math.NewVec3(0, 0, 0))

	if got := cam.GetForward(); got != math.NewVec3(0, 0, -1) {
		t.Errorf("GetForward: expected (0,0,-1), got %v", got)
	}

	// the target lands in front of the camera on the view axis
	view := cam.GetViewMatrix().TransformPoint(cam.Target)
	if !approxVec(view, math.NewVec3(0, 0, -10), 1e-4) {
		t.Errorf("view space target: expected (0,0,-10), got %v", view)
	}

	cam.SetTarget(cam.Position)
	if got := cam.GetForward(); got != math.Vec3Front {
		t.Errorf("degenerate target: expected +Z, got %v", got)
	}
}

func TestCameraFarValue(t *testing.T) {
	cam := NewCamera(1, 1, 1, 100)
	before := cam.GetProjectionMatrix()
	cam.SetFarValue(4200)
	if cam.GetProjectionMatrix() == before {
		t.Error("SetFarValue: expected projection to be rebuilt")
	}
}

type heldKeys map[input.KeyCode]bool

func (h heldKeys) IsKeyDown(k input.KeyCode) bool { return h[k] }

func TestFPSCameraMovesAlongView(t *testing.T) {
	cam := NewCamera(1, 1, 1, 100)
	cam.SetPosition(math.Vec3Zero)
	cam.SetTarget(math.NewVec3(1, 0, 0))

	fps := NewFPSCamera(10, 0.1)
	fps.Update(heldKeys{input.KeyUp: true}, 100, 100, 0.5, cam)

	if !approxVec(cam.Position, math.NewVec3(5, 0, 0), 1e-4) {
		t.Errorf("forward: expected (5,0,0), got %v", cam.Position)
	}
	if !approxVec(cam.GetForward(), math.NewVec3(1, 0, 0), 1e-4) {
		t.Errorf("forward: view direction changed to %v", cam.GetForward())
	}

	fps.Update(heldKeys{input.KeyRight: true}, 100, 100, 0.5, cam)
	// right of +X with Y up is +Z
	if !approxVec(cam.Position, math.NewVec3(5, 0, 5), 1e-4) {
		t.Errorf("strafe: expected (5,0,5), got %v", cam.Position)
	}
}

func TestFPSCameraMouseLook(t *testing.T) {
	cam := NewCamera(1, 1, 1, 100)
	cam.SetTarget(math.NewVec3(1, 0, 0))

	fps := NewFPSCamera(10, 0.5)
	fps.Update(heldKeys{}, 0, 0, 0.016, cam) // first call only records the cursor
	fps.Update(heldKeys{}, 180, 0, 0.016, cam)

	// 180 px * 0.5 deg/px = 90 degrees of yaw from +X towards +Z
	if !approxVec(cam.GetForward(), math.NewVec3(0, 0, 1), 1e-4) {
		t.Errorf("yaw: expected (0,0,1), got %v", cam.GetForward())
	}

	fps.Update(heldKeys{}, 180, -1000, 0.016, cam)
	_, pitch := yawPitchFromDirection(cam.GetForward())
	if stdmath.Abs(float64(pitch-fps.MaxPitch)) > 1e-2 {
		t.Errorf("pitch: expected clamp at %v, got %v", fps.MaxPitch, pitch)
	}
}

func TestFPSCameraKeepsExternalTarget(t *testing.T) {
	cam := NewCamera(1, 1, 1, 100)
	fps := NewFPSCamera(10, 0.5)
	fps.Update(heldKeys{}, 0, 0, 0.016, cam)

	cam.SetTarget(math.NewVec3(0, 0, -50))
	fps.Update(heldKeys{}, 0, 0, 0.016, cam)

	if !approxVec(cam.GetForward(), math.NewVec3(0, 0, -1), 1e-4) {
		t.Errorf("external target lost: forward %v", cam.GetForward())
	}
}

func TestFPSCameraResetMouse(t *testing.T) {
	cam := NewCamera(1, 1, 1, 100)
	cam.SetTarget(math.NewVec3(1, 0, 0))

	fps := NewFPSCamera(10, 0.5)
	fps.Update(heldKeys{}, 0, 0, 0.016, cam)

	// the cursor jumps while the window is unfocused
	fps.ResetMouse()
	fps.Update(heldKeys{}, 500, 300, 0.016, cam)

	if !approxVec(cam.GetForward(), math.NewVec3(1, 0, 0), 1e-4) {
		t.Errorf("reset: expected no turn after the jump, forward %v", cam.GetForward())
	}
}
