package scene

import (
	"math"

	"terrain-demo/input"
	reMath "terrain-demo/math"
)

// Camera is a perspective camera that always looks at Target.
type Camera struct {
	Position    reMath.Vec3
	Target      reMath.Vec3
	Up          reMath.Vec3
	FOV         float32 // radians
	AspectRatio float32
	NearPlane   float32
	FarPlane    float32

	// Cached matrices
	viewMatrix       reMath.Mat4
	projectionMatrix reMath.Mat4
	viewProjMatrix   reMath.Mat4
	dirty            bool
}

func NewCamera(fov, aspectRatio, nearPlane, farPlane float32) *Camera {
	return &Camera{
		Position:    reMath.Vec3Zero,
		Target:      reMath.Vec3Front,
		Up:          reMath.Vec3Up,
		FOV:         fov,
		AspectRatio: aspectRatio,
		NearPlane:   nearPlane,
		FarPlane:    farPlane,
		dirty:       true,
	}
}

func (c *Camera) UpdateAspectRatio(width, height float32) {
	if height > 0 {
		c.AspectRatio = width / height
		c.dirty = true
	}
}

func (c *Camera) SetPosition(pos reMath.Vec3) {
	c.Position = pos
	c.dirty = true
}

// SetTarget points the camera at target.
func (c *Camera) SetTarget(target reMath.Vec3) {
	c.Target = target
	c.dirty = true
}

func (c *Camera) SetFarValue(far float32) {
	c.FarPlane = far
	c.dirty = true
}

// GetForward returns the unit view direction. A target sitting on the
// camera position yields +Z.
func (c *Camera) GetForward() reMath.Vec3 {
	dir := c.Target.Sub(c.Position)
	if dir.Length() == 0 {
		return reMath.Vec3Front
	}
	return dir.Normalize()
}

func (c *Camera) GetViewMatrix() reMath.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewMatrix
}

func (c *Camera) GetProjectionMatrix() reMath.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.projectionMatrix
}

func (c *Camera) GetViewProjectionMatrix() reMath.Mat4 {
	if c.dirty {
		c.updateMatrices()
	}
	return c.viewProjMatrix
}

func (c *Camera) updateMatrices() {
	c.viewMatrix = reMath.Mat4LookAt(c.Position, c.Position.Add(c.GetForward()), c.Up)
	c.projectionMatrix = reMath.Mat4Perspective(c.FOV, c.AspectRatio, c.NearPlane, c.FarPlane)
	c.viewProjMatrix = c.viewMatrix.Mul(c.projectionMatrix)
	c.dirty = false
}

// FPSCamera drives a Camera first-person style: the cursor turns it and the
// arrow keys walk it. The current view direction is read back from the
// camera every frame, so a target set elsewhere is kept.
type FPSCamera struct {
	MoveSpeed float32 // units per second
	LookSpeed float32 // degrees per pixel of cursor travel
	MaxPitch  float32 // degrees

	Forward, Backward, StrafeLeft, StrafeRight input.KeyCode

	lastMouseX, lastMouseY float64
	firstMouse             bool
}

func NewFPSCamera(moveSpeed, lookSpeed float32) *FPSCamera {
	return &FPSCamera{
		MoveSpeed:   moveSpeed,
		LookSpeed:   lookSpeed,
		MaxPitch:    88,
		Forward:     input.KeyUp,
		Backward:    input.KeyDown,
		StrafeLeft:  input.KeyLeft,
		StrafeRight: input.KeyRight,
		firstMouse:  true,
	}
}

// Update turns the camera by the cursor movement since the previous call and
// moves it along the view direction for the held movement keys.
func (fc *FPSCamera) Update(keys input.KeyState, mouseX, mouseY float64, deltaTime float32, camera *Camera) {
	if fc.firstMouse {
		fc.lastMouseX = mouseX
		fc.lastMouseY = mouseY
		fc.firstMouse = false
	}

	yaw, pitch := yawPitchFromDirection(camera.GetForward())
	yaw += float32(mouseX-fc.lastMouseX) * fc.LookSpeed
	pitch += float32(fc.lastMouseY-mouseY) * fc.LookSpeed
	if pitch > fc.MaxPitch {
		pitch = fc.MaxPitch
	}
	if pitch < -fc.MaxPitch {
		pitch = -fc.MaxPitch
	}
	fc.lastMouseX = mouseX
	fc.lastMouseY = mouseY

	forward := directionFromYawPitch(yaw, pitch)
	right := forward.Cross(camera.Up).Normalize()

	step := fc.MoveSpeed * deltaTime
	move := reMath.Vec3Zero
	if keys.IsKeyDown(fc.Forward) {
		move = move.Add(forward.Mul(step))
	}
	if keys.IsKeyDown(fc.Backward) {
		move = move.Add(forward.Mul(-step))
	}
	if keys.IsKeyDown(fc.StrafeRight) {
		move = move.Add(right.Mul(step))
	}
	if keys.IsKeyDown(fc.StrafeLeft) {
		move = move.Add(right.Mul(-step))
	}

	pos := camera.Position.Add(move)
	camera.SetPosition(pos)
	camera.SetTarget(pos.Add(forward))
}

// ResetMouse forgets the last cursor position, e.g. after the cursor was
// released and recaptured.
func (fc *FPSCamera) ResetMouse() {
	fc.firstMouse = true
}

func yawPitchFromDirection(dir reMath.Vec3) (yaw, pitch float32) {
	y := math.Max(-1, math.Min(1, float64(dir.Y)))
	pitch = reMath.Degrees(float32(math.Asin(y)))
	yaw = reMath.Degrees(float32(math.Atan2(float64(dir.Z), float64(dir.X))))
	return yaw, pitch
}

func directionFromYawPitch(yaw, pitch float32) reMath.Vec3 {
	yawRad := float64(yaw) * math.Pi / 180
	pitchRad := float64(pitch) * math.Pi / 180
	return reMath.Vec3{
		X: float32(math.Cos(yawRad) * math.Cos(pitchRad)),
		Y: float32(math.Sin(pitchRad)),
		Z: float32(math.Sin(yawRad) * math.Cos(pitchRad)),
	}.Normalize()
}
