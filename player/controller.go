package player

import (
	"errors"
	"fmt"

	"terrain-demo/input"
	"terrain-demo/math"
	"terrain-demo/scene"
)

// AimRayLength is how far the aim ray reaches from the player.
const AimRayLength = 1000

var ErrNoBody = errors.New("player has no scene node")

// Bindings names the keys that steer the player.
type Bindings struct {
	PitchUp   input.KeyCode
	PitchDown input.KeyCode
	YawLeft   input.KeyCode
	YawRight  input.KeyCode
	LookAt    input.KeyCode
}

func DefaultBindings() Bindings {
	return Bindings{
		PitchUp:   input.KeyW,
		PitchDown: input.KeyS,
		YawLeft:   input.KeyA,
		YawRight:  input.KeyD,
		LookAt:    input.KeyL,
	}
}

// Controller turns a player by a fixed step per frame while its keys are held.
type Controller struct {
	Bindings Bindings
	TurnStep float32 // degrees per frame
}

func NewController(b Bindings, turnStep float32) *Controller {
	return &Controller{Bindings: b, TurnStep: turnStep}
}

// Apply returns rotation adjusted for the held keys, wrapped into [0, 360)
// after every change. Pitch up wins over pitch down and yaw left over yaw
// right. look reports whether the look-at key is held.
func (c *Controller) Apply(keys input.KeyState, rotation math.Vec3) (rot math.Vec3, look bool, err error) {
	rot = rotation
	b := c.Bindings

	if keys.IsKeyDown(b.PitchUp) {
		if rot, err = math.NormalizeRotation(rot.Add(math.Vec3{X: c.TurnStep})); err != nil {
			return rotation, false, err
		}
	} else if keys.IsKeyDown(b.PitchDown) {
		if rot, err = math.NormalizeRotation(rot.Add(math.Vec3{X: -c.TurnStep})); err != nil {
			return rotation, false, err
		}
	}

	if keys.IsKeyDown(b.YawLeft) {
		if rot, err = math.NormalizeRotation(rot.Add(math.Vec3{Y: -c.TurnStep})); err != nil {
			return rotation, false, err
		}
	} else if keys.IsKeyDown(b.YawRight) {
		if rot, err = math.NormalizeRotation(rot.Add(math.Vec3{Y: c.TurnStep})); err != nil {
			return rotation, false, err
		}
	}

	return rot, keys.IsKeyDown(b.LookAt), nil
}

// Update runs one frame for p: it turns the player node and, while the
// look-at key is held, points camera at the player. camera may be nil.
func (c *Controller) Update(keys input.KeyState, p *Player, camera *scene.Camera) error {
	if p.Node == nil {
		return fmt.Errorf("update %s: %w", p, ErrNoBody)
	}
	position := p.Node.Position()

	rot, look, err := c.Apply(keys, p.Node.Rotation())
	if err != nil {
		return fmt.Errorf("update %s: %w", p, err)
	}
	if look && camera != nil {
		camera.SetTarget(position)
	}

	p.Node.SetPosition(position)
	p.Node.SetRotation(rot)
	return nil
}

// AimRay returns a segment of AimRayLength starting at the player and heading
// towards the camera target. ok is false when the target sits on the player.
func AimRay(p *Player, camera *scene.Camera) (start, end math.Vec3, ok bool) {
	if p.Node == nil || camera == nil {
		return math.Vec3{}, math.Vec3{}, false
	}
	start = p.Node.GetAbsolutePosition()
	dir := camera.Target.Sub(start)
	if dir.Length() == 0 {
		return start, start, false
	}
	return start, start.Add(dir.Normalize().Mul(AimRayLength)), true
}
