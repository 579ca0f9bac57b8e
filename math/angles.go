package math

import (
	"errors"
	"fmt"
	"math"
)

// ErrNonFiniteAngle is returned when a rotation component is NaN or infinite.
var ErrNonFiniteAngle = errors.New("non-finite angle")

const (
	fullTurn = 360.0
	degToRad = math.Pi / 180.0
	radToDeg = 180.0 / math.Pi
)

// WrapDegrees maps any finite angle onto [0, 360) keeping its direction,
// so -1 becomes 359 and 720 becomes 0.
func WrapDegrees(deg float32) float32 {
	wrapped := float32(math.Mod(math.Mod(float64(deg), fullTurn)+fullTurn, fullTurn))
	// tiny negative inputs round up to exactly 360 in float32
	if wrapped >= fullTurn {
		return 0
	}
	return wrapped
}

// NormalizeRotation wraps pitch (X), yaw (Y) and roll (Z) into [0, 360).
// All three axes are wrapped even if only one was changed. Non-finite input
// is returned unchanged together with ErrNonFiniteAngle.
func NormalizeRotation(rot Vec3) (Vec3, error) {
	if !rot.IsFinite() {
		return rot, fmt.Errorf("normalize rotation %v: %w", rot, ErrNonFiniteAngle)
	}
	return Vec3{
		X: WrapDegrees(rot.X),
		Y: WrapDegrees(rot.Y),
		Z: WrapDegrees(rot.Z),
	}, nil
}

func Radians(deg float32) float32 {
	return float32(float64(deg) * degToRad)
}

func Degrees(rad float32) float32 {
	return float32(float64(rad) * radToDeg)
}

// EulerDegreesToQuaternion converts a pitch/yaw/roll rotation in degrees.
func EulerDegreesToQuaternion(rot Vec3) Quaternion {
	return QuaternionFromEuler(Vec3{X: Radians(rot.X), Y: Radians(rot.Y), Z: Radians(rot.Z)})
}
