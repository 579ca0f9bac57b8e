package math

// Vec2 carries texture coordinates.
type Vec2 struct {
	X, Y float32
}
