package scene

import "terrain-demo/core"

// Material describes how a mesh is drawn. The renderer only does flat
// directional shading, so this stays small.
type Material struct {
	Name      string
	Albedo    core.Color // multiplied with vertex colours
	Wireframe bool       // draw triangle edges only
	Unlit     bool       // skip the directional light term
}

// DefaultMaterial returns a plain white lit material.
func DefaultMaterial() *Material {
	return &Material{
		Name:   "Default",
		Albedo: core.ColorWhite,
	}
}

func NewMaterial(name string, albedo core.Color) *Material {
	return &Material{
		Name:   name,
		Albedo: albedo,
	}
}
