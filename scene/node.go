package scene

import (
	"terrain-demo/core"
	"terrain-demo/math"
)

// Node represents an object in the scene graph. Rotation is kept as
// pitch/yaw/roll in degrees.
type Node struct {
	Name      string
	Transform core.Transform
	Parent    *Node
	Children  []*Node
	Mesh      *Mesh
	Visible   bool
	Id        uint32

	// Cached world transform
	worldMatrixDirty bool
	worldMatrix      math.Mat4
}

var nodeIdCounter uint32 = 0

func NewNode(name string) *Node {
	nodeIdCounter++
	return &Node{
		Name:             name,
		Transform:        core.NewTransform(),
		Children:         make([]*Node, 0),
		Visible:          true,
		Id:               nodeIdCounter,
		worldMatrixDirty: true,
	}
}

// NewMeshNode wraps mesh in a node placed with the given position,
// rotation (degrees) and scale.
func NewMeshNode(name string, mesh *Mesh, position, rotation, scale math.Vec3) *Node {
	n := NewNode(name)
	n.Mesh = mesh
	n.Transform.Position = position
	n.Transform.Rotation = rotation
	n.Transform.Scale = scale
	return n
}

func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	child.MarkWorldMatrixDirty()
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			child.MarkWorldMatrixDirty()
			return
		}
	}
}

func (n *Node) GetWorldMatrix() math.Mat4 {
	if n.worldMatrixDirty {
		localMatrix := n.Transform.GetMatrix()
		if n.Parent != nil {
			n.worldMatrix = localMatrix.Mul(n.Parent.GetWorldMatrix())
		} else {
			n.worldMatrix = localMatrix
		}
		n.worldMatrixDirty = false
	}
	return n.worldMatrix
}

// GetAbsolutePosition returns the node origin in world space.
func (n *Node) GetAbsolutePosition() math.Vec3 {
	return n.GetWorldMatrix().TransformPoint(math.Vec3Zero)
}

func (n *Node) MarkWorldMatrixDirty() {
	n.worldMatrixDirty = true
	for _, child := range n.Children {
		child.MarkWorldMatrixDirty()
	}
}

func (n *Node) Position() math.Vec3 {
	return n.Transform.Position
}

func (n *Node) SetPosition(pos math.Vec3) {
	n.Transform.Position = pos
	n.MarkWorldMatrixDirty()
}

// Rotation returns pitch/yaw/roll in degrees.
func (n *Node) Rotation() math.Vec3 {
	return n.Transform.Rotation
}

func (n *Node) SetRotation(rot math.Vec3) {
	n.Transform.Rotation = rot
	n.MarkWorldMatrixDirty()
}

func (n *Node) SetScale(scale math.Vec3) {
	n.Transform.Scale = scale
	n.MarkWorldMatrixDirty()
}

// SetWireframe toggles wireframe drawing on the node's own mesh material.
func (n *Node) SetWireframe(on bool) {
	if n.Mesh == nil {
		return
	}
	if n.Mesh.Material == nil {
		n.Mesh.Material = DefaultMaterial()
	}
	n.Mesh.Material.Wireframe = on
}
