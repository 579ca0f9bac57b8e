// Package player holds the controllable character of the demo and the
// per-frame logic that turns it from the keyboard.
package player

import (
	"fmt"

	"terrain-demo/scene"
)

// Player is a named character with a body mesh and the scene node that
// shows it.
type Player struct {
	Name    string
	Surname string
	Body    *scene.Mesh
	Node    *scene.Node

	id string
}

func New(name, surname, id string, body *scene.Mesh) *Player {
	return &Player{Name: name, Surname: surname, Body: body, id: id}
}

func (p *Player) ID() string {
	return p.id
}

// SetBody attaches the node that displays the player.
func (p *Player) SetBody(node *scene.Node) {
	p.Node = node
}

func (p *Player) String() string {
	return fmt.Sprintf("%s %s (%s)", p.Name, p.Surname, p.id)
}
