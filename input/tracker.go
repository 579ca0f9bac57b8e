package input

import (
	"errors"
	"fmt"
)

// ErrInvalidKey is returned when a key code falls outside [0, KeyCodeCount).
var ErrInvalidKey = errors.New("invalid key identifier")

// KeyEvent is a single key transition delivered by the window's event pump.
type KeyEvent struct {
	Key         KeyCode
	PressedDown bool
}

// EventReceiver observes key events. OnEvent returns true when the event has
// been consumed and must not be offered to later receivers.
type EventReceiver interface {
	OnEvent(ev KeyEvent) bool
}

// KeyState is the read side of a KeyTracker, handed to per-frame controllers.
type KeyState interface {
	IsKeyDown(key KeyCode) bool
}

// KeyTracker remembers whether each key is currently held down.
// The zero value is ready to use with every key released.
type KeyTracker struct {
	keyIsDown [KeyCodeCount]bool
}

func NewKeyTracker() *KeyTracker {
	return &KeyTracker{}
}

// OnEvent records the transition and always lets the event propagate.
// Events carrying an unrecognised key are dropped.
func (t *KeyTracker) OnEvent(ev KeyEvent) bool {
	if ev.Key.Valid() {
		t.keyIsDown[ev.Key] = ev.PressedDown
	}
	return false
}

// IsKeyDown reports whether key is held. Unrecognised keys are never down.
func (t *KeyTracker) IsKeyDown(key KeyCode) bool {
	if !key.Valid() {
		return false
	}
	return t.keyIsDown[key]
}

// KeyState is the strict form of IsKeyDown.
func (t *KeyTracker) KeyState(key KeyCode) (bool, error) {
	if !key.Valid() {
		return false, fmt.Errorf("%w: %d", ErrInvalidKey, int(key))
	}
	return t.keyIsDown[key], nil
}

// Reset releases every key, e.g. after the window loses focus.
func (t *KeyTracker) Reset() {
	t.keyIsDown = [KeyCodeCount]bool{}
}
