package main

import "terrain-demo/input"

// hotkeys runs one-shot actions on the press edge of a key. Auto-repeat
// presses are ignored.
type hotkeys struct {
	actions map[input.KeyCode]func()
	held    map[input.KeyCode]bool
}

func newHotkeys() *hotkeys {
	return &hotkeys{
		actions: map[input.KeyCode]func(){},
		held:    map[input.KeyCode]bool{},
	}
}

func (h *hotkeys) bind(key input.KeyCode, action func()) {
	h.actions[key] = action
}

func (h *hotkeys) OnEvent(ev input.KeyEvent) bool {
	action, ok := h.actions[ev.Key]
	if !ok {
		return false
	}
	wasHeld := h.held[ev.Key]
	h.held[ev.Key] = ev.PressedDown
	if ev.PressedDown && !wasHeld {
		action()
		return true
	}
	return false
}

func (h *hotkeys) reset() {
	clear(h.held)
}
