package main

import (
	"testing"

	"terrain-demo/input"
)

func TestHotkeysPressEdge(t *testing.T) {
	press := input.KeyEvent{Key: input.KeyEscape, PressedDown: true}
	release := input.KeyEvent{Key: input.KeyEscape, PressedDown: false}

	tests := []struct {
		name     string
		events   []input.KeyEvent
		fired    int
		consumed []bool
	}{
		{"single press", []input.KeyEvent{press}, 1, []bool{true}},
		{"auto-repeat ignored", []input.KeyEvent{press, press, press}, 1, []bool{true, false, false}},
		{"press release press", []input.KeyEvent{press, press, release, press}, 2, []bool{true, false, false, true}},
		{"release without press", []input.KeyEvent{release}, 0, []bool{false}},
	}
	for _, tt := range tests {
		fired := 0
		hk := newHotkeys()
		hk.bind(input.KeyEscape, func() { fired++ })

		for i, ev := range tt.events {
			if got := hk.OnEvent(ev); got != tt.consumed[i] {
				t.Errorf("%s: event %d consumed = %v, expected %v", tt.name, i, got, tt.consumed[i])
			}
		}
		if fired != tt.fired {
			t.Errorf("%s: expected %d actions, got %d", tt.name, tt.fired, fired)
		}
	}
}

func TestHotkeysUnboundPassThrough(t *testing.T) {
	hk := newHotkeys()
	hk.bind(input.KeyEscape, func() { t.Error("unexpected action") })

	for _, ev := range []input.KeyEvent{
		{Key: input.KeyA, PressedDown: true},
		{Key: input.KeyA, PressedDown: false},
	} {
		if hk.OnEvent(ev) {
			t.Errorf("unbound %v: expected not consumed", ev.Key)
		}
	}
}

func TestHotkeysResetRearms(t *testing.T) {
	fired := 0
	hk := newHotkeys()
	hk.bind(input.KeyL, func() { fired++ })

	hk.OnEvent(input.KeyEvent{Key: input.KeyL, PressedDown: true})
	// focus lost while L is held: the release never arrives
	hk.reset()
	if !hk.OnEvent(input.KeyEvent{Key: input.KeyL, PressedDown: true}) {
		t.Error("after reset: expected press to be consumed")
	}
	if fired != 2 {
		t.Errorf("after reset: expected 2 actions, got %d", fired)
	}
}

func TestHotkeysWithDispatcher(t *testing.T) {
	tracker := input.NewKeyTracker()
	hk := newHotkeys()
	hk.bind(input.KeyEscape, func() {})
	d := input.NewDispatcher(tracker, hk)

	d.OnEvent(input.KeyEvent{Key: input.KeyEscape, PressedDown: true})
	if !tracker.IsKeyDown(input.KeyEscape) {
		t.Error("tracker: expected Escape down ahead of the hotkeys")
	}
}
