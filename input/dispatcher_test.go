package input

import "testing"

func TestDispatcherPropagatesThroughTracker(t *testing.T) {
	tracker := NewKeyTracker()
	var seen []KeyEvent
	recorder := ReceiverFunc(func(ev KeyEvent) bool {
		seen = append(seen, ev)
		return false
	})

	d := NewDispatcher(tracker, recorder)
	if consumed := d.OnEvent(KeyEvent{Key: KeyL, PressedDown: true}); consumed {
		t.Error("Dispatch: expected not consumed")
	}

	if !tracker.IsKeyDown(KeyL) {
		t.Error("tracker: expected L down")
	}
	if len(seen) != 1 || seen[0].Key != KeyL {
		t.Errorf("recorder: expected to observe L after the tracker, got %v", seen)
	}
}

func TestDispatcherStopsWhenConsumed(t *testing.T) {
	tracker := NewKeyTracker()
	swallowEscape := ReceiverFunc(func(ev KeyEvent) bool {
		return ev.Key == KeyEscape
	})

	d := NewDispatcher(swallowEscape, nil, tracker)
	if d.Len() != 2 {
		t.Fatalf("Len: expected nil receiver to be skipped, got %d", d.Len())
	}

	if !d.OnEvent(KeyEvent{Key: KeyEscape, PressedDown: true}) {
		t.Error("Dispatch: expected Escape to be consumed")
	}
	if tracker.IsKeyDown(KeyEscape) {
		t.Error("tracker: consumed event must not reach later receivers")
	}

	d.OnEvent(KeyEvent{Key: KeyA, PressedDown: true})
	if !tracker.IsKeyDown(KeyA) {
		t.Error("tracker: expected A down")
	}
}

func TestDispatcherNested(t *testing.T) {
	tracker := NewKeyTracker()
	inner := NewDispatcher(tracker)
	outer := NewDispatcher(inner)

	outer.OnEvent(KeyEvent{Key: KeyD, PressedDown: true})
	if !tracker.IsKeyDown(KeyD) {
		t.Error("nested dispatcher: expected D down")
	}
}
