package main

import (
	"strings"
	"testing"

	"terrain-demo/config"
	"terrain-demo/math"
)

func TestFrameStatsTick(t *testing.T) {
	fs := newFrameStats(10, 1)

	for _, now := range []float64{10.25, 10.5, 10.75} {
		if fs.tick(now) {
			t.Fatalf("tick(%v): reported before the interval elapsed", now)
		}
	}
	if !fs.tick(11) {
		t.Fatal("tick(11): expected a report after one second")
	}
	if fs.fps != 4 {
		t.Errorf("fps: expected 4, got %v", fs.fps)
	}

	// counting restarts from the last report
	if fs.tick(11.5) {
		t.Error("tick(11.5): expected the window to restart")
	}
	if !fs.tick(12) || fs.fps != 2 {
		t.Errorf("tick(12): expected fps 2, got %v", fs.fps)
	}
}

func TestStatusTitle(t *testing.T) {
	tests := []struct {
		name      string
		wireframe bool
		want      string
	}{
		{"solid", false, "Demo | FPS: 60 | pitch 10 yaw 350 roll 0"},
		{"wireframe", true, "Demo | FPS: 60 | pitch 10 yaw 350 roll 0 [WIRE]"},
	}
	for _, tt := range tests {
		got := statusTitle("Demo", 59.6, math.NewVec3(10, 350, 0), tt.wireframe)
		if got != tt.want {
			t.Errorf("%s: expected %q, got %q", tt.name, tt.want, got)
		}
	}
}

func TestControlsHelpListsBindings(t *testing.T) {
	help := controlsHelp(config.Default().Controls)
	for _, want := range []string{"Pitch player", "Yaw player", "Look at player", "Toggle wireframe", "Quit"} {
		if !strings.Contains(help, want) {
			t.Errorf("controlsHelp: missing %q in\n%s", want, help)
		}
	}
}
