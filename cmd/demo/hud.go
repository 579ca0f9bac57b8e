package main

import (
	"fmt"
	"strings"

	"terrain-demo/math"
)

// frameStats counts frames and reports once per interval.
type frameStats struct {
	interval  float64
	frames    int
	lastFlush float64
	fps       float64
}

func newFrameStats(now, interval float64) *frameStats {
	return &frameStats{interval: interval, lastFlush: now}
}

// tick counts one frame at time now and reports whether a new FPS figure is
// available.
func (fs *frameStats) tick(now float64) bool {
	fs.frames++
	elapsed := now - fs.lastFlush
	if elapsed < fs.interval {
		return false
	}
	fs.fps = float64(fs.frames) / elapsed
	fs.frames = 0
	fs.lastFlush = now
	return true
}

// statusTitle builds the window caption shown in place of an on-screen label.
func statusTitle(base string, fps float64, rot math.Vec3, wireframe bool) string {
	var b strings.Builder
	b.WriteString(base)
	fmt.Fprintf(&b, " | FPS: %.0f | pitch %.0f yaw %.0f roll %.0f", fps, rot.X, rot.Y, rot.Z)
	if wireframe {
		b.WriteString(" [WIRE]")
	}
	return b.String()
}

func printControls(keys string) {
	fmt.Println("===========================================")
	fmt.Println("  Terrain Demo")
	fmt.Println("===========================================")
	fmt.Println(keys)
	fmt.Println("  Arrow keys     - Move camera")
	fmt.Println("  Mouse          - Look around")
	fmt.Println("===========================================")
}
