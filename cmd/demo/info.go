package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"terrain-demo/scene"
)

// runInfo prints a summary of the model at path without opening a window.
func runInfo(w io.Writer, path string) error {
	stat, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	mesh, err := scene.LoadModel(path)
	if err != nil {
		return err
	}

	box := mesh.LocalAABB
	size := box.Size()
	center := box.Center()
	ext := strings.TrimPrefix(filepath.Ext(path), ".")

	fmt.Fprintf(w, "File:       %s\n", filepath.Base(path))
	fmt.Fprintf(w, "Format:     %s\n", strings.ToUpper(ext))
	fmt.Fprintf(w, "Size:       %.2f KB\n", float64(stat.Size())/1024)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Vertices:   %d\n", len(mesh.Vertices))
	fmt.Fprintf(w, "Triangles:  %d\n", mesh.TriangleCount())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Bounds Min: (%.3f, %.3f, %.3f)\n", box.Min.X, box.Min.Y, box.Min.Z)
	fmt.Fprintf(w, "Bounds Max: (%.3f, %.3f, %.3f)\n", box.Max.X, box.Max.Y, box.Max.Z)
	fmt.Fprintf(w, "Dimensions: %.3f x %.3f x %.3f\n", size.X, size.Y, size.Z)
	fmt.Fprintf(w, "Center:     (%.3f, %.3f, %.3f)\n", center.X, center.Y, center.Z)
	return nil
}
