package main

import (
	"errors"
	"io/fs"
	stdmath "math"
	"time"

	"terrain-demo/config"
	"terrain-demo/core"
	"terrain-demo/internal/logger"
	"terrain-demo/math"
	"terrain-demo/player"
	"terrain-demo/scene"
)

// world is everything the frame loop updates and draws.
type world struct {
	scene   *scene.Scene
	terrain *scene.Terrain
	player  *player.Player
	aim     *scene.Node

	wireframe bool
}

func buildWorld(cfg *config.Config, aspect float32) (*world, error) {
	log := logger.L()

	start := time.Now()
	hm, err := scene.LoadHeightmap(cfg.Terrain.Heightmap)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("heightmap missing, generating hills", "path", cfg.Terrain.Heightmap)
		hm, err = generatedHeightmap(129), nil
	}
	if err != nil {
		return nil, err
	}

	tc := cfg.Terrain
	terrain := scene.NewTerrain("terrain", hm, scene.TerrainConfig{
		Scale:        math.NewVec3(tc.Scale[0], tc.Scale[1], tc.Scale[2]),
		VertexColor:  core.ColorFromRGBA8(tc.Color[0], tc.Color[1], tc.Color[2], tc.Color[3]),
		SmoothFactor: tc.SmoothFactor,
		Wireframe:    tc.Wireframe,
	})
	terrain.Node.SetPosition(terrain.Center())
	log.Info("terrain ready",
		"size", [2]int{hm.Width, hm.Depth},
		"vertices", len(terrain.Node.Mesh.Vertices),
		"smooth", tc.SmoothFactor,
		logger.Since(start))

	pc := cfg.Player
	body := scene.CreateCube(1, core.ColorWhite)
	if pc.Mesh != "" {
		loaded, err := scene.LoadModel(pc.Mesh)
		if err != nil {
			log.Warn("player mesh unavailable, using cube", "path", pc.Mesh, "err", err)
		} else {
			body = loaded
		}
	}
	p := player.New(pc.Name, pc.Surname, pc.ID, body)
	p.SetBody(scene.NewMeshNode("player", body, math.Vec3Zero, math.Vec3Zero,
		math.NewVec3(pc.Scale, pc.Scale, pc.Scale)))
	p.Node.SetWireframe(pc.Wireframe)
	log.Info("player spawned", "player", p.String(), "triangles", body.TriangleCount())

	cc := cfg.Camera
	camera := scene.NewCamera(math.Radians(cc.FOV), aspect, cc.Near, cc.Far)
	camera.SetPosition(math.NewVec3(cc.Position[0], cc.Position[1], cc.Position[2]))
	camera.SetFarValue(cc.Far)

	aim := scene.NewNode("aim")
	aim.Mesh = scene.CreateLine("aim", math.Vec3Zero, math.Vec3Front, core.Color{R: 1, G: 0.2, B: 0.2, A: 1})

	s := scene.NewScene()
	s.SetCamera(camera)
	s.AddNode(terrain.Node)
	s.AddNode(p.Node)
	s.AddNode(aim)

	return &world{
		scene:     s,
		terrain:   terrain,
		player:    p,
		aim:       aim,
		wireframe: tc.Wireframe,
	}, nil
}

// toggleWireframe flips wireframe drawing on the terrain and the player.
func (w *world) toggleWireframe() {
	w.wireframe = !w.wireframe
	w.terrain.Node.SetWireframe(w.wireframe)
	w.player.Node.SetWireframe(w.wireframe)
	logger.L().Info("wireframe", "on", w.wireframe)
}

// updateAim moves the aim line from the player towards the camera target,
// stopping it where it meets the terrain.
// It reports whether the line geometry changed.
func (w *world) updateAim() bool {
	start, end, ok := player.AimRay(w.player, w.scene.Camera)
	w.aim.Visible = ok
	if !ok {
		return false
	}
	ray := scene.Ray{Origin: start, Direction: end.Sub(start).Normalize()}
	if d, hit := w.terrain.Raycast(ray, player.AimRayLength); hit {
		end = ray.At(d)
	}
	w.aim.Mesh.SetLine(start, end)
	return true
}

// generatedHeightmap stands in for a missing heightmap file: a grid of
// rolling hills in the 0-255 grey range.
func generatedHeightmap(size int) *scene.Heightmap {
	hm := &scene.Heightmap{Width: size, Depth: size, Heights: make([]float32, size*size)}
	for z := 0; z < size; z++ {
		for x := 0; x < size; x++ {
			fx := float64(x) / float64(size) * 4 * stdmath.Pi
			fz := float64(z) / float64(size) * 3 * stdmath.Pi
			h := 0.5 + 0.25*stdmath.Sin(fx) + 0.25*stdmath.Cos(fz)
			hm.Heights[z*size+x] = float32(h * 255)
		}
	}
	return hm
}
