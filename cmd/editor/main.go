package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"scene-editor/assets"
	"scene-editor/core"
	"scene-editor/editor"
	"scene-editor/entity"
	"scene-editor/internal/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "scene-editor: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	window, err := core.NewWindow(core.DefaultWindowConfig())
	if err != nil {
		return err
	}
	defer window.Destroy()

	if err := render.Init(); err != nil {
		return err
	}

	store := entity.NewStore()
	cache := assets.NewCache()
	params := render.DefaultParams()
	params.Camera.Translation = mgl32.Vec3{0, 1, 4}
	ed := editor.New(store, cache, params)

	populateScene(ed)

	graph, err := render.NewGraph(params, store, window.SetIcon)
	if err != nil {
		return err
	}
	defer graph.Destroy()

	viewport, err := editor.NewViewport(window, ed)
	if err != nil {
		return err
	}
	defer viewport.Destroy()

	camera := editor.NewCamera(window, params)
	render.NewDriver(window, camera, viewport, graph).Run()
	return nil
}

// populateScene spawns the startup entities: a few lit cubes and the
// icon-tagged cube the snapshot pass renders into the window icon.
func populateScene(ed *editor.Editor) {
	floor := ed.Spawn("floor", "default",
		"data/cube.obj", "data/opaque.glsl", "data/checker.png")
	if info := ed.Store.Info(floor); info != nil {
		info.Transform.Translation = mgl32.Vec3{0, -1, 0}
		info.Transform.Scale = mgl32.Vec3{10, 0.2, 10}
	}

	cube := ed.Spawn("cube", "default",
		"data/cube.obj", "data/opaque.glsl", "data/amber.png")
	if info := ed.Store.Info(cube); info != nil {
		info.Transform.Translation = mgl32.Vec3{0, 0, 0}
		info.Transform.Rotate(mgl32.DegToRad(30), mgl32.Vec3{0, 1, 0})
	}
	ed.Select(cube)

	icon := ed.Spawn("window icon", entity.IconTag,
		"data/cube.obj", "data/opaque.glsl", "data/amber.png")
	if info := ed.Store.Info(icon); info != nil {
		// Authored in the icon camera's frame: origin, looking down -Z.
		info.Transform.Translation = mgl32.Vec3{0, 0, -1.5}
		info.Transform.Rotate(mgl32.DegToRad(25), mgl32.Vec3{1, 0, 0})
	}
}
