// Command playpark renders an animated playground scene: a textured ground
// plane, props loaded from OBJ files, balloons drifting along waypoint
// loops, a skybox dome and a flying debug camera, all under a Dear ImGui
// overlay for poking at the lighting.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"

	"github.com/plus3/playpark/app"
	"github.com/plus3/playpark/ecs"
	"github.com/plus3/playpark/logger"
	"github.com/plus3/playpark/scene"
)

func init() {
	// GLFW and GL demand the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "playpark.toml", "path to the config file")
	profileMode := flag.String("profile", "", "write a profile on exit: cpu or mem")
	echoLog := flag.Bool("log", false, "echo the application log to stderr")
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		fmt.Fprintf(os.Stderr, "playpark: unknown profile mode %q\n", *profileMode)
		os.Exit(2)
	}
	if *echoLog {
		logger.SetEcho(os.Stderr)
	}

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "playpark: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := app.LoadConfig(configPath)
	if err != nil {
		return err
	}

	window, err := app.NewWindow(cfg.Window.Title, cfg.Window.Width, cfg.Window.Height, cfg.Window.VSync)
	if err != nil {
		return err
	}
	defer window.Destroy()

	overlay, err := app.NewOverlay(window)
	if err != nil {
		return err
	}
	defer overlay.Destroy()
	overlay.Visible = cfg.Overlay.Enabled

	input := app.NewInput(window)

	world := ecs.NewWorld()
	ecs.RegisterComponent[scene.Transform](world)
	ecs.RegisterComponent[scene.Renderer](world)
	ecs.RegisterComponent[scene.Behaviours](world)
	ecs.RegisterComponent[scene.Camera](world)
	ecs.RegisterComponent[app.OverlayWindow](world)

	park, err := buildScene(world, cfg, input)
	if err != nil {
		return err
	}

	bus := world.Events()
	subscribeSceneEvents(bus, world, park, overlay)
	window.OnResize(func(width, height int) {
		ecs.Publish(bus, resizeEvent{width: width, height: height})
	})

	scheduler := ecs.NewScheduler(world)
	scheduler.Register(&scene.BehaviourSystem{})
	scheduler.Register(&scene.TransformSystem{})
	renderSystem := &scene.RenderSystem{ClearColor: clearColor}
	scheduler.Register(renderSystem)
	scheduler.Register(&app.OverlaySystem{Enabled: &overlay.Visible})

	timer := app.NewFrameTimer()
	watcher := newKeyToggles(bus, input)
	spawnPanels(world, park, timer, scheduler, renderSystem)

	logger.Log("playpark", "scene ready, entering main loop")

	for !window.ShouldClose() {
		window.BeginFrame()
		input.BeginFrame()
		watcher.Update()

		dt := timer.Tick(time.Now())
		overlay.BeginFrame(dt)
		scheduler.Once(dt)
		overlay.Render()

		window.EndFrame()
	}

	return nil
}

// events routed through the bus, published by the window callback and the
// key watcher, handled by the scene subscribers
type resizeEvent struct{ width, height int }
type orthoToggleEvent struct{}
type selectionEvent struct{ offset int }
type relativeToggleEvent struct{}
type overlayToggleEvent struct{}

func subscribeSceneEvents(bus *ecs.EventBus, world *ecs.World, park *playground, overlay *app.Overlay) {
	ecs.Subscribe(bus, func(e resizeEvent) {
		if cam := ecs.Get[scene.Camera](world, park.cameraEntity); cam != nil {
			cam.Resize(e.width, e.height)
		}
	})
	ecs.Subscribe(bus, func(orthoToggleEvent) {
		if cam := ecs.Get[scene.Camera](world, park.cameraEntity); cam != nil {
			cam.ToggleOrtho()
			logger.Logf("playpark", "camera ortho: %v", cam.IsOrtho())
		}
	})
	ecs.Subscribe(bus, func(e selectionEvent) {
		park.selectControllable(world, park.selected+e.offset)
	})
	ecs.Subscribe(bus, func(relativeToggleEvent) {
		if move, _ := park.selectedMove(world); move != nil {
			move.Relative = !move.Relative
		}
	})
	ecs.Subscribe(bus, func(overlayToggleEvent) {
		overlay.Visible = !overlay.Visible
	})
}

// newKeyToggles wires the global key shortcuts: T switches the camera
// projection, keypad +/- move the object selection, Y flips the selected
// object between world and relative rotation, Tab hides the overlay.
func newKeyToggles(bus *ecs.EventBus, input *app.Input) *app.KeyWatcher {
	watcher := app.NewKeyWatcher(input.KeyDown, input.WantCaptureKeyboard)

	watcher.Watch(keyToggleOrtho, func() { ecs.Publish(bus, orthoToggleEvent{}) })
	watcher.Watch(keySelectNext, func() { ecs.Publish(bus, selectionEvent{offset: 1}) })
	watcher.Watch(keySelectPrev, func() { ecs.Publish(bus, selectionEvent{offset: -1}) })
	watcher.Watch(keyToggleRelative, func() { ecs.Publish(bus, relativeToggleEvent{}) })
	watcher.Watch(keyToggleOverlay, func() { ecs.Publish(bus, overlayToggleEvent{}) })

	return watcher
}
