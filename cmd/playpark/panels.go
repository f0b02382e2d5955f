package main

import (
	"fmt"

	"github.com/inkyblackness/imgui-go/v4"

	"github.com/plus3/playpark/app"
	"github.com/plus3/playpark/ecs"
	"github.com/plus3/playpark/logger"
	"github.com/plus3/playpark/scene"
)

const logPanelLines = 20

// spawnPanels creates the overlay windows: lighting controls, the selected
// object, frame timing and the application log
func spawnPanels(w *ecs.World, park *playground, timer *app.FrameTimer,
	scheduler *ecs.Scheduler, render *scene.RenderSystem) {

	panel := func(title string, body func()) {
		id := w.Spawn()
		ecs.Add(w, id, app.OverlayWindow{Title: title, Open: true, Render: body})
	}

	panel("Lighting", func() { lightingPanel(park.lighting) })
	panel("Scene", func() { scenePanel(w, park) })
	panel("Performance", func() { performancePanel(timer, scheduler, render) })
	panel("Log", logPanel)
}

func lightingPanel(l *lightingRig) {
	changed := false
	slider := func(label string, value *float32, min, max float32) {
		if imgui.SliderFloatV(label, value, min, max, "%.3f", imgui.SliderFlagsNone) {
			changed = true
		}
	}
	vec3 := func(label string, v *[3]float32, min, max float32) {
		slider(label+" X", &v[0], min, max)
		slider(label+" Y", &v[1], min, max)
		slider(label+" Z", &v[2], min, max)
	}

	if imgui.CollapsingHeader("Point Light") {
		vec3("Position", (*[3]float32)(&l.LightPos), -20, 20)
		vec3("Color", (*[3]float32)(&l.LightCol), 0, 1)
		slider("Diffuse Power", &l.AmbientLightPow, 0, 2)
		slider("Specular Power", &l.SpecularLightPow, 0, 2)
	}
	if imgui.CollapsingHeader("Ambient") {
		vec3("Ambient Color", (*[3]float32)(&l.AmbientCol), 0, 1)
		slider("Ambient Power", &l.AmbientPow, 0, 1)
	}
	if imgui.CollapsingHeader("Attenuation") {
		slider("Linear", &l.LinearAttenuation, 0, 0.1)
		slider("Quadratic", &l.QuadAttenuation, 0, 0.1)
	}
	if changed {
		l.Stage()
	}

	imgui.Separator()
	imgui.Text("Shading Mode")
	if imgui.Button("Off") {
		l.SetMode(1, 0, 0, 0, 0)
	}
	imgui.SameLine()
	if imgui.Button("Ambient") {
		l.SetMode(0, 1, 0, 0, 0)
	}
	imgui.SameLine()
	if imgui.Button("Specular") {
		l.SetMode(0, 0, 1, 0, 0)
	}
	if imgui.Button("Ambient+Specular") {
		l.SetMode(0, 0, 0, 1, 0)
	}
	imgui.SameLine()
	if imgui.Button("Toon") {
		l.SetMode(0, 0, 0, 0, 1)
	}
	if imgui.Button("Full Lighting") {
		l.SetMode(0, 0, 0, 0, 0)
	}
}

func scenePanel(w *ecs.World, park *playground) {
	imgui.Text("Controllables")
	for i, name := range park.names {
		if imgui.Selectable(selectedLabel(name, i == park.selected)) {
			park.selectControllable(w, i)
		}
	}

	imgui.Separator()
	move, _ := park.selectedMove(w)
	if move == nil {
		imgui.Text("nothing selected")
		return
	}
	imgui.Checkbox("Relative Rotation", &move.Relative)
	imgui.Text("Q/E -> Yaw  Up/Down -> Pitch  Left/Right -> Roll")
	imgui.Text("KP +/- cycles the selection, Y flips rotation mode")
}

func selectedLabel(name string, selected bool) string {
	if selected {
		return "> " + name
	}
	return "  " + name
}

func performancePanel(timer *app.FrameTimer, scheduler *ecs.Scheduler, render *scene.RenderSystem) {
	// the timer samples frame rates, not frame times
	imgui.PlotLinesV("FPS", timer.Samples(), 0, "", 0, 200, imgui.Vec2{X: 0, Y: 60})

	minFps, maxFps, avgFps := timer.Stats()
	imgui.Text(fmt.Sprintf("fps  min %.1f  max %.1f  avg %.1f", minFps, maxFps, avgFps))
	// the slowest frame is the one with the lowest rate
	imgui.Text(fmt.Sprintf("frame  min %.2fms  max %.2fms  avg %.2fms",
		frameMillis(maxFps), frameMillis(minFps), frameMillis(avgFps)))

	stats := render.LastStats
	imgui.Text(fmt.Sprintf("draws %d  shader binds %d  material applies %d",
		stats.Calls, stats.ShaderBinds, stats.MaterialApplies))

	if !imgui.CollapsingHeader("Systems") {
		return
	}
	if imgui.BeginTableV("systems", 3, 0, imgui.Vec2{}, 0) {
		for _, sys := range scheduler.GetStats().Systems {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(sys.Name)
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%.3fms", float64(sys.LastDuration.Microseconds())/1000))
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("avg %.3fms", float64(sys.AvgDuration.Microseconds())/1000))
		}
		imgui.EndTable()
	}
}

// frameMillis converts a frame rate into a frame duration in milliseconds
func frameMillis(fps float32) float32 {
	if fps <= 0 {
		return 0
	}
	return 1000 / fps
}

func logPanel() {
	entries := logger.Tail(logPanelLines)
	if len(entries) == 0 {
		imgui.Text("log is empty")
		return
	}
	for _, e := range entries {
		line := fmt.Sprintf("%s: %s", e.Tag, e.Detail)
		if e.Repeated > 0 {
			line = fmt.Sprintf("%s (x%d)", line, e.Repeated+1)
		}
		imgui.Text(line)
	}
}
