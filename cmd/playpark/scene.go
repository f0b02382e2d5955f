package main

import (
	"math/rand"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/plus3/playpark/app"
	"github.com/plus3/playpark/behaviours"
	"github.com/plus3/playpark/ecs"
	"github.com/plus3/playpark/gfx"
	"github.com/plus3/playpark/logger"
	"github.com/plus3/playpark/scene"
)

var clearColor = mgl32.Vec4{0.08, 0.17, 0.31, 1.0}

const (
	keyToggleOrtho    = glfw.KeyT
	keySelectNext     = glfw.KeyKPAdd
	keySelectPrev     = glfw.KeyKPSubtract
	keyToggleRelative = glfw.KeyY
	keyToggleOverlay  = glfw.KeyTab
)

// tree placement: anywhere on the ground plane except a dead zone around
// the playground equipment
const (
	treeCount      = 12
	planeExtent    = 19.0
	deadZoneExtent = 3.0
	treeHeight     = 6.0
)

// lightingRig holds the scene-level lighting values the overlay edits.
// Changing a value restages it on every lit material.
type lightingRig struct {
	LightPos          mgl32.Vec3
	LightCol          mgl32.Vec3
	AmbientLightPow   float32
	SpecularLightPow  float32
	AmbientCol        mgl32.Vec3
	AmbientPow        float32
	LinearAttenuation float32
	QuadAttenuation   float32

	// shading mode flags, at most one set
	LightOff            int32
	AmbientOnly         int32
	SpecularOnly        int32
	AmbientSpecular     int32
	AmbientSpecularToon int32

	materials []*scene.Material
}

func newLightingRig() *lightingRig {
	return &lightingRig{
		LightPos:          mgl32.Vec3{0, 0, 2},
		LightCol:          mgl32.Vec3{0.9, 0.85, 0.5},
		AmbientLightPow:   0.7,
		SpecularLightPow:  1.0,
		AmbientCol:        mgl32.Vec3{1, 1, 1},
		AmbientPow:        0.1,
		LinearAttenuation: 0.009,
		QuadAttenuation:   0.032,
	}
}

// Stage pushes the current lighting values onto every registered material
func (l *lightingRig) Stage() {
	for _, m := range l.materials {
		m.SetVec3("u_LightPos", l.LightPos)
		m.SetVec3("u_LightCol", l.LightCol)
		m.SetFloat("u_AmbientLightStrength", l.AmbientLightPow)
		m.SetFloat("u_SpecularLightStrength", l.SpecularLightPow)
		m.SetVec3("u_AmbientCol", l.AmbientCol)
		m.SetFloat("u_AmbientStrength", l.AmbientPow)
		m.SetFloat("u_LightAttenuationConstant", 1.0)
		m.SetFloat("u_LightAttenuationLinear", l.LinearAttenuation)
		m.SetFloat("u_LightAttenuationQuadratic", l.QuadAttenuation)
		m.SetInt("u_lightoff", l.LightOff)
		m.SetInt("u_ambient", l.AmbientOnly)
		m.SetInt("u_specular", l.SpecularOnly)
		m.SetInt("u_ambientspecular", l.AmbientSpecular)
		m.SetInt("u_ambientspeculartoon", l.AmbientSpecularToon)
	}
}

// SetMode sets the shading mode flags, clearing all others
func (l *lightingRig) SetMode(lightOff, ambient, specular, ambientSpecular, toon int32) {
	l.LightOff = lightOff
	l.AmbientOnly = ambient
	l.SpecularOnly = specular
	l.AmbientSpecular = ambientSpecular
	l.AmbientSpecularToon = toon
	l.Stage()
}

// playground carries the scene handles the shortcuts and overlay need
// after construction
type playground struct {
	cameraEntity ecs.EntityId
	lighting     *lightingRig

	// controllables can be steered with the keyboard, one at a time
	controllables []ecs.EntityId
	names         []string
	selected      int
}

// selectControllable enables steering on the given entity and disables it
// on the rest. The index wraps in both directions.
func (p *playground) selectControllable(w *ecs.World, index int) {
	if len(p.controllables) == 0 {
		return
	}
	p.selected = (index%len(p.controllables) + len(p.controllables)) % len(p.controllables)

	for i, id := range p.controllables {
		bs := ecs.Get[scene.Behaviours](w, id)
		if bs == nil {
			continue
		}
		if _, slot := scene.FindBehaviour[*behaviours.SimpleMove](bs); slot != nil {
			slot.Enabled = i == p.selected
		}
	}
}

// selectedMove returns the selected entity's steering behaviour
func (p *playground) selectedMove(w *ecs.World) (*behaviours.SimpleMove, *scene.Slot) {
	if len(p.controllables) == 0 {
		return nil, nil
	}
	bs := ecs.Get[scene.Behaviours](w, p.controllables[p.selected])
	if bs == nil {
		return nil, nil
	}
	return scene.FindBehaviour[*behaviours.SimpleMove](bs)
}

// prop describes one static scene object
type prop struct {
	name     string
	model    string
	texture  string
	position mgl32.Vec3
	scale    mgl32.Vec3
	steer    bool // can be selected and steered with the keyboard
}

// buildScene loads the assets and spawns the playground: ground, props,
// drifting balloons, random trees, the skybox dome and the camera.
func buildScene(w *ecs.World, cfg app.Config, input *app.Input) (*playground, error) {
	assets := newAssetLoader(cfg.Assets.Dir)
	lighting := newLightingRig()

	blinnPhong, err := assets.Shader("vertex_shader.glsl", "frag_blinn_phong_textured.glsl")
	if err != nil {
		return nil, err
	}
	skyboxShader, err := assets.Shader("skybox-shader.vert.glsl", "skybox-shader.frag.glsl")
	if err != nil {
		return nil, err
	}

	// secondary diffuse and specular maps shared by every lit material
	sharedDiffuse2 := assets.Texture("box.bmp")
	sharedSpecular := assets.Texture("Stone_001_Specular.png")

	litMaterial := func(diffuse string) *scene.Material {
		m := scene.NewMaterial(blinnPhong)
		m.SetTexture("s_Diffuse", assets.Texture(diffuse))
		m.SetTexture("s_Diffuse2", sharedDiffuse2)
		m.SetTexture("s_Specular", sharedSpecular)
		m.SetFloat("u_Shininess", 8.0)
		m.SetFloat("u_TextureMix", 0.0)
		lighting.materials = append(lighting.materials, m)
		return m
	}

	park := &playground{lighting: lighting}

	props := []prop{
		{"Ground", "Ground.obj", "grass.jpg", mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0.5, 0.25, 0.5}, false},
		{"Dunce", "Dunce.obj", "Dunce.png", mgl32.Vec3{0, 0, 0.9}, mgl32.Vec3{1, 1, 1}, true},
		{"Duncet", "Duncet.obj", "Duncet.png", mgl32.Vec3{2, 0, 0.8}, mgl32.Vec3{1, 1, 1}, true},
		{"Slide", "Slide.obj", "Slide.png", mgl32.Vec3{0, 5, 3}, mgl32.Vec3{0.5, 0.5, 0.5}, false},
		{"Swing", "Swing.obj", "Swing.png", mgl32.Vec3{-5, 0, 3.5}, mgl32.Vec3{0.5, 0.5, 0.5}, false},
		{"Table", "Table.obj", "Table.png", mgl32.Vec3{5, 0, 1.25}, mgl32.Vec3{0.35, 0.35, 0.35}, false},
	}
	for _, p := range props {
		id := spawnProp(w, assets, litMaterial(p.texture), p, input)
		if p.steer {
			park.controllables = append(park.controllables, id)
			park.names = append(park.names, p.name)
		}
	}

	spawnBalloons(w, assets, litMaterial, input)
	spawnTrees(w, assets, litMaterial("TreeBig.png"))

	environment, err := assets.CubeMap("cubemaps/ocean.jpg")
	if err != nil {
		logger.Logf("playpark", "%v, sky stays flat", err)
	} else {
		spawnSkybox(w, assets, skyboxShader, environment)
		if err := spawnOrnaments(w, assets, lighting, environment); err != nil {
			logger.Logf("playpark", "%v, skipping ornaments", err)
		}
	}

	park.cameraEntity = spawnCamera(w, input, cfg.Controls)
	ecs.AddResource(w, scene.ActiveCamera{Entity: park.cameraEntity})

	// steering is bound disabled everywhere; enable the first controllable
	park.selectControllable(w, 0)

	lighting.Stage()
	return park, nil
}

func spawnProp(w *ecs.World, assets *assetLoader, material *scene.Material, p prop, input *app.Input) ecs.EntityId {
	id := w.Spawn()

	tr := ecs.Add(w, id, scene.NewTransform())
	tr.SetLocalPosition(p.position.X(), p.position.Y(), p.position.Z())
	// the models were authored Y-up, stand them up in the Z-up world
	tr.SetLocalRotation(90, 0, 0)
	tr.SetLocalScale(p.scale.X(), p.scale.Y(), p.scale.Z())

	ecs.Add(w, id, scene.Renderer{Mesh: assets.Mesh(p.model), Material: material})

	bs := ecs.Add(w, id, scene.Behaviours{})
	bs.BindDisabled(&behaviours.SimpleMove{Input: input})
	return id
}

// spawnBalloons creates the two balloons drifting around the same
// rectangle in opposite phase
func spawnBalloons(w *ecs.World, assets *assetLoader, litMaterial func(string) *scene.Material, input *app.Input) {
	type balloon struct {
		texture string
		start   mgl32.Vec3
		path    []mgl32.Vec3
	}

	balloons := []balloon{
		{
			texture: "BalloonRed.png",
			start:   mgl32.Vec3{2.5, -10, 3},
			path: []mgl32.Vec3{
				{-2.5, -10, 3}, {2.5, -10, 3}, {2.5, -5, 3}, {-2.5, -5, 3},
			},
		},
		{
			texture: "BalloonYellow.png",
			start:   mgl32.Vec3{-2.5, -10, 3},
			path: []mgl32.Vec3{
				{2.5, -10, 3}, {-2.5, -10, 3}, {-2.5, -5, 3}, {2.5, -5, 3},
			},
		},
	}

	for _, b := range balloons {
		id := w.Spawn()

		tr := ecs.Add(w, id, scene.NewTransform())
		tr.SetLocalPosition(b.start.X(), b.start.Y(), b.start.Z())
		tr.SetLocalRotation(90, 0, 0)
		tr.SetLocalScale(0.5, 0.5, 0.5)

		ecs.Add(w, id, scene.Renderer{Mesh: assets.Mesh("Balloon.obj"), Material: litMaterial(b.texture)})

		bs := ecs.Add(w, id, scene.Behaviours{})
		bs.Bind(behaviours.NewFollowPath(2.0, b.path...))
		bs.BindDisabled(&behaviours.SimpleMove{Input: input})
	}
}

// spawnTrees scatters pines over the ground plane, avoiding the equipment
// at the center
func spawnTrees(w *ecs.World, assets *assetLoader, material *scene.Material) {
	mesh := assets.Mesh("TreeBig.obj")

	for i := 0; i < treeCount; i++ {
		var x, y float32
		for {
			x = (rand.Float32()*2 - 1) * planeExtent
			y = (rand.Float32()*2 - 1) * planeExtent
			if x < -deadZoneExtent || x > deadZoneExtent || y < -deadZoneExtent || y > deadZoneExtent {
				break
			}
		}

		id := w.Spawn()
		tr := ecs.Add(w, id, scene.NewTransform())
		tr.SetLocalPosition(x, y, treeHeight)
		tr.SetLocalRotation(90, 0, 0)
		tr.SetLocalScale(0.5, 0.5, 0.5)
		ecs.Add(w, id, scene.Renderer{Mesh: mesh, Material: material})
	}
}

// environmentRotation turns the Y-up environment images into the Z-up world
func environmentRotation() mgl32.Mat3 {
	return mgl32.Rotate3DX(mgl32.DegToRad(90))
}

// spawnSkybox builds the inverted icosphere dome around the scene
func spawnSkybox(w *ecs.World, assets *assetLoader, shader *gfx.Shader, environment *gfx.TextureCubeMap) {
	material := scene.NewMaterial(shader)
	material.SetTexture("s_Environment", environment)
	material.SetMat3("u_EnvironmentRotation", environmentRotation())
	material.SetRenderLayer(100)

	b := gfx.NewMeshBuilder()
	b.AddIcoSphere(mgl32.Vec3{}, 1.0)
	b.InvertFaces()

	id := w.Spawn()
	ecs.Add(w, id, scene.NewTransform())
	ecs.Add(w, id, scene.Renderer{Mesh: gfx.Bake(b.Mesh()), Material: material})
}

// spawnOrnaments places two mirrored spheres by the picnic table, one lit
// with a reflectivity map and one a pure mirror
func spawnOrnaments(w *ecs.World, assets *assetLoader, lighting *lightingRig, environment *gfx.TextureCubeMap) error {
	litReflective, err := assets.Shader("vertex_shader.glsl", "frag_blinn_phong_reflection.glsl")
	if err != nil {
		return err
	}
	mirror, err := assets.Shader("vertex_shader.glsl", "frag_reflection.frag.glsl")
	if err != nil {
		return err
	}

	stone := scene.NewMaterial(litReflective)
	stone.SetTexture("s_Diffuse", assets.Texture("Stone_001_Diffuse.png"))
	stone.SetTexture("s_Diffuse2", assets.Texture("box.bmp"))
	stone.SetTexture("s_Specular", assets.Texture("Stone_001_Specular.png"))
	stone.SetTexture("s_Reflectivity", assets.Texture("box-reflections.bmp"))
	stone.SetTexture("s_Environment", environment)
	stone.SetFloat("u_Shininess", 8.0)
	stone.SetFloat("u_TextureMix", 0.5)
	stone.SetMat3("u_EnvironmentRotation", environmentRotation())
	lighting.materials = append(lighting.materials, stone)

	chrome := scene.NewMaterial(mirror)
	chrome.SetTexture("s_Environment", environment)
	chrome.SetMat3("u_EnvironmentRotation", environmentRotation())

	b := gfx.NewMeshBuilder()
	b.AddIcoSphereV(mgl32.Vec3{}, 0.5, 3)
	mesh := gfx.Bake(b.Mesh())

	for i, material := range []*scene.Material{stone, chrome} {
		id := w.Spawn()
		tr := ecs.Add(w, id, scene.NewTransform())
		tr.SetLocalPosition(5, float32(2-4*i), 1)
		ecs.Add(w, id, scene.Renderer{Mesh: mesh, Material: material})
	}
	return nil
}

func spawnCamera(w *ecs.World, input *app.Input, controls app.ControlConfig) ecs.EntityId {
	id := w.Spawn()

	cam := ecs.Add(w, id, scene.NewCamera())
	cam.Position = mgl32.Vec3{0, 3, 3}
	cam.Up = mgl32.Vec3{0, 0, 1}
	cam.LookAt(mgl32.Vec3{0, 0, 0})
	cam.FovDegrees = 90
	cam.OrthoHeight = 3

	control := behaviours.NewCameraControl(input)
	if controls.MoveSpeed > 0 {
		control.MoveSpeed = controls.MoveSpeed
	}
	if controls.MouseSensitivity > 0 {
		control.LookSpeed = controls.MouseSensitivity
	}

	bs := ecs.Add(w, id, scene.Behaviours{})
	bs.Bind(control)
	return id
}
