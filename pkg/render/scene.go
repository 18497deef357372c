package render

import (
	"fmt"

	"github.com/brushkit/valvemap/internal/openglhelper"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// Scene owns the window, camera, and shader used to display a static list
// of uploaded meshes: the geometry itself never changes once built, unlike
// the per-frame chunk streaming the camera/window/input wiring was
// originally built to drive.
type Scene struct {
	window *openglhelper.Window
	camera *Camera
	shader *openglhelper.Shader

	meshes []*openglhelper.Mesh

	lastFrameTime   float64
	deltaTime       float32
	isWireframeMode bool
	clearColor      mgl32.Vec4

	isClosed bool
}

// NewScene creates a window, camera, and shader program per cfg, ready to
// accept uploaded meshes via AddMesh.
func NewScene(cfg Config) (*Scene, error) {
	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return nil, fmt.Errorf("render: create window: %w", err)
	}

	camera := NewCamera(mgl32.Vec3{0, 64, 200})
	camera.moveSpeed = cfg.Camera.MoveSpeed
	camera.rotateSpeed = cfg.Camera.RotateSpeed
	camera.fov = cfg.Camera.FOV
	camera.LookAt(mgl32.Vec3{0, 0, 0})
	camera.UpdateProjectionMatrix(cfg.Window.Width, cfg.Window.Height)

	shader, err := openglhelper.LoadShaderFromFiles("pkg/render/shaders/vert.glsl", "pkg/render/shaders/frag.glsl")
	if err != nil {
		return nil, fmt.Errorf("render: load shader: %w", err)
	}

	scene := &Scene{
		window:     window,
		camera:     camera,
		shader:     shader,
		clearColor: mgl32.Vec4{cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], cfg.ClearColor[3]},
	}

	window.GLFWWindow().SetKeyCallback(scene.keyCallback)
	window.GLFWWindow().SetCursorPosCallback(scene.cursorPosCallback)
	window.GLFWWindow().SetScrollCallback(scene.scrollCallback)
	window.GLFWWindow().SetFramebufferSizeCallback(scene.framebufferSizeCallback)

	return scene, nil
}

// AddMesh uploads geo to the GPU under the scene's shader and keeps it for
// drawing every frame.
func (s *Scene) AddMesh(geo openglhelper.Geometry) {
	s.meshes = append(s.meshes, openglhelper.FromGeometry(geo, s.shader))
}

// ToggleWireframeMode flips between filled and line polygon rendering.
func (s *Scene) ToggleWireframeMode() {
	s.isWireframeMode = !s.isWireframeMode
	if s.isWireframeMode {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

// ShouldClose reports whether the window has been asked to close.
func (s *Scene) ShouldClose() bool {
	return s.window.ShouldClose()
}

// RenderFrame clears the screen, draws every uploaded mesh, and swaps
// buffers.
func (s *Scene) RenderFrame() {
	currentTime := glfw.GetTime()
	s.deltaTime = float32(currentTime - s.lastFrameTime)
	s.lastFrameTime = currentTime

	s.camera.ProcessKeyboardInput(s.deltaTime, s.window)

	s.window.Clear(s.clearColor)
	gl.Enable(gl.DEPTH_TEST)

	s.shader.Use()
	s.shader.SetMat4("uView", s.camera.ViewMatrix())
	s.shader.SetMat4("uProjection", s.camera.ProjectionMatrix())
	s.shader.SetMat4("uModel", mgl32.Ident4())
	s.shader.SetVec3("uLightDir", mgl32.Vec3{-0.4, -1.0, -0.3})

	for _, m := range s.meshes {
		m.Draw()
	}

	s.window.SwapBuffers()
	s.window.PollEvents()
}

// Run drives the render loop until the window is closed, then cleans up.
func (s *Scene) Run() {
	for !s.ShouldClose() {
		s.RenderFrame()
	}
	s.Cleanup()
}

// Cleanup releases every uploaded mesh and the window.
func (s *Scene) Cleanup() {
	if s.isClosed {
		return
	}
	for _, m := range s.meshes {
		m.Delete()
	}
	s.window.Close()
	s.isClosed = true
}

func (s *Scene) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		s.window.GLFWWindow().SetShouldClose(true)
	}
	if key == glfw.KeyC && action == glfw.Press {
		s.window.ToggleMouseCaptured()
		s.camera.ResetMouseState()
	}
	if key == KeyX && action == Press {
		s.ToggleWireframeMode()
	}
}

func (s *Scene) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	if s.window.IsMouseCaptured() {
		s.camera.HandleMouseMovement(xpos, ypos)
	}
}

func (s *Scene) scrollCallback(_ *glfw.Window, _, yoffset float64) {
	s.camera.HandleMouseScroll(yoffset)
}

func (s *Scene) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	s.window.OnResize(width, height)
	s.camera.UpdateProjectionMatrix(width, height)
}
