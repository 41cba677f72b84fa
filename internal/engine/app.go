package engine

import (
	"errors"
	"fmt"
	"runtime"

	"Stairwell/internal/config"
	"Stairwell/internal/logger"
	"Stairwell/internal/renderer"
	"Stairwell/internal/scene"
	"Stairwell/internal/shapes"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

var ErrMissingMesh = errors.New("no mesh for instance")

// Scene is everything the app draws. Meshes are uploaded once in Run and
// released afterwards.
type Scene struct {
	Meshes    map[scene.MeshKind]*shapes.GeometryBuffer
	Instances []scene.Instance
	Lighting  scene.Lighting
}

// Validate checks that every instance has a mesh and every mesh is a valid buffer.
func (s Scene) Validate() error {
	for kind, buf := range s.Meshes {
		if buf == nil {
			return fmt.Errorf("%s: %w", kind, shapes.ErrInvalidBuffer)
		}
		if err := buf.Validate(); err != nil {
			return fmt.Errorf("%s: %w", kind, err)
		}
	}
	for _, inst := range s.Instances {
		if _, ok := s.Meshes[inst.Mesh]; !ok {
			return fmt.Errorf("%w: %s needs a %s", ErrMissingMesh, inst.Name, inst.Mesh)
		}
	}
	return nil
}

// App owns the window, the GL context and the renderer.
type App struct {
	cfg      config.Config
	scene    Scene
	window   *glfw.Window
	renderer renderer.Render
	Camera   *renderer.Camera
	width    int32
	height   int32
}

func New(cfg config.Config, s Scene) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	opts := renderer.DefaultOptions()
	opts.ClearColor = mgl32.Vec3(cfg.Render.ClearColor)
	opts.Wireframe = cfg.Render.Wireframe
	opts.FaceCulling = cfg.Render.FaceCulling
	opts.DiffuseTexture = cfg.Textures.Diffuse
	opts.SpecularTexture = cfg.Textures.Specular
	opts.TextureScale = cfg.Textures.Scale

	return &App{
		cfg:      cfg,
		scene:    s,
		renderer: renderer.NewOpenGLRenderer(opts),
		Camera:   newCamera(cfg.Camera, cfg.Window.Width, cfg.Window.Height),
		width:    int32(cfg.Window.Width),
		height:   int32(cfg.Window.Height),
	}, nil
}

func newCamera(c config.Camera, width, height int) *renderer.Camera {
	cam := renderer.NewCamera(mgl32.Vec3(c.Position), float32(width)/float32(height))
	cam.Speed = c.Speed
	cam.Sensitivity = c.Sensitivity
	cam.Zoom = c.FOV
	cam.Near = c.Near
	cam.Far = c.Far
	return cam
}

// Run opens the window and blocks until it is closed.
func (app *App) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		logger.Log.Error("Could not initialize glfw", zap.Error(err))
		return fmt.Errorf("init glfw: %w", err)
	}
	defer glfw.Terminate()

	// Matches the gl/v4.1-core bindings; the shaders only need GLSL 330.
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	window, err := glfw.CreateWindow(app.cfg.Window.Width, app.cfg.Window.Height, app.cfg.Window.Title, nil, nil)
	if err != nil {
		logger.Log.Error("Could not create glfw window", zap.Error(err))
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()
	app.window = window
	window.MakeContextCurrent()
	if app.cfg.Window.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	styleWindow(window, app.cfg.Render.ClearColor)

	// The framebuffer can be larger than the window on high DPI displays.
	fbWidth, fbHeight := window.GetFramebufferSize()
	app.resize(int32(fbWidth), int32(fbHeight))
	if err := app.renderer.Init(app.width, app.height); err != nil {
		return err
	}
	defer app.renderer.Cleanup()

	for _, kind := range scene.MeshKinds {
		buf, ok := app.scene.Meshes[kind]
		if !ok {
			continue
		}
		if err := app.renderer.AddMesh(kind, buf); err != nil {
			return err
		}
	}
	app.scene.Meshes = nil

	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.SetFramebufferSizeCallback(app.framebufferSizeCallback)
	window.SetCursorPosCallback(app.cursorPosCallback)
	window.SetScrollCallback(app.scrollCallback)
	window.SetKeyCallback(app.keyCallback)

	logger.Log.Info("Stairwell running",
		zap.Int("instances", len(app.scene.Instances)),
		zap.Int32("width", app.width),
		zap.Int32("height", app.height))
	app.loop()
	return nil
}

func (app *App) loop() {
	lastTime := glfw.GetTime()
	pressed := func(key glfw.Key) bool { return app.window.GetKey(key) == glfw.Press }

	for !app.window.ShouldClose() {
		currentTime := glfw.GetTime()
		deltaTime := float32(currentTime - lastTime)
		lastTime = currentTime

		applyHeldKeys(app.Camera, pressed, deltaTime)
		app.renderer.Render(app.Camera, app.scene.Lighting, app.scene.Instances)

		app.window.SwapBuffers()
		glfw.PollEvents()
	}
}

func (app *App) resize(width, height int32) {
	if width <= 0 || height <= 0 {
		// Minimized; keep the last aspect ratio.
		return
	}
	app.width, app.height = width, height
	app.Camera.SetAspectRatio(float32(width) / float32(height))
}

func (app *App) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	app.resize(int32(width), int32(height))
	app.renderer.UpdateViewport(app.width, app.height)
}

func (app *App) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	xoffset, yoffset := app.Camera.TrackCursor(float32(xpos), float32(ypos))
	app.Camera.ProcessMouseMovement(xoffset, yoffset, true)
}

func (app *App) scrollCallback(_ *glfw.Window, _, yoff float64) {
	app.Camera.ProcessMouseScroll(float32(yoff))
}

func (app *App) keyCallback(w *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	a, ok := pressAction(key, action)
	if !ok {
		return
	}
	switch a {
	case ToggleProjection:
		app.Camera.ToggleProjection()
		logger.Log.Debug("Projection toggled", zap.Bool("orthographic", app.Camera.Orthographic))
	case Quit:
		w.SetShouldClose(true)
	}
}
