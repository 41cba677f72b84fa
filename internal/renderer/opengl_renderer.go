package renderer

import (
	"fmt"
	"image/color"

	"Stairwell/internal/logger"
	"Stairwell/internal/scene"
	"Stairwell/internal/shapes"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
)

var white = color.RGBA{255, 255, 255, 255}

var _ Render = (*OpenGLRenderer)(nil)

type OpenGLRenderer struct {
	Options Options

	shader   *Shader
	meshes   map[scene.MeshKind]*Mesh
	textures *TextureManager
	diffuse  uint32
	specular uint32
	// kinds already warned about
	missing map[scene.MeshKind]bool
}

func NewOpenGLRenderer(opts Options) *OpenGLRenderer {
	return &OpenGLRenderer{
		Options: opts,
		meshes:  make(map[scene.MeshKind]*Mesh),
		missing: make(map[scene.MeshKind]bool),
	}
}

// Init loads the GL entry points for the current context, compiles the shader
// and loads the textures. On failure everything created so far is released.
func (rend *OpenGLRenderer) Init(width, height int32) error {
	if err := gl.Init(); err != nil {
		logger.Log.Error("OpenGL initialization failed", zap.Error(err))
		return fmt.Errorf("init OpenGL: %w", err)
	}
	logger.Log.Info("OpenGL context", zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))))

	var undo Unwind
	defer undo.Unwind()

	rend.shader = NewPhongShader()
	if err := rend.shader.Compile(); err != nil {
		return err
	}
	undo.Add(rend.shader.Delete)

	rend.textures = NewTextureManager()
	undo.Add(rend.textures.Clear)
	var err error
	if rend.diffuse, err = rend.loadTexture(rend.Options.DiffuseTexture); err != nil {
		return err
	}
	if rend.specular, err = rend.loadTexture(rend.Options.SpecularTexture); err != nil {
		return err
	}

	gl.Viewport(0, 0, width, height)
	undo.Discard()
	logger.Log.Info("OpenGL render initialized", zap.Int32("width", width), zap.Int32("height", height))
	return nil
}

func (rend *OpenGLRenderer) loadTexture(path string) (uint32, error) {
	if path == "" {
		return rend.textures.SolidTexture(white), nil
	}
	id, err := rend.textures.LoadTexture(path)
	if err != nil {
		return 0, fmt.Errorf("load texture: %w", err)
	}
	return id, nil
}

// AddMesh uploads buf as the mesh drawn for kind, replacing any previous one.
func (rend *OpenGLRenderer) AddMesh(kind scene.MeshKind, buf *shapes.GeometryBuffer) error {
	mesh, err := UploadMesh(buf)
	if err != nil {
		logger.Log.Error("Mesh upload failed", zap.Stringer("kind", kind), zap.Error(err))
		return fmt.Errorf("%s: %w", kind, err)
	}
	if old, ok := rend.meshes[kind]; ok {
		old.Delete()
	}
	rend.meshes[kind] = mesh
	delete(rend.missing, kind)

	logger.Log.Info("Mesh uploaded",
		zap.Stringer("kind", kind),
		zap.Int("vertices", buf.VertexCount()),
		zap.Int("indices", buf.IndexCount()))
	return nil
}

func (rend *OpenGLRenderer) Render(camera *Camera, lighting scene.Lighting, instances []scene.Instance) {
	c := rend.Options.ClearColor
	gl.ClearColor(c.X(), c.Y(), c.Z(), 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if rend.Options.DepthTest {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
	// All generated meshes wind their front faces counter-clockwise.
	if rend.Options.FaceCulling {
		gl.Enable(gl.CULL_FACE)
		gl.CullFace(gl.BACK)
		gl.FrontFace(gl.CCW)
	} else {
		gl.Disable(gl.CULL_FACE)
	}
	if rend.Options.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	rend.shader.Use()
	uniforms := rend.shader.Uniforms()
	uniforms.SetMat4("view", camera.GetViewMatrix())
	uniforms.SetMat4("projection", camera.GetProjectionMatrix())
	uniforms.SetFloat("textureScale", rend.Options.TextureScale)
	for _, u := range LightingUniforms(lighting, camera) {
		uniforms.Set(u)
	}

	gl.ActiveTexture(gl.TEXTURE0 + DiffuseTextureUnit)
	gl.BindTexture(gl.TEXTURE_2D, rend.diffuse)
	gl.ActiveTexture(gl.TEXTURE0 + SpecularTextureUnit)
	gl.BindTexture(gl.TEXTURE_2D, rend.specular)

	for _, inst := range instances {
		mesh, ok := rend.meshes[inst.Mesh]
		if !ok {
			if !rend.missing[inst.Mesh] {
				logger.Log.Warn("No mesh uploaded for instance", zap.String("instance", inst.Name), zap.Stringer("kind", inst.Mesh))
				rend.missing[inst.Mesh] = true
			}
			continue
		}
		uniforms.SetMat4("model", inst.Model())
		uniforms.SetBool("useTexture", inst.Textured)
		mesh.Draw()
	}
	gl.BindVertexArray(0)
}

// UpdateViewport updates the OpenGL viewport to match the current window size
func (rend *OpenGLRenderer) UpdateViewport(width, height int32) {
	gl.Viewport(0, 0, width, height)
}

func (rend *OpenGLRenderer) Cleanup() {
	for kind, mesh := range rend.meshes {
		mesh.Delete()
		delete(rend.meshes, kind)
	}
	if rend.textures != nil {
		rend.textures.Clear()
	}
	if rend.shader != nil {
		rend.shader.Delete()
	}
	logger.Log.Info("OpenGL renderer cleaned up")
}
