package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"Stairwell/internal/scene"
	"Stairwell/internal/shapes"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func TestVertexAttributesMatchLayout(t *testing.T) {
	require.Len(t, VertexAttributes, 3)
	for i, attr := range VertexAttributes {
		assert.Equal(t, uint32(i), attr.Location)
		assert.Equal(t, int32(3), attr.Size)
		assert.Equal(t, uintptr(12*i), attr.Offset)
	}
}

func TestVertexShaderDeclaresAttributes(t *testing.T) {
	for _, attr := range VertexAttributes {
		assert.Contains(t, vertexShaderSource, fmt.Sprintf("layout(location = %d) in vec3", attr.Location))
	}
}

func TestShaderSourcesTerminated(t *testing.T) {
	for _, src := range []string{vertexShaderSource, fragmentShaderSource} {
		assert.True(t, strings.HasPrefix(src, "#version 330 core"))
		assert.True(t, strings.HasSuffix(src, "\x00"))
	}
	assert.Contains(t, fragmentShaderSource, fmt.Sprintf("#define NR_POINT_LIGHTS %d", scene.MaxPointLights))
}

var arrayIndex = regexp.MustCompile(`\[\d+\]`)

// Every uniform the renderer sets must be declared, or the values are silently dropped.
func TestLightingUniformsDeclared(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{0, 5, 10}, 1)
	names := []string{"model", "view", "projection", "useTexture", "textureScale"}
	for _, u := range LightingUniforms(scene.DefaultLighting(), cam) {
		names = append(names, u.Name)
	}

	for _, name := range names {
		name = arrayIndex.ReplaceAllString(name, "")
		base, field, nested := strings.Cut(name, ".")
		src := vertexShaderSource + fragmentShaderSource
		assert.Regexp(t, `uniform \w+ `+regexp.QuoteMeta(base)+`(\[|;)`, src, name)
		if nested {
			assert.Regexp(t, `\s\w+ `+regexp.QuoteMeta(field)+`;`, fragmentShaderSource, name)
		}
	}
}

func TestLightingUniformValues(t *testing.T) {
	cam := NewCamera(mgl32.Vec3{1, 2, 3}, 1)
	lighting := scene.DefaultLighting()
	values := make(map[string]interface{})
	for _, u := range LightingUniforms(lighting, cam) {
		_, dup := values[u.Name]
		require.False(t, dup, u.Name)
		values[u.Name] = u.Value
	}

	assert.Equal(t, int32(4), values["numPointLights"])
	assert.Equal(t, lighting.Points[2].Position, values["pointLights[2].position"])
	assert.Equal(t, float32(0.032), values["pointLights[3].quadratic"])
	assert.Equal(t, cam.Position, values["spotLight.position"])
	assert.Equal(t, cam.Front, values["spotLight.direction"])
	assert.Equal(t, float32(32), values["material.shininess"])
	assert.Equal(t, int32(SpecularTextureUnit), values["material.specular"])
	inner, outer := lighting.Spot.CutoffCos()
	assert.Equal(t, inner, values["spotLight.cutOff"])
	assert.Equal(t, outer, values["spotLight.outerCutOff"])
}

func TestLightingUniformsDropExtraPointLights(t *testing.T) {
	lighting := scene.DefaultLighting()
	lighting.Points = append(lighting.Points, lighting.Points...)
	var names []string
	for _, u := range LightingUniforms(lighting, NewCamera(mgl32.Vec3{}, 1)) {
		names = append(names, u.Name)
		if u.Name == "numPointLights" {
			assert.Equal(t, int32(scene.MaxPointLights), u.Value)
		}
	}
	assert.NotContains(t, names, fmt.Sprintf("pointLights[%d].position", scene.MaxPointLights))
}

func fakeTextureManager() (*TextureManager, *[]uint32) {
	var next uint32
	var released []uint32
	tm := newTextureManager(
		func(*image.RGBA) uint32 { next++; return next },
		func(id uint32) { released = append(released, id) },
	)
	return tm, &released
}

func writeTestImages(t *testing.T) (pngPath, bmpPath string) {
	dir := t.TempDir()
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	img.Set(1, 1, color.NRGBA{R: 200, A: 255})

	pngPath = filepath.Join(dir, "wood.png")
	f, err := os.Create(pngPath)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())

	bmpPath = filepath.Join(dir, "wood.bmp")
	f, err = os.Create(bmpPath)
	require.NoError(t, err)
	require.NoError(t, bmp.Encode(f, img))
	require.NoError(t, f.Close())
	return pngPath, bmpPath
}

func TestDecodeImage(t *testing.T) {
	pngPath, bmpPath := writeTestImages(t)
	for _, path := range []string{pngPath, bmpPath} {
		rgba, err := DecodeImage(path)
		require.NoError(t, err, path)
		assert.Equal(t, image.Rect(0, 0, 4, 2), rgba.Bounds())
		assert.Equal(t, color.RGBA{R: 200, A: 255}, rgba.RGBAAt(1, 1), path)
	}

	_, err := DecodeImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	junk := filepath.Join(t.TempDir(), "junk.png")
	require.NoError(t, os.WriteFile(junk, []byte("not an image"), 0o644))
	_, err = DecodeImage(junk)
	assert.Error(t, err)
}

func TestTextureManagerRefCounting(t *testing.T) {
	pngPath, bmpPath := writeTestImages(t)
	tm, released := fakeTextureManager()

	a, err := tm.LoadTexture(pngPath)
	require.NoError(t, err)
	b, err := tm.LoadTexture(pngPath)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	c, err := tm.LoadTexture(bmpPath)
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	stats := tm.GetStats()
	assert.Equal(t, 2, stats.TotalTextures)
	assert.Equal(t, 1, stats.CacheHits)
	assert.Equal(t, 2, stats.CacheMisses)
	assert.Equal(t, 2, stats.ActiveTextures)

	tm.ReleaseTexture(a)
	assert.Empty(t, *released)
	tm.ReleaseTexture(a)
	assert.Equal(t, []uint32{a}, *released)
	tm.ReleaseTexture(a)
	assert.Equal(t, []uint32{a}, *released)

	// A freed path loads again as a new texture.
	d, err := tm.LoadTexture(pngPath)
	require.NoError(t, err)
	assert.NotEqual(t, a, d)

	tm.Clear()
	assert.ElementsMatch(t, []uint32{a, c, d}, *released)
	assert.Zero(t, tm.GetStats().ActiveTextures)
}

func TestSolidTextureCached(t *testing.T) {
	tm, _ := fakeTextureManager()
	a := tm.SolidTexture(color.RGBA{255, 255, 255, 255})
	b := tm.SolidTexture(color.RGBA{255, 255, 255, 255})
	c := tm.SolidTexture(color.RGBA{0, 0, 0, 255})
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestUploadMeshRejectsInvalidBuffer(t *testing.T) {
	_, err := UploadMesh(&shapes.GeometryBuffer{})
	assert.ErrorIs(t, err, shapes.ErrInvalidBuffer)
}
