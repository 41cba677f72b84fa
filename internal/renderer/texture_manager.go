package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"sync"

	"Stairwell/internal/logger"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"
)

// TextureStats provides debugging and profiling information
type TextureStats struct {
	TotalTextures  int
	CacheHits      int
	CacheMisses    int
	ActiveTextures int
}

// TextureManager caches textures by path and frees them when the last
// reference is released.
type TextureManager struct {
	textureCache    map[string]uint32 // path -> texture ID
	textureRefCount map[uint32]int
	texturePaths    map[uint32]string
	mu              sync.RWMutex
	stats           TextureStats

	upload  func(*image.RGBA) uint32
	release func(uint32)
}

// NewTextureManager returns a manager that uploads to the current GL context.
func NewTextureManager() *TextureManager {
	return newTextureManager(uploadTexture, deleteTexture)
}

func newTextureManager(upload func(*image.RGBA) uint32, release func(uint32)) *TextureManager {
	return &TextureManager{
		textureCache:    make(map[string]uint32),
		textureRefCount: make(map[uint32]int),
		texturePaths:    make(map[uint32]string),
		upload:          upload,
		release:         release,
	}
}

// DecodeImage reads a PNG, JPEG or BMP file into RGBA pixels.
func DecodeImage(filePath string) (*image.RGBA, error) {
	imgFile, err := os.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer imgFile.Close()

	img, _, err := image.Decode(imgFile)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filePath, err)
	}
	return toRGBA(img), nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == rgba.Rect.Dx()*4 && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}
	b := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, b.Min, draw.Src)
	return rgba
}

// LoadTexture loads a texture from file or returns cached texture ID
// Automatically increments reference count
func (tm *TextureManager) LoadTexture(filePath string) (uint32, error) {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if textureID, ok := tm.hit(filePath); ok {
		return textureID, nil
	}

	tm.stats.CacheMisses++
	rgba, err := DecodeImage(filePath)
	if err != nil {
		return 0, err
	}
	textureID := tm.store(filePath, rgba)

	logger.Log.Info("Texture loaded and cached",
		zap.String("path", filePath),
		zap.Uint32("textureID", textureID),
		zap.Int("width", rgba.Rect.Dx()),
		zap.Int("height", rgba.Rect.Dy()))
	return textureID, nil
}

// CreateTextureFromImage uploads img and caches it under name.
func (tm *TextureManager) CreateTextureFromImage(img image.Image, name string) uint32 {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	if textureID, ok := tm.hit(name); ok {
		return textureID
	}
	tm.stats.CacheMisses++
	textureID := tm.store(name, toRGBA(img))
	logger.Log.Info("Texture created from image",
		zap.String("name", name),
		zap.Uint32("textureID", textureID))
	return textureID
}

// SolidTexture returns a 1x1 texture of c, cached by color.
func (tm *TextureManager) SolidTexture(c color.RGBA) uint32 {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.SetRGBA(0, 0, c)
	return tm.CreateTextureFromImage(img, fmt.Sprintf("solid:%02x%02x%02x%02x", c.R, c.G, c.B, c.A))
}

func (tm *TextureManager) hit(key string) (uint32, bool) {
	textureID, exists := tm.textureCache[key]
	if !exists {
		return 0, false
	}
	tm.textureRefCount[textureID]++
	tm.stats.CacheHits++
	logger.Log.Debug("Texture cache hit",
		zap.String("path", key),
		zap.Uint32("textureID", textureID),
		zap.Int("refCount", tm.textureRefCount[textureID]))
	return textureID, true
}

func (tm *TextureManager) store(key string, rgba *image.RGBA) uint32 {
	textureID := tm.upload(rgba)
	tm.textureCache[key] = textureID
	tm.textureRefCount[textureID] = 1
	tm.texturePaths[textureID] = key
	tm.stats.TotalTextures++
	return textureID
}

// AddReference increments the reference count for a texture
func (tm *TextureManager) AddReference(textureID uint32) {
	if textureID == 0 {
		return
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	if _, exists := tm.textureRefCount[textureID]; !exists {
		logger.Log.Warn("Attempted to reference unknown texture", zap.Uint32("textureID", textureID))
		return
	}
	tm.textureRefCount[textureID]++
}

// ReleaseTexture decrements reference count and frees texture if count reaches 0
func (tm *TextureManager) ReleaseTexture(textureID uint32) {
	if textureID == 0 {
		return
	}

	tm.mu.Lock()
	defer tm.mu.Unlock()

	refCount, exists := tm.textureRefCount[textureID]
	if !exists {
		logger.Log.Warn("Attempted to release unknown texture",
			zap.Uint32("textureID", textureID))
		return
	}

	refCount--
	tm.textureRefCount[textureID] = refCount
	if refCount > 0 {
		return
	}

	tm.release(textureID)
	path := tm.texturePaths[textureID]
	delete(tm.textureCache, path)
	delete(tm.textureRefCount, textureID)
	delete(tm.texturePaths, textureID)

	logger.Log.Debug("Texture freed",
		zap.Uint32("textureID", textureID),
		zap.String("path", path))
}

// GetStats returns current texture manager statistics
func (tm *TextureManager) GetStats() TextureStats {
	tm.mu.RLock()
	defer tm.mu.RUnlock()

	stats := tm.stats
	stats.ActiveTextures = len(tm.textureRefCount)
	return stats
}

// Clear frees every texture regardless of references.
func (tm *TextureManager) Clear() {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	for textureID := range tm.textureRefCount {
		tm.release(textureID)
	}
	tm.textureCache = make(map[string]uint32)
	tm.textureRefCount = make(map[uint32]int)
	tm.texturePaths = make(map[uint32]string)

	logger.Log.Info("Texture manager cleared")
}

func uploadTexture(rgba *image.RGBA) uint32 {
	var textureID uint32
	gl.GenTextures(1, &textureID)
	gl.BindTexture(gl.TEXTURE_2D, textureID)
	gl.TexImage2D(
		gl.TEXTURE_2D, 0, gl.RGBA,
		int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()),
		0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))

	// Triplanar lookups tile the texture across the world.
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	return textureID
}

func deleteTexture(textureID uint32) {
	gl.DeleteTextures(1, &textureID)
}
