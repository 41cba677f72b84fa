package shapes

import (
	"math/rand"
	"sync"
	"time"

	perlin "github.com/aquilax/go-perlin"
	"github.com/go-gl/mathgl/mgl32"
)

// ColorSource assigns a vertex color. Colors are cosmetic; generators only
// require that every channel stays within [0,1].
type ColorSource interface {
	Color(index int, position mgl32.Vec3) mgl32.Vec3
}

// ColorFunc adapts a plain function to ColorSource.
type ColorFunc func(index int, position mgl32.Vec3) mgl32.Vec3

func (f ColorFunc) Color(index int, position mgl32.Vec3) mgl32.Vec3 {
	return f(index, position)
}

type randomColors struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func (r *randomColors) Color(int, mgl32.Vec3) mgl32.Vec3 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return mgl32.Vec3{r.rng.Float32(), r.rng.Float32(), r.rng.Float32()}
}

// RandomColors returns uniformly random colors from a seeded generator.
func RandomColors(seed int64) ColorSource {
	return &randomColors{rng: rand.New(rand.NewSource(seed))}
}

var defaultColors = RandomColors(time.Now().UnixNano())

// SolidColor paints every vertex with c, clamped to [0,1].
func SolidColor(c mgl32.Vec3) ColorSource {
	c = clampColor(c)
	return ColorFunc(func(int, mgl32.Vec3) mgl32.Vec3 { return c })
}

type noiseColors struct {
	noise     *perlin.Perlin
	frequency float64
}

// Offsets decorrelate the three channels sampled from the same noise field.
var noiseChannelOffsets = [3]float64{0, 17.3, 41.9}

func (n *noiseColors) Color(_ int, p mgl32.Vec3) mgl32.Vec3 {
	var c mgl32.Vec3
	x, y, z := float64(p[0])*n.frequency, float64(p[1])*n.frequency, float64(p[2])*n.frequency
	for ch, off := range noiseChannelOffsets {
		c[ch] = float32(0.5 + 0.5*n.noise.Noise3D(x+off, y+off, z+off))
	}
	return clampColor(c)
}

// NoiseColors tints vertices with smooth Perlin noise sampled at their position.
// frequency scales positions before sampling; values <= 0 use 0.35.
func NoiseColors(seed int64, frequency float64) ColorSource {
	if frequency <= 0 {
		frequency = 0.35
	}
	return &noiseColors{
		noise:     perlin.NewPerlin(2, 2, 3, seed),
		frequency: frequency,
	}
}

func clampColor(c mgl32.Vec3) mgl32.Vec3 {
	for i := range c {
		c[i] = mgl32.Clamp(c[i], 0, 1)
	}
	return c
}

// Option customises a generator call.
type Option func(*options)

type options struct {
	colors ColorSource
}

// WithColors selects the color source used for the generated vertices.
func WithColors(src ColorSource) Option {
	return func(o *options) {
		if src != nil {
			o.colors = src
		}
	}
}

func applyOptions(opts []Option) options {
	o := options{colors: defaultColors}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
