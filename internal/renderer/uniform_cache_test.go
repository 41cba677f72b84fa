package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeUniformCache(known map[string]int32) (*UniformCache, *int) {
	calls := 0
	cache := NewUniformCache(7)
	cache.lookup = func(program uint32, name string) int32 {
		calls++
		if loc, ok := known[name]; ok && program == 7 {
			return loc
		}
		return -1
	}
	return cache, &calls
}

func TestNewUniformCache(t *testing.T) {
	cache := NewUniformCache(0)
	require.NotNil(t, cache)
	assert.NotNil(t, cache.locations)
	assert.NotNil(t, cache.lookup)
}

func TestUniformCacheLooksUpOnce(t *testing.T) {
	cache, calls := fakeUniformCache(map[string]int32{"model": 3})

	assert.Equal(t, int32(3), cache.GetLocation("model"))
	assert.Equal(t, int32(3), cache.GetLocation("model"))
	assert.Equal(t, 1, *calls)

	assert.Equal(t, int32(-1), cache.GetLocation("unused"))
	assert.Equal(t, int32(-1), cache.GetLocation("unused"))
	assert.Equal(t, 2, *calls)
}

func TestUniformCacheClear(t *testing.T) {
	cache, calls := fakeUniformCache(map[string]int32{"view": 1})
	cache.GetLocation("view")

	cache.Clear()
	assert.Empty(t, cache.locations)

	cache.GetLocation("view")
	assert.Equal(t, 2, *calls)
}
