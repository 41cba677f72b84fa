package shapes

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

const DefaultCubeSize = 1.0

// cubeFace is a face normal with an in-plane basis; u×v == normal, so the quad
// c-u-v, c+u-v, c+u+v, c-u+v winds counter-clockwise seen from outside.
type cubeFace struct {
	normal, u, v mgl32.Vec3
}

var cubeFaces = [6]cubeFace{
	{normal: mgl32.Vec3{1, 0, 0}, u: mgl32.Vec3{0, 0, -1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{-1, 0, 0}, u: mgl32.Vec3{0, 0, 1}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, -1}},
	{normal: mgl32.Vec3{0, -1, 0}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 0, 1}},
	{normal: mgl32.Vec3{0, 0, 1}, u: mgl32.Vec3{1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
	{normal: mgl32.Vec3{0, 0, -1}, u: mgl32.Vec3{-1, 0, 0}, v: mgl32.Vec3{0, 1, 0}},
}

// MakeCube builds an axis aligned cube of edge length size centred on the origin.
// Each face has its own four vertices so normals stay flat.
func MakeCube(size float32, opts ...Option) (*GeometryBuffer, error) {
	if !(size > 0) {
		err := fmt.Errorf("%w: cube size must be positive, got %v", ErrInvalidDimensions, size)
		logRejected("cube", 0, err)
		return nil, err
	}
	o := applyOptions(opts)

	verts, err := allocate[Vertex](len(cubeFaces) * 4)
	if err != nil {
		return nil, err
	}
	indices, err := allocate[uint16](len(cubeFaces) * 6)
	if err != nil {
		return nil, err
	}

	half := size / 2
	for f, face := range cubeFaces {
		c := face.normal.Mul(half)
		u := face.u.Mul(half)
		v := face.v.Mul(half)
		corners := [4]mgl32.Vec3{
			c.Sub(u).Sub(v),
			c.Add(u).Sub(v),
			c.Add(u).Add(v),
			c.Sub(u).Add(v),
		}
		base := f * 4
		for k, pos := range corners {
			verts[base+k] = Vertex{
				Position: pos,
				Normal:   face.normal,
				Color:    clampColor(o.colors.Color(base+k, pos)),
			}
		}
		b := uint16(base)
		copy(indices[f*6:], []uint16{b, b + 1, b + 2, b, b + 2, b + 3})
	}

	buf := &GeometryBuffer{Vertices: verts, Indices: indices}
	logGenerated("cube", buf)
	return buf, nil
}
