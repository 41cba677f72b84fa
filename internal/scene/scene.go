package scene

import (
	"fmt"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// MeshKind selects one of the generated meshes an instance is drawn with.
type MeshKind int

const (
	Cube MeshKind = iota
	Cylinder
	Sphere
	Plane
)

// MeshKinds lists every kind in upload order.
var MeshKinds = []MeshKind{Cube, Cylinder, Sphere, Plane}

var meshKindNames = map[MeshKind]string{
	Cube:     "cube",
	Cylinder: "cylinder",
	Sphere:   "sphere",
	Plane:    "plane",
}

func (k MeshKind) String() string {
	if name, ok := meshKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("MeshKind(%d)", int(k))
}

// ParseMeshKind maps a name such as "sphere" back to its kind.
func ParseMeshKind(name string) (MeshKind, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for kind, n := range meshKindNames {
		if n == name {
			return kind, nil
		}
	}
	return 0, fmt.Errorf("unknown mesh kind %q", name)
}

type stepOp int

const (
	opTranslate stepOp = iota
	opScale
	opRotate
)

// Step is one matrix operation of a Transform.
type Step struct {
	op      stepOp
	vec     mgl32.Vec3
	degrees float32
}

func Translate(x, y, z float32) Step {
	return Step{op: opTranslate, vec: mgl32.Vec3{x, y, z}}
}

func TranslateVec(v mgl32.Vec3) Step {
	return Step{op: opTranslate, vec: v}
}

// Scale scales uniformly.
func Scale(s float32) Step {
	return Step{op: opScale, vec: mgl32.Vec3{s, s, s}}
}

// Rotate rotates by degrees around axis.
func Rotate(degrees float32, axis mgl32.Vec3) Step {
	return Step{op: opRotate, vec: axis, degrees: degrees}
}

func (s Step) matrix() mgl32.Mat4 {
	switch s.op {
	case opTranslate:
		return mgl32.Translate3D(s.vec[0], s.vec[1], s.vec[2])
	case opScale:
		return mgl32.Scale3D(s.vec[0], s.vec[1], s.vec[2])
	case opRotate:
		if s.vec.Len() == 0 {
			return mgl32.Ident4()
		}
		return mgl32.HomogRotate3D(mgl32.DegToRad(s.degrees), s.vec.Normalize())
	}
	return mgl32.Ident4()
}

// Transform is a model matrix built by post-multiplying its steps in order,
// so the last step is applied to the mesh first. Transform{Scale(0.3),
// Translate(1, 0, 8)} therefore translates in scaled space.
type Transform []Step

func (t Transform) Matrix() mgl32.Mat4 {
	m := mgl32.Ident4()
	for _, step := range t {
		m = m.Mul4(step.matrix())
	}
	return m
}

// Instance is one draw of a generated mesh.
type Instance struct {
	Name      string
	Mesh      MeshKind
	Transform Transform
	// Textured instances sample the diffuse texture on top of their vertex colors.
	Textured bool
}

func (i Instance) Model() mgl32.Mat4 {
	return i.Transform.Matrix()
}

// CountByMesh tallies instances per mesh kind.
func CountByMesh(instances []Instance) map[MeshKind]int {
	counts := make(map[MeshKind]int, len(MeshKinds))
	for _, inst := range instances {
		counts[inst.Mesh]++
	}
	return counts
}
