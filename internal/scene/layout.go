package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Column is a vertical run of unit segments drawn at Scale, one per y in
// [Bottom, Top], positioned in scaled space.
type Column struct {
	X, Z   float32
	Bottom int
	Top    int
}

func (c Column) Segments() int {
	if c.Top < c.Bottom {
		return 0
	}
	return c.Top - c.Bottom + 1
}

// Layout describes the staircase scene. Positions are in the scaled space of
// each group, matching how the groups are placed in the world.
type Layout struct {
	// Stairs: StairColumns rows of StairSteps unit cubes, step k at (-k, k, z).
	StairColumns int
	StairSteps   int

	Banister      Column
	BanisterScale float32
	// Banister segments in [CylindersFrom, CylindersTo] are drawn as cylinders.
	BanisterCylindersFrom int
	BanisterCylindersTo   int

	Railing      Column
	RailingScale float32
	RailingTilt  float32

	Posts     []Column
	PostScale float32
	// PostBaseCubes cube segments start each post, then a knob sphere, then the cylinder shaft.
	PostBaseCubes int
	KnobScale     float32

	Ornament      mgl32.Vec3
	OrnamentScale float32

	Floor mgl32.Vec3
	Wall  mgl32.Vec3
}

// DefaultLayout is the staircase with banister, railing and a run of ten posts.
func DefaultLayout() Layout {
	posts := make([]Column, 0, 10)
	bottoms := []int{5, 9, 13, 18, 23, 28, 33, 38, 43, 48}
	tops := []int{22, 26, 31, 36, 41, 46, 51, 56, 61, 66}
	for k := range bottoms {
		posts = append(posts, Column{X: float32(-2 - 5*k), Z: 24, Bottom: bottoms[k], Top: tops[k]})
	}

	return Layout{
		StairColumns: 3,
		StairSteps:   6,

		Banister:              Column{X: 1, Z: 8, Bottom: 0, Top: 7},
		BanisterScale:         0.3,
		BanisterCylindersFrom: 3,
		BanisterCylindersTo:   5,

		Railing:      Column{X: 7, Z: 12, Bottom: 6, Top: 41},
		RailingScale: 0.2,
		RailingTilt:  45,

		Posts:         posts,
		PostScale:     0.1,
		PostBaseCubes: 2,
		KnobScale:     0.5,

		Ornament:      mgl32.Vec3{0.3, 2.35, 2.4},
		OrnamentScale: 0.1,

		// The floor grid runs one unit further on its negative side; these
		// offsets line it up under the stairs.
		Floor: mgl32.Vec3{-3.5, -0.5001, 4.5},
		Wall:  mgl32.Vec3{-3.5, 3.5, -0.5001},
	}
}

var zAxis = mgl32.Vec3{0, 0, 1}
var xAxis = mgl32.Vec3{1, 0, 0}

// Instances expands the layout into draw calls.
func (l Layout) Instances() []Instance {
	var out []Instance

	for z := 0; z < l.StairColumns; z++ {
		for k := l.StairSteps - 1; k >= 0; k-- {
			out = append(out, Instance{
				Name:      fmt.Sprintf("stair-%d-%d", z, k),
				Mesh:      Cube,
				Transform: Transform{Translate(float32(-k), float32(k), float32(z))},
				Textured:  true,
			})
		}
	}

	for i := 0; i < l.Banister.Segments(); i++ {
		mesh := Cube
		if i >= l.BanisterCylindersFrom && i <= l.BanisterCylindersTo {
			mesh = Cylinder
		}
		out = append(out, Instance{
			Name: fmt.Sprintf("banister-%d", i),
			Mesh: mesh,
			Transform: Transform{
				Scale(l.BanisterScale),
				Translate(l.Banister.X, float32(l.Banister.Bottom+i), l.Banister.Z),
			},
		})
	}

	for i := 0; i < l.Railing.Segments(); i++ {
		out = append(out, Instance{
			Name: fmt.Sprintf("railing-%d", i),
			Mesh: Cube,
			Transform: Transform{
				Rotate(l.RailingTilt, zAxis),
				Scale(l.RailingScale),
				Translate(l.Railing.X, float32(l.Railing.Bottom+i), l.Railing.Z),
			},
		})
	}

	for p, post := range l.Posts {
		for i := 0; i < post.Segments(); i++ {
			t := Transform{
				Scale(l.PostScale),
				Translate(post.X, float32(post.Bottom+i), post.Z),
			}
			mesh := Cylinder
			switch {
			case i < l.PostBaseCubes:
				mesh = Cube
			case i == l.PostBaseCubes:
				mesh = Sphere
				t = append(t, Scale(l.KnobScale))
			}
			out = append(out, Instance{
				Name:      fmt.Sprintf("post-%d-%d", p, i),
				Mesh:      mesh,
				Transform: t,
			})
		}
	}

	out = append(out,
		Instance{
			Name:      "ornament",
			Mesh:      Sphere,
			Transform: Transform{TranslateVec(l.Ornament), Scale(l.OrnamentScale)},
		},
		Instance{
			Name:      "floor",
			Mesh:      Plane,
			Transform: Transform{TranslateVec(l.Floor)},
			Textured:  true,
		},
		Instance{
			Name:      "wall",
			Mesh:      Plane,
			Transform: Transform{TranslateVec(l.Wall), Rotate(90, xAxis)},
			Textured:  true,
		},
	)
	return out
}
