package meshing

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/brushkit/valvemap/pkg/mapfile"
)

// cubeBrush builds a [-half,half]^3 axis-aligned cube as six faces whose
// derived plane normals are exactly +/-X, +/-Y, +/-Z. Each face's three
// triangle points are chosen so that PlaneFromTriangle's d2 x d1
// orientation rule yields the stated outward normal (d2, d1 chosen so
// (d2, d1, normal) follows the cyclic identity x=y*z, y=z*x, z=x*y;
// negative faces swap d1/d2 to flip the cross sign).
func cubeBrush(half float64) mapfile.Brush {
	x := mgl64.Vec3{1, 0, 0}
	y := mgl64.Vec3{0, 1, 0}
	z := mgl64.Vec3{0, 0, 1}
	edge := 2 * half

	face := func(origin, d1, d2 mgl64.Vec3, texture string) mapfile.Face {
		p1 := origin
		p2 := origin.Add(d1.Mul(edge))
		p3 := origin.Add(d2.Mul(edge))
		return mapfile.Face{
			Triangle:    [3]mgl64.Vec3{p1, p2, p3},
			TextureName: texture,
			AxisU:       mgl64.Vec3{1, 0, 0},
			AxisV:       mgl64.Vec3{0, 1, 0},
			Offset:      mgl64.Vec2{0, 0},
			Scale:       mgl64.Vec2{1, 1},
		}
	}

	h := half
	return mapfile.Brush{
		Faces: []mapfile.Face{
			face(mgl64.Vec3{h, -h, -h}, z, y, "+x"),  // +X
			face(mgl64.Vec3{-h, -h, -h}, y, z, "-x"), // -X
			face(mgl64.Vec3{-h, h, -h}, x, z, "+y"),  // +Y
			face(mgl64.Vec3{-h, -h, -h}, z, x, "-y"), // -Y
			face(mgl64.Vec3{-h, -h, h}, y, x, "+z"),  // +Z
			face(mgl64.Vec3{-h, -h, -h}, x, y, "-z"), // -Z
		},
	}
}
