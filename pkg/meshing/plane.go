package meshing

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// degenerateEpsilon bounds the minimum acceptable magnitude of d1 x d2
// before a triangle is rejected as collinear or duplicate-pointed.
const degenerateEpsilon = 1e-9

// Plane is a point (Origin) and unit outward Normal dividing space into
// two half-spaces; the brush interior lies in the Normal's negative
// half-space.
type Plane struct {
	Origin mgl64.Vec3
	Normal mgl64.Vec3
}

// PlaneFromTriangle derives the plane a face's three reference points
// define. The orientation rule is load-bearing: normal = normalize(p3-p1)
// x normalize(p2-p1), which points outward from the brush volume given
// the Valve/Quake convention that a face's points are listed clockwise as
// viewed from outside. Flipping this cross order without also flipping
// the half-space test direction in the vertex generator silently inverts
// every normal.
func PlaneFromTriangle(tri [3]mgl64.Vec3) (Plane, error) {
	p1, p2, p3 := tri[0], tri[1], tri[2]

	d1 := p2.Sub(p1)
	d2 := p3.Sub(p1)

	l1, l2 := d1.Len(), d2.Len()
	if l1 < degenerateEpsilon || l2 < degenerateEpsilon {
		return Plane{}, fmt.Errorf("%w: duplicate triangle points", ErrDegeneratePlane)
	}
	d1 = d1.Mul(1 / l1)
	d2 = d2.Mul(1 / l2)

	normal := d2.Cross(d1)
	if normal.Len() < degenerateEpsilon {
		return Plane{}, fmt.Errorf("%w: collinear triangle points", ErrDegeneratePlane)
	}

	return Plane{Origin: p1, Normal: normal.Normalize()}, nil
}
