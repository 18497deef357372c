package meshing

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanePointIntersectCubeCorner(t *testing.T) {
	px := Plane{Origin: mgl64.Vec3{16, 0, 0}, Normal: mgl64.Vec3{1, 0, 0}}
	py := Plane{Origin: mgl64.Vec3{0, 16, 0}, Normal: mgl64.Vec3{0, 1, 0}}
	pz := Plane{Origin: mgl64.Vec3{0, 0, 16}, Normal: mgl64.Vec3{0, 0, 1}}

	point, ok := planePointIntersect(px, py, pz)
	require.True(t, ok)
	assert.InDelta(t, 16.0, point.X(), eps)
	assert.InDelta(t, 16.0, point.Y(), eps)
	assert.InDelta(t, 16.0, point.Z(), eps)
}

func TestPlanePointIntersectParallelPlanesFail(t *testing.T) {
	p1 := Plane{Origin: mgl64.Vec3{16, 0, 0}, Normal: mgl64.Vec3{1, 0, 0}}
	p2 := Plane{Origin: mgl64.Vec3{-16, 0, 0}, Normal: mgl64.Vec3{-1, 0, 0}}
	p3 := Plane{Origin: mgl64.Vec3{0, 16, 0}, Normal: mgl64.Vec3{0, 1, 0}}

	_, ok := planePointIntersect(p1, p2, p3)
	assert.False(t, ok)
}
