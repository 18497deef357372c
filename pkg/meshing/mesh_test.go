package meshing

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brushkit/valvemap/pkg/mapfile"
)

const eps = 1e-6

// An axis-aligned cube should yield 24 vertices (4 per face), 36 indices
// (12 triangles), and a normal set matching +/-X/+/-Y/+/-Z.
func TestMeshFromBrush_AxisAlignedCube(t *testing.T) {
	brush := cubeBrush(16)
	mesh, err := MeshFromBrush(brush)
	require.NoError(t, err)

	assert.Len(t, mesh.Positions, 24)
	assert.Len(t, mesh.Normals, 24)
	assert.Len(t, mesh.UVs, 24)
	assert.Len(t, mesh.Indices, 36)
	assert.Equal(t, 0, len(mesh.Indices)%3)

	for _, idx := range mesh.Indices {
		assert.Less(t, int(idx), len(mesh.Positions))
	}

	wantNormals := map[[3]float32]bool{
		{1, 0, 0}: false, {-1, 0, 0}: false,
		{0, 1, 0}: false, {0, -1, 0}: false,
		{0, 0, 1}: false, {0, 0, -1}: false,
	}
	for _, n := range mesh.Normals {
		for want := range wantNormals {
			if closeF32(n, want) {
				wantNormals[want] = true
			}
		}
	}
	for n, found := range wantNormals {
		assert.True(t, found, "normal %v not present", n)
	}
}

func closeF32(a, b [3]float32) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) > 1e-4 {
			return false
		}
	}
	return true
}

// For a cube (E=12 edges), total vertex count across all faces is
// 2*E = 24: each edge contributes one vertex to each of its two
// adjacent faces.
func TestMeshFromBrush_VertexCountMatchesTwicePerEdge(t *testing.T) {
	brush := cubeBrush(16)
	mesh, err := MeshFromBrush(brush)
	require.NoError(t, err)
	assert.Equal(t, 2*12, len(mesh.Positions))
}

// Invariant 2 — every emitted vertex lies inside-or-on every plane of its
// brush.
func TestCubeVerticesSatisfyAllHalfSpaces(t *testing.T) {
	brush := cubeBrush(16)
	planes := make([]Plane, len(brush.Faces))
	for i, f := range brush.Faces {
		p, err := PlaneFromTriangle(f.Triangle)
		require.NoError(t, err)
		planes[i] = p
	}

	mesh, err := MeshFromBrush(brush)
	require.NoError(t, err)

	for _, pos := range mesh.Positions {
		point := mgl64.Vec3{float64(pos[0]), float64(pos[1]), float64(pos[2])}
		for _, p := range planes {
			dist := p.Normal.Dot(point.Sub(p.Origin))
			assert.LessOrEqual(t, dist, eps)
		}
	}
}

// Invariant 4 — each emitted triangle's geometric normal agrees in
// hemisphere with its face's outward normal.
func TestCubeTriangleWinding(t *testing.T) {
	brush := cubeBrush(16)
	mesh, err := MeshFromBrush(brush)
	require.NoError(t, err)

	for i := 0; i < len(mesh.Indices); i += 3 {
		ia, ib, ic := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		a := toVec64(mesh.Positions[ia])
		b := toVec64(mesh.Positions[ib])
		c := toVec64(mesh.Positions[ic])
		geomNormal := b.Sub(a).Cross(c.Sub(a))
		faceNormal := toVec64(mesh.Normals[ia])
		assert.Greater(t, geomNormal.Dot(faceNormal), 0.0)
	}
}

func toVec64(v [3]float32) mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

func TestMeshFromEntity_NoBrushesReturnsErrNoGeometry(t *testing.T) {
	_, err := MeshFromEntity(mapfile.Entity{})
	require.ErrorIs(t, err, ErrNoGeometry)
}

func TestMeshFromBrush_DegenerateFacePropagatesError(t *testing.T) {
	brush := cubeBrush(16)
	brush.Faces[0].Triangle = [3]mgl64.Vec3{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	_, err := MeshFromBrush(brush)
	require.ErrorIs(t, err, ErrDegeneratePlane)
}

func TestPolyAddVert_ProjectsUVFromAxisAndScale(t *testing.T) {
	face := mapfile.Face{
		AxisU:  mgl64.Vec3{1, 0, 0},
		AxisV:  mgl64.Vec3{0, 1, 0},
		Scale:  mgl64.Vec2{1, 1},
		Offset: mgl64.Vec2{0, 0},
	}
	p := poly{normal: mgl64.Vec3{0, 0, 1}}
	p.addVert(mgl64.Vec3{64, 128, 7}, face)
	require.Len(t, p.verts, 1)
	assert.InDelta(t, 1.0, p.verts[0].UV.X(), eps)
	assert.InDelta(t, 2.0, p.verts[0].UV.Y(), eps)
}

// Invariant 5 — merging is associative.
func TestMergeAssociative(t *testing.T) {
	a := Mesh{
		Positions: [][3]float32{{0, 0, 0}, {1, 0, 0}},
		Normals:   [][3]float32{{0, 0, 1}, {0, 0, 1}},
		UVs:       [][2]float32{{0, 0}, {1, 0}},
		Indices:   []uint32{0, 1, 0},
	}
	b := Mesh{
		Positions: [][3]float32{{2, 0, 0}},
		Normals:   [][3]float32{{0, 0, 1}},
		UVs:       [][2]float32{{2, 0}},
		Indices:   []uint32{0, 0, 0},
	}
	c := Mesh{
		Positions: [][3]float32{{3, 0, 0}, {4, 0, 0}},
		Normals:   [][3]float32{{0, 0, 1}, {0, 0, 1}},
		UVs:       [][2]float32{{3, 0}, {4, 0}},
		Indices:   []uint32{1, 0, 1},
	}

	left := Merge(Merge(a, b), c)
	right := Merge(a, Merge(b, c))
	assert.Equal(t, left, right)

	flattened := Merge(a, b, c)
	assert.Equal(t, left, flattened)
}

func TestMeshFromEntityMergesBrushesInOrder(t *testing.T) {
	e := mapfile.Entity{Brushes: []mapfile.Brush{cubeBrush(16), cubeBrush(8)}}
	mesh, err := MeshFromEntity(e)
	require.NoError(t, err)
	assert.Len(t, mesh.Positions, 48)
	assert.Len(t, mesh.Indices, 72)

	// The 16-unit cube's vertices come first, then the 8-unit cube's.
	for i, p := range mesh.Positions {
		want := 16.0
		if i >= 24 {
			want = 8.0
		}
		for _, c := range p {
			assert.InDelta(t, want, math.Abs(float64(c)), eps)
		}
	}
}

func TestMeshFromEntityConcurrentMatchesSequential(t *testing.T) {
	e := mapfile.Entity{Brushes: []mapfile.Brush{cubeBrush(16), cubeBrush(8), cubeBrush(4)}}

	sequential, err := MeshFromEntity(e)
	require.NoError(t, err)

	concurrent, err := MeshFromEntityConcurrent(e)
	require.NoError(t, err)

	assert.Equal(t, sequential, concurrent)
}

func TestMeshFromBrushGrouped(t *testing.T) {
	brush := cubeBrush(16)
	grouped, err := MeshFromBrushGrouped(brush)
	require.NoError(t, err)

	require.Len(t, grouped.Groups, 6)
	total := 0
	for _, g := range grouped.Groups {
		assert.Equal(t, 1, g.FaceCount)
		assert.Len(t, g.Mesh.Positions, 4)
		total += len(g.Mesh.Positions)
	}
	assert.Equal(t, 24, total)
}
