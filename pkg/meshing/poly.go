package meshing

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/brushkit/valvemap/pkg/mapfile"
)

// texelUnit is the texture-space divisor: one map unit per texel at scale
// 1, with 64-texel textures.
const texelUnit = 64.0

// dedupTolerance is the map-unit tolerance used to collapse geometrically
// coincident triple-plane intersections before ordering. Four or more
// planes meeting at a corner otherwise yield duplicate points across
// different unordered triples.
const dedupTolerance = 1e-3

// Vert is a single mesh vertex: world position, face normal, and
// projected texture coordinate.
type Vert struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
	UV       mgl64.Vec2
}

// poly accumulates one face's unordered vertex set during brush
// construction.
type poly struct {
	normal  mgl64.Vec3
	texture string
	verts   []Vert
	seen    map[quantizedKey]struct{}
}

type quantizedKey struct {
	x, y, z int64
}

func quantize(p mgl64.Vec3) quantizedKey {
	scale := 1.0 / dedupTolerance
	return quantizedKey{
		x: int64(math.Round(p.X() * scale)),
		y: int64(math.Round(p.Y() * scale)),
		z: int64(math.Round(p.Z() * scale)),
	}
}

// addVert projects position into the face's UV space and appends it,
// skipping positions that round to the same dedupTolerance grid cell as
// one already added.
func (p *poly) addVert(position mgl64.Vec3, face mapfile.Face) {
	if p.seen == nil {
		p.seen = make(map[quantizedKey]struct{})
	}
	key := quantize(position)
	if _, dup := p.seen[key]; dup {
		return
	}
	p.seen[key] = struct{}{}

	axisU := face.AxisU.Mul(1 / face.Scale.X())
	axisV := face.AxisV.Mul(1 / face.Scale.Y())

	u := position.Dot(axisU) + face.Offset.X()
	v := position.Dot(axisV) + face.Offset.Y()

	p.verts = append(p.verts, Vert{
		Position: position,
		Normal:   p.normal,
		UV:       mgl64.Vec2{u / texelUnit, v / texelUnit},
	})
}

// orderedVerts sorts the accumulated vertices into a consistent cyclic
// order via an in-place partial selection sort: each step picks, among
// the remaining vertices on the forward side of the running tangent, the
// one closest in angle to the current vertex.
func (p *poly) orderedVerts() ([]Vert, error) {
	if len(p.verts) < 3 {
		return nil, fmt.Errorf("%w: %d accumulated vertices", ErrInsufficientVertices, len(p.verts))
	}

	var center mgl64.Vec3
	for _, v := range p.verts {
		center = center.Add(v.Position)
	}
	center = center.Mul(1 / float64(len(p.verts)))

	ordered := make([]Vert, len(p.verts))
	copy(ordered, p.verts)

	for n := 0; n < len(ordered)-2; n++ {
		a := ordered[n].Position.Sub(center).Normalize()
		tangent := p.normal.Cross(a)

		smallestAngle := -1.0
		smallest := -1

		for m := n + 1; m < len(ordered); m++ {
			b := ordered[m].Position.Sub(center).Normalize()
			if tangent.Dot(b) > 0 {
				angle := a.Dot(b)
				if angle > smallestAngle {
					smallestAngle = angle
					smallest = m
				}
			}
		}

		if smallest == -1 {
			return nil, fmt.Errorf("%w: no forward vertex found while ordering", ErrInsufficientVertices)
		}
		ordered[n+1], ordered[smallest] = ordered[smallest], ordered[n+1]
	}

	return ordered, nil
}

// triangulate fan-triangulates the face's ordered polygon, anchored at
// vertex 0.
func (p *poly) triangulate() (Mesh, error) {
	ordered, err := p.orderedVerts()
	if err != nil {
		return Mesh{}, err
	}

	positions := make([][3]float32, len(ordered))
	normals := make([][3]float32, len(ordered))
	uvs := make([][2]float32, len(ordered))
	for i, v := range ordered {
		positions[i] = [3]float32{float32(v.Position.X()), float32(v.Position.Y()), float32(v.Position.Z())}
		normals[i] = [3]float32{float32(v.Normal.X()), float32(v.Normal.Y()), float32(v.Normal.Z())}
		uvs[i] = [2]float32{float32(v.UV.X()), float32(v.UV.Y())}
	}

	var indices []uint32
	for i := 2; i < len(ordered); i++ {
		indices = append(indices, 0, uint32(i-1), uint32(i))
	}

	return Mesh{
		Positions: positions,
		Normals:   normals,
		UVs:       uvs,
		Indices:   indices,
	}, nil
}
