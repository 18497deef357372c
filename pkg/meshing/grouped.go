package meshing

import (
	"fmt"

	"github.com/brushkit/valvemap/pkg/mapfile"
)

// TextureGroup is one texture's contribution to a GroupedMesh: the
// sub-mesh covering only the faces that share TextureName, plus how many
// of the brush's faces contributed to it.
type TextureGroup struct {
	TextureName string
	Mesh        Mesh
	FaceCount   int
}

// GroupedMesh partitions a brush's faces by texture name. The Mesh layout
// (parallel arrays + index buffer) is already compatible with sub-range
// rendering; GroupedMesh makes the partition explicit instead of requiring
// callers to re-derive it from texture names on the merged mesh.
type GroupedMesh struct {
	Groups []TextureGroup
}

// MeshFromBrushGrouped runs the same plane/vertex/ordering/UV pipeline as
// MeshFromBrush but merges per-face meshes within each texture group
// instead of across the whole brush. It is additive: MeshFromBrush
// remains the default brush-to-mesh entry point.
func MeshFromBrushGrouped(b mapfile.Brush) (GroupedMesh, error) {
	planes := make([]Plane, len(b.Faces))
	for i, f := range b.Faces {
		p, err := PlaneFromTriangle(f.Triangle)
		if err != nil {
			return GroupedMesh{}, fmt.Errorf("%w: face %d", err, i)
		}
		planes[i] = p
	}

	polys := make([]poly, len(planes))
	for i, p := range planes {
		polys[i] = poly{normal: p.Normal, texture: b.Faces[i].TextureName}
	}

	n := len(planes)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				point, ok := planePointIntersect(planes[i], planes[j], planes[k])
				if !ok {
					continue
				}

				inside := true
				for _, p := range planes {
					if p.Normal.Dot(point.Sub(p.Origin)) > 0 {
						inside = false
						break
					}
				}
				if !inside {
					continue
				}

				polys[i].addVert(point, b.Faces[i])
				polys[j].addVert(point, b.Faces[j])
				polys[k].addVert(point, b.Faces[k])
			}
		}
	}

	order := make([]string, 0)
	byTexture := make(map[string][]Mesh)
	faceCounts := make(map[string]int)
	for i := range polys {
		m, err := polys[i].triangulate()
		if err != nil {
			return GroupedMesh{}, fmt.Errorf("%w: face %d", err, i)
		}
		tex := polys[i].texture
		if _, ok := byTexture[tex]; !ok {
			order = append(order, tex)
		}
		byTexture[tex] = append(byTexture[tex], m)
		faceCounts[tex]++
	}

	groups := make([]TextureGroup, 0, len(order))
	for _, tex := range order {
		groups = append(groups, TextureGroup{
			TextureName: tex,
			Mesh:        Merge(byTexture[tex]...),
			FaceCount:   faceCounts[tex],
		})
	}

	return GroupedMesh{Groups: groups}, nil
}
