package meshing

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/brushkit/valvemap/pkg/mapfile"
)

// Mesh is the pipeline's output: parallel position/normal/uv arrays and a
// triangle index buffer. len(Positions) == len(Normals) == len(UVs);
// len(Indices) is a multiple of three; every index is < len(Positions).
type Mesh struct {
	Positions [][3]float32
	Normals   [][3]float32
	UVs       [][2]float32
	Indices   []uint32
}

// GLPositions, GLNormals, GLUVs, and GLIndices satisfy
// internal/openglhelper.Geometry, letting a Mesh be uploaded to the GPU
// without pkg/meshing importing any rendering package.
func (m Mesh) GLPositions() [][3]float32 { return m.Positions }
func (m Mesh) GLNormals() [][3]float32   { return m.Normals }
func (m Mesh) GLUVs() [][2]float32       { return m.UVs }
func (m Mesh) GLIndices() []uint32       { return m.Indices }

// Merge concatenates meshes in order, offsetting each mesh's indices by
// the running position count. Merge is associative:
// Merge(a, Merge(b, c)) == Merge(Merge(a, b), c) after concatenation.
func Merge(meshes ...Mesh) Mesh {
	var out Mesh
	for _, m := range meshes {
		offset := uint32(len(out.Positions))
		out.Positions = append(out.Positions, m.Positions...)
		out.Normals = append(out.Normals, m.Normals...)
		out.UVs = append(out.UVs, m.UVs...)
		for _, idx := range m.Indices {
			out.Indices = append(out.Indices, idx+offset)
		}
	}
	return out
}

// MeshFromBrush derives each face's plane, generates vertices via
// triple-plane intersection and half-space clipping, orders each face's
// polygon, projects UVs, triangulates, and merges the per-face meshes.
func MeshFromBrush(b mapfile.Brush) (Mesh, error) {
	planes := make([]Plane, len(b.Faces))
	for i, f := range b.Faces {
		p, err := PlaneFromTriangle(f.Triangle)
		if err != nil {
			return Mesh{}, fmt.Errorf("%w: face %d", err, i)
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

	faceMeshes := make([]Mesh, 0, len(polys))
	for i := range polys {
		m, err := polys[i].triangulate()
		if err != nil {
			return Mesh{}, fmt.Errorf("%w: face %d", err, i)
		}
		faceMeshes = append(faceMeshes, m)
	}

	return Merge(faceMeshes...), nil
}

// MeshFromEntity maps MeshFromBrush over e's brushes and merges the
// result. Returns ErrNoGeometry if e has no brushes. One bad brush fails
// the whole entity; there is no partial-result recovery.
func MeshFromEntity(e mapfile.Entity) (Mesh, error) {
	if len(e.Brushes) == 0 {
		return Mesh{}, ErrNoGeometry
	}

	meshes := make([]Mesh, len(e.Brushes))
	for i, b := range e.Brushes {
		m, err := MeshFromBrush(b)
		if err != nil {
			return Mesh{}, fmt.Errorf("%w: brush %d", err, i)
		}
		meshes[i] = m
	}

	return Merge(meshes...), nil
}

// MeshFromEntityConcurrent is a fan-out variant of MeshFromEntity:
// per-brush mesh generation is mutation-free after parse, so brushes are
// processed across a bounded worker pool and collected in input order
// before merging. Output is identical to MeshFromEntity for the same
// input.
func MeshFromEntityConcurrent(e mapfile.Entity) (Mesh, error) {
	if len(e.Brushes) == 0 {
		return Mesh{}, ErrNoGeometry
	}

	results := make([]Mesh, len(e.Brushes))
	errs := make([]error, len(e.Brushes))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(e.Brushes) {
		workers = len(e.Brushes)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				m, err := MeshFromBrush(e.Brushes[i])
				results[i] = m
				errs[i] = err
			}
		}()
	}
	for i := range e.Brushes {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return Mesh{}, fmt.Errorf("%w: brush %d", err, i)
		}
	}

	return Merge(results...), nil
}
