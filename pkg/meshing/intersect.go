package meshing

import "github.com/go-gl/mathgl/mgl64"

// planePointIntersect solves for the single point shared by three planes
// via Cramer's rule. Returns ok=false when the planes' normals are
// linearly dependent (det == 0), meaning no unique intersection exists.
func planePointIntersect(p1, p2, p3 Plane) (point mgl64.Vec3, ok bool) {
	n1, n2, n3 := p1.Normal, p2.Normal, p3.Normal

	mat := mgl64.Mat3FromCols(n1, n2, n3)
	det := mat.Det()
	if det == 0 {
		return mgl64.Vec3{}, false
	}

	v1 := n2.Cross(n3).Mul(p1.Origin.Dot(n1))
	v2 := n3.Cross(n1).Mul(p2.Origin.Dot(n2))
	v3 := n1.Cross(n2).Mul(p3.Origin.Dot(n3))

	sum := v1.Add(v2).Add(v3)
	return sum.Mul(1 / det), true
}
