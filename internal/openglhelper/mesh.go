package openglhelper

import (
	"github.com/go-gl/gl/v4.6-core/gl"
)

// Mesh represents a 3D mesh with vertices and indices
type Mesh struct {
	vao      *VertexArrayObject
	vbo      *BufferObject
	ebo      *BufferObject
	indices  []uint32
	vertices []float32
	shader   *Shader
}

// NewMesh creates a new mesh from an interleaved position/normal/uv vertex
// buffer (8 floats per vertex) and a triangle index buffer.
func NewMesh(vertices []float32, indices []uint32, shader *Shader) *Mesh {
	vao := NewVAO()
	vao.Bind()

	vbo := NewVBO(vertices, StaticDraw)
	ebo := NewEBO(indices, StaticDraw)

	// Position attribute (3 floats)
	vao.SetVertexAttribPointer(0, 3, gl.FLOAT, false, 8*4, 0)
	// Normal attribute (3 floats)
	vao.SetVertexAttribPointer(1, 3, gl.FLOAT, false, 8*4, 3*4)
	// Texture coordinates attribute (2 floats)
	vao.SetVertexAttribPointer(2, 2, gl.FLOAT, false, 8*4, 6*4)

	vao.Unbind()

	return &Mesh{
		vao:      vao,
		vbo:      vbo,
		ebo:      ebo,
		indices:  indices,
		vertices: vertices,
		shader:   shader,
	}
}

// Geometry is the minimal shape FromGeometry needs from a meshing result:
// parallel position/normal/uv arrays plus a triangle index buffer.
type Geometry interface {
	GLPositions() [][3]float32
	GLNormals() [][3]float32
	GLUVs() [][2]float32
	GLIndices() []uint32
}

// FromGeometry uploads a brush or entity mesh produced by pkg/meshing to the
// GPU, interleaving its parallel attribute arrays into the layout NewMesh
// expects.
func FromGeometry(geo Geometry, shader *Shader) *Mesh {
	positions := geo.GLPositions()
	normals := geo.GLNormals()
	uvs := geo.GLUVs()

	vertices := make([]float32, 0, len(positions)*8)
	for i := range positions {
		vertices = append(vertices,
			positions[i][0], positions[i][1], positions[i][2],
			normals[i][0], normals[i][1], normals[i][2],
			uvs[i][0], uvs[i][1],
		)
	}

	return NewMesh(vertices, geo.GLIndices(), shader)
}

// Draw renders the mesh
func (m *Mesh) Draw() {
	m.shader.Use()
	m.vao.Bind()
	gl.DrawElements(gl.TRIANGLES, int32(len(m.indices)), gl.UNSIGNED_INT, nil)
	m.vao.Unbind()
}

// Delete releases all resources
func (m *Mesh) Delete() {
	m.vao.Delete()
	m.vbo.Delete()
	m.ebo.Delete()
}

// SetShader sets the shader for the mesh
func (m *Mesh) SetShader(shader *Shader) {
	m.shader = shader
}
