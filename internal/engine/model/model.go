package model

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/roomwalk/internal/engine/shader"
	"github.com/Faultbox/roomwalk/internal/engine/texture"
	"github.com/Faultbox/roomwalk/internal/logger"
	"github.com/Faultbox/roomwalk/pkg/math"
)

// Model is an uploaded mesh with its textures and material.
type Model struct {
	Name     string
	Material Material
	Bounds   math.AABB

	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32

	textures [slotCount]*texture.Texture
}

// Load parses an OBJ file and uploads it.
func Load(path string) (*Model, error) {
	mesh, err := LoadOBJ(path)
	if err != nil {
		return nil, err
	}
	return Upload(path, mesh)
}

// Upload creates GPU buffers for mesh. Attribute locations are 0 position,
// 1 normal, 2 texture coordinate, 3 tangent and 4 bitangent.
func Upload(name string, mesh *Mesh) (*Model, error) {
	if mesh == nil || len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("upload %s: %w", name, ErrEmptyMesh)
	}

	m := &Model{
		Name:       name,
		Bounds:     mesh.Bounds,
		indexCount: int32(len(mesh.Indices)),
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	vertexSize := int(unsafe.Sizeof(Vertex{}))
	gl.BufferData(gl.ARRAY_BUFFER, len(mesh.Vertices)*vertexSize, unsafe.Pointer(&mesh.Vertices[0]), gl.STATIC_DRAW)

	stride := int32(vertexSize)
	// Position
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.Position))
	gl.EnableVertexAttribArray(0)
	// Normal
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.Normal))
	gl.EnableVertexAttribArray(1)
	// TexCoord
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.TexCoord))
	gl.EnableVertexAttribArray(2)
	// Tangent
	gl.VertexAttribPointerWithOffset(3, 3, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.Tangent))
	gl.EnableVertexAttribArray(3)
	// Bitangent
	gl.VertexAttribPointerWithOffset(4, 3, gl.FLOAT, false, stride, unsafe.Offsetof(Vertex{}.Bitangent))
	gl.EnableVertexAttribArray(4)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(mesh.Indices)*4, unsafe.Pointer(&mesh.Indices[0]), gl.STATIC_DRAW)

	gl.BindVertexArray(0)

	logger.Debug("mesh uploaded",
		zap.String("name", name),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
	)
	return m, nil
}

// SetTexture binds tex to slot, replacing (and deleting) any previous one.
func (m *Model) SetTexture(slot Slot, tex *texture.Texture) {
	if slot < 0 || slot >= slotCount {
		return
	}
	if old := m.textures[slot]; old != nil && old != tex {
		old.Delete()
	}
	m.textures[slot] = tex
}

// LoadTexture loads an image file into slot.
func (m *Model) LoadTexture(slot Slot, path string) error {
	tex, err := texture.Load(path)
	if err != nil {
		return fmt.Errorf("%s texture for %s: %w", slot, m.Name, err)
	}
	m.SetTexture(slot, tex)
	return nil
}

// HasTexture reports whether slot is populated.
func (m *Model) HasTexture(slot Slot) bool {
	return slot >= 0 && slot < slotCount && m.textures[slot] != nil
}

// Draw uploads the material, binds the textures to units matching their
// slot and draws the mesh. The program must already be in use.
func (m *Model) Draw(p *shader.Program) {
	p.SetFloat("ka", m.Material.Ka)
	p.SetFloat("kd", m.Material.Kd)
	p.SetFloat("ks", m.Material.Ks)
	p.SetFloat("Ns", m.Material.Ns)

	for slot, tex := range m.textures {
		p.SetInt(slotUniforms[slot], int32(slot))
		if tex != nil {
			tex.Bind(uint32(slot))
		} else {
			gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
			gl.BindTexture(gl.TEXTURE_2D, 0)
		}
	}
	p.SetBool("useNormalMap", m.textures[SlotNormal] != nil)
	p.SetBool("useSpecularMap", m.textures[SlotSpecular] != nil)

	m.DrawGeometry()
}

// DrawGeometry draws the mesh with whatever program and textures are bound.
func (m *Model) DrawGeometry() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers and textures.
func (m *Model) Delete() {
	for i, tex := range m.textures {
		if tex != nil {
			tex.Delete()
			m.textures[i] = nil
		}
	}
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		m.vao = 0
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
		m.vbo = 0
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
		m.ebo = 0
	}
}
