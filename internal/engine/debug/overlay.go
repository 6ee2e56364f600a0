package debug

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/roomwalk/internal/engine/shader"
	"github.com/Faultbox/roomwalk/internal/logger"
	"github.com/Faultbox/roomwalk/pkg/math"
)

// Overlay draws static box wireframes over the scene.
type Overlay struct {
	vao   uint32
	vbo   uint32
	spans []span
}

// NewOverlay uploads the wireframes of all groups.
func NewOverlay(groups ...BoxGroup) *Overlay {
	verts, spans := buildLines(groups)
	o := &Overlay{spans: spans}
	if len(verts) == 0 {
		return o
	}

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)

	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, unsafe.Pointer(&verts[0]), gl.STATIC_DRAW)

	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)

	for _, s := range spans {
		logger.Debug("debug overlay group",
			zap.String("name", s.name),
			zap.Int32("boxes", s.count/BoxVertexCount),
		)
	}
	return o
}

// Draw renders every group with p, which must take an MVP matrix and a
// colour. The boxes are already in world space.
func (o *Overlay) Draw(p *shader.Program, viewProjection math.Mat4) {
	if o.vao == 0 {
		return
	}
	p.Use()
	p.SetMat4("MVP", viewProjection)

	gl.BindVertexArray(o.vao)
	for _, s := range o.spans {
		if s.count == 0 {
			continue
		}
		p.SetVec3("colour", s.colour)
		gl.DrawArrays(gl.LINES, s.first, s.count)
	}
	gl.BindVertexArray(0)
}

// Delete releases the GPU buffers.
func (o *Overlay) Delete() {
	if o.vao != 0 {
		gl.DeleteVertexArrays(1, &o.vao)
		o.vao = 0
	}
	if o.vbo != 0 {
		gl.DeleteBuffers(1, &o.vbo)
		o.vbo = 0
	}
}
