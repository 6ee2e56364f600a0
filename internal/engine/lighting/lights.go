// Package lighting holds the scene's light sources and uploads them to the
// main shader.
package lighting

import (
	"fmt"

	"github.com/Faultbox/roomwalk/internal/engine/shader"
	"github.com/Faultbox/roomwalk/pkg/math"
)

// MaxLights is the size of the lights uniform array in the main shader.
const MaxLights = 16

// markerScale is the size of the sphere drawn at point and spot lights.
const markerScale = 0.1

// Type distinguishes light sources. Values match the LIGHT_* defines in the
// fragment shader.
type Type int32

const (
	Point       Type = 1
	Spot        Type = 2
	Directional Type = 3
)

func (t Type) String() string {
	switch t {
	case Point:
		return "point"
	case Spot:
		return "spot"
	case Directional:
		return "directional"
	default:
		return fmt.Sprintf("Type(%d)", int32(t))
	}
}

// Light is a single light source in world space.
type Light struct {
	Type      Type
	Colour    math.Vec3
	Position  math.Vec3
	Direction math.Vec3

	// Attenuation 1 / (Constant + Linear*d + Quadratic*d^2); unused for
	// directional lights.
	Constant  float32
	Linear    float32
	Quadratic float32

	// CosPhi is the cosine of the spot cone half-angle.
	CosPhi float32
}

// Drawable is geometry that can be drawn with the currently bound program.
type Drawable interface {
	DrawGeometry()
}

// Lights is an ordered set of at most MaxLights lights.
type Lights struct {
	lights []Light
}

// New creates an empty light set.
func New() *Lights {
	return &Lights{
		lights: make([]Light, 0, MaxLights),
	}
}

// Add appends a light. Returns false if the set is full.
func (l *Lights) Add(light Light) bool {
	if len(l.lights) >= MaxLights {
		return false
	}
	l.lights = append(l.lights, light)
	return true
}

// AddPointLight adds an omnidirectional light.
func (l *Lights) AddPointLight(position, colour math.Vec3, constant, linear, quadratic float32) bool {
	return l.Add(Light{
		Type:      Point,
		Position:  position,
		Colour:    colour,
		Constant:  constant,
		Linear:    linear,
		Quadratic: quadratic,
	})
}

// AddSpotLight adds a cone light pointing along direction.
func (l *Lights) AddSpotLight(position, direction, colour math.Vec3, constant, linear, quadratic, cosPhi float32) bool {
	return l.Add(Light{
		Type:      Spot,
		Position:  position,
		Direction: direction.Normalize(),
		Colour:    colour,
		Constant:  constant,
		Linear:    linear,
		Quadratic: quadratic,
		CosPhi:    cosPhi,
	})
}

// AddDirectionalLight adds a light at infinity shining along direction.
func (l *Lights) AddDirectionalLight(direction, colour math.Vec3) bool {
	return l.Add(Light{
		Type:      Directional,
		Direction: direction.Normalize(),
		Colour:    colour,
	})
}

// Len returns the number of lights.
func (l *Lights) Len() int {
	return len(l.lights)
}

// All returns the lights in insertion order.
func (l *Lights) All() []Light {
	return l.lights
}

// ViewSpace returns the lights with positions and directions transformed by
// view.
func (l *Lights) ViewSpace(view math.Mat4) []Light {
	out := make([]Light, len(l.lights))
	for i, light := range l.lights {
		light.Position = view.TransformPoint(light.Position)
		light.Direction = view.TransformDirection(light.Direction)
		out[i] = light
	}
	return out
}

// uniformNames are the struct member names of one lights[i] entry.
type uniformNames struct {
	typ, colour, position, direction    string
	constant, linear, quadratic, cosPhi string
}

var lightUniforms = func() [MaxLights]uniformNames {
	var names [MaxLights]uniformNames
	for i := range names {
		prefix := fmt.Sprintf("lights[%d].", i)
		names[i] = uniformNames{
			typ:       prefix + "type",
			colour:    prefix + "colour",
			position:  prefix + "position",
			direction: prefix + "direction",
			constant:  prefix + "constant",
			linear:    prefix + "linear",
			quadratic: prefix + "quadratic",
			cosPhi:    prefix + "cosPhi",
		}
	}
	return names
}()

// ToShader uploads the lights in view space. The program must be in use.
func (l *Lights) ToShader(p *shader.Program, view math.Mat4) {
	lights := l.ViewSpace(view)
	p.SetInt("numLights", int32(len(lights)))
	for i, light := range lights {
		u := &lightUniforms[i]
		p.SetInt(u.typ, int32(light.Type))
		p.SetVec3(u.colour, light.Colour)
		p.SetVec3(u.position, light.Position)
		p.SetVec3(u.direction, light.Direction)
		p.SetFloat(u.constant, light.Constant)
		p.SetFloat(u.linear, light.Linear)
		p.SetFloat(u.quadratic, light.Quadratic)
		p.SetFloat(u.cosPhi, light.CosPhi)
	}
}

// MarkerTransforms returns the model matrix and colour of each light that has
// a position (point and spot lights).
func (l *Lights) MarkerTransforms() ([]math.Mat4, []math.Vec3) {
	var models []math.Mat4
	var colours []math.Vec3
	scale := math.Scale(math.Vec3{X: markerScale, Y: markerScale, Z: markerScale})
	for _, light := range l.lights {
		if light.Type == Directional {
			continue
		}
		models = append(models, math.Translate(light.Position).Mul(scale))
		colours = append(colours, light.Colour)
	}
	return models, colours
}

// Draw renders a small marker at every positioned light using p, which must
// take an MVP matrix and a colour.
func (l *Lights) Draw(p *shader.Program, view, projection math.Mat4, marker Drawable) {
	models, colours := l.MarkerTransforms()
	if len(models) == 0 {
		return
	}
	p.Use()
	viewProjection := projection.Mul(view)
	for i, model := range models {
		p.SetMat4("MVP", viewProjection.Mul(model))
		p.SetVec3("colour", colours[i])
		marker.DrawGeometry()
	}
}
