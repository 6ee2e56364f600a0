package scene

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	gomath "math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/roomwalk/pkg/math"
)

// Light types accepted in a manifest.
const (
	LightPoint       = "point"
	LightSpot        = "spot"
	LightDirectional = "directional"
)

// Texture slot names understood by the model loader.
const (
	SlotDiffuse  = "diffuse"
	SlotNormal   = "normal"
	SlotSpecular = "specular"
)

// Manifest describes everything placed in the room. Paths are relative to
// the asset directory.
type Manifest struct {
	Models      []ModelSpec  `yaml:"models"`
	LightMarker string       `yaml:"light_marker"`
	Objects     []ObjectSpec `yaml:"objects"`
	Lights      []LightSpec  `yaml:"lights"`
	Bounds      []BoundSpec  `yaml:"bounds"`
}

// Material holds Phong lighting coefficients.
type Material struct {
	Ka float32 `yaml:"ka"`
	Kd float32 `yaml:"kd"`
	Ks float32 `yaml:"ks"`
	Ns float32 `yaml:"ns"`
}

// ModelSpec binds a mesh, its textures and material to a kind.
type ModelSpec struct {
	Kind     Kind              `yaml:"kind"`
	Mesh     string            `yaml:"mesh"`
	Textures map[string]string `yaml:"textures"` // slot -> image path
	Material Material          `yaml:"material"`
}

// ObjectSpec is one placement. Angle is in degrees.
type ObjectSpec struct {
	Kind     Kind       `yaml:"kind"`
	Position [3]float32 `yaml:"position"`
	Axis     [3]float32 `yaml:"axis"`
	Scale    [3]float32 `yaml:"scale"`
	Angle    float32    `yaml:"angle"`
}

// LightSpec is one light source. Cone is the spot half-angle in degrees.
type LightSpec struct {
	Type      string     `yaml:"type"`
	Position  [3]float32 `yaml:"position,omitempty"`
	Direction [3]float32 `yaml:"direction,omitempty"`
	Colour    [3]float32 `yaml:"colour"`
	Constant  float32    `yaml:"constant,omitempty"`
	Linear    float32    `yaml:"linear,omitempty"`
	Quadratic float32    `yaml:"quadratic,omitempty"`
	Cone      float32    `yaml:"cone,omitempty"`
}

// CosPhi returns the cosine of the spot cone half-angle.
func (l LightSpec) CosPhi() float32 {
	return float32(gomath.Cos(float64(math.Radians(l.Cone))))
}

// BoundSpec is one solid collision slab.
type BoundSpec struct {
	Name string     `yaml:"name"`
	Min  [3]float32 `yaml:"min"`
	Max  [3]float32 `yaml:"max"`
}

// AABB returns the bound as a box.
func (b BoundSpec) AABB() math.AABB {
	return math.AABB{Min: vec(b.Min), Max: vec(b.Max)}
}

// LoadManifest reads and validates a YAML manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates YAML manifest data.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks that every placed kind has a model and that lights and
// bounds are well formed.
func (m *Manifest) Validate() error {
	var errs []error

	models := make(map[Kind]bool, len(m.Models))
	for i, spec := range m.Models {
		if spec.Kind == KindUnknown {
			errs = append(errs, fmt.Errorf("models[%d]: kind is required", i))
			continue
		}
		if spec.Mesh == "" {
			errs = append(errs, fmt.Errorf("models[%d] (%s): mesh is required", i, spec.Kind))
		}
		if models[spec.Kind] {
			errs = append(errs, fmt.Errorf("models[%d]: duplicate model for %s", i, spec.Kind))
		}
		models[spec.Kind] = true
		for slot := range spec.Textures {
			switch slot {
			case SlotDiffuse, SlotNormal, SlotSpecular:
			default:
				errs = append(errs, fmt.Errorf("models[%d] (%s): unknown texture slot %q", i, spec.Kind, slot))
			}
		}
	}

	for i, obj := range m.Objects {
		if obj.Kind == KindUnknown {
			errs = append(errs, fmt.Errorf("objects[%d]: kind is required", i))
			continue
		}
		if !models[obj.Kind] {
			errs = append(errs, fmt.Errorf("objects[%d]: no model for %s", i, obj.Kind))
		}
	}

	for i, l := range m.Lights {
		switch l.Type {
		case LightPoint, LightSpot, LightDirectional:
		default:
			errs = append(errs, fmt.Errorf("lights[%d]: unknown type %q", i, l.Type))
		}
		if l.Type == LightSpot && (l.Cone <= 0 || l.Cone >= 90) {
			errs = append(errs, fmt.Errorf("lights[%d]: spot cone must be in (0, 90) degrees, got %v", i, l.Cone))
		}
	}

	for i, b := range m.Bounds {
		if b.Min[0] > b.Max[0] || b.Min[1] > b.Max[1] || b.Min[2] > b.Max[2] {
			errs = append(errs, fmt.Errorf("bounds[%d] (%s): min exceeds max", i, b.Name))
		}
	}

	if len(m.Lights) > 0 && m.LightMarker == "" {
		errs = append(errs, errors.New("light_marker mesh is required when lights are present"))
	}

	return errors.Join(errs...)
}

// Registry builds the object registry in manifest order.
func (m *Manifest) Registry() *Registry {
	objects := make([]Object, 0, len(m.Objects))
	for _, spec := range m.Objects {
		objects = append(objects, Object{
			Position:     vec(spec.Position),
			RotationAxis: vec(spec.Axis),
			Scale:        vec(spec.Scale),
			Angle:        math.Radians(spec.Angle),
			Kind:         spec.Kind,
		})
	}
	return NewRegistry(objects)
}

// RoomBounds returns the collision slabs in manifest order.
func (m *Manifest) RoomBounds() []math.AABB {
	bounds := make([]math.AABB, 0, len(m.Bounds))
	for _, b := range m.Bounds {
		bounds = append(bounds, b.AABB())
	}
	return bounds
}

// Model returns the model spec for a kind.
func (m *Manifest) Model(kind Kind) (ModelSpec, bool) {
	for _, spec := range m.Models {
		if spec.Kind == kind {
			return spec, true
		}
	}
	return ModelSpec{}, false
}

// Marshal encodes the manifest as YAML.
func (m *Manifest) Marshal() ([]byte, error) {
	return yaml.Marshal(m)
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
