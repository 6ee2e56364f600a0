package scene

// Registry is the ordered, read-only list of placed objects.
type Registry struct {
	objects []Object
	cubes   []Object
}

// NewRegistry copies objects into a new registry, keeping their order.
func NewRegistry(objects []Object) *Registry {
	r := &Registry{
		objects: make([]Object, len(objects)),
	}
	copy(r.objects, objects)

	for _, o := range r.objects {
		if o.Kind == KindCube {
			r.cubes = append(r.cubes, o)
		}
	}
	return r
}

// Objects returns all objects in placement order.
// The returned slice is shared and must not be modified.
func (r *Registry) Objects() []Object {
	return r.objects
}

// Cubes returns only the cube objects, in placement order.
// The returned slice is shared and must not be modified.
func (r *Registry) Cubes() []Object {
	return r.cubes
}

// Len returns the number of objects.
func (r *Registry) Len() int {
	return len(r.objects)
}

// CountByKind returns how many objects of each kind are placed.
func (r *Registry) CountByKind() map[Kind]int {
	counts := make(map[Kind]int, kindCount)
	for _, o := range r.objects {
		counts[o.Kind]++
	}
	return counts
}
