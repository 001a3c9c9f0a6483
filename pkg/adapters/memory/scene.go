package memory

import (
	"fmt"
	"sort"

	"github.com/plin1112/mcell/pkg/domain"
)

// Scene implements ports.SceneGraph and ports.RegionResolver over an
// in-memory object hierarchy.
type Scene struct {
	root    *domain.Object
	objects map[string]*domain.Object
	regions map[string]*domain.Region
}

// NewScene creates a scene whose instance tree starts at a fresh meta object
// named root.
func NewScene(root string) *Scene {
	s := &Scene{
		objects: make(map[string]*domain.Object),
		regions: make(map[string]*domain.Region),
	}
	s.root = &domain.Object{Name: root, Type: domain.ObjectMeta}
	s.objects[root] = s.root
	return s
}

// Root returns the root instance.
func (s *Scene) Root() *domain.Object {
	return s.root
}

// AddObject creates an object under parent. A nil parent creates a detached
// hierarchy root (an object that was defined but never instanced).
// Geometric objects get their implicit whole-object region.
func (s *Scene) AddObject(name string, typ domain.ObjectType, parent *domain.Object) (*domain.Object, error) {
	if name == "" {
		return nil, fmt.Errorf("object missing name")
	}
	if _, ok := s.objects[name]; ok {
		return nil, fmt.Errorf("object %q already defined", name)
	}
	obj := &domain.Object{Name: name, Type: typ}
	if parent != nil {
		parent.AddChild(obj)
	}
	s.objects[name] = obj
	if typ.IsGeometric() {
		if _, err := s.AddRegion(obj, domain.AllRegionSuffix); err != nil {
			return nil, err
		}
	}
	return obj, nil
}

// AddRegion registers a named region on obj.
func (s *Scene) AddRegion(obj *domain.Object, name string) (*domain.Region, error) {
	reg := &domain.Region{Name: name, Parent: obj}
	key := reg.QualifiedName()
	if _, ok := s.regions[key]; ok {
		return nil, fmt.Errorf("region %q already defined", key)
	}
	obj.Regions = append(obj.Regions, reg)
	s.regions[key] = reg
	return reg, nil
}

// RemoveObject unregisters obj and its regions and unlinks it from its
// parent. Objects with children cannot be removed.
func (s *Scene) RemoveObject(obj *domain.Object) error {
	if obj == nil || s.objects[obj.Name] != obj {
		return fmt.Errorf("object not in scene")
	}
	if obj == s.root {
		return fmt.Errorf("cannot remove scene root %q", obj.Name)
	}
	if len(obj.Children) > 0 {
		return fmt.Errorf("object %q still has %d children", obj.Name, len(obj.Children))
	}
	if p := obj.Parent; p != nil {
		for i, c := range p.Children {
			if c == obj {
				p.Children = append(p.Children[:i], p.Children[i+1:]...)
				break
			}
		}
		obj.Parent = nil
	}
	for _, reg := range obj.Regions {
		delete(s.regions, reg.QualifiedName())
	}
	delete(s.objects, obj.Name)
	return nil
}

// Object retrieves an object by name.
func (s *Scene) Object(name string) (*domain.Object, bool) {
	obj, ok := s.objects[name]
	return obj, ok
}

// LookupRegion resolves "object,region".
func (s *Scene) LookupRegion(qualifiedName string) (*domain.Region, error) {
	reg, ok := s.regions[qualifiedName]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrRegionNotFound, qualifiedName)
	}
	return reg, nil
}

// ListRegions returns all qualified region names.
func (s *Scene) ListRegions() []string {
	keys := make([]string, 0, len(s.regions))
	for k := range s.regions {
		keys = append(keys, k)
	}
	sort.Strings(keys) // Deterministic order
	return keys
}

// CommonAncestor returns the nearest object that is an ancestor of both a
// and b (an object counts as its own ancestor), or nil.
func (s *Scene) CommonAncestor(a, b *domain.Object) *domain.Object {
	if a == nil || b == nil {
		return nil
	}
	seen := make(map[*domain.Object]struct{})
	for o := a; o != nil; o = o.Parent {
		seen[o] = struct{}{}
	}
	for o := b; o != nil; o = o.Parent {
		if _, ok := seen[o]; ok {
			return o
		}
	}
	return nil
}
