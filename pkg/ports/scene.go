package ports

import "github.com/plin1112/mcell/pkg/domain"

// SceneGraph answers ancestry queries over the object hierarchy.
type SceneGraph interface {
	// CommonAncestor returns the nearest object that is an ancestor of (or
	// equal to) both inputs, or nil if they live in disjoint hierarchies.
	CommonAncestor(a, b *domain.Object) *domain.Object
}

// RegionResolver looks regions up by qualified name.
type RegionResolver interface {
	// LookupRegion returns domain.ErrRegionNotFound if the name is unknown.
	LookupRegion(qualifiedName string) (*domain.Region, error)
}
