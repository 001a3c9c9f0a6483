package domain

// ObjectType classifies nodes of the scene hierarchy.
type ObjectType int

const (
	// ObjectMeta groups other objects and carries no geometry of its own.
	ObjectMeta ObjectType = iota
	// ObjectReleaseSite is a release site placed in the hierarchy.
	ObjectReleaseSite
	// ObjectPolygon is a polygon-list (mesh) object.
	ObjectPolygon
	// ObjectBox is a box object.
	ObjectBox
	// ObjectVoxel is a voxel-list object.
	ObjectVoxel
)

func (t ObjectType) String() string {
	switch t {
	case ObjectMeta:
		return "meta"
	case ObjectReleaseSite:
		return "release_site"
	case ObjectPolygon:
		return "polygon"
	case ObjectBox:
		return "box"
	case ObjectVoxel:
		return "voxel"
	default:
		return "unknown"
	}
}

// IsGeometric reports whether objects of this type carry surfaces that
// molecules can be released onto.
func (t ObjectType) IsGeometric() bool {
	return t != ObjectMeta && t != ObjectReleaseSite
}

// Object is a node of the scene hierarchy.
// Parent is nil for hierarchy roots.
type Object struct {
	Name     string
	Type     ObjectType
	Parent   *Object
	Children []*Object
	Regions  []*Region
}

// AddChild links child under o.
func (o *Object) AddChild(child *Object) {
	child.Parent = o
	o.Children = append(o.Children, child)
}

// IsRoot reports whether o has no parent.
func (o *Object) IsRoot() bool {
	return o.Parent == nil
}

// Region is a named surface or volume element of an object.
// It is owned by the scene graph; expressions only reference it.
type Region struct {
	Name   string
	Parent *Object

	// CountContents requests that molecule counts on the region be tracked.
	// Set as a side effect of being referenced by a release expression.
	CountContents bool
}

// AllRegionSuffix names the implicit region covering every wall of an object.
const AllRegionSuffix = "ALL"

// WholeObjectRegion returns the qualified name of the implicit "whole object"
// region of the named object, e.g. "cell,ALL".
func WholeObjectRegion(objectName string) string {
	return objectName + "," + AllRegionSuffix
}

// QualifiedName returns "<object>,<region>".
func (r *Region) QualifiedName() string {
	if r.Parent == nil {
		return r.Name
	}
	return r.Parent.Name + "," + r.Name
}
