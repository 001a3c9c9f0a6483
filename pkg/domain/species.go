package domain

// SpeciesFlag describes the mobility class of a species.
type SpeciesFlag uint32

const (
	// SpeciesSurfaceClass marks a surface class (not a molecule at all).
	SpeciesSurfaceClass SpeciesFlag = 1 << iota
	// SpeciesNotFree marks species that cannot diffuse freely in 3D.
	SpeciesNotFree
	// SpeciesOnGrid marks surface molecules living on a wall grid.
	SpeciesOnGrid
)

// Species is a molecule type.
type Species struct {
	Name  string
	Flags SpeciesFlag
}

// Has reports whether all bits of f are set.
func (s *Species) Has(f SpeciesFlag) bool {
	return s.Flags&f == f
}

// IsVolume reports whether the species diffuses freely in three dimensions.
func (s *Species) IsVolume() bool {
	return s.Flags&SpeciesNotFree == 0
}

// IsSurface reports whether the species is confined to a surface.
func (s *Species) IsSurface() bool {
	return s.Flags&SpeciesNotFree != 0
}

// SpeciesOrient pairs a species with an optional surface orientation.
type SpeciesOrient struct {
	Species     *Species
	Orientation int
	OrientSet   bool
}
