package domain

// Subvolume is a spatial cell of the simulated domain.
type Subvolume struct {
	Index int
	// Partition is the index of the partition that owns this subvolume's
	// storage.
	Partition int
	// MolCount is the number of live molecules in the subvolume.
	MolCount int
}

// Molecule is a freely diffusing particle.
//
// Next, PrevV and NextV link the molecule into lists of the partition that
// owns its storage; they must never point across partitions.
type Molecule struct {
	ID       uint64
	Species  *Species
	Pos      Vector3
	T        float64 // current time
	T2       float64 // time of next unimolecular event
	Birthday float64
	Flags    uint32

	Subvol *Subvolume
	// Birthplace is the partition whose pool holds this molecule's storage.
	Birthplace int

	Next  *Molecule
	PrevV *Molecule
	NextV *Molecule
}

// Unlink clears every list link of m.
func (m *Molecule) Unlink() {
	m.Next = nil
	m.PrevV = nil
	m.NextV = nil
}
