package domain

// ReleaseShape is the geometric shape a site releases into.
type ReleaseShape int

const (
	ShapeUndefined ReleaseShape = iota
	ShapeSpherical
	ShapeCubic
	ShapeEllipsoidal
	ShapeRectangular
	ShapeSphericalShell
	ShapeRegion
	ShapeList
)

func (s ReleaseShape) String() string {
	switch s {
	case ShapeUndefined:
		return "undefined"
	case ShapeSpherical:
		return "spherical"
	case ShapeCubic:
		return "cubic"
	case ShapeEllipsoidal:
		return "ellipsoidal"
	case ShapeRectangular:
		return "rectangular"
	case ShapeSphericalShell:
		return "spherical_shell"
	case ShapeRegion:
		return "region"
	case ShapeList:
		return "list"
	default:
		return "unknown"
	}
}

// ReleaseMethod selects how the released quantity is computed.
type ReleaseMethod int

const (
	MethodConstant ReleaseMethod = iota
	MethodGaussian
	MethodVolumeDependent
	MethodConcentration
	MethodDensity
)

func (m ReleaseMethod) String() string {
	switch m {
	case MethodConstant:
		return "constant"
	case MethodGaussian:
		return "gaussian"
	case MethodVolumeDependent:
		return "volume_dependent"
	case MethodConcentration:
		return "concentration"
	case MethodDensity:
		return "density"
	default:
		return "unknown"
	}
}

// ReleasePattern describes release timing (delay, train and pulse layout).
type ReleasePattern struct {
	Name            string
	Delay           float64
	ReleaseInterval float64
	TrainInterval   float64
	TrainDuration   float64
	NumberOfTrains  int
}

// RegionData holds the geometry of a region-shaped release.
type RegionData struct {
	Expression *RegionExpr
	// Self is the object that owns the release site.
	Self *Object
}

// SingleMolecule is one entry of an explicit LIST release.
type SingleMolecule struct {
	Species     *Species
	Location    Vector3
	Orientation int
}

// ReleaseSite is a named source of particles.
//
// A site is populated by the operations in pkg/release and validated exactly
// once before first use. Shape and method must not change after validation.
type ReleaseSite struct {
	Name     string
	Molecule *SpeciesOrient

	Shape  ReleaseShape
	Method ReleaseMethod

	Number        float64 // constant count or gaussian mean
	MeanDiameter  float64
	Concentration float64 // concentration or density
	StdDev        float64
	Diameter      *Vector3

	Location *Vector3
	Region   *RegionData

	MoleculeList []SingleMolecule

	Probability float64
	Pattern     *ReleasePattern
}

// SiteRecord is a flat, serialisable descriptor of a validated release site.
type SiteRecord struct {
	Name          string   `json:"name"`
	Molecule      string   `json:"molecule,omitempty"`
	Orientation   int      `json:"orientation,omitempty"`
	Shape         string   `json:"shape"`
	Method        string   `json:"method"`
	Number        float64  `json:"number,omitempty"`
	MeanDiameter  float64  `json:"mean_diameter,omitempty"`
	Concentration float64  `json:"concentration,omitempty"`
	StdDev        float64  `json:"std_dev,omitempty"`
	Location      *Vector3 `json:"location,omitempty"`
	Expression    string   `json:"expression,omitempty"`
	ListSize      int      `json:"list_size,omitempty"`
	Probability   float64  `json:"probability"`
	Pattern       string   `json:"pattern,omitempty"`
}

// SiteFilter selects catalog records. Empty fields match anything.
type SiteFilter struct {
	Shape    string
	Method   string
	Molecule string
}

// Matches reports whether r satisfies every set field of f.
func (f SiteFilter) Matches(r SiteRecord) bool {
	return (f.Shape == "" || f.Shape == r.Shape) &&
		(f.Method == "" || f.Method == r.Method) &&
		(f.Molecule == "" || f.Molecule == r.Molecule)
}
