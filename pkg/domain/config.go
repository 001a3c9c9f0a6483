package domain

// WarnLevel selects how a questionable but recoverable input is reported.
type WarnLevel int

const (
	WarnIgnore WarnLevel = iota
	WarnWarning
	WarnError
)

// Notify holds the warning levels used while checking release molecules.
type Notify struct {
	// MissedSurfaceOrient applies to surface molecules released without an
	// orientation.
	MissedSurfaceOrient WarnLevel
	// UselessVolumeOrient applies to volume molecules released with one.
	UselessVolumeOrient WarnLevel
}

// Config is the simulation-wide context shared by the release components.
type Config struct {
	// LengthUnit converts input lengths to internal units.
	LengthUnit float64
	// PlaceWaypoints is set once any region-shaped release is defined.
	PlaceWaypoints bool
	// Root is the root instance of the scene hierarchy.
	Root *Object
	// DefaultPattern is assigned to every new release site.
	DefaultPattern *ReleasePattern
	Notify         Notify
}

// DefaultPatternName names the implicit release pattern.
const DefaultPatternName = "__default_release_pattern__"

// NewConfig returns a Config with unit length scaling and the default
// release pattern (single release at t=0).
func NewConfig(root *Object) *Config {
	return &Config{
		LengthUnit: 1,
		Root:       root,
		DefaultPattern: &ReleasePattern{
			Name:           DefaultPatternName,
			NumberOfTrains: 1,
		},
		Notify: Notify{
			MissedSurfaceOrient: WarnError,
			UselessVolumeOrient: WarnWarning,
		},
	}
}
