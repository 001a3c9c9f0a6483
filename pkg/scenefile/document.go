package scenefile

import "github.com/plin1112/mcell/pkg/domain"

// Document is the decoded form of a scene file.
type Document struct {
	Root       string        `mapstructure:"root"`
	LengthUnit float64       `mapstructure:"length_unit"`
	Notify     NotifySpec    `mapstructure:"notify"`
	Species    []SpeciesSpec `mapstructure:"species"`
	Objects    []ObjectSpec  `mapstructure:"objects"`
	Patterns   []PatternSpec `mapstructure:"patterns"`
	Sites      []SiteSpec    `mapstructure:"sites"`
}

type NotifySpec struct {
	MissedSurfaceOrientation string `mapstructure:"missed_surface_orientation"`
	UselessVolumeOrientation string `mapstructure:"useless_volume_orientation"`
}

type SpeciesSpec struct {
	Name         string `mapstructure:"name"`
	Surface      bool   `mapstructure:"surface"`
	SurfaceClass bool   `mapstructure:"surface_class"`
}

type ObjectSpec struct {
	Name    string   `mapstructure:"name"`
	Type    string   `mapstructure:"type"`
	Parent  string   `mapstructure:"parent"`
	Regions []string `mapstructure:"regions"`
}

type PatternSpec struct {
	Name            string  `mapstructure:"name"`
	Delay           float64 `mapstructure:"delay"`
	ReleaseInterval float64 `mapstructure:"release_interval"`
	TrainInterval   float64 `mapstructure:"train_interval"`
	TrainDuration   float64 `mapstructure:"train_duration"`
	NumberOfTrains  int     `mapstructure:"number_of_trains"`
}

type QuantitySpec struct {
	Method        string  `mapstructure:"method"`
	Number        float64 `mapstructure:"number"`
	StdDev        float64 `mapstructure:"stddev"`
	MeanDiameter  float64 `mapstructure:"mean_diameter"`
	Concentration float64 `mapstructure:"concentration"`
	Density       float64 `mapstructure:"density"`
}

type ListEntrySpec struct {
	Species     string         `mapstructure:"species"`
	Location    domain.Vector3 `mapstructure:"location"`
	Orientation int            `mapstructure:"orientation"`
}

type SiteSpec struct {
	Name        string          `mapstructure:"name"`
	Parent      string          `mapstructure:"parent"`
	Molecule    string          `mapstructure:"molecule"`
	Orientation *int            `mapstructure:"orientation"`
	Shape       string          `mapstructure:"shape"`
	Diameter    *domain.Vector3 `mapstructure:"diameter"`
	Location    *domain.Vector3 `mapstructure:"location"`
	Object      string          `mapstructure:"object"`
	// Region is a qualified region name or a single-key operator map.
	Region      any             `mapstructure:"region"`
	Quantity    *QuantitySpec   `mapstructure:"quantity"`
	Probability *float64        `mapstructure:"probability"`
	Pattern     string          `mapstructure:"pattern"`
	Molecules   []ListEntrySpec `mapstructure:"molecules"`
}
