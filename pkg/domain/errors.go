package domain

import (
	"errors"
	"fmt"
)

// ErrAllocation is returned when a pool, queue page or name cannot be allocated.
var ErrAllocation = errors.New("allocation failed")

// ErrMissingMoleculeType is returned when a non-list release names no molecule.
var ErrMissingMoleculeType = errors.New("release site has no molecule type")

// ErrInvalidMoleculeClass is returned when a release names a surface class.
var ErrInvalidMoleculeClass = errors.New("cannot release a surface class")

// ErrIncompatibleMobility is returned when the quantity method does not match
// the molecule's mobility (concentration needs 3D, density needs a surface).
var ErrIncompatibleMobility = errors.New("release method incompatible with molecule mobility")

// ErrMissingLocation is returned when a non-region release has no location.
var ErrMissingLocation = errors.New("release site is missing location")

// ErrRegionUnreachable is returned when a release region cannot be seen from
// the release site.
var ErrRegionUnreachable = errors.New("release region not reachable from release site")

// ErrInvalidTarget is returned when an object release targets a meta object
// or another release site.
var ErrInvalidTarget = errors.New("invalid release target object")

// ErrIncompatibleShape is returned when a quantity method makes no sense for
// the site's shape.
var ErrIncompatibleShape = errors.New("release method incompatible with release shape")

// ErrRegionNotFound is returned when a region name cannot be resolved.
var ErrRegionNotFound = errors.New("region not found")

// ErrInvalidExpression is returned for malformed region expressions.
var ErrInvalidExpression = errors.New("invalid region expression")

// ErrInvalidMolecule is returned when a release molecule fails the
// orientation checks.
var ErrInvalidMolecule = errors.New("invalid release molecule")

// ErrReleaseMechanism is returned when a delayed release cannot be performed.
// It is fatal to the simulation run.
var ErrReleaseMechanism = errors.New("release mechanism failure")

// ErrSiteNotFound is returned when a site record cannot be found in the store.
var ErrSiteNotFound = errors.New("release site not found")

// ErrUnknownPartition is returned when a subvolume or molecule refers to a
// partition that was never registered.
var ErrUnknownPartition = errors.New("unknown partition")

// ValidationRule identifies the validation rule that rejected a site.
type ValidationRule int

const (
	RuleMoleculeRequired ValidationRule = iota + 1
	RuleMoleculeClass
	RuleConcentrationMobility
	RuleDensityMobility
	RuleLocation
)

func (r ValidationRule) String() string {
	switch r {
	case RuleMoleculeRequired:
		return "molecule_required"
	case RuleMoleculeClass:
		return "molecule_class"
	case RuleConcentrationMobility:
		return "concentration_mobility"
	case RuleDensityMobility:
		return "density_mobility"
	case RuleLocation:
		return "location"
	default:
		return "unknown"
	}
}

// ValidationError reports the rule that rejected a release site.
type ValidationError struct {
	Site string
	Rule ValidationRule
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("release site '%s': %v (rule %s)", e.Site, e.Err, e.Rule)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// UnreachableRegionError names the region that failed the reachability check.
type UnreachableRegionError struct {
	Region string
}

func (e *UnreachableRegionError) Error() string {
	return fmt.Sprintf("region '%s' is neither instanced nor grouped with the release site", e.Region)
}

func (e *UnreachableRegionError) Unwrap() error { return ErrRegionUnreachable }

// ReleaseFailureError names the site whose delayed release failed.
type ReleaseFailureError struct {
	Site string
	Err  error
}

func (e *ReleaseFailureError) Error() string {
	return fmt.Sprintf("failed to perform reaction-triggered release from site '%s': %v", e.Site, e.Err)
}

// Unwrap exposes both the taxonomy sentinel and the mechanism's own error.
func (e *ReleaseFailureError) Unwrap() []error {
	return []error{ErrReleaseMechanism, e.Err}
}
