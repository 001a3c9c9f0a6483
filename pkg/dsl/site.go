package dsl

import (
	"errors"
	"fmt"

	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/ports"
	"github.com/plin1112/mcell/pkg/release"
)

type siteStep func(site *domain.ReleaseSite, owner *domain.Object) error

// SiteBuilder provides a fluent API for configuring a release site.
// Steps run in call order when the scene is built.
type SiteBuilder struct {
	builder *Builder
	name    string
	parent  string
	steps   []siteStep
	// counted holds the count flag each region had before this site first
	// looked it up.
	counted map[*domain.Region]bool
}

// tracker resolves regions for one site and remembers their count flags so
// that a failed site can put them back.
type tracker struct {
	site *SiteBuilder
	res  ports.RegionResolver
}

func (t tracker) LookupRegion(qualifiedName string) (*domain.Region, error) {
	reg, err := t.res.LookupRegion(qualifiedName)
	if err != nil {
		return nil, err
	}
	if _, ok := t.site.counted[reg]; !ok {
		if t.site.counted == nil {
			t.site.counted = make(map[*domain.Region]bool)
		}
		t.site.counted[reg] = reg.CountContents
	}
	return reg, nil
}

func (s *SiteBuilder) resolver() ports.RegionResolver {
	return tracker{site: s, res: s.builder.scene}
}

func (s *SiteBuilder) restoreCounts() {
	for reg, counted := range s.counted {
		reg.CountContents = counted
	}
	s.counted = nil
}

func (s *SiteBuilder) then(step siteStep) *SiteBuilder {
	s.steps = append(s.steps, step)
	return s
}

// Molecule sets the released species without an orientation.
func (s *SiteBuilder) Molecule(species string) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, _ *domain.Object) error {
		sp, err := s.builder.lookupSpecies(species)
		if err != nil {
			return err
		}
		release.SetMolecule(site, &domain.SpeciesOrient{Species: sp})
		return nil
	})
}

// Oriented sets the released species with a surface orientation.
func (s *SiteBuilder) Oriented(species string, orientation int) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, _ *domain.Object) error {
		sp, err := s.builder.lookupSpecies(species)
		if err != nil {
			return err
		}
		release.SetMolecule(site, &domain.SpeciesOrient{Species: sp, Orientation: orientation, OrientSet: true})
		return nil
	})
}

// At sets the site location in input length units.
func (s *SiteBuilder) At(x, y, z float64) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, _ *domain.Object) error {
		release.SetLocation(s.builder.cfg, site, domain.Vector3{X: x, Y: y, Z: z})
		return nil
	})
}

// Shape sets a geometric shape and its diameter.
func (s *SiteBuilder) Shape(shape domain.ReleaseShape, diameter domain.Vector3) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, _ *domain.Object) error {
		return release.SetShape(s.builder.cfg, site, shape, diameter)
	})
}

// OnRegions releases onto the regions selected by expr.
func (s *SiteBuilder) OnRegions(expr Expr) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, owner *domain.Object) error {
		if expr == nil {
			return fmt.Errorf("release site '%s': %w", site.Name, domain.ErrInvalidExpression)
		}
		e, err := expr.resolve(s.resolver())
		if err != nil {
			return fmt.Errorf("release site '%s': %w", site.Name, err)
		}
		return release.SetGeometryRegion(s.builder.cfg, site, owner, e, s.builder.scene)
	})
}

// OnObject releases onto every region of a geometric object.
func (s *SiteBuilder) OnObject(name string) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, _ *domain.Object) error {
		obj, ok := s.builder.scene.Object(name)
		if !ok {
			return fmt.Errorf("release site '%s': object %q not defined", site.Name, name)
		}
		return release.SetGeometryObject(s.builder.cfg, site, obj, s.resolver(), s.builder.scene)
	})
}

// Number releases a constant count.
func (s *SiteBuilder) Number(n float64) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, _ *domain.Object) error {
		release.SetConstantNumber(site, n)
		return nil
	})
}

// Gaussian releases a gaussian-distributed count.
func (s *SiteBuilder) Gaussian(mean, stddev float64) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, _ *domain.Object) error {
		release.SetGaussianNumber(site, mean, stddev)
		return nil
	})
}

// VolumeDependent releases a concentration into a sphere of gaussian diameter.
func (s *SiteBuilder) VolumeDependent(meanDiameter, stddev, conc float64) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, _ *domain.Object) error {
		release.SetVolumeDependentNumber(site, meanDiameter, stddev, conc)
		return nil
	})
}

// Concentration releases a volume concentration.
func (s *SiteBuilder) Concentration(conc float64) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, _ *domain.Object) error {
		return release.SetConcentration(site, conc)
	})
}

// Density releases a surface density.
func (s *SiteBuilder) Density(dens float64) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, _ *domain.Object) error {
		return release.SetDensity(site, dens)
	})
}

// Probability sets the chance that a scheduled release fires.
func (s *SiteBuilder) Probability(p float64) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, _ *domain.Object) error {
		return release.SetProbability(site, p)
	})
}

// Pattern selects a declared release pattern.
func (s *SiteBuilder) Pattern(name string) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, _ *domain.Object) error {
		p, ok := s.builder.patterns[name]
		if !ok {
			return fmt.Errorf("release site '%s': release pattern %q not defined", site.Name, name)
		}
		release.SetPattern(site, p)
		return nil
	})
}

// Add appends one molecule to an explicit release list. A site with no
// shape yet becomes a LIST release.
func (s *SiteBuilder) Add(species string, at domain.Vector3, orientation int) *SiteBuilder {
	return s.then(func(site *domain.ReleaseSite, _ *domain.Object) error {
		sp, err := s.builder.lookupSpecies(species)
		if err != nil {
			return err
		}
		if site.Shape == domain.ShapeUndefined {
			site.Shape = domain.ShapeList
		}
		release.AddSingleMolecule(s.builder.cfg, site, domain.SingleMolecule{
			Species:     sp,
			Location:    at,
			Orientation: orientation,
		})
		return nil
	})
}

// build places the site in the hierarchy and runs its steps. A site that
// fails leaves the scene and configuration as it found them.
func (s *SiteBuilder) build() (*domain.ReleaseSite, error) {
	b := s.builder
	parent := b.scene.Root()
	if s.parent != "" {
		var ok bool
		if parent, ok = b.scene.Object(s.parent); !ok {
			return nil, fmt.Errorf("release site '%s': parent %q not defined", s.name, s.parent)
		}
	}

	site, err := b.newSite(s.name)
	if err != nil {
		return nil, err
	}
	owner, err := b.scene.AddObject(s.name, domain.ObjectReleaseSite, parent)
	if err != nil {
		return nil, fmt.Errorf("release site '%s': %w", s.name, err)
	}

	waypoints := b.cfg.PlaceWaypoints
	site, err = s.run(site, owner)
	if err != nil {
		s.restoreCounts()
		b.cfg.PlaceWaypoints = waypoints
		if rmErr := b.scene.RemoveObject(owner); rmErr != nil {
			return nil, errors.Join(err, rmErr)
		}
		return nil, err
	}
	return site, nil
}

func (s *SiteBuilder) run(site *domain.ReleaseSite, owner *domain.Object) (*domain.ReleaseSite, error) {
	for _, step := range s.steps {
		if err := step(site, owner); err != nil {
			return nil, err
		}
	}

	if err := release.Validate(site); err != nil {
		return nil, err
	}
	if site.Molecule != nil {
		if err := release.CheckMoleculeRelease(s.builder.cfg, site.Molecule, s.builder.logger.With("site", site.Name)); err != nil {
			return nil, fmt.Errorf("release site '%s': %w", site.Name, err)
		}
	}
	return site, nil
}
