package release

import (
	"fmt"
	"strings"

	"github.com/plin1112/mcell/pkg/domain"
)

// New creates an empty release site: constant quantity, undefined shape,
// probability one and the configuration's default release pattern.
func New(cfg *domain.Config, name string) (*domain.ReleaseSite, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("release site name is empty: %w", domain.ErrAllocation)
	}
	return &domain.ReleaseSite{
		Name:        strings.Clone(name),
		Method:      domain.MethodConstant,
		Shape:       domain.ShapeUndefined,
		Probability: 1.0,
		Pattern:     cfg.DefaultPattern,
	}, nil
}

// SetLocation stores point converted to internal length units.
func SetLocation(cfg *domain.Config, site *domain.ReleaseSite, point domain.Vector3) {
	loc := point.Scale(cfg.LengthUnit)
	site.Location = &loc
}

// SetShape sets a geometric (non-region, non-list) shape and its diameter,
// converted to internal length units.
func SetShape(cfg *domain.Config, site *domain.ReleaseSite, shape domain.ReleaseShape, diameter domain.Vector3) error {
	if shape == domain.ShapeRegion || shape == domain.ShapeList || shape == domain.ShapeUndefined {
		return fmt.Errorf("release site '%s': shape %s cannot be set directly: %w", site.Name, shape, domain.ErrIncompatibleShape)
	}
	site.Shape = shape
	d := diameter.Scale(cfg.LengthUnit)
	site.Diameter = &d
	return nil
}

// SetProbability sets the probability that a scheduled release fires.
func SetProbability(site *domain.ReleaseSite, p float64) error {
	if p < 0 || p > 1 {
		return fmt.Errorf("release site '%s': probability %g outside [0, 1]", site.Name, p)
	}
	site.Probability = p
	return nil
}

// SetPattern replaces the release timing pattern.
func SetPattern(site *domain.ReleaseSite, pattern *domain.ReleasePattern) {
	if pattern != nil {
		site.Pattern = pattern
	}
}
