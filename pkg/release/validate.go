package release

import "github.com/plin1112/mcell/pkg/domain"

// Validate certifies a fully populated release site. Rules are applied in a
// fixed order and the first failing one is reported as a
// *domain.ValidationError naming the rule.
//
// A LIST release (or a region release) carrying explicit molecules but no
// location gets the origin as its location here.
func Validate(site *domain.ReleaseSite) error {
	fail := func(rule domain.ValidationRule, err error) error {
		return &domain.ValidationError{Site: site.Name, Rule: rule, Err: err}
	}

	if site.Shape != domain.ShapeList {
		if site.Molecule == nil || site.Molecule.Species == nil {
			return fail(domain.RuleMoleculeRequired, domain.ErrMissingMoleculeType)
		}
		if site.Molecule.Species.Has(domain.SpeciesSurfaceClass) {
			return fail(domain.RuleMoleculeClass, domain.ErrInvalidMoleculeClass)
		}
	}

	// LIST releases may omit the molecule; the mobility rules only apply to a
	// named species.
	if site.Molecule != nil && site.Molecule.Species != nil {
		sp := site.Molecule.Species
		switch site.Method {
		case domain.MethodConcentration:
			if !sp.IsVolume() {
				return fail(domain.RuleConcentrationMobility, domain.ErrIncompatibleMobility)
			}
		case domain.MethodDensity:
			if !sp.IsSurface() {
				return fail(domain.RuleDensityMobility, domain.ErrIncompatibleMobility)
			}
		}
	}

	if site.Location == nil && len(site.MoleculeList) > 0 &&
		(site.Shape == domain.ShapeList || site.Shape == domain.ShapeRegion) {
		site.Location = &domain.Vector3{}
	}
	if site.Shape != domain.ShapeRegion && site.Location == nil {
		return fail(domain.RuleLocation, domain.ErrMissingLocation)
	}

	return nil
}
