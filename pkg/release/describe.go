package release

import "github.com/plin1112/mcell/pkg/domain"

// Describe flattens a site into a serialisable catalog record.
func Describe(site *domain.ReleaseSite) domain.SiteRecord {
	rec := domain.SiteRecord{
		Name:          site.Name,
		Shape:         site.Shape.String(),
		Method:        site.Method.String(),
		Number:        site.Number,
		MeanDiameter:  site.MeanDiameter,
		Concentration: site.Concentration,
		StdDev:        site.StdDev,
		ListSize:      len(site.MoleculeList),
		Probability:   site.Probability,
	}
	if site.Molecule != nil && site.Molecule.Species != nil {
		rec.Molecule = site.Molecule.Species.Name
		rec.Orientation = site.Molecule.Orientation
	}
	if site.Location != nil {
		loc := *site.Location
		rec.Location = &loc
	}
	if site.Region != nil {
		rec.Expression = site.Region.Expression.String()
	}
	if site.Pattern != nil {
		rec.Pattern = site.Pattern.Name
	}
	return rec
}
