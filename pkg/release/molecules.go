package release

import (
	"fmt"
	"log/slog"

	"github.com/plin1112/mcell/pkg/domain"
)

// SetMolecule sets the species (and optional orientation) to release.
func SetMolecule(site *domain.ReleaseSite, mol *domain.SpeciesOrient) {
	site.Molecule = mol
}

// SetMoleculeList turns site into an explicit LIST release of mols.
func SetMoleculeList(cfg *domain.Config, site *domain.ReleaseSite, mols []domain.SingleMolecule) {
	site.Shape = domain.ShapeList
	site.MoleculeList = site.MoleculeList[:0]
	for _, m := range mols {
		AddSingleMolecule(cfg, site, m)
	}
}

// AddSingleMolecule appends one molecule to a LIST release. Its location is
// converted to internal length units.
func AddSingleMolecule(cfg *domain.Config, site *domain.ReleaseSite, mol domain.SingleMolecule) {
	mol.Location = mol.Location.Scale(cfg.LengthUnit)
	site.MoleculeList = append(site.MoleculeList, mol)
}

// CheckMoleculeRelease checks that a molecule may be released: surface
// molecules need an orientation, volume molecules should not have one, and
// surface classes cannot be released at all. Orientation problems are
// reported according to cfg.Notify.
func CheckMoleculeRelease(cfg *domain.Config, mol *domain.SpeciesOrient, logger *slog.Logger) error {
	if mol == nil || mol.Species == nil {
		return fmt.Errorf("no species given: %w", domain.ErrInvalidMolecule)
	}
	sp := mol.Species

	switch {
	case sp.Has(domain.SpeciesOnGrid):
		if !mol.OrientSet {
			return notify(cfg.Notify.MissedSurfaceOrient, logger,
				fmt.Sprintf("surface molecule '%s' released without orientation", sp.Name))
		}
	case sp.IsVolume():
		if mol.OrientSet {
			return notify(cfg.Notify.UselessVolumeOrient, logger,
				fmt.Sprintf("orientation ignored for volume molecule '%s'", sp.Name))
		}
	default:
		return fmt.Errorf("cannot release surface class '%s': %w", sp.Name, domain.ErrInvalidMolecule)
	}
	return nil
}

func notify(level domain.WarnLevel, logger *slog.Logger, msg string) error {
	switch level {
	case domain.WarnError:
		return fmt.Errorf("%s: %w", msg, domain.ErrInvalidMolecule)
	case domain.WarnWarning:
		if logger != nil {
			logger.Warn(msg)
		}
	}
	return nil
}
