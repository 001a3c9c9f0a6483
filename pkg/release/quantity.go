package release

import (
	"fmt"

	"github.com/plin1112/mcell/pkg/domain"
)

// SetConstantNumber releases exactly num molecules.
func SetConstantNumber(site *domain.ReleaseSite, num float64) {
	site.Method = domain.MethodConstant
	site.Number = num
}

// SetGaussianNumber releases a gaussian-distributed number of molecules.
func SetGaussianNumber(site *domain.ReleaseSite, mean, stdev float64) {
	site.Method = domain.MethodGaussian
	site.Number = mean
	site.StdDev = stdev
}

// SetVolumeDependentNumber releases a fixed concentration into a sphere whose
// diameter is gaussian-distributed.
func SetVolumeDependentNumber(site *domain.ReleaseSite, mean, stdev, conc float64) {
	site.Method = domain.MethodVolumeDependent
	site.MeanDiameter = mean
	site.StdDev = stdev
	site.Concentration = conc
}

// SetConcentration releases a fixed concentration within the site's volume.
// Spherical shells have no volume, so they reject it.
func SetConcentration(site *domain.ReleaseSite, conc float64) error {
	if site.Shape == domain.ShapeSphericalShell {
		return fmt.Errorf("release site '%s': concentration on a spherical shell: %w", site.Name, domain.ErrIncompatibleShape)
	}
	site.Method = domain.MethodConcentration
	site.Concentration = conc
	return nil
}

// SetDensity releases a fixed surface density within the site's area.
func SetDensity(site *domain.ReleaseSite, dens float64) error {
	site.Method = domain.MethodDensity
	site.Concentration = dens
	return nil
}
