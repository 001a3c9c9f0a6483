package release

import (
	"fmt"

	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/ports"
	"github.com/plin1112/mcell/pkg/regionexpr"
)

// SetGeometryRegion makes site release onto the regions selected by expr.
// owner is the object that holds the release site in the hierarchy.
//
// On success the site takes exclusive ownership of expr and the
// configuration is asked to place waypoints. If a region is not reachable
// from owner the site and configuration are left unmodified.
func SetGeometryRegion(cfg *domain.Config, site *domain.ReleaseSite, owner *domain.Object, expr *domain.RegionExpr, scene ports.SceneGraph) error {
	if expr == nil {
		return fmt.Errorf("release site '%s': %w", site.Name, domain.ErrInvalidExpression)
	}
	if err := regionexpr.CheckReachable(expr, owner, cfg.Root, scene); err != nil {
		return fmt.Errorf("release site '%s': %w", site.Name, err)
	}

	site.Shape = domain.ShapeRegion
	site.Region = &domain.RegionData{
		Expression: expr,
		Self:       owner,
	}
	cfg.PlaceWaypoints = true
	return nil
}

// SetGeometryObject makes site release onto every region of target.
// Only concrete geometric objects qualify; meta objects and release sites
// are rejected with domain.ErrInvalidTarget.
func SetGeometryObject(cfg *domain.Config, site *domain.ReleaseSite, target *domain.Object, resolver ports.RegionResolver, scene ports.SceneGraph) error {
	if target == nil || !target.Type.IsGeometric() {
		kind := "nil"
		if target != nil {
			kind = target.Type.String() + " object '" + target.Name + "'"
		}
		return fmt.Errorf("release site '%s': cannot release onto %s: %w", site.Name, kind, domain.ErrInvalidTarget)
	}

	region, err := resolver.LookupRegion(domain.WholeObjectRegion(target.Name))
	if err != nil {
		return fmt.Errorf("release site '%s': %w", site.Name, err)
	}

	counted := region.CountContents
	leaf, err := regionexpr.MakeLeaf(region)
	if err != nil {
		return fmt.Errorf("release site '%s': %w", site.Name, err)
	}
	if err := SetGeometryRegion(cfg, site, target, leaf, scene); err != nil {
		region.CountContents = counted
		return err
	}
	return nil
}
