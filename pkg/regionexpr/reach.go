package regionexpr

import (
	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/ports"
)

// CheckReachable verifies that every region referenced by expr is visible
// from the release site: its owning object must share an ancestor with the
// site's owner, or failing that with the scene root instance.
//
// The left subtree is checked before the right one and the first failure is
// returned as a *domain.UnreachableRegionError.
func CheckReachable(expr *domain.RegionExpr, owner, root *domain.Object, scene ports.SceneGraph) error {
	if expr == nil {
		return nil
	}
	for _, side := range [2]domain.Operand{expr.Left, expr.Right} {
		switch {
		case side.Region != nil:
			if !reachable(side.Region, owner, root, scene) {
				return &domain.UnreachableRegionError{Region: side.Region.QualifiedName()}
			}
		case side.Expr != nil:
			if err := CheckReachable(side.Expr, owner, root, scene); err != nil {
				return err
			}
		}
	}
	return nil
}

// reachable applies the ancestor rule to one region. A common ancestor that
// is the top of some other hierarchy does not count; the root instance is
// tried instead.
func reachable(region *domain.Region, owner, root *domain.Object, scene ports.SceneGraph) bool {
	anc := scene.CommonAncestor(owner, region.Parent)
	if anc == nil || (anc.IsRoot() && anc != root) {
		anc = scene.CommonAncestor(root, region.Parent)
	}
	return anc != nil
}
