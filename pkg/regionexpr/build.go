package regionexpr

import (
	"fmt"

	"github.com/plin1112/mcell/pkg/domain"
)

// MakeLeaf wraps a region as a single-region term and marks the region so
// that its contents are counted.
func MakeLeaf(region *domain.Region) (*domain.RegionExpr, error) {
	if region == nil {
		return nil, fmt.Errorf("leaf without region: %w", domain.ErrInvalidExpression)
	}
	region.CountContents = true
	return &domain.RegionExpr{
		Op:   domain.OpNone,
		Left: domain.RegionOperand(region),
	}, nil
}

// Combine builds op(left, right).
//
// Single-region terms are packed instead of being boxed: two leaves become
// one two-region node, and a lone leaf donates its node to hold the other
// side. The inclusion relation is never packed and always gets a fresh node.
// Packing may reuse the nodes passed in; callers must not use left or right
// after a successful call.
func Combine(left, right *domain.RegionExpr, op domain.RegionOp) (*domain.RegionExpr, error) {
	if left == nil || right == nil {
		return nil, fmt.Errorf("%s with missing operand: %w", op, domain.ErrInvalidExpression)
	}
	if op == domain.OpNone || op > domain.OpInclusion {
		return nil, fmt.Errorf("cannot combine with operator %s: %w", op, domain.ErrInvalidExpression)
	}

	packable := op != domain.OpInclusion
	switch {
	case packable && left.IsLeaf() && right.IsLeaf():
		left.Right = right.Left
		left.Op = op
		return left, nil
	case packable && right.IsLeaf():
		right.Right = right.Left
		right.Left = domain.ExprOperand(left)
		right.Op = op
		return right, nil
	case packable && left.IsLeaf():
		left.Right = domain.ExprOperand(right)
		left.Op = op
		return left, nil
	default:
		return &domain.RegionExpr{
			Op:    op,
			Left:  domain.ExprOperand(left),
			Right: domain.ExprOperand(right),
		}, nil
	}
}
