package dsl

import (
	"fmt"

	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/ports"
	"github.com/plin1112/mcell/pkg/regionexpr"
)

// Expr is an unresolved region expression. Region names are looked up when
// the owning site is built.
type Expr interface {
	resolve(ports.RegionResolver) (*domain.RegionExpr, error)
	String() string
}

type ref string

// R references the region "object,region".
func R(qualifiedName string) Expr { return ref(qualifiedName) }

func (r ref) resolve(res ports.RegionResolver) (*domain.RegionExpr, error) {
	reg, err := res.LookupRegion(string(r))
	if err != nil {
		return nil, err
	}
	return regionexpr.MakeLeaf(reg)
}

func (r ref) String() string { return string(r) }

type binary struct {
	op          domain.RegionOp
	left, right Expr
}

// Union selects regions in either operand. More operands fold left.
func Union(a, b Expr, more ...Expr) Expr { return fold(domain.OpUnion, a, b, more) }

// Intersect selects regions in both operands. More operands fold left.
func Intersect(a, b Expr, more ...Expr) Expr { return fold(domain.OpIntersection, a, b, more) }

// Diff selects regions of a not in b. More operands fold left.
func Diff(a, b Expr, more ...Expr) Expr { return fold(domain.OpSubtraction, a, b, more) }

// Include selects regions of a that enclose b.
func Include(a, b Expr) Expr { return binary{op: domain.OpInclusion, left: a, right: b} }

// Op builds an expression with an explicit operator.
func Op(op domain.RegionOp, a, b Expr) Expr { return binary{op: op, left: a, right: b} }

func fold(op domain.RegionOp, a, b Expr, more []Expr) Expr {
	e := Expr(binary{op: op, left: a, right: b})
	for _, m := range more {
		e = binary{op: op, left: e, right: m}
	}
	return e
}

func (e binary) resolve(res ports.RegionResolver) (*domain.RegionExpr, error) {
	if e.left == nil || e.right == nil {
		return nil, fmt.Errorf("%s needs two operands: %w", e.op, domain.ErrInvalidExpression)
	}
	l, err := e.left.resolve(res)
	if err != nil {
		return nil, err
	}
	r, err := e.right.resolve(res)
	if err != nil {
		return nil, err
	}
	return regionexpr.Combine(l, r, e.op)
}

func (e binary) String() string {
	return fmt.Sprintf("%s(%v, %v)", e.op, e.left, e.right)
}
