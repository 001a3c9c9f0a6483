package domain

import "strings"

// RegionOp is the set operation applied by a RegionExpr node.
type RegionOp uint8

const (
	// OpNone marks a single-region term (a leaf in disguise).
	OpNone RegionOp = iota
	// OpUnion is set union.
	OpUnion
	// OpIntersection is set intersection.
	OpIntersection
	// OpSubtraction is set difference (left minus right).
	OpSubtraction
	// OpInclusion is the inclusion-count relation. It is not commutative.
	OpInclusion
)

func (op RegionOp) String() string {
	switch op {
	case OpNone:
		return "none"
	case OpUnion:
		return "union"
	case OpIntersection:
		return "intersection"
	case OpSubtraction:
		return "subtraction"
	case OpInclusion:
		return "inclusion"
	default:
		return "unknown"
	}
}

func (op RegionOp) symbol() string {
	switch op {
	case OpUnion:
		return " + "
	case OpIntersection:
		return " * "
	case OpSubtraction:
		return " - "
	case OpInclusion:
		return " ~ "
	default:
		return " ? "
	}
}

// Operand is one side of a RegionExpr: a bare region reference, a nested
// expression, or empty. At most one field is set.
type Operand struct {
	Region *Region
	Expr   *RegionExpr
}

// RegionOperand wraps a bare region reference.
func RegionOperand(r *Region) Operand { return Operand{Region: r} }

// ExprOperand wraps a nested expression.
func ExprOperand(e *RegionExpr) Operand { return Operand{Expr: e} }

// IsRegion reports whether the operand is a bare region reference.
func (o Operand) IsRegion() bool { return o.Region != nil }

// IsEmpty reports whether the operand holds nothing.
func (o Operand) IsEmpty() bool { return o.Region == nil && o.Expr == nil }

// RegionExpr is a node of a region expression tree.
//
// Well-formed trees never contain an OpNone node with both sides populated:
// OpNone nodes hold a single region on the left and nothing on the right.
type RegionExpr struct {
	Op    RegionOp
	Left  Operand
	Right Operand
}

// IsLeaf reports whether e is a bare single-region term.
func (e *RegionExpr) IsLeaf() bool {
	return e != nil && e.Op == OpNone && e.Left.IsRegion() && e.Right.IsEmpty()
}

// Regions returns every referenced region in left-to-right order.
// Regions referenced more than once appear more than once.
func (e *RegionExpr) Regions() []*Region {
	var out []*Region
	e.walk(func(r *Region) { out = append(out, r) })
	return out
}

func (e *RegionExpr) walk(fn func(*Region)) {
	if e == nil {
		return
	}
	for _, side := range [2]Operand{e.Left, e.Right} {
		switch {
		case side.Region != nil:
			fn(side.Region)
		case side.Expr != nil:
			side.Expr.walk(fn)
		}
	}
}

// String renders the expression in infix form, e.g. "(cell,top + cell,bottom) - er,ALL".
func (e *RegionExpr) String() string {
	var sb strings.Builder
	e.write(&sb, false)
	return sb.String()
}

func (e *RegionExpr) write(sb *strings.Builder, nested bool) {
	if e == nil {
		return
	}
	if e.Op == OpNone {
		writeOperand(sb, e.Left)
		return
	}
	if nested {
		sb.WriteByte('(')
	}
	writeOperand(sb, e.Left)
	sb.WriteString(e.Op.symbol())
	writeOperand(sb, e.Right)
	if nested {
		sb.WriteByte(')')
	}
}

func writeOperand(sb *strings.Builder, o Operand) {
	switch {
	case o.Region != nil:
		sb.WriteString(o.Region.QualifiedName())
	case o.Expr != nil:
		o.Expr.write(sb, true)
	}
}
