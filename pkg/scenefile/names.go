package scenefile

import (
	"fmt"
	"sort"
	"strings"

	"github.com/plin1112/mcell/pkg/domain"
	"github.com/plin1112/mcell/pkg/dsl"
)

var objectTypes = index(
	domain.ObjectMeta, domain.ObjectPolygon, domain.ObjectBox, domain.ObjectVoxel,
)

// Region and list shapes follow from the region and molecules keys.
var shapes = index(
	domain.ShapeSpherical, domain.ShapeCubic, domain.ShapeEllipsoidal,
	domain.ShapeRectangular, domain.ShapeSphericalShell,
)

var methods = index(
	domain.MethodConstant, domain.MethodGaussian, domain.MethodVolumeDependent,
	domain.MethodConcentration, domain.MethodDensity,
)

var warnLevels = map[string]domain.WarnLevel{
	"ignore":  domain.WarnIgnore,
	"warning": domain.WarnWarning,
	"error":   domain.WarnError,
}

var operators = index(
	domain.OpUnion, domain.OpIntersection, domain.OpSubtraction, domain.OpInclusion,
)

func index[T fmt.Stringer](values ...T) map[string]T {
	m := make(map[string]T, len(values))
	for _, v := range values {
		m[v.String()] = v
	}
	return m
}

func lookup[T any](m map[string]T, name, what string) (T, error) {
	if v, ok := m[strings.ToLower(strings.TrimSpace(name))]; ok {
		return v, nil
	}
	var zero T
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return zero, fmt.Errorf("unknown %s %q (want one of %s)", what, name, strings.Join(keys, ", "))
}

// ParseExpr converts a decoded region expression into a dsl.Expr. A string
// is a qualified region name; a map has exactly one operator key whose
// value lists at least two operands. Longer lists fold left.
func ParseExpr(v any) (dsl.Expr, error) {
	switch x := v.(type) {
	case string:
		if x == "" {
			return nil, fmt.Errorf("empty region name: %w", domain.ErrInvalidExpression)
		}
		return dsl.R(x), nil
	case map[string]any:
		if len(x) != 1 {
			return nil, fmt.Errorf("expression needs exactly one operator, got %d: %w", len(x), domain.ErrInvalidExpression)
		}
		for key, raw := range x {
			op, err := lookup(operators, key, "region operator")
			if err != nil {
				return nil, fmt.Errorf("%w: %w", domain.ErrInvalidExpression, err)
			}
			items, ok := raw.([]any)
			if !ok || len(items) < 2 || (op == domain.OpInclusion && len(items) != 2) {
				return nil, fmt.Errorf("%s needs a list of operands: %w", op, domain.ErrInvalidExpression)
			}
			operands := make([]dsl.Expr, len(items))
			for i, item := range items {
				if operands[i], err = ParseExpr(item); err != nil {
					return nil, err
				}
			}
			e := dsl.Op(op, operands[0], operands[1])
			for _, o := range operands[2:] {
				e = dsl.Op(op, e, o)
			}
			return e, nil
		}
	}
	return nil, fmt.Errorf("unsupported expression %T: %w", v, domain.ErrInvalidExpression)
}
