package gateway

import (
	"fmt"
	"strings"

	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"
)

// resolver returns the value of a filter field for one row.
type resolver func(name string) (any, bool)

// evaluate walks a checked filter expression against one row's fields.
// A nil expression matches everything.
func evaluate(e *expr.Expr, resolve resolver) (bool, error) {
	if e == nil {
		return true, nil
	}
	switch kind := e.ExprKind.(type) {
	case *expr.Expr_CallExpr:
		return evalCall(kind.CallExpr, resolve)
	case *expr.Expr_IdentExpr:
		// Bare identifier, e.g. "has_hair".
		value, ok := resolve(kind.IdentExpr.Name)
		if !ok {
			return false, fmt.Errorf("unknown field: %s", kind.IdentExpr.Name)
		}
		b, ok := value.(bool)
		if !ok {
			return false, fmt.Errorf("field %s is not boolean", kind.IdentExpr.Name)
		}
		return b, nil
	default:
		return false, fmt.Errorf("unsupported expression type: %T", kind)
	}
}

func evalCall(call *expr.Expr_Call, resolve resolver) (bool, error) {
	switch call.Function {
	case "_&&_", "AND":
		if len(call.Args) != 2 {
			return false, fmt.Errorf("AND requires 2 arguments")
		}
		left, err := evaluate(call.Args[0], resolve)
		if err != nil || !left {
			return left, err
		}
		return evaluate(call.Args[1], resolve)
	case "_||_", "OR":
		if len(call.Args) != 2 {
			return false, fmt.Errorf("OR requires 2 arguments")
		}
		left, err := evaluate(call.Args[0], resolve)
		if err != nil || left {
			return left, err
		}
		return evaluate(call.Args[1], resolve)
	case "NOT", "!_":
		if len(call.Args) != 1 {
			return false, fmt.Errorf("NOT requires 1 argument")
		}
		inner, err := evaluate(call.Args[0], resolve)
		if err != nil {
			return false, err
		}
		return !inner, nil
	case "_==_", "=", "_!=_", "!=", "_<_", "<", "_<=_", "<=", "_>_", ">", "_>=_", ">=":
		return evalCompare(call, resolve)
	default:
		return false, fmt.Errorf("unsupported function: %s", call.Function)
	}
}

func evalCompare(call *expr.Expr_Call, resolve resolver) (bool, error) {
	if len(call.Args) != 2 {
		return false, fmt.Errorf("comparison requires 2 arguments")
	}
	ident, ok := call.Args[0].ExprKind.(*expr.Expr_IdentExpr)
	if !ok {
		return false, fmt.Errorf("expected field name, got %T", call.Args[0].ExprKind)
	}
	left, ok := resolve(ident.IdentExpr.Name)
	if !ok {
		return false, fmt.Errorf("unknown field: %s", ident.IdentExpr.Name)
	}
	right, err := constValue(call.Args[1])
	if err != nil {
		return false, err
	}
	cmp, err := compare(left, right)
	if err != nil {
		return false, fmt.Errorf("field %s: %w", ident.IdentExpr.Name, err)
	}
	switch call.Function {
	case "_==_", "=":
		return cmp == 0, nil
	case "_!=_", "!=":
		return cmp != 0, nil
	case "_<_", "<":
		return cmp < 0, nil
	case "_<=_", "<=":
		return cmp <= 0, nil
	case "_>_", ">":
		return cmp > 0, nil
	case "_>=_", ">=":
		return cmp >= 0, nil
	default:
		return false, fmt.Errorf("unsupported operator: %s", call.Function)
	}
}

func constValue(e *expr.Expr) (any, error) {
	c, ok := e.ExprKind.(*expr.Expr_ConstExpr)
	if !ok {
		return nil, fmt.Errorf("expected constant, got %T", e.ExprKind)
	}
	switch kind := c.ConstExpr.ConstantKind.(type) {
	case *expr.Constant_StringValue:
		return kind.StringValue, nil
	case *expr.Constant_BoolValue:
		return kind.BoolValue, nil
	case *expr.Constant_Int64Value:
		return kind.Int64Value, nil
	case *expr.Constant_Uint64Value:
		return kind.Uint64Value, nil
	case *expr.Constant_DoubleValue:
		return kind.DoubleValue, nil
	default:
		return nil, fmt.Errorf("unsupported constant type: %T", kind)
	}
}

func compare(left, right any) (int, error) {
	switch l := left.(type) {
	case string:
		r, ok := right.(string)
		if !ok {
			return 0, fmt.Errorf("type mismatch: string vs %T", right)
		}
		return strings.Compare(l, r), nil
	case bool:
		r, ok := right.(bool)
		if !ok {
			return 0, fmt.Errorf("type mismatch: bool vs %T", right)
		}
		switch {
		case l == r:
			return 0, nil
		case !l:
			return -1, nil
		default:
			return 1, nil
		}
	default:
		lf, ok := toFloat(left)
		if !ok {
			return 0, fmt.Errorf("unsupported value type: %T", left)
		}
		rf, ok := toFloat(right)
		if !ok {
			return 0, fmt.Errorf("type mismatch: number vs %T", right)
		}
		switch {
		case lf < rf:
			return -1, nil
		case lf > rf:
			return 1, nil
		default:
			return 0, nil
		}
	}
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float64:
		return v, true
	default:
		return 0, false
	}
}
