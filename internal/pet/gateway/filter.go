package gateway

import (
	"fmt"
	"strings"

	"go.einride.tech/aip/filtering"
	expr "google.golang.org/genproto/googleapis/api/expr/v1alpha1"

	"github.com/louisbranch/menagerie/internal/pet"
)

// filterDeclarations declares the filterable mid-level fields.
func filterDeclarations() (*filtering.Declarations, error) {
	return filtering.NewDeclarations(
		filtering.DeclareStandardFunctions(),
		filtering.DeclareIdent("hair_color", filtering.TypeString),
		filtering.DeclareIdent("breed", filtering.TypeString),
		filtering.DeclareIdent("has_hair", filtering.TypeBool),
	)
}

// parseFilter parses an AIP-160 filter expression over the mammal fields.
// A blank expression parses to nil, meaning match-all.
func parseFilter(filterStr string) (*expr.Expr, error) {
	if strings.TrimSpace(filterStr) == "" {
		return nil, nil
	}
	decls, err := filterDeclarations()
	if err != nil {
		return nil, fmt.Errorf("declare filter fields: %w", err)
	}
	parsed, err := filtering.ParseFilterString(filterStr, decls)
	if err != nil {
		return nil, fmt.Errorf("parse filter: %w", err)
	}
	return parsed.CheckedExpr.Expr, nil
}

// mammalResolver resolves filter field names against one mid-level
// fragment.
func mammalResolver(data pet.MammalData) resolver {
	return func(name string) (any, bool) {
		switch name {
		case "hair_color":
			return data.HairColor, true
		case "breed":
			return data.Breed, true
		case "has_hair":
			return data.HasHair, true
		default:
			return nil, false
		}
	}
}
