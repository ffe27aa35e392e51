package customer

import (
	"strings"

	"github.com/insure-planner/go-api-server/internal/model"
)

// Suggestion fields supported by Suggest.
const (
	SuggestInsurer = "insurer"
	SuggestProduct = "product"
)

const maxSuggestions = 5

// Suggest returns up to five distinct contract field values that contain the
// query (case-insensitive), excluding an exact match. Used by the contract
// form's autocomplete.
func Suggest(customers []model.Customer, field, query string) []string {
	q := strings.ToLower(query)
	if q == "" {
		return []string{}
	}

	seen := make(map[string]struct{})
	out := make([]string, 0, maxSuggestions)

	for _, c := range customers {
		for _, con := range c.Contracts {
			var value string
			switch field {
			case SuggestInsurer:
				value = con.Insurer
			case SuggestProduct:
				value = con.ProductName
			default:
				return []string{}
			}

			lower := strings.ToLower(value)
			if !strings.Contains(lower, q) || lower == q {
				continue
			}
			if _, ok := seen[value]; ok {
				continue
			}

			seen[value] = struct{}{}
			out = append(out, value)
			if len(out) == maxSuggestions {
				return out
			}
		}
	}

	return out
}
