package tariff

import (
	"bytes"

	"github.com/google/uuid"
)

// Resolver picks the single applicable rule out of one establishment's catalog.
type Resolver struct {
	rules []Rule
}

func NewResolver(rules []Rule) *Resolver {
	return &Resolver{rules: rules}
}

// Resolve tries the spot template first and the vehicle category second.
// Both steps require the category to match. It never substitutes a default:
// a miss is reported as ErrRuleNotFound.
func (r *Resolver) Resolve(category string, unit BillingUnit, templateID *uuid.UUID) (Rule, error) {
	category = NormalizeCategory(category)

	if templateID != nil {
		if rule, ok := r.pick(func(rule Rule) bool {
			return rule.Unit == unit && rule.Category == category &&
				rule.TemplateID != nil && *rule.TemplateID == *templateID
		}, lessID); ok {
			return rule, nil
		}
	}

	if rule, ok := r.pick(func(rule Rule) bool {
		return rule.Unit == unit && rule.Category == category
	}, func(a, b Rule) bool {
		if a.IsGeneric() != b.IsGeneric() {
			return a.IsGeneric()
		}
		return lessID(a, b)
	}); ok {
		return rule, nil
	}

	return Rule{}, ErrRuleNotFound
}

func (r *Resolver) pick(match func(Rule) bool, better func(a, b Rule) bool) (Rule, bool) {
	var (
		best  Rule
		found bool
	)
	for _, rule := range r.rules {
		if !match(rule) {
			continue
		}
		if !found || better(rule, best) {
			best = rule
			found = true
		}
	}
	return best, found
}

func lessID(a, b Rule) bool {
	return bytes.Compare(a.ID[:], b.ID[:]) < 0
}
