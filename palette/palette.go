// Package palette models named color roles and validates declared
// foreground/background pairings against a contrast policy.
package palette

import (
	"fmt"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/oklint-cli/oklint/contrast"
	"github.com/oklint-cli/oklint/oklch"
	"github.com/samber/lo"
)

// Palette is a mapping from role name to color. Role names are unique by
// construction; insertion order is preserved for deterministic listing.
type Palette struct {
	roles map[string]oklch.Color
	order []string
}

// New returns an empty palette.
func New() *Palette {
	return &Palette{roles: make(map[string]oklch.Color)}
}

// Set registers a role. Inserting a duplicate role name is an error rather
// than a last-write-wins overwrite.
func (p *Palette) Set(role string, c oklch.Color) error {
	if role == "" {
		return &contrast.ConfigError{Reason: "empty role name"}
	}
	if _, exists := p.roles[role]; exists {
		return &contrast.ConfigError{Reason: fmt.Sprintf("duplicate role %q", role)}
	}

	p.roles[role] = c
	p.order = append(p.order, role)
	return nil
}

// Get looks up a role by name.
func (p *Palette) Get(role string) (oklch.Color, bool) {
	c, ok := p.roles[role]
	return c, ok
}

// Roles returns the role names in insertion order.
func (p *Palette) Roles() []string {
	out := make([]string, len(p.order))
	copy(out, p.order)
	return out
}

// Len returns the number of registered roles.
func (p *Palette) Len() int {
	return len(p.order)
}

// errMissingRole builds a ConfigError naming the missing role, including the
// closest registered role as a suggestion when one exists.
func (p *Palette) errMissingRole(role string) error {
	if len(p.order) == 0 {
		return &contrast.ConfigError{Reason: fmt.Sprintf("missing role %q", role)}
	}

	closest := lo.MinBy(p.Roles(), func(a string, b string) bool {
		return levenshtein.Distance(role, a) < levenshtein.Distance(role, b)
	})
	return &contrast.ConfigError{Reason: fmt.Sprintf("missing role %q, did you mean %q?", role, closest)}
}

// Rule declares a single foreground/background pairing to audit.
type Rule struct {
	FG      string           `json:"fg"`
	BG      string           `json:"bg"`
	Context contrast.Context `json:"context"`
}

// Result is the validation outcome for a single rule.
type Result struct {
	Rule Rule
	// FG and BG are the resolved role colors.
	FG, BG oklch.Color
	contrast.Evaluation
}

// Validate applies the contrast policy across the declared rules and returns
// one result per rule, preserving rule order for stable diffable output.
//
// Validation is fail-fast: a rule referencing a role absent from the palette
// aborts the whole run with a ConfigError naming the role, so a malformed
// rule set can never produce a silently incomplete audit. An empty rule set
// yields an empty result and no error.
func Validate(p *Palette, rules []Rule, policy contrast.Policy) ([]Result, error) {
	if err := policy.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(rules))
	for _, rule := range rules {
		fg, ok := p.Get(rule.FG)
		if !ok {
			return nil, p.errMissingRole(rule.FG)
		}
		bg, ok := p.Get(rule.BG)
		if !ok {
			return nil, p.errMissingRole(rule.BG)
		}

		ev, err := contrast.Evaluate(fg.RGB, bg.RGB, rule.Context, policy)
		if err != nil {
			return nil, fmt.Errorf("rule %s on %s: %w", rule.FG, rule.BG, err)
		}

		results = append(results, Result{Rule: rule, FG: fg, BG: bg, Evaluation: ev})
	}

	return results, nil
}
