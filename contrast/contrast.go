// Package contrast computes WCAG relative-luminance contrast ratios and
// classifies them against configurable per-context thresholds.
package contrast

import (
	"fmt"

	"github.com/oklint-cli/oklint/key"
	"github.com/oklint-cli/oklint/oklch"
	"github.com/spf13/viper"
)

// Context identifies the usage context of a foreground/background pair,
// which determines the applicable threshold.
type Context string

const (
	// Body is regular body text. WCAG AA requires 4.5:1.
	Body Context = "body"
	// Large is large text or UI components. WCAG AA requires 3:1.
	Large Context = "large"
)

// ParseContext decodes a context identifier from token files and CLI flags.
func ParseContext(s string) (Context, error) {
	switch Context(s) {
	case Body, Large:
		return Context(s), nil
	default:
		return "", &ConfigError{Reason: fmt.Sprintf("unknown context %q, expected %q or %q", s, Body, Large)}
	}
}

// InvalidInputError reports an input the evaluator cannot compute a ratio
// for, such as a fully transparent foreground.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return e.Reason
}

// ConfigError reports an unusable configuration: a non-positive threshold, a
// duplicate palette role, or a rule referencing a role that does not exist.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return e.Reason
}

// Policy holds the minimum ratio per context. Thresholds are configuration
// inputs, not hard-coded, so stricter custom policies can be enforced.
type Policy struct {
	Body  float64
	Large float64
}

// DefaultPolicy returns the WCAG AA thresholds.
func DefaultPolicy() Policy {
	return Policy{Body: 4.5, Large: 3.0}
}

// PolicyFromConfig builds a Policy from the global configuration.
func PolicyFromConfig() Policy {
	return Policy{
		Body:  viper.GetFloat64(key.ThresholdsBody),
		Large: viper.GetFloat64(key.ThresholdsLarge),
	}
}

// Validate rejects non-positive thresholds.
func (p Policy) Validate() error {
	if p.Body <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("non-positive body threshold: %v", p.Body)}
	}
	if p.Large <= 0 {
		return &ConfigError{Reason: fmt.Sprintf("non-positive large threshold: %v", p.Large)}
	}
	return nil
}

// Threshold returns the minimum ratio applicable to the given context.
func (p Policy) Threshold(ctx Context) float64 {
	if ctx == Large {
		return p.Large
	}
	return p.Body
}

// Luminance computes the WCAG relative luminance of a color: the weighted
// sum of its linear-light channels.
func Luminance(c oklch.RGB) float64 {
	r, g, b := c.Linearize()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// Ratio computes the contrast ratio between two colors. The result is
// symmetric in its arguments and always >= 1.
func Ratio(a, b oklch.RGB) float64 {
	la, lb := Luminance(a), Luminance(b)
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}

// Evaluation is the outcome of classifying a single foreground/background
// pair against a policy.
type Evaluation struct {
	Ratio     float64 `json:"ratio"`
	Threshold float64 `json:"threshold"`
	Context   Context `json:"context"`
	Pass      bool    `json:"pass"`
}

// Evaluate computes the contrast ratio between a foreground and background
// color and classifies it against the policy threshold for the context.
//
// A fully transparent foreground is rejected: contrast against a transparent
// layer is undefined without a composited backdrop, and compositing is out
// of scope.
func Evaluate(fg, bg oklch.RGB, ctx Context, p Policy) (Evaluation, error) {
	if err := p.Validate(); err != nil {
		return Evaluation{}, err
	}
	if fg.A == 0 {
		return Evaluation{}, &InvalidInputError{Reason: "fully transparent foreground has no defined contrast"}
	}

	threshold := p.Threshold(ctx)
	ratio := Ratio(fg, bg)

	return Evaluation{
		Ratio:     ratio,
		Threshold: threshold,
		Context:   ctx,
		Pass:      ratio >= threshold,
	}, nil
}
