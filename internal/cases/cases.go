// Package cases holds the per-product support case counts passed on the
// command line and renders them into the notification body.
package cases

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
)

// Category ties a positional count to the label shown in the notification.
type Category struct {
	// Field is the argument name used in usage and error output
	Field string
	// Label is printed verbatim in the case fragment
	Label string
}

// Categories lists the products in positional argument order.
var Categories = [...]Category{
	{Field: "b2b", Label: "B2Bi"},
	{Field: "activator", Label: "Activator"},
	{Field: "st", Label: "ST"},
	{Field: "cft", Label: "CFT"},
	{Field: "api", Label: "API"},
	{Field: "gateway", Label: "Gateway"},
	{Field: "sentinel", Label: "Sentinel"},
}

// NumCategories is the exact number of positional arguments accepted.
const NumCategories = len(Categories)

// CaseCounts is one count per category, indexed in Categories order.
// Counts have no magnitude limit.
type CaseCounts [NumCategories]*big.Int

// ErrNotInteger is the cause of every ArgumentFormatError.
var ErrNotInteger = errors.New("not an integer")

// ArgumentCountError reports a wrong number of positional arguments.
type ArgumentCountError struct {
	Got int
}

func (e *ArgumentCountError) Error() string {
	return fmt.Sprintf("expected %d case counts, got %d", NumCategories, e.Got)
}

// ArgumentFormatError reports an argument that is not a base-10 integer.
// Err is ErrNotInteger.
type ArgumentFormatError struct {
	Field string
	Value string
	Err   error
}

func (e *ArgumentFormatError) Error() string {
	return fmt.Sprintf("invalid %s count %q: %v", e.Field, e.Value, e.Err)
}

func (e *ArgumentFormatError) Unwrap() error {
	return e.Err
}

// ParseCounts converts the positional arguments into CaseCounts.
// Nothing is parsed unless exactly NumCategories arguments are given.
// Surrounding whitespace and a leading sign are accepted. Parsing stops at
// the first argument that is not an integer.
func ParseCounts(args []string) (CaseCounts, error) {
	var counts CaseCounts
	if len(args) != NumCategories {
		return counts, &ArgumentCountError{Got: len(args)}
	}

	for i, arg := range args {
		n, ok := new(big.Int).SetString(strings.TrimSpace(arg), 10)
		if !ok {
			return CaseCounts{}, &ArgumentFormatError{
				Field: Categories[i].Field,
				Value: arg,
				Err:   ErrNotInteger,
			}
		}
		counts[i] = n
	}
	return counts, nil
}

// Fragments returns "<n> <Label> Case(s)" for every positive count,
// in category order. Zero and negative counts are left out.
func (c CaseCounts) Fragments() []string {
	var parts []string
	for i, n := range c {
		if n != nil && n.Sign() > 0 {
			parts = append(parts, fmt.Sprintf("%s %s Case(s)", n, Categories[i].Label))
		}
	}
	return parts
}

// Message joins the fragments with newlines. It is empty when no count is
// positive.
func (c CaseCounts) Message() string {
	return strings.Join(c.Fragments(), "\n")
}

// Total sums the positive counts.
func (c CaseCounts) Total() *big.Int {
	total := new(big.Int)
	for _, n := range c {
		if n != nil && n.Sign() > 0 {
			total.Add(total, n)
		}
	}
	return total
}

// Strings renders every count in decimal, nil counts as "0".
func (c CaseCounts) Strings() []string {
	out := make([]string, len(c))
	for i, n := range c {
		if n == nil {
			out[i] = "0"
			continue
		}
		out[i] = n.String()
	}
	return out
}

// Usage renders the positional argument list, e.g. "<b2b> <activator> ...".
func Usage() string {
	fields := make([]string, 0, NumCategories)
	for _, cat := range Categories {
		fields = append(fields, "<"+cat.Field+">")
	}
	return strings.Join(fields, " ")
}
