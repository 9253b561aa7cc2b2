// Package skills normalizes the raw skills field of a listing into display names.
package skills

import (
	"fmt"
	"strings"
)

// Result is the outcome of parsing a skills field. Exactly one branch is
// meaningful: when Parsed is true Names holds the extracted skill names,
// otherwise Raw holds the original field unchanged.
type Result struct {
	Parsed bool     `json:"parsed"`
	Names  []string `json:"names,omitempty"`
	Raw    string   `json:"raw,omitempty"`
}

// Fallback wraps a raw field that could not be turned into a list of names.
func Fallback(raw string) Result {
	return Result{Raw: raw}
}

// Value returns the display value: the name list when parsed, the raw string otherwise.
func (r Result) Value() any {
	if r.Parsed {
		return r.Names
	}
	return r.Raw
}

// String renders the result for text output.
func (r Result) String() string {
	if r.Parsed {
		return strings.Join(r.Names, ", ")
	}
	return r.Raw
}

// Parse extracts skill names from a literal such as "[{'name': 'Python'}, {'name': 'SQL'}]".
// Malformed input, a non-list value, or an element without a "name" attribute
// yields the Fallback result. Parse never fails.
func Parse(raw string) Result {
	v, err := ParseLiteral(strings.TrimSpace(raw))
	if err != nil {
		return Fallback(raw)
	}

	items, ok := v.([]any)
	if !ok {
		return Fallback(raw)
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		obj, ok := item.(map[string]any)
		if !ok {
			return Fallback(raw)
		}
		name, ok := obj["name"]
		if !ok {
			return Fallback(raw)
		}
		names = append(names, fmt.Sprintf("%v", name))
	}

	return Result{Parsed: true, Names: names}
}
