package types

import "strings"

// Array is an ordered, heterogeneous sequence of values.
type Array struct {
	Elements []Value
}

func (a *Array) Kind() Kind { return ARRAY }
func (a *Array) String() string {
	parts := make([]string, len(a.Elements))
	for i, el := range a.Elements {
		parts[i] = el.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
