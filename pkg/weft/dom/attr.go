package dom

import (
	"slices"
	"strings"
)

// Attr is a single element attribute.
type Attr struct{ Name, Value string }

// normalizeAttrs returns a copy of attrs sorted by name, with later values
// overriding earlier ones for the same name.
func normalizeAttrs(attrs []Attr) []Attr {
	out := slices.Clone(attrs)
	slices.SortStableFunc(out, func(a, b Attr) int {
		return strings.Compare(a.Name, b.Name)
	})
	w := 0
	for i, a := range out {
		if i+1 < len(out) && out[i+1].Name == a.Name {
			continue
		}
		out[w] = a
		w++
	}
	return out[:w]
}
