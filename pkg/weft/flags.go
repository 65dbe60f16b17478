package weft

// ChangeFlags summarizes what a rebuild changed, as reported to the parent
// position.
type ChangeFlags uint

const (
	// Structure indicates that the element-tree topology at this position
	// changed: children were inserted, removed or replaced, or the element
	// itself was swapped for a new one. The parent must re-attach.
	Structure ChangeFlags = 1 << iota
	// OtherChange indicates a value-only change with no structural
	// consequence, such as new text data or attribute values.
	OtherChange
)

// Has reports whether f contains any of the flags in g.
func (f ChangeFlags) Has(g ChangeFlags) bool { return f&g != 0 }

func (f ChangeFlags) String() string {
	switch {
	case f.Has(Structure) && f.Has(OtherChange):
		return "structure|other"
	case f.Has(Structure):
		return "structure"
	case f.Has(OtherChange):
		return "other"
	default:
		return "none"
	}
}
