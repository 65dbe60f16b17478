package weft

// VecSplice applies positional edits to an ordered slice with work
// proportional to the number of changed elements. A cursor ix separates the
// prefix already finalized for the current pass from the old tail; elements
// displaced from the tail are parked in a scratch slice (in reverse order, so
// that pulling them back is a simple pop) until a later edit reuses or
// discards them.
//
// Operations past the end of the logically available elements indicate that
// the caller misreported its element counts and panic.
type VecSplice[T any] struct {
	v       *[]T
	scratch *[]T
	ix      int
}

// NewVecSplice returns a splice editing *v, parking displaced elements in
// *scratch. Scratch must be empty at the start of a pass and is empty again
// after a complete pass.
func NewVecSplice[T any](v, scratch *[]T) *VecSplice[T] {
	return &VecSplice[T]{v: v, scratch: scratch}
}

// Skip retains the next n elements unchanged, pulling them back from scratch
// if earlier edits displaced them.
func (s *VecSplice[T]) Skip(n int) {
	if len(*s.v) < s.ix+n {
		s.unscratch(max(len(*s.scratch)-n, 0))
	}
	if len(*s.v) < s.ix+n {
		panic("weft: splice skip past the end of available elements")
	}
	s.ix += n
}

// Delete removes the next n elements. Elements still present in the tail are
// displaced into scratch first so that a later Skip can still reach the
// elements beyond them.
func (s *VecSplice[T]) Delete(n int) {
	l := len(*s.v)
	delEnd := s.ix + n
	switch {
	case l < delEnd:
		d := delEnd - max(l, s.ix)
		sc := *s.scratch
		if d > len(sc) {
			panic("weft: splice delete past the end of available elements")
		}
		clear(sc[len(sc)-d:])
		*s.scratch = sc[:len(sc)-d]
	case l > delEnd:
		for i := l - 1; i >= delEnd; i-- {
			*s.scratch = append(*s.scratch, (*s.v)[i])
		}
	}
	*s.v = (*s.v)[:s.ix]
}

// Push inserts a brand-new element at the cursor, displacing any remaining
// tail into scratch.
func (s *VecSplice[T]) Push(value T) {
	s.clearTail()
	*s.v = append(*s.v, value)
	s.ix++
}

// Mutate returns a handle to the element at the cursor for in-place edits,
// materializing it from scratch if necessary, and advances the cursor. The
// handle is only valid until the next operation on the splice.
func (s *VecSplice[T]) Mutate() *T {
	if len(*s.v) == s.ix {
		sc := *s.scratch
		if len(sc) == 0 {
			panic("weft: splice mutate past the end of available elements")
		}
		*s.v = append(*s.v, sc[len(sc)-1])
		var zero T
		sc[len(sc)-1] = zero
		*s.scratch = sc[:len(sc)-1]
	}
	ix := s.ix
	s.ix++
	return &(*s.v)[ix]
}

// Len returns the number of elements finalized so far in this pass.
func (s *VecSplice[T]) Len() int { return s.ix }

// AsSlice displaces the unprocessed tail into scratch, exposes the backing
// slice to f for bulk edits, and finalizes everything f left in it, resetting
// the cursor to the new end. Displaced elements stay reachable: a later Skip
// or Mutate pulls them back from scratch in order. It is the escape hatch for
// callers that batch-append without per-element tracking.
func (s *VecSplice[T]) AsSlice(f func(*[]T)) {
	s.clearTail()
	f(s.v)
	s.ix = len(*s.v)
}

// forNext visits the next n logical elements, in order, without consuming
// them.
func (s *VecSplice[T]) forNext(n int, f func(*T)) {
	for i := s.ix; n > 0 && i < len(*s.v); i++ {
		f(&(*s.v)[i])
		n--
	}
	sc := *s.scratch
	for i := len(sc) - 1; n > 0 && i >= 0; i-- {
		f(&sc[i])
		n--
	}
	if n > 0 {
		panic("weft: splice visit past the end of available elements")
	}
}

// unscratch moves scratch[from:] back to the end of v, restoring the original
// order.
func (s *VecSplice[T]) unscratch(from int) {
	sc := *s.scratch
	for i := len(sc) - 1; i >= from; i-- {
		*s.v = append(*s.v, sc[i])
	}
	clear(sc[from:])
	*s.scratch = sc[:from]
}

// clearTail displaces everything at or beyond the cursor into scratch.
func (s *VecSplice[T]) clearTail() {
	if l := len(*s.v); l > s.ix {
		for i := l - 1; i >= s.ix; i-- {
			*s.scratch = append(*s.scratch, (*s.v)[i])
		}
		*s.v = (*s.v)[:s.ix]
	}
}

// ElementSplice is the write interface a [Seq] uses to edit its portion of
// the parent's ordered element collection during a reconciliation pass. It is
// implemented by the engine on top of [VecSplice]; sequences only consume it.
type ElementSplice interface {
	// Push appends a freshly built element at the cursor.
	Push(pod Pod)
	// Mutate invokes f with the element at the cursor for in-place updates
	// and advances past it. The pod pointer must not be retained after f
	// returns. Mutate returns f's change summary.
	Mutate(f func(pod *Pod) ChangeFlags) ChangeFlags
	// Delete removes the next n elements, invoking tear (if non-nil) on each
	// before removal so its owner can release resources.
	Delete(n int, tear func(pod *Pod))
	// Len returns the number of elements finalized so far in this pass.
	Len() int
	// Deleted returns the total number of elements deleted in this pass,
	// used for element-count accounting checks.
	Deleted() int
}

// podSplice implements ElementSplice over a VecSplice of pods, journaling
// positional mutations into the Cx so the owning element view can later
// apply them to its backend children.
type podSplice struct {
	cx *Cx // nil during teardown outside a pass
	*VecSplice[Pod]
	deleted int
}

func newPodSplice(cx *Cx, pods, scratch *[]Pod) *podSplice {
	return &podSplice{cx: cx, VecSplice: NewVecSplice(pods, scratch)}
}

func (s *podSplice) Push(pod Pod) {
	s.VecSplice.Push(pod)
	if s.cx != nil {
		s.cx.insertChild(pod.ID)
	}
}

func (s *podSplice) Mutate(f func(pod *Pod) ChangeFlags) ChangeFlags {
	pod := s.VecSplice.Mutate()
	oldID := pod.ID
	flags := f(pod)
	if s.cx != nil {
		// A structural change or identity change at this position means the
		// retained child the parent holds is no longer the right object;
		// record a replacement instead of a skip.
		if flags.Has(Structure) || pod.ID != oldID {
			s.cx.deleteChildren(1)
			s.cx.insertChild(pod.ID)
		} else {
			s.cx.skipChild()
		}
	}
	return flags
}

func (s *podSplice) Delete(n int, tear func(pod *Pod)) {
	if tear != nil {
		s.forNext(n, tear)
	}
	s.VecSplice.Delete(n)
	s.deleted += n
	if s.cx != nil {
		s.cx.deleteChildren(n)
	}
}

func (s *podSplice) Deleted() int { return s.deleted }

// finish verifies the post-pass invariants: every old element was either
// finalized or deleted, and the scratch buffer is empty.
func (s *podSplice) finish() {
	if len(*s.scratch) != 0 || s.ix != len(*s.v) {
		panic("weft: sequence did not account for all of its elements")
	}
}
