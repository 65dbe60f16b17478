package weft

import "reflect"

// Seq is the capability interface for an ordered, possibly variable-length
// group of views reconciled as a unit. A Seq edits its portion of the
// parent's element collection through an [ElementSplice]; sibling sequences
// are visited in declaration order, so each one finds the splice cursor at
// the start of its own elements.
//
// Count must be answerable from state alone, without the current view: it is
// what lets an ancestor delete a whole subtree's elements without walking it.
type Seq interface {
	// SeqBuild builds all views in the sequence, pushing their elements, and
	// returns the sequence state.
	SeqBuild(cx *Cx, els ElementSplice) any
	// SeqRebuild reconciles against the previous sequence value, updating
	// state and elements in place. prev must be the value state was last
	// reconciled against.
	SeqRebuild(cx *Cx, prev Seq, state any, els ElementSplice) ChangeFlags
	// SeqTeardown tears down all views in the sequence and deletes their
	// elements from the splice.
	SeqTeardown(state any, els ElementSplice)
	// SeqMessage routes a message whose path begins at one of this
	// sequence's children.
	SeqMessage(path IDPath, state any, body any, app any) MessageResult
	// Count returns how many elements this sequence currently owns.
	Count(state any) int
}

// One adapts a single [View] into a [Seq] owning exactly one element.
func One(v View) Seq { return oneSeq{v} }

type oneSeq struct{ view View }

type oneState struct {
	id    ID
	state any
}

func (s oneSeq) SeqBuild(cx *Cx, els ElementSplice) any {
	id, state, elem := s.view.Build(cx)
	els.Push(Pod{Elem: elem, ID: id})
	return &oneState{id: id, state: state}
}

func (s oneSeq) SeqRebuild(cx *Cx, prev Seq, state any, els ElementSplice) ChangeFlags {
	p := mustPrev[oneSeq](prev)
	st := state.(*oneState)
	if reflect.TypeOf(s.view) != reflect.TypeOf(p.view) {
		panic("weft: view type changed at a stable position; use OneOf or Any for alternation")
	}
	return els.Mutate(func(pod *Pod) ChangeFlags {
		return s.view.Rebuild(cx, p.view, st.id, st.state, pod)
	})
}

func (s oneSeq) SeqTeardown(state any, els ElementSplice) {
	st := state.(*oneState)
	els.Delete(1, func(pod *Pod) {
		s.view.Teardown(st.state, pod)
	})
}

func (s oneSeq) SeqMessage(path IDPath, state any, body any, app any) MessageResult {
	st := state.(*oneState)
	if len(path) > 0 && path[0] == st.id {
		return s.view.Message(path[1:], st.state, body, app)
	}
	return Stale(body)
}

func (s oneSeq) Count(any) int { return 1 }

// Frag combines a fixed number of possibly heterogeneous sequences into one.
// Every position is reconciled unconditionally, in declaration order; the
// number of positions must not change between updates.
func Frag(children ...Seq) Seq { return fragSeq(children) }

type fragSeq []Seq

func (s fragSeq) SeqBuild(cx *Cx, els ElementSplice) any {
	states := make([]any, len(s))
	for i, c := range s {
		states[i] = c.SeqBuild(cx, els)
	}
	return states
}

func (s fragSeq) SeqRebuild(cx *Cx, prev Seq, state any, els ElementSplice) ChangeFlags {
	p := mustPrev[fragSeq](prev)
	states := state.([]any)
	if len(p) != len(s) || len(states) != len(s) {
		panic("weft: Frag changed its number of positions; use List for growable sequences")
	}
	var flags ChangeFlags
	for i, c := range s {
		flags |= c.SeqRebuild(cx, p[i], states[i], els)
	}
	return flags
}

func (s fragSeq) SeqTeardown(state any, els ElementSplice) {
	states := state.([]any)
	for i, c := range s {
		c.SeqTeardown(states[i], els)
	}
}

func (s fragSeq) SeqMessage(path IDPath, state any, body any, app any) MessageResult {
	states := state.([]any)
	res := Stale(body)
	for i, c := range s {
		res = res.Or(func(b any) MessageResult {
			return c.SeqMessage(path, states[i], b, app)
		})
	}
	return res
}

func (s fragSeq) Count(state any) int {
	states := state.([]any)
	n := 0
	for i, c := range s {
		n += c.Count(states[i])
	}
	return n
}

// List reconciles a growable, homogeneous list of sequences. Positions up to
// the shorter of the old and new lengths are rebuilt in place; a shorter new
// list tears down and deletes the dropped tail, a longer one builds and
// appends the new tail.
func List(items ...Seq) Seq { return listSeq(items) }

type listSeq []Seq

type listState struct {
	items []any
}

func (s listSeq) SeqBuild(cx *Cx, els ElementSplice) any {
	st := &listState{items: make([]any, len(s))}
	for i, c := range s {
		st.items[i] = c.SeqBuild(cx, els)
	}
	return st
}

func (s listSeq) SeqRebuild(cx *Cx, prev Seq, state any, els ElementSplice) ChangeFlags {
	p := mustPrev[listSeq](prev)
	st := state.(*listState)
	if len(st.items) != len(p) {
		panic("weft: list state does not match the previous sequence")
	}
	var flags ChangeFlags
	n, pn := len(s), len(p)
	for i := 0; i < min(n, pn); i++ {
		flags |= s[i].SeqRebuild(cx, p[i], st.items[i], els)
	}
	switch {
	case n < pn:
		want := 0
		for i := n; i < pn; i++ {
			want += p[i].Count(st.items[i])
		}
		before := els.Deleted()
		for i := n; i < pn; i++ {
			p[i].SeqTeardown(st.items[i], els)
		}
		if got := els.Deleted() - before; got != want {
			panic("weft: list tail accounted for a different number of elements than it owned")
		}
		clear(st.items[n:])
		st.items = st.items[:n]
		flags |= Structure
	case n > pn:
		for i := pn; i < n; i++ {
			st.items = append(st.items, s[i].SeqBuild(cx, els))
		}
		flags |= Structure
	}
	return flags
}

func (s listSeq) SeqTeardown(state any, els ElementSplice) {
	st := state.(*listState)
	for i, c := range s {
		c.SeqTeardown(st.items[i], els)
	}
}

func (s listSeq) SeqMessage(path IDPath, state any, body any, app any) MessageResult {
	st := state.(*listState)
	res := Stale(body)
	for i, c := range s {
		res = res.Or(func(b any) MessageResult {
			return c.SeqMessage(path, st.items[i], b, app)
		})
	}
	return res
}

func (s listSeq) Count(state any) int {
	st := state.(*listState)
	n := 0
	for i, c := range s {
		n += c.Count(st.items[i])
	}
	return n
}

// Option wraps a sequence that may be absent; pass nil for absence. An
// absent-to-present transition builds the inner sequence and reports a
// structural change; the reverse tears it down and deletes exactly the
// elements it owned.
func Option(s Seq) Seq { return optionSeq{s} }

type optionSeq struct{ inner Seq }

type optionState struct {
	state any
	some  bool
}

func (s optionSeq) SeqBuild(cx *Cx, els ElementSplice) any {
	if s.inner == nil {
		return &optionState{}
	}
	return &optionState{state: s.inner.SeqBuild(cx, els), some: true}
}

func (s optionSeq) SeqRebuild(cx *Cx, prev Seq, state any, els ElementSplice) ChangeFlags {
	p := mustPrev[optionSeq](prev)
	st := state.(*optionState)
	if st.some != (p.inner != nil) {
		panic("weft: optional state does not match the previous value")
	}
	switch {
	case s.inner != nil && p.inner != nil:
		return s.inner.SeqRebuild(cx, p.inner, st.state, els)
	case s.inner == nil && p.inner != nil:
		p.inner.SeqTeardown(st.state, els)
		st.state, st.some = nil, false
		return Structure
	case s.inner != nil && p.inner == nil:
		st.state, st.some = s.inner.SeqBuild(cx, els), true
		return Structure
	default:
		return 0
	}
}

func (s optionSeq) SeqTeardown(state any, els ElementSplice) {
	st := state.(*optionState)
	if !st.some {
		return
	}
	if s.inner == nil {
		panic("weft: optional state does not match the previous value")
	}
	s.inner.SeqTeardown(st.state, els)
}

func (s optionSeq) SeqMessage(path IDPath, state any, body any, app any) MessageResult {
	st := state.(*optionState)
	if s.inner == nil || !st.some {
		return Stale(body)
	}
	return s.inner.SeqMessage(path, st.state, body, app)
}

func (s optionSeq) Count(state any) int {
	st := state.(*optionState)
	if s.inner == nil || !st.some {
		return 0
	}
	return s.inner.Count(st.state)
}

// mustPrev asserts that a previous sequence value has the expected concrete
// type; anything else is a contract violation by the caller.
func mustPrev[S Seq](prev Seq) S {
	p, ok := prev.(S)
	if !ok {
		panic("weft: sequence shape changed at a stable position")
	}
	return p
}
