package weft

// Memo skips rebuilding the view returned by build as long as data compares
// equal to its value from the previous rebuild. The build function must be
// pure: it may only depend on data.
//
// A memoized subtree is still rebuilt when one of its own views asks for it by
// returning [RequestRebuild] from Message.
func Memo[D comparable](data D, build func(data D) View) View {
	return Cached(data, func(prev, cur D) bool { return prev != cur }, build)
}

// Cached is like [Memo], but uses an explicit change predicate instead of ==,
// so data does not have to be comparable.
func Cached[D any](data D, changed func(prev, cur D) bool, build func(data D) View) View {
	return cachedView[D]{data, changed, build}
}

type cachedView[D any] struct {
	data    D
	changed func(prev, cur D) bool
	build   func(data D) View
}

type cachedState struct {
	view  View
	state any
	dirty bool
}

func (v cachedView[D]) Build(cx *Cx) (ID, any, Element) {
	inner := v.build(v.data)
	id, state, elem := inner.Build(cx)
	// Transparent: the inner view's ID is reported as our own, so message
	// paths are unaffected by the wrapper.
	return id, &cachedState{view: inner, state: state}, elem
}

func (v cachedView[D]) Rebuild(cx *Cx, prev View, id ID, state any, pod *Pod) ChangeFlags {
	p := prev.(cachedView[D])
	st := state.(*cachedState)
	dirty := st.dirty
	st.dirty = false
	if !dirty && !v.changed(p.data, v.data) {
		return 0
	}
	inner := v.build(v.data)
	flags := inner.Rebuild(cx, st.view, id, st.state, pod)
	st.view = inner
	return flags
}

func (v cachedView[D]) Teardown(state any, pod *Pod) {
	st := state.(*cachedState)
	st.view.Teardown(st.state, pod)
}

func (v cachedView[D]) Message(path IDPath, state any, body any, app any) MessageResult {
	st := state.(*cachedState)
	r := st.view.Message(path, st.state, body, app)
	if r.NeedsRebuild() {
		st.dirty = true
	}
	return r
}
