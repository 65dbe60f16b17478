package weft

import "reflect"

// Any erases the concrete type of v, so that a position in the tree can hold
// views of different types across rebuilds. When the concrete type changes,
// the old view is torn down and the new one is built in its place.
//
// Messages addressed to a torn-down view are reported as stale; since IDs are
// never reused, the old inner ID can no longer match.
func Any(v View) View { return anyView{v} }

type anyView struct{ view View }

type anyState struct {
	innerID ID
	inner   any
}

func (v anyView) Build(cx *Cx) (ID, any, Element) {
	own := cx.NextID()
	st := &anyState{}
	var elem Element
	cx.WithID(own, func() {
		st.innerID, st.inner, elem = v.view.Build(cx)
	})
	return own, st, elem
}

func (v anyView) Rebuild(cx *Cx, prev View, id ID, state any, pod *Pod) ChangeFlags {
	p := prev.(anyView)
	st := state.(*anyState)
	if reflect.TypeOf(v.view) == reflect.TypeOf(p.view) {
		var flags ChangeFlags
		cx.WithID(id, func() {
			flags = v.view.Rebuild(cx, p.view, st.innerID, st.inner, pod)
		})
		return flags
	}
	p.view.Teardown(st.inner, pod)
	cx.WithID(id, func() {
		var elem Element
		st.innerID, st.inner, elem = v.view.Build(cx)
		pod.Elem = elem
	})
	return Structure
}

func (v anyView) Teardown(state any, pod *Pod) {
	st := state.(*anyState)
	v.view.Teardown(st.inner, pod)
}

func (v anyView) Message(path IDPath, state any, body any, app any) MessageResult {
	st := state.(*anyState)
	if len(path) > 0 && path[0] == st.innerID {
		return v.view.Message(path[1:], st.inner, body, app)
	}
	return Stale(body)
}
