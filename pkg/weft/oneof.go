package weft

import "reflect"

// OneOf is a view that renders one of several alternative views, selected by a
// branch index. Unlike [Any], teardown and replacement happen eagerly when the
// branch changes, and a generation counter fences off messages addressed to a
// torn-down branch.
type OneOf struct {
	// Branch selects the active alternative. Rebuilding with a different
	// branch tears down the old view and builds the new one in its place.
	Branch int
	// View is the view for the active branch.
	View View
}

// OneOfA returns a OneOf showing v as the first alternative.
func OneOfA(v View) OneOf { return OneOf{0, v} }

// OneOfB returns a OneOf showing v as the second alternative.
func OneOfB(v View) OneOf { return OneOf{1, v} }

// OneOfN returns a OneOf showing v as the branch-th alternative.
func OneOfN(branch int, v View) OneOf { return OneOf{branch, v} }

type oneOfState struct {
	branch     int
	generation uint64
	innerID    ID
	inner      any
}

func (v OneOf) Build(cx *Cx) (ID, any, Element) {
	own := cx.NextID()
	st := &oneOfState{branch: v.Branch}
	var elem Element
	cx.WithID(own, func() {
		cx.WithID(ID(st.generation), func() {
			st.innerID, st.inner, elem = v.View.Build(cx)
		})
	})
	return own, st, elem
}

func (v OneOf) Rebuild(cx *Cx, prev View, id ID, state any, pod *Pod) ChangeFlags {
	p := prev.(OneOf)
	st := state.(*oneOfState)
	if st.branch != p.Branch {
		panic("OneOf: state does not match the previous value")
	}
	if v.Branch == p.Branch {
		if reflect.TypeOf(v.View) != reflect.TypeOf(p.View) {
			panic("OneOf: view type changed within a branch; switch branches instead")
		}
		var flags ChangeFlags
		cx.WithID(id, func() {
			cx.WithID(ID(st.generation), func() {
				flags = v.View.Rebuild(cx, p.View, st.innerID, st.inner, pod)
			})
		})
		return flags
	}
	p.View.Teardown(st.inner, pod)
	// Wraparound is fine: by the time the counter laps, no thunk from the
	// first lap can still be alive.
	st.generation++
	st.branch = v.Branch
	cx.WithID(id, func() {
		cx.WithID(ID(st.generation), func() {
			var elem Element
			st.innerID, st.inner, elem = v.View.Build(cx)
			pod.Elem = elem
		})
	})
	return Structure
}

func (v OneOf) Teardown(state any, pod *Pod) {
	st := state.(*oneOfState)
	v.View.Teardown(st.inner, pod)
}

func (v OneOf) Message(path IDPath, state any, body any, app any) MessageResult {
	st := state.(*oneOfState)
	if len(path) == 0 {
		return Stale(body)
	}
	if uint64(path[0]) != st.generation {
		// Addressed to a branch that has since been torn down.
		return Stale(body)
	}
	rest := path[1:]
	if len(rest) > 0 && rest[0] == st.innerID {
		return v.View.Message(rest[1:], st.inner, body, app)
	}
	return Stale(body)
}
