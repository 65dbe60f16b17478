package dom

import (
	"fmt"
	"slices"

	"src.weft.dev/pkg/weft"
)

// ElView is a view building an [Elem]. Values are immutable; [ElView.Attr]
// and [ElView.On] return modified copies, so partially applied element views
// can be shared and extended.
type ElView struct {
	tag      string
	attrs    []Attr
	handlers []handlerEntry
	children weft.Seq
}

type handlerEntry struct {
	event string
	h     Handler
}

// El returns an element view with the given tag and children. Void tags take
// no children; passing any panics.
func El(tag string, children ...weft.Seq) ElView {
	if tagOf(tag).Void && len(children) > 0 {
		panic(fmt.Sprintf("dom: void element <%s> cannot have children", tag))
	}
	return ElView{tag: tag, children: weft.Frag(children...)}
}

// Attr returns a copy of v with the attribute set. Setting the same name
// again overrides the earlier value.
func (v ElView) Attr(name, value string) ElView {
	v.attrs = append(v.attrs[:len(v.attrs):len(v.attrs)], Attr{name, value})
	return v
}

// On returns a copy of v handling the named event.
func (v ElView) On(event string, h Handler) ElView {
	v.handlers = append(v.handlers[:len(v.handlers):len(v.handlers)],
		handlerEntry{event, h})
	return v
}

func (v ElView) handler(event string) Handler {
	for _, e := range v.handlers {
		if e.event == event {
			return e.h
		}
	}
	return nil
}

type elState struct {
	children any
	kids     []weft.Pod
	scratch  []weft.Pod
}

func (v ElView) Build(cx *weft.Cx) (weft.ID, any, weft.Element) {
	st := &elState{}
	id, chState := cx.BuildChildren(v.children, &st.kids)
	st.children = chState
	el := &Elem{Tag: v.tag, Attrs: normalizeAttrs(v.attrs), thunk: cx.Thunk(id)}
	for _, p := range st.kids {
		el.Kids = append(el.Kids, p.Elem.(Node))
	}
	return id, st, el
}

func (v ElView) Rebuild(cx *weft.Cx, prev weft.View, id weft.ID, state any, pod *weft.Pod) weft.ChangeFlags {
	p := prev.(ElView)
	st := state.(*elState)
	el := pod.Elem.(*Elem)

	var flags weft.ChangeFlags
	if v.tag != p.tag {
		// Tag changes recreate the node, like replacing a DOM element.
		nel := &Elem{Tag: v.tag, Attrs: el.Attrs, Kids: el.Kids, thunk: el.thunk}
		el.dead = true
		el = nel
		pod.Elem = nel
		flags |= weft.Structure
	}
	if na := normalizeAttrs(v.attrs); !slices.Equal(na, el.Attrs) {
		el.Attrs = na
		flags |= weft.OtherChange
	}
	flags |= cx.RebuildChildren(id, v.children, p.children, st.children,
		&st.kids, &st.scratch, func(muts []weft.Mutation, pods []weft.Pod) {
			applyMutations(el, muts, pods)
		})
	return flags
}

func (v ElView) Teardown(state any, pod *weft.Pod) {
	st := state.(*elState)
	weft.TeardownChildren(v.children, st.children, &st.kids)
	pod.Elem.(*Elem).dead = true
}

func (v ElView) Message(path weft.IDPath, state any, body any, app any) weft.MessageResult {
	st := state.(*elState)
	if len(path) > 0 {
		return v.children.SeqMessage(path, st.children, body, app)
	}
	ev, ok := body.(Event)
	if !ok {
		panic(fmt.Sprintf("dom: element received message body of type %T, want Event", body))
	}
	h := v.handler(ev.Name)
	if h == nil {
		// The handler may have been removed since the event was fired.
		return weft.Stale(body)
	}
	switch r := h(ev.Data, app); r {
	case nil:
		return weft.Handled()
	case Rebuild:
		return weft.RequestRebuild()
	default:
		return weft.Action(r)
	}
}

// applyMutations edits el.Kids according to the journal of one rebuild pass.
// pods is the reconciled pod slice; inserts take the element at the position
// being edited.
func applyMutations(el *Elem, muts []weft.Mutation, pods []weft.Pod) {
	idx := 0
	for _, m := range muts {
		switch m.Kind {
		case weft.MutationSkip:
			idx += m.N
		case weft.MutationDelete:
			el.Kids = slices.Delete(el.Kids, idx, idx+m.N)
		case weft.MutationInsert:
			el.Kids = slices.Insert(el.Kids, idx, pods[idx].Elem.(Node))
			idx++
		}
	}
}
