// Package wefttest provides a minimal leaf view and element for testing view
// trees without a real backend.
package wefttest

import "src.weft.dev/pkg/weft"

// LeafElem is the element built by [Leaf].
type LeafElem struct {
	Data     string
	TornDown bool
}

// Counts records lifecycle calls of a [Leaf].
type Counts struct {
	Build, Rebuild, Teardown int
}

// Leaf is a childless view rendering a string.
type Leaf struct {
	Data string
	// OnMessage, if non-nil, handles messages addressed to this leaf. A nil
	// OnMessage reports all such messages as handled.
	OnMessage func(body, app any) weft.MessageResult
	// RecordThunk, if non-nil, is called with a fresh thunk for this leaf on
	// every build and rebuild.
	RecordThunk func(t weft.Thunk)
	// Counts, if non-nil, is incremented on each lifecycle call.
	Counts *Counts
}

func (v Leaf) Build(cx *weft.Cx) (weft.ID, any, weft.Element) {
	id := cx.NextID()
	if v.Counts != nil {
		v.Counts.Build++
	}
	if v.RecordThunk != nil {
		v.RecordThunk(cx.Thunk(id))
	}
	return id, nil, &LeafElem{Data: v.Data}
}

func (v Leaf) Rebuild(cx *weft.Cx, prev weft.View, id weft.ID, state any, pod *weft.Pod) weft.ChangeFlags {
	p := prev.(Leaf)
	if v.Counts != nil {
		v.Counts.Rebuild++
	}
	if v.RecordThunk != nil {
		v.RecordThunk(cx.Thunk(id))
	}
	if v.Data == p.Data {
		return 0
	}
	pod.Elem.(*LeafElem).Data = v.Data
	return weft.OtherChange
}

func (v Leaf) Teardown(state any, pod *weft.Pod) {
	if v.Counts != nil {
		v.Counts.Teardown++
	}
	pod.Elem.(*LeafElem).TornDown = true
}

func (v Leaf) Message(path weft.IDPath, state any, body any, app any) weft.MessageResult {
	if len(path) > 0 {
		return weft.Stale(body)
	}
	if v.OnMessage != nil {
		return v.OnMessage(body, app)
	}
	return weft.Handled()
}

// ProbeElem is the element built by [Probe].
type ProbeElem struct {
	TornDown bool
}

// Probe is a featureless view, useful as a second concrete view type when
// testing type-driven alternation.
type Probe struct{}

func (v Probe) Build(cx *weft.Cx) (weft.ID, any, weft.Element) {
	return cx.NextID(), nil, &ProbeElem{}
}

func (v Probe) Rebuild(cx *weft.Cx, prev weft.View, id weft.ID, state any, pod *weft.Pod) weft.ChangeFlags {
	return 0
}

func (v Probe) Teardown(state any, pod *weft.Pod) {
	pod.Elem.(*ProbeElem).TornDown = true
}

func (v Probe) Message(path weft.IDPath, state any, body any, app any) weft.MessageResult {
	return weft.Stale(body)
}
