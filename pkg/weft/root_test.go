package weft_test

import (
	"testing"

	"src.weft.dev/pkg/weft"
	"src.weft.dev/pkg/weft/wefttest"
)

func TestRoot_FirstUpdateBuilds(t *testing.T) {
	r := weft.NewRoot()
	if r.Element() != nil {
		t.Errorf("Element() = %v before first update, want nil", r.Element())
	}
	flags := r.Update(wefttest.Leaf{Data: "a"})
	if !flags.Has(weft.Structure) {
		t.Errorf("first update reported flags %v, want Structure", flags)
	}
	if elem := r.Element().(*wefttest.LeafElem); elem.Data != "a" {
		t.Errorf("element data = %q, want %q", elem.Data, "a")
	}
}

func TestRoot_PanicsOnRootTypeChange(t *testing.T) {
	r := weft.NewRoot()
	r.Update(wefttest.Leaf{Data: "a"})
	checkPanic(t, "root view type changed", func() {
		r.Update(wefttest.Probe{})
	})
}

func TestRoot_DeliverStaleCases(t *testing.T) {
	r := weft.NewRoot()
	if res := r.Deliver(weft.Message{Path: weft.IDPath{1}, Body: "x"}, nil); !res.IsStale() {
		t.Errorf("delivery before build: result = %+v, want stale", res)
	}
	r.Update(wefttest.Leaf{Data: "a"})
	if res := r.Deliver(weft.Message{Body: "x"}, nil); !res.IsStale() {
		t.Errorf("empty path: result = %+v, want stale", res)
	}
	if res := r.Deliver(weft.Message{Path: weft.IDPath{9999}, Body: "x"}, nil); !res.IsStale() {
		t.Errorf("wrong root ID: result = %+v, want stale", res)
	}
}

func TestRoot_ProcessCollectsActions(t *testing.T) {
	var thunk weft.Thunk
	n := 0
	r := weft.NewRoot()
	r.Update(wefttest.Leaf{
		Data: "a",
		OnMessage: func(body, app any) weft.MessageResult {
			n++
			switch body {
			case "act":
				return weft.Action(n)
			case "rebuild":
				return weft.RequestRebuild()
			default:
				return weft.Handled()
			}
		},
		RecordThunk: func(th weft.Thunk) { thunk = th },
	})

	thunk.Send("act")
	thunk.Send("noop")
	thunk.Send("rebuild")
	thunk.Send("act")
	actions, rebuild := r.Process(nil)
	if want := []any{1, 4}; len(actions) != 2 || actions[0] != want[0] || actions[1] != want[1] {
		t.Errorf("actions = %v, want %v", actions, want)
	}
	if !rebuild {
		t.Errorf("rebuild = false, want true")
	}
	if n != 4 {
		t.Errorf("handler called %d times, want 4", n)
	}

	// The queue must be drained.
	if actions, rebuild := r.Process(nil); actions != nil || rebuild {
		t.Errorf("second Process returned %v, %v on an empty queue", actions, rebuild)
	}
}

func TestRoot_AppThreadedToHandlers(t *testing.T) {
	type appState struct{ n int }
	var thunk weft.Thunk
	r := weft.NewRoot()
	r.Update(wefttest.Leaf{
		Data: "a",
		OnMessage: func(body, app any) weft.MessageResult {
			app.(*appState).n++
			return weft.Handled()
		},
		RecordThunk: func(th weft.Thunk) { thunk = th },
	})
	app := &appState{}
	thunk.Send("x")
	r.Process(app)
	if app.n != 1 {
		t.Errorf("app.n = %d, want 1", app.n)
	}
}

func TestRoot_Teardown(t *testing.T) {
	r := weft.NewRoot()
	r.Update(wefttest.Leaf{Data: "a"})
	elem := r.Element().(*wefttest.LeafElem)
	r.Teardown()
	if !elem.TornDown {
		t.Errorf("element not torn down")
	}
}
