package weft_test

import (
	"strconv"
	"testing"

	"src.weft.dev/pkg/weft"
	"src.weft.dev/pkg/weft/wefttest"
)

func TestMemo_SkipsRebuildOnEqualData(t *testing.T) {
	counts := &wefttest.Counts{}
	view := func(n int) weft.View {
		return weft.Memo(n, func(n int) weft.View {
			return wefttest.Leaf{Data: strconv.Itoa(n), Counts: counts}
		})
	}

	r := weft.NewRoot()
	r.Update(view(1))
	if counts.Build != 1 {
		t.Fatalf("Build count = %d, want 1", counts.Build)
	}

	r.Update(view(1))
	r.Update(view(1))
	if counts.Rebuild != 0 {
		t.Errorf("Rebuild count = %d after equal-data updates, want 0", counts.Rebuild)
	}

	r.Update(view(2))
	if counts.Rebuild != 1 {
		t.Errorf("Rebuild count = %d, want 1", counts.Rebuild)
	}
	if elem := r.Element().(*wefttest.LeafElem); elem.Data != "2" {
		t.Errorf("element data = %q, want %q", elem.Data, "2")
	}
}

func TestMemo_RequestRebuildMarksDirty(t *testing.T) {
	counts := &wefttest.Counts{}
	var thunk weft.Thunk
	view := func(n int) weft.View {
		return weft.Memo(n, func(n int) weft.View {
			return wefttest.Leaf{
				Data:   strconv.Itoa(n),
				Counts: counts,
				OnMessage: func(body, app any) weft.MessageResult {
					return weft.RequestRebuild()
				},
				RecordThunk: func(th weft.Thunk) { thunk = th },
			}
		})
	}

	r := weft.NewRoot()
	r.Update(view(1))

	thunk.Send("poke")
	_, rebuild := r.Process(nil)
	if !rebuild {
		t.Fatalf("Process did not report a rebuild request")
	}

	// Data is unchanged, but the dirty bit forces one rebuild through.
	r.Update(view(1))
	if counts.Rebuild != 1 {
		t.Errorf("Rebuild count = %d, want 1", counts.Rebuild)
	}
	r.Update(view(1))
	if counts.Rebuild != 1 {
		t.Errorf("Rebuild count = %d after dirty bit cleared, want 1", counts.Rebuild)
	}
}

func TestCached_CustomPredicate(t *testing.T) {
	counts := &wefttest.Counts{}
	// Only the length of the data matters to the predicate.
	view := func(s string) weft.View {
		return weft.Cached(s,
			func(prev, cur string) bool { return len(prev) != len(cur) },
			func(s string) weft.View {
				return wefttest.Leaf{Data: s, Counts: counts}
			})
	}

	r := weft.NewRoot()
	r.Update(view("aa"))
	r.Update(view("bb"))
	if counts.Rebuild != 0 {
		t.Errorf("Rebuild count = %d for same-length data, want 0", counts.Rebuild)
	}
	r.Update(view("ccc"))
	if counts.Rebuild != 1 {
		t.Errorf("Rebuild count = %d, want 1", counts.Rebuild)
	}
}

func TestMemo_MessagesReachInnerView(t *testing.T) {
	var got any
	view := weft.Memo("x", func(string) weft.View {
		return wefttest.Leaf{
			Data: "x",
			OnMessage: func(body, app any) weft.MessageResult {
				got = body
				return weft.Action(body)
			},
			RecordThunk: func(th weft.Thunk) { th.Send("hello") },
		}
	})

	r := weft.NewRoot()
	r.Update(view)
	actions, _ := r.Process(nil)
	if got != "hello" {
		t.Errorf("inner handler got %v, want %q", got, "hello")
	}
	if len(actions) != 1 || actions[0] != "hello" {
		t.Errorf("actions = %v, want [hello]", actions)
	}
}
