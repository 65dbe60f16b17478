package dom

import "src.weft.dev/pkg/weft"

// T returns a view rendering a text node.
func T(data string) TextView { return TextView{data} }

// TextView is a view building a [Text] node.
type TextView struct {
	Data string
}

func (v TextView) Build(cx *weft.Cx) (weft.ID, any, weft.Element) {
	return cx.NextID(), nil, &Text{Data: v.Data}
}

func (v TextView) Rebuild(cx *weft.Cx, prev weft.View, id weft.ID, state any, pod *weft.Pod) weft.ChangeFlags {
	if p := prev.(TextView); v.Data != p.Data {
		pod.Elem.(*Text).Data = v.Data
		return weft.OtherChange
	}
	return 0
}

func (v TextView) Teardown(state any, pod *weft.Pod) {
	pod.Elem.(*Text).dead = true
}

func (v TextView) Message(path weft.IDPath, state any, body any, app any) weft.MessageResult {
	return weft.Stale(body)
}
