package weft

import "reflect"

// Root drives a view tree: it owns the [Cx], the root view's retained state
// and the root [Pod], and queues messages sent from thunks for synchronous
// processing.
//
// A Root is not safe for concurrent use. Build, rebuild and message delivery
// all happen on the caller's goroutine.
type Root struct {
	cx    *Cx
	view  View
	id    ID
	state any
	pod   Pod
	built bool
	queue []Message
}

// NewRoot returns a Root with no view built yet.
func NewRoot() *Root {
	r := &Root{}
	r.cx = NewCx(r.enqueue)
	return r
}

func (r *Root) enqueue(m Message) { r.queue = append(r.queue, m) }

// Update builds the view on the first call, and rebuilds against the previous
// view on subsequent calls. The root view must keep the same concrete type;
// wrap it in [Any] or [OneOf] if it needs to vary.
func (r *Root) Update(v View) ChangeFlags {
	if !r.built {
		id, state, elem := v.Build(r.cx)
		r.view, r.id, r.state = v, id, state
		r.pod = Pod{Elem: elem, ID: id}
		r.built = true
		return Structure
	}
	if reflect.TypeOf(v) != reflect.TypeOf(r.view) {
		panic("Root: root view type changed; wrap the root in Any or OneOf")
	}
	flags := v.Rebuild(r.cx, r.view, r.id, r.state, &r.pod)
	r.view = v
	return flags
}

// Element returns the root element, or nil before the first Update.
func (r *Root) Element() Element { return r.pod.Elem }

// Deliver routes one message down the tree. Messages with an empty path or a
// path not starting at the root view are stale.
func (r *Root) Deliver(m Message, app any) MessageResult {
	if !r.built || len(m.Path) == 0 || m.Path[0] != r.id {
		return Stale(m.Body)
	}
	return r.view.Message(m.Path[1:], r.state, m.Body, app)
}

// PopMessages returns the queued messages and empties the queue.
func (r *Root) PopMessages() []Message {
	q := r.queue
	r.queue = nil
	return q
}

// Process delivers all queued messages, collecting the actions they produce
// and reporting whether any of them requested a rebuild. Stale messages are
// dropped silently.
func (r *Root) Process(app any) (actions []any, rebuild bool) {
	for _, m := range r.PopMessages() {
		res := r.Deliver(m, app)
		if res.HasAction() {
			actions = append(actions, res.ActionValue())
		}
		if res.NeedsRebuild() {
			rebuild = true
		}
	}
	return actions, rebuild
}

// Teardown tears down the view tree. The Root must not be used afterwards.
func (r *Root) Teardown() {
	if r.built {
		r.view.Teardown(r.state, &r.pod)
		r.built = false
	}
}
