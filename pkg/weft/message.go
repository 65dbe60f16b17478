package weft

// Message is an addressed payload delivered to the view tree, typically
// originating from a backend event callback that captured a [Thunk] at build
// time.
type Message struct {
	Path IDPath
	Body any
}

type resultKind uint8

const (
	resultStale resultKind = iota
	resultHandled
	resultRebuild
	resultAction
)

// MessageResult is the outcome of routing a message:
//
//   - [Action]: the message was consumed and produced an application-level
//     action for the host to act on.
//
//   - [Handled]: the message was consumed without producing an action.
//
//   - [RequestRebuild]: the message was consumed and the handling subtree
//     wants to be rebuilt on the next pass even if its inputs look unchanged
//     (consumed by [Cached] to mark itself dirty).
//
//   - [Stale]: nothing at the addressed path consumed the message. This is a
//     routine outcome, not an error: it is how deliveries to since-removed or
//     since-replaced subtrees are absorbed. The body is returned unchanged so
//     the caller may try elsewhere or discard it.
type MessageResult struct {
	kind   resultKind
	action any
	body   any
}

// Action returns a result reporting that the message produced an
// application-level action.
func Action(action any) MessageResult {
	return MessageResult{kind: resultAction, action: action}
}

// Handled returns a result reporting that the message was consumed without
// producing an action.
func Handled() MessageResult { return MessageResult{kind: resultHandled} }

// RequestRebuild returns a result reporting that the message was consumed
// and the handling subtree requests a forced rebuild.
func RequestRebuild() MessageResult { return MessageResult{kind: resultRebuild} }

// Stale returns a result reporting that the message was not consumed; body is
// the original, unmodified payload.
func Stale(body any) MessageResult { return MessageResult{kind: resultStale, body: body} }

// IsStale reports whether nothing consumed the message.
func (r MessageResult) IsStale() bool { return r.kind == resultStale }

// HasAction reports whether the message produced an application-level action.
func (r MessageResult) HasAction() bool { return r.kind == resultAction }

// ActionValue returns the action produced by the handler, or nil if the
// result is not an action.
func (r MessageResult) ActionValue() any { return r.action }

// NeedsRebuild reports whether the handling subtree requested a forced
// rebuild.
func (r MessageResult) NeedsRebuild() bool { return r.kind == resultRebuild }

// StaleBody returns the unconsumed payload of a stale result, or nil for any
// other result.
func (r MessageResult) StaleBody() any { return r.body }

// Or returns r unless it is stale, in which case it returns f applied to the
// unconsumed body. It chains routing attempts across siblings.
func (r MessageResult) Or(f func(body any) MessageResult) MessageResult {
	if r.kind == resultStale {
		return f(r.body)
	}
	return r
}

// Thunk captures an addressing path at build time so that an asynchronous
// callback can later deliver a message to the exact node that created it. If
// the node has since been removed or replaced, delivery through the thunk
// yields a stale result instead of reaching an unrelated node.
type Thunk struct {
	path IDPath
	send func(Message)
}

// Send delivers body to the captured path through the message sink of the Cx
// the thunk was created from.
func (t Thunk) Send(body any) {
	if t.send == nil {
		panic("weft: Thunk.Send with no message sink; build the tree under a Root")
	}
	t.send(Message{Path: t.Path(), Body: body})
}

// Path returns a copy of the captured addressing path.
func (t Thunk) Path() IDPath {
	path := make(IDPath, len(t.path))
	copy(path, t.path)
	return path
}
