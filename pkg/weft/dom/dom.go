// Package dom provides an in-memory render tree backend: element and text
// views building [Node] trees, event dispatch through thunks, and HTML
// serialization for inspection.
package dom

import (
	"strings"

	"src.weft.dev/pkg/weft"
)

// Node is a node of the retained render tree.
type Node interface {
	html(sb *strings.Builder)
}

// Elem is an element node. Attrs is kept sorted by name.
type Elem struct {
	Tag   string
	Attrs []Attr
	Kids  []Node

	thunk weft.Thunk
	dead  bool
}

// Text is a text node.
type Text struct {
	Data string

	dead bool
}

// Event is the message body sent by [Elem.Fire].
type Event struct {
	Name string
	Data any
}

// Fire sends an event from this element to its view. Firing on a detached
// node is allowed; the event is absorbed as stale during delivery.
func (e *Elem) Fire(name string, data any) {
	e.thunk.Send(Event{Name: name, Data: data})
}

// Detached reports whether the element has been removed from the tree.
func (e *Elem) Detached() bool { return e.dead }

// Detached reports whether the text node has been removed from the tree.
func (t *Text) Detached() bool { return t.dead }

// Attr returns the value of the named attribute and whether it is set.
func (e *Elem) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

type rebuildSentinel struct{}

// Rebuild is returned from an event [Handler] to request a rebuild of the
// tree without emitting an action.
var Rebuild any = rebuildSentinel{}

// Handler reacts to an event on an element. Returning nil marks the event
// handled; returning [Rebuild] requests a rebuild; any other value is
// surfaced as an action to the driver.
type Handler func(data any, app any) any
