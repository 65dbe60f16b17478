package weft

// Element is the retained object a backend renders for a view position: a
// document node, a native widget, or any other long-lived representation. The
// engine never inspects elements; it only stores them, forwards them to the
// views that own them, and asks backends to attach or detach them.
type Element any

// Pod pairs an element with the identity it was built under. Ordered
// collections of children are held as pods so that structural diffs can be
// attributed to stable identities.
type Pod struct {
	Elem Element
	ID   ID
}

// View is the capability interface for a single reconcilable tree position.
// A View value is an immutable description produced fresh on every update;
// the engine pairs it with the persisted state and element created by an
// earlier build of the same position.
//
// Build and Rebuild are deliberately separate operations: Build allocates a
// fresh identity while Rebuild must preserve the existing one. A position
// only changes identity when its shape becomes incompatible, in which case
// the caller tears it down and builds anew.
type View interface {
	// Build constructs this position from scratch: it allocates an identity,
	// creates persisted state (recursively building children) and the backend
	// element, and returns all three. The identity is stored by the caller,
	// not by the view.
	Build(cx *Cx) (ID, any, Element)

	// Rebuild updates state and the element in pod, in place, from the
	// previous view value at the same position. prev is always the view this
	// position's state was last reconciled against; a different concrete
	// type is a contract violation. Rebuild may replace pod.Elem (and must
	// then report Structure), but must not change the position's identity.
	Rebuild(cx *Cx, prev View, id ID, state any, pod *Pod) ChangeFlags

	// Teardown releases whatever the state and element hierarchy holds,
	// recursively tearing down children. It is invoked when the position is
	// removed or replaced by an incompatible shape.
	Teardown(state any, pod *Pod)

	// Message routes an addressed message. path is the remaining suffix of
	// the addressing path, relative to this position's children: an empty
	// path means this node is the target. A message that matches nothing is
	// returned via [Stale].
	Message(path IDPath, state any, body any, app any) MessageResult
}
