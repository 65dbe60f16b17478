/*
Package weft implements a declarative view-tree reconciliation engine.

An application describes its UI as a tree of cheap, immutable [View] values,
rebuilt from scratch on every update. The engine pairs each new view with the
view that occupied the same tree position in the previous update, together with
the persisted state it keeps for that position, and computes the minimal set of
mutations to the retained element tree owned by a backend. Views are
short-lived; persisted state and elements live across updates.

The core types are:

  - [View]: the capability interface for a single tree position
    (build, rebuild against the previous view, tear down, route a message).

  - [Seq]: the capability interface for an ordered, possibly variable-length
    group of views, built from [One], [Frag], [List] and [Option].

  - [OneOf]: a closed alternation of view types at a single position, with
    generation-tagged identity so that messages addressed to a replaced
    variant are rejected as stale instead of being misdelivered.

  - [Memo] and [Cached]: fingerprint-guarded wrappers that skip reconciling a
    subtree whose input data has not changed.

  - [Root]: the driver that owns the root position's state and element and
    runs reconciliation passes and message delivery.

Reconciliation is synchronous and single-threaded: all methods are ordinary
calls invoked from a host-controlled loop, one pass per application update,
with messages delivered individually between passes. Asynchrony is handled
entirely at the addressing level: a [Thunk] captures the identity path of a
node at build time, and a message delivered through a stale path is returned
unconsumed rather than delivered to whatever now occupies the position.

Malformed input - a sequence whose shape does not match its persisted state,
or splice operations past the end of the accounted elements - indicates a bug
in a View or Seq implementation and panics rather than corrupting the tree.
*/
package weft
