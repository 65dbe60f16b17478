package weft

import "strconv"

// ID identifies a built view position. It is allocated by [Cx.NextID] when a
// position is first built, is never reused, and is stored by the parent's
// persisted state rather than by the view itself. The zero value is not a
// valid allocated identity; it appears in paths only as a synthetic segment
// (a [OneOf] generation that happens to be zero).
type ID uint64

func (id ID) String() string { return "#" + strconv.FormatUint(uint64(id), 10) }

// IDPath addresses a node in the view tree: the identities along the path
// from the root to the node, possibly interleaved with synthetic generation
// segments for OneOf positions. Paths are captured by [Cx.Thunk] at build
// time and consumed segment by segment during message routing.
type IDPath []ID
