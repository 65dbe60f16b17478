package weft

// Cx carries the per-pass state of building and rebuilding: the identity
// allocator, the addressing path of the position currently being visited, and
// the journal of positional child mutations accumulated for the innermost
// element scope.
//
// The allocator is explicit state rather than a process global so that
// independent trees are independent and passes stay reorderable in tests.
// A Cx must only be used from one reconciliation call stack at a time.
type Cx struct {
	nextID ID
	idPath IDPath
	muts   []Mutation
	send   func(Message)
}

// NewCx returns a context whose thunks deliver messages through send, which
// may be nil if the tree never creates thunks. Most callers want [NewRoot]
// instead, which queues messages between passes.
func NewCx(send func(Message)) *Cx {
	return &Cx{nextID: 1, send: send}
}

// NextID allocates a fresh identity, unique within this Cx and never reused.
func (cx *Cx) NextID() ID {
	id := cx.nextID
	cx.nextID++
	return id
}

// WithID runs f with id appended to the addressing path, so that thunks
// created inside f address the subtree under id.
func (cx *Cx) WithID(id ID, f func()) {
	cx.idPath = append(cx.idPath, id)
	f()
	cx.idPath = cx.idPath[:len(cx.idPath)-1]
}

// Thunk captures the current addressing path extended with id, for delivering
// messages to the position being built.
func (cx *Cx) Thunk(id ID) Thunk {
	path := make(IDPath, len(cx.idPath)+1)
	copy(path, cx.idPath)
	path[len(path)-1] = id
	return Thunk{path: path, send: cx.send}
}

// MutationKind enumerates the positional child mutations a backend applies
// after a structural change.
type MutationKind uint8

const (
	// mutScope marks the start of an element scope in the journal. It never
	// reaches backends; it exists so that runs from nested scopes are not
	// merged into the parent's.
	mutScope MutationKind = iota
	// MutationSkip leaves the next N retained children untouched.
	MutationSkip
	// MutationDelete removes the next N retained children.
	MutationDelete
	// MutationInsert inserts, before the current child position, the new
	// element found at the same index of the reconciled pod slice. ID is the
	// identity the element was built under.
	MutationInsert
)

// Mutation is one positional edit to a parent's retained children.
type Mutation struct {
	Kind MutationKind
	N    int
	ID   ID
}

func (cx *Cx) skipChild() {
	if n := len(cx.muts); n > 0 && cx.muts[n-1].Kind == MutationSkip {
		cx.muts[n-1].N++
		return
	}
	cx.muts = append(cx.muts, Mutation{Kind: MutationSkip, N: 1})
}

func (cx *Cx) deleteChildren(n int) {
	if n == 0 {
		return
	}
	if l := len(cx.muts); l > 0 && cx.muts[l-1].Kind == MutationDelete {
		cx.muts[l-1].N += n
		return
	}
	cx.muts = append(cx.muts, Mutation{Kind: MutationDelete, N: n})
}

func (cx *Cx) insertChild(id ID) {
	cx.muts = append(cx.muts, Mutation{Kind: MutationInsert, N: 1, ID: id})
}

// BuildChildren builds a child sequence under a freshly allocated identity,
// appending the children's pods to *pods. It returns the identity - which the
// calling element view should adopt as its own - and the sequence state. The
// caller attaches all pods to its element afterwards; no mutation journal is
// kept for an initial build.
func (cx *Cx) BuildChildren(children Seq, pods *[]Pod) (ID, any) {
	mark := len(cx.muts)
	cx.muts = append(cx.muts, Mutation{Kind: mutScope})
	id := cx.NextID()
	var state any
	var scratch []Pod
	cx.WithID(id, func() {
		sp := newPodSplice(cx, pods, &scratch)
		state = children.SeqBuild(cx, sp)
		sp.finish()
	})
	cx.muts = cx.muts[:mark]
	return id, state
}

// RebuildChildren reconciles a child sequence against its previous value,
// editing *pods in place. id is the identity returned by the matching
// BuildChildren call; scratch is scratch storage owned by the caller's state
// and must be empty between passes.
//
// If the sequence reports a structural change, apply is invoked with the
// mutations journaled for this scope and the reconciled pods, and the
// Structure flag is consumed: structure is resolved here and does not concern
// the caller's own parent. All other flags propagate.
func (cx *Cx) RebuildChildren(id ID, children, prev Seq, state any, pods, scratch *[]Pod, apply func(muts []Mutation, pods []Pod)) ChangeFlags {
	mark := len(cx.muts)
	cx.muts = append(cx.muts, Mutation{Kind: mutScope})
	var flags ChangeFlags
	cx.WithID(id, func() {
		sp := newPodSplice(cx, pods, scratch)
		flags = children.SeqRebuild(cx, prev, state, sp)
		sp.finish()
	})
	if flags.Has(Structure) {
		flags &^= Structure
		if apply != nil {
			apply(cx.muts[mark+1:], *pods)
		}
	}
	cx.muts = cx.muts[:mark]
	return flags
}

// TeardownChildren tears down a child sequence and its elements outside a
// reconciliation pass, for use by element views' Teardown.
func TeardownChildren(children Seq, state any, pods *[]Pod) {
	var scratch []Pod
	sp := newPodSplice(nil, pods, &scratch)
	children.SeqTeardown(state, sp)
}
