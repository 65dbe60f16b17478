package dom

// Find returns the first element with the given tag in depth-first order, or
// nil if there is none.
func Find(n Node, tag string) *Elem {
	for _, e := range FindAll(n, tag) {
		return e
	}
	return nil
}

// FindAll returns all elements with the given tag, in depth-first order.
func FindAll(n Node, tag string) []*Elem {
	var out []*Elem
	var walk func(Node)
	walk = func(n Node) {
		e, ok := n.(*Elem)
		if !ok {
			return
		}
		if e.Tag == tag {
			out = append(out, e)
		}
		for _, k := range e.Kids {
			walk(k)
		}
	}
	walk(n)
	return out
}
