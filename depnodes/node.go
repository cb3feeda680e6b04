package depnodes

import "github.com/delaneyj/depnodes/hotlist"

// node is one computation in the flat store. Nodes live by value inside
// NodeSet.nodes and are only ever mutated through &nodes[i].
type node struct {
	name       string
	fn         *Function
	value      any
	inputs     hotlist.List3[any]
	dependents hotlist.List3[Link]
	// span is the batch length on a batch root and zero everywhere else.
	span     int
	occupied bool
}

func (n *node) isLiteral() bool {
	return n.fn == nil
}

// compute evaluates the node over its cached input snapshot. A literal
// mirrors its first input.
func (n *node) compute() any {
	if n.isLiteral() {
		v, _ := n.inputs.Get(0)
		return v
	}
	return n.fn.call(n.inputs.Slice())
}
