package depnodes

// NodeInfo is a read-only copy of one occupied node.
type NodeInfo struct {
	Index      int
	Name       string
	Function   string
	Value      any
	Inputs     []any
	Dependents []Link
	// Span is the batch length when the node is a batch root, zero otherwise.
	Span int
}

func (n NodeInfo) IsLiteral() bool {
	return n.Function == ""
}

// Nodes copies every occupied node in store order.
func (s *NodeSet) Nodes() []NodeInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]NodeInfo, 0, s.occupied)
	for i := range s.nodes {
		n := &s.nodes[i]
		if !n.occupied {
			continue
		}
		info := NodeInfo{
			Index:      i,
			Name:       n.name,
			Value:      n.value,
			Inputs:     n.inputs.Slice(),
			Dependents: n.dependents.Slice(),
			Span:       n.span,
		}
		if n.fn != nil {
			info.Function = n.fn.Name()
		}
		out = append(out, info)
	}
	return out
}

// Gaps lists the free ranges below the top of the store.
func (s *NodeSet) Gaps() []Range {
	return s.gaps.ranges()
}

type Stats struct {
	// Slots is the length of the flat store, occupied or not.
	Slots      int
	Occupied   int
	Names      int
	FreeRanges int
	FreeSlots  int
	// Top is the first slot of the unbounded tail range.
	Top int
}

func (s *NodeSet) Stats() Stats {
	s.mu.RLock()
	st := Stats{
		Slots:    len(s.nodes),
		Occupied: s.occupied,
	}
	s.mu.RUnlock()

	st.Names = s.names.len()
	for _, r := range s.gaps.ranges() {
		st.FreeRanges++
		st.FreeSlots += r.Len()
	}
	st.Top = s.gaps.top().Low
	return st
}
