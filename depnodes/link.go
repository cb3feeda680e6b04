package depnodes

import "fmt"

const (
	slotBits = 4
	slotMask = 1<<slotBits - 1

	// MaxInputs is the most arguments a single node can take, bounded by the
	// width of a Link's slot field.
	MaxInputs = slotMask + 1
)

// Link packs the index of a dependent node together with the argument slot it
// feeds. Within a freshly lowered batch the index is relative to the batch
// root; once placed it is an absolute store index.
type Link uint64

// NewLink panics if index is negative or slot is outside [0, MaxInputs).
func NewLink(index, slot int) Link {
	if index < 0 || slot < 0 || slot >= MaxInputs {
		panic(fmt.Sprintf("depnodes: invalid link %d:%d", index, slot))
	}
	return Link(uint64(index)<<slotBits | uint64(slot))
}

func (l Link) Index() int {
	return int(l >> slotBits)
}

func (l Link) Slot() int {
	return int(l & slotMask)
}

// Relocate shifts the index by delta, leaving the slot untouched.
func (l Link) Relocate(delta int) Link {
	return NewLink(l.Index()+delta, l.Slot())
}

func (l Link) String() string {
	return fmt.Sprintf("%d:%d", l.Index(), l.Slot())
}
