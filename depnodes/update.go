package depnodes

import (
	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Update pushes the current value of the node at index into its dependents,
// recomputing each one and recursing depth-first, in link order, into those
// whose value changed. A dependent whose value comes out unchanged stops the
// walk down that branch.
//
// Re-entering a node already on the current path fails with
// ErrCycleDetected. Nodes recomputed before the cycle was found keep their new
// values.
func (s *NodeSet) Update(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.nodeAt(index); err != nil {
		return err
	}
	return s.update(index)
}

// update runs a propagation. Callers hold mu.
func (s *NodeSet) update(index int) error {
	s.metrics.updates.Inc()
	path := mapset.NewThreadUnsafeSet[int]()
	if err := s.propagate(index, path); err != nil {
		s.metrics.fail(failureKind(err))
		return err
	}
	return nil
}

func (s *NodeSet) propagate(index int, path mapset.Set[int]) error {
	if !path.Add(index) {
		s.logger.Warn("dependency cycle", zap.Int("index", index), zap.Ints("path", path.ToSlice()))
		return errors.Wrapf(ErrCycleDetected, "node %d", index)
	}
	defer path.Remove(index)

	n := &s.nodes[index]
	value := n.value

	var err error
	n.dependents.Range(func(_ int, l Link) bool {
		dep, derr := s.nodeAt(l.Index())
		if derr != nil {
			err = errors.WithMessagef(derr, "dependent of node %d", index)
			return false
		}
		if derr = dep.inputs.Set(l.Slot(), value); derr != nil {
			err = errors.Wrapf(derr, "node %d input %d", l.Index(), l.Slot())
			return false
		}

		prev := dep.value
		next := dep.compute()
		if s.equal(prev, next) {
			return true
		}
		dep.value = next
		s.updates.publish(Event{Index: l.Index(), Old: prev, New: next})
		s.metrics.events.Inc()

		err = s.propagate(l.Index(), path)
		return err == nil
	})
	return err
}
