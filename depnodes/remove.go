package depnodes

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Remove deletes the batch added under name and returns its range to the
// free-space index.
func (s *NodeSet) Remove(name string) error {
	root, ok := s.names.lookup(name)
	if !ok {
		return errors.Wrapf(ErrNotFound, "remove %q", name)
	}
	return s.removeAt(root, name, true)
}

// RemoveAt deletes the batch rooted at root. Links from other batches into the
// removed range are dropped with it.
func (s *NodeSet) RemoveAt(root int) error {
	return s.removeAt(root, "", false)
}

// removeAt clears the batch at root. With byName set the batch must still be
// the one added under name, otherwise ErrNotFound: the root may have been
// removed and reused since name was looked up.
func (s *NodeSet) removeAt(root int, name string, byName bool) error {
	s.mu.Lock()
	n, err := s.nodeAt(root)
	switch {
	case byName && (err != nil || n.span == 0 || n.name != name):
		s.mu.Unlock()
		return errors.Wrapf(ErrNotFound, "remove %q", name)
	case err != nil:
		s.mu.Unlock()
		return err
	case n.span == 0:
		s.mu.Unlock()
		return errors.Wrapf(ErrIndexOutOfRange, "node %d is not a batch root", root)
	}

	r := Range{root, root + n.span}
	name = n.name
	for i := r.Low; i < r.High; i++ {
		s.nodes[i] = node{}
	}
	s.occupied -= r.Len()

	dropped := 0
	for i := range s.nodes {
		deps := &s.nodes[i].dependents
		for j := deps.Len() - 1; j >= 0; j-- {
			l, _ := deps.Get(j)
			if l.Index() >= r.Low && l.Index() < r.High {
				deps.RemoveAt(j)
				dropped++
			}
		}
	}
	s.observeStore()
	s.mu.Unlock()

	if name != "" {
		s.names.drop(name)
	}
	s.gaps.release(r)
	s.metrics.removes.Inc()
	s.metrics.gaps.Set(float64(s.gaps.count()))
	s.logger.Debug("removed batch",
		zap.String("name", name),
		zap.Int("start", r.Low),
		zap.Int("nodes", r.Len()),
		zap.Int("droppedLinks", dropped),
	)
	return nil
}
