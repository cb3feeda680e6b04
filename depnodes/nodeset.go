// Package depnodes is an incremental computation engine. Expressions are
// lowered into contiguous batches of nodes inside one flat store, dependents
// are referenced by packed links instead of pointers, and changing a value
// recomputes only the nodes downstream of it.
package depnodes

import (
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// NodeSet owns the flat node store, its free-space index and the name
// directory. All methods are safe for concurrent use.
type NodeSet struct {
	// mu guards nodes and occupied. Adds hold it only for the copy step;
	// Update holds it for the whole propagation.
	mu       sync.RWMutex
	nodes    []node
	occupied int

	gaps    *gapIndex
	names   *directory
	updates *Updates

	vocabulary *Vocabulary
	equal      func(a, b any) bool
	logger     *zap.Logger
	metrics    *metrics
}

func New(opts ...Option) *NodeSet {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	initial := min(o.initialCapacity, o.limit)
	return &NodeSet{
		nodes:      make([]node, 0, initial),
		gaps:       newGapIndex(o.limit),
		names:      newDirectory(),
		updates:    newUpdates(),
		vocabulary: o.vocabulary,
		equal:      o.equal,
		logger:     o.logger,
		metrics:    newMetrics(o.registerer, o.metricLabels),
	}
}

// Updates returns the set's change stream.
func (s *NodeSet) Updates() *Updates {
	return s.updates
}

// Close closes the change stream. The set itself stays usable.
func (s *NodeSet) Close() {
	s.updates.Close()
}

// Add lowers e into a batch, places it in the best fitting free range and
// returns the absolute index of its root. An empty name adds an anonymous
// batch. On error the store is left unchanged.
func (s *NodeSet) Add(name string, e *Expression) (int, error) {
	batch, err := lower(name, e, s.vocabulary)
	if err != nil {
		s.metrics.fail(failureKind(err))
		return 0, errors.WithMessagef(err, "add %q", name)
	}

	if name != "" && !s.names.claim(name) {
		s.metrics.fail("duplicate_name")
		return 0, errors.Wrapf(ErrDuplicateName, "add %q", name)
	}

	r, err := s.gaps.take(len(batch))
	if err != nil {
		if name != "" {
			s.names.drop(name)
		}
		s.metrics.fail("out_of_space")
		s.logger.Warn("out of space", zap.String("name", name), zap.Int("nodes", len(batch)))
		return 0, errors.WithMessagef(err, "add %q", name)
	}

	start := r.Low
	for i := range batch {
		deps := &batch[i].dependents
		for j := 0; j < deps.Len(); j++ {
			l, _ := deps.Get(j)
			deps.Set(j, l.Relocate(start))
		}
	}
	batch[0].span = len(batch)

	s.mu.Lock()
	s.ensure(r.High)
	copy(s.nodes[start:r.High], batch)
	s.occupied += len(batch)
	s.observeStore()
	s.mu.Unlock()

	if name != "" {
		s.names.commit(name, start)
	}
	s.metrics.adds.Inc()
	s.metrics.gaps.Set(float64(s.gaps.count()))
	s.logger.Debug("added batch",
		zap.String("name", name),
		zap.Int("start", start),
		zap.Int("nodes", len(batch)),
	)
	return start, nil
}

// ensure grows the store to at least n slots. Callers hold mu.
func (s *NodeSet) ensure(n int) {
	if n <= len(s.nodes) {
		return
	}
	before := cap(s.nodes)
	s.nodes = append(s.nodes, make([]node, n-len(s.nodes))...)
	if cap(s.nodes) != before {
		s.logger.Debug("grew store", zap.Int("from", before), zap.Int("to", cap(s.nodes)))
	}
}

// observeStore refreshes the store gauges. Callers hold mu.
func (s *NodeSet) observeStore() {
	s.metrics.occupied.Set(float64(s.occupied))
	s.metrics.slots.Set(float64(len(s.nodes)))
}

// IndexOf returns the root index of the batch added under name.
func (s *NodeSet) IndexOf(name string) (int, bool) {
	return s.names.lookup(name)
}

// nodeAt returns the occupied node at index. Callers hold mu.
func (s *NodeSet) nodeAt(index int) (*node, error) {
	if index < 0 || index >= len(s.nodes) || !s.nodes[index].occupied {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "node %d", index)
	}
	return &s.nodes[index], nil
}

func (s *NodeSet) Value(index int) (any, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, err := s.nodeAt(index)
	if err != nil {
		return nil, err
	}
	return n.value, nil
}

// Set replaces the value of a literal node and propagates the change. No
// event is published for the literal itself, only for the dependents whose
// values change as a result.
func (s *NodeSet) Set(index int, v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, err := s.nodeAt(index)
	if err != nil {
		return err
	}
	if !n.isLiteral() {
		return errors.Wrapf(ErrNotLiteral, "set node %d", index)
	}
	if s.equal(n.value, v) {
		return nil
	}
	n.inputs.Set(0, v)
	n.value = v
	return s.update(index)
}

// Connect makes to's input at slot follow from's value. The link takes effect
// on the next propagation from from; nothing is recomputed here.
func (s *NodeSet) Connect(from, to, slot int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	src, err := s.nodeAt(from)
	if err != nil {
		return err
	}
	dst, err := s.nodeAt(to)
	if err != nil {
		return err
	}
	if slot < 0 || slot >= dst.inputs.Len() {
		return errors.Wrapf(ErrIndexOutOfRange, "node %d has no input %d", to, slot)
	}
	src.dependents.Add(NewLink(to, slot))
	return nil
}
