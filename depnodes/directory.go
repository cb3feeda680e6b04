package depnodes

import (
	"sync"

	"github.com/cespare/xxhash/v2"
)

const (
	directoryShards = 16
	// pending marks a name claimed by an Add that has not been placed yet.
	pending = -1
)

type directoryShard struct {
	mu    sync.RWMutex
	roots map[string]int
}

// directory maps batch names to their absolute root index. It is sharded by
// name hash so lookups do not contend with each other or with the store.
type directory struct {
	shards [directoryShards]directoryShard
}

func newDirectory() *directory {
	d := &directory{}
	for i := range d.shards {
		d.shards[i].roots = map[string]int{}
	}
	return d
}

func (d *directory) shard(name string) *directoryShard {
	return &d.shards[xxhash.Sum64String(name)%directoryShards]
}

// claim reserves name, failing if it is already taken or pending.
func (d *directory) claim(name string) bool {
	s := d.shard(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roots[name]; ok {
		return false
	}
	s.roots[name] = pending
	return true
}

func (d *directory) commit(name string, root int) {
	s := d.shard(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.roots[name] = root
}

func (d *directory) drop(name string) {
	s := d.shard(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.roots, name)
}

func (d *directory) lookup(name string) (int, bool) {
	s := d.shard(name)
	s.mu.RLock()
	defer s.mu.RUnlock()
	root, ok := s.roots[name]
	if !ok || root == pending {
		return 0, false
	}
	return root, true
}

func (d *directory) len() int {
	n := 0
	for i := range d.shards {
		s := &d.shards[i]
		s.mu.RLock()
		for _, root := range s.roots {
			if root != pending {
				n++
			}
		}
		s.mu.RUnlock()
	}
	return n
}
