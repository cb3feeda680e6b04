package depnodes

import (
	"context"
	"fmt"
	"sync"
)

// Event records one node whose value changed during propagation.
type Event struct {
	Index    int
	Old, New any
}

func (e Event) String() string {
	return fmt.Sprintf("#%d: %v -> %v", e.Index, e.Old, e.New)
}

// Updates is an unbounded queue of change events. Publishing never blocks, so a
// consumer that falls behind only costs memory. It is observability, not
// synchronization: nothing waits for events to be read.
type Updates struct {
	mu     sync.Mutex
	queue  []Event
	notify chan struct{}
	closed bool
}

func newUpdates() *Updates {
	return &Updates{notify: make(chan struct{}, 1)}
}

func (u *Updates) publish(e Event) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return
	}
	u.queue = append(u.queue, e)

	select {
	case u.notify <- struct{}{}:
	default:
	}
}

// Next blocks until an event is available, ctx is done or the queue is closed
// and drained.
func (u *Updates) Next(ctx context.Context) (Event, error) {
	for {
		if e, ok := u.TryNext(); ok {
			return e, nil
		}

		u.mu.Lock()
		closed := u.closed
		u.mu.Unlock()
		if closed {
			return Event{}, ErrClosed
		}

		select {
		case <-ctx.Done():
			return Event{}, ctx.Err()
		case <-u.notify:
		}
	}
}

func (u *Updates) TryNext() (Event, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if len(u.queue) == 0 {
		return Event{}, false
	}
	e := u.queue[0]
	u.queue[0] = Event{}
	u.queue = u.queue[1:]
	if len(u.queue) == 0 {
		u.queue = nil
	}
	return e, true
}

// Drain removes and returns every queued event.
func (u *Updates) Drain() []Event {
	u.mu.Lock()
	defer u.mu.Unlock()
	out := u.queue
	u.queue = nil
	return out
}

func (u *Updates) Len() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.queue)
}

// Close stops accepting events. Queued events can still be read.
func (u *Updates) Close() {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return
	}
	u.closed = true
	close(u.notify)
}
