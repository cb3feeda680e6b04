// Package hotlist provides List3, an ordered list that keeps its first three
// elements inline and only touches the heap once it grows past them.
package hotlist

import (
	"slices"

	"github.com/pkg/errors"
)

const inline = 3

var ErrIndexOutOfRange = errors.New("index out of range")

// List3 is an ordered container optimized for zero to three elements. The zero
// value is an empty list ready to use. Copying a List3 shares its overflow
// storage, so treat copies as moves.
type List3[T comparable] struct {
	v0, v1, v2 T
	n          int
	overflow   []T
}

func (l *List3[T]) Len() int {
	return l.n
}

func (l *List3[T]) slot(i int) *T {
	switch i {
	case 0:
		return &l.v0
	case 1:
		return &l.v1
	case 2:
		return &l.v2
	default:
		return &l.overflow[i-inline]
	}
}

func (l *List3[T]) Get(i int) (v T, err error) {
	if i < 0 || i >= l.n {
		return v, ErrIndexOutOfRange
	}
	return *l.slot(i), nil
}

func (l *List3[T]) Set(i int, v T) error {
	if i < 0 || i >= l.n {
		return ErrIndexOutOfRange
	}
	*l.slot(i) = v
	return nil
}

func (l *List3[T]) Add(v T) {
	if l.n < inline {
		*l.slot(l.n) = v
	} else {
		l.overflow = append(l.overflow, v)
	}
	l.n++
}

// IndexOf returns the position of the first element equal to v, or -1.
func (l *List3[T]) IndexOf(v T) int {
	for i := 0; i < l.n && i < inline; i++ {
		if *l.slot(i) == v {
			return i
		}
	}
	if i := slices.Index(l.overflow, v); i >= 0 {
		return i + inline
	}
	return -1
}

func (l *List3[T]) Contains(v T) bool {
	return l.IndexOf(v) >= 0
}

// Insert places v at position i, shifting later elements back. Inserting at
// Len appends.
func (l *List3[T]) Insert(i int, v T) error {
	if i < 0 || i > l.n {
		return ErrIndexOutOfRange
	}
	if i >= inline {
		l.overflow = slices.Insert(l.overflow, i-inline, v)
		l.n++
		return nil
	}

	last := l.n
	if l.n >= inline {
		// v2 is displaced onto the head of the overflow.
		l.overflow = slices.Insert(l.overflow, 0, l.v2)
		last = inline - 1
	}
	for j := last; j > i; j-- {
		*l.slot(j) = *l.slot(j - 1)
	}
	*l.slot(i) = v
	l.n++
	return nil
}

// Remove deletes the first element equal to v and reports whether one was
// found.
func (l *List3[T]) Remove(v T) bool {
	i := l.IndexOf(v)
	if i < 0 {
		return false
	}
	l.removeAt(i)
	return true
}

func (l *List3[T]) RemoveAt(i int) error {
	if i < 0 || i >= l.n {
		return ErrIndexOutOfRange
	}
	l.removeAt(i)
	return nil
}

func (l *List3[T]) removeAt(i int) {
	var zero T
	if i >= inline {
		l.overflow = slices.Delete(l.overflow, i-inline, i-inline+1)
		l.n--
		return
	}

	last := min(l.n, inline) - 1
	for j := i; j < last; j++ {
		*l.slot(j) = *l.slot(j + 1)
	}
	if len(l.overflow) > 0 {
		l.v2 = l.overflow[0]
		l.overflow = slices.Delete(l.overflow, 0, 1)
	} else {
		*l.slot(last) = zero
	}
	l.n--
}

func (l *List3[T]) Clear() {
	var zero T
	l.v0, l.v1, l.v2 = zero, zero, zero
	l.overflow = nil
	l.n = 0
}

// Range calls fn for each element in order until fn returns false.
func (l *List3[T]) Range(fn func(i int, v T) bool) {
	for i := 0; i < l.n; i++ {
		if !fn(i, *l.slot(i)) {
			return
		}
	}
}

// Slice copies the elements into a new slice.
func (l *List3[T]) Slice() []T {
	out := make([]T, 0, l.n)
	l.Range(func(_ int, v T) bool {
		out = append(out, v)
		return true
	})
	return out
}
