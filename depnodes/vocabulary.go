package depnodes

import (
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// Rule is a value-level check over the actual arguments of a call.
type Rule func(args []any) bool

// Signature is one accepted overload: exact arity, per-position types and any
// number of rules, all of which must hold.
type Signature struct {
	Types []reflect.Type
	Rules []Rule
}

func (s Signature) matchesTypes(types []reflect.Type) bool {
	if len(s.Types) != len(types) {
		return false
	}
	for i, want := range s.Types {
		if !assignable(types[i], want) {
			return false
		}
	}
	return true
}

func (s Signature) matchesRules(args []any) bool {
	for _, rule := range s.Rules {
		if !rule(args) {
			return false
		}
	}
	return true
}

// assignable treats a nil type, an untyped nil argument, as assignable to any
// kind that can hold nil.
func assignable(have, want reflect.Type) bool {
	if have == nil {
		switch want.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return true
		}
		return false
	}
	return have.AssignableTo(want)
}

// TypeOf returns the reflect.Type of T, including interface types.
func TypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Vocabulary records which argument signatures each function accepts.
type Vocabulary struct {
	mu         sync.RWMutex
	signatures map[*Function][]Signature
}

func NewVocabulary() *Vocabulary {
	return &Vocabulary{signatures: map[*Function][]Signature{}}
}

func (v *Vocabulary) Register(fn *Function, types []reflect.Type, rules ...Rule) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.signatures[fn] = append(v.signatures[fn], Signature{Types: types, Rules: rules})
}

func (v *Vocabulary) Knows(fn *Function) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.signatures[fn]
	return ok
}

// Matches reports whether fn has a signature the given argument types fit.
// Unregistered functions match nothing.
func (v *Vocabulary) Matches(fn *Function, types ...reflect.Type) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, s := range v.signatures[fn] {
		if s.matchesTypes(types) {
			return true
		}
	}
	return false
}

// Check validates a concrete call. Functions without registered signatures
// are accepted as-is.
func (v *Vocabulary) Check(fn *Function, args []any) error {
	v.mu.RLock()
	defer v.mu.RUnlock()

	sigs, ok := v.signatures[fn]
	if !ok {
		return nil
	}
	types := make([]reflect.Type, len(args))
	for i, a := range args {
		types[i] = reflect.TypeOf(a)
	}
	for _, s := range sigs {
		if s.matchesTypes(types) && s.matchesRules(args) {
			return nil
		}
	}
	return errors.Wrapf(ErrSignatureMismatch, "%s%v", fn.Name(), types)
}
