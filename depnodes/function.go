package depnodes

// Function is a pure computation over an ordered argument list. A *Function is
// its own identity: the vocabulary registers signatures against the pointer.
type Function struct {
	name string
	fn   func(args ...any) any
}

func NewFunction(name string, fn func(args ...any) any) *Function {
	return &Function{name: name, fn: fn}
}

func (f *Function) Name() string {
	return f.name
}

func (f *Function) call(args []any) any {
	return f.fn(args...)
}

func Fn1[T0, O any](name string, fn func(T0) O) *Function {
	return NewFunction(name, func(args ...any) any {
		return fn(args[0].(T0))
	})
}

func Fn2[T0, T1, O any](name string, fn func(T0, T1) O) *Function {
	return NewFunction(name, func(args ...any) any {
		return fn(
			args[0].(T0),
			args[1].(T1),
		)
	})
}

func Fn3[T0, T1, T2, O any](name string, fn func(T0, T1, T2) O) *Function {
	return NewFunction(name, func(args ...any) any {
		return fn(
			args[0].(T0),
			args[1].(T1),
			args[2].(T2),
		)
	})
}

func Fn4[T0, T1, T2, T3, O any](name string, fn func(T0, T1, T2, T3) O) *Function {
	return NewFunction(name, func(args ...any) any {
		return fn(
			args[0].(T0),
			args[1].(T1),
			args[2].(T2),
			args[3].(T3),
		)
	})
}

// Variadic wraps a function over any number of same-typed arguments.
func Variadic[T, O any](name string, fn func(...T) O) *Function {
	return NewFunction(name, func(args ...any) any {
		typed := make([]T, len(args))
		for i, a := range args {
			typed[i] = a.(T)
		}
		return fn(typed...)
	})
}
