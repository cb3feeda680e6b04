package depnodes

import "github.com/pkg/errors"

// Expression is an unevaluated computation tree. Inputs that are themselves
// *Expression become child nodes when the tree is added to a NodeSet, any
// other input is passed to the function as-is.
type Expression struct {
	fn     *Function
	inputs []any
}

func Call(fn *Function, inputs ...any) *Expression {
	return &Expression{fn: fn, inputs: inputs}
}

func Literal(v any) *Expression {
	return &Expression{inputs: []any{v}}
}

// Len counts the nodes the expression lowers to. Shared sub-expressions are
// counted once per reference.
func (e *Expression) Len() int {
	if e == nil {
		return 0
	}
	n := 1
	if e.fn == nil {
		return n
	}
	for _, in := range e.inputs {
		if child, ok := in.(*Expression); ok {
			n += child.Len()
		}
	}
	return n
}

// lower flattens e into a batch of nodes in pre-order, root at offset zero,
// with every dependent link relative to the batch start.
func lower(name string, e *Expression, vocab *Vocabulary) ([]node, error) {
	if e == nil {
		return nil, ErrNilExpression
	}
	batch := make([]node, 0, e.Len())
	batch, _, err := e.lowerInto(name, batch, vocab)
	if err != nil {
		return nil, err
	}
	return batch, nil
}

func (e *Expression) lowerInto(name string, batch []node, vocab *Vocabulary) ([]node, int, error) {
	self := len(batch)
	batch = append(batch, node{name: name, fn: e.fn, occupied: true})

	if e.fn == nil {
		var v any
		if len(e.inputs) > 0 {
			v = e.inputs[0]
		}
		batch[self].inputs.Add(v)
		batch[self].value = v
		return batch, self, nil
	}

	if len(e.inputs) > MaxInputs {
		return nil, 0, errors.Wrapf(ErrTooManyInputs, "%s takes %d inputs, max %d", e.fn.Name(), len(e.inputs), MaxInputs)
	}

	args := make([]any, len(e.inputs))
	for slot, in := range e.inputs {
		child, ok := in.(*Expression)
		if !ok {
			args[slot] = in
			continue
		}
		if child == nil {
			return nil, 0, errors.Wrapf(ErrNilExpression, "%s input %d", e.fn.Name(), slot)
		}

		var (
			childIdx int
			err      error
		)
		batch, childIdx, err = child.lowerInto("", batch, vocab)
		if err != nil {
			return nil, 0, err
		}
		batch[childIdx].dependents.Add(NewLink(self, slot))
		args[slot] = batch[childIdx].value
	}

	if vocab != nil {
		if err := vocab.Check(e.fn, args); err != nil {
			return nil, 0, err
		}
	}

	n := &batch[self]
	for _, a := range args {
		n.inputs.Add(a)
	}
	n.value = e.fn.call(args)
	return batch, self, nil
}
