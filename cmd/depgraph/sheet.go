package main

import (
	"reflect"

	"github.com/delaneyj/depnodes/depnodes"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
)

var (
	add = depnodes.Fn2("add", func(a, b int) int { return a + b })
	mul = depnodes.Fn2("mul", func(a, b int) int { return a * b })
	pct = depnodes.Fn2("pct", func(a, rate int) int { return a * rate / 100 })
)

func newSet(cmd *cli.Command) (*depnodes.NodeSet, error) {
	logger := zap.NewNop()
	if cmd.Bool(verboseKey) {
		var err error
		if logger, err = zap.NewDevelopment(); err != nil {
			return nil, errors.Wrap(err, "logger")
		}
	}

	ints := []reflect.Type{depnodes.TypeOf[int](), depnodes.TypeOf[int]()}
	vocab := depnodes.NewVocabulary()
	vocab.Register(add, ints)
	vocab.Register(mul, ints)
	vocab.Register(pct, ints, func(args []any) bool {
		rate := args[1].(int)
		return rate >= 0 && rate <= 100
	})

	opts := []depnodes.Option{
		depnodes.WithLogger(logger),
		depnodes.WithVocabulary(vocab),
	}
	if limit := cmd.Int(limitKey); limit > 0 {
		opts = append(opts, depnodes.WithLimit(int(limit)))
	}
	return depnodes.New(opts...), nil
}

// sheet is the demo spreadsheet:
//
//	price   qty
//	    \   /
//	   subtotal
//	    |    \
//	    |    pct(., rate)
//	    |    /
//	    total
type sheet struct {
	set                         *depnodes.NodeSet
	price, qty, subtotal, total int
}

func buildSheet(set *depnodes.NodeSet) (*sheet, error) {
	s := &sheet{set: set}

	cells := []struct {
		name string
		e    *depnodes.Expression
		at   *int
	}{
		{"price", depnodes.Literal(12), &s.price},
		{"qty", depnodes.Literal(3), &s.qty},
		{"subtotal", depnodes.Call(mul, 12, 3), &s.subtotal},
		{"total", depnodes.Call(add, 36, depnodes.Call(pct, 36, depnodes.Literal(8))), &s.total},
	}
	for _, c := range cells {
		idx, err := set.Add(c.name, c.e)
		if err != nil {
			return nil, err
		}
		*c.at = idx
	}

	links := []struct{ from, to, slot int }{
		{s.price, s.subtotal, 0},
		{s.qty, s.subtotal, 1},
		{s.subtotal, s.total, 0},
		{s.subtotal, s.total + 1, 0},
	}
	for _, l := range links {
		if err := set.Connect(l.from, l.to, l.slot); err != nil {
			return nil, errors.WithMessagef(err, "connect %d -> %d", l.from, l.to)
		}
	}
	return s, nil
}

// names maps every batch root to the name it was added under.
func names(set *depnodes.NodeSet) map[int]string {
	out := map[int]string{}
	for _, n := range set.Nodes() {
		if n.Name != "" && n.Span > 0 {
			out[n.Index] = n.Name
		}
	}
	return out
}
