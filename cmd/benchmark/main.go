package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/depnodes/depnodes"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"golang.org/x/sync/errgroup"
)

var (
	ww      = []int{1, 10, 100, 1_000}
	hh      = []int{1, 10, 100, 1_000}
	workers = []int{1, 2, 4, 8, 16}

	iters   = flag.Int("iters", 100, "timed iterations per configuration")
	adds    = flag.Int("adds", 10_000, "batches added per concurrency level")
	profile = flag.String("profile", "default.pgo", "cpu profile output, empty to disable")
)

var inc = depnodes.Fn1("inc", func(a int) int { return a + 1 })

func main() {
	flag.Parse()

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkPropagate(false)

	benchmarkPropagate(true)
	benchmarkConcurrentAdd()
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

func appendCalc(tbl table.Writer, name string, calc *tachymeter.Metrics) {
	tbl.AppendRows([]table.Row{
		{
			name,
			calc.Time.Avg,
			calc.Time.Min,
			calc.Time.P75,
			calc.Time.P99,
			calc.Time.Max,
		},
	})
}

// chain returns h inc nodes, the innermost taking a raw 0 at its only slot.
func chain(h int) *depnodes.Expression {
	e := depnodes.Call(inc, 0)
	for i := 1; i < h; i++ {
		e = depnodes.Call(inc, e)
	}
	return e
}

func benchmarkPropagate(shouldRender bool) {
	tbl := newTable("Propagation")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: *iters})

			set := depnodes.New()
			src, err := set.Add("src", depnodes.Literal(1))
			if err != nil {
				log.Fatal(err)
			}
			for i := 0; i < w; i++ {
				root, err := set.Add("", chain(h))
				if err != nil {
					log.Fatal(err)
				}
				if err := set.Connect(src, root+h-1, 0); err != nil {
					log.Fatal(err)
				}
			}

			for i := 0; i < *iters; i++ {
				start := time.Now()
				if err := set.Set(src, i+2); err != nil {
					log.Fatal(err)
				}
				tach.AddTime(time.Since(start))
				set.Updates().Drain()
			}
			set.Close()

			appendCalc(tbl, fmt.Sprintf("propagate: %d * %d", w, h), tach.Calc())
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkConcurrentAdd() {
	tbl := newTable("Concurrent add")

	for _, n := range workers {
		tach := tachymeter.New(&tachymeter.Config{Size: *adds})
		set := depnodes.New()

		var eg errgroup.Group
		eg.SetLimit(n)
		for i := 0; i < *adds; i++ {
			eg.Go(func() error {
				start := time.Now()
				_, err := set.Add("", chain(8))
				tach.AddTime(time.Since(start))
				return err
			})
		}
		if err := eg.Wait(); err != nil {
			log.Fatal(err)
		}
		set.Close()

		appendCalc(tbl, fmt.Sprintf("add: %d workers", n), tach.Calc())
	}

	tbl.Render()
}
