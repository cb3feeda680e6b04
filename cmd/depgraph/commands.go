package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/depnodes/cmd/depgraph/templates"
	"github.com/delaneyj/depnodes/depnodes"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"
)

func demo(ctx context.Context, cmd *cli.Command) error {
	set, err := newSet(cmd)
	if err != nil {
		return err
	}
	defer set.Close()

	s, err := buildSheet(set)
	if err != nil {
		return err
	}
	log.Printf("total is %v", value(set, s.total))

	log.Printf("setting qty to 5")
	if err := set.Set(s.qty, 5); err != nil {
		return err
	}

	labels := names(set)
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"node", "cell", "old", "new"})
	for _, e := range set.Updates().Drain() {
		cell, ok := labels[e.Index]
		if !ok {
			cell = "-"
		}
		table.Append([]string{
			humanize.Comma(int64(e.Index)),
			cell,
			fmt.Sprint(e.Old),
			fmt.Sprint(e.New),
		})
	}
	table.Render()

	log.Printf("total is %v", value(set, s.total))
	renderStats(set.Stats())
	return nil
}

func dot(ctx context.Context, cmd *cli.Command) error {
	set, err := newSet(cmd)
	if err != nil {
		return err
	}
	defer set.Close()

	if _, err := buildSheet(set); err != nil {
		return err
	}

	out := cmd.String(outKey)
	if out == "" {
		templates.WriteDot(os.Stdout, "sheet", set.Nodes())
		return nil
	}
	contents := templates.Dot("sheet", set.Nodes())
	if err := os.WriteFile(out, []byte(contents), 0644); err != nil {
		return errors.Wrap(err, "write dot")
	}
	log.Printf("wrote %s", out)
	return nil
}

func stats(ctx context.Context, cmd *cli.Command) error {
	width, depth := int(cmd.Uint(widthKey)), int(cmd.Uint(depthKey))
	if depth == 0 {
		return errors.New("depth must be at least 1")
	}

	start := time.Now()
	log.Printf("building %d chains of %d nodes", width, depth)
	defer func() {
		log.Printf("stats finished in %v", time.Since(start))
	}()

	set, err := newSet(cmd)
	if err != nil {
		return err
	}
	defer set.Close()

	inc := depnodes.Fn1("inc", func(a int) int { return a + 1 })
	roots := make([]int, 0, width)
	for i := 0; i < width; i++ {
		e := depnodes.Literal(i)
		for j := 1; j < depth; j++ {
			e = depnodes.Call(inc, e)
		}
		root, err := set.Add("", e)
		if err != nil {
			return err
		}
		roots = append(roots, root)
	}
	log.Printf("after add")
	renderStats(set.Stats())

	for i := 0; i < len(roots); i += 2 {
		if err := set.RemoveAt(roots[i]); err != nil {
			return err
		}
	}
	log.Printf("after removing every other chain")
	renderStats(set.Stats())
	return nil
}

func value(set *depnodes.NodeSet, index int) any {
	v, err := set.Value(index)
	if err != nil {
		return err
	}
	return v
}

func renderStats(st depnodes.Stats) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"slots", "occupied", "names", "free ranges", "free slots", "top"})
	table.Append([]string{
		humanize.Comma(int64(st.Slots)),
		humanize.Comma(int64(st.Occupied)),
		humanize.Comma(int64(st.Names)),
		humanize.Comma(int64(st.FreeRanges)),
		humanize.Comma(int64(st.FreeSlots)),
		humanize.Comma(int64(st.Top)),
	})
	table.Render()
}
