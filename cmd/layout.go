package cmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/yangruisxy/curvetrace/accel/curveleaf"
)

// Print the byte layout of a leaf block for every supported primitive count.
func ShowLayout(ctx *cli.Context) error {
	setupLogging(ctx)

	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Field", "N=1", "N=2", "N=3", "N=4"})

	row := func(name string, offset func(curveleaf.Layout) int) {
		cols := []string{name}
		for n := 1; n <= curveleaf.MaxBlockPrims; n++ {
			cols = append(cols, fmt.Sprintf("%d", offset(curveleaf.Layout{N: n})))
		}
		table.Append(cols)
	}

	row("count", curveleaf.Layout.Count)
	row("geomID", curveleaf.Layout.GeomID)
	row("primID[0]", func(l curveleaf.Layout) int { return l.PrimID(0) })
	for axis, name := range []string{"x", "y", "z"} {
		row("basis v"+name, func(l curveleaf.Layout) int { return l.BasisComp(axis, 0, 0) })
		row("lower v"+name, func(l curveleaf.Layout) int { return l.Lower(axis, 0) })
		row("upper v"+name, func(l curveleaf.Layout) int { return l.Upper(axis, 0) })
	}
	row("offset", curveleaf.Layout.Offset)
	row("scale", curveleaf.Layout.Scale)
	row("total bytes", curveleaf.Layout.Bytes)

	table.Render()
	fmt.Fprintf(os.Stdout, "%s", buf.String())
	return nil
}
